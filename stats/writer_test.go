package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestBatchWriter_WriteAndFinalize(t *testing.T) {
	dir := t.TempDir()
	bw, err := NewBatchWriter[CombatRow](dir, "combats")
	if err != nil {
		t.Fatalf("NewBatchWriter failed: %v", err)
	}

	rows := []CombatRow{
		{BattleID: "b1", Act: 1, Encounter: "Cultist", Won: true, Turns: 5, FinalHP: 60, HPLost: 12, Source: "arena"},
		{BattleID: "b2", Act: 2, Encounter: "Champ", Won: false, Turns: 14, FinalHP: 0, HPLost: 62, Source: "arena"},
	}
	if err := bw.WriteRows(rows); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}

	path, n, err := bw.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("final path %s not in %s", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("final file missing: %v", err)
	}

	// Nothing half-written may linger in tmp/.
	leftovers, _ := filepath.Glob(filepath.Join(dir, "tmp", "*.parquet"))
	if len(leftovers) != 0 {
		t.Errorf("tmp leftovers: %v", leftovers)
	}

	back, err := parquet.ReadFile[CombatRow](path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(back) != 2 || back[0].BattleID != "b1" || back[1].HPLost != 62 {
		t.Errorf("read back mismatch: %+v", back)
	}
}

func TestBatchWriter_EmptyBatchLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	bw, err := NewBatchWriter[DecisionRow](dir, "decisions")
	if err != nil {
		t.Fatalf("NewBatchWriter failed: %v", err)
	}

	path, n, err := bw.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if path != "" || n != 0 {
		t.Errorf("empty batch produced path=%q rows=%d", path, n)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "*.parquet"))
	if len(files) != 0 {
		t.Errorf("empty batch left files: %v", files)
	}
}

func TestBatchWriter_AppendsWrittenLog(t *testing.T) {
	dir := t.TempDir()
	bw, err := NewBatchWriter[CombatRow](dir, "combats")
	if err != nil {
		t.Fatalf("NewBatchWriter failed: %v", err)
	}
	if err := bw.WriteRows([]CombatRow{{BattleID: "b1", Act: 1, Encounter: "Cultist"}}); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}
	path, _, err := bw.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "written.log"))
	if err != nil {
		t.Fatalf("written.log missing: %v", err)
	}
	if !strings.Contains(string(b), filepath.Base(path)) {
		t.Errorf("written.log does not mention %s: %q", filepath.Base(path), b)
	}
}

func TestBatchWriter_RejectsWritesAfterFinalize(t *testing.T) {
	bw, err := NewBatchWriter[CombatRow](t.TempDir(), "combats")
	if err != nil {
		t.Fatalf("NewBatchWriter failed: %v", err)
	}
	if _, _, err := bw.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if err := bw.WriteRows([]CombatRow{{BattleID: "late"}}); err == nil {
		t.Error("write after finalize accepted")
	}
}
