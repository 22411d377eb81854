package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// BatchWriter accumulates rows into one parquet file, written under a tmp/
// subdirectory and renamed into place on Finalize so readers never see a
// partial file. One writer per batch; not safe for concurrent use.
type BatchWriter[T any] struct {
	outDir  string
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[T]

	bufferedRows int
}

// NewBatchWriter opens a fresh batch file for the given schema name under
// outDir. The schema name lands in the parquet metadata and the file name.
func NewBatchWriter[T any](outDir, schema string) (*BatchWriter[T], error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("%s_%d.parquet", schema, time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)
	outPath := filepath.Join(absOut, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[T](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", schema)

	return &BatchWriter[T]{
		outDir:  absOut,
		tmpPath: tmpPath,
		outPath: outPath,
		file:    f,
		writer:  w,
	}, nil
}

func (b *BatchWriter[T]) BufferedRows() int { return b.bufferedRows }
func (b *BatchWriter[T]) OutPath() string   { return b.outPath }

func (b *BatchWriter[T]) WriteRows(rows []T) error {
	if b.writer == nil || b.file == nil {
		return fmt.Errorf("batch writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := b.writer.Write(rows); err != nil {
		return err
	}
	b.bufferedRows += len(rows)
	return nil
}

// Finalize closes the writer and moves the file into outDir. An empty batch
// leaves no file behind and returns an empty path.
func (b *BatchWriter[T]) Finalize() (string, int, error) {
	if b.writer == nil && b.file == nil {
		return "", 0, nil
	}
	rows := b.bufferedRows

	var closeErr error
	if b.writer != nil {
		closeErr = b.writer.Close()
		b.writer = nil
	}
	var fileErr error
	if b.file != nil {
		_ = b.file.Sync()
		fileErr = b.file.Close()
		b.file = nil
	}
	if closeErr != nil {
		return "", 0, fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		return "", 0, fmt.Errorf("close parquet file: %w", fileErr)
	}

	if rows == 0 {
		_ = os.Remove(b.tmpPath)
		return "", 0, nil
	}
	if err := os.Rename(b.tmpPath, b.outPath); err != nil {
		return "", 0, fmt.Errorf("rename parquet: %w", err)
	}
	if err := noteWritten(b.outDir, filepath.Base(b.outPath), rows); err != nil {
		return "", 0, err
	}
	return b.outPath, rows, nil
}

// noteWritten appends one line per finalized batch to written.log, so reruns
// can see what already landed without scanning parquet footers.
func noteWritten(dir, name string, rows int) error {
	f, err := os.OpenFile(filepath.Join(dir, "written.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open written log: %w", err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s\t%s\t%d\n", time.Now().UTC().Format(time.RFC3339), name, rows)
	return err
}
