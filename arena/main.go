// The arena binary benchmarks the planner offline: workers replay scripted
// encounters in parallel and telemetry lands in parquet batches for the
// stats viewer.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WangCCe/slay-the-spire-ai/logging"
	"github.com/WangCCe/slay-the-spire-ai/planner"
	"github.com/WangCCe/slay-the-spire-ai/stats"
)

var totalBattles atomic.Int64

// writeRequest carries one finished battle's rows to the writer loop.
type writeRequest struct {
	combat    stats.CombatRow
	decisions []stats.DecisionRow
}

func main() {
	outDir := flag.String("out-dir", "data/arena", "output directory for parquet batches")
	workers := flag.Int("workers", 8, "number of parallel battle workers")
	maxBattles := flag.Int64("max-battles", 0, "if > 0, stop after this many battles")
	battlesPerFlush := flag.Int("battles-per-flush", 50, "battles to buffer per parquet flush")
	configPath := flag.String("config", "", "YAML planner config overrides")
	seed := flag.Int64("seed", 1, "base seed for deck shuffles")
	useTUI := flag.Bool("tui", false, "show the interactive dashboard instead of log output")
	flag.Parse()

	cfg := planner.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = planner.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	// Workers log through slog; keep it quiet unless something goes wrong so
	// the dashboard stays readable.
	plannerLog := slog.New(logging.NewHandler(os.Stderr, logging.Options{Level: slog.LevelError}))

	updates := make(chan battleUpdate, *workers)
	writeReqs := make(chan writeRequest, (*workers)*4)

	writerDone := make(chan struct{})
	go func() {
		writerLoop(*outDir, *battlesPerFlush, writeReqs)
		close(writerDone)
	}()

	var workerWG sync.WaitGroup
	for i := 0; i < *workers; i++ {
		workerWG.Add(1)
		go func(workerID int) {
			defer workerWG.Done()
			for n := 0; ; n++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				enc := encounters[(workerID+n)%len(encounters)]
				battleSeed := *seed + int64(workerID)*100000 + int64(n)
				runner := newBattleRunner(enc, cfg, battleSeed, plannerLog)
				combat, decisions := runner.run(ctx)
				if ctx.Err() != nil {
					return
				}

				total := totalBattles.Add(1)
				if *maxBattles > 0 && total >= *maxBattles {
					cancel()
				}

				writeReqs <- writeRequest{combat: combat, decisions: decisions}

				var planMicros int64
				for _, d := range decisions {
					planMicros += d.PlanMicros
				}
				// Never block shutdown on a stalled dashboard.
				select {
				case updates <- battleUpdate{
					WorkerID:   workerID,
					Encounter:  combat.Encounter,
					Won:        combat.Won,
					Turns:      combat.Turns,
					FinalHP:    combat.FinalHP,
					Decisions:  len(decisions),
					PlanMicros: planMicros,
				}:
				default:
				}
			}
		}(i)
	}

	if *useTUI {
		p := tea.NewProgram(initialModel(updates), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
		cancel()
		workerWG.Wait()
		close(writeReqs)
		<-writerDone
		return
	}

	startTime := time.Now()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	wins := int64(0)
	for {
		select {
		case <-ctx.Done():
			log.Printf("Shutdown requested; waiting for workers...")
			workerWG.Wait()
			close(writeReqs)
			<-writerDone
			log.Printf("Done: %d battles played", totalBattles.Load())
			return
		case u := <-updates:
			if u.Won {
				wins++
			}
			log.Printf("Worker %d: %s won=%v turns=%d hp=%d", u.WorkerID, u.Encounter, u.Won, u.Turns, u.FinalHP)
		case <-ticker.C:
			total := totalBattles.Load()
			rate := float64(total) / time.Since(startTime).Seconds()
			log.Printf("Stats: battles=%d wins=%d battles/s=%.2f", total, wins, rate)
		}
	}
}

// writerLoop batches incoming rows and flushes a parquet pair every
// battlesPerFlush battles and once more on shutdown.
func writerLoop(outDir string, battlesPerFlush int, in <-chan writeRequest) {
	if battlesPerFlush <= 0 {
		battlesPerFlush = 50
	}

	var combats []stats.CombatRow
	var decisions []stats.DecisionRow

	flush := func() {
		if len(combats) == 0 && len(decisions) == 0 {
			return
		}
		if err := flushBatch(outDir, "combats", combats); err != nil {
			log.Printf("flush combats: %v", err)
		} else {
			combats = combats[:0]
		}
		if err := flushBatch(outDir, "decisions", decisions); err != nil {
			log.Printf("flush decisions: %v", err)
		} else {
			decisions = decisions[:0]
		}
	}

	for req := range in {
		combats = append(combats, req.combat)
		decisions = append(decisions, req.decisions...)
		if len(combats) >= battlesPerFlush {
			flush()
		}
	}
	flush()
}

func flushBatch[T any](dir, schema string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	bw, err := stats.NewBatchWriter[T](dir, schema)
	if err != nil {
		return err
	}
	if err := bw.WriteRows(rows); err != nil {
		return err
	}
	_, _, err = bw.Finalize()
	return err
}
