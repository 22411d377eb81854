// The statsview binary summarizes the parquet telemetry written by the agent
// and arena: winrates, planning times, and planner health, straight from the
// batch files via DuckDB.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

func main() {
	rootsFlag := flag.String("roots", "data/arena", "comma-separated directories holding parquet batches")
	timeout := flag.Duration("timeout", 30*time.Second, "query timeout")
	flag.Parse()

	roots := strings.Split(*rootsFlag, ",")

	db, err := openDB(roots)
	if err != nil {
		log.Fatalf("open duckdb: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	acts, err := queryActs(ctx, db)
	if err != nil {
		log.Fatalf("query acts: %v", err)
	}
	encounterRows, err := queryEncounters(ctx, db)
	if err != nil {
		log.Fatalf("query encounters: %v", err)
	}
	planning, err := queryPlanning(ctx, db)
	if err != nil {
		log.Fatalf("query planning: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "== Combat by act ==")
	fmt.Fprintln(w, "act\tbattles\twinrate\tavg turns\tavg hp lost")
	for _, r := range acts {
		fmt.Fprintf(w, "%d\t%d\t%.1f%%\t%.1f\t%.1f\n", r.Act, r.Battles, r.Winrate*100, r.AvgTurns, r.AvgHPLost)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "== Hardest encounters ==")
	fmt.Fprintln(w, "encounter\tbattles\twinrate\tavg hp lost")
	for _, r := range encounterRows {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.1f\n", r.Encounter, r.Battles, r.Winrate*100, r.AvgHPLost)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "== Planner health by act ==")
	fmt.Fprintln(w, "act\tdecisions\tavg ms\tp99 ms\tavg depth\ttruncated\tfallback\treplanned")
	for _, r := range planning {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.1f\t%.1f%%\t%.1f%%\t%.1f%%\n",
			r.Act, r.Decisions, r.AvgPlanMs, r.P99PlanMs, r.AvgDepth,
			r.TruncatedRate*100, r.FallbackRate*100, r.ReplanRate*100)
	}

	w.Flush()
}
