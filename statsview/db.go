package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// openDB starts an in-memory DuckDB with views over every parquet batch
// under the given roots. Glob patterns keep startup fast; tmp/ files are
// excluded by filename so half-written batches never show up.
func openDB(roots []string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, err
	}
	_, _ = db.Exec("PRAGMA threads=4")

	for _, view := range []struct{ name, pattern string }{
		{"decisions", "decisions_*.parquet"},
		{"combats", "combats_*.parquet"},
	} {
		globs := make([]string, 0, len(roots))
		for _, root := range roots {
			root = strings.TrimSpace(root)
			if root == "" {
				continue
			}
			glob := filepath.Join(root, view.pattern)
			globs = append(globs, "'"+escapeSQL(glob)+"'")
		}
		if len(globs) == 0 {
			_ = db.Close()
			return nil, fmt.Errorf("no roots given")
		}
		stmt := fmt.Sprintf(`CREATE OR REPLACE VIEW %s AS
			SELECT * FROM read_parquet([%s], filename=true, union_by_name=true)
			WHERE filename NOT LIKE '%%/tmp/%%'`,
			view.name, strings.Join(globs, ","))
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create view %s: %w", view.name, err)
		}
	}

	return db, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// actReport aggregates combat outcomes per act.
type actReport struct {
	Act       int32
	Battles   int64
	Winrate   float64
	AvgTurns  float64
	AvgHPLost float64
}

func queryActs(ctx context.Context, db *sql.DB) ([]actReport, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT act,
		       count(*) AS battles,
		       avg(CASE WHEN won THEN 1.0 ELSE 0.0 END) AS winrate,
		       avg(turns) AS avg_turns,
		       avg(hp_lost) AS avg_hp_lost
		FROM combats
		GROUP BY act
		ORDER BY act`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []actReport
	for rows.Next() {
		var r actReport
		if err := rows.Scan(&r.Act, &r.Battles, &r.Winrate, &r.AvgTurns, &r.AvgHPLost); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// encounterReport aggregates combat outcomes per encounter.
type encounterReport struct {
	Encounter string
	Battles   int64
	Winrate   float64
	AvgHPLost float64
}

func queryEncounters(ctx context.Context, db *sql.DB) ([]encounterReport, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT encounter,
		       count(*) AS battles,
		       avg(CASE WHEN won THEN 1.0 ELSE 0.0 END) AS winrate,
		       avg(hp_lost) AS avg_hp_lost
		FROM combats
		GROUP BY encounter
		ORDER BY winrate ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []encounterReport
	for rows.Next() {
		var r encounterReport
		if err := rows.Scan(&r.Encounter, &r.Battles, &r.Winrate, &r.AvgHPLost); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// planningReport aggregates planner behavior per act.
type planningReport struct {
	Act           int32
	Decisions     int64
	AvgPlanMs     float64
	P99PlanMs     float64
	AvgDepth      float64
	TruncatedRate float64
	FallbackRate  float64
	ReplanRate    float64
}

func queryPlanning(ctx context.Context, db *sql.DB) ([]planningReport, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT act,
		       count(*) AS decisions,
		       avg(plan_micros) / 1000.0 AS avg_plan_ms,
		       quantile_cont(plan_micros, 0.99) / 1000.0 AS p99_plan_ms,
		       avg(depth) AS avg_depth,
		       avg(CASE WHEN truncated THEN 1.0 ELSE 0.0 END) AS truncated_rate,
		       avg(CASE WHEN fallback THEN 1.0 ELSE 0.0 END) AS fallback_rate,
		       avg(CASE WHEN replanned THEN 1.0 ELSE 0.0 END) AS replan_rate
		FROM decisions
		GROUP BY act
		ORDER BY act`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []planningReport
	for rows.Next() {
		var r planningReport
		if err := rows.Scan(&r.Act, &r.Decisions, &r.AvgPlanMs, &r.P99PlanMs, &r.AvgDepth, &r.TruncatedRate, &r.FallbackRate, &r.ReplanRate); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
