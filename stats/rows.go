// Package stats persists planner telemetry as parquet batches for offline
// analysis. One row per planning decision and one per finished combat.
package stats

// DecisionRow records a single planning call and the action it produced.
type DecisionRow struct {
	BattleID string `parquet:"battle_id,dict"`
	Turn     int32  `parquet:"turn"`
	Act      int32  `parquet:"act"`

	Action    string `parquet:"action,dict"`
	Replanned bool   `parquet:"replanned"`

	Depth             int32 `parquet:"depth"`
	Expanded          int32 `parquet:"expanded"`
	TranspositionHits int32 `parquet:"transposition_hits"`
	DroppedBranches   int32 `parquet:"dropped_branches"`
	Truncated         bool  `parquet:"truncated"`
	Fallback          bool  `parquet:"fallback"`
	PlanMicros        int64 `parquet:"plan_micros"`

	PlayerHP     int32 `parquet:"player_hp"`
	PlayerBlock  int32 `parquet:"player_block"`
	EnemiesAlive int32 `parquet:"enemies_alive"`
}

// CombatRow records the outcome of one whole battle.
type CombatRow struct {
	BattleID  string `parquet:"battle_id,dict"`
	Act       int32  `parquet:"act"`
	Encounter string `parquet:"encounter,dict"`

	Won     bool  `parquet:"won"`
	Turns   int32 `parquet:"turns"`
	FinalHP int32 `parquet:"final_hp"`
	HPLost  int32 `parquet:"hp_lost"`

	PotionsUsed int32  `parquet:"potions_used"`
	Source      string `parquet:"source,dict"`
}
