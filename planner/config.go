// Package planner implements the bounded beam search that turns one combat
// snapshot into an ordered turn plan. Candidate actions are cheaply ranked,
// the survivors simulated and fully scored, and equivalent positions merged
// through a transposition table, all under a hard wall-clock budget.
package planner

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config gathers every tunable weight and search parameter in one place, so a
// single struct passed at construction controls the whole planner. Zero-value
// fields are not usable; start from DefaultConfig.
type Config struct {
	// Full evaluation weights.
	KillBonus     float64 `yaml:"kill_bonus"`
	DamageWeight  float64 `yaml:"damage_weight"`
	BlockWeight   float64 `yaml:"block_weight"`
	EnergyWeight  float64 `yaml:"energy_weight"`
	ExhaustWeight float64 `yaml:"exhaust_weight"`
	DrawWeight    float64 `yaml:"draw_weight"`
	EconomyWeight float64 `yaml:"economy_weight"`

	// Survival terms.
	DeathRiskWeight float64 `yaml:"death_risk_weight"`
	DangerPenalty   float64 `yaml:"danger_penalty"`
	// DangerHPByAct is the hp floor under which the danger penalty fires,
	// indexed by act (act 1 at index 0; later acts use the last entry).
	DangerHPByAct []int32 `yaml:"danger_hp_by_act"`

	// Threat model weights.
	ThreatDebuff  float64 `yaml:"threat_debuff"`
	ThreatScaling float64 `yaml:"threat_scaling"`
	ThreatBoss    float64 `yaml:"threat_boss"`
	ThreatBuff    float64 `yaml:"threat_buff"`

	// Fast pre-scoring terms.
	FastZeroCost     float64 `yaml:"fast_zero_cost"`
	FastOffensive    float64 `yaml:"fast_offensive"`
	FastBlockLowHP   float64 `yaml:"fast_block_low_hp"`
	FastDamageWeight float64 `yaml:"fast_damage_weight"`
	// LowHPFraction is the hp/maxhp ratio under which block gains the fast
	// scoring bonus.
	LowHPFraction float64 `yaml:"low_hp_fraction"`

	// Search shape. BeamWidthByAct is indexed like DangerHPByAct. BranchLimit
	// caps how many pre-scored candidates survive per node at each depth;
	// depths past the end reuse the last entry.
	BeamWidthByAct []int `yaml:"beam_width_by_act"`
	BranchLimit    []int `yaml:"branch_limit"`
	MaxDepthCap    int   `yaml:"max_depth_cap"`

	// Budget is the wall-clock limit for one planning call. YAML overrides
	// set it through BudgetMS; yaml.v3 has no native duration support.
	Budget   time.Duration `yaml:"-"`
	BudgetMS int           `yaml:"budget_ms"`
}

// DefaultConfig returns the tuned baseline parameters.
func DefaultConfig() Config {
	return Config{
		KillBonus:     100,
		DamageWeight:  2.0,
		BlockWeight:   1.5,
		EnergyWeight:  3.0,
		ExhaustWeight: 3.0,
		DrawWeight:    3.0,
		EconomyWeight: 4.0,

		DeathRiskWeight: 8.0,
		DangerPenalty:   50,
		DangerHPByAct:   []int32{20, 25, 30},

		ThreatDebuff:  10,
		ThreatScaling: 15,
		ThreatBoss:    20,
		ThreatBuff:    8,

		FastZeroCost:     20,
		FastOffensive:    10,
		FastBlockLowHP:   15,
		FastDamageWeight: 2,
		LowHPFraction:    0.5,

		BeamWidthByAct: []int{12, 18, 25},
		BranchLimit:    []int{12, 10, 7, 5, 4},
		MaxDepthCap:    5,

		Budget: 80 * time.Millisecond,
	}
}

// LoadConfig reads a YAML overrides file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.BudgetMS > 0 {
		cfg.Budget = time.Duration(cfg.BudgetMS) * time.Millisecond
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.BeamWidthByAct) == 0 {
		return fmt.Errorf("beam_width_by_act must not be empty")
	}
	if len(c.BranchLimit) == 0 {
		return fmt.Errorf("branch_limit must not be empty")
	}
	if len(c.DangerHPByAct) == 0 {
		return fmt.Errorf("danger_hp_by_act must not be empty")
	}
	if c.MaxDepthCap < 1 {
		return fmt.Errorf("max_depth_cap must be at least 1")
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	return nil
}

// byAct picks the entry for a 1-based act, clamping to the last entry for
// acts beyond the table.
func byAct[T any](table []T, act int32) T {
	i := int(act) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// beamWidth returns the frontier width for the given act.
func (c *Config) beamWidth(act int32) int { return byAct(c.BeamWidthByAct, act) }

// dangerHP returns the hp floor for the danger penalty in the given act.
func (c *Config) dangerHP(act int32) int32 { return byAct(c.DangerHPByAct, act) }

// branchLimit returns the per-node candidate cap at the given depth.
func (c *Config) branchLimit(depth int) int {
	if depth >= len(c.BranchLimit) {
		depth = len(c.BranchLimit) - 1
	}
	return c.BranchLimit[depth]
}
