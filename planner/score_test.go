package planner

import (
	"math"
	"testing"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

func scoreState() game.CombatState {
	var s game.CombatState
	s.Act = 1
	s.Player = game.Player{HP: 70, MaxHP: 80, Energy: 3}
	s.Enemies[0] = game.Enemy{ID: 0, HP: 40, MaxHP: 40, Intent: game.IntentAttack, IntentDamage: 12, IntentHits: 1}
	s.NumEnemies = 1
	return s
}

func TestFullScore_LethalOutcomeIsExcluded(t *testing.T) {
	cfg := DefaultConfig()
	initial := scoreState()

	final := initial
	final.Player.HP = 10
	final.Enemies[0].IntentDamage = 30

	if got := cfg.FullScore(&initial, &final); !math.IsInf(got, -1) {
		t.Errorf("score = %v, want -Inf for projected death", got)
	}
}

func TestFullScore_SurvivableLossIsLinear(t *testing.T) {
	cfg := DefaultConfig()
	initial := scoreState()
	initial.Enemies[0].IntentDamage = 23

	exposed := initial
	safe := initial
	safe.Enemies[0].Intent = game.IntentDefend

	diff := cfg.FullScore(&initial, &safe) - cfg.FullScore(&initial, &exposed)
	if diff != 8.0*23 {
		t.Errorf("death risk delta = %v, want 184 (8.0 * 23 hp)", diff)
	}
}

func TestFullScore_DangerPenaltyBelowActThreshold(t *testing.T) {
	cfg := DefaultConfig()
	initial := scoreState()
	initial.Player.HP = 25
	initial.Enemies[0].IntentDamage = 10

	// 25 hp - 10 loss = 15, under the act 1 floor of 20.
	endangered := initial

	comfortable := initial
	comfortable.Player.HP = 70
	comfortableBase := scoreState()
	comfortableBase.Player.HP = 70
	comfortableBase.Enemies[0].IntentDamage = 10

	got := cfg.FullScore(&initial, &endangered)
	want := cfg.FullScore(&comfortableBase, &comfortable) - cfg.DangerPenalty
	if got != want {
		t.Errorf("endangered score = %v, want %v (danger penalty applied once)", got, want)
	}
}

func TestFullScore_RewardsKillsAndDamage(t *testing.T) {
	cfg := DefaultConfig()
	initial := scoreState()

	final := initial
	final.Enemies[0].HP = 0
	final.Enemies[0].Gone = true
	final.Counters.MonstersKilled = 1
	final.Counters.TotalDamageDealt = 40

	base := cfg.FullScore(&initial, &initial)
	got := cfg.FullScore(&initial, &final)
	// Killing the only attacker also removes the projected hp loss.
	want := base + 100 + 2.0*40 + 8.0*12
	if got != want {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestFastScore_ZeroCostBonus(t *testing.T) {
	cfg := DefaultConfig()
	s := scoreState()
	s.Hand[0] = game.CardInstance{UUID: "a", Spec: game.CardSpec{ID: "Anger", Kind: game.CardAttack, Cost: 0, Damage: 6, NeedsTarget: true}}
	s.Hand[1] = game.CardInstance{UUID: "b", Spec: game.CardSpec{ID: "Strike_R", Kind: game.CardAttack, Cost: 1, Damage: 6, NeedsTarget: true}}
	s.NumCards = 2

	free := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 0})
	paid := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 1})
	if free-paid != cfg.FastZeroCost {
		t.Errorf("zero cost bonus = %v, want %v", free-paid, cfg.FastZeroCost)
	}
}

func TestFastScore_BlockBonusOnlyAtLowHP(t *testing.T) {
	cfg := DefaultConfig()
	s := scoreState()
	s.Hand[0] = game.CardInstance{UUID: "a", Spec: game.CardSpec{ID: "Defend_R", Kind: game.CardSkill, Cost: 1, Block: 5}}
	s.NumCards = 1
	a := game.Action{Type: game.ActionPlayCard, Slot: 0}

	healthy := cfg.FastScore(&s, a)
	s.Player.HP = 30 // under half of 80
	hurt := cfg.FastScore(&s, a)
	if hurt-healthy != cfg.FastBlockLowHP {
		t.Errorf("low hp block bonus = %v, want %v", hurt-healthy, cfg.FastBlockLowHP)
	}
}

func TestFastScore_StaleDebuffScoresZero(t *testing.T) {
	cfg := DefaultConfig()
	s := scoreState()
	s.Enemies[0].Debuffs = game.DebuffWeak
	s.Hand[0] = game.CardInstance{UUID: "a", Spec: game.CardSpec{ID: "Intimidate", Kind: game.CardSkill, Cost: 0, AOE: true, Applies: game.DebuffWeak, Exhaust: true}}
	s.NumCards = 1

	if got := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 0}); got != 0 {
		t.Errorf("stale debuff score = %v, want 0", got)
	}

	// A second, undebuffed enemy makes the action fresh again.
	s.Enemies[1] = game.Enemy{ID: 1, HP: 20, MaxHP: 20}
	s.NumEnemies = 2
	if got := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 0}); got == 0 {
		t.Error("fresh debuff target still scores 0")
	}
}

func TestFastScore_AOEDamageScalesWithEnemies(t *testing.T) {
	cfg := DefaultConfig()
	s := scoreState()
	s.Enemies[1] = game.Enemy{ID: 1, HP: 20, MaxHP: 20}
	s.NumEnemies = 2
	s.Hand[0] = game.CardInstance{UUID: "a", Spec: game.CardSpec{ID: "Cleave", Kind: game.CardAttack, Cost: 1, Damage: 8, AOE: true}}
	s.Hand[1] = game.CardInstance{UUID: "b", Spec: game.CardSpec{ID: "Strike_R", Kind: game.CardAttack, Cost: 1, Damage: 8, NeedsTarget: true}}
	s.NumCards = 2

	aoe := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 0})
	single := cfg.FastScore(&s, game.Action{Type: game.ActionPlayCard, Slot: 1})
	if aoe <= single {
		t.Errorf("aoe %v not preferred over single %v with two enemies", aoe, single)
	}
}
