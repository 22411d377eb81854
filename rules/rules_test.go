package rules

import (
	"testing"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

func TestLegalActions_FiltersEnergyAndPlayed(t *testing.T) {
	s := testState(
		game.CardSpec{ID: "Strike_R", Kind: game.CardAttack, Cost: 1, Damage: 6, NeedsTarget: true},
		game.CardSpec{ID: "Bludgeon", Kind: game.CardAttack, Cost: 3, Damage: 32, NeedsTarget: true},
		game.CardSpec{ID: "Anger", Kind: game.CardAttack, Cost: 0, Damage: 6, NeedsTarget: true},
	)
	s.Player.Energy = 2
	s.PlayedMask = 1 // slot 0 already played

	actions := LegalActions(&s)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %v", len(actions), actions)
	}
	if actions[0].Slot != 2 {
		t.Errorf("action slot = %d, want 2 (the zero-cost card)", actions[0].Slot)
	}
	if actions[0].Target != game.NoTarget {
		t.Errorf("target = %d, want NoTarget before resolution", actions[0].Target)
	}
}

func TestLegalActions_IncludesUnusedPotions(t *testing.T) {
	s := testState()
	s.Potions[0] = game.PotionInstance{UUID: "fire-1", Spec: game.PotionSpec{ID: "Fire Potion", Kind: game.PotionDamage, Value: 20, NeedsTarget: true}}
	s.Potions[1] = game.PotionInstance{UUID: "block-1", Spec: game.PotionSpec{ID: "Block Potion", Kind: game.PotionBlock, Value: 12}}
	s.NumPotions = 2
	s.DrankMask = 1 // slot 0 already used

	actions := LegalActions(&s)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %v", len(actions), actions)
	}
	if actions[0].Type != game.ActionUsePotion || actions[0].UUID != "block-1" {
		t.Errorf("got %+v, want the unused block potion", actions[0])
	}
}

func TestExpectedIncomingDamage_SumsAttackIntents(t *testing.T) {
	var s game.CombatState
	s.NumEnemies = 3
	s.Enemies[0] = game.Enemy{ID: 0, HP: 40, Intent: game.IntentAttack, IntentDamage: 8, IntentHits: 2}
	s.Enemies[1] = game.Enemy{ID: 1, HP: 40, Intent: game.IntentDefend}
	s.Enemies[2] = game.Enemy{ID: 2, HP: 40, Intent: game.IntentAttack, IntentDamage: 5, IntentHits: 1, Gone: true}

	if got := ExpectedIncomingDamage(&s); got != 16 {
		t.Errorf("incoming = %d, want 16 (only the live attacker)", got)
	}
}

func TestExpectedIncomingDamage_WeakReducesPerHit(t *testing.T) {
	var s game.CombatState
	s.NumEnemies = 1
	s.Enemies[0] = game.Enemy{ID: 0, HP: 40, Intent: game.IntentAttack, IntentDamage: 10, IntentHits: 2, Debuffs: game.DebuffWeak}

	// floor(10 * 0.75) = 7 per hit.
	if got := ExpectedIncomingDamage(&s); got != 14 {
		t.Errorf("incoming = %d, want 14", got)
	}
}

func TestExpectedIncomingDamage_UnknownIntentContributesNothing(t *testing.T) {
	var s game.CombatState
	s.NumEnemies = 1
	s.Enemies[0] = game.Enemy{ID: 0, HP: 40, Intent: game.IntentUnknown, IntentDamage: 99, IntentHits: 3}

	if got := ExpectedIncomingDamage(&s); got != 0 {
		t.Errorf("incoming = %d, want 0", got)
	}
}

func TestExpectedIncomingDamage_ZeroHitsCountsAsOne(t *testing.T) {
	var s game.CombatState
	s.NumEnemies = 1
	s.Enemies[0] = game.Enemy{ID: 0, HP: 40, Intent: game.IntentAttack, IntentDamage: 12}

	if got := ExpectedIncomingDamage(&s); got != 12 {
		t.Errorf("incoming = %d, want 12", got)
	}
}
