package game

import "testing"

func keyedState() CombatState {
	var s CombatState
	s.Player = Player{HP: 70, MaxHP: 80, Energy: 3}
	s.Enemies[0] = Enemy{ID: 0, HP: 40, MaxHP: 40}
	s.Enemies[1] = Enemy{ID: 1, HP: 30, MaxHP: 30}
	s.NumEnemies = 2
	s.Hand[0] = CardInstance{UUID: "a", Spec: CardSpec{ID: "Strike_R", Cost: 1}}
	s.Hand[1] = CardInstance{UUID: "b", Spec: CardSpec{ID: "Defend_R", Cost: 1}}
	s.NumCards = 2
	return s
}

func TestKey_EnemyOrderIndependent(t *testing.T) {
	a := keyedState()

	b := keyedState()
	b.Enemies[0], b.Enemies[1] = b.Enemies[1], b.Enemies[0]

	if a.Key() != b.Key() {
		t.Errorf("keys differ for reordered enemies:\n%q\n%q", a.Key(), b.Key())
	}
}

func TestKey_HandIsMultiset(t *testing.T) {
	a := keyedState()

	b := keyedState()
	b.Hand[0] = CardInstance{UUID: "x", Spec: CardSpec{ID: "Defend_R", Cost: 1}}
	b.Hand[1] = CardInstance{UUID: "y", Spec: CardSpec{ID: "Strike_R", Cost: 1}}

	// Same card ids in a different order under different instance ids.
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equivalent hands:\n%q\n%q", a.Key(), b.Key())
	}
}

func TestKey_PlayedCardsLeaveTheKey(t *testing.T) {
	a := keyedState()
	b := keyedState()
	b.PlayedMask = 1

	if a.Key() == b.Key() {
		t.Error("key ignores played cards")
	}
}

func TestKey_DiffersOnEnemyHP(t *testing.T) {
	a := keyedState()
	b := keyedState()
	b.Enemies[1].HP = 29

	if a.Key() == b.Key() {
		t.Error("key ignores enemy hp")
	}
}

func TestKey_GoneEnemyCollapses(t *testing.T) {
	a := keyedState()
	a.Enemies[1].Gone = true
	a.Enemies[1].HP = 0

	b := keyedState()
	b.Enemies[1].Gone = true
	b.Enemies[1].HP = 0
	b.Enemies[1].Block = 12

	// Residual stats on a dead enemy must not split the key.
	if a.Key() != b.Key() {
		t.Errorf("keys differ for dead enemy leftovers:\n%q\n%q", a.Key(), b.Key())
	}
}

func TestSignature_TracksLiveFields(t *testing.T) {
	a := keyedState()

	b := keyedState()
	b.Player.Energy = 2
	if a.Signature() == b.Signature() {
		t.Error("signature ignores energy")
	}

	c := keyedState()
	c.Enemies[0].Intent = IntentAttack
	if a.Signature() == c.Signature() {
		t.Error("signature ignores intent")
	}

	d := keyedState()
	d.Hand[1].UUID = "other"
	if a.Signature() == d.Signature() {
		t.Error("signature ignores hand instance ids")
	}
}

func TestSignature_PlayedCardMatchesRemovedCard(t *testing.T) {
	// Simulated states keep played cards in the hand array behind the mask;
	// the live game removes them. Both views must fingerprint identically.
	sim := keyedState()
	sim.PlayedMask = 1

	live := keyedState()
	live.Hand[0] = live.Hand[1]
	live.NumCards = 1

	if sim.Signature() != live.Signature() {
		t.Errorf("signatures differ:\n%q\n%q", sim.Signature(), live.Signature())
	}
}

func TestDebuffSet_Has(t *testing.T) {
	d := DebuffVulnerable | DebuffFrail
	if !d.Has(DebuffVulnerable) || !d.Has(DebuffFrail) {
		t.Error("missing set debuffs")
	}
	if d.Has(DebuffWeak) {
		t.Error("reports unset debuff")
	}
}

func TestPlayableCardCount(t *testing.T) {
	s := keyedState()
	s.Hand[1].Spec.Cost = 4
	if got := s.PlayableCardCount(); got != 1 {
		t.Errorf("playable = %d, want 1", got)
	}
	s.PlayedMask = 1
	if got := s.PlayableCardCount(); got != 0 {
		t.Errorf("playable = %d, want 0", got)
	}
}
