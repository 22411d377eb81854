package main

import (
	"encoding/json"
	"testing"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

const stateFixture = `{
	"battle_id": "run1-fight3",
	"act": 2,
	"turn": 4,
	"player": {"hp": 48, "max_hp": 75, "block": 0, "energy": 3, "strength": 2, "dexterity": 0, "powers": ["Frail"]},
	"hand": [
		{"uuid": "c1", "id": "Strike_R", "cost": 1},
		{"uuid": "c2", "id": "Mystery Card", "cost": 2}
	],
	"potions": [
		{"uuid": "p1", "id": "Fire Potion"},
		{"uuid": "p2", "id": "Mystery Brew"}
	],
	"monsters": [
		{"name": "Champ", "hp": 240, "max_hp": 240, "block": 0, "intent": "ATTACK_DEBUFF", "move_adjusted_damage": 12, "move_hits": 1, "powers": []},
		{"name": "Cultist", "hp": 0, "max_hp": 50, "is_gone": true, "intent": "NONE", "powers": ["Weakened"]}
	]
}`

func TestToState_FullSnapshot(t *testing.T) {
	var snap combatSnapshot
	if err := json.Unmarshal([]byte(stateFixture), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s, err := snap.toState()
	if err != nil {
		t.Fatalf("toState failed: %v", err)
	}

	if s.Act != 2 || s.Turn != 4 {
		t.Errorf("act/turn = %d/%d, want 2/4", s.Act, s.Turn)
	}
	if !s.Player.Debuffs.Has(game.DebuffFrail) {
		t.Error("player frail dropped")
	}
	if s.Player.Strength != 2 {
		t.Errorf("strength = %d, want 2", s.Player.Strength)
	}

	if s.NumEnemies != 2 {
		t.Fatalf("enemies = %d, want 2", s.NumEnemies)
	}
	champ := s.Enemies[0]
	if !champ.Boss || champ.Intent != game.IntentAttackDebuff || champ.IntentDamage != 12 {
		t.Errorf("champ decoded wrong: %+v", champ)
	}
	if !s.Enemies[1].Gone {
		t.Error("dead cultist not gone")
	}
	if !s.Enemies[1].Debuffs.Has(game.DebuffWeak) {
		t.Error("cultist weak dropped")
	}

	if s.NumCards != 2 {
		t.Fatalf("cards = %d, want 2", s.NumCards)
	}
	if s.Hand[0].Spec.Damage != 6 {
		t.Errorf("Strike_R not filled from catalog: %+v", s.Hand[0].Spec)
	}
	// Unknown cards keep their live cost and stay playable.
	if s.Hand[1].Spec.Cost != 2 || s.Hand[1].Spec.ID != "Mystery Card" {
		t.Errorf("unknown card decoded wrong: %+v", s.Hand[1].Spec)
	}

	// Unknown potions are dropped, known ones kept.
	if s.NumPotions != 1 || s.Potions[0].UUID != "p1" {
		t.Errorf("potions decoded wrong: n=%d %+v", s.NumPotions, s.Potions[0])
	}
}

func TestToState_LiveCostWins(t *testing.T) {
	snap := combatSnapshot{
		Act: 1, Turn: 1,
		Player:   playerSnapshot{HP: 70, MaxHP: 80, Energy: 3},
		Hand:     []cardSnapshot{{UUID: "c1", ID: "Bludgeon", Cost: 0}},
		Monsters: []monsterSnap{{Name: "JawWorm", HP: 42, MaxHP: 42, Intent: "ATTACK", IntentDamage: 11, IntentHits: 1}},
	}
	s, err := snap.toState()
	if err != nil {
		t.Fatalf("toState failed: %v", err)
	}
	if s.Hand[0].Spec.Cost != 0 {
		t.Errorf("cost = %d, want the reported 0", s.Hand[0].Spec.Cost)
	}
	if s.Hand[0].Spec.Damage != 32 {
		t.Errorf("damage = %d, want the catalog's 32", s.Hand[0].Spec.Damage)
	}
}

func TestToState_RejectsOverflow(t *testing.T) {
	snap := combatSnapshot{
		Player:   playerSnapshot{HP: 70, MaxHP: 80},
		Monsters: make([]monsterSnap, game.MaxEnemies+1),
	}
	if _, err := snap.toState(); err == nil {
		t.Error("too many monsters accepted")
	}
}

func TestParseIntent(t *testing.T) {
	cases := map[string]game.IntentKind{
		"ATTACK":        game.IntentAttack,
		"ATTACK_BUFF":   game.IntentAttackBuff,
		"ATTACK_DEBUFF": game.IntentAttackDebuff,
		"DEFEND":        game.IntentDefend,
		"BUFF":          game.IntentBuff,
		"STRONG_DEBUFF": game.IntentDebuff,
		"SLEEP":         game.IntentUnknown,
		"":              game.IntentUnknown,
	}
	for wire, want := range cases {
		if got := parseIntent(wire); got != want {
			t.Errorf("parseIntent(%q) = %v, want %v", wire, got, want)
		}
	}
}

func TestEncodeCommand(t *testing.T) {
	b, err := encodeCommand(game.Action{Type: game.ActionPlayCard, UUID: "c1", Target: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"command":"play","uuid":"c1","target_index":1}` {
		t.Errorf("play command = %s", got)
	}

	b, err = encodeCommand(game.Action{Type: game.ActionEndTurn, Target: game.NoTarget})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"command":"end"}` {
		t.Errorf("end command = %s", got)
	}
}
