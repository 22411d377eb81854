// Package rules implements legal action generation and the forward combat
// simulator. Everything here is pure: states go in by value and come out by
// value, so search branches never alias each other.
package rules

import (
	"errors"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

// ErrIllegalAction indicates the simulator was asked to apply an action the
// generator should have filtered (insufficient energy, replayed card, dead
// target). The planner logs it and drops the branch; it is a caller bug, not
// a crash.
var ErrIllegalAction = errors.New("rules: illegal action")

// ErrBadDescriptor indicates an action referencing a slot or descriptor the
// simulator does not recognize. The offending branch is dropped.
var ErrBadDescriptor = errors.New("rules: unrecognized action descriptor")

// LegalActions returns every action playable from the state: unplayed hand
// cards within remaining energy and unused potions. Targets are left as
// NoTarget; the planner resolves them before simulation. EndTurn is always
// implicit and never listed.
func LegalActions(s *game.CombatState) []game.Action {
	actions := make([]game.Action, 0, int(s.NumCards)+int(s.NumPotions))

	for i := uint8(0); i < s.NumCards; i++ {
		if s.CardPlayed(i) {
			continue
		}
		if s.Hand[i].Spec.Cost > s.Player.Energy {
			continue
		}
		actions = append(actions, game.Action{
			Type:   game.ActionPlayCard,
			Slot:   i,
			Target: game.NoTarget,
			UUID:   s.Hand[i].UUID,
		})
	}

	for i := uint8(0); i < s.NumPotions; i++ {
		if s.PotionDrank(i) {
			continue
		}
		actions = append(actions, game.Action{
			Type:   game.ActionUsePotion,
			Slot:   i,
			Target: game.NoTarget,
			UUID:   s.Potions[i].UUID,
		})
	}

	return actions
}

// ExpectedIncomingDamage estimates the damage the player takes on the
// upcoming enemy turn: the sum of declared hit magnitude times hit count over
// live enemies with attack intents, with the weak multiplier applied per hit.
// Intents that declare no attack (or are unknown) contribute nothing; this is
// a deliberate approximation of partially-random enemy moves.
func ExpectedIncomingDamage(s *game.CombatState) int32 {
	var total int32
	for i := 0; i < int(s.NumEnemies); i++ {
		e := &s.Enemies[i]
		if e.Gone || !e.Intent.IsAttack() {
			continue
		}
		hits := e.IntentHits
		if hits < 1 {
			hits = 1
		}
		perHit := e.IntentDamage
		if e.Debuffs.Has(game.DebuffWeak) {
			perHit = int32(float64(perHit) * game.WeakMultiplier)
		}
		total += perHit * hits
	}
	return total
}
