package game

import (
	"sort"
	"strconv"
)

// StateKey is a canonical, order-independent projection of a CombatState.
// Two states with equal keys are interchangeable for search purposes even if
// they were reached via different action orders.
type StateKey string

// Key builds the canonical key: player scalars, enemies sorted by their
// stable identity key, and the remaining (unplayed) hand as a sorted
// multiset of card ids.
func (s *CombatState) Key() StateKey {
	buf := make([]byte, 0, 160)

	buf = appendInt(buf, s.Player.HP)
	buf = appendInt(buf, s.Player.Block)
	buf = appendInt(buf, s.Player.Energy)
	buf = appendInt(buf, s.Player.Strength)
	buf = appendInt(buf, s.Player.Dexterity)
	buf = append(buf, byte(s.Player.Debuffs), '|')

	var order [MaxEnemies]int
	for i := 0; i < int(s.NumEnemies); i++ {
		order[i] = i
	}
	idx := order[:s.NumEnemies]
	sort.Slice(idx, func(a, b int) bool { return s.Enemies[idx[a]].ID < s.Enemies[idx[b]].ID })
	for _, i := range idx {
		e := &s.Enemies[i]
		buf = appendInt(buf, e.ID)
		if e.Gone {
			buf = append(buf, 'x', ';')
			continue
		}
		buf = appendInt(buf, e.HP)
		buf = appendInt(buf, e.Block)
		buf = append(buf, byte(e.Debuffs), ';')
	}
	buf = append(buf, '|')

	var hand [MaxHandSize]string
	n := 0
	for i := uint8(0); i < s.NumCards; i++ {
		if !s.CardPlayed(i) {
			hand[n] = s.Hand[i].Spec.ID
			n++
		}
	}
	cards := hand[:n]
	sort.Strings(cards)
	for _, id := range cards {
		buf = append(buf, id...)
		buf = append(buf, ',')
	}

	return StateKey(buf)
}

// TurnPlanSignature fingerprints the externally observed state at plan time:
// hand card instance ids, energy, and each enemy's hp/block/intent/gone flag.
// The replan guard compares it against the live state before every queued
// action; any difference invalidates the cached plan.
type TurnPlanSignature string

// Signature builds the plan fingerprint for the state as observed. Unlike
// Key, it is order-sensitive and uses card instance ids, because it tracks
// the exact external snapshot the plan was computed against. Played slots are
// skipped so a simulated mid-plan state fingerprints the same as the live
// state it predicts.
func (s *CombatState) Signature() TurnPlanSignature {
	buf := make([]byte, 0, 200)

	buf = appendInt(buf, s.Player.Energy)
	buf = appendInt(buf, s.Player.HP)
	buf = appendInt(buf, s.Player.Block)
	buf = append(buf, '|')

	for i := uint8(0); i < s.NumCards; i++ {
		if s.CardPlayed(i) {
			continue
		}
		buf = append(buf, s.Hand[i].UUID...)
		buf = append(buf, ',')
	}
	buf = append(buf, '|')

	for i := 0; i < int(s.NumEnemies); i++ {
		e := &s.Enemies[i]
		buf = appendInt(buf, e.ID)
		buf = appendInt(buf, e.HP)
		buf = appendInt(buf, e.Block)
		buf = append(buf, byte(e.Intent))
		if e.Gone {
			buf = append(buf, 'x')
		}
		buf = append(buf, ';')
	}

	return TurnPlanSignature(buf)
}

func appendInt(buf []byte, v int32) []byte {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return append(buf, ':')
}
