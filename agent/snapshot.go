package main

import (
	"encoding/json"
	"fmt"

	"github.com/WangCCe/slay-the-spire-ai/catalog"
	"github.com/WangCCe/slay-the-spire-ai/game"
)

// combatSnapshot is the wire form of one combat state event from the mod.
type combatSnapshot struct {
	BattleID    string         `json:"battle_id"`
	Act         int32          `json:"act"`
	Turn        int32          `json:"turn"`
	RandomEvent bool           `json:"random_event"`
	Player      playerSnapshot `json:"player"`
	Hand        []cardSnapshot `json:"hand"`
	Potions     []itemSnapshot `json:"potions"`
	Monsters    []monsterSnap  `json:"monsters"`
}

type playerSnapshot struct {
	HP        int32    `json:"hp"`
	MaxHP     int32    `json:"max_hp"`
	Block     int32    `json:"block"`
	Energy    int32    `json:"energy"`
	Strength  int32    `json:"strength"`
	Dexterity int32    `json:"dexterity"`
	Powers    []string `json:"powers"`
}

type cardSnapshot struct {
	UUID string `json:"uuid"`
	ID   string `json:"id"`
	Cost int32  `json:"cost"`
}

type itemSnapshot struct {
	UUID string `json:"uuid"`
	ID   string `json:"id"`
}

type monsterSnap struct {
	Name         string   `json:"name"`
	HP           int32    `json:"hp"`
	MaxHP        int32    `json:"max_hp"`
	Block        int32    `json:"block"`
	Gone         bool     `json:"is_gone"`
	Intent       string   `json:"intent"`
	IntentDamage int32    `json:"move_adjusted_damage"`
	IntentHits   int32    `json:"move_hits"`
	Powers       []string `json:"powers"`
}

// toState converts a wire snapshot into the planner's combat state, filling
// card and potion effects from the catalog. Unknown cards are kept with only
// their reported cost, so they stay legal but score nothing.
func (cs *combatSnapshot) toState() (game.CombatState, error) {
	var s game.CombatState
	s.Act = cs.Act
	s.Turn = cs.Turn

	s.Player = game.Player{
		HP:        cs.Player.HP,
		MaxHP:     cs.Player.MaxHP,
		Block:     cs.Player.Block,
		Energy:    cs.Player.Energy,
		Strength:  cs.Player.Strength,
		Dexterity: cs.Player.Dexterity,
		Debuffs:   parseDebuffs(cs.Player.Powers),
	}

	if len(cs.Monsters) > game.MaxEnemies {
		return s, fmt.Errorf("%d monsters exceeds capacity %d", len(cs.Monsters), game.MaxEnemies)
	}
	for i, m := range cs.Monsters {
		traits := catalog.Traits(m.Name)
		s.Enemies[i] = game.Enemy{
			ID:           int32(i),
			HP:           m.HP,
			MaxHP:        m.MaxHP,
			Block:        m.Block,
			Debuffs:      parseDebuffs(m.Powers),
			Intent:       parseIntent(m.Intent),
			IntentDamage: m.IntentDamage,
			IntentHits:   m.IntentHits,
			Boss:         traits.Boss,
			Scaling:      traits.Scaling,
			Gone:         m.Gone || m.HP <= 0,
		}
	}
	s.NumEnemies = uint8(len(cs.Monsters))

	if len(cs.Hand) > game.MaxHandSize {
		return s, fmt.Errorf("%d cards exceeds hand capacity %d", len(cs.Hand), game.MaxHandSize)
	}
	for i, c := range cs.Hand {
		spec, ok := catalog.Card(c.ID)
		if !ok {
			spec = game.CardSpec{ID: c.ID, Kind: game.CardSkill}
		}
		// The live cost wins over the catalog: snecko, discounts, curses.
		spec.Cost = c.Cost
		s.Hand[i] = game.CardInstance{UUID: c.UUID, Spec: spec}
	}
	s.NumCards = uint8(len(cs.Hand))

	if len(cs.Potions) > game.MaxPotions {
		return s, fmt.Errorf("%d potions exceeds belt capacity %d", len(cs.Potions), game.MaxPotions)
	}
	n := uint8(0)
	for _, p := range cs.Potions {
		spec, ok := catalog.Potion(p.ID)
		if !ok {
			// Unknown potions are not worth simulating.
			continue
		}
		s.Potions[n] = game.PotionInstance{UUID: p.UUID, Spec: spec}
		n++
	}
	s.NumPotions = n

	return s, nil
}

func parseDebuffs(powers []string) game.DebuffSet {
	var d game.DebuffSet
	for _, p := range powers {
		switch p {
		case "Vulnerable":
			d |= game.DebuffVulnerable
		case "Weakened", "Weak":
			d |= game.DebuffWeak
		case "Frail":
			d |= game.DebuffFrail
		}
	}
	return d
}

func parseIntent(intent string) game.IntentKind {
	switch intent {
	case "ATTACK":
		return game.IntentAttack
	case "ATTACK_BUFF":
		return game.IntentAttackBuff
	case "ATTACK_DEBUFF":
		return game.IntentAttackDebuff
	case "DEFEND", "DEFEND_BUFF":
		return game.IntentDefend
	case "BUFF":
		return game.IntentBuff
	case "DEBUFF", "STRONG_DEBUFF":
		return game.IntentDebuff
	default:
		return game.IntentUnknown
	}
}

// command is the wire form of one action sent back to the mod.
type command struct {
	Command     string `json:"command"`
	UUID        string `json:"uuid,omitempty"`
	TargetIndex *int32 `json:"target_index,omitempty"`
}

func encodeCommand(a game.Action) ([]byte, error) {
	var c command
	switch a.Type {
	case game.ActionPlayCard:
		c.Command = "play"
		c.UUID = a.UUID
	case game.ActionUsePotion:
		c.Command = "potion"
		c.UUID = a.UUID
	default:
		c.Command = "end"
	}
	if a.Target != game.NoTarget {
		t := a.Target
		c.TargetIndex = &t
	}
	return json.Marshal(c)
}
