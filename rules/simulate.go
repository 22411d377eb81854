package rules

import (
	"fmt"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

// Apply advances the state by one action and returns the resulting state.
// It is total and side-effect-free: the input state is never mutated, and
// every failure comes back as an error rather than a panic.
func Apply(s game.CombatState, a game.Action) (game.CombatState, error) {
	switch a.Type {
	case game.ActionEndTurn:
		return s, nil
	case game.ActionPlayCard:
		return applyCard(s, a)
	case game.ActionUsePotion:
		return applyPotion(s, a)
	default:
		return s, fmt.Errorf("%w: action type %d", ErrBadDescriptor, a.Type)
	}
}

func applyCard(s game.CombatState, a game.Action) (game.CombatState, error) {
	if a.Slot >= s.NumCards {
		return s, fmt.Errorf("%w: hand slot %d of %d", ErrBadDescriptor, a.Slot, s.NumCards)
	}
	if s.CardPlayed(a.Slot) {
		return s, fmt.Errorf("%w: card %s already played", ErrIllegalAction, a.UUID)
	}
	spec := s.Hand[a.Slot].Spec
	if spec.Cost > s.Player.Energy {
		return s, fmt.Errorf("%w: card %s costs %d, %d energy left", ErrIllegalAction, spec.ID, spec.Cost, s.Player.Energy)
	}
	if spec.NeedsTarget && !spec.AOE {
		if a.Target < 0 || a.Target >= int32(s.NumEnemies) {
			return s, fmt.Errorf("%w: card %s needs a target", ErrIllegalAction, spec.ID)
		}
		if s.Enemies[a.Target].Gone {
			return s, fmt.Errorf("%w: card %s targets dead enemy %d", ErrIllegalAction, spec.ID, s.Enemies[a.Target].ID)
		}
	}

	s.Player.Energy -= spec.Cost
	s.PlayedMask |= 1 << a.Slot
	if spec.Cost == 0 {
		s.Counters.EnergySaved++
	}

	if spec.Damage > 0 {
		hits := spec.Hits
		if hits < 1 {
			hits = 1
		}
		if spec.AOE {
			for i := 0; i < int(s.NumEnemies); i++ {
				if s.Enemies[i].Gone {
					continue
				}
				dealHits(&s, int32(i), spec.Damage, hits)
			}
		} else {
			dealHits(&s, a.Target, spec.Damage, hits)
		}
	}

	if spec.Applies != 0 {
		if spec.AOE {
			for i := 0; i < int(s.NumEnemies); i++ {
				if !s.Enemies[i].Gone {
					s.Enemies[i].Debuffs |= spec.Applies
				}
			}
		} else if a.Target >= 0 && a.Target < int32(s.NumEnemies) && !s.Enemies[a.Target].Gone {
			s.Enemies[a.Target].Debuffs |= spec.Applies
		}
	}

	if spec.Block > 0 {
		gain := spec.Block + s.Player.Dexterity
		if s.Player.Debuffs.Has(game.DebuffFrail) {
			gain = int32(float64(gain) * game.FrailMultiplier)
		}
		if gain > 0 {
			s.Player.Block += gain
		}
	}

	if spec.Draw > 0 {
		// Draws are not simulated; the counter feeds synergy scoring only.
		s.Counters.CardsDrawn += spec.Draw
	}
	if spec.Energy > 0 {
		s.Player.Energy += spec.Energy
		s.Counters.EnergyGained += spec.Energy
	}
	if spec.StrengthGain > 0 {
		s.Player.Strength += spec.StrengthGain
	}
	if spec.Exhaust {
		s.Counters.ExhaustEvents++
	}

	return s, nil
}

// dealHits resolves hits sequential attack hits from the player against one
// enemy: strength added per hit, vulnerable ×1.5 per hit, block consumed
// before hp, hp clamped at zero.
func dealHits(s *game.CombatState, target int32, base int32, hits int32) {
	if target < 0 || target >= int32(s.NumEnemies) {
		return
	}
	e := &s.Enemies[target]
	for h := int32(0); h < hits; h++ {
		if e.Gone {
			return
		}
		dmg := base + s.Player.Strength
		if e.Debuffs.Has(game.DebuffVulnerable) {
			dmg = int32(float64(dmg) * game.VulnerableMultiplier)
		}
		if dmg < 0 {
			dmg = 0
		}

		blocked := dmg
		if blocked > e.Block {
			blocked = e.Block
		}
		e.Block -= blocked
		hpDmg := dmg - blocked
		if hpDmg > e.HP {
			// Overkill beyond remaining hp is not tracked further.
			hpDmg = e.HP
		}
		e.HP -= hpDmg

		s.Counters.DamageInstances++
		s.Counters.TotalDamageDealt += hpDmg

		if e.HP <= 0 {
			e.HP = 0
			e.Gone = true
			s.Counters.MonstersKilled++
		}
	}
}

func applyPotion(s game.CombatState, a game.Action) (game.CombatState, error) {
	if a.Slot >= s.NumPotions {
		return s, fmt.Errorf("%w: potion slot %d of %d", ErrBadDescriptor, a.Slot, s.NumPotions)
	}
	if s.PotionDrank(a.Slot) {
		return s, fmt.Errorf("%w: potion %s already used", ErrIllegalAction, a.UUID)
	}
	spec := s.Potions[a.Slot].Spec
	if spec.NeedsTarget && !spec.AOE {
		if a.Target < 0 || a.Target >= int32(s.NumEnemies) {
			return s, fmt.Errorf("%w: potion %s needs a target", ErrIllegalAction, spec.ID)
		}
		if s.Enemies[a.Target].Gone {
			return s, fmt.Errorf("%w: potion %s targets dead enemy %d", ErrIllegalAction, spec.ID, s.Enemies[a.Target].ID)
		}
	}

	s.DrankMask |= 1 << a.Slot

	switch spec.Kind {
	case game.PotionDamage:
		// Potions deal their printed value: no strength, no debuff scaling.
		if spec.AOE {
			for i := 0; i < int(s.NumEnemies); i++ {
				if !s.Enemies[i].Gone {
					potionDamage(&s, int32(i), spec.Value)
				}
			}
		} else {
			potionDamage(&s, a.Target, spec.Value)
		}
	case game.PotionBlock:
		s.Player.Block += spec.Value
	case game.PotionHeal:
		s.Player.HP += spec.Value
		if s.Player.HP > s.Player.MaxHP {
			s.Player.HP = s.Player.MaxHP
		}
	case game.PotionStrength:
		s.Player.Strength += spec.Value
	case game.PotionEnergy:
		s.Player.Energy += spec.Value
		s.Counters.EnergyGained += spec.Value
	default:
		return s, fmt.Errorf("%w: potion kind %d", ErrBadDescriptor, spec.Kind)
	}

	return s, nil
}

func potionDamage(s *game.CombatState, target int32, dmg int32) {
	if target < 0 || target >= int32(s.NumEnemies) {
		return
	}
	e := &s.Enemies[target]
	if e.Gone {
		return
	}

	blocked := dmg
	if blocked > e.Block {
		blocked = e.Block
	}
	e.Block -= blocked
	hpDmg := dmg - blocked
	if hpDmg > e.HP {
		hpDmg = e.HP
	}
	e.HP -= hpDmg

	s.Counters.DamageInstances++
	s.Counters.TotalDamageDealt += hpDmg

	if e.HP <= 0 {
		e.HP = 0
		e.Gone = true
		s.Counters.MonstersKilled++
	}
}
