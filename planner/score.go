package planner

import (
	"math"

	"github.com/WangCCe/slay-the-spire-ai/game"
	"github.com/WangCCe/slay-the-spire-ai/rules"
)

// FastScore ranks a candidate action without simulating it, so expensive
// full evaluation only runs on the most promising branches. It rewards free
// actions, offense while enemies stand, block when hp is low, and raw damage
// output. A debuff action with no fresh target left scores zero.
func (c *Config) FastScore(s *game.CombatState, a game.Action) float64 {
	var (
		cost    int32
		damage  int32
		hits    int32
		block   int32
		aoe     bool
		applies game.DebuffSet
		strong  bool
	)
	switch a.Type {
	case game.ActionPlayCard:
		spec := s.Hand[a.Slot].Spec
		cost, damage, hits = spec.Cost, spec.Damage, spec.Hits
		block, aoe, applies = spec.Block, spec.AOE, spec.Applies
		strong = true
	case game.ActionUsePotion:
		spec := s.Potions[a.Slot].Spec
		aoe = spec.AOE
		switch spec.Kind {
		case game.PotionDamage:
			damage, hits = spec.Value, 1
		case game.PotionBlock:
			block = spec.Value
		}
	default:
		return 0
	}

	live := s.LiveEnemyCount()
	if applies != 0 && damage == 0 && !hasFreshTarget(s, applies) {
		return 0
	}

	score := 0.0
	if cost == 0 {
		score += c.FastZeroCost
	}
	if damage > 0 && live > 0 {
		score += c.FastOffensive
	}
	if block > 0 && float64(s.Player.HP) < c.LowHPFraction*float64(s.Player.MaxHP) {
		score += c.FastBlockLowHP
	}

	if damage > 0 {
		perHit := damage
		if strong {
			perHit += s.Player.Strength
		}
		if hits < 1 {
			hits = 1
		}
		est := perHit * hits
		if aoe {
			est *= int32(live)
		}
		score += c.FastDamageWeight * float64(est)
	}

	return score
}

// hasFreshTarget reports whether any live enemy is still missing at least one
// of the debuffs the action applies.
func hasFreshTarget(s *game.CombatState, applies game.DebuffSet) bool {
	for i := 0; i < int(s.NumEnemies); i++ {
		e := &s.Enemies[i]
		if !e.Gone && e.Debuffs&applies != applies {
			return true
		}
	}
	return false
}

// FullScore evaluates the terminal state of a simulated sequence against the
// state the plan started from. Offensive progress, defense, and card economy
// add up; projected hp loss on the coming enemy turn subtracts, and a
// sequence that leaves the player dead to declared intents is excluded
// outright with -Inf.
func (c *Config) FullScore(initial, final *game.CombatState) float64 {
	cnt := &final.Counters

	score := c.KillBonus * float64(cnt.MonstersKilled)
	score += c.DamageWeight * float64(cnt.TotalDamageDealt)
	score += c.BlockWeight * float64(final.Player.Block)

	spent := initial.Player.Energy + cnt.EnergyGained - final.Player.Energy
	if spent > 0 {
		score += c.EnergyWeight * float64(spent)
	}
	score += c.ExhaustWeight * float64(cnt.ExhaustEvents)
	score += c.DrawWeight * float64(cnt.CardsDrawn)
	score += c.EconomyWeight * float64(cnt.EnergyGained+cnt.EnergySaved)

	hpLoss := rules.ExpectedIncomingDamage(final) - final.Player.Block
	if hpLoss < 0 {
		hpLoss = 0
	}
	if hpLoss >= final.Player.HP {
		return math.Inf(-1)
	}
	score -= c.DeathRiskWeight * float64(hpLoss)
	if final.Player.HP-hpLoss < c.dangerHP(final.Act) {
		score -= c.DangerPenalty
	}

	return score
}
