package planner

import "github.com/WangCCe/slay-the-spire-ai/game"

// SelectTarget resolves the enemy index for a targeted action. Damage actions
// prefer the highest-threat enemy the action can kill outright; when nothing
// dies, they take the highest threat alive. Debuff actions always go to the
// highest threat. Untargeted and AOE actions come back as NoTarget.
func (c *Config) SelectTarget(s *game.CombatState, a game.Action) int32 {
	var (
		needsTarget bool
		aoe         bool
		damage      int32
		hits        int32
		addStrength bool
	)
	switch a.Type {
	case game.ActionPlayCard:
		spec := s.Hand[a.Slot].Spec
		needsTarget, aoe = spec.NeedsTarget, spec.AOE
		damage, hits = spec.Damage, spec.Hits
		addStrength = true
	case game.ActionUsePotion:
		spec := s.Potions[a.Slot].Spec
		needsTarget, aoe = spec.NeedsTarget, spec.AOE
		if spec.Kind == game.PotionDamage {
			damage, hits = spec.Value, 1
		}
	default:
		return game.NoTarget
	}
	if !needsTarget || aoe {
		return game.NoTarget
	}
	if hits < 1 {
		hits = 1
	}

	kill, killThreat := game.NoTarget, -1.0
	best, bestThreat := game.NoTarget, -1.0
	for i := 0; i < int(s.NumEnemies); i++ {
		e := &s.Enemies[i]
		if e.Gone {
			continue
		}
		t := c.Threat(e)
		if t > bestThreat {
			best, bestThreat = int32(i), t
		}
		if damage > 0 && estimateDamage(s, e, damage, hits, addStrength) >= e.HP+e.Block && t > killThreat {
			kill, killThreat = int32(i), t
		}
	}
	if kill != game.NoTarget {
		return kill
	}
	return best
}

// estimateDamage predicts total damage an action deals to one enemy, with
// strength and the vulnerable multiplier applied per hit. Potions skip the
// strength bonus.
func estimateDamage(s *game.CombatState, e *game.Enemy, base, hits int32, addStrength bool) int32 {
	perHit := base
	if addStrength {
		perHit += s.Player.Strength
	}
	if e.Debuffs.Has(game.DebuffVulnerable) {
		perHit = int32(float64(perHit) * game.VulnerableMultiplier)
	}
	if perHit < 0 {
		perHit = 0
	}
	return perHit * hits
}
