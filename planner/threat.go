package planner

import "github.com/WangCCe/slay-the-spire-ai/game"

// Threat scores how dangerous an enemy is right now: the damage it is about
// to deal, plus fixed bumps for debuffing the player, for scaling over time,
// for boss mechanics, and for buffing its allies. Gone enemies score zero.
func (c *Config) Threat(e *game.Enemy) float64 {
	if e.Gone {
		return 0
	}
	t := float64(expectedEnemyDamage(e))
	if e.Intent.AppliesDebuff() {
		t += c.ThreatDebuff
	}
	if e.Scaling {
		t += c.ThreatScaling
	}
	if e.Boss {
		t += c.ThreatBoss
	}
	if e.Intent.BuffsAllies() {
		t += c.ThreatBuff
	}
	return t
}

// expectedEnemyDamage is the damage one enemy deals next turn per its
// declared intent, weak-adjusted per hit. Non-attack and unknown intents
// contribute nothing.
func expectedEnemyDamage(e *game.Enemy) int32 {
	if !e.Intent.IsAttack() {
		return 0
	}
	hits := e.IntentHits
	if hits < 1 {
		hits = 1
	}
	perHit := e.IntentDamage
	if e.Debuffs.Has(game.DebuffWeak) {
		perHit = int32(float64(perHit) * game.WeakMultiplier)
	}
	return perHit * hits
}
