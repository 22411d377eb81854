package planner

import (
	"context"

	"github.com/WangCCe/slay-the-spire-ai/game"
	"github.com/WangCCe/slay-the-spire-ai/rules"
)

// Decision is the outcome of one Decide call: the action to execute now and
// whether a fresh plan had to be computed for it.
type Decision struct {
	Action    game.Action
	Replanned bool
	Stats     Stats
}

// ShouldReplan reports whether the cached plan no longer fits the live state:
// no plan remains, a random event fired since the last step, or the observed
// state diverged from what the plan predicted.
func (p *Planner) ShouldReplan(s *game.CombatState, randomEvent bool) bool {
	if randomEvent {
		return true
	}
	if p.cursor >= len(p.plan) {
		return true
	}
	return s.Signature() != p.sigs[p.cursor]
}

// Decide returns the next action for the observed state. While the cached
// plan still matches reality it is drained one step per call; otherwise a
// fresh plan is computed first. An EndTurn action means the turn is over.
func (p *Planner) Decide(ctx context.Context, s game.CombatState, randomEvent bool) Decision {
	if !p.ShouldReplan(&s, randomEvent) {
		a := p.plan[p.cursor]
		p.cursor++
		return Decision{Action: a, Stats: p.lastStats}
	}

	seq, stats := p.Plan(ctx, s)
	p.adopt(s, seq)
	if len(p.plan) == 0 {
		return Decision{Action: game.Action{Type: game.ActionEndTurn, Target: game.NoTarget}, Replanned: true, Stats: stats}
	}
	a := p.plan[0]
	p.cursor = 1
	return Decision{Action: a, Replanned: true, Stats: stats}
}

// Invalidate drops the cached plan, e.g. at the start of a new turn.
func (p *Planner) Invalidate() {
	p.plan = nil
	p.sigs = nil
	p.cursor = 0
}

// adopt caches the sequence along with the signature each step expects to
// observe before executing, replayed from the root snapshot. If a step fails
// to replay the plan is truncated there.
func (p *Planner) adopt(root game.CombatState, seq game.ActionSequence) {
	root.Counters = game.Counters{}
	p.plan = seq.Actions
	p.sigs = p.sigs[:0]
	p.cursor = 0

	cur := root
	for i, a := range seq.Actions {
		p.sigs = append(p.sigs, cur.Signature())
		next, err := rules.Apply(cur, a)
		if err != nil {
			p.log.Warn("plan replay failed, truncating", "step", i, "action", a.String(), "err", err)
			p.plan = p.plan[:i]
			p.sigs = p.sigs[:i]
			break
		}
		cur = next
	}
}
