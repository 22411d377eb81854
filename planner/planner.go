package planner

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/WangCCe/slay-the-spire-ai/game"
	"github.com/WangCCe/slay-the-spire-ai/rules"
)

// Stats describes one planning call for logging and offline analysis.
type Stats struct {
	Depth             int
	Expanded          int
	TranspositionHits int
	DroppedBranches   int
	Truncated         bool
	Fallback          bool
	Elapsed           time.Duration
}

// Planner runs bounded beam search over one combat turn and caches the
// resulting plan for step-by-step execution. Not safe for concurrent use;
// each worker owns its own Planner.
type Planner struct {
	cfg Config
	log *slog.Logger

	plan   []game.Action
	sigs   []game.TurnPlanSignature
	cursor int

	lastStats Stats
}

// New builds a planner with the given parameters. A nil logger falls back to
// slog's default.
func New(cfg Config, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{cfg: cfg, log: log}
}

// LastStats returns the stats of the most recent planning call.
func (p *Planner) LastStats() Stats { return p.lastStats }

// Plan searches from the given snapshot and returns the best action sequence
// found within the wall-clock budget. The result always ends the turn after
// its actions; an empty sequence means end the turn immediately. Plan is
// best-effort: when the budget or ctx expires mid-search, the deepest
// completed level stands.
func (p *Planner) Plan(ctx context.Context, s game.CombatState) (game.ActionSequence, Stats) {
	start := time.Now()
	deadline := start.Add(p.cfg.Budget)

	root := s
	root.Counters = game.Counters{}

	var stats Stats
	maxDepth := p.maxDepth(&root)
	width := p.cfg.beamWidth(root.Act)

	// Ending the turn with no actions is always available and anchors the
	// search: deeper sequences must beat it to be chosen.
	best := game.ActionSequence{Final: root, Score: p.cfg.FullScore(&root, &root)}
	beam := []game.ActionSequence{best}

	rootCandidates := 0
	for depth := 0; depth < maxDepth; depth++ {
		if ctx.Err() != nil || !time.Now().Before(deadline) {
			stats.Truncated = true
			break
		}

		table := newTranspositionTable()
		limit := p.cfg.branchLimit(depth)
		for i := range beam {
			entry := &beam[i]
			if entry.Final.LiveEnemyCount() == 0 {
				// Won branch; nothing left to play for.
				continue
			}
			cands := rules.LegalActions(&entry.Final)
			if depth == 0 {
				rootCandidates = len(cands)
			}
			if len(cands) > limit {
				sort.Slice(cands, func(a, b int) bool {
					return p.cfg.FastScore(&entry.Final, cands[a]) > p.cfg.FastScore(&entry.Final, cands[b])
				})
				stats.DroppedBranches += len(cands) - limit
				cands = cands[:limit]
			}

			for _, a := range cands {
				a.Target = p.cfg.SelectTarget(&entry.Final, a)
				next, err := rules.Apply(entry.Final, a)
				if err != nil {
					p.log.Warn("dropping branch", "action", a.String(), "err", err)
					continue
				}
				stats.Expanded++
				table.merge(entry.Extend(a, next, p.cfg.FullScore(&root, &next)))
			}
		}

		stats.TranspositionHits += table.hits
		if table.len() == 0 {
			break
		}
		beam = table.top(width)
		stats.Depth = depth + 1
		if beam[0].Score > best.Score {
			best = beam[0]
		}
	}

	// Every first-level expansion failed: play the single most promising
	// action blind rather than wasting the turn.
	if stats.Depth == 0 && stats.Expanded == 0 && rootCandidates > 0 {
		if a, ok := p.bestFastAction(&root); ok {
			stats.Fallback = true
			best = game.ActionSequence{Actions: []game.Action{a}, Final: root, Score: best.Score}
		}
	}

	stats.Elapsed = time.Since(start)
	p.lastStats = stats
	return best, stats
}

// maxDepth bounds the search depth for this turn: never more steps than
// actions remain, never more than the energy-and-freebies heuristic allows,
// and never past the hard cap.
func (p *Planner) maxDepth(s *game.CombatState) int {
	supply := s.PlayableCardCount() + p.unusedPotions(s)

	extra := int(s.Player.Energy) - 3
	if extra < 0 {
		extra = 0
	}
	heur := 3 + extra + s.ZeroCostCardCount()/2

	d := supply
	if heur < d {
		d = heur
	}
	if d > p.cfg.MaxDepthCap {
		d = p.cfg.MaxDepthCap
	}
	return d
}

func (p *Planner) unusedPotions(s *game.CombatState) int {
	n := 0
	for i := uint8(0); i < s.NumPotions; i++ {
		if !s.PotionDrank(i) {
			n++
		}
	}
	return n
}

// bestFastAction picks the highest fast-scoring legal action with its target
// resolved, for the blind fallback path.
func (p *Planner) bestFastAction(s *game.CombatState) (game.Action, bool) {
	cands := rules.LegalActions(s)
	if len(cands) == 0 {
		return game.Action{}, false
	}
	best, bestScore := cands[0], p.cfg.FastScore(s, cands[0])
	for _, a := range cands[1:] {
		if sc := p.cfg.FastScore(s, a); sc > bestScore {
			best, bestScore = a, sc
		}
	}
	best.Target = p.cfg.SelectTarget(s, best)
	return best, true
}
