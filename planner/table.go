package planner

import (
	"sort"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

// transpositionTable deduplicates search positions within one depth level.
// Sequences that reach the same canonical state key collapse to the single
// best-scoring one, so commuting action orders are explored once.
type transpositionTable struct {
	entries map[game.StateKey]game.ActionSequence
	hits    int
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[game.StateKey]game.ActionSequence)}
}

// merge records the sequence under its terminal state key, keeping whichever
// of the old and new sequences scores higher.
func (t *transpositionTable) merge(seq game.ActionSequence) {
	key := seq.Final.Key()
	if old, ok := t.entries[key]; ok {
		t.hits++
		if old.Score >= seq.Score {
			return
		}
	}
	t.entries[key] = seq
}

func (t *transpositionTable) len() int { return len(t.entries) }

// top returns the k best sequences by score, descending.
func (t *transpositionTable) top(k int) []game.ActionSequence {
	out := make([]game.ActionSequence, 0, len(t.entries))
	for _, seq := range t.entries {
		out = append(out, seq)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if len(out) > k {
		out = out[:k]
	}
	return out
}
