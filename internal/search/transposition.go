package search

import "github.com/efreeman/mons-engine/pkg/mons"

// ttKey identifies a node by the exact state alpha-beta would recurse
// on: the position, who moves next, and how many plies are left to
// search from it. Two different call chains reaching the same triple
// would search it identically, so caching on the triple is safe.
type ttKey struct {
	fen   string
	side  mons.Color
	depth int
}

type ttBound int

const (
	ttExact ttBound = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	score int
	bound ttBound
}

// transpositionTable is scoped to a single SmartAutomove call, not the
// process: search statistics are per-call owned state, never shared
// across concurrent searches (tuning's matchup workers run independent
// searches in parallel).
type transpositionTable struct {
	entries map[ttKey]ttEntry
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[ttKey]ttEntry)}
}

func keyFor(game *mons.MonsGame, depth int) ttKey {
	return ttKey{fen: mons.EncodeFEN(game), side: game.ActiveColor, depth: depth}
}

// probe returns a usable score for the given alpha/beta window, if the
// stored bound already resolves it, along with ok=true; otherwise ok
// is false and the caller must search the node.
func (t *transpositionTable) probe(key ttKey, alpha, beta int) (score int, ok bool) {
	entry, found := t.entries[key]
	if !found {
		return 0, false
	}
	switch entry.bound {
	case ttExact:
		return entry.score, true
	case ttLower:
		if entry.score >= beta {
			return entry.score, true
		}
	case ttUpper:
		if entry.score <= alpha {
			return entry.score, true
		}
	}
	return 0, false
}

func (t *transpositionTable) store(key ttKey, score, alphaOrig, beta int) {
	bound := ttExact
	switch {
	case score <= alphaOrig:
		bound = ttUpper
	case score >= beta:
		bound = ttLower
	}
	t.entries[key] = ttEntry{score: score, bound: bound}
}
