// Package search implements the alpha-beta move selector ("smart
// automove") that picks an input chain for a MonsGame given a node
// budget, plus the root-candidate enumeration and efficiency
// accounting it shares with the tuning harness.
package search

import "math"

const (
	DefaultSmartSearchDepth     = 2
	DefaultSmartMaxVisitedNodes = 320

	MinSmartSearchDepth = 1
	MaxSmartSearchDepth = 4

	MinSmartMaxVisitedNodes = 32
	MaxSmartMaxVisitedNodes = 20000

	// SmartTerminalScore bounds a forced win/loss far above anything
	// EvaluatePreferability can return, while leaving room to subtract
	// the ply count so a game won faster always outranks one won
	// slower, and vice versa for losses.
	SmartTerminalScore = math.MaxInt / 8

	// SmartMaxInputChain bounds the recursion depth of root-candidate
	// collection; no legal Mons turn needs more than a handful of
	// chained inputs, this is only a runaway guard.
	SmartMaxInputChain = 8
)

// SmartSearchConfig holds the derived limits for one search call. Built
// once per SmartAutomove invocation via FromBudget, then threaded
// through every recursive call unchanged.
type SmartSearchConfig struct {
	Depth           int
	MaxVisitedNodes int

	RootEnumLimit   int
	RootBranchLimit int
	NodeEnumLimit   int
	NodeBranchLimit int
}

// FromBudget derives the internal branch/enumeration limits from the
// two knobs a caller actually controls: search depth and total node
// budget. The limits scale with the budget so a small budget still
// explores a reasonably wide set of replies at shallow depth, while a
// large budget spends the extra nodes on depth and reply breadth
// rather than growing unboundedly.
func FromBudget(depth, maxVisitedNodes int) SmartSearchConfig {
	depth = clamp(depth, MinSmartSearchDepth, MaxSmartSearchDepth)
	maxVisitedNodes = clamp(maxVisitedNodes, MinSmartMaxVisitedNodes, MaxSmartMaxVisitedNodes)

	rootBranchLimit := clamp(maxVisitedNodes/24, 4, 28)
	nodeBranchLimit := clamp(maxVisitedNodes/40, 4, 18)
	rootEnumLimit := clamp(rootBranchLimit*5, rootBranchLimit, 180)
	nodeEnumLimit := clamp(nodeBranchLimit*3, nodeBranchLimit, 96)

	return SmartSearchConfig{
		Depth:           depth,
		MaxVisitedNodes: maxVisitedNodes,
		RootEnumLimit:   rootEnumLimit,
		RootBranchLimit: rootBranchLimit,
		NodeEnumLimit:   nodeEnumLimit,
		NodeBranchLimit: nodeBranchLimit,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
