// Package tuning implements the reproducible tournament harness used to
// score and promote automove selector variants: matchup series, the
// promotion gate, the staged ladder, and coordinate-descent weight
// tuning. It never mutates the rules engine; it only drives it.
package tuning

import (
	"math/rand"
	"sort"

	"github.com/efreeman/mons-engine/internal/search"
	"github.com/efreeman/mons-engine/pkg/mons"
)

// AutomoveModel is a named selector: given a game state and a seeded
// random stream, it returns a fully resolved input chain for the side
// to move. The pool below has ten variants spanning the full strength
// range, from uniformly random to the deepest shipped search budget.
type AutomoveModel struct {
	Name   string
	Select func(game *mons.MonsGame, rng *rand.Rand) []mons.Input
}

const (
	rootEnumLimitForGreedy = 64
	randomEnumLimit        = 256
)

// Pool returns the ten named selector variants the harness tunes and
// measures against each other. Greedy variants share one ply of lookahead
// (apply, then evaluate with EvaluatePreferability) under a different
// scoring preset; the remaining three use full alpha-beta search at
// increasing budgets.
func Pool() []AutomoveModel {
	return []AutomoveModel{
		{Name: "random", Select: selectRandom},
		{Name: "greedy_fast", Select: greedySelector(mons.FastWeights)},
		{Name: "greedy_balanced", Select: greedySelector(mons.NormalBalancedWeights)},
		{Name: "greedy_tactical", Select: greedySelector(mons.NormalTacticalWeights)},
		{Name: "greedy_tactical_aggressive", Select: greedySelector(mons.NormalTacticalAggressiveWeights)},
		{Name: "greedy_finisher", Select: greedySelector(mons.NormalFinisherWeights)},
		{Name: "greedy_finisher_aggressive", Select: greedySelector(mons.NormalFinisherAggressiveWeights)},
		{Name: "smart_fast", Select: searchSelector(2, 420)},
		{Name: "smart_normal", Select: searchSelector(3, 3450)},
		{Name: "smart_deep", Select: searchSelector(4, 20000)},
	}
}

// ModelByName returns the pool entry with the given name, or false if
// no such variant exists.
func ModelByName(name string) (AutomoveModel, bool) {
	for _, m := range Pool() {
		if m.Name == name {
			return m, true
		}
	}
	return AutomoveModel{}, false
}

func selectRandom(game *mons.MonsGame, rng *rand.Rand) []mons.Input {
	chains := search.CollectLegalInputs(game, randomEnumLimit)
	if len(chains) == 0 {
		return nil
	}
	return chains[rng.Intn(len(chains))]
}

// greedySelector returns an AutomoveModel.Select that ranks every legal
// chain by a single static evaluation of the resulting state and picks
// the best, breaking ties with the seeded stream so repeated identical
// positions don't always resolve to the first-enumerated chain.
func greedySelector(weights mons.ScoringWeights) func(*mons.MonsGame, *rand.Rand) []mons.Input {
	return func(game *mons.MonsGame, rng *rand.Rand) []mons.Input {
		chains := search.CollectLegalInputs(game, rootEnumLimitForGreedy)
		if len(chains) == 0 {
			return nil
		}
		perspective := game.ActiveColor
		bestScore := 0
		var ties [][]mons.Input
		for _, chain := range chains {
			simulated := search.Simulate(game, chain)
			if simulated == nil {
				continue
			}
			score := mons.EvaluatePreferability(simulated, perspective, weights)
			switch {
			case len(ties) == 0 || score > bestScore:
				bestScore = score
				ties = [][]mons.Input{chain}
			case score == bestScore:
				ties = append(ties, chain)
			}
		}
		if len(ties) == 0 {
			return nil
		}
		return ties[rng.Intn(len(ties))]
	}
}

func searchSelector(depth, maxVisitedNodes int) func(*mons.MonsGame, *rand.Rand) []mons.Input {
	return func(game *mons.MonsGame, _ *rand.Rand) []mons.Input {
		inputs, _, ok := search.SmartAutomove(game, depth, maxVisitedNodes)
		if !ok {
			return nil
		}
		return inputs
	}
}

// sortedNames returns the pool's names in alphabetical order.
func sortedNames(models []AutomoveModel) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	sort.Strings(names)
	return names
}

// SearchCandidate builds a CandidateBuilder whose strength scales with
// the budget mode it's evaluated under, for promoting a search-based
// selector through EvaluateCandidateAgainstPool.
func SearchCandidate(name string) CandidateBuilder {
	return func(mode BudgetMode) AutomoveModel {
		return AutomoveModel{Name: name, Select: searchSelector(mode.Depth, mode.MaxNodes)}
	}
}

// GreedyCandidate builds a CandidateBuilder for a one-ply evaluation
// selector under a fixed scoring preset; it plays the same regardless
// of the budget mode it's nominally evaluated under.
func GreedyCandidate(name string, weights mons.ScoringWeights) CandidateBuilder {
	selector := greedySelector(weights)
	return func(BudgetMode) AutomoveModel {
		return AutomoveModel{Name: name, Select: selector}
	}
}
