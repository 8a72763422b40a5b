package search

import (
	"sort"

	"github.com/efreeman/mons-engine/pkg/mons"
)

// scoredMove pairs a fully resolved input chain with the simulated
// state it leads to and a cheap heuristic score of that state.
type scoredMove struct {
	Inputs    []mons.Input
	Game      *mons.MonsGame
	Heuristic int
}

// CollectLegalInputs is the exported form of enumerateLegalInputs, used
// by the tuning harness to sample legal moves without duplicating the
// input-chain walk.
func CollectLegalInputs(game *mons.MonsGame, maxMoves int) [][]mons.Input {
	return enumerateLegalInputs(game, maxMoves)
}

// Simulate is the exported form of applyInputsForSearch.
func Simulate(game *mons.MonsGame, inputs []mons.Input) *mons.MonsGame {
	return applyInputsForSearch(game, inputs)
}

// enumerateLegalInputs walks every legal input chain reachable from
// game's current LocationsToStartFrom/NextInputOptions output, up to
// maxMoves complete chains. It never mutates game; collection runs
// against a clone fed through ProcessInput's do-not-apply-events mode.
func enumerateLegalInputs(game *mons.MonsGame, maxMoves int) [][]mons.Input {
	var all [][]mons.Input
	var partial []mons.Input
	scratch := game.Clone()
	collectLegalInputs(scratch, &partial, &all, maxMoves)
	return all
}

func collectLegalInputs(game *mons.MonsGame, partial *[]mons.Input, all *[][]mons.Input, maxMoves int) {
	if len(*all) >= maxMoves || len(*partial) > SmartMaxInputChain {
		return
	}

	out := game.ProcessInput(*partial, true, false)
	switch out.Kind {
	case mons.OutputInvalidInput:
		return
	case mons.OutputEvents:
		chain := append([]mons.Input{}, *partial...)
		*all = append(*all, chain)
	case mons.OutputLocationsToStartFrom:
		for _, loc := range out.LocationsToStart {
			if len(*all) >= maxMoves {
				return
			}
			*partial = append(*partial, mons.InputFromLocation(loc))
			collectLegalInputs(game, partial, all, maxMoves)
			*partial = (*partial)[:len(*partial)-1]
		}
	case mons.OutputNextInputOptions:
		for _, opt := range out.NextInputOptions {
			if len(*all) >= maxMoves {
				return
			}
			*partial = append(*partial, opt.Input)
			collectLegalInputs(game, partial, all, maxMoves)
			*partial = (*partial)[:len(*partial)-1]
		}
	}
}

// applyInputsForSearch replays inputs against a clone of game and
// returns the resulting state, or nil if the chain didn't resolve to
// a complete set of events (a partial or invalid chain).
func applyInputsForSearch(game *mons.MonsGame, inputs []mons.Input) *mons.MonsGame {
	scratch := game.Clone()
	out := scratch.ProcessInput(inputs, false, false)
	if out.Kind != mons.OutputEvents {
		return nil
	}
	return scratch
}

// rankedRootMoves enumerates, scores and truncates the root's legal
// input chains, best heuristic first.
func rankedRootMoves(game *mons.MonsGame, perspective mons.Color, cfg SmartSearchConfig) []scoredMove {
	candidates := make([]scoredMove, 0, cfg.RootEnumLimit)
	for _, inputs := range enumerateLegalInputs(game, cfg.RootEnumLimit) {
		simulated := applyInputsForSearch(game, inputs)
		if simulated == nil {
			continue
		}
		heuristic := scoreState(simulated, perspective, cfg.Depth-1, cfg.Depth)
		candidates = append(candidates, scoredMove{
			Inputs:    inputs,
			Game:      simulated,
			Heuristic: heuristic,
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Heuristic > candidates[j].Heuristic })
	if len(candidates) > cfg.RootBranchLimit {
		candidates = candidates[:cfg.RootBranchLimit]
	}
	return candidates
}

// rankedChildStates enumerates one node's legal replies, scores each
// with a zero-depth heuristic, and keeps the node_branch_limit best
// ones ordered for the side to move at this node (maximizing wants its
// best replies first, minimizing wants its opponent's worst-for-us
// replies first, both to tighten alpha-beta as early as possible).
func rankedChildStates(game *mons.MonsGame, perspective mons.Color, maximizing bool, cfg SmartSearchConfig) []*mons.MonsGame {
	type scored struct {
		Heuristic int
		Game      *mons.MonsGame
	}
	states := make([]scored, 0, cfg.NodeEnumLimit)
	for _, inputs := range enumerateLegalInputs(game, cfg.NodeEnumLimit) {
		simulated := applyInputsForSearch(game, inputs)
		if simulated == nil {
			continue
		}
		heuristic := scoreState(simulated, perspective, 0, cfg.Depth)
		states = append(states, scored{Heuristic: heuristic, Game: simulated})
	}

	if maximizing {
		sort.Slice(states, func(i, j int) bool { return states[i].Heuristic > states[j].Heuristic })
	} else {
		sort.Slice(states, func(i, j int) bool { return states[i].Heuristic < states[j].Heuristic })
	}

	if len(states) > cfg.NodeBranchLimit {
		states = states[:cfg.NodeBranchLimit]
	}

	games := make([]*mons.MonsGame, len(states))
	for i, s := range states {
		games[i] = s.Game
	}
	return games
}
