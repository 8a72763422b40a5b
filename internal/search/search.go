package search

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/mons-engine/pkg/mons"
)

// SmartAutomove picks the best input chain for game's side to move,
// searching depth plies with up to maxVisitedNodes total nodes
// visited, and reports how many nodes were actually spent. It returns
// ok=false when the side to move has no legal input at all (an
// exhausted-turn state the caller should treat as InvalidInput).
func SmartAutomove(game *mons.MonsGame, depth, maxVisitedNodes int) (inputs []mons.Input, visited int, ok bool) {
	cfg := FromBudget(depth, maxVisitedNodes)
	var eff Efficiency
	inputs, eff = bestSmartInputsTracked(game, cfg)

	log.Debug().
		Int("depth", cfg.Depth).
		Int("nodes_visited", eff.NodesVisited).
		Int("nodes_budget", eff.NodesBudget).
		Int("root_candidates", eff.RootCandidates).
		Int("chosen_heuristic", eff.ChosenHeuristic).
		Int("chain_len", len(inputs)).
		Msg("smart automove search complete")

	return inputs, eff.NodesVisited, inputs != nil
}

// SmartAutomoveDefault runs SmartAutomove at the package's default
// depth and node budget.
func SmartAutomoveDefault(game *mons.MonsGame) ([]mons.Input, int, bool) {
	return SmartAutomove(game, DefaultSmartSearchDepth, DefaultSmartMaxVisitedNodes)
}

// bestSmartInputsTracked runs bestSmartInputs and packages the result
// alongside the efficiency accounting the caller logs.
func bestSmartInputsTracked(game *mons.MonsGame, cfg SmartSearchConfig) ([]mons.Input, Efficiency) {
	perspective := game.ActiveColor
	roots := rankedRootMoves(game, perspective, cfg)
	inputs, visited, chosenHeuristic := bestSmartInputs(game, cfg, roots)
	return inputs, newEfficiency(cfg, len(roots), visited, chosenHeuristic)
}

// bestSmartInputs runs one alpha-beta search over the given ranked
// root moves and returns the best input chain found, the number of
// nodes it visited, and the chosen move's heuristic score.
func bestSmartInputs(game *mons.MonsGame, cfg SmartSearchConfig, roots []scoredMove) ([]mons.Input, int, int) {
	perspective := game.ActiveColor
	visited := 0
	alpha, beta := math.MinInt, math.MaxInt
	tt := newTranspositionTable()

	if len(roots) == 0 {
		return nil, visited, 0
	}

	bestScore := math.MinInt
	var bestInputs []mons.Input

	for _, candidate := range roots {
		if visited >= cfg.MaxVisitedNodes {
			break
		}
		visited++

		var candidateScore int
		if cfg.Depth > 1 {
			candidateScore = searchScore(candidate.Game, perspective, cfg.Depth-1, alpha, beta, &visited, cfg, tt)
		} else {
			candidateScore = candidate.Heuristic
		}

		if bestInputs == nil || candidateScore > bestScore {
			bestScore = candidateScore
			bestInputs = candidate.Inputs
		}
		if candidateScore > alpha {
			alpha = candidateScore
		}
	}

	return bestInputs, visited, bestScore
}

// searchScore is the recursive alpha-beta minimax core. perspective
// never changes across the recursion; maximizing tracks whose turn it
// currently is relative to perspective.
func searchScore(game *mons.MonsGame, perspective mons.Color, depth int, alpha, beta int, visited *int, cfg SmartSearchConfig, tt *transpositionTable) int {
	if score, isTerminal := terminalScore(game, perspective, depth, cfg.Depth); isTerminal {
		return score
	}
	if depth == 0 || *visited >= cfg.MaxVisitedNodes {
		return mons.EvaluateForSearch(game, perspective, cfg.Depth)
	}

	key := keyFor(game, depth)
	alphaOrig := alpha
	if score, ok := tt.probe(key, alpha, beta); ok {
		return score
	}

	maximizing := game.ActiveColor == perspective
	children := rankedChildStates(game, perspective, maximizing, cfg)
	if len(children) == 0 {
		return mons.EvaluateForSearch(game, perspective, cfg.Depth)
	}

	var value int
	if maximizing {
		value = math.MinInt
		for _, child := range children {
			if *visited >= cfg.MaxVisitedNodes {
				break
			}
			*visited++
			score := searchScore(child, perspective, depth-1, alpha, beta, visited, cfg, tt)
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		if value == math.MinInt {
			value = mons.EvaluateForSearch(game, perspective, cfg.Depth)
		}
	} else {
		value = math.MaxInt
		for _, child := range children {
			if *visited >= cfg.MaxVisitedNodes {
				break
			}
			*visited++
			score := searchScore(child, perspective, depth-1, alpha, beta, visited, cfg, tt)
			if score < value {
				value = score
			}
			if value < beta {
				beta = value
			}
			if beta <= alpha {
				break
			}
		}
		if value == math.MaxInt {
			value = mons.EvaluateForSearch(game, perspective, cfg.Depth)
		}
	}

	tt.store(key, value, alphaOrig, beta)
	return value
}

// scoreState is searchScore's leaf-scoring twin, used by root/child
// ranking where there is no alpha-beta window to thread through.
func scoreState(game *mons.MonsGame, perspective mons.Color, depth, searchDepth int) int {
	if score, isTerminal := terminalScore(game, perspective, depth, searchDepth); isTerminal {
		return score
	}
	return mons.EvaluateForSearch(game, perspective, searchDepth)
}

// terminalScore reports the game's outcome score from perspective's
// side, scaled so a faster win always beats a slower one and a slower
// loss always beats a faster one. ok is false while the game isn't
// over yet.
func terminalScore(game *mons.MonsGame, perspective mons.Color, depth, searchDepth int) (score int, ok bool) {
	winner, over := game.WinnerColor()
	if !over {
		return 0, false
	}
	plyCount := searchDepth - depth
	if plyCount < 0 {
		plyCount = 0
	}
	if winner == perspective {
		return SmartTerminalScore - plyCount, true
	}
	return -SmartTerminalScore + plyCount, true
}
