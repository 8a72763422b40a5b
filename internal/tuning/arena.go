package tuning

import (
	"math/rand"

	"github.com/efreeman/mons-engine/pkg/mons"
)

// MaxPliesPerGame bounds a single matchup game; a game that never
// reaches TargetScore by this many plies is scored a draw rather than
// run forever.
const MaxPliesPerGame = 4000

// GameResult is the outcome of one played game from White's perspective.
type GameResult struct {
	Winner mons.Color
	Drawn  bool
	Plies  int
}

// PlayGame drives candidate (as whiteModel's side) and opponent against
// each other from openingFEN until a winner is decided, a stalemate is
// reached, or MaxPliesPerGame is exceeded (scored a draw).
func PlayGame(openingFEN string, whiteModel, blackModel AutomoveModel, rng *rand.Rand) (GameResult, error) {
	game, err := mons.DecodeFEN(openingFEN)
	if err != nil {
		return GameResult{}, err
	}

	for ply := 0; ply < MaxPliesPerGame; ply++ {
		model := whiteModel
		if game.ActiveColor == mons.Black {
			model = blackModel
		}

		inputs := model.Select(game, rng)
		if inputs == nil {
			return GameResult{Drawn: true, Plies: ply}, nil
		}

		out := game.ProcessInput(inputs, false, false)
		if out.Kind != mons.OutputEvents {
			return GameResult{Drawn: true, Plies: ply}, nil
		}

		if winner, ok := game.WinnerColor(); ok {
			return GameResult{Winner: winner, Plies: ply + 1}, nil
		}
	}

	return GameResult{Drawn: true, Plies: MaxPliesPerGame}, nil
}

// MatchupStats aggregates the outcomes of a series of games between a
// candidate and a single opponent.
type MatchupStats struct {
	Opponent   string
	Games      int
	Wins       int
	Losses     int
	Draws      int
	DecisiveN  int // wins + losses, used for the binomial confidence test
	WinRate    float64
	Confidence float64
}

// RunMatchupSeries plays games games between candidate and opponent,
// alternating which side the candidate plays each game, over openings
// produced by GenerateOpeningFens(seed, games). Each game reseeds its
// move-selection RNG from (seed, game index) so the whole series is
// reproducible.
func RunMatchupSeries(candidate, opponent AutomoveModel, games int, seed int64) MatchupStats {
	stats := MatchupStats{Opponent: opponent.Name, Games: games}
	openings := GenerateOpeningFens(seed, games)

	for i := 0; i < games; i++ {
		gameRng := rand.New(rand.NewSource(seed + int64(i)*1_000_003))
		candidateIsWhite := i%2 == 0

		white, black := candidate, opponent
		if !candidateIsWhite {
			white, black = opponent, candidate
		}

		result, err := PlayGame(openings[i], white, black, gameRng)
		if err != nil {
			stats.Draws++
			continue
		}
		if result.Drawn {
			stats.Draws++
			continue
		}

		candidateWon := (candidateIsWhite && result.Winner == mons.White) || (!candidateIsWhite && result.Winner == mons.Black)
		if candidateWon {
			stats.Wins++
		} else {
			stats.Losses++
		}
	}

	stats.DecisiveN = stats.Wins + stats.Losses
	if stats.Games > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Games)
	}
	stats.Confidence = winRateConfidence(stats.Wins, stats.DecisiveN)
	return stats
}
