package tuning

import (
	"math/rand"
	"testing"

	"github.com/efreeman/mons-engine/pkg/mons"
)

func TestPlayGame_ReachesAConclusionWithinThePlyBudget(t *testing.T) {
	random, _ := ModelByName("random")
	rng := rand.New(rand.NewSource(11))
	result, err := PlayGame(mons.EncodeFEN(mons.NewMonsGame()), random, random, rng)
	if err != nil {
		t.Fatalf("PlayGame returned an error: %v", err)
	}
	if result.Plies <= 0 {
		t.Error("expected at least one ply to be played")
	}
}

func TestPlayGame_RejectsAnUndecodableOpening(t *testing.T) {
	random, _ := ModelByName("random")
	_, err := PlayGame("not a fen", random, random, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected an error decoding a malformed opening FEN")
	}
}

func TestRunMatchupSeries_GamesAlternateSidesAndSumCorrectly(t *testing.T) {
	random, _ := ModelByName("random")
	greedy, _ := ModelByName("greedy_finisher")
	stats := RunMatchupSeries(greedy, random, 6, 99)
	if stats.Games != 6 {
		t.Fatalf("games = %d, want 6", stats.Games)
	}
	if stats.Wins+stats.Losses+stats.Draws != stats.Games {
		t.Errorf("wins+losses+draws = %d, want %d", stats.Wins+stats.Losses+stats.Draws, stats.Games)
	}
	if stats.DecisiveN != stats.Wins+stats.Losses {
		t.Errorf("decisive N = %d, want %d", stats.DecisiveN, stats.Wins+stats.Losses)
	}
	if stats.Opponent != random.Name {
		t.Errorf("opponent label = %q, want %q", stats.Opponent, random.Name)
	}
}

func TestRunMatchupSeries_IsReproducibleForAFixedSeed(t *testing.T) {
	random, _ := ModelByName("random")
	greedy, _ := ModelByName("greedy_balanced")
	a := RunMatchupSeries(greedy, random, 4, 123)
	b := RunMatchupSeries(greedy, random, 4, 123)
	if a != b {
		t.Errorf("matchup series not reproducible: %+v vs %+v", a, b)
	}
}

func TestRunMatchupSeries_AStrongerModelBeatsRandomOverManyGames(t *testing.T) {
	random, _ := ModelByName("random")
	smart, _ := ModelByName("smart_fast")
	stats := RunMatchupSeries(smart, random, 10, 555)
	if stats.Wins < stats.Losses {
		t.Errorf("expected smart_fast to not lose more than it wins against random, got wins=%d losses=%d", stats.Wins, stats.Losses)
	}
}
