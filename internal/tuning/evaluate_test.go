package tuning

import (
	"testing"

	"github.com/efreeman/mons-engine/pkg/mons"
)

func TestPassesGate_RequiresBothWinRateAndConfidence(t *testing.T) {
	gate := PromotionGateConfig{MinWinRate: 0.5, MinConfidence: 0.75}
	cases := []struct {
		stats MatchupStats
		want  bool
	}{
		{MatchupStats{WinRate: 0.9, Confidence: 0.9}, true},
		{MatchupStats{WinRate: 0.9, Confidence: 0.5}, false},
		{MatchupStats{WinRate: 0.5, Confidence: 0.9}, false}, // strictly greater than MinWinRate
		{MatchupStats{WinRate: 0.4, Confidence: 0.95}, false},
	}
	for _, c := range cases {
		if got := passesGate(c.stats, gate); got != c.want {
			t.Errorf("passesGate(%+v) = %v, want %v", c.stats, got, c.want)
		}
	}
}

func TestMergeStats_SumsGamesAndRecomputesRates(t *testing.T) {
	merged := mergeStats("opp", []MatchupStats{
		{Games: 10, Wins: 6, Losses: 4},
		{Games: 10, Wins: 8, Losses: 1, Draws: 1},
	})
	if merged.Games != 20 {
		t.Fatalf("games = %d, want 20", merged.Games)
	}
	if merged.Wins != 14 || merged.Losses != 5 || merged.Draws != 1 {
		t.Errorf("unexpected merged totals: %+v", merged)
	}
	if merged.DecisiveN != 19 {
		t.Errorf("decisive N = %d, want 19", merged.DecisiveN)
	}
	if merged.WinRate != 0.7 {
		t.Errorf("win rate = %v, want 0.7", merged.WinRate)
	}
}

func TestHashModeName_IsStableAndDistinguishesNames(t *testing.T) {
	a := hashModeName("fast")
	b := hashModeName("fast")
	c := hashModeName("normal")
	if a != b {
		t.Error("hashModeName not stable across calls")
	}
	if a == c {
		t.Error("expected different mode names to hash differently")
	}
}

func TestEvaluateCandidateAgainstPool_RandomCandidateDoesNotPromote(t *testing.T) {
	random, _ := ModelByName("random")
	opponents := Pool()
	builder := func(BudgetMode) AutomoveModel { return random }
	eval := EvaluateCandidateAgainstPool(builder, opponents, []BudgetMode{FastMode}, 4, 1, DefaultPromotionGate)
	if eval.Promoted {
		t.Error("expected a uniformly random candidate to fail promotion against the full pool")
	}
}

func TestEvaluateCandidateAgainstPool_ReportsOneModeResultPerMode(t *testing.T) {
	random, _ := ModelByName("random")
	opponents := []AutomoveModel{random}
	builder := GreedyCandidate("candidate", mons.FastWeights)
	eval := EvaluateCandidateAgainstPool(builder, opponents, []BudgetMode{FastMode, NormalMode}, 2, 5, DefaultPromotionGate)
	if len(eval.Modes) != 2 {
		t.Fatalf("got %d mode results, want 2", len(eval.Modes))
	}
}
