package tuning

import "testing"

func TestRunModeEvaluation_ReturnsOneResultPerOpponentInOrder(t *testing.T) {
	random, _ := ModelByName("random")
	greedy, _ := ModelByName("greedy_balanced")
	opponents := []AutomoveModel{random, greedy}

	results := RunModeEvaluation(random, opponents, 3, 1, 2)
	if len(results) != len(opponents) {
		t.Fatalf("got %d results, want %d", len(results), len(opponents))
	}
	for i, r := range results {
		if r.Opponent != opponents[i].Name {
			t.Errorf("result %d opponent = %q, want %q", i, r.Opponent, opponents[i].Name)
		}
		if r.Games != 3 {
			t.Errorf("result %d games = %d, want 3", i, r.Games)
		}
	}
}

func TestRunModeEvaluation_MatchesSequentialRunMatchupSeries(t *testing.T) {
	random, _ := ModelByName("random")
	greedy, _ := ModelByName("greedy_fast")
	opponents := []AutomoveModel{random}

	concurrent := RunModeEvaluation(greedy, opponents, 4, 10, 3)
	sequential := RunMatchupSeries(greedy, random, 4, 10)
	if concurrent[0] != sequential {
		t.Errorf("concurrent result %+v != sequential result %+v", concurrent[0], sequential)
	}
}

func TestRunModeEvaluation_ToleratesMoreWorkersThanOpponents(t *testing.T) {
	random, _ := ModelByName("random")
	opponents := []AutomoveModel{random}
	results := RunModeEvaluation(random, opponents, 2, 1, 8)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}
