package tuning

import (
	"testing"

	"github.com/efreeman/mons-engine/pkg/mons"
)

func TestEvaluateTacticalGuardrails_ReturnsAllThreeNamedScenarios(t *testing.T) {
	smart, _ := ModelByName("smart_normal")
	results := EvaluateTacticalGuardrails(smart, 1)
	if len(results) != 3 {
		t.Fatalf("got %d guardrail results, want 3", len(results))
	}
	wantNames := map[string]bool{
		"mystic_faints_drainer":                true,
		"carrier_scores_when_adjacent_to_pool": true,
		"anti_roundtrip":                       true,
	}
	for _, r := range results {
		if !wantNames[r.Name] {
			t.Errorf("unexpected guardrail name %q", r.Name)
		}
		delete(wantNames, r.Name)
	}
	if len(wantNames) != 0 {
		t.Errorf("missing guardrail results: %v", wantNames)
	}
}

func TestCheckMysticFaintsDrainer_SearchBasedModelFindsTheForcedTactic(t *testing.T) {
	smart, _ := ModelByName("smart_normal")
	results := EvaluateTacticalGuardrails(smart, 5)
	for _, r := range results {
		if r.Name == "mystic_faints_drainer" && !r.Passed {
			t.Error("expected smart_normal to realise the mystic-faints-drainer tactic")
		}
	}
}

func TestCheckCarrierScores_SearchBasedModelScoresWhenAdjacentToPool(t *testing.T) {
	smart, _ := ModelByName("smart_normal")
	results := EvaluateTacticalGuardrails(smart, 5)
	for _, r := range results {
		if r.Name == "carrier_scores_when_adjacent_to_pool" && !r.Passed {
			t.Error("expected smart_normal to score an undefended carrier next to its pool")
		}
	}
}

func TestCountAlternatives_CountsLocationsToStartFromOnTheOpeningPosition(t *testing.T) {
	g := mons.NewMonsGame()
	count := countAlternatives(g)
	if count == 0 {
		t.Error("expected at least one location to start a move from on the opening position")
	}
}
