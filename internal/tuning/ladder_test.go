package tuning

import "testing"

func TestPromotionLadder_RandomCandidateIsNotPromotedAndStartsAtStageA(t *testing.T) {
	random, _ := ModelByName("random")
	opponents := []AutomoveModel{random}
	builder := func(BudgetMode) AutomoveModel { return random }

	result, err := PromotionLadder(builder, "random-clone", opponents, DefaultPromotionGate, 1, "")
	if err != nil {
		t.Fatalf("PromotionLadder returned an error: %v", err)
	}
	if result.Promoted {
		t.Error("expected a candidate identical to its only opponent to not be promoted")
	}
	if len(result.Stages) == 0 {
		t.Fatal("expected at least one stage result")
	}
	if result.Stages[0].Stage != StageA {
		t.Errorf("first stage = %q, want %q", result.Stages[0].Stage, StageA)
	}
}

func TestPromotionLadder_NoOpponentsFailsStageAImmediately(t *testing.T) {
	random, _ := ModelByName("random")
	builder := func(BudgetMode) AutomoveModel { return random }
	result, err := PromotionLadder(builder, "candidate", nil, DefaultPromotionGate, 1, "")
	if err != nil {
		t.Fatalf("PromotionLadder returned an error: %v", err)
	}
	if result.Promoted {
		t.Error("expected promotion to fail with no configured opponents")
	}
	if len(result.Stages) != 1 {
		t.Fatalf("expected the ladder to stop after the failed stage, got %d stages", len(result.Stages))
	}
}

func TestPromotionLadder_StrongCandidateReachesLaterStages(t *testing.T) {
	smart, _ := ModelByName("smart_deep")
	opponents := []AutomoveModel{mustModel(t, "random")}
	builder := func(BudgetMode) AutomoveModel { return smart }

	result, err := PromotionLadder(builder, "smart-deep-clone", opponents, DefaultPromotionGate, 2, "")
	if err != nil {
		t.Fatalf("PromotionLadder returned an error: %v", err)
	}
	if len(result.Stages) < 2 {
		t.Errorf("expected a strong candidate to clear stage A, got %d stages", len(result.Stages))
	}
}

func mustModel(t *testing.T, name string) AutomoveModel {
	t.Helper()
	m, ok := ModelByName(name)
	if !ok {
		t.Fatalf("no such model %q", name)
	}
	return m
}
