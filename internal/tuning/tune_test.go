package tuning

import (
	"testing"

	"github.com/efreeman/mons-engine/pkg/mons"
)

func TestTuneEvalWeightsCoordinateDescent_HoldoutObjectiveIsFinite(t *testing.T) {
	report := TuneEvalWeightsCoordinateDescent(mons.NormalBalancedWeights, 16, 3, 0.75, 7)
	if report.TrainObjective < 0 {
		t.Errorf("train objective = %v, want >= 0", report.TrainObjective)
	}
	if report.HoldoutObjective < 0 {
		t.Errorf("holdout objective = %v, want >= 0", report.HoldoutObjective)
	}
}

func TestTuneEvalWeightsCoordinateDescent_NeverWorsensTrainObjectiveVersusBaseline(t *testing.T) {
	baseline := mons.NormalBalancedWeights
	report := TuneEvalWeightsCoordinateDescent(baseline, 16, 4, 0.75, 11)
	baselineObjective := objective(baseline, baseline, sampleCandidateLabels(16, 11)[:int(float64(16)*0.75)])
	if report.TrainObjective > baselineObjective+1e-9 {
		t.Errorf("tuned train objective %v is worse than baseline %v", report.TrainObjective, baselineObjective)
	}
}

func TestTuneEvalWeightsCoordinateDescent_IsDeterministicForAFixedSeed(t *testing.T) {
	a := TuneEvalWeightsCoordinateDescent(mons.FastWeights, 12, 2, 0.75, 3)
	b := TuneEvalWeightsCoordinateDescent(mons.FastWeights, 12, 2, 0.75, 3)
	if a.TunedWeights != b.TunedWeights {
		t.Errorf("tuning not reproducible for a fixed seed: %+v vs %+v", a.TunedWeights, b.TunedWeights)
	}
}

func TestObjective_IsZeroForEmptyLabelSet(t *testing.T) {
	if got := objective(mons.FastWeights, mons.FastWeights, nil); got != 0 {
		t.Errorf("objective with no labels = %v, want 0", got)
	}
}

func TestL1Distance_IsZeroForIdenticalWeights(t *testing.T) {
	if got := l1Distance(mons.FastWeights, mons.FastWeights); got != 0 {
		t.Errorf("l1 distance to self = %v, want 0", got)
	}
}

func TestStepFor_NeverGoesBelowTheFloor(t *testing.T) {
	if got := stepFor(5); got != 10 {
		t.Errorf("stepFor(5) = %d, want 10", got)
	}
	if got := stepFor(1000); got != 100 {
		t.Errorf("stepFor(1000) = %d, want 100", got)
	}
}
