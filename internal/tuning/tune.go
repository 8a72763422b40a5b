package tuning

import (
	"math/rand"

	"github.com/efreeman/mons-engine/internal/search"
	"github.com/efreeman/mons-engine/pkg/mons"
)

// tunableField is one coordinate in the weight vector coordinate
// descent walks: a fixed list of evaluation-weight fields, not every
// field in ScoringWeights, so the search is restricted to the terms
// that most directly drive move choice rather than the full additive
// table.
type tunableField struct {
	name string
	get  func(mons.ScoringWeights) int
	set  func(*mons.ScoringWeights, int)
}

var tunableFields = []tunableField{
	{"ConfirmedScore",
		func(w mons.ScoringWeights) int { return w.ConfirmedScore },
		func(w *mons.ScoringWeights, v int) { w.ConfirmedScore = v }},
	{"DrainerAtRisk",
		func(w mons.ScoringWeights) int { return w.DrainerAtRisk },
		func(w *mons.ScoringWeights, v int) { w.DrainerAtRisk = v }},
	{"DrainerCloseToMana",
		func(w mons.ScoringWeights) int { return w.DrainerCloseToMana },
		func(w *mons.ScoringWeights, v int) { w.DrainerCloseToMana = v }},
	{"DrainerHoldingMana",
		func(w mons.ScoringWeights) int { return w.DrainerHoldingMana },
		func(w *mons.ScoringWeights, v int) { w.DrainerHoldingMana = v }},
	{"ManaCloseToSamePool",
		func(w mons.ScoringWeights) int { return w.ManaCloseToSamePool },
		func(w *mons.ScoringWeights, v int) { w.ManaCloseToSamePool = v }},
	{"MonWithManaCloseToAnyPool",
		func(w mons.ScoringWeights) int { return w.MonWithManaCloseToAnyPool },
		func(w *mons.ScoringWeights, v int) { w.MonWithManaCloseToAnyPool = v }},
	{"ManaCarrierAtRisk",
		func(w mons.ScoringWeights) int { return w.ManaCarrierAtRisk },
		func(w *mons.ScoringWeights, v int) { w.ManaCarrierAtRisk = v }},
	{"ManaCarrierOneStepFromPool",
		func(w mons.ScoringWeights) int { return w.ManaCarrierOneStepFromPool },
		func(w *mons.ScoringWeights, v int) { w.ManaCarrierOneStepFromPool = v }},
}

// candidateLabel is one sampled (position, root candidate) pair: the
// position, its enumerated root chains, and the chain a deeper
// reference search prefers there — the pseudo ground-truth label
// coordinate descent regresses the shallow weight vector towards.
type candidateLabel struct {
	position  *mons.MonsGame
	chains    [][]mons.Input
	bestChain []mons.Input
}

// TuningSample is one train/holdout split of labelled positions.
type TuningSample struct {
	Train   []candidateLabel
	Holdout []candidateLabel
}

// TuningReport summarises one coordinate-descent run.
type TuningReport struct {
	BaselineWeights  mons.ScoringWeights
	TunedWeights     mons.ScoringWeights
	TrainObjective   float64
	HoldoutObjective float64
	Iterations       int
}

const regularizerWeight = 0.001

// sampleCandidateLabels generates n labelled positions: a random
// mid-game-ish FEN (deeper than an opening so tactics exist), its
// enumerated root chains, and the chain internal/search prefers there at
// the normal budget (depth 3, 3450 nodes).
func sampleCandidateLabels(n int, seed int64) []candidateLabel {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]candidateLabel, 0, n)
	for i := 0; i < n; i++ {
		game := mons.NewMonsGame()
		plies := 4 + rng.Intn(12)
		for p := 0; p < plies; p++ {
			chains := search.CollectLegalInputs(game, randomEnumLimit)
			if len(chains) == 0 {
				break
			}
			next := search.Simulate(game, chains[rng.Intn(len(chains))])
			if next == nil {
				break
			}
			game = next
			if _, over := game.WinnerColor(); over {
				break
			}
		}
		if _, over := game.WinnerColor(); over {
			continue
		}

		chains := search.CollectLegalInputs(game, rootEnumLimitForGreedy)
		if len(chains) < 2 {
			continue
		}
		best, _, ok := search.SmartAutomove(game, 3, 3450)
		if !ok {
			continue
		}
		labels = append(labels, candidateLabel{position: game, chains: chains, bestChain: best})
	}
	return labels
}

// splitSample divides labels into train/holdout by trainRatio, in
// generation order (the labels are already a seeded-random sample, so
// no further shuffling is needed for an unbiased split).
func splitSample(labels []candidateLabel, trainRatio float64) TuningSample {
	cut := int(float64(len(labels)) * trainRatio)
	return TuningSample{Train: labels[:cut], Holdout: labels[cut:]}
}

// objective scores weights against labels: for each label, the
// normalized regret between the label's best chain and the chain
// weights itself would rank highest, plus a small L1 pull toward
// baseline so the tuned vector doesn't drift arbitrarily far from a
// known-reasonable starting point. Lower is better.
func objective(weights mons.ScoringWeights, baseline mons.ScoringWeights, labels []candidateLabel) float64 {
	if len(labels) == 0 {
		return 0
	}
	total := 0.0
	for _, label := range labels {
		total += regret(weights, label)
	}
	total /= float64(len(labels))
	total += regularizerWeight * l1Distance(weights, baseline)
	return total
}

// regret is how much worse, under weights' own evaluation, the chain
// weights would actually pick is versus the labelled best chain —
// zero when weights happens to agree with the label.
func regret(weights mons.ScoringWeights, label candidateLabel) float64 {
	perspective := label.position.ActiveColor
	bestScore := chainScore(weights, label.position, label.bestChain, perspective)

	pickedScore := bestScore
	for _, chain := range label.chains {
		s := chainScore(weights, label.position, chain, perspective)
		if s > pickedScore {
			pickedScore = s
		}
	}
	diff := pickedScore - bestScore
	if diff < 0 {
		diff = 0
	}
	denom := absInt(bestScore) + 1
	return float64(diff) / float64(denom)
}

func chainScore(weights mons.ScoringWeights, game *mons.MonsGame, chain []mons.Input, perspective mons.Color) int {
	simulated := search.Simulate(game, chain)
	if simulated == nil {
		return -1 << 30
	}
	return mons.EvaluatePreferability(simulated, perspective, weights)
}

func l1Distance(a, b mons.ScoringWeights) float64 {
	total := 0
	for _, f := range tunableFields {
		total += absInt(f.get(a) - f.get(b))
	}
	return float64(total)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TuneEvalWeightsCoordinateDescent performs a deterministic coordinate
// search over tunableFields, starting from baseline, minimizing
// objective on a train split and reporting the same objective measured
// on a disjoint holdout split. Each field is tried at baseline-step,
// baseline, and baseline+step per iteration, keeping whichever reduces
// train objective; iterations with no improvement across every field
// stop the search early.
func TuneEvalWeightsCoordinateDescent(baseline mons.ScoringWeights, sampleSize, iterations int, trainRatio float64, seed int64) TuningReport {
	labels := sampleCandidateLabels(sampleSize, seed)
	sample := splitSample(labels, trainRatio)

	current := baseline
	currentObjective := objective(current, baseline, sample.Train)

	for iter := 0; iter < iterations; iter++ {
		improved := false
		for _, field := range tunableFields {
			base := field.get(current)
			step := stepFor(base)
			for _, candidate := range []int{base - step, base + step} {
				trial := current
				field.set(&trial, candidate)
				trialObjective := objective(trial, baseline, sample.Train)
				if trialObjective < currentObjective {
					current = trial
					currentObjective = trialObjective
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return TuningReport{
		BaselineWeights:  baseline,
		TunedWeights:     current,
		TrainObjective:   currentObjective,
		HoldoutObjective: objective(current, baseline, sample.Holdout),
		Iterations:       iterations,
	}
}

// stepFor scales the coordinate-descent step with the field's current
// magnitude so a weight of 50 and one of 1000 both move by roughly the
// same relative amount per iteration.
func stepFor(current int) int {
	step := current / 10
	if step < 10 {
		step = 10
	}
	return step
}
