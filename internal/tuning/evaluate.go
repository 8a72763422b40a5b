package tuning

// BudgetMode names one of the two depth/node-budget presets a search
// based candidate is evaluated under; greedy candidates ignore the
// budget and play the same way in every mode.
type BudgetMode struct {
	Name     string
	Depth    int
	MaxNodes int
}

var (
	FastMode   = BudgetMode{Name: "fast", Depth: 2, MaxNodes: 420}
	NormalMode = BudgetMode{Name: "normal", Depth: 3, MaxNodes: 3450}
)

// CandidateBuilder produces the AutomoveModel a candidate plays as under
// a given budget mode. Search based candidates use mode.Depth/MaxNodes
// directly; greedy or random candidates can ignore the argument.
type CandidateBuilder func(mode BudgetMode) AutomoveModel

// PromotionGateConfig holds the promotion-gate thresholds: beaten-
// opponent count, aggregate win-rate, aggregate confidence.
type PromotionGateConfig struct {
	MinBeaten     int
	MinWinRate    float64
	MinConfidence float64
}

// DefaultPromotionGate is the harness's standard promotion threshold.
var DefaultPromotionGate = PromotionGateConfig{MinBeaten: 7, MinWinRate: 0.5, MinConfidence: 0.75}

// ModeResult is one budget mode's aggregate result across every pool
// opponent, plus whether the candidate is "strong" in that mode alone.
type ModeResult struct {
	Mode        BudgetMode
	PerOpponent []MatchupStats
	Aggregate   MatchupStats
	Passed      bool
}

// CandidateEvaluation is the full result of running a candidate against
// the pool under every tested budget mode, plus the final promotion
// decision.
type CandidateEvaluation struct {
	Modes       []ModeResult
	BeatenCount int
	Aggregate   MatchupStats
	Promoted    bool
}

// evaluationWorkers bounds the per-mode fan-out RunModeEvaluation uses;
// a matchup series is CPU-bound and independent, so this is sized as a
// small fixed worker count rather than left at one goroutine.
const evaluationWorkers = 4

// EvaluateCandidateAgainstPool plays candidate against every opponent
// under every mode, gamesPerMatchup games each, and applies the
// promotion gate: beaten >= gate.MinBeaten opponents (merged across
// modes), aggregate win-rate/confidence over the gate thresholds, and
// passing the same thresholds independently in every mode ("strong in
// each mode").
func EvaluateCandidateAgainstPool(
	candidate CandidateBuilder,
	opponents []AutomoveModel,
	modes []BudgetMode,
	gamesPerMatchup int,
	seed int64,
	gate PromotionGateConfig,
) CandidateEvaluation {
	eval := CandidateEvaluation{Modes: make([]ModeResult, 0, len(modes))}

	perOpponentAcrossModes := make(map[string][]MatchupStats, len(opponents))
	var allStats []MatchupStats

	for _, mode := range modes {
		model := candidate(mode)
		modeSeed := seed + hashModeName(mode.Name)
		perOpponent := RunModeEvaluation(model, opponents, gamesPerMatchup, modeSeed, evaluationWorkers)

		for oi, opponent := range opponents {
			perOpponentAcrossModes[opponent.Name] = append(perOpponentAcrossModes[opponent.Name], perOpponent[oi])
		}
		allStats = append(allStats, perOpponent...)

		modeResult := ModeResult{Mode: mode, PerOpponent: perOpponent}
		modeResult.Aggregate = mergeStats("mode:"+mode.Name, modeResult.PerOpponent)
		modeResult.Passed = passesGate(modeResult.Aggregate, gate)
		eval.Modes = append(eval.Modes, modeResult)
	}

	beaten := 0
	for _, opponent := range opponents {
		merged := mergeStats(opponent.Name, perOpponentAcrossModes[opponent.Name])
		if passesGate(merged, gate) {
			beaten++
		}
	}
	eval.BeatenCount = beaten
	eval.Aggregate = mergeStats("overall", allStats)

	strongInEveryMode := true
	for _, m := range eval.Modes {
		if !m.Passed {
			strongInEveryMode = false
			break
		}
	}

	eval.Promoted = beaten >= gate.MinBeaten && passesGate(eval.Aggregate, gate) && strongInEveryMode
	return eval
}

func passesGate(stats MatchupStats, gate PromotionGateConfig) bool {
	return stats.WinRate > gate.MinWinRate && stats.Confidence >= gate.MinConfidence
}

func mergeStats(label string, stats []MatchupStats) MatchupStats {
	merged := MatchupStats{Opponent: label}
	for _, s := range stats {
		merged.Games += s.Games
		merged.Wins += s.Wins
		merged.Losses += s.Losses
		merged.Draws += s.Draws
	}
	merged.DecisiveN = merged.Wins + merged.Losses
	if merged.Games > 0 {
		merged.WinRate = float64(merged.Wins) / float64(merged.Games)
	}
	merged.Confidence = winRateConfidence(merged.Wins, merged.DecisiveN)
	return merged
}

// hashModeName gives each mode a distinct but deterministic seed offset
// without relying on map iteration order.
func hashModeName(name string) int64 {
	var h int64 = 1469598103934665603
	for _, b := range []byte(name) {
		h ^= int64(b)
		h *= 1099511628211
	}
	return h
}
