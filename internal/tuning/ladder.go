package tuning

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LadderStage names one of the four promotion-ladder gates a candidate
// must clear in order, each more expensive than the last so a weak
// candidate is rejected cheaply before the harness spends a full
// EvaluateCandidateAgainstPool run on it.
type LadderStage string

const (
	StageA LadderStage = "A" // cheap sanity: a short series against the weakest opponent only
	StageB LadderStage = "B" // tactical guardrails: must realise forced tactics (see EvaluateTacticalGuardrails)
	StageC LadderStage = "C" // full pool evaluation under every budget mode
	StageD LadderStage = "D" // budget conversion: normal-mode win rate against the first opponent must not trail fast mode's
)

// FastCPURatioMax and NormalCPURatioMax are per-mode bounds on how much
// slower a candidate's wall-clock cost may be than the incumbent's. No
// stage reads them: the ladder measures no wall-clock time.
const (
	FastCPURatioMax   = 1.08
	NormalCPURatioMax = 1.15
)

// StageResult is one ladder stage's verdict plus whatever data backs it,
// serialised as that stage's JSON artefact.
type StageResult struct {
	Stage   LadderStage `json:"stage"`
	Passed  bool        `json:"passed"`
	Detail  string      `json:"detail"`
	Metrics any         `json:"metrics,omitempty"`
}

// LadderResult is the full run: the stage results reached (stopping
// early on the first failure) and whether the candidate was ultimately
// promoted.
type LadderResult struct {
	Candidate string        `json:"candidate"`
	Stages    []StageResult `json:"stages"`
	Promoted  bool          `json:"promoted"`
}

// PromotionLadder runs candidate through stages A-D in order against
// opponents (the current pool, weakest-first by the caller's ordering),
// writing one JSON artefact per stage into artefactDir, and stopping at
// the first failed stage.
func PromotionLadder(
	candidate CandidateBuilder,
	candidateName string,
	opponents []AutomoveModel,
	gate PromotionGateConfig,
	seed int64,
	artefactDir string,
) (LadderResult, error) {
	result := LadderResult{Candidate: candidateName}

	stages := []func() StageResult{
		func() StageResult { return runStageA(candidate, opponents, seed) },
		func() StageResult { return runStageB(candidate, seed) },
		func() StageResult { return runStageC(candidate, opponents, gate, seed) },
		func() StageResult { return runStageD(candidate, opponents, seed) },
	}

	for _, run := range stages {
		stage := run()
		result.Stages = append(result.Stages, stage)
		if err := writeArtefact(artefactDir, candidateName, stage); err != nil {
			return result, err
		}
		log.Debug().Str("candidate", candidateName).Str("stage", string(stage.Stage)).Bool("passed", stage.Passed).Msg("promotion ladder stage complete")
		if !stage.Passed {
			return result, nil
		}
	}

	result.Promoted = true
	return result, nil
}

const stageASeries = 10

func runStageA(candidate CandidateBuilder, opponents []AutomoveModel, seed int64) StageResult {
	if len(opponents) == 0 {
		return StageResult{Stage: StageA, Passed: false, Detail: "no opponents configured"}
	}
	model := candidate(FastMode)
	stats := RunMatchupSeries(model, opponents[0], stageASeries, seed)
	passed := stats.WinRate >= 0.3 // a weak sanity floor, not the full promotion gate
	return StageResult{
		Stage:   StageA,
		Passed:  passed,
		Detail:  fmt.Sprintf("%d/%d against %s", stats.Wins, stats.Games, stats.Opponent),
		Metrics: stats,
	}
}

func runStageB(candidate CandidateBuilder, seed int64) StageResult {
	model := candidate(FastMode)
	results := EvaluateTacticalGuardrails(model, seed)
	passed := true
	for _, r := range results {
		if !r.Passed {
			passed = false
		}
	}
	return StageResult{Stage: StageB, Passed: passed, Detail: "tactical guardrails", Metrics: results}
}

func runStageC(candidate CandidateBuilder, opponents []AutomoveModel, gate PromotionGateConfig, seed int64) StageResult {
	eval := EvaluateCandidateAgainstPool(candidate, opponents, []BudgetMode{FastMode, NormalMode}, 20, seed, gate)
	return StageResult{
		Stage:  StageC,
		Passed: eval.Promoted,
		Detail: fmt.Sprintf("beaten %d opponents, win-rate %.3f, confidence %.3f", eval.BeatenCount, eval.Aggregate.WinRate, eval.Aggregate.Confidence),
		Metrics: eval,
	}
}

// runStageD checks budget conversion: it plays the candidate at the fast
// and at the normal budget against the first opponent, stageASeries
// games each, and passes when the normal-mode win rate is no more than
// 0.05 below the fast-mode win rate. It compares plain win rates and
// does not time the games, so the CPU-ratio bounds are not applied.
func runStageD(candidate CandidateBuilder, opponents []AutomoveModel, seed int64) StageResult {
	if len(opponents) == 0 {
		return StageResult{Stage: StageD, Passed: false, Detail: "no opponents configured"}
	}
	fastModel := candidate(FastMode)
	normalModel := candidate(NormalMode)
	fastStats := RunMatchupSeries(fastModel, opponents[0], stageASeries, seed)
	normalStats := RunMatchupSeries(normalModel, opponents[0], stageASeries, seed)
	passed := normalStats.WinRate+0.05 >= fastStats.WinRate
	return StageResult{
		Stage:  StageD,
		Passed: passed,
		Detail: fmt.Sprintf("fast win-rate %.3f, normal win-rate %.3f", fastStats.WinRate, normalStats.WinRate),
		Metrics: map[string]MatchupStats{"fast": fastStats, "normal": normalStats},
	}
}

func writeArtefact(dir, candidateName string, stage StageResult) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artefact dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-stage-%s.json", candidateName, stage.Stage))
	data, err := json.MarshalIndent(stage, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stage artefact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stage artefact: %w", err)
	}
	return nil
}
