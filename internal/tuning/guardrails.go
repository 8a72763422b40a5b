package tuning

import (
	"math/rand"

	"github.com/efreeman/mons-engine/pkg/mons"
)

// GuardrailResult is the outcome of checking one tactical guardrail
// against a selector's actual choice in a constructed position.
type GuardrailResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// EvaluateTacticalGuardrails runs model against a set of constructed
// tactical positions and reports whether its choice realises the
// required tactic in each. It covers three scenarios; the preference
// for a safe move over an exposed one is not checked here or by any
// test; see DESIGN.md.
func EvaluateTacticalGuardrails(model AutomoveModel, seed int64) []GuardrailResult {
	rng := rand.New(rand.NewSource(seed))
	return []GuardrailResult{
		{Name: "mystic_faints_drainer", Passed: checkMysticFaintsDrainer(model, rng)},
		{Name: "carrier_scores_when_adjacent_to_pool", Passed: checkCarrierScores(model, rng)},
		{Name: "anti_roundtrip", Passed: checkAntiRoundtrip(model, rng)},
	}
}

func checkMysticFaintsDrainer(model AutomoveModel, rng *rand.Rand) bool {
	items := map[mons.Location]mons.Item{
		{I: 5, J: 5}: mons.ItemFromMon(mons.Mon{Kind: mons.Mystic, Color: mons.White}),
		{I: 7, J: 7}: mons.ItemFromMon(mons.Mon{Kind: mons.Drainer, Color: mons.Black}),
	}
	game := mons.NewMonsGameWithParams(mons.NewBoardWithItems(items), 0, 0, mons.White, 0, 0, 0, 0, 0, 2)

	inputs := model.Select(game, rng)
	if inputs == nil {
		return false
	}
	out := game.ProcessInput(inputs, false, false)
	if out.Kind != mons.OutputEvents {
		return false
	}
	for _, ev := range out.Events {
		if ev.Kind == mons.EventMonFainted && ev.Mon.Color == mons.Black && ev.Mon.Kind == mons.Drainer {
			return true
		}
	}
	return false
}

func checkCarrierScores(model AutomoveModel, rng *rand.Rand) bool {
	items := map[mons.Location]mons.Item{
		{I: mons.MaxLocationIndex - 1, J: 0}: {
			Kind: mons.ItemMonWithMana,
			Mon:  mons.Mon{Kind: mons.Drainer, Color: mons.White},
			Mana: mons.Mana{Kind: mons.RegularMana, Color: mons.White},
		},
		{I: 5, J: 5}: mons.ItemFromMon(mons.Mon{Kind: mons.Drainer, Color: mons.Black}),
	}
	game := mons.NewMonsGameWithParams(mons.NewBoardWithItems(items), 0, 0, mons.White, 0, 0, 0, 0, 0, 2)

	inputs := model.Select(game, rng)
	if inputs == nil {
		return false
	}
	out := game.ProcessInput(inputs, false, false)
	if out.Kind != mons.OutputEvents {
		return false
	}
	for _, ev := range out.Events {
		if ev.Kind == mons.EventManaScored {
			return true
		}
	}
	return false
}

// checkAntiRoundtrip plays two real plies with model on both sides from
// a position with an otherwise-idle White drainer, then checks that
// model's second White move doesn't simply undo its first when a
// distinct legal alternative exists.
func checkAntiRoundtrip(model AutomoveModel, rng *rand.Rand) bool {
	items := map[mons.Location]mons.Item{
		{I: 5, J: 5}: mons.ItemFromMon(mons.Mon{Kind: mons.Drainer, Color: mons.White}),
		{I: 0, J: 0}: mons.ItemFromMon(mons.Mon{Kind: mons.Drainer, Color: mons.Black}),
	}
	game := mons.NewMonsGameWithParams(mons.NewBoardWithItems(items), 0, 0, mons.White, 0, 0, 0, 0, 0, 2)

	firstMove := model.Select(game, rng)
	if firstMove == nil || len(firstMove) < 2 {
		return false
	}
	firstOrigin, originOK := firstMove[0].AsLocation()
	firstTarget, targetOK := firstMove[1].AsLocation()
	if !originOK || !targetOK {
		return true
	}
	if out := game.ProcessInput(firstMove, false, false); out.Kind != mons.OutputEvents {
		return false
	}

	blackMove := model.Select(game, rng)
	if blackMove == nil {
		return true
	}
	if out := game.ProcessInput(blackMove, false, false); out.Kind != mons.OutputEvents {
		return true
	}
	if _, over := game.WinnerColor(); over {
		return true
	}

	secondMove := model.Select(game, rng)
	if secondMove == nil || len(secondMove) < 2 {
		return true
	}
	secondOrigin, _ := secondMove[0].AsLocation()
	secondTarget, _ := secondMove[1].AsLocation()
	isPureReversal := secondOrigin == firstTarget && secondTarget == firstOrigin

	chains := countAlternatives(game)
	if !isPureReversal || chains <= 1 {
		return true
	}
	return false
}

func countAlternatives(game *mons.MonsGame) int {
	count := 0
	out := game.ProcessInput(nil, true, false)
	if out.Kind != mons.OutputLocationsToStartFrom {
		return 0
	}
	for range out.LocationsToStart {
		count++
	}
	return count
}
