package mons

import "testing"

func TestOpeningWhiteMonMove(t *testing.T) {
	g := NewMonsGame()
	from := Location{I: 10, J: 5}
	to := Location{I: 9, J: 5}

	out := g.ProcessInput([]Input{InputFromLocation(from), InputFromLocation(to)}, false, false)
	if out.Kind != OutputEvents {
		t.Fatalf("expected Events, got %v", out.Kind)
	}

	foundMove := false
	for _, ev := range out.Events {
		if ev.Kind == EventMonMove && ev.From == from && ev.To == to {
			foundMove = true
		}
	}
	if !foundMove {
		t.Errorf("expected a MonMove from %+v to %+v, got %+v", from, to, out.Events)
	}
	if g.MonsMovesCount != 1 {
		t.Errorf("mons_moves_count = %d, want 1", g.MonsMovesCount)
	}
}

func TestTakebackRejectedOnFirstTurn(t *testing.T) {
	g := NewMonsGame()
	out := g.ProcessInput([]Input{TakebackInput()}, false, false)
	if out.Kind != OutputInvalidInput {
		t.Errorf("expected InvalidInput for a turn-1 takeback, got %v", out.Kind)
	}
}

func TestManaPickupThenScore(t *testing.T) {
	items := map[Location]Item{
		{I: 9, J: 0}:  ItemFromMon(Mon{Kind: Drainer, Color: White}),
		{I: 8, J: 0}:  ItemFromMana(Mana{Kind: RegularMana, Color: White}),
		{I: 10, J: 5}: ItemFromMon(Mon{Kind: Drainer, Color: Black}), // keep board non-trivial
	}
	g := NewMonsGameWithParams(NewBoardWithItems(items), 0, 0, White, 0, 0, 0, 0, 0, 2)

	pickup := g.ProcessInput([]Input{InputFromLocation(Location{I: 9, J: 0}), InputFromLocation(Location{I: 8, J: 0})}, false, false)
	if pickup.Kind != OutputEvents {
		t.Fatalf("pickup: expected Events, got %v", pickup.Kind)
	}
	hasPickup := false
	for _, ev := range pickup.Events {
		if ev.Kind == EventPickupMana {
			hasPickup = true
		}
	}
	if !hasPickup {
		t.Fatalf("expected PickupMana among %+v", pickup.Events)
	}

	g.resetTurnState()
	g.MonsMovesCount = 0
	step := g.ProcessInput([]Input{InputFromLocation(Location{I: 8, J: 0}), InputFromLocation(Location{I: 9, J: 0})}, false, false)
	if step.Kind != OutputEvents {
		t.Fatalf("carry step: expected Events, got %v", step.Kind)
	}
	scored := g.ProcessInput([]Input{InputFromLocation(Location{I: 9, J: 0}), InputFromLocation(Location{I: MaxLocationIndex, J: 0})}, false, false)
	if scored.Kind != OutputEvents {
		t.Fatalf("score: expected Events, got %v", scored.Kind)
	}
	if g.WhiteScore != 1 {
		t.Errorf("white_score = %d, want 1", g.WhiteScore)
	}
}

func TestMysticAttackBlockedByAngelProtection(t *testing.T) {
	items := map[Location]Item{
		{I: 6, J: 6}: ItemFromMon(Mon{Kind: Mystic, Color: Black}),
		{I: 8, J: 8}: ItemFromMon(Mon{Kind: Drainer, Color: White}),
		{I: 9, J: 8}: ItemFromMon(Mon{Kind: Angel, Color: White}),
	}
	g := NewMonsGameWithParams(NewBoardWithItems(items), 0, 0, Black, 0, 0, 0, 0, 0, 2)

	out := g.ProcessInput([]Input{InputFromLocation(Location{I: 6, J: 6})}, true, false)
	if out.Kind == OutputNextInputOptions {
		for _, opt := range out.NextInputOptions {
			if opt.Kind != NextInputMysticAction {
				continue
			}
			if loc, ok := opt.Input.AsLocation(); ok && loc == (Location{I: 8, J: 8}) {
				t.Errorf("protected drainer at (8,8) should not be an offered mystic-action target")
			}
		}
	}

	full := g.ProcessInput([]Input{
		InputFromLocation(Location{I: 6, J: 6}),
		InputFromLocation(Location{I: 8, J: 8}),
	}, true, false)
	if full.Kind != OutputInvalidInput {
		t.Errorf("attacking a protected drainer should be InvalidInput, got %v", full.Kind)
	}
}

func TestGameOverCascade(t *testing.T) {
	items := map[Location]Item{
		{I: MaxLocationIndex - 1, J: 0}: {Kind: ItemMonWithMana, Mon: Mon{Kind: Drainer, Color: White}, Mana: Mana{Kind: RegularMana, Color: White}},
	}
	g := NewMonsGameWithParams(NewBoardWithItems(items), 4, 0, White, 0, 0, 0, 0, 0, 2)

	out := g.ProcessInput([]Input{
		InputFromLocation(Location{I: MaxLocationIndex - 1, J: 0}),
		InputFromLocation(Location{I: MaxLocationIndex, J: 0}),
	}, false, false)
	if out.Kind != OutputEvents {
		t.Fatalf("expected Events, got %v", out.Kind)
	}

	last := out.Events[len(out.Events)-1]
	if last.Kind != EventGameOver {
		t.Fatalf("expected the last event to be GameOver, got %v (%+v)", last.Kind, out.Events)
	}
	if last.Color != White {
		t.Errorf("GameOver color = %v, want White", last.Color)
	}
	winner, ok := g.WinnerColor()
	if !ok || winner != White {
		t.Errorf("WinnerColor() = (%v, %v), want (White, true)", winner, ok)
	}
}

func TestAtMostOneItemPerLocationAfterEvents(t *testing.T) {
	g := NewMonsGame()
	from := Location{I: 10, J: 5}
	to := Location{I: 9, J: 5}
	out := g.ProcessInput([]Input{InputFromLocation(from), InputFromLocation(to)}, false, false)
	if out.Kind != OutputEvents {
		t.Fatalf("expected Events, got %v", out.Kind)
	}
	seen := make(map[Location]bool, len(g.Board.Items))
	for loc := range g.Board.Items {
		if seen[loc] {
			t.Fatalf("duplicate item at %+v", loc)
		}
		seen[loc] = true
	}
}

func TestScoresNeverNegative(t *testing.T) {
	g := NewMonsGame()
	if g.WhiteScore < 0 || g.BlackScore < 0 {
		t.Errorf("initial scores should be non-negative: white=%d black=%d", g.WhiteScore, g.BlackScore)
	}
}

func TestTurnNumberStartsAtOne(t *testing.T) {
	g := NewMonsGame()
	if g.TurnNumber < 1 {
		t.Errorf("turn_number = %d, want >= 1", g.TurnNumber)
	}
}

func TestDemonActionOffersAdditionalStepOntoEmptyForwardCell(t *testing.T) {
	items := map[Location]Item{
		{I: 5, J: 5}: ItemFromMon(Mon{Kind: Demon, Color: White}),
		{I: 5, J: 7}: ItemFromMon(Mon{Kind: Drainer, Color: Black}),
	}
	g := NewMonsGameWithParams(NewBoardWithItems(items), 0, 0, White, 0, ManaMovesPerTurn, MonsMovesPerTurn, 0, 0, 2)

	out := g.ProcessInput([]Input{
		InputFromLocation(Location{I: 5, J: 5}),
		InputFromLocation(Location{I: 5, J: 7}),
	}, true, false)
	if out.Kind != OutputNextInputOptions {
		t.Fatalf("expected NextInputOptions after a demon action with an open forward cell, got %v (%+v)", out.Kind, out)
	}

	var sawStep, sawCancel bool
	for _, opt := range out.NextInputOptions {
		if opt.Kind != NextInputDemonAdditionalStep {
			continue
		}
		if loc, ok := opt.Input.AsLocation(); ok && loc == (Location{I: 5, J: 8}) {
			sawStep = true
		}
		if mod, ok := opt.Input.AsModifier(); ok && mod == Cancel {
			sawCancel = true
		}
	}
	if !sawStep {
		t.Errorf("expected a DemonAdditionalStep option onto (5,8), got %+v", out.NextInputOptions)
	}
	if !sawCancel {
		t.Errorf("expected a Cancel option alongside the additional step, got %+v", out.NextInputOptions)
	}
}

func TestMonAwakeEmittedOnlyWhenCooldownReachesZero(t *testing.T) {
	items := map[Location]Item{
		{I: 5, J: 5}: ItemFromMon(Mon{Kind: Drainer, Color: White, Cooldown: 1}),
		{I: 6, J: 6}: ItemFromMon(Mon{Kind: Drainer, Color: White, Cooldown: 3}),
		{I: 0, J: 3}: ItemFromMon(Mon{Kind: Mystic, Color: Black}),
	}
	g := NewMonsGameWithParams(NewBoardWithItems(items), 0, 0, Black, ActionsPerTurn, ManaMovesPerTurn, MonsMovesPerTurn, 0, 0, 2)

	events := g.ApplyAndAddResultingEvents(nil)

	awoken := 0
	for _, ev := range events {
		if ev.Kind == EventMonAwake {
			awoken++
			if ev.Mon.Cooldown != 0 {
				t.Errorf("MonAwake mon should have cooldown 0, got %d", ev.Mon.Cooldown)
			}
		}
	}
	if awoken != 1 {
		t.Errorf("expected exactly 1 MonAwake (the cooldown=1 drainer), got %d", awoken)
	}
}
