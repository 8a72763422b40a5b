package mons

// MonsGame is the full mutable state of one match: the board, both
// sides' scores and potion counts, the current turn's budget counters,
// and a snapshot of the state at the start of the current turn, so a
// takeback can undo the moves made so far in that turn.
type MonsGame struct {
	Board Board

	WhiteScore int
	BlackScore int

	ActiveColor Color

	ActionsUsedCount int
	ManaMovesCount   int
	MonsMovesCount   int

	WhitePotionsCount int
	BlackPotionsCount int

	TurnNumber int

	// takebackSnapshot holds the FEN of the state at the start of the
	// current turn, so a Takeback input can restore it. Empty before
	// the first move of a turn has been applied.
	takebackSnapshot string
	takebackColor    Color
	hasTakeback      bool
}

// NewMonsGame returns a fresh game at the starting position.
func NewMonsGame() *MonsGame {
	return &MonsGame{
		Board:       NewBoard(),
		ActiveColor: White,
		TurnNumber:  1,
	}
}

// NewMonsGameWithParams builds a game from explicit field values, mirroring
// the FEN field order.
func NewMonsGameWithParams(board Board, whiteScore, blackScore int, active Color, actionsUsed, manaMoves, monsMoves, whitePotions, blackPotions, turnNumber int) *MonsGame {
	return &MonsGame{
		Board:             board,
		WhiteScore:        whiteScore,
		BlackScore:        blackScore,
		ActiveColor:       active,
		ActionsUsedCount:  actionsUsed,
		ManaMovesCount:    manaMoves,
		MonsMovesCount:    monsMoves,
		WhitePotionsCount: whitePotions,
		BlackPotionsCount: blackPotions,
		TurnNumber:        turnNumber,
	}
}

// Clone returns a deep-enough copy safe for a search node to mutate
// independently of the original.
func (g *MonsGame) Clone() *MonsGame {
	items := make(map[Location]Item, len(g.Board.Items))
	for loc, it := range g.Board.Items {
		items[loc] = it
	}
	clone := *g
	clone.Board = NewBoardWithItems(items)
	return &clone
}

// WinnerColor reports the winning side, if either has reached TargetScore.
// White is preferred on a tie, which cannot arise in legal play.
func (g *MonsGame) WinnerColor() (Color, bool) {
	if g.WhiteScore >= TargetScore {
		return White, true
	}
	if g.BlackScore >= TargetScore {
		return Black, true
	}
	return Color(0), false
}

func (g *MonsGame) IsFirstTurn() bool { return g.TurnNumber == 1 }

func (g *MonsGame) PlayerPotionsCount() int {
	if g.ActiveColor == White {
		return g.WhitePotionsCount
	}
	return g.BlackPotionsCount
}

func (g *MonsGame) PlayerCanMoveMon() bool {
	return g.MonsMovesCount < MonsMovesPerTurn
}

func (g *MonsGame) PlayerCanMoveMana() bool {
	return !g.IsFirstTurn() && g.ManaMovesCount < ManaMovesPerTurn
}

func (g *MonsGame) PlayerCanUseAction() bool {
	return !g.IsFirstTurn() && (g.PlayerPotionsCount() > 0 || g.ActionsUsedCount < ActionsPerTurn)
}

// ProtectedByOpponentsAngel returns the set of locations shielded by an
// awake enemy angel's aura (its eight Chebyshev-1 neighbours).
func (g *MonsGame) ProtectedByOpponentsAngel() map[Location]bool {
	protected := make(map[Location]bool)
	loc, ok := g.Board.FindAwakeAngel(g.ActiveColor.Other())
	if !ok {
		return protected
	}
	for _, nb := range loc.NearbyLocations() {
		protected[nb] = true
	}
	return protected
}

// AvailableMoveKinds reports the remaining budget, keyed by kind, for the
// side to move this turn.
func (g *MonsGame) AvailableMoveKinds() map[AvailableMoveKind]int {
	moves := map[AvailableMoveKind]int{
		AvailableMonMove:  MonsMovesPerTurn - g.MonsMovesCount,
		AvailableAction:   0,
		AvailablePotion:   0,
		AvailableManaMove: 0,
	}
	if g.IsFirstTurn() {
		return moves
	}
	moves[AvailableAction] = ActionsPerTurn - g.ActionsUsedCount
	moves[AvailablePotion] = g.PlayerPotionsCount()
	moves[AvailableManaMove] = ManaMovesPerTurn - g.ManaMovesCount
	return moves
}

func (g *MonsGame) resetTurnState() {
	g.ActionsUsedCount = 0
	g.ManaMovesCount = 0
	g.MonsMovesCount = 0
}

// didUseAction charges the current action slot, or the potion inventory
// once the per-turn slot is spent.
func (g *MonsGame) didUseAction() {
	if g.ActionsUsedCount >= ActionsPerTurn {
		if g.ActiveColor == White {
			g.WhitePotionsCount--
		} else {
			g.BlackPotionsCount--
		}
		return
	}
	g.ActionsUsedCount++
}

// ApplyAndAddResultingEvents mutates the game according to events, in
// order, then appends whatever automatic follow-up events trigger:
// GameOver, or a turn change with cooldown decay and MonAwake. The
// returned slice is events followed by the appended ones.
func (g *MonsGame) ApplyAndAddResultingEvents(events []Event) []Event {
	var extra []Event

	for _, event := range events {
		switch event.Kind {
		case EventMonMove:
			g.MonsMovesCount++
			g.Board.RemoveItem(event.From)
			g.Board.Put(event.Item, event.To)
		case EventManaMove:
			g.ManaMovesCount++
			g.Board.RemoveItem(event.From)
			g.Board.Put(ItemFromMana(event.Mana), event.To)
		case EventManaScored:
			score := event.Mana.Score(g.ActiveColor)
			if g.ActiveColor == White {
				g.WhiteScore += score
			} else {
				g.BlackScore += score
			}
			if it, ok := g.Board.Item(event.At); ok {
				if mon, ok := it.HasMon(); ok {
					g.Board.Put(ItemFromMon(mon), event.At)
				} else {
					g.Board.RemoveItem(event.At)
				}
			} else {
				g.Board.RemoveItem(event.At)
			}
		case EventMysticAction:
			g.didUseAction()
			g.Board.RemoveItem(event.To)
		case EventDemonAction:
			g.didUseAction()
			g.Board.RemoveItem(event.From)
			g.Board.Put(ItemFromMon(event.Mon), event.To)
		case EventDemonAdditionalStep:
			g.Board.Put(ItemFromMon(event.Mon), event.To)
		case EventSpiritTargetMove:
			g.didUseAction()
			g.Board.RemoveItem(event.From)
			g.Board.Put(event.Item, event.To)
		case EventPickupBomb:
			g.Board.Put(ItemFromMonWithConsumable(event.By, Bomb), event.At)
		case EventPickupPotion:
			mon, ok := event.ByItem.HasMon()
			if !ok {
				continue
			}
			if mon.Color == White {
				g.WhitePotionsCount++
			} else {
				g.BlackPotionsCount++
			}
			g.Board.Put(event.ByItem, event.At)
		case EventUsePotion:
			// Bookkeeping for the extra action happens in didUseAction
			// at the event that consumes it; nothing further to apply.
		case EventPickupMana:
			g.Board.Put(ItemFromMonWithMana(event.By, event.Mana), event.At)
		case EventMonFainted:
			fainted := event.Mon.Faint()
			g.Board.Put(ItemFromMon(fainted), event.To)
		case EventManaDropped:
			g.Board.Put(ItemFromMana(event.Mana), event.At)
		case EventSupermanaBackToBase:
			g.Board.RemoveItem(event.From)
			g.Board.Put(ItemFromMana(NewSupermana()), event.To)
		case EventBombAttack:
			g.Board.RemoveItem(event.To)
			g.Board.Put(ItemFromMon(event.By), event.From)
		case EventBombExplosion:
			g.Board.RemoveItem(event.At)
		case EventMonAwake:
			g.Board.Put(ItemFromMon(event.Mon), event.At)
		case EventGameOver:
			extra = append(extra, GameOverEvent(event.Color))
		case EventNextTurn:
			g.ActiveColor = event.Color
			g.resetTurnState()
			for _, loc := range g.Board.FaintedMonsLocations(g.ActiveColor) {
				it, ok := g.Board.Item(loc)
				if !ok {
					continue
				}
				mon, ok := it.HasMon()
				if !ok {
					continue
				}
				awake := mon.DecreaseCooldown()
				g.Board.Put(ItemFromMon(awake), loc)
				if !awake.IsFainted() {
					extra = append(extra, MonAwakeEvent(awake, loc))
				}
			}
		case EventTakeback:
			// Takeback restoration happens in ProcessInput before this
			// function is reached; nothing to apply here.
		}
	}

	if ev, ok := g.returnUnattendedSupermana(); ok {
		extra = append(extra, ev)
	}

	if winner, ok := g.WinnerColor(); ok {
		extra = append(extra, GameOverEvent(winner))
	} else if g.turnExhausted() {
		g.ActiveColor = g.ActiveColor.Other()
		g.TurnNumber++
		g.resetTurnState()
		extra = append(extra, NextTurnEvent(g.ActiveColor))
		for _, loc := range g.Board.FaintedMonsLocations(g.ActiveColor) {
			it, ok := g.Board.Item(loc)
			if !ok {
				continue
			}
			mon, ok := it.HasMon()
			if !ok {
				continue
			}
			awake := mon.DecreaseCooldown()
			g.Board.Put(ItemFromMon(awake), loc)
			if !awake.IsFainted() {
				extra = append(extra, MonAwakeEvent(awake, loc))
			}
		}
	}

	return append(append([]Event{}, events...), extra...)
}

// returnUnattendedSupermana sends the supermana back to its base once it
// is lying bare on the board (dropped by a fainted carrier, say) away
// from its base square. A supermana still held by a mon, or already
// sitting on its base, is attended and stays put.
func (g *MonsGame) returnUnattendedSupermana() (Event, bool) {
	base := g.Board.SupermanaBase()
	for loc, it := range g.Board.Items {
		if it.Kind != ItemMana || it.Mana.Kind != Supermana || loc == base {
			continue
		}
		g.Board.RemoveItem(loc)
		g.Board.Put(ItemFromMana(NewSupermana()), base)
		return SupermanaBackToBaseEvent(loc, base), true
	}
	return Event{}, false
}

// turnExhausted reports whether the turn passes to the other side. On
// the first turn that happens once the mon moves are used up. From the
// second turn it happens as soon as the mana move is made, or once the
// mon moves are used up and the side has no free regular mana of its own
// color on the board. An unused action or potion does not keep the turn
// open.
func (g *MonsGame) turnExhausted() bool {
	if g.IsFirstTurn() {
		return !g.PlayerCanMoveMon()
	}
	noMana := !g.PlayerCanMoveMana()
	noMon := !g.PlayerCanMoveMon()
	_, hasMana := g.Board.FindMana(g.ActiveColor)
	return noMana || (noMon && !hasMana)
}

// Snapshot returns the FEN of the current state, used to save a
// pre-turn checkpoint for takeback support.
func (g *MonsGame) Snapshot() string {
	return EncodeFEN(g)
}

// saveTakebackSnapshot records the state as of the start of the current
// turn, overwriting any prior snapshot for a different turn.
func (g *MonsGame) saveTakebackSnapshot() {
	if g.hasTakeback && g.takebackColor == g.ActiveColor {
		return
	}
	g.takebackSnapshot = g.Snapshot()
	g.takebackColor = g.ActiveColor
	g.hasTakeback = true
}

// canTakeback reports whether a takeback snapshot exists for the side
// currently to move.
func (g *MonsGame) canTakeback() bool {
	return g.hasTakeback && g.takebackColor == g.ActiveColor
}

// restoreTakeback resets the game to the saved pre-turn snapshot.
func (g *MonsGame) restoreTakeback() bool {
	if !g.canTakeback() {
		return false
	}
	restored, err := DecodeFEN(g.takebackSnapshot)
	if err != nil {
		return false
	}
	restored.takebackSnapshot = g.takebackSnapshot
	restored.takebackColor = g.takebackColor
	restored.hasTakeback = g.hasTakeback
	*g = *restored
	return true
}
