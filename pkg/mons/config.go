package mons

// Board-wide constants. These mirror the fixed ruleset: an 11x11 board,
// first side to TargetScore mana points wins.
const (
	BoardSize        = 11
	BoardCenterIndex = BoardSize / 2
	MaxLocationIndex = BoardSize - 1
	TargetScore      = 5
	MonsMovesPerTurn = 5
	ManaMovesPerTurn = 1
	ActionsPerTurn   = 1
)

// Squares returns the fixed per-coordinate role of every board cell that
// is not SquareRegular, keyed by Location. Cells absent from the map are
// plain regular squares.
func Squares() map[Location]Square {
	sq := make(map[Location]Square, 16)

	// Mana pools: a mon carrying mana scores by stepping onto a pool of
	// its own color.
	sq[Location{0, 0}] = Square{Kind: SquareManaPool, Color: Black}
	sq[Location{0, MaxLocationIndex}] = Square{Kind: SquareManaPool, Color: Black}
	sq[Location{MaxLocationIndex, 0}] = Square{Kind: SquareManaPool, Color: White}
	sq[Location{MaxLocationIndex, MaxLocationIndex}] = Square{Kind: SquareManaPool, Color: White}

	// Mon bases, row 0 for Black and row 10 for White, columns 3..7.
	blackBaseKinds := [5]MonKind{Mystic, Spirit, Drainer, Angel, Demon}
	whiteBaseKinds := [5]MonKind{Demon, Angel, Drainer, Spirit, Mystic}
	for k := 0; k < 5; k++ {
		col := 3 + k
		sq[Location{0, col}] = Square{Kind: SquareMonBase, Color: Black, MonKind: blackBaseKinds[k]}
		sq[Location{MaxLocationIndex, col}] = Square{Kind: SquareMonBase, Color: White, MonKind: whiteBaseKinds[k]}
	}

	// Mana bases: each starts the game with a regular mana of its color.
	for _, loc := range []Location{{3, 4}, {3, 6}, {4, 3}, {4, 5}, {4, 7}} {
		sq[loc] = Square{Kind: SquareManaBase, Color: Black}
	}
	for _, loc := range []Location{{7, 4}, {7, 6}, {6, 3}, {6, 5}, {6, 7}} {
		sq[loc] = Square{Kind: SquareManaBase, Color: White}
	}

	// Consumable bases: each starts the game with an unresolved
	// bomb-or-potion.
	sq[Location{5, 0}] = Square{Kind: SquareConsumableBase}
	sq[Location{5, MaxLocationIndex}] = Square{Kind: SquareConsumableBase}

	// Supermana base at board center.
	sq[Location{BoardCenterIndex, BoardCenterIndex}] = Square{Kind: SquareSupermanaBase}

	return sq
}

// InitialItems returns the board contents at the start of a game: one mon
// on each mon base, a regular mana of the base's color on each mana base,
// the supermana on its base, and a bomb-or-potion on each consumable base.
func InitialItems() map[Location]Item {
	items := make(map[Location]Item, 23)
	for loc, sq := range Squares() {
		switch sq.Kind {
		case SquareMonBase:
			items[loc] = ItemFromMon(Mon{Kind: sq.MonKind, Color: sq.Color})
		case SquareManaBase:
			items[loc] = ItemFromMana(NewRegularMana(sq.Color))
		case SquareSupermanaBase:
			items[loc] = ItemFromMana(NewSupermana())
		case SquareConsumableBase:
			items[loc] = ItemFromConsumable(BombOrPotion)
		}
	}
	return items
}

// MonsBases returns the home-base location of every mon kind for the
// given side.
func MonsBases(c Color) map[MonKind]Location {
	bases := make(map[MonKind]Location, 5)
	for loc, sq := range Squares() {
		if sq.Kind == SquareMonBase && sq.Color == c {
			bases[sq.MonKind] = loc
		}
	}
	return bases
}
