package mons

// Board holds the mutable contents of every occupied board cell. Squares
// (the fixed per-coordinate roles) live separately in Config/Squares.
type Board struct {
	Items map[Location]Item
}

// NewBoard returns a board set up with the initial items (see InitialItems).
func NewBoard() Board {
	return Board{Items: InitialItems()}
}

// NewBoardWithItems wraps an existing item map, taking ownership of it.
func NewBoardWithItems(items map[Location]Item) Board {
	return Board{Items: items}
}

// RemoveItem clears whatever occupies a cell.
func (b *Board) RemoveItem(loc Location) {
	delete(b.Items, loc)
}

// Put places an item at a cell, overwriting whatever was there.
func (b *Board) Put(item Item, loc Location) {
	b.Items[loc] = item
}

// Item returns the item at a cell, if any.
func (b *Board) Item(loc Location) (Item, bool) {
	it, ok := b.Items[loc]
	return it, ok
}

// Square returns the fixed role of a cell, defaulting to SquareRegular.
func (b *Board) Square(loc Location) Square {
	if sq, ok := Squares()[loc]; ok {
		return sq
	}
	return Square{Kind: SquareRegular}
}

// AllMonsBases returns every mon base location on the board.
func (b *Board) AllMonsBases() []Location {
	var out []Location
	for loc, sq := range Squares() {
		if sq.Kind == SquareMonBase {
			out = append(out, loc)
		}
	}
	return out
}

// SupermanaBase returns the single supermana base location.
func (b *Board) SupermanaBase() Location {
	for loc, sq := range Squares() {
		if sq.Kind == SquareSupermanaBase {
			return loc
		}
	}
	panic("mons: board has no supermana base")
}

// AllMonsLocations returns the locations of every mon of the given color.
func (b *Board) AllMonsLocations(c Color) []Location {
	var out []Location
	for loc, it := range b.Items {
		if mon, ok := it.HasMon(); ok && mon.Color == c {
			out = append(out, loc)
		}
	}
	return out
}

// AllFreeRegularManaLocations returns the locations of unattached regular
// mana of the given color (Item.Kind == ItemMana, not carried by a mon).
func (b *Board) AllFreeRegularManaLocations(c Color) []Location {
	var out []Location
	for loc, it := range b.Items {
		if it.Kind != ItemMana {
			continue
		}
		if it.Mana.Kind == RegularMana && it.Mana.Color == c {
			out = append(out, loc)
		}
	}
	return out
}

// Base returns the home base location for the given mon's kind and color.
func (b *Board) Base(mon Mon) Location {
	for loc, sq := range Squares() {
		if sq.Kind == SquareMonBase && sq.MonKind == mon.Kind && sq.Color == mon.Color {
			return loc
		}
	}
	panic("mons: no base for given mon")
}

// FaintedMonsLocations returns the locations of every fainted mon of the
// given color.
func (b *Board) FaintedMonsLocations(c Color) []Location {
	var out []Location
	for loc, it := range b.Items {
		if mon, ok := it.HasMon(); ok && mon.Color == c && mon.IsFainted() {
			out = append(out, loc)
		}
	}
	return out
}

// FindMana returns the location of any unattached regular mana of the
// given color, if one exists.
func (b *Board) FindMana(c Color) (Location, bool) {
	for loc, it := range b.Items {
		if it.Kind != ItemMana {
			continue
		}
		if it.Mana.Kind == RegularMana && it.Mana.Color == c {
			return loc, true
		}
	}
	return Location{}, false
}

// FindAwakeAngel returns the location of an awake (non-fainted) angel of
// the given color, if one exists.
func (b *Board) FindAwakeAngel(c Color) (Location, bool) {
	for loc, it := range b.Items {
		mon, ok := it.HasMon()
		if !ok || mon.Color != c || mon.Kind != Angel || mon.IsFainted() {
			continue
		}
		return loc, true
	}
	return Location{}, false
}
