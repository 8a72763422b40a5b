package mons

// Location is a board cell addressed by (row, col), both in [0, BoardSize).
type Location struct {
	I, J int
}

// NewLocation builds a Location. Validity against the board bounds is the
// caller's responsibility; out-of-range locations simply never appear on
// Config.Squares().
func NewLocation(i, j int) Location { return Location{I: i, J: j} }

// InBounds reports whether the location is on the 11x11 board.
func (l Location) InBounds() bool {
	return l.I >= 0 && l.I < BoardSize && l.J >= 0 && l.J < BoardSize
}

// Less orders locations lexicographically by (I, J). It orders start
// origins; OutputFEN sorts location tokens as strings instead.
func (l Location) Less(other Location) bool {
	if l.I != other.I {
		return l.I < other.I
	}
	return l.J < other.J
}

// Distance returns the Chebyshev distance to another location.
func (l Location) Distance(to Location) int {
	return maxInt(absInt(to.I-l.I), absInt(to.J-l.J))
}

// NearbyLocations returns the in-bounds Chebyshev-1 neighbours.
func (l Location) NearbyLocations() []Location {
	return l.nearbyWithDistance(1)
}

// ReachableByBomb returns the in-bounds Chebyshev-3 neighbours.
func (l Location) ReachableByBomb() []Location {
	return l.nearbyWithDistance(3)
}

// ReachableByMysticAction returns the four (+-2,+-2) diagonal cells that
// are in bounds.
func (l Location) ReachableByMysticAction() []Location {
	deltas := [4][2]int{{-2, -2}, {2, 2}, {-2, 2}, {2, -2}}
	var out []Location
	for _, d := range deltas {
		cand := Location{I: l.I + d[0], J: l.J + d[1]}
		if cand.InBounds() {
			out = append(out, cand)
		}
	}
	return out
}

// ReachableByDemonAction returns the four (+-2,0)/(0,+-2) straight cells
// that are in bounds.
func (l Location) ReachableByDemonAction() []Location {
	deltas := [4][2]int{{-2, 0}, {2, 0}, {0, 2}, {0, -2}}
	var out []Location
	for _, d := range deltas {
		cand := Location{I: l.I + d[0], J: l.J + d[1]}
		if cand.InBounds() {
			out = append(out, cand)
		}
	}
	return out
}

// ReachableBySpiritAction returns every in-bounds cell at Chebyshev
// distance exactly 2.
func (l Location) ReachableBySpiritAction() []Location {
	var out []Location
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			if maxInt(absInt(x), absInt(y)) != 2 {
				continue
			}
			cand := Location{I: l.I + x, J: l.J + y}
			if cand.InBounds() {
				out = append(out, cand)
			}
		}
	}
	return out
}

// LocationBetween returns the midpoint cell of two Chebyshev-2-apart
// locations (used for demon/mystic/spirit action geometry).
func (l Location) LocationBetween(other Location) Location {
	return Location{I: (l.I + other.I) / 2, J: (l.J + other.J) / 2}
}

func (l Location) nearbyWithDistance(distance int) []Location {
	var out []Location
	for x := l.I - distance; x <= l.I+distance; x++ {
		for y := l.J - distance; y <= l.J+distance; y++ {
			cand := Location{I: x, J: y}
			if !cand.InBounds() {
				continue
			}
			if x == l.I && y == l.J {
				continue
			}
			out = append(out, cand)
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
