package mons

// ScoringWeights is the full additive weight table driving
// EvaluatePreferability. Every field is an independent per-term
// multiplier; search picks one of the named presets below based on
// game phase rather than tuning terms individually at search time.
type ScoringWeights struct {
	ConfirmedScore              int
	FaintedMon                  int
	FaintedDrainer              int
	DrainerAtRisk               int
	DrainerCloseToMana          int
	DrainerHoldingMana          int
	ManaCloseToSamePool         int
	MonWithManaCloseToAnyPool   int
	ExtraForSupermana           int
	ExtraForOpponentsMana       int
	MonCloseToCenter            int
	HasConsumable               int
	ActiveMon                   int

	// Refined terms. EvaluatePreferability reads only ManaCarrierAtRisk,
	// ManaCarrierGuarded and ManaCarrierOneStepFromPool (for carriers of
	// regular mana) and the DoubleConfirmedScore flag; the other refined
	// weights, the Include* flags and NextTurnWindowScaleBp are set by
	// the presets but not read by the evaluation.
	ScoreRacePathProgress         int
	OpponentScoreRacePathProgress int
	ImmediateScoreWindow          int
	OpponentImmediateScoreWindow  int
	MatchPointWindow              int
	SpiritActionUtility           int
	DrainerImmediateThreat        int
	DrainerBestManaPath           int
	ManaCarrierAtRisk             int
	ManaCarrierGuarded            int
	ManaCarrierOneStepFromPool    int
	ImmediateWinningCarrier       int

	IncludeRegularManaMoveWindows bool
	IncludeMatchPointWindow       bool
	DoubleConfirmedScore          bool

	NextTurnWindowScaleBp int
}

// baseWeights mirrors the scoring.rs Multiplier table exactly.
var baseWeights = ScoringWeights{
	ConfirmedScore:            1000,
	FaintedMon:                -500,
	FaintedDrainer:            -800,
	DrainerAtRisk:             -350,
	DrainerCloseToMana:        300,
	DrainerHoldingMana:        350,
	ManaCloseToSamePool:       500,
	MonWithManaCloseToAnyPool: 800,
	ExtraForSupermana:         120,
	ExtraForOpponentsMana:     100,
	MonCloseToCenter:          210,
	HasConsumable:             110,
	ActiveMon:                 50,
	DoubleConfirmedScore:      true,
	NextTurnWindowScaleBp:     10000,
}

func withBase(adjust func(w *ScoringWeights)) ScoringWeights {
	w := baseWeights
	adjust(&w)
	return w
}

// Named presets. "fast" is used at shallow search depth, where a cheap
// and slightly more aggressive heuristic outperforms a costlier one;
// the "normal_*" variants trade off balance against tactical sharpness
// and, in the endgame, against urgency to close the game out.
var (
	FastWeights = withBase(func(w *ScoringWeights) {
		w.DrainerAtRisk = -300
	})

	NormalBalancedWeights = baseWeights

	NormalTacticalWeights = withBase(func(w *ScoringWeights) {
		w.DrainerAtRisk = -450
		w.DrainerImmediateThreat = -250
		w.IncludeRegularManaMoveWindows = true
	})

	NormalTacticalAggressiveWeights = withBase(func(w *ScoringWeights) {
		w.DrainerAtRisk = -550
		w.DrainerImmediateThreat = -350
		w.ImmediateScoreWindow = 400
		w.OpponentImmediateScoreWindow = -400
		w.IncludeRegularManaMoveWindows = true
	})

	NormalFinisherWeights = withBase(func(w *ScoringWeights) {
		w.ScoreRacePathProgress = 300
		w.OpponentScoreRacePathProgress = -300
		w.MatchPointWindow = 600
		w.IncludeMatchPointWindow = true
	})

	NormalFinisherAggressiveWeights = withBase(func(w *ScoringWeights) {
		w.ScoreRacePathProgress = 450
		w.OpponentScoreRacePathProgress = -450
		w.MatchPointWindow = 900
		w.IncludeMatchPointWindow = true
		w.ImmediateWinningCarrier = 700
		w.DrainerAtRisk = -500
	})
)

// SelectWeights picks a preset from the side's and the opponent's
// distance-to-win (in mana points still needed), the score gap (my
// score minus opponent score) and the configured search depth.
func SelectWeights(myDistanceToWin, opponentDistanceToWin, scoreGap, searchDepth int) ScoringWeights {
	if searchDepth < 3 {
		return FastWeights
	}
	switch myDistanceToWin {
	case 1:
		return NormalFinisherAggressiveWeights
	case 2:
		return NormalFinisherWeights
	}
	if opponentDistanceToWin <= 1 {
		return NormalTacticalAggressiveWeights
	}
	if scoreGap < 0 {
		return NormalTacticalWeights
	}
	return NormalBalancedWeights
}

// EvaluatePreferability scores the board from color's perspective: a
// positive result favors color, negative favors the opponent.
func EvaluatePreferability(g *MonsGame, color Color, w ScoringWeights) int {
	var score int
	if color == White {
		score = (g.WhiteScore-g.BlackScore)*w.ConfirmedScore +
			(g.WhitePotionsCount-g.BlackPotionsCount)*w.HasConsumable
	} else {
		score = (g.BlackScore-g.WhiteScore)*w.ConfirmedScore +
			(g.BlackPotionsCount-g.WhitePotionsCount)*w.HasConsumable
	}
	if w.DoubleConfirmedScore {
		score *= w.ConfirmedScore
	}

	bases := allMonsBaseLocations()

	for loc, it := range g.Board.Items {
		switch it.Kind {
		case ItemMon:
			mon := it.Mon
			mult := 1
			if mon.Color != color {
				mult = -1
			}
			if mon.IsFainted() {
				if mon.Kind == Drainer {
					score += mult * w.FaintedDrainer
				} else {
					score += mult * w.FaintedMon
				}
			} else if mon.Kind == Drainer {
				danger, minMana, angelNearby := drainerDistances(g.Board, mon.Color, loc)
				score += mult * w.DrainerCloseToMana / minMana
				if !angelNearby {
					score += mult * w.DrainerAtRisk / danger
				}
			} else if mon.Kind != Angel {
				score += mult * w.MonCloseToCenter / distanceToCenter(loc)
			}
			if !bases[loc] {
				score += mult * w.ActiveMon
			}

		case ItemMonWithConsumable:
			mon := it.Mon
			mult := 1
			if mon.Color != color {
				mult = -1
			}
			score += mult * w.HasConsumable
			if mon.Kind == Drainer {
				danger, minMana, angelNearby := drainerDistances(g.Board, mon.Color, loc)
				score += mult * w.DrainerCloseToMana / minMana
				if !angelNearby {
					score += mult * w.DrainerAtRisk / danger
				}
			} else if mon.Kind != Angel {
				score += mult * w.MonCloseToCenter / distanceToCenter(loc)
			}

		case ItemMana:
			score += w.ManaCloseToSamePool / distanceToClosestPool(loc, color)

		case ItemMonWithMana:
			mon := it.Mon
			mult := 1
			if mon.Color != color {
				mult = -1
			}
			manaExtra := 0
			if it.Mana.Kind == Supermana {
				manaExtra = w.ExtraForSupermana
			} else if it.Mana.Color != color {
				manaExtra = w.ExtraForOpponentsMana
			}
			score += mult * w.DrainerHoldingMana
			score += mult * (w.MonWithManaCloseToAnyPool + manaExtra) / distanceToAnyPool(loc)
			if it.Mana.Kind != Supermana {
				if manaCarrierAtRisk(g.Board, mon.Color, loc) {
					score += mult * w.ManaCarrierAtRisk
				} else {
					score += mult * w.ManaCarrierGuarded
				}
				if distanceToClosestPool(loc, mon.Color) == 1 {
					score += mult * w.ManaCarrierOneStepFromPool
				}
			}

		case ItemConsumable:
			// No positional contribution; consumables on the board are
			// not yet owned by either side.
		}
	}

	return score
}

// EvaluateForSearch scores g from color's perspective using the preset
// SelectWeights picks for the matchup's current score gap and the
// search's configured depth. searchDepth is the total configured depth,
// not the remaining ply count, so the same preset applies uniformly
// across one search call.
func EvaluateForSearch(g *MonsGame, color Color, searchDepth int) int {
	myScore, oppScore := g.WhiteScore, g.BlackScore
	if color == Black {
		myScore, oppScore = g.BlackScore, g.WhiteScore
	}
	myDistanceToWin := TargetScore - myScore
	opponentDistanceToWin := TargetScore - oppScore
	weights := SelectWeights(myDistanceToWin, opponentDistanceToWin, myScore-oppScore, searchDepth)
	return EvaluatePreferability(g, color, weights)
}

func allMonsBaseLocations() map[Location]bool {
	set := make(map[Location]bool, 10)
	for loc, sq := range Squares() {
		if sq.Kind == SquareMonBase {
			set[loc] = true
		}
	}
	return set
}

// drainerDistances returns (nearest-threat-distance, nearest-mana-distance,
// angel-nearby) for a drainer of the given color sitting at loc.
func drainerDistances(b Board, color Color, loc Location) (int, int, bool) {
	minMana := BoardSize
	minDanger := BoardSize
	angelNearby := false

	for itemLoc, it := range b.Items {
		switch it.Kind {
		case ItemMana:
			if d := itemLoc.Distance(loc); d < minMana {
				minMana = d
			}
		case ItemMon, ItemMonWithConsumable:
			mon := it.Mon
			if mon.Color != color && !mon.IsFainted() && (mon.Kind == Mystic || mon.Kind == Demon || it.Kind == ItemMonWithConsumable) {
				if d := itemLoc.Distance(loc); d < minDanger {
					minDanger = d
				}
			} else if mon.Color == color && !mon.IsFainted() && mon.Kind == Angel && itemLoc.Distance(loc) == 1 {
				angelNearby = true
			}
		case ItemConsumable:
			if d := itemLoc.Distance(loc); d < minDanger {
				minDanger = d
			}
		}
	}

	return minDanger, minMana, angelNearby
}

// manaCarrierAtRisk reports whether any non-fainted enemy mystic, demon,
// or consumable-carrying mon threatens the mana carrier's square.
func manaCarrierAtRisk(b Board, color Color, loc Location) bool {
	for itemLoc, it := range b.Items {
		mon, ok := it.HasMon()
		if !ok || mon.Color == color || mon.IsFainted() {
			continue
		}
		if mon.Kind != Mystic && mon.Kind != Demon && it.Kind != ItemMonWithConsumable {
			continue
		}
		if itemLoc.Distance(loc) <= 2 {
			return true
		}
	}
	return false
}

func distanceToCenter(loc Location) int {
	return absInt(BoardCenterIndex-loc.I) + 1
}

func distanceToAnyPool(loc Location) int {
	maxIndex := MaxLocationIndex
	d := maxInt(
		minInt(loc.I, absInt(maxIndex-loc.I)),
		minInt(loc.J, absInt(maxIndex-loc.J)),
	)
	return d + 1
}

func distanceToClosestPool(loc Location, color Color) int {
	poolRow := 0
	if color == White {
		poolRow = MaxLocationIndex
	}
	d := maxInt(
		absInt(poolRow-loc.I),
		minInt(loc.J, absInt(MaxLocationIndex-loc.J)),
	)
	return d + 1
}
