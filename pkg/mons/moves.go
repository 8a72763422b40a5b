package mons

// ProcessInput is the engine's single entry point: it classifies a
// (possibly empty) input chain and returns one of the four Output
// shapes. When the chain fully resolves a move, the resulting events
// are applied to g (unless doNotApplyEvents is set) before they are
// returned. oneOptionEnough short-circuits enumeration to the first
// legal option, which search uses for cheap legality probing.
func (g *MonsGame) ProcessInput(inputs []Input, doNotApplyEvents bool, oneOptionEnough bool) Output {
	if len(inputs) > 0 && inputs[0].Kind == InputTakeback {
		if !g.canTakeback() {
			return InvalidInputOutput()
		}
		if !doNotApplyEvents {
			g.restoreTakeback()
		}
		return EventsOutput([]Event{TakebackEvent()})
	}

	if len(inputs) == 0 {
		return g.locationsToStartFrom(oneOptionEnough)
	}

	origin, ok := inputs[0].AsLocation()
	if !ok {
		return InvalidInputOutput()
	}
	if !g.isLegalOrigin(origin) {
		return InvalidInputOutput()
	}
	item, ok := g.Board.Item(origin)
	if !ok {
		return InvalidInputOutput()
	}

	options := g.secondInputOptions(origin, item, false)
	if len(options) == 0 {
		return InvalidInputOutput()
	}

	if len(inputs) == 1 {
		if oneOptionEnough {
			return NextInputOptionsOutput(options[:1])
		}
		return NextInputOptionsOutput(options)
	}

	chosen, ok := matchNextInput(options, inputs[1])
	if !ok {
		return InvalidInputOutput()
	}

	events, nextOptions := g.resolve(chosen, origin, item, inputs[2:])
	if events == nil && nextOptions == nil {
		return InvalidInputOutput()
	}
	if nextOptions != nil {
		if oneOptionEnough {
			return NextInputOptionsOutput(nextOptions[:1])
		}
		return NextInputOptionsOutput(nextOptions)
	}

	if doNotApplyEvents {
		probe := g.Clone()
		probe.saveTakebackSnapshot()
		resolved := probe.ApplyAndAddResultingEvents(events)
		return EventsOutput(resolved)
	}

	g.saveTakebackSnapshot()
	resolved := g.ApplyAndAddResultingEvents(events)
	return EventsOutput(resolved)
}

func matchNextInput(options []NextInput, in Input) (NextInput, bool) {
	for _, opt := range options {
		if sameInput(opt.Input, in) {
			return opt, true
		}
	}
	return NextInput{}, false
}

func sameInput(a, b Input) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case InputLocation:
		return a.Location == b.Location
	case InputModifier:
		return a.Modifier == b.Modifier
	default:
		return true
	}
}

// isLegalOrigin reports whether loc is among the legal starting points
// for the side to move, by computing every start origin and searching it.
func (g *MonsGame) isLegalOrigin(loc Location) bool {
	for _, candidate := range g.startOrigins() {
		if candidate == loc {
			return true
		}
	}
	return false
}

// locationsToStartFrom implements stage 1 of the protocol.
func (g *MonsGame) locationsToStartFrom(oneOptionEnough bool) Output {
	origins := g.startOrigins()
	if len(origins) == 0 {
		return InvalidInputOutput()
	}
	if oneOptionEnough {
		return LocationsToStartFromOutput(origins[:1])
	}
	return LocationsToStartFromOutput(origins)
}

// startOrigins computes every legal origin location, deduplicated, in a
// deterministic order.
func (g *MonsGame) startOrigins() []Location {
	seen := make(map[Location]bool)
	var out []Location
	add := func(loc Location) {
		if !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}

	if g.PlayerCanMoveMon() {
		for _, loc := range g.Board.AllMonsLocations(g.ActiveColor) {
			it, ok := g.Board.Item(loc)
			if !ok {
				continue
			}
			mon, ok := it.HasMon()
			if !ok || mon.IsFainted() {
				continue
			}
			if len(g.monMoveDestinations(loc, mon, it)) > 0 {
				add(loc)
			}
		}
	}

	if g.PlayerCanMoveMana() {
		for _, loc := range g.Board.AllFreeRegularManaLocations(g.ActiveColor) {
			if g.hasAdjacentFriendlyMon(loc) {
				add(loc)
			}
		}
		for _, loc := range g.Board.AllFreeRegularManaLocations(g.ActiveColor.Other()) {
			if g.hasAdjacentFriendlyMon(loc) {
				add(loc)
			}
		}
	}

	if g.PlayerCanUseAction() {
		for _, loc := range g.Board.AllMonsLocations(g.ActiveColor) {
			it, ok := g.Board.Item(loc)
			if !ok {
				continue
			}
			mon, ok := it.HasMon()
			if !ok || mon.IsFainted() {
				continue
			}
			if len(g.actionTargets(loc, mon, it)) > 0 {
				add(loc)
			}
		}
	}

	sortLocations(out)
	return out
}

func (g *MonsGame) hasAdjacentFriendlyMon(loc Location) bool {
	for _, nb := range loc.NearbyLocations() {
		it, ok := g.Board.Item(nb)
		if !ok {
			continue
		}
		mon, ok := it.HasMon()
		if ok && mon.Color == g.ActiveColor && !mon.IsFainted() {
			return true
		}
	}
	return false
}

// monMoveDestinations returns the plain-move (non-action) destinations
// for a mon at loc, honoring occupancy and pickup/scoring rules.
func (g *MonsGame) monMoveDestinations(loc Location, mon Mon, it Item) []Location {
	var out []Location
	for _, dest := range loc.NearbyLocations() {
		destItem, occupied := g.Board.Item(dest)
		if occupied {
			if destMon, ok := destItem.HasMon(); ok {
				_ = destMon
				continue // plain move never lands on any occupied-by-mon cell
			}
			if destItem.Kind == ItemMana && destItem.Mana.Kind == Supermana {
				if _, carriesMana := it.HasMana(); carriesMana {
					continue // carrying mana onto an occupied supermana base is illegal
				}
			}
		}
		if mona, carriesMana := it.HasMana(); carriesMana {
			sq := g.Board.Square(dest)
			if sq.Kind == SquareManaPool {
				_ = mona
				out = append(out, dest)
				continue
			}
		}
		out = append(out, dest)
	}
	return out
}

// actionTargets returns the destination/target locations for whatever
// special action the mon at loc is eligible to perform this turn.
func (g *MonsGame) actionTargets(loc Location, mon Mon, it Item) []Location {
	if c, ok := it.HasConsumable(); ok && c == Bomb {
		return loc.ReachableByBomb()
	}
	protected := g.ProtectedByOpponentsAngel()
	switch mon.Kind {
	case Mystic:
		var out []Location
		for _, dest := range loc.ReachableByMysticAction() {
			destItem, ok := g.Board.Item(dest)
			if !ok {
				continue
			}
			destMon, ok := destItem.HasMon()
			if !ok || destMon.Color == g.ActiveColor {
				continue
			}
			if protected[dest] {
				continue
			}
			out = append(out, dest)
		}
		return out
	case Demon:
		var out []Location
		for _, dest := range loc.ReachableByDemonAction() {
			destItem, ok := g.Board.Item(dest)
			if !ok {
				continue
			}
			destMon, ok := destItem.HasMon()
			if !ok || destMon.Color == g.ActiveColor {
				continue
			}
			out = append(out, dest)
		}
		return out
	case Spirit:
		var out []Location
		for _, dest := range loc.ReachableBySpiritAction() {
			if _, ok := g.Board.Item(dest); ok {
				out = append(out, dest)
			}
		}
		return out
	default:
		return nil
	}
}

// secondInputOptions implements stage 2: given a chosen origin, the set
// of legal next inputs across every move/action kind available there.
func (g *MonsGame) secondInputOptions(origin Location, item Item, oneOptionEnough bool) []NextInput {
	var out []NextInput

	if mona, ok := item.HasMana(); ok && mona.Kind == RegularMana && item.Kind == ItemMana {
		if g.PlayerCanMoveMana() && g.hasAdjacentFriendlyMon(origin) {
			for _, dest := range origin.NearbyLocations() {
				if _, occupied := g.Board.Item(dest); !occupied {
					out = append(out, NewNextInput(InputFromLocation(dest), NextInputManaMove))
				}
			}
		}
		return dedupNextInputs(out)
	}

	mon, ok := item.HasMon()
	if !ok || mon.Color != g.ActiveColor || mon.IsFainted() {
		return nil
	}

	if g.PlayerCanMoveMon() {
		for _, dest := range g.monMoveDestinations(origin, mon, item) {
			out = append(out, NewNextInputWithActor(InputFromLocation(dest), NextInputMonMove, item))
		}
	}

	if g.PlayerCanUseAction() {
		if c, hasC := item.HasConsumable(); hasC && c == Bomb {
			for _, dest := range origin.ReachableByBomb() {
				out = append(out, NewNextInputWithActor(InputFromLocation(dest), NextInputBombAttack, item))
			}
		} else {
			switch mon.Kind {
			case Mystic:
				for _, dest := range g.actionTargets(origin, mon, item) {
					out = append(out, NewNextInputWithActor(InputFromLocation(dest), NextInputMysticAction, item))
				}
			case Demon:
				for _, dest := range g.actionTargets(origin, mon, item) {
					out = append(out, NewNextInputWithActor(InputFromLocation(dest), NextInputDemonAction, item))
				}
			case Spirit:
				for _, dest := range g.actionTargets(origin, mon, item) {
					out = append(out, NewNextInputWithActor(InputFromLocation(dest), NextInputSpiritTargetCapture, item))
				}
			}
		}
	}

	return dedupNextInputs(out)
}

func dedupNextInputs(in []NextInput) []NextInput {
	seen := make(map[string]bool)
	var out []NextInput
	for _, ni := range in {
		key := InputFEN(ni.Input) + "|" + nextInputKindFEN[ni.Kind]
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ni)
	}
	return out
}

// resolve implements stage 3: given the chosen second input, either
// produce the final event list, or (for moves needing a third input)
// the further NextInputOptions. rest holds any inputs beyond the second.
func (g *MonsGame) resolve(chosen NextInput, origin Location, originItem Item, rest []Input) ([]Event, []NextInput) {
	target, _ := chosen.Input.AsLocation()

	switch chosen.Kind {
	case NextInputManaMove:
		mana, _ := originItem.HasMana()
		return []Event{ManaMoveEvent(mana, origin, target)}, nil

	case NextInputMonMove:
		return g.resolveMonMove(origin, target, originItem, rest)

	case NextInputMysticAction:
		mon, _ := originItem.HasMon()
		events := []Event{MysticActionEvent(mon, origin, target)}
		if targetItem, ok := g.Board.Item(target); ok {
			if targetMon, ok := targetItem.HasMon(); ok {
				faintedAt := g.Board.Base(targetMon)
				if _, busy := g.Board.Item(faintedAt); busy {
					faintedAt = target
				}
				events = append(events, MonFaintedEvent(targetMon, target, faintedAt))
			}
		}
		return events, nil

	case NextInputDemonAction:
		return g.resolveDemonAction(origin, target, originItem, rest)

	case NextInputBombAttack:
		mon, _ := originItem.HasMon()
		return []Event{
			BombAttackEvent(mon, origin, target),
			BombExplosionEvent(target),
		}, nil

	case NextInputSpiritTargetCapture:
		return g.resolveSpiritTarget(origin, target, originItem, rest)

	default:
		return nil, nil
	}
}

func (g *MonsGame) resolveMonMove(origin, target Location, originItem Item, rest []Input) ([]Event, []NextInput) {
	mon, _ := originItem.HasMon()
	destItem, occupied := g.Board.Item(target)

	if carried, carriesMana := originItem.HasMana(); carriesMana && !occupied {
		sq := g.Board.Square(target)
		if sq.Kind == SquareManaPool && sq.Color == mon.Color {
			return []Event{
				MonMoveEvent(ItemFromMon(mon), origin, target),
				ManaScoredEvent(carried, target),
			}, nil
		}
	}

	if !occupied {
		return []Event{MonMoveEvent(originItem, origin, target)}, nil
	}

	if mana, ok := destItem.HasMana(); ok && destItem.Kind == ItemMana {
		if carried, carriesMana := originItem.HasMana(); carriesMana {
			sq := g.Board.Square(target)
			if sq.Kind == SquareManaPool && sq.Color == mon.Color {
				return []Event{
					MonMoveEvent(ItemFromMon(mon), origin, target),
					ManaScoredEvent(carried, target),
				}, nil
			}
			return nil, nil
		}
		return []Event{
			MonMoveEvent(ItemFromMonWithMana(mon, mana), origin, target),
			PickupManaEvent(mana, mon, target),
		}, nil
	}

	if c, ok := destItem.HasConsumable(); ok && destItem.Kind == ItemConsumable {
		switch mon.Kind {
		case Drainer, Angel, Spirit:
			return []Event{
				MonMoveEvent(ItemFromMonWithConsumable(mon, Potion), origin, target),
				PickupPotionEvent(ItemFromMonWithConsumable(mon, Potion), target),
			}, nil
		default:
			if c == BombOrPotion {
				if len(rest) == 0 {
					return nil, []NextInput{
						NewNextInputWithActor(InputFromModifier(SelectPotion), NextInputSelectConsumable, originItem),
						NewNextInputWithActor(InputFromModifier(SelectBomb), NextInputSelectConsumable, originItem),
					}
				}
				choice, ok := rest[0].AsModifier()
				if !ok {
					return nil, nil
				}
				switch choice {
				case SelectBomb:
					return []Event{
						MonMoveEvent(ItemFromMonWithConsumable(mon, Bomb), origin, target),
						PickupBombEvent(mon, target),
					}, nil
				case SelectPotion:
					return []Event{
						MonMoveEvent(ItemFromMonWithConsumable(mon, Potion), origin, target),
						PickupPotionEvent(ItemFromMonWithConsumable(mon, Potion), target),
					}, nil
				default:
					return nil, nil
				}
			}
			if c == Bomb {
				return []Event{
					MonMoveEvent(ItemFromMonWithConsumable(mon, Bomb), origin, target),
					PickupBombEvent(mon, target),
				}, nil
			}
			return []Event{
				MonMoveEvent(ItemFromMonWithConsumable(mon, Potion), origin, target),
				PickupPotionEvent(ItemFromMonWithConsumable(mon, Potion), target),
			}, nil
		}
	}

	return nil, nil
}

func (g *MonsGame) resolveDemonAction(origin, target Location, originItem Item, rest []Input) ([]Event, []NextInput) {
	mon, _ := originItem.HasMon()
	base := []Event{DemonActionEvent(mon, origin, target)}

	forward := extendLine(origin, target)
	canStep := forward.InBounds()
	if canStep {
		if _, occupied := g.Board.Item(forward); occupied {
			canStep = false
		}
	}
	if !canStep {
		return base, nil
	}

	stepOption := NewNextInputWithActor(InputFromLocation(forward), NextInputDemonAdditionalStep, originItem)
	if len(rest) == 0 {
		return nil, []NextInput{stepOption, NewNextInputWithActor(InputFromModifier(Cancel), NextInputDemonAdditionalStep, originItem)}
	}

	if in, ok := rest[0].AsModifier(); ok && in == Cancel {
		return base, nil
	}
	if loc, ok := rest[0].AsLocation(); ok && loc == forward {
		return append(base, DemonAdditionalStepEvent(mon, target, forward)), nil
	}
	return nil, nil
}

// extendLine returns the cell one further step past `to`, continuing the
// direction from `from` to `to` (used for the demon's additional step).
func extendLine(from, to Location) Location {
	di := sign(to.I - from.I)
	dj := sign(to.J - from.J)
	return Location{I: to.I + di, J: to.J + dj}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func (g *MonsGame) resolveSpiritTarget(origin, target Location, originItem Item, rest []Input) ([]Event, []NextInput) {
	targetItem, occupied := g.Board.Item(target)
	if !occupied {
		return nil, nil
	}

	if len(rest) == 0 {
		var throwOptions []NextInput
		for _, dest := range target.ReachableBySpiritAction() {
			if _, destOccupied := g.Board.Item(dest); !destOccupied {
				throwOptions = append(throwOptions, NewNextInputWithActor(InputFromLocation(dest), NextInputSpiritTargetMove, originItem))
			}
		}
		if len(throwOptions) == 0 {
			return []Event{SpiritTargetMoveEvent(targetItem, target, origin)}, nil
		}
		return nil, append([]NextInput{NewNextInputWithActor(InputFromModifier(Cancel), NextInputSpiritTargetMove, originItem)}, throwOptions...)
	}

	if m, ok := rest[0].AsModifier(); ok && m == Cancel {
		return []Event{SpiritTargetMoveEvent(targetItem, target, origin)}, nil
	}
	throwTo, ok := rest[0].AsLocation()
	if !ok {
		return nil, nil
	}
	return []Event{SpiritTargetMoveEvent(targetItem, target, throwTo)}, nil
}

// sortLocations orders in place by Location.Less; board-scale slices are
// tiny (<=64 entries), so a plain insertion sort is plenty fast.
func sortLocations(locs []Location) {
	for i := 1; i < len(locs); i++ {
		key := locs[i]
		j := i - 1
		for j >= 0 && key.Less(locs[j]) {
			locs[j+1] = locs[j]
			j--
		}
		locs[j+1] = key
	}
}
