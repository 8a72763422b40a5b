package mons

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeFEN serializes the full state needed to resume a game: scores,
// active color, per-turn counters, potion counts, turn number, and the
// board, as nine space-separated fields followed by the board field.
func EncodeFEN(g *MonsGame) string {
	fields := []string{
		strconv.Itoa(g.WhiteScore),
		strconv.Itoa(g.BlackScore),
		colorFEN(g.ActiveColor),
		strconv.Itoa(g.ActionsUsedCount),
		strconv.Itoa(g.ManaMovesCount),
		strconv.Itoa(g.MonsMovesCount),
		strconv.Itoa(g.WhitePotionsCount),
		strconv.Itoa(g.BlackPotionsCount),
		strconv.Itoa(g.TurnNumber),
		boardFEN(g.Board),
	}
	return strings.Join(fields, " ")
}

// DecodeFEN parses a string produced by EncodeFEN back into a game state.
func DecodeFEN(fen string) (*MonsGame, error) {
	fields := strings.Fields(fen)
	if len(fields) != 10 {
		return nil, fmt.Errorf("mons: fen expects 10 fields, got %d", len(fields))
	}

	whiteScore, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("mons: fen white score: %w", err)
	}
	blackScore, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("mons: fen black score: %w", err)
	}
	active, ok := colorFromFEN(fields[2])
	if !ok {
		return nil, fmt.Errorf("mons: fen invalid active color %q", fields[2])
	}
	actionsUsed, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("mons: fen actions used: %w", err)
	}
	manaMoves, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("mons: fen mana moves: %w", err)
	}
	monsMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("mons: fen mons moves: %w", err)
	}
	whitePotions, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("mons: fen white potions: %w", err)
	}
	blackPotions, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, fmt.Errorf("mons: fen black potions: %w", err)
	}
	turnNumber, err := strconv.Atoi(fields[8])
	if err != nil {
		return nil, fmt.Errorf("mons: fen turn number: %w", err)
	}
	board, err := boardFromFEN(fields[9])
	if err != nil {
		return nil, err
	}

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
	}, nil
}

// boardFEN encodes a board as BoardSize rows joined by '/', each row a
// run-length-encoded sequence of 3-character item tokens and "nNN" gaps.
func boardFEN(b Board) string {
	var lines []string
	for i := 0; i < BoardSize; i++ {
		var line strings.Builder
		empty := 0
		for j := 0; j < BoardSize; j++ {
			it, ok := b.Item(Location{I: i, J: j})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&line, "n%02d", empty)
				empty = 0
			}
			line.WriteString(itemFEN(it))
		}
		if empty > 0 {
			fmt.Fprintf(&line, "n%02d", empty)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "/")
}

func boardFromFEN(fen string) (Board, error) {
	lines := strings.Split(fen, "/")
	if len(lines) != BoardSize {
		return Board{}, fmt.Errorf("mons: fen board expects %d rows, got %d", BoardSize, len(lines))
	}
	items := make(map[Location]Item)
	for i, line := range lines {
		j := 0
		for pos := 0; pos < len(line); {
			if line[pos] == 'n' {
				if pos+3 > len(line) {
					return Board{}, fmt.Errorf("mons: fen board row %d: truncated gap token", i)
				}
				n, err := strconv.Atoi(line[pos+1 : pos+3])
				if err != nil {
					return Board{}, fmt.Errorf("mons: fen board row %d: invalid gap: %w", i, err)
				}
				j += n
				pos += 3
				continue
			}
			if pos+3 > len(line) {
				return Board{}, fmt.Errorf("mons: fen board row %d: truncated item token", i)
			}
			it, ok := itemFromFEN(line[pos : pos+3])
			if !ok {
				return Board{}, fmt.Errorf("mons: fen board row %d: invalid item token %q", i, line[pos:pos+3])
			}
			items[Location{I: i, J: j}] = it
			j++
			pos += 3
		}
	}
	return NewBoardWithItems(items), nil
}

// itemFEN encodes an item as a fixed 3-byte token: two mon-or-"xx" bytes
// followed by one mana/consumable byte (or 'x' when neither applies).
func itemFEN(it Item) string {
	switch it.Kind {
	case ItemMon:
		return monFEN(it.Mon) + "x"
	case ItemMana:
		return "xx" + manaFEN(it.Mana)
	case ItemMonWithMana:
		return monFEN(it.Mon) + manaFEN(it.Mana)
	case ItemMonWithConsumable:
		return monFEN(it.Mon) + consumableFEN(it.Consumable)
	case ItemConsumable:
		return "xx" + consumableFEN(it.Consumable)
	default:
		return "xxx"
	}
}

func itemFromFEN(fen string) (Item, bool) {
	if len(fen) != 3 {
		return Item{}, false
	}
	monPart, tailPart := fen[0:2], fen[2:]
	if monPart == "xx" {
		if mana, ok := manaFromFEN(tailPart); ok {
			return ItemFromMana(mana), true
		}
		if c, ok := consumableFromFEN(tailPart); ok {
			return ItemFromConsumable(c), true
		}
		return Item{}, false
	}
	mon, ok := monFromFEN(monPart)
	if !ok {
		return Item{}, false
	}
	if mana, ok := manaFromFEN(tailPart); ok {
		return ItemFromMonWithMana(mon, mana), true
	}
	if c, ok := consumableFromFEN(tailPart); ok {
		return ItemFromMonWithConsumable(mon, c), true
	}
	return ItemFromMon(mon), true
}

var monKindFENChar = map[MonKind]byte{
	Demon:   'e',
	Drainer: 'd',
	Angel:   'a',
	Spirit:  's',
	Mystic:  'y',
}

var fenCharMonKind = map[byte]MonKind{
	'e': Demon,
	'd': Drainer,
	'a': Angel,
	's': Spirit,
	'y': Mystic,
}

// monFEN encodes kind+color as one letter (uppercase for White) and the
// cooldown (mod 10) as a single trailing digit.
func monFEN(m Mon) string {
	ch := monKindFENChar[m.Kind]
	if m.Color == White {
		ch = ch - 'a' + 'A'
	}
	return fmt.Sprintf("%c%d", ch, m.Cooldown%10)
}

func monFromFEN(fen string) (Mon, bool) {
	if len(fen) != 2 {
		return Mon{}, false
	}
	ch := fen[0]
	lower := ch
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		lower = ch - 'A' + 'a'
	}
	kind, ok := fenCharMonKind[lower]
	if !ok {
		return Mon{}, false
	}
	cooldown := int(fen[1] - '0')
	if cooldown < 0 || cooldown > 9 {
		return Mon{}, false
	}
	return Mon{Kind: kind, Color: color, Cooldown: cooldown}, true
}

func manaFEN(m Mana) string {
	switch {
	case m.Kind == Supermana:
		return "U"
	case m.Color == White:
		return "M"
	default:
		return "m"
	}
}

func manaFromFEN(fen string) (Mana, bool) {
	switch fen {
	case "U":
		return NewSupermana(), true
	case "M":
		return NewRegularMana(White), true
	case "m":
		return NewRegularMana(Black), true
	default:
		return Mana{}, false
	}
}

func consumableFEN(c Consumable) string {
	switch c {
	case Potion:
		return "P"
	case Bomb:
		return "B"
	case BombOrPotion:
		return "Q"
	default:
		return "x"
	}
}

func consumableFromFEN(fen string) (Consumable, bool) {
	switch fen {
	case "P":
		return Potion, true
	case "B":
		return Bomb, true
	case "Q":
		return BombOrPotion, true
	default:
		return Consumable(0), false
	}
}

func colorFEN(c Color) string {
	if c == White {
		return "w"
	}
	return "b"
}

func colorFromFEN(fen string) (Color, bool) {
	switch fen {
	case "w":
		return White, true
	case "b":
		return Black, true
	default:
		return Color(0), false
	}
}

func locationFEN(l Location) string {
	return fmt.Sprintf("%d,%d", l.I, l.J)
}

func locationFromFEN(fen string) (Location, bool) {
	i, j, ok := strings.Cut(fen, ",")
	if !ok {
		return Location{}, false
	}
	iv, err := strconv.Atoi(i)
	if err != nil {
		return Location{}, false
	}
	jv, err := strconv.Atoi(j)
	if err != nil {
		return Location{}, false
	}
	return Location{I: iv, J: jv}, true
}

func modifierFEN(m Modifier) string {
	switch m {
	case SelectPotion:
		return "p"
	case SelectBomb:
		return "b"
	case Cancel:
		return "c"
	default:
		return "x"
	}
}

func modifierFromFEN(fen string) (Modifier, bool) {
	switch fen {
	case "p":
		return SelectPotion, true
	case "b":
		return SelectBomb, true
	case "c":
		return Cancel, true
	default:
		return Modifier(0), false
	}
}

// InputFEN encodes a single Input: "l<loc>" for a location, "m<mod>" for
// a modifier, "z" for a takeback.
func InputFEN(in Input) string {
	switch in.Kind {
	case InputLocation:
		return "l" + locationFEN(in.Location)
	case InputModifier:
		return "m" + modifierFEN(in.Modifier)
	case InputTakeback:
		return "z"
	default:
		return "x"
	}
}

func InputFromFEN(fen string) (Input, bool) {
	if fen == "" {
		return Input{}, false
	}
	switch fen[0] {
	case 'l':
		loc, ok := locationFromFEN(fen[1:])
		if !ok {
			return Input{}, false
		}
		return InputFromLocation(loc), true
	case 'm':
		mod, ok := modifierFromFEN(fen[1:])
		if !ok {
			return Input{}, false
		}
		return InputFromModifier(mod), true
	case 'z':
		return TakebackInput(), true
	default:
		return Input{}, false
	}
}

// InputChainFEN encodes a sequence of inputs joined by ';'.
func InputChainFEN(inputs []Input) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = InputFEN(in)
	}
	return strings.Join(parts, ";")
}

func InputChainFromFEN(fen string) []Input {
	if fen == "" {
		return nil
	}
	var out []Input
	for _, part := range strings.Split(fen, ";") {
		if in, ok := InputFromFEN(part); ok {
			out = append(out, in)
		}
	}
	return out
}

var nextInputKindFEN = map[NextInputKind]string{
	NextInputMonMove:             "mm",
	NextInputManaMove:            "mma",
	NextInputMysticAction:        "ma",
	NextInputDemonAction:         "da",
	NextInputDemonAdditionalStep: "das",
	NextInputSpiritTargetCapture: "stc",
	NextInputSpiritTargetMove:    "stm",
	NextInputSelectConsumable:    "sc",
	NextInputBombAttack:          "ba",
}

var fenNextInputKind = map[string]NextInputKind{
	"mm":  NextInputMonMove,
	"mma": NextInputManaMove,
	"ma":  NextInputMysticAction,
	"da":  NextInputDemonAction,
	"das": NextInputDemonAdditionalStep,
	"stc": NextInputSpiritTargetCapture,
	"stm": NextInputSpiritTargetMove,
	"sc":  NextInputSelectConsumable,
	"ba":  NextInputBombAttack,
}

// NextInputFEN encodes a NextInput as "<input> <kind> <actor-or-o>".
func NextInputFEN(ni NextInput) string {
	actor := "o"
	if ni.HasActorMon {
		actor = itemFEN(ni.ActorMonItem)
	}
	return fmt.Sprintf("%s %s %s", InputFEN(ni.Input), nextInputKindFEN[ni.Kind], actor)
}

func NextInputFromFEN(fen string) (NextInput, bool) {
	parts := strings.Fields(fen)
	if len(parts) != 3 {
		return NextInput{}, false
	}
	in, ok := InputFromFEN(parts[0])
	if !ok {
		return NextInput{}, false
	}
	kind, ok := fenNextInputKind[parts[1]]
	if !ok {
		return NextInput{}, false
	}
	if parts[2] == "o" {
		return NewNextInput(in, kind), true
	}
	item, ok := itemFromFEN(parts[2])
	if !ok {
		return NextInput{}, false
	}
	return NewNextInputWithActor(in, kind, item), true
}

var eventFENPrefix = map[EventKind]string{
	EventMonMove:             "mm",
	EventManaMove:            "mma",
	EventManaScored:          "ms",
	EventMysticAction:        "ma",
	EventDemonAction:         "da",
	EventDemonAdditionalStep: "das",
	EventSpiritTargetMove:    "stm",
	EventPickupBomb:          "pb",
	EventPickupPotion:        "pp",
	EventUsePotion:           "up",
	EventPickupMana:          "pm",
	EventMonFainted:          "mf",
	EventManaDropped:         "md",
	EventSupermanaBackToBase: "sb",
	EventBombAttack:          "ba",
	EventMonAwake:            "maw",
	EventBombExplosion:       "be",
	EventNextTurn:            "nt",
	EventGameOver:            "go",
	EventTakeback:            "z",
}

// EventFEN encodes a single event. The field list after the prefix
// matches the event's constructor argument order.
func EventFEN(e Event) string {
	prefix := eventFENPrefix[e.Kind]
	switch e.Kind {
	case EventMonMove:
		return fmt.Sprintf("%s %s %s %s", prefix, itemFEN(e.Item), locationFEN(e.From), locationFEN(e.To))
	case EventManaMove:
		return fmt.Sprintf("%s %s %s %s", prefix, manaFEN(e.Mana), locationFEN(e.From), locationFEN(e.To))
	case EventManaScored:
		return fmt.Sprintf("%s %s %s", prefix, manaFEN(e.Mana), locationFEN(e.At))
	case EventMysticAction:
		return fmt.Sprintf("%s %s %s %s", prefix, monFEN(e.Mon), locationFEN(e.From), locationFEN(e.To))
	case EventDemonAction:
		return fmt.Sprintf("%s %s %s %s", prefix, monFEN(e.Mon), locationFEN(e.From), locationFEN(e.To))
	case EventDemonAdditionalStep:
		return fmt.Sprintf("%s %s %s %s", prefix, monFEN(e.Mon), locationFEN(e.From), locationFEN(e.To))
	case EventSpiritTargetMove:
		return fmt.Sprintf("%s %s %s %s", prefix, itemFEN(e.Item), locationFEN(e.From), locationFEN(e.To))
	case EventPickupBomb:
		return fmt.Sprintf("%s %s %s", prefix, monFEN(e.By), locationFEN(e.At))
	case EventPickupPotion:
		return fmt.Sprintf("%s %s %s", prefix, itemFEN(e.ByItem), locationFEN(e.At))
	case EventUsePotion:
		return prefix
	case EventPickupMana:
		return fmt.Sprintf("%s %s %s %s", prefix, manaFEN(e.Mana), monFEN(e.By), locationFEN(e.At))
	case EventMonFainted:
		return fmt.Sprintf("%s %s %s %s", prefix, monFEN(e.Mon), locationFEN(e.From), locationFEN(e.To))
	case EventManaDropped:
		return fmt.Sprintf("%s %s %s", prefix, manaFEN(e.Mana), locationFEN(e.At))
	case EventSupermanaBackToBase:
		return fmt.Sprintf("%s %s %s", prefix, locationFEN(e.From), locationFEN(e.To))
	case EventBombAttack:
		return fmt.Sprintf("%s %s %s %s", prefix, monFEN(e.By), locationFEN(e.From), locationFEN(e.To))
	case EventMonAwake:
		return fmt.Sprintf("%s %s %s", prefix, monFEN(e.Mon), locationFEN(e.At))
	case EventBombExplosion:
		return fmt.Sprintf("%s %s", prefix, locationFEN(e.At))
	case EventNextTurn:
		return fmt.Sprintf("%s %s", prefix, colorFEN(e.Color))
	case EventGameOver:
		return fmt.Sprintf("%s %s", prefix, colorFEN(e.Color))
	case EventTakeback:
		return prefix
	default:
		return "?"
	}
}

func EventFromFEN(fen string) (Event, bool) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return Event{}, false
	}
	switch parts[0] {
	case "mm":
		if len(parts) != 4 {
			return Event{}, false
		}
		item, ok1 := itemFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return MonMoveEvent(item, from, to), true
	case "mma":
		if len(parts) != 4 {
			return Event{}, false
		}
		mana, ok1 := manaFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return ManaMoveEvent(mana, from, to), true
	case "ms":
		if len(parts) != 3 {
			return Event{}, false
		}
		mana, ok1 := manaFromFEN(parts[1])
		at, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return ManaScoredEvent(mana, at), true
	case "ma":
		if len(parts) != 4 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return MysticActionEvent(mon, from, to), true
	case "da":
		if len(parts) != 4 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return DemonActionEvent(mon, from, to), true
	case "das":
		if len(parts) != 4 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return DemonAdditionalStepEvent(mon, from, to), true
	case "stm":
		if len(parts) != 4 {
			return Event{}, false
		}
		item, ok1 := itemFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return SpiritTargetMoveEvent(item, from, to), true
	case "pb":
		if len(parts) != 3 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		at, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return PickupBombEvent(mon, at), true
	case "pp":
		if len(parts) != 3 {
			return Event{}, false
		}
		item, ok1 := itemFromFEN(parts[1])
		at, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return PickupPotionEvent(item, at), true
	case "up":
		return UsePotionEvent(), true
	case "pm":
		if len(parts) != 4 {
			return Event{}, false
		}
		mana, ok1 := manaFromFEN(parts[1])
		mon, ok2 := monFromFEN(parts[2])
		at, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return PickupManaEvent(mana, mon, at), true
	case "mf":
		if len(parts) != 4 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return MonFaintedEvent(mon, from, to), true
	case "md":
		if len(parts) != 3 {
			return Event{}, false
		}
		mana, ok1 := manaFromFEN(parts[1])
		at, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return ManaDroppedEvent(mana, at), true
	case "sb":
		if len(parts) != 3 {
			return Event{}, false
		}
		from, ok1 := locationFromFEN(parts[1])
		to, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return SupermanaBackToBaseEvent(from, to), true
	case "ba":
		if len(parts) != 4 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		from, ok2 := locationFromFEN(parts[2])
		to, ok3 := locationFromFEN(parts[3])
		if !ok1 || !ok2 || !ok3 {
			return Event{}, false
		}
		return BombAttackEvent(mon, from, to), true
	case "maw":
		if len(parts) != 3 {
			return Event{}, false
		}
		mon, ok1 := monFromFEN(parts[1])
		at, ok2 := locationFromFEN(parts[2])
		if !ok1 || !ok2 {
			return Event{}, false
		}
		return MonAwakeEvent(mon, at), true
	case "be":
		if len(parts) != 2 {
			return Event{}, false
		}
		at, ok := locationFromFEN(parts[1])
		if !ok {
			return Event{}, false
		}
		return BombExplosionEvent(at), true
	case "nt":
		if len(parts) != 2 {
			return Event{}, false
		}
		c, ok := colorFromFEN(parts[1])
		if !ok {
			return Event{}, false
		}
		return NextTurnEvent(c), true
	case "go":
		if len(parts) != 2 {
			return Event{}, false
		}
		c, ok := colorFromFEN(parts[1])
		if !ok {
			return Event{}, false
		}
		return GameOverEvent(c), true
	case "z":
		return TakebackEvent(), true
	default:
		return Event{}, false
	}
}

// OutputFEN encodes an Output. Locations, next-input options, and events
// are each sorted before joining, so two equal outputs always produce an
// identical string regardless of internal slice order.
func OutputFEN(out Output) string {
	switch out.Kind {
	case OutputInvalidInput:
		return "i"
	case OutputLocationsToStartFrom:
		tokens := make([]string, len(out.LocationsToStart))
		for i, loc := range out.LocationsToStart {
			tokens[i] = locationFEN(loc)
		}
		sort.Strings(tokens)
		return "l" + strings.Join(tokens, "/")
	case OutputNextInputOptions:
		tokens := make([]string, len(out.NextInputOptions))
		for i, ni := range out.NextInputOptions {
			tokens[i] = NextInputFEN(ni)
		}
		sort.Strings(tokens)
		return "n" + strings.Join(tokens, "/")
	case OutputEvents:
		tokens := make([]string, len(out.Events))
		for i, e := range out.Events {
			tokens[i] = EventFEN(e)
		}
		sort.Strings(tokens)
		return "e" + strings.Join(tokens, "/")
	default:
		return "i"
	}
}

func OutputFromFEN(fen string) (Output, bool) {
	if fen == "" {
		return Output{}, false
	}
	prefix, data := fen[:1], fen[1:]
	switch prefix {
	case "i":
		return InvalidInputOutput(), true
	case "l":
		var locs []Location
		for _, f := range strings.Split(data, "/") {
			if loc, ok := locationFromFEN(f); ok {
				locs = append(locs, loc)
			}
		}
		if len(locs) == 0 {
			return Output{}, false
		}
		return LocationsToStartFromOutput(locs), true
	case "n":
		var options []NextInput
		for _, f := range strings.Split(data, "/") {
			if ni, ok := NextInputFromFEN(f); ok {
				options = append(options, ni)
			}
		}
		if len(options) == 0 {
			return Output{}, false
		}
		return NextInputOptionsOutput(options), true
	case "e":
		var events []Event
		for _, f := range strings.Split(data, "/") {
			if e, ok := EventFromFEN(f); ok {
				events = append(events, e)
			}
		}
		if len(events) == 0 {
			return Output{}, false
		}
		return EventsOutput(events), true
	default:
		return Output{}, false
	}
}
