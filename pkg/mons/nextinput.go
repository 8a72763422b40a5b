package mons

// NextInputKind names which stage of a multi-step move an offered
// NextInput belongs to, so a client can render the right affordance.
type NextInputKind int

const (
	NextInputMonMove NextInputKind = iota
	NextInputManaMove
	NextInputMysticAction
	NextInputDemonAction
	NextInputDemonAdditionalStep
	NextInputSpiritTargetCapture
	NextInputSpiritTargetMove
	NextInputSelectConsumable
	NextInputBombAttack
)

// NextInput is one of the choices offered back to the caller when an
// input chain is incomplete. ActorMonItem, when present, names the mon
// driving the move (useful for UIs highlighting the piece in motion).
type NextInput struct {
	Input        Input
	Kind         NextInputKind
	ActorMonItem Item
	HasActorMon  bool
}

func NewNextInput(input Input, kind NextInputKind) NextInput {
	return NextInput{Input: input, Kind: kind}
}

func NewNextInputWithActor(input Input, kind NextInputKind, actor Item) NextInput {
	return NextInput{Input: input, Kind: kind, ActorMonItem: actor, HasActorMon: true}
}
