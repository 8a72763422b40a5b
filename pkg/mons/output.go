package mons

// OutputKind discriminates the four shapes ProcessInput can return.
type OutputKind int

const (
	OutputInvalidInput OutputKind = iota
	OutputLocationsToStartFrom
	OutputNextInputOptions
	OutputEvents
)

// Output is the result of feeding one more Input into the state machine.
type Output struct {
	Kind             OutputKind
	LocationsToStart []Location
	NextInputOptions []NextInput
	Events           []Event
}

func InvalidInputOutput() Output {
	return Output{Kind: OutputInvalidInput}
}

func LocationsToStartFromOutput(locs []Location) Output {
	return Output{Kind: OutputLocationsToStartFrom, LocationsToStart: locs}
}

func NextInputOptionsOutput(options []NextInput) Output {
	return Output{Kind: OutputNextInputOptions, NextInputOptions: options}
}

func EventsOutput(events []Event) Output {
	return Output{Kind: OutputEvents, Events: events}
}
