package mons

import "testing"

func TestEncodeDecodeFEN_RoundTrip(t *testing.T) {
	g := NewMonsGame()
	fen := EncodeFEN(g)

	decoded, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) failed: %v", fen, err)
	}

	again := EncodeFEN(decoded)
	if again != fen {
		t.Errorf("FEN round-trip mismatch\ngot:  %s\nwant: %s", again, fen)
	}
}

func TestEncodeDecodeFEN_AfterMoves(t *testing.T) {
	g := NewMonsGame()
	origins := g.startOrigins()
	if len(origins) == 0 {
		t.Fatal("opening position should offer at least one legal origin")
	}
	out := g.ProcessInput([]Input{InputFromLocation(origins[0])}, false, true)
	if out.Kind != OutputEvents && out.Kind != OutputNextInputOptions {
		t.Fatalf("unexpected output kind for single-location input: %v", out.Kind)
	}

	fen := EncodeFEN(g)
	decoded, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) failed: %v", fen, err)
	}
	if EncodeFEN(decoded) != fen {
		t.Errorf("FEN round-trip mismatch after a partial move")
	}
}

func TestDecodeFEN_RejectsGarbage(t *testing.T) {
	if _, err := DecodeFEN("not a fen"); err == nil {
		t.Error("expected an error decoding a malformed FEN")
	}
}

func TestInputChainFEN_RoundTrip(t *testing.T) {
	chain := []Input{
		InputFromLocation(Location{I: 3, J: 4}),
		InputFromModifier(SelectBomb),
		InputFromLocation(Location{I: 0, J: 0}),
	}
	fen := InputChainFEN(chain)
	got := InputChainFromFEN(fen)
	if len(got) != len(chain) {
		t.Fatalf("chain length: got %d, want %d", len(got), len(chain))
	}
	for i := range chain {
		if got[i] != chain[i] {
			t.Errorf("input %d: got %+v, want %+v", i, got[i], chain[i])
		}
	}
}

func TestOutputFEN_SortsListVariants(t *testing.T) {
	out := LocationsToStartFromOutput([]Location{
		{I: 5, J: 5},
		{I: 0, J: 0},
		{I: 10, J: 10},
	})
	fen := OutputFEN(out)

	decoded, ok := OutputFromFEN(fen)
	if !ok {
		t.Fatalf("OutputFromFEN(%q) failed", fen)
	}
	if len(decoded.LocationsToStart) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(decoded.LocationsToStart))
	}
	// OutputFEN sorts the location tokens as strings, so "10,10" comes
	// before "5,5".
	for i := 1; i < len(decoded.LocationsToStart); i++ {
		prev, cur := locationFEN(decoded.LocationsToStart[i-1]), locationFEN(decoded.LocationsToStart[i])
		if prev >= cur {
			t.Errorf("location tokens not sorted: %q before %q", prev, cur)
		}
	}
}

func TestEventFEN_UsePotionRoundTrips(t *testing.T) {
	fen := EventFEN(UsePotionEvent())
	decoded, ok := EventFromFEN(fen)
	if !ok {
		t.Fatalf("EventFromFEN(%q) failed", fen)
	}
	if decoded.Kind != EventUsePotion {
		t.Errorf("kind: got %v, want EventUsePotion", decoded.Kind)
	}
}
