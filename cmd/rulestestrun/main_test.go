package main

import (
	"os"
	"strings"
	"testing"

	"github.com/efreeman/mons-engine/pkg/fixture"
	"github.com/efreeman/mons-engine/pkg/mons"
)

func writeFixture(t *testing.T, dir string, f fixture.Fixture) {
	t.Helper()
	if _, _, err := fixture.Save(dir, f); err != nil {
		t.Fatalf("Save returned an error: %v", err)
	}
}

func discardFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRun_PassesOnAFixtureGeneratedFromALiveGame(t *testing.T) {
	dir := t.TempDir()

	game := mons.NewMonsGame()
	fenBefore := mons.EncodeFEN(game)
	drainerOrigin := mons.Location{I: 10, J: 5}
	target := mons.Location{I: 9, J: 5}
	chain := []mons.Input{mons.InputFromLocation(drainerOrigin), mons.InputFromLocation(target)}
	output := game.ProcessInput(chain, false, false)
	if output.Kind != mons.OutputEvents {
		t.Fatalf("expected the opening drainer slide to resolve into events, got %v", output.Kind)
	}

	writeFixture(t, dir, fixture.Fixture{
		FenAfter:  mons.EncodeFEN(game),
		FenBefore: fenBefore,
		InputFen:  mons.InputChainFEN(chain),
		OutputFen: mons.OutputFEN(output),
	})

	failed, err := run(dir, 0, "", false, discardFile(t))
	if err != nil {
		t.Fatalf("run returned an error: %v", err)
	}
	if failed {
		t.Error("expected a faithfully recorded fixture to replay cleanly")
	}
}

func TestRun_FailsOnATamperedOutputFen(t *testing.T) {
	dir := t.TempDir()
	game := mons.NewMonsGame()
	fenBefore := mons.EncodeFEN(game)
	chain := []mons.Input{mons.InputFromLocation(mons.Location{I: 9, J: 0}), mons.InputFromLocation(mons.Location{I: 8, J: 0})}
	output := game.ProcessInput(chain, false, false)

	writeFixture(t, dir, fixture.Fixture{
		FenAfter:  mons.EncodeFEN(game),
		FenBefore: fenBefore,
		InputFen:  mons.InputChainFEN(chain),
		OutputFen: "e/tampered",
	})

	failed, err := run(dir, 0, "", false, discardFile(t))
	if err != nil {
		t.Fatalf("run returned an error: %v", err)
	}
	if !failed {
		t.Error("expected a tampered outputFen to be detected as a failure")
	}
}

func TestRun_RespectsLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		game := mons.NewMonsGame()
		game.WhiteScore = i // distinct positions, so three distinct fixture files
		writeFixture(t, dir, fixture.Fixture{
			FenAfter:  mons.EncodeFEN(game),
			FenBefore: mons.EncodeFEN(game),
			InputFen:  "",
			OutputFen: mons.OutputFEN(game.ProcessInput(nil, true, false)),
		})
	}
	out := discardFile(t)
	if _, err := run(dir, 1, "", false, out); err != nil {
		t.Fatalf("run returned an error: %v", err)
	}
	report, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatalf("read run output: %v", err)
	}
	if !strings.Contains(string(report), "ran 1 fixtures") {
		t.Errorf("expected the run to stop after 1 of 3 fixtures, got output %q", report)
	}
}

func TestReplay_RejectsAnUndecodableFenBefore(t *testing.T) {
	ok, detail := replay(writeRawFixture(t, fixture.Fixture{FenBefore: "not a fen"}))
	if ok {
		t.Error("expected an undecodable fenBefore to fail replay")
	}
	if detail == "" {
		t.Error("expected a non-empty failure detail")
	}
}

func writeRawFixture(t *testing.T, f fixture.Fixture) string {
	t.Helper()
	dir := t.TempDir()
	path, _, err := fixture.Save(dir, f)
	if err != nil {
		t.Fatalf("Save returned an error: %v", err)
	}
	return path
}
