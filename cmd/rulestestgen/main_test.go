package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/efreeman/mons-engine/pkg/fixture"
)

func TestRun_SavesExactlyTargetNewFixtures(t *testing.T) {
	dir := t.TempDir()
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if err := run(dir, 5, 42, f); err != nil {
		t.Fatalf("run returned an error: %v", err)
	}

	paths, err := fixture.ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir: %v", err)
	}
	if len(paths) != 5 {
		t.Fatalf("got %d fixtures on disk, want 5", len(paths))
	}

	for _, p := range paths {
		loaded, err := fixture.Load(p)
		if err != nil {
			t.Fatalf("Load(%s): %v", p, err)
		}
		if _, err := strconv.ParseUint(filepath.Base(p), 10, 64); err != nil {
			t.Errorf("expected an extension-less decimal fixture id, got %s", p)
		}
		if loaded.FenBefore == "" || loaded.FenAfter == "" || loaded.InputFen == "" || loaded.OutputFen == "" {
			t.Errorf("fixture %s has an empty field: %+v", p, loaded)
		}
	}
}

func TestRun_IsDeterministicForAFixedSeed(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	defer devNull.Close()

	discard, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer discard.Close()

	if err := run(dirA, 3, 7, discard); err != nil {
		t.Fatalf("run(A) returned an error: %v", err)
	}
	if err := run(dirB, 3, 7, discard); err != nil {
		t.Fatalf("run(B) returned an error: %v", err)
	}

	pathsA, _ := fixture.ListDir(dirA)
	pathsB, _ := fixture.ListDir(dirB)
	namesA := baseNames(pathsA)
	namesB := baseNames(pathsB)
	if len(namesA) != len(namesB) {
		t.Fatalf("fixture counts differ: %d vs %d", len(namesA), len(namesB))
	}
	for i := range namesA {
		if namesA[i] != namesB[i] {
			t.Errorf("fixture set differs between identically seeded runs: %q vs %q", namesA[i], namesB[i])
		}
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
