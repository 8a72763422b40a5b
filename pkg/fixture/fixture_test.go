package fixture

import (
	"strconv"
	"testing"
)

func TestFileName_IsDeterministicAndDecimalNoExtension(t *testing.T) {
	f := Fixture{FenAfter: "a", FenBefore: "b", InputFen: "c", OutputFen: "d"}
	name1, err := f.FileName()
	if err != nil {
		t.Fatalf("FileName returned an error: %v", err)
	}
	name2, err := f.FileName()
	if err != nil {
		t.Fatalf("FileName returned an error: %v", err)
	}
	if name1 != name2 {
		t.Errorf("FileName not deterministic: %q vs %q", name1, name2)
	}
	if _, err := strconv.ParseUint(name1, 10, 64); err != nil {
		t.Errorf("expected a decimal uint64 filename with no extension, got %q", name1)
	}
}

func TestFileName_DiffersForDifferentContent(t *testing.T) {
	a := Fixture{FenAfter: "a", FenBefore: "b", InputFen: "c", OutputFen: "d"}
	b := Fixture{FenAfter: "a", FenBefore: "b", InputFen: "c", OutputFen: "e"}
	nameA, _ := a.FileName()
	nameB, _ := b.FileName()
	if nameA == nameB {
		t.Error("expected different fixture contents to hash to different filenames")
	}
}

func TestCanonical_FieldOrderMatchesSpecifiedOrder(t *testing.T) {
	f := Fixture{FenAfter: "A", FenBefore: "B", InputFen: "C", OutputFen: "D"}
	data, err := f.Canonical()
	if err != nil {
		t.Fatalf("Canonical returned an error: %v", err)
	}
	want := `{"fenAfter":"A","fenBefore":"B","inputFen":"C","outputFen":"D"}`
	if string(data) != want {
		t.Errorf("canonical encoding = %s, want %s", data, want)
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	f := Fixture{FenAfter: "after", FenBefore: "before", InputFen: "in", OutputFen: "out"}

	path, isNew, err := Save(dir, f)
	if err != nil {
		t.Fatalf("Save returned an error: %v", err)
	}
	if !isNew {
		t.Error("expected the first save of a fixture to report isNew=true")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if loaded != f {
		t.Errorf("loaded fixture %+v != saved fixture %+v", loaded, f)
	}

	_, isNewAgain, err := Save(dir, f)
	if err != nil {
		t.Fatalf("second Save returned an error: %v", err)
	}
	if isNewAgain {
		t.Error("expected saving an identical fixture twice to report isNew=false the second time")
	}
}

func TestListDir_ReturnsSortedFixtureFiles(t *testing.T) {
	dir := t.TempDir()
	fixtures := []Fixture{
		{FenAfter: "1", FenBefore: "x", InputFen: "x", OutputFen: "x"},
		{FenAfter: "2", FenBefore: "x", InputFen: "x", OutputFen: "x"},
		{FenAfter: "3", FenBefore: "x", InputFen: "x", OutputFen: "x"},
	}
	for _, f := range fixtures {
		if _, _, err := Save(dir, f); err != nil {
			t.Fatalf("Save returned an error: %v", err)
		}
	}

	paths, err := ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir returned an error: %v", err)
	}
	if len(paths) != len(fixtures) {
		t.Fatalf("got %d paths, want %d", len(paths), len(fixtures))
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] > paths[i] {
			t.Fatalf("paths not sorted: %q before %q", paths[i-1], paths[i])
		}
	}
}
