// Package fixture implements the on-disk rules-test fixture format: one
// JSON object per completed move, keyed by the FNV-1a 64-bit hash of its
// own canonical serialisation so that re-generating the same scenario
// never produces a duplicate file.
package fixture

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Fixture is one recorded rules-engine transition: the game FEN before
// the move, the input chain that was applied, the Output FEN it
// produced, and the game FEN afterward. Field order is fixed
// (fenAfter, fenBefore, inputFen, outputFen) because that order is part
// of the hash: Go's encoding/json marshals struct fields in declaration
// order, so this struct's field order IS the canonical order the
// filename hash is computed over.
type Fixture struct {
	FenAfter  string `json:"fenAfter"`
	FenBefore string `json:"fenBefore"`
	InputFen  string `json:"inputFen"`
	OutputFen string `json:"outputFen"`
}

// Canonical returns f's canonical JSON encoding, the exact bytes the
// filename hash and the on-disk file both use.
func (f Fixture) Canonical() ([]byte, error) {
	return json.Marshal(f)
}

// FileName returns the fixture's filename: the decimal FNV-1a 64-bit
// hash of its canonical encoding, with no extension.
func (f Fixture) FileName() (string, error) {
	data, err := f.Canonical()
	if err != nil {
		return "", fmt.Errorf("canonicalize fixture: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return strconv.FormatUint(h.Sum64(), 10), nil
}

// Save writes f into dir under its hash-derived filename, creating dir
// if needed. It returns the path written and whether the fixture was
// new (false if a file with that hash already existed, in which case
// the existing file is left untouched rather than rewritten).
func Save(dir string, f Fixture) (path string, isNew bool, err error) {
	name, err := f.FileName()
	if err != nil {
		return "", false, err
	}
	path = filepath.Join(dir, name)

	if _, statErr := os.Stat(path); statErr == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create fixture dir: %w", err)
	}
	data, err := f.Canonical()
	if err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("write fixture %s: %w", path, err)
	}
	return path, true, nil
}

// Load reads and parses one fixture file using encoding/json, which
// already gives dependency-free decoding with no hand-rolled extractor
// needed.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

// ListDir returns the sorted paths of every regular file directly under
// dir. Fixture files carry no extension (their name is the decimal
// FNV-1a hash of their contents), so this lists by file type, not by
// suffix.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list fixture dir %s: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
