// Command rulestestrun replays every fixture under --dir against the
// rules engine and asserts that both the produced Output FEN and the
// resulting game FEN match what the fixture recorded.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/efreeman/mons-engine/internal/logger"
	"github.com/efreeman/mons-engine/pkg/fixture"
	"github.com/efreeman/mons-engine/pkg/mons"
)

const (
	maxFailureDetails = 50
	progressEvery     = 500
)

func main() {
	logger.Init()

	var (
		dir     string
		limit   int
		logPath string
		verbose bool
		help    bool
		helpH   bool
	)
	flag.StringVar(&dir, "dir", "rules-tests", "fixture directory to replay")
	flag.IntVar(&limit, "limit", 0, "stop after this many fixtures (0 = no limit)")
	flag.StringVar(&logPath, "log", "", "optional file to append a line per failure to")
	flag.BoolVar(&verbose, "verbose", false, "print a line per fixture, not just failures")
	flag.BoolVar(&help, "help", false, "show usage")
	flag.BoolVar(&helpH, "h", false, "show usage")
	flag.Parse()

	if help || helpH {
		flag.Usage()
		return
	}

	failed, err := run(dir, limit, logPath, verbose, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rulestestrun:", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func run(dir string, limit int, logPath string, verbose bool, out *os.File) (anyFailed bool, err error) {
	paths, err := fixture.ListDir(dir)
	if err != nil {
		return false, err
	}
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	var logFile *os.File
	if logPath != "" {
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return false, fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
	}

	var (
		ran, passed, failed int
	)
	for i, path := range paths {
		ran++
		ok, detail := replay(path)
		if ok {
			if verbose {
				fmt.Fprintf(out, "ok   %s\n", path)
			}
			passed++
		} else {
			failed++
			if logFile != nil {
				fmt.Fprintf(logFile, "FAIL %s: %s\n", path, detail)
			}
			if failed <= maxFailureDetails {
				fmt.Fprintf(out, "FAIL %s: %s\n", path, detail)
			} else if failed == maxFailureDetails+1 {
				fmt.Fprintf(out, "... suppressing further failure detail after %d failures\n", maxFailureDetails)
			}
			anyFailed = true
		}
		if (i+1)%progressEvery == 0 {
			fmt.Fprintf(out, "progress: %d/%d (passed %d, failed %d)\n", i+1, len(paths), passed, failed)
		}
	}

	fmt.Fprintf(out, "ran %d fixtures: %d passed, %d failed\n", ran, passed, failed)
	return anyFailed, nil
}

// replay loads one fixture and asserts that process_input(fenBefore,
// inputFen) reproduces both outputFen and fenAfter exactly.
func replay(path string) (ok bool, detail string) {
	f, err := fixture.Load(path)
	if err != nil {
		return false, err.Error()
	}

	game, err := mons.DecodeFEN(f.FenBefore)
	if err != nil {
		return false, fmt.Sprintf("decode fenBefore: %v", err)
	}

	inputs := mons.InputChainFromFEN(f.InputFen)
	output := game.ProcessInput(inputs, false, false)

	gotOutputFEN := mons.OutputFEN(output)
	if gotOutputFEN != f.OutputFen {
		return false, fmt.Sprintf("output FEN mismatch: got %q, want %q", gotOutputFEN, f.OutputFen)
	}

	gotFenAfter := mons.EncodeFEN(game)
	if gotFenAfter != f.FenAfter {
		return false, fmt.Sprintf("fenAfter mismatch: got %q, want %q", gotFenAfter, f.FenAfter)
	}

	return true, ""
}
