// Command rulestestgen plays random legal games against the rules
// engine and records each resolved move as a rules-test fixture under
// --dir, stopping once --target-new new unique fixtures have been
// saved.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/efreeman/mons-engine/internal/logger"
	"github.com/efreeman/mons-engine/internal/search"
	"github.com/efreeman/mons-engine/pkg/fixture"
	"github.com/efreeman/mons-engine/pkg/mons"
)

const rootEnumLimit = 128

func main() {
	logger.Init()

	var (
		dir       string
		targetNew int
		seed      int64
		help      bool
	)
	flag.StringVar(&dir, "dir", "rules-tests", "fixture output directory")
	flag.IntVar(&targetNew, "target-new", 100, "stop after this many new unique fixtures")
	flag.Int64Var(&seed, "seed", 1, "random seed for move selection and openings")
	flag.BoolVar(&help, "help", false, "show usage")
	var helpShort bool
	flag.BoolVar(&helpShort, "h", false, "show usage")
	flag.Parse()

	if help || helpShort {
		flag.Usage()
		return
	}

	if err := run(dir, targetNew, seed, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "rulestestgen:", err)
		os.Exit(1)
	}
}

func run(dir string, targetNew int, seed int64, out *os.File) error {
	rng := rand.New(rand.NewSource(seed))
	saved := 0

	for saved < targetNew {
		game := mons.NewMonsGame()

		for {
			if _, over := game.WinnerColor(); over {
				break
			}
			chains := search.CollectLegalInputs(game, rootEnumLimit)
			if len(chains) == 0 {
				break
			}
			chain := chains[rng.Intn(len(chains))]

			fenBefore := mons.EncodeFEN(game)
			inputFen := mons.InputChainFEN(chain)
			output := game.ProcessInput(chain, false, false)
			if output.Kind != mons.OutputEvents {
				break
			}
			fenAfter := mons.EncodeFEN(game)

			f := fixture.Fixture{
				FenAfter:  fenAfter,
				FenBefore: fenBefore,
				InputFen:  inputFen,
				OutputFen: mons.OutputFEN(output),
			}
			path, isNew, err := fixture.Save(dir, f)
			if err != nil {
				return err
			}
			if isNew {
				saved++
				fmt.Fprintf(out, "✅ %s score %d:%d turn %d\n", filepath.Base(path), game.WhiteScore, game.BlackScore, game.TurnNumber)
				if saved >= targetNew {
					return nil
				}
			}
		}
	}
	return nil
}
