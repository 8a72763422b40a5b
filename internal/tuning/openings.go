package tuning

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/efreeman/mons-engine/internal/search"
	"github.com/efreeman/mons-engine/pkg/mons"
)

// OpeningRandomPliesMax bounds how far generate_opening_fens walks from
// the start position before handing the resulting FEN to a matchup.
const OpeningRandomPliesMax = 6

// openingCache memoizes GenerateOpeningFens by (seed, n) key: a
// process-wide map guarded by a mutex whose entries are immutable once
// inserted, so concurrent matchup workers reading the same seed never
// recompute or race.
var openingCache = struct {
	mu      sync.Mutex
	entries map[string][]string
}{entries: make(map[string][]string)}

// GenerateOpeningFens produces n opening FENs by applying 0..=
// OpeningRandomPliesMax seeded random legal moves from a fresh game,
// one independent walk per entry. The same (seed, n) always yields the
// same n FENs — cached after the first computation — which is what
// makes a tournament reproducible and keeps concurrent workers on the
// same seed from redoing the work.
func GenerateOpeningFens(seed int64, n int) []string {
	key := fmt.Sprintf("%d:%d", seed, n)

	openingCache.mu.Lock()
	defer openingCache.mu.Unlock()
	if cached, ok := openingCache.entries[key]; ok {
		return cached
	}

	rng := rand.New(rand.NewSource(seed))
	fens := make([]string, n)
	for i := 0; i < n; i++ {
		fens[i] = randomOpeningFEN(rng)
	}

	openingCache.entries[key] = fens
	return fens
}

func randomOpeningFEN(rng *rand.Rand) string {
	game := mons.NewMonsGame()
	plies := rng.Intn(OpeningRandomPliesMax + 1)
	for p := 0; p < plies; p++ {
		chains := search.CollectLegalInputs(game, randomEnumLimit)
		if len(chains) == 0 {
			break
		}
		chain := chains[rng.Intn(len(chains))]
		next := search.Simulate(game, chain)
		if next == nil {
			break
		}
		game = next
	}
	return mons.EncodeFEN(game)
}
