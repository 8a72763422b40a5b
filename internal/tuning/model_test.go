package tuning

import (
	"math/rand"
	"testing"

	"github.com/efreeman/mons-engine/pkg/mons"
)

func TestPool_HasTenDistinctlyNamedVariants(t *testing.T) {
	models := Pool()
	if len(models) != 10 {
		t.Fatalf("pool size = %d, want 10", len(models))
	}
	seen := make(map[string]bool, len(models))
	for _, m := range models {
		if seen[m.Name] {
			t.Errorf("duplicate model name %q", m.Name)
		}
		seen[m.Name] = true
		if m.Select == nil {
			t.Errorf("model %q has a nil selector", m.Name)
		}
	}
}

func TestModelByName_FindsEveryPoolEntry(t *testing.T) {
	for _, m := range Pool() {
		found, ok := ModelByName(m.Name)
		if !ok {
			t.Errorf("ModelByName(%q) not found", m.Name)
		}
		if found.Name != m.Name {
			t.Errorf("ModelByName(%q) returned %q", m.Name, found.Name)
		}
	}
	if _, ok := ModelByName("not_a_real_model"); ok {
		t.Error("expected unknown model name to miss")
	}
}

func TestEachPoolModel_SelectsALegalChainOnTheOpeningPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, m := range Pool() {
		game := mons.NewMonsGame()
		inputs := m.Select(game, rng)
		if inputs == nil {
			t.Errorf("model %q returned no move on the opening position", m.Name)
			continue
		}
		out := game.ProcessInput(inputs, false, false)
		if out.Kind != mons.OutputEvents {
			t.Errorf("model %q produced an input chain ProcessInput rejected: %v", m.Name, inputs)
		}
	}
}

func TestSearchCandidate_ScalesWithBudgetMode(t *testing.T) {
	builder := SearchCandidate("candidate")
	fast := builder(FastMode)
	normal := builder(NormalMode)
	if fast.Name != "candidate" || normal.Name != "candidate" {
		t.Fatalf("expected both modes to share the candidate name, got %q and %q", fast.Name, normal.Name)
	}

	game := mons.NewMonsGame()
	rng := rand.New(rand.NewSource(2))
	if inputs := fast.Select(game, rng); inputs == nil {
		t.Error("fast-mode candidate found no move on the opening position")
	}
	if inputs := normal.Select(game, rng); inputs == nil {
		t.Error("normal-mode candidate found no move on the opening position")
	}
}

func TestGreedyCandidate_IgnoresBudgetMode(t *testing.T) {
	builder := GreedyCandidate("greedy", mons.NormalBalancedWeights)
	fast := builder(FastMode)
	normal := builder(NormalMode)
	game := mons.NewMonsGame()
	rng := rand.New(rand.NewSource(3))

	fastMove := fast.Select(game, rng)
	normalMove := normal.Select(game, rng)
	if fastMove == nil || normalMove == nil {
		t.Fatal("expected both builds to find a move on the opening position")
	}
}

func TestSortedNames_IsDeterministicAndAlphabetical(t *testing.T) {
	names := sortedNames(Pool())
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
