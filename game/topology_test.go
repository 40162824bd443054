package game_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/snowdrift/game"
)

// TestNewPrism verifies the canonical topology: 10 nodes, 15 edges,
// 3-regular, connected.
func TestNewPrism(t *testing.T) {
	g := game.NewPrism()

	if got := g.NodeCount(); got != 10 {
		t.Errorf("NodeCount() = %d; want 10", got)
	}
	if got := g.EdgeCount(); got != 15 {
		t.Errorf("EdgeCount() = %d; want 15", got)
	}
	for _, id := range g.Nodes() {
		if d, _ := g.Degree(id); d != 3 {
			t.Errorf("Degree(%d) = %d; want 3", id, d)
		}
	}
	if k := g.MaxDegree(); k != 3 {
		t.Errorf("MaxDegree() = %d; want 3", k)
	}

	// Spot-check one edge from each of the three rings.
	for _, e := range []game.Edge{{U: 0, V: 1}, {U: 2, V: 7}, {U: 5, V: 9}} {
		if !g.HasEdge(e.U, e.V) {
			t.Errorf("prism is missing edge (%d,%d)", e.U, e.V)
		}
	}
}

// TestNewRandom_Errors verifies the validation sentinels.
func TestNewRandom_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name string
		n    int
		p    float64
		rng  *rand.Rand
		err  error
	}{
		{"ZeroNodes", 0, 0.5, rng, game.ErrTooFewNodes},
		{"NegativeProb", 5, -0.1, rng, game.ErrProbabilityOutOfRange},
		{"ProbAboveOne", 5, 1.5, rng, game.ErrProbabilityOutOfRange},
		{"NilRand", 5, 0.5, nil, game.ErrNilRand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := game.NewRandom(tc.n, tc.p, tc.rng)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewRandom(%d, %v) error = %v; want %v", tc.n, tc.p, err, tc.err)
			}
		})
	}
}

// TestNewRandom_DegenerateProbabilities checks p=0 and p=1, which need
// no RNG by contract.
func TestNewRandom_DegenerateProbabilities(t *testing.T) {
	empty, err := game.NewRandom(6, 0, nil)
	if err != nil {
		t.Fatalf("NewRandom(p=0) error: %v", err)
	}
	if got := empty.EdgeCount(); got != 0 {
		t.Errorf("p=0 EdgeCount = %d; want 0", got)
	}

	complete, err := game.NewRandom(6, 1, nil)
	if err != nil {
		t.Fatalf("NewRandom(p=1) error: %v", err)
	}
	if got, want := complete.EdgeCount(), 6*5/2; got != want {
		t.Errorf("p=1 EdgeCount = %d; want %d", got, want)
	}
}

// TestNewRandom_Deterministic verifies that identical seeds reproduce
// identical topologies.
func TestNewRandom_Deterministic(t *testing.T) {
	build := func() []game.Edge {
		g, err := game.NewRandom(12, 0.3, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("NewRandom error: %v", err)
		}

		return g.Edges()
	}

	if a, b := build(), build(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different edge sets:\n%v\n%v", a, b)
	}
}
