// SPDX-License-Identifier: MIT
// Package: snowdrift/game
//
// topology.go - canonical topology constructors.
//
// Canonical model:
//   - NewPrism: the fixed 10-node pentagonal prism used by the reference
//     experiment (outer pentagon 0..4, inner pentagon 5..9, one spoke per
//     outer node). Every node has degree 3, so k_max = 3 and the
//     cooperation threshold 1/k_max is exactly 1/3.
//   - NewRandom: Erdős–Rényi-like G(n,p); include each unordered pair
//     {i,j}, i<j, independently with probability p.
//
// Contract:
//   - NewRandom: n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else
//     ErrProbabilityOutOfRange); rng required whenever 0 < p < 1
//     (else ErrNilRand).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j > i. Identical
//     seeds therefore yield identical topologies.

package game

import (
	"fmt"
	"math/rand"
)

// File-local constants (no magic literals).
const (
	prismNodes = 10
	probMin    = 0.0
	probMax    = 1.0
)

// prismEdges is the fixed edge set of the pentagonal prism:
// outer cycle, spokes, inner cycle.
var prismEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4},
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	{5, 6}, {6, 7}, {7, 8}, {8, 9}, {5, 9},
}

// NewPrism builds the canonical 10-node pentagonal prism with every
// node labeled Defector. Complexity: O(1) (fixed size).
func NewPrism() *Graph {
	g, err := New(prismNodes, prismEdges)
	if err != nil {
		// The fixed edge set is valid by construction; reaching this is a bug.
		panic(fmt.Sprintf("game: prism construction: %v", err))
	}

	return g
}

// NewRandom samples an Erdős–Rényi graph G(n,p): each of the n·(n-1)/2
// unordered pairs becomes an edge independently with probability p.
// All nodes start as Defector.
//
// Complexity: O(n²) Bernoulli trials.
func NewRandom(n int, p float64, rng *rand.Rand) (*Graph, error) {
	// 1) Validate parameters early; zero side effects on invalid input.
	if n < 1 {
		return nil, fmt.Errorf("NewRandom: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("NewRandom: p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrProbabilityOutOfRange)
	}
	// RNG is only required for true stochastic sampling (0 < p < 1).
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("NewRandom: %w", ErrNilRand)
	}

	// 2) Sample edges with a stable trial order: i asc, then j asc (j > i).
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMax:
				edges = append(edges, Edge{i, j})
			case p == probMin:
				// no edge
			case rng.Float64() < p:
				edges = append(edges, Edge{i, j})
			}
		}
	}

	return New(n, edges)
}
