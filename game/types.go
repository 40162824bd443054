// Package game defines the Graph, Edge, and Strategy types together with
// the sentinel errors shared by all constructors and accessors.
package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and access.
var (
	// ErrTooFewNodes indicates a requested node count below one.
	ErrTooFewNodes = errors.New("game: graph needs at least one node")

	// ErrNodeOutOfRange indicates a node id outside 0..N-1.
	ErrNodeOutOfRange = errors.New("game: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("game: self-loops not allowed")

	// ErrDuplicateEdge indicates the same undirected edge listed twice.
	ErrDuplicateEdge = errors.New("game: duplicate edge")

	// ErrProbabilityOutOfRange indicates an edge probability outside [0,1].
	ErrProbabilityOutOfRange = errors.New("game: probability out of range")

	// ErrNilRand indicates a stochastic operation invoked without an RNG.
	ErrNilRand = errors.New("game: rng is required")
)

// Strategy is the label a node holds in the snowdrift game.
type Strategy uint8

const (
	// Defector free-rides on cooperating neighbors.
	Defector Strategy = iota
	// Cooperator pays the cost of clearing the drift.
	Cooperator
)

// String renders the strategy for logs and DOT labels.
func (s Strategy) String() string {
	switch s {
	case Cooperator:
		return "Cooperator"
	case Defector:
		return "Defector"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Other returns the opposite strategy.
func (s Strategy) Other() Strategy {
	if s == Cooperator {
		return Defector
	}

	return Cooperator
}

// Edge is an undirected edge between two distinct nodes.
// Stored normalized with U < V.
type Edge struct {
	U, V int
}

// normalized returns the edge with endpoints ordered U < V.
func (e Edge) normalized() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}

	return e
}

// Graph is the mutable simulation state: a fixed topology plus a
// per-node Strategy slice. Topology is immutable after construction;
// only strategies change.
type Graph struct {
	adjacency  [][]int    // sorted neighbor lists, index = node id
	edges      []Edge     // normalized, sorted by (U,V)
	strategies []Strategy // index = node id
}
