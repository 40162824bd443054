// Package game provides the in-memory graph model for the snowdrift
// simulation: a fixed set of integer nodes 0..N-1, undirected simple
// edges, and a mutable per-node Strategy label (Cooperator or Defector).
//
// The model is deliberately small and deterministic:
//
//   - Node enumeration is always ascending id; neighbor lists are sorted.
//   - Edges are normalized (U < V), with no self-loops and no duplicates.
//   - Randomness never comes from package-level state: stochastic
//     constructors and RandomizeStrategies take an explicit *rand.Rand.
//   - No internal locking: a single actor mutates labels (the
//     best-response iterator), per the simulation's concurrency model.
//
// Topologies:
//
//	NewPrism()              // the canonical 10-node pentagonal prism, k_max = 3
//	NewRandom(n, p, rng)    // Erdős–Rényi G(n,p) with a stable trial order
//	New(n, edges)           // any explicit edge list
//
// Errors:
//
//	ErrTooFewNodes           - n < 1.
//	ErrNodeOutOfRange        - a node id outside 0..N-1.
//	ErrSelfLoop              - an edge with equal endpoints.
//	ErrDuplicateEdge         - the same undirected edge listed twice.
//	ErrProbabilityOutOfRange - p outside [0,1] for NewRandom.
//	ErrNilRand               - a stochastic operation without an RNG.
package game
