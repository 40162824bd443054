package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// New constructs a Graph with n nodes (ids 0..n-1) and the given
// undirected edge list. All nodes start as Defector.
//
// Fails with ErrTooFewNodes if n < 1, ErrNodeOutOfRange if an edge
// references a nonexistent node, ErrSelfLoop on equal endpoints, and
// ErrDuplicateEdge if the same unordered pair appears twice.
//
// Complexity: O(n + E·log E).
func New(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewNodes)
	}

	g := &Graph{
		adjacency:  make([][]int, n),
		edges:      make([]Edge, 0, len(edges)),
		strategies: make([]Strategy, n),
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("New: edge (%d,%d): %w", e.U, e.V, ErrNodeOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("New: edge (%d,%d): %w", e.U, e.V, ErrSelfLoop)
		}
		ne := e.normalized()
		if _, dup := seen[ne]; dup {
			return nil, fmt.Errorf("New: edge (%d,%d): %w", e.U, e.V, ErrDuplicateEdge)
		}
		seen[ne] = struct{}{}

		g.edges = append(g.edges, ne)
		g.adjacency[ne.U] = append(g.adjacency[ne.U], ne.V)
		g.adjacency[ne.V] = append(g.adjacency[ne.V], ne.U)
	}

	// Deterministic enumeration: sorted edges and sorted neighbor lists.
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}

		return g.edges[i].V < g.edges[j].V
	})
	for id := range g.adjacency {
		sort.Ints(g.adjacency[id])
	}

	return g, nil
}

// NodeCount returns N, the number of nodes.
func (g *Graph) NodeCount() int { return len(g.strategies) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, len(g.strategies))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Edges returns a copy of the normalized edge list, sorted by (U,V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range ids simply report false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	i := sort.SearchInts(g.adjacency[u], v)

	return i < len(g.adjacency[u]) && g.adjacency[u][i] == v
}

// Neighbors returns a copy of id's neighbor list in ascending order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeOutOfRange)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.valid(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeOutOfRange)
	}

	return len(g.adjacency[id]), nil
}

// MaxDegree returns k_max, the maximum degree over all nodes.
func (g *Graph) MaxDegree() int {
	kMax := 0
	for _, nbrs := range g.adjacency {
		if len(nbrs) > kMax {
			kMax = len(nbrs)
		}
	}

	return kMax
}

// StrategyOf returns the current strategy of id.
func (g *Graph) StrategyOf(id int) (Strategy, error) {
	if !g.valid(id) {
		return Defector, fmt.Errorf("StrategyOf(%d): %w", id, ErrNodeOutOfRange)
	}

	return g.strategies[id], nil
}

// SetStrategy assigns s to id.
func (g *Graph) SetStrategy(id int, s Strategy) error {
	if !g.valid(id) {
		return fmt.Errorf("SetStrategy(%d): %w", id, ErrNodeOutOfRange)
	}
	g.strategies[id] = s

	return nil
}

// SetAll assigns s to every node.
func (g *Graph) SetAll(s Strategy) {
	for id := range g.strategies {
		g.strategies[id] = s
	}
}

// Cooperators returns the ids of all cooperating nodes in ascending order.
func (g *Graph) Cooperators() []int {
	var out []int
	for id, s := range g.strategies {
		if s == Cooperator {
			out = append(out, id)
		}
	}

	return out
}

// CooperatorCount returns the size of the cooperator set.
func (g *Graph) CooperatorCount() int {
	count := 0
	for _, s := range g.strategies {
		if s == Cooperator {
			count++
		}
	}

	return count
}

// RandomizeStrategies relabels every node uniformly at random using rng.
// The rng must be non-nil (ErrNilRand): seeding is the caller's choice,
// so identical seeds reproduce identical labelings.
func (g *Graph) RandomizeStrategies(rng *rand.Rand) error {
	if rng == nil {
		return fmt.Errorf("RandomizeStrategies: %w", ErrNilRand)
	}
	for id := range g.strategies {
		if rng.Intn(2) == 0 {
			g.strategies[id] = Defector
		} else {
			g.strategies[id] = Cooperator
		}
	}

	return nil
}

// Clone returns a deep copy: shared nothing, so per-r runs stay
// independent. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adjacency:  make([][]int, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
		strategies: make([]Strategy, len(g.strategies)),
	}
	for id, nbrs := range g.adjacency {
		clone.adjacency[id] = make([]int, len(nbrs))
		copy(clone.adjacency[id], nbrs)
	}
	copy(clone.edges, g.edges)
	copy(clone.strategies, g.strategies)

	return clone
}

// valid reports whether id names an existing node.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.strategies)
}
