package cover

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowdrift/game"
)

// ErrNilGraph indicates Verify was called without a graph.
var ErrNilGraph = errors.New("cover: graph must not be nil")

// Report is the verdict on the graph's cooperator set, with witnesses
// for each failed property.
type Report struct {
	// Covered reports whether every edge has a cooperating endpoint.
	Covered bool
	// Minimal reports whether every cooperator has a defecting neighbor.
	Minimal bool
	// Uncovered lists the edges with two defecting endpoints (sorted).
	Uncovered []game.Edge
	// Redundant lists cooperators removable without breaking the cover
	// property (ascending); isolated cooperators always appear here.
	Redundant []int
}

// IsMinimalCover reports the combined verdict.
func (r *Report) IsMinimalCover() bool { return r.Covered && r.Minimal }

// Verify inspects g's current strategy labels and returns the cover
// Report. Read-only: no mutation. Complexity: O(V + E).
func Verify(g *game.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	rep := &Report{Covered: true, Minimal: true}

	// Cover property: scan edges for defector-defector pairs.
	for _, e := range g.Edges() {
		su, err := g.StrategyOf(e.U)
		if err != nil {
			return nil, fmt.Errorf("cover: %w", err)
		}
		sv, err := g.StrategyOf(e.V)
		if err != nil {
			return nil, fmt.Errorf("cover: %w", err)
		}
		if su == game.Defector && sv == game.Defector {
			rep.Covered = false
			rep.Uncovered = append(rep.Uncovered, e)
		}
	}

	// Minimality: a cooperator with no defecting neighbor is the sole
	// cooperating endpoint of none of its edges, so it can be dropped.
	for _, c := range g.Cooperators() {
		nbrs, err := g.Neighbors(c)
		if err != nil {
			return nil, fmt.Errorf("cover: %w", err)
		}
		propped := false
		for _, nb := range nbrs {
			s, serr := g.StrategyOf(nb)
			if serr != nil {
				return nil, fmt.Errorf("cover: %w", serr)
			}
			if s == game.Defector {
				propped = true
				break
			}
		}
		if !propped {
			rep.Minimal = false
			rep.Redundant = append(rep.Redundant, c)
		}
	}

	return rep, nil
}
