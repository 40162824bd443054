package payoff

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowdrift/game"
)

// ErrRatioOutOfRange is returned when the benefit-cost ratio r lies
// outside the open interval (0,1).
var ErrRatioOutOfRange = errors.New("payoff: ratio must lie in (0,1)")

// Ratio domain bounds (open interval).
const (
	ratioMin = 0.0
	ratioMax = 1.0
)

// Pair holds the payoff node n would earn under each candidate strategy
// given the current strategies of its neighbors.
type Pair struct {
	Cooperator float64
	Defector   float64
}

// ValidateRatio reports whether r lies strictly inside (0,1).
// Exported so callers can fail an entire run before iterating.
func ValidateRatio(r float64) error {
	if r <= ratioMin || r >= ratioMax {
		return fmt.Errorf("r=%v: %w", r, ErrRatioOutOfRange)
	}

	return nil
}

// Compute returns the payoff pair for node under the current neighbor
// configuration of g. Pure: no mutation, no randomness.
//
// With c cooperating and d defecting neighbors:
//
//	Cooperator = c·(1 - r/2) + d·(1 - r)
//	Defector   = c
//
// An isolated node earns 0 either way (and therefore never flips: ties
// do not trigger strategy changes in the best-response dynamic).
//
// Fails with ErrRatioOutOfRange for r outside (0,1) and propagates
// game.ErrNodeOutOfRange for an unknown node. Complexity: O(deg(node)).
func Compute(g *game.Graph, node int, r float64) (Pair, error) {
	if err := ValidateRatio(r); err != nil {
		return Pair{}, fmt.Errorf("Compute(%d): %w", node, err)
	}

	nbrs, err := g.Neighbors(node)
	if err != nil {
		return Pair{}, fmt.Errorf("Compute: %w", err)
	}

	// Count the neighborhood once; both rows reuse the counts.
	var cooperators, defectors float64
	for _, nb := range nbrs {
		s, serr := g.StrategyOf(nb)
		if serr != nil {
			return Pair{}, fmt.Errorf("Compute: %w", serr)
		}
		if s == game.Cooperator {
			cooperators++
		} else {
			defectors++
		}
	}

	// Per-edge matrix rows, summed over the neighborhood.
	mutual := 1 - r/2  // both cooperate: shared clearing cost
	carried := 1 - r   // cooperate alone against a defector
	freeRide := 1.0    // defect against a cooperator
	// defect against a defector pays 0 and needs no term.

	return Pair{
		Cooperator: cooperators*mutual + defectors*carried,
		Defector:   cooperators * freeRide,
	}, nil
}
