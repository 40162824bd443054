package dynamics

import (
	"fmt"

	"github.com/katalvlaran/snowdrift/game"
	"github.com/katalvlaran/snowdrift/payoff"
)

// Run drives g to a best-response fixed point under ratio r and returns
// the terminal Result. The graph's strategy labels are mutated in place;
// the topology is untouched.
//
// Update rule (per pass, nodes in ascending id order): compute the
// payoff pair for the node against current neighbor labels; flip iff the
// non-current strategy pays strictly more. No node is ever skipped
// within a pass.
//
// Termination: Converged after a zero-flip pass, or MaxPassesReached
// after the pass budget is spent on flip-producing passes. The loop can
// not end any other way.
//
// Errors: ErrNilGraph, ErrOptionViolation, and payoff.ErrRatioOutOfRange
// (validated up front, before any mutation). Complexity: O(passes·(V+E)).
func Run(g *game.Graph, r float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("dynamics: %w", o.err)
	}

	// Fail before the first pass so an invalid r leaves g untouched.
	if err := payoff.ValidateRatio(r); err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}

	res := &Result{State: Running}
	n := g.NodeCount()

	for res.State == Running {
		pass := res.Passes + 1 // 1-based number of the pass now running
		flips := 0

		for node := 0; node < n; node++ {
			p, err := payoff.Compute(g, node, r)
			if err != nil {
				return nil, fmt.Errorf("dynamics: node %d: %w", node, err)
			}

			current, err := g.StrategyOf(node)
			if err != nil {
				return nil, fmt.Errorf("dynamics: node %d: %w", node, err)
			}

			currentPay, alternativePay := p.Defector, p.Cooperator
			if current == game.Cooperator {
				currentPay, alternativePay = p.Cooperator, p.Defector
			}

			// Strict improvement only; ties keep the current strategy.
			if alternativePay > currentPay {
				next := current.Other()
				if err = g.SetStrategy(node, next); err != nil {
					return nil, fmt.Errorf("dynamics: node %d: %w", node, err)
				}
				flips++
				if o.onFlip != nil {
					o.onFlip(pass, node, current, next)
				}
			}
		}

		switch {
		case flips == 0:
			res.State = Converged
		default:
			res.Passes++
			res.Flips += flips
			if res.Passes >= o.maxPasses {
				res.State = MaxPassesReached
			}
		}
	}

	return res, nil
}
