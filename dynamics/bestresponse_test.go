package dynamics_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/snowdrift/cover"
	"github.com/katalvlaran/snowdrift/dynamics"
	"github.com/katalvlaran/snowdrift/game"
)

// BestResponseSuite exercises the sweep loop under the canonical
// scenarios and the headline convergence properties.
type BestResponseSuite struct {
	suite.Suite
}

// TestTwoNodeScenario is the concrete scenario: single edge (0,1), both
// defect, r=0.1. Node 0 flips to Cooperator on first visit (0.9 > 0);
// node 1 then free-rides (1 > 0.95) and stays Defector. One
// flip-producing pass, cooperator set {0}, a minimal cover of the edge.
func (s *BestResponseSuite) TestTwoNodeScenario() {
	g, err := game.New(2, []game.Edge{{U: 0, V: 1}})
	require.NoError(s.T(), err)

	var flips [][3]int // pass, node, 1 if flipped to Cooperator
	hook := func(pass, node int, _, to game.Strategy) {
		mark := 0
		if to == game.Cooperator {
			mark = 1
		}
		flips = append(flips, [3]int{pass, node, mark})
	}

	res, err := dynamics.Run(g, 0.1, dynamics.WithFlipHook(hook))
	require.NoError(s.T(), err)
	require.Equal(s.T(), dynamics.Converged, res.State)
	require.Equal(s.T(), 1, res.Passes)
	require.Equal(s.T(), 1, res.Flips)
	require.Equal(s.T(), []int{0}, g.Cooperators())
	require.Equal(s.T(), [][3]int{{1, 0, 1}}, flips)

	rep, err := cover.Verify(g)
	require.NoError(s.T(), err)
	require.True(s.T(), rep.IsMinimalCover())
}

// TestPrismFromAllDefectors traces the pentagonal prism from the
// all-defector labeling at r=0.1: pass 1 recruits nodes 0..8, pass 2
// prunes 0, 2 and 6, pass 3 confirms the fixed point.
func (s *BestResponseSuite) TestPrismFromAllDefectors() {
	g := game.NewPrism()

	res, err := dynamics.Run(g, 0.1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dynamics.Converged, res.State)
	require.Equal(s.T(), 2, res.Passes)
	require.Equal(s.T(), []int{1, 3, 4, 5, 7, 8}, g.Cooperators())

	rep, err := cover.Verify(g)
	require.NoError(s.T(), err)
	require.True(s.T(), rep.IsMinimalCover())
}

// TestIdempotenceAtFixedPoint re-runs a converged configuration and
// expects zero flips.
func (s *BestResponseSuite) TestIdempotenceAtFixedPoint() {
	g := game.NewPrism()
	_, err := dynamics.Run(g, 0.1)
	require.NoError(s.T(), err)
	before := g.Cooperators()

	res, err := dynamics.Run(g, 0.1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dynamics.Converged, res.State)
	require.Zero(s.T(), res.Passes)
	require.Zero(s.T(), res.Flips)
	require.Equal(s.T(), before, g.Cooperators())
}

// TestDeterminism runs the same (graph, labeling, r) twice and expects
// identical final configurations.
func (s *BestResponseSuite) TestDeterminism() {
	run := func() []int {
		g := game.NewPrism()
		require.NoError(s.T(), g.RandomizeStrategies(rand.New(rand.NewSource(99))))
		_, err := dynamics.Run(g, 0.05)
		require.NoError(s.T(), err)

		return g.Cooperators()
	}

	require.Equal(s.T(), run(), run())
}

// TestMaxPassesReached lowers the pass budget below what the prism
// needs from all-defectors, forcing the non-converged terminal state.
func (s *BestResponseSuite) TestMaxPassesReached() {
	g := game.NewPrism()

	res, err := dynamics.Run(g, 0.1, dynamics.WithMaxPasses(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), dynamics.MaxPassesReached, res.State)
	require.Equal(s.T(), 1, res.Passes)
}

// TestMinimalCoverBelowThreshold checks the headline property: for
// r < 1/k_max (prism: 1/3), every converged cooperator set is a minimal
// node cover, across ratios and random initial labelings.
func (s *BestResponseSuite) TestMinimalCoverBelowThreshold() {
	for _, r := range []float64{0.01, 0.05, 0.1, 0.3} {
		for seed := int64(1); seed <= 10; seed++ {
			g := game.NewPrism()
			require.NoError(s.T(), g.RandomizeStrategies(rand.New(rand.NewSource(seed))))

			res, err := dynamics.Run(g, r)
			require.NoError(s.T(), err)
			require.Equal(s.T(), dynamics.Converged, res.State, "r=%v seed=%d", r, seed)

			rep, err := cover.Verify(g)
			require.NoError(s.T(), err)
			require.True(s.T(), rep.IsMinimalCover(),
				"r=%v seed=%d: cooperators %v, report %+v", r, seed, g.Cooperators(), rep)
		}
	}
}

// TestNonCoverAboveThreshold exhibits a fixed point above the threshold
// whose cooperator set is not a cover. Two adjacent hubs each lean on
// two cooperators; every cooperator is propped up by a defecting leaf.
// At r=0.6 nobody wants to move, and the hub-hub edge stays uncovered.
func (s *BestResponseSuite) TestNonCoverAboveThreshold() {
	g, err := game.New(10, []game.Edge{
		{U: 0, V: 1},               // the uncovered hub-hub edge
		{U: 0, V: 2}, {U: 0, V: 3}, // hub 0's cooperators
		{U: 1, V: 4}, {U: 1, V: 5}, // hub 1's cooperators
		{U: 2, V: 6}, {U: 3, V: 7}, // defecting leaves propping the cooperators
		{U: 4, V: 8}, {U: 5, V: 9},
	})
	require.NoError(s.T(), err)
	for _, c := range []int{2, 3, 4, 5} {
		require.NoError(s.T(), g.SetStrategy(c, game.Cooperator))
	}
	require.Greater(s.T(), 0.6, 1.0/float64(g.MaxDegree())) // r above 1/k_max

	res, err := dynamics.Run(g, 0.6)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dynamics.Converged, res.State)
	require.Zero(s.T(), res.Passes) // already a fixed point

	rep, err := cover.Verify(g)
	require.NoError(s.T(), err)
	require.False(s.T(), rep.Covered)
	require.Equal(s.T(), []game.Edge{{U: 0, V: 1}}, rep.Uncovered)
}

// TestErrors covers the failure contract.
func (s *BestResponseSuite) TestErrors() {
	_, err := dynamics.Run(nil, 0.1)
	require.ErrorIs(s.T(), err, dynamics.ErrNilGraph)

	g := game.NewPrism()
	_, err = dynamics.Run(g, 1.5)
	require.Error(s.T(), err)
	require.Zero(s.T(), g.CooperatorCount(), "invalid r must leave the graph untouched")

	_, err = dynamics.Run(g, 0.1, dynamics.WithMaxPasses(0))
	require.ErrorIs(s.T(), err, dynamics.ErrOptionViolation)

	_, err = dynamics.Run(g, 0.1, dynamics.WithFlipHook(nil))
	require.ErrorIs(s.T(), err, dynamics.ErrOptionViolation)
}

func TestBestResponseSuite(t *testing.T) {
	suite.Run(t, new(BestResponseSuite))
}
