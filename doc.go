// Package snowdrift simulates the multiplayer snowdrift game on small
// undirected graphs and checks whether best-response dynamics settle the
// cooperators into a minimal node cover.
//
// 🚀 What is snowdrift?
//
//	A small, deterministic simulation toolkit that brings together:
//		• game:     the graph model: nodes, undirected edges, per-node strategies
//		• payoff:   the pairwise snowdrift payoff, summed over a node's neighbors
//		• dynamics: the sequential best-response sweep until convergence
//		• cover:    the node-cover and minimality verdict on the cooperator set
//		• dot:      Graphviz export with cooperators red, defectors blue
//		• sweep:    parameter sweeps over the benefit-cost ratio r
//
// ✨ Why does it exist?
//
//   - For benefit-cost ratios r below 1/k_max (k_max = maximum degree),
//     the converged cooperator set is a minimal node cover of the graph.
//   - Above that threshold the guarantee breaks, and the sweep lets you
//     watch it break, one r value at a time.
//
// Everything is single-threaded and reproducible: randomness flows only
// through explicitly seeded *rand.Rand values, and node visitation order
// is always ascending id.
//
// Quick ASCII example (the default 10-node pentagonal prism):
//
//	    0───1        outer pentagon 0..4,
//	   /│   │\       inner pentagon 5..9,
//	  4 5───6 2      one spoke per outer node.
//	   \│   │/
//	    9───8───7
//
//	go get github.com/katalvlaran/snowdrift
package snowdrift
