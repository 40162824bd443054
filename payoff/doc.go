// Package payoff computes the snowdrift payoff a node would earn under
// either strategy, given its neighbors' current labels and the
// benefit-cost ratio r.
//
// The game on each edge is the standard two-player snowdrift matrix:
//
//	                 neighbor C     neighbor D
//	node Cooperator  1 - r/2        1 - r
//	node Defector    1              0
//
// A node plays the same strategy against every neighbor, so its total
// payoff is the matrix row summed over the neighborhood. With c
// cooperating and d defecting neighbors:
//
//	payoff(Cooperator) = c·(1 - r/2) + d·(1 - r)
//	payoff(Defector)   = c
//
// Compute is a pure function of (node, neighbor strategies, r); it never
// mutates the graph. The ratio r must lie strictly inside (0,1), the
// regime where clearing the drift is worth less than free-riding but
// more than a blocked road (ErrRatioOutOfRange otherwise).
package payoff
