// Package dynamics runs the sequential best-response sweep of the
// snowdrift game until the strategy configuration stops changing.
//
// One pass visits every node in ascending id order. For each node the
// payoff of both candidate strategies is computed against the *current*
// neighbor labels; a flip applied earlier in the same pass is already
// visible to later nodes (asynchronous update, not simultaneous). A node
// flips only when the alternative strategy pays strictly more; ties
// never flip, which makes the fixed-point test deterministic.
//
// The loop has exactly two terminal states:
//
//	Converged        - a full pass produced zero flips.
//	MaxPassesReached - the pass budget (default 100) was exhausted while
//	                   flips were still occurring. Not an error: callers
//	                   report it as a distinct "did not converge" verdict.
//
// Result.Passes counts only passes that changed at least one strategy;
// the final zero-flip pass is the convergence witness and is not
// counted. Given identical (graph, labeling, r), two runs produce
// identical final configurations.
package dynamics
