// Package cover verifies whether the current cooperator set of a graph
// is a node cover, and whether that cover is minimal.
//
// Definitions (on the undirected simple graph of package game):
//
//   - Cover: every edge has at least one cooperating endpoint.
//   - Minimal: no proper subset of the cooperator set is still a cover.
//     Equivalently, every cooperator is the sole cooperating endpoint of
//     at least one of its edges, i.e. has at least one defecting
//     neighbor. An isolated cooperator covers nothing and is therefore
//     always redundant.
//
// Minimal is distinct from minimum: a minimal cover admits no removable
// node, a minimum cover has the smallest possible cardinality. This
// package checks minimality only.
//
// Verify is read-only and returns a Report with per-property diagnostics
// (the uncovered edges, the redundant cooperators), so a failed verdict
// names its witnesses.
package cover
