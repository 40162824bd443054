// Package dot renders a game.Graph as Graphviz DOT, the simulation's
// figure-export format: one filled circle per node, cooperators red,
// defectors blue, edges undirected.
//
// Output is deterministic (ascending node and edge order), so rendered
// figures are stable across runs with identical seeds and diff cleanly
// in golden tests. Pipe the result through `dot -Tpng` to get the image.
package dot
