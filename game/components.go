package game

import "sort"

// ConnectedComponents returns the connected components of the topology,
// each as a sorted slice of node ids, ordered by their smallest member.
// Strategies are ignored; this is a pure topology query.
//
// Used by the sweep diagnostics: a disconnected topology (in particular
// an isolated node) can never carry a strictly minimal cooperator cover.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.strategies))
	var comps [][]int

	for start := range g.strategies {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.adjacency[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
