package depgraph

import (
	"slices"
)

const (
	white = iota
	gray
	black
)

// Resolve returns an order of all nodes where dependencies precede their dependents.
//
// The priority sequence lists every node once and is the order to keep as long as the
// constraints allow: a node is emitted at its priority position unless some node before it
// references it, in which case it is pulled right in front of the first such node.
//
// A cycle is broken at the first edge seen on it: when the walk is about to pull a dependency
// which leads back to the node being walked, the edge to that dependency is dropped instead.
// The node entered first, the one of the highest priority, thus keeps its place. Dropped edges
// are returned.
func (g *Graph) Resolve(priority []int) (order []int, dropped []Edge) {
	rank := make([]int, len(g.nodes))
	for pos, i := range priority {
		rank[i] = pos
	}

	color := make([]int, len(g.nodes))
	g.cut = map[Edge]struct{}{}
	order = make([]int, 0, len(g.nodes))

	var visit func(i int)
	visit = func(i int) {
		color[i] = gray

		deps := slices.Clone(g.deps[i])
		slices.SortFunc(deps, func(a, b int) int {
			return rank[a] - rank[b]
		})
		for _, d := range deps {
			if color[d] != white {
				continue
			}

			if g.reaches(d, i, color) {
				e := Edge{From: i, To: d}
				g.cut[e] = struct{}{}
				dropped = append(dropped, e)
				continue
			}

			visit(d)
		}

		color[i] = black
		order = append(order, i)
	}

	for _, i := range priority {
		if color[i] == white {
			visit(i)
		}
	}

	return order, dropped
}

// reaches checks if there is a path from a to b over nodes not emitted yet and edges not cut.
func (g *Graph) reaches(a, b int, color []int) bool {
	seen := make([]bool, len(g.nodes))
	seen[a] = true
	stack := []int{a}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range g.deps[cur] {
			if _, ok := g.cut[Edge{From: cur, To: d}]; ok {
				continue
			}
			if d == b {
				return true
			}
			if seen[d] || color[d] == black {
				continue
			}

			seen[d] = true
			stack = append(stack, d)
		}
	}

	return false
}
