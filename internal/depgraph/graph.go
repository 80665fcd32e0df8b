package depgraph

import (
	"github.com/sirkon/sortful/internal/element"
)

// Edge means From references To.
type Edge struct {
	From int
	To   int
}

// Graph is an adjacency list over element indices.
type Graph struct {
	nodes      []*element.Element
	deps       [][]int
	dependents [][]int

	// cut holds edges dropped by the last Resolve.
	cut map[Edge]struct{}
}

// Build creates a graph over the elements of one partition.
func Build(elements []*element.Element) *Graph {
	g := &Graph{
		nodes:      elements,
		deps:       make([][]int, len(elements)),
		dependents: make([][]int, len(elements)),
		cut:        map[Edge]struct{}{},
	}

	byName := map[string][]int{}
	for i, e := range elements {
		for _, name := range e.RefNames() {
			byName[name] = append(byName[name], i)
		}
	}

	for i, e := range elements {
		seen := map[int]struct{}{}
		for _, dep := range e.Dependencies {
			for _, j := range byName[dep] {
				if j == i {
					continue
				}
				if _, ok := seen[j]; ok {
					continue
				}

				seen[j] = struct{}{}
				g.deps[i] = append(g.deps[i], j)
				g.dependents[j] = append(g.dependents[j], i)
			}
		}
	}

	return g
}

// Dependents returns indices of elements referencing i. Edges dropped by Resolve are skipped.
func (g *Graph) Dependents(i int) []int {
	var res []int
	for _, d := range g.dependents[i] {
		if _, ok := g.cut[Edge{From: d, To: i}]; ok {
			continue
		}
		res = append(res, d)
	}

	return res
}
