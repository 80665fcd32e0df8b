package engine

import (
	"slices"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/depgraph"
	"github.com/sirkon/sortful/internal/element"
)

type orderer struct {
	groups config.Groups
	cmps   *comparators
}

// partitionOrder is the ordering state of one partition.
type partitionOrder struct {
	part []*element.Element

	// movers are non-disabled elements in original order, graph nodes are their indices.
	movers  []*element.Element
	graph   *depgraph.Graph
	dropped []depgraph.Edge

	// free is the order of movers without dependency constraints.
	free   []*element.Element
	target []*element.Element
}

func (o *orderer) order(part []*element.Element) *partitionOrder {
	po := &partitionOrder{part: part}
	for _, e := range part {
		if !e.IsDisabled {
			po.movers = append(po.movers, e)
		}
	}

	po.free = o.sortByGroups(po.movers)

	index := make(map[*element.Element]int, len(po.movers))
	for i, e := range po.movers {
		index[e] = i
	}
	priority := make([]int, len(po.free))
	for i, e := range po.free {
		priority[i] = index[e]
	}

	po.graph = depgraph.Build(po.movers)
	resolved, dropped := po.graph.Resolve(priority)
	po.dropped = dropped

	ordered := make([]*element.Element, len(resolved))
	for i, idx := range resolved {
		ordered[i] = po.movers[idx]
	}

	po.target = make([]*element.Element, 0, len(part))
	next := 0
	for _, e := range part {
		if e.IsDisabled {
			po.target = append(po.target, e)
			continue
		}

		po.target = append(po.target, ordered[next])
		next++
	}

	return po
}

// sortByGroups buckets elements by group rank, sorts every bucket stably and concatenates buckets
// in the declared order.
func (o *orderer) sortByGroups(elements []*element.Element) []*element.Element {
	buckets := map[int][]*element.Element{}
	for _, e := range elements {
		r := o.rank(e.Group)
		buckets[r] = append(buckets[r], e)
	}

	ranks := make([]int, 0, len(buckets))
	for r := range buckets {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)

	res := make([]*element.Element, 0, len(elements))
	for _, r := range ranks {
		bucket := buckets[r]
		slices.SortStableFunc(bucket, o.cmps.compare)
		res = append(res, bucket...)
	}

	return res
}

// rank of a group. Groups which are not listed, "unknown" included, go after all listed ones.
func (o *orderer) rank(group string) int {
	if r, ok := o.groups.Rank(group); ok {
		return r
	}

	return o.groups.Len()
}
