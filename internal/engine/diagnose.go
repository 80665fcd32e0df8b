package engine

import (
	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/report"
	"github.com/sirkon/sortful/internal/sortrules"
	"github.com/sirkon/sortful/internal/spacing"
)

// diagnose reports violations for every adjacent pair of the partition's original order.
func (o *orderer) diagnose(rep *report.Reporter, po *partitionOrder, enforcer *spacing.Enforcer) {
	targetPos := make(map[*element.Element]int, len(po.target))
	for i, e := range po.target {
		targetPos[e] = i
	}
	freePos := make(map[*element.Element]int, len(po.free))
	for i, e := range po.free {
		freePos[e] = i
	}
	moverIndex := make(map[*element.Element]int, len(po.movers))
	for i, e := range po.movers {
		moverIndex[e] = i
	}

	order := rep.Phase(report.ReportOrder)
	spaces := rep.Phase(report.ReportSpacing)
	for i := 1; i < len(po.part); i++ {
		left, right := po.part[i-1], po.part[i]

		if targetPos[left] > targetPos[right] {
			switch dep := po.dependentOf(right, moverIndex, freePos, targetPos); {
			case dep != nil:
				order.Report(sortrules.DependencyOrder(), right, dep, "")
			case o.rank(left.Group) != o.rank(right.Group):
				order.Report(sortrules.GroupOrder(), left, right, "")
			default:
				order.Report(sortrules.Order(), left, right, "")
			}
		}

		if rule, bad := enforcer.Check(left.Group, right.Group, right.BlankLinesBefore); bad {
			spaces.Report(rule, left, right, "")
		}
	}
}

// dependentOf returns the first element, in original order, which references e and would have
// gone before e if not for the reference.
func (po *partitionOrder) dependentOf(
	e *element.Element,
	moverIndex map[*element.Element]int,
	freePos map[*element.Element]int,
	targetPos map[*element.Element]int,
) *element.Element {
	idx, ok := moverIndex[e]
	if !ok {
		return nil
	}

	var res *element.Element
	for _, d := range po.graph.Dependents(idx) {
		dep := po.movers[d]
		if targetPos[dep] < targetPos[e] {
			continue
		}
		if dep.OriginalIndex > e.OriginalIndex && freePos[dep] > freePos[e] {
			continue
		}

		if res == nil || dep.OriginalIndex < res.OriginalIndex {
			res = dep
		}
	}

	return res
}
