// Package engine computes the canonical order of a sortable element sequence.
//
// ComputeOrder resolves groups, splits the sequence into partitions, sorts every partition's
// groups with their comparators, applies dependency constraints, pins disabled elements and
// reports order and spacing violations. The engine keeps no state between calls and may be used
// concurrently on disjoint element sequences.
package engine

import (
	"fmt"

	"github.com/sirkon/sortful/internal/compare"
	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/fix"
	"github.com/sirkon/sortful/internal/groups"
	"github.com/sirkon/sortful/internal/partition"
	"github.com/sirkon/sortful/internal/report"
	"github.com/sirkon/sortful/internal/spacing"
)

// Result of ordering.
type Result struct {
	Original    []*element.Element
	Target      []*element.Element
	Diagnostics []report.Report

	// Dropped lists dependency edges given up to break cycles.
	Dropped []Dependency

	Spacing *spacing.Enforcer
}

// Dependency is a reference from one element to another.
type Dependency struct {
	From *element.Element
	To   *element.Element
}

// ComputeOrder validates options and computes the target order of elements.
//
// Intake mutates elements: OriginalIndex is set to the position in the input slice, Group and
// PartitionID are resolved and partition boundary comments are flagged.
func ComputeOrder(elements []*element.Element, opts config.Options) (*Result, error) {
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	resolver, err := groups.New(opts.Groups, opts.CustomGroups)
	if err != nil {
		return nil, fmt.Errorf("setup group resolver: %w", err)
	}

	parter, err := partition.New(&opts)
	if err != nil {
		return nil, fmt.Errorf("setup partitioner: %w", err)
	}

	cmps, err := newComparators(&opts)
	if err != nil {
		return nil, fmt.Errorf("setup comparators: %w", err)
	}

	for i, e := range elements {
		e.OriginalIndex = i
	}
	resolver.Assign(elements)
	parter.Assign(elements)

	o := &orderer{
		groups: opts.Groups,
		cmps:   cmps,
	}
	res := &Result{
		Original: elements,
		Target:   make([]*element.Element, 0, len(elements)),
		Spacing:  spacing.New(&opts),
	}

	var rep report.Reporter
	for _, part := range partition.Split(elements) {
		po := o.order(part)
		res.Target = append(res.Target, po.target...)
		for _, e := range po.dropped {
			res.Dropped = append(res.Dropped, Dependency{From: po.movers[e.From], To: po.movers[e.To]})
		}

		o.diagnose(&rep, po, res.Spacing)
	}
	res.Diagnostics = rep.Reports()

	return res, nil
}

// Changed checks if the target order differs from the original one.
func (r *Result) Changed() bool {
	for i := range r.Original {
		if r.Original[i] != r.Target[i] {
			return true
		}
	}

	return false
}

// Permutation returns original indices of target elements.
func (r *Result) Permutation() []int {
	res := make([]int, len(r.Target))
	for i, e := range r.Target {
		res[i] = e.OriginalIndex
	}

	return res
}

// Fixed returns copies of target elements as they look after the fix is applied: blank lines
// before every element are the enforced ones or those of the slot it takes, and partition
// boundary comments stay with their slot.
func (r *Result) Fixed() []*element.Element {
	res := make([]*element.Element, len(r.Target))
	for i, e := range r.Target {
		slot := r.Original[i]

		c := *e
		c.LeadingComments = append(boundaryComments(slot), e.MovableComments()...)
		c.BlankLinesBefore = slot.BlankLinesBefore
		if i > 0 && r.Target[i-1].PartitionID == e.PartitionID {
			if n, ok := r.Spacing.Required(r.Target[i-1].Group, e.Group); ok {
				c.BlankLinesBefore = n
			}
		}

		res[i] = &c
	}

	return res
}

// Fix synthesizes text edits turning src into the target layout.
func (r *Result) Fix(src []byte) ([]fix.TextEdit, error) {
	return fix.Synthesize(src, r.Original, r.Target, r.Spacing)
}

func boundaryComments(e *element.Element) []element.Comment {
	movable := len(e.MovableComments())
	return append([]element.Comment(nil), e.LeadingComments[:len(e.LeadingComments)-movable]...)
}

// comparators holds the default comparator and custom group overrides.
type comparators struct {
	def     compare.Comparator
	byGroup map[string]compare.Comparator
}

func newComparators(o *config.Options) (*comparators, error) {
	base := compare.FromOptions(o)
	def, err := compare.New(base)
	if err != nil {
		return nil, err
	}

	res := &comparators{
		def:     def,
		byGroup: map[string]compare.Comparator{},
	}
	for _, item := range o.Groups {
		for _, name := range item.Names {
			cg, ok := o.CustomGroupByName(name)
			if !ok {
				continue
			}

			cmp, err := compare.New(base.WithGroupOverride(cg))
			if err != nil {
				return nil, fmt.Errorf("custom group %q: %w", name, err)
			}
			res.byGroup[name] = cmp
		}
	}

	return res, nil
}

func (c *comparators) compare(a, b *element.Element) int {
	if a.Group == b.Group {
		if cmp, ok := c.byGroup[a.Group]; ok {
			return cmp(a, b)
		}
	}

	return c.def(a, b)
}
