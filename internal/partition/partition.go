// Package partition splits an element sequence into independent ordering partitions at blank
// lines or at boundary comments.
package partition

import (
	"fmt"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/pattern"
)

// Partitioner assigns partition ids.
type Partitioner struct {
	byNewLine bool
	block     filter
	line      filter
}

type filter struct {
	all      bool
	patterns *pattern.Set
}

func (f filter) match(text string) bool {
	return f.all || f.patterns.Match(text)
}

// New creates a partitioner from options.
func New(o *config.Options) (*Partitioner, error) {
	p := &Partitioner{byNewLine: o.IsPartitionByNewLine()}
	if !o.PartitionByComment.Enabled() {
		return p, nil
	}

	var err error
	p.block, err = newFilter(o.PartitionByComment.Block)
	if err != nil {
		return nil, fmt.Errorf("block comments: %w", err)
	}
	p.line, err = newFilter(o.PartitionByComment.Line)
	if err != nil {
		return nil, fmt.Errorf("line comments: %w", err)
	}

	return p, nil
}

func newFilter(f config.CommentFilter) (filter, error) {
	set, err := pattern.CompileList(f.Patterns)
	if err != nil {
		return filter{}, err
	}

	return filter{all: f.All, patterns: set}, nil
}

// Assign walks elements in original order, sets PartitionID of each of them and flags boundary
// comments. It returns the number of partitions.
func (p *Partitioner) Assign(elements []*element.Element) int {
	if len(elements) == 0 {
		return 0
	}

	id := 0
	for i, e := range elements {
		split := p.markBoundaries(e)
		if i > 0 && (split || (p.byNewLine && e.BlankLinesBefore > 0)) {
			id++
		}

		e.PartitionID = id
	}

	return id + 1
}

// markBoundaries flags leading comments opening a partition. Comments of the first element are
// flagged too: they must stay in front of the list.
func (p *Partitioner) markBoundaries(e *element.Element) bool {
	var res bool
	for i := range e.LeadingComments {
		c := &e.LeadingComments[i]
		if p.isBoundary(*c) {
			c.Boundary = true
			res = true
		}
	}

	return res
}

func (p *Partitioner) isBoundary(c element.Comment) bool {
	if c.Block {
		return p.block.match(c.Content())
	}

	return p.line.match(c.Content())
}

// Split groups elements by partition keeping the original order inside each of them.
func Split(elements []*element.Element) [][]*element.Element {
	var res [][]*element.Element
	for i, e := range elements {
		if i == 0 || e.PartitionID != elements[i-1].PartitionID {
			res = append(res, nil)
		}
		res[len(res)-1] = append(res[len(res)-1], e)
	}

	return res
}
