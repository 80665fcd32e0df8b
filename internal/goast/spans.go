package goast

import (
	"github.com/sirkon/rbtree"
)

// spanIndex finds the element covering an offset. Element spans never overlap.
type spanIndex struct {
	tree *rbtree.Tree[*indexSpan]
}

// indexSpan stores a [start, end) span of the element with the given index.
type indexSpan struct {
	start int
	end   int
	index int
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
//   - return -1 if this span is strictly before other;
//   - return  1 if this span is strictly after other;
//   - return  0 if spans overlap in any way.
func (n *indexSpan) Cmp(other *indexSpan) int {
	if n.end <= other.start {
		return -1
	}
	if n.start >= other.end {
		return 1
	}
	return 0
}

func newSpanIndex() *spanIndex {
	return &spanIndex{tree: rbtree.New[*indexSpan]()}
}

// Add registers element span.
func (x *spanIndex) Add(start, end, index int) {
	x.tree.InsertReturn(&indexSpan{start: start, end: end, index: index})
}

// Find returns the index of the element covering offset, or -1.
func (x *spanIndex) Find(offset int) int {
	res := x.tree.Search(&indexSpan{start: offset, end: offset + 1})
	if res == nil {
		return -1
	}

	return res.index
}
