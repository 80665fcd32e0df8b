package fix

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/sortful/internal/element"
)

var (
	// ErrConflict is returned when edits overlap.
	ErrConflict = errors.New("conflicting edits")

	// ErrMismatch is returned when the text under an edit differs from the expected one.
	ErrMismatch = errors.New("existing text does not match expected content")

	// ErrOutOfRange is returned for edits outside of the source.
	ErrOutOfRange = errors.New("edit span out of range")
)

// TextEdit replaces Span of the source with NewText. OldText is the replaced text, it is checked
// before applying when not empty.
type TextEdit struct {
	Span    element.Span
	NewText string
	OldText string
}

// Apply applies edits to a copy of src. Edits must not overlap.
func Apply(src []byte, edits []TextEdit) ([]byte, error) {
	if err := checkConflicts(edits); err != nil {
		return nil, err
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b TextEdit) int {
		if a.Span.Start == b.Span.Start {
			return b.Span.End - a.Span.End
		}
		return b.Span.Start - a.Span.Start
	})

	working := slices.Clone(src)
	for _, edit := range sorted {
		start, end := edit.Span.Start, edit.Span.End
		if start < 0 || end < start || end > len(working) {
			return nil, fmt.Errorf("apply [%d, %d): %w", start, end, ErrOutOfRange)
		}
		if edit.OldText != "" && string(working[start:end]) != edit.OldText {
			return nil, fmt.Errorf("apply [%d, %d): %w", start, end, ErrMismatch)
		}

		suffix := slices.Clone(working[end:])
		working = append(append(working[:start], edit.NewText...), suffix...)
	}

	return working, nil
}

// editSpan is a node of the edit span index.
type editSpan struct {
	span element.Span
}

// Cmp orders spans of the index and returns 0 for conflicting spans, so that an insertion of
// a conflicting span returns the span it conflicts with.
func (n *editSpan) Cmp(other *editSpan) int {
	if spansConflict(n.span, other.span) {
		return 0
	}

	if n.span.Start < other.span.Start || (n.span.Start == other.span.Start && n.span.End < other.span.End) {
		return -1
	}

	return 1
}

// spansConflict reports whether two spans overlap. Spans are half-open intervals. Two zero-length
// spans never conflict. A zero-length span conflicts with a non-zero one when it is within it.
func spansConflict(a, b element.Span) bool {
	switch {
	case a.Empty() && b.Empty():
		return false
	case a.Empty():
		return b.Start <= a.Start && a.Start < b.End
	case b.Empty():
		return a.Start <= b.Start && b.Start < a.End
	default:
		return a.Start < b.End && b.Start < a.End
	}
}

func checkConflicts(edits []TextEdit) error {
	tree := rbtree.New[*editSpan]()
	for _, e := range edits {
		n := &editSpan{span: e.Span}
		if r := tree.InsertReturn(n); r != n {
			return fmt.Errorf(
				"[%d, %d) and [%d, %d): %w",
				r.span.Start, r.span.End, e.Span.Start, e.Span.End, ErrConflict,
			)
		}
	}

	return nil
}
