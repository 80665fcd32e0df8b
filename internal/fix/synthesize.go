// Package fix synthesizes and applies text edits realizing a target element order.
//
// Every element owns its slot in the source: the movable range (leading comments and the element
// itself) and the tail (separator, trailing same-line comment, whitespace up to the next element).
// Elements are moved by rewriting the movable ranges of the slots they land in. Tails stay with
// slots except trailing comments which travel with their elements, and blank line runs which are
// adjusted to the required spacing. Slots whose element and tail do not change are not touched,
// so the fix of an already ordered sequence is empty.
package fix

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirkon/sortful/internal/element"
)

// ErrUnsafeLayout is returned when the target order cannot be laid out without changing code
// semantics, e.g. a line comment would have to be put in front of another element on its line.
var ErrUnsafeLayout = errors.New("unsafe layout")

// Spacer tells how many blank lines must separate adjacent elements of the given groups.
type Spacer interface {
	Required(left, right string) (int, bool)
}

// Synthesize computes edits turning the original order into the target order.
func Synthesize(src []byte, original, target []*element.Element, spacer Spacer) ([]TextEdit, error) {
	if err := checkPermutation(original, target); err != nil {
		return nil, err
	}

	var edits []TextEdit
	for i, orig := range original {
		tgt := target[i]

		if orig != tgt {
			from := span(orig.MovableStart(), orig.Span.End)
			to := span(tgt.MovableStart(), tgt.Span.End)
			edits = append(edits, TextEdit{
				Span:    from,
				NewText: text(src, to),
				OldText: text(src, from),
			})
		}

		edit, ok, err := tailEdit(src, original, target, i, spacer)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", tgt.Name, err)
		}
		if ok {
			edits = append(edits, edit)
		}
	}

	if err := checkConflicts(edits); err != nil {
		return nil, err
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Span.Start < edits[j].Span.Start
	})

	return edits, nil
}

func checkPermutation(original, target []*element.Element) error {
	if len(original) != len(target) {
		return fmt.Errorf("target has %d elements, original has %d", len(target), len(original))
	}

	count := make(map[*element.Element]int, len(original))
	for _, e := range original {
		count[e]++
	}
	for _, e := range target {
		count[e]--
	}
	for e, c := range count {
		if c != 0 {
			return fmt.Errorf("target is not a permutation of original: element %q", e.Name)
		}
	}

	return nil
}

// tailEdit rewrites the tail of slot i when its trailing comment or blank lines change.
func tailEdit(src []byte, original, target []*element.Element, i int, spacer Spacer) (TextEdit, bool, error) {
	orig, tgt := original[i], target[i]

	var next *element.Element
	if i+1 < len(original) && original[i+1].PartitionID == orig.PartitionID {
		next = original[i+1]
	}

	region := tailSpan(src, orig, next)
	old := text(src, region)

	t := parseTail(src, region, orig)
	res := t.separator
	if tgt.TrailingComment != nil {
		ws := t.commentSpace
		if ws == "" {
			ws = " "
		}
		res += ws + tgt.TrailingComment.Text
	}

	rest := t.rest
	if next != nil && target[i+1].PartitionID == tgt.PartitionID {
		if n, ok := spacer.Required(tgt.Group, target[i+1].Group); ok {
			rest = adjustBlankLines(rest, n)
		}
	}

	if tgt.TrailingComment != nil && !tgt.TrailingComment.Block && !strings.Contains(rest, "\n") {
		if next != nil || !restOfLineBlank(src, region.End) {
			return TextEdit{}, false, ErrUnsafeLayout
		}
	}

	res += rest
	if res == old {
		return TextEdit{}, false, nil
	}

	return TextEdit{Span: region, NewText: res, OldText: old}, true, nil
}

// tailSpan returns the tail region of a slot: up to the next element of the partition, or up to
// the end of the trailing comment or separator for the last one.
func tailSpan(src []byte, orig, next *element.Element) element.Span {
	if next != nil {
		return span(orig.Span.End, next.MovableStart())
	}

	end := orig.Span.End
	if orig.TrailingComment != nil {
		end = orig.TrailingComment.Span.End
	} else {
		p := skipHorizontalSpace(src, end)
		if p < len(src) && isSeparator(src[p]) {
			end = p + 1
		}
	}

	return span(orig.Span.End, end)
}

type tail struct {
	separator    string
	commentSpace string
	rest         string
}

func parseTail(src []byte, region element.Span, orig *element.Element) tail {
	p := skipHorizontalSpace(src, region.Start)
	sepEnd := region.Start
	if p < region.End && isSeparator(src[p]) {
		sepEnd = p + 1
	}

	t := tail{separator: string(src[region.Start:sepEnd])}
	if c := orig.TrailingComment; c != nil && c.Span.Start >= sepEnd && c.Span.End <= region.End {
		t.commentSpace = string(src[sepEnd:c.Span.Start])
		t.rest = string(src[c.Span.End:region.End])
		return t
	}

	t.rest = string(src[sepEnd:region.End])
	return t
}

// adjustBlankLines sets the number of blank lines of a whitespace run. Runs without line breaks
// and runs containing anything but whitespace are kept intact.
func adjustBlankLines(rest string, n int) string {
	if strings.TrimSpace(rest) != "" {
		return rest
	}

	nl := strings.Count(rest, "\n")
	if nl == 0 || nl-1 == n {
		return rest
	}

	indent := rest[strings.LastIndexByte(rest, '\n')+1:]
	return strings.Repeat("\n", n+1) + indent
}

func restOfLineBlank(src []byte, pos int) bool {
	for ; pos < len(src); pos++ {
		switch src[pos] {
		case '\n':
			return true
		case ' ', '\t', '\r':
		default:
			return false
		}
	}

	return true
}

func skipHorizontalSpace(src []byte, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}

	return pos
}

func isSeparator(c byte) bool {
	return c == ',' || c == ';'
}

func span(start, end int) element.Span {
	return element.Span{Start: start, End: end}
}

func text(src []byte, s element.Span) string {
	return string(src[s.Start:s.End])
}
