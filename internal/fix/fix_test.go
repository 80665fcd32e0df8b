package fix

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirkon/sortful/internal/element"
)

// spacer requires the given number of blank lines between different groups.
type spacer int

func (s spacer) Required(left, right string) (int, bool) {
	if s < 0 || left == right {
		return 0, false
	}

	return int(s), true
}

func at(src, text, group string) *element.Element {
	i := strings.Index(src, text)
	if i < 0 {
		panic("no " + text + " in source")
	}

	return &element.Element{
		Name:  text,
		Group: group,
		Span:  element.Span{Start: i, End: i + len(text)},
	}
}

func trailing(src string, e *element.Element, text string) *element.Element {
	i := strings.Index(src[e.Span.End:], text) + e.Span.End
	e.TrailingComment = &element.Comment{
		Span:  element.Span{Start: i, End: i + len(text)},
		Text:  text,
		Block: strings.HasPrefix(text, "/*"),
	}

	return e
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		spacer   spacer
		build    func(src string) (original, target []*element.Element)
		expected string
	}{
		{
			name:   "swap",
			src:    "x = [\n\tc,\n\tb,\n\ta,\n]",
			spacer: -1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				c, b, a := at(src, "c", ""), at(src, "b", ""), at(src, "a,\n]", "")
				a.Span.End = a.Span.Start + 1
				return []*element.Element{c, b, a}, []*element.Element{a, b, c}
			},
			expected: "x = [\n\ta,\n\tb,\n\tc,\n]",
		},
		{
			name:   "trailing comments travel",
			src:    "[\n\tb, // bee\n\ta,\n]",
			spacer: -1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				b := trailing(src, at(src, "b", ""), "// bee")
				a := at(src, "a", "")
				return []*element.Element{b, a}, []*element.Element{a, b}
			},
			expected: "[\n\ta,\n\tb, // bee\n]",
		},
		{
			name:   "missed spacing",
			src:    "(\n\tx\n\ty\n)",
			spacer: 1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				x, y := at(src, "x", "a"), at(src, "y", "b")
				return []*element.Element{x, y}, []*element.Element{x, y}
			},
			expected: "(\n\tx\n\n\ty\n)",
		},
		{
			name:   "extra spacing",
			src:    "(\n\tx\n\n\n\ty\n)",
			spacer: 1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				x, y := at(src, "x", "a"), at(src, "y", "b")
				return []*element.Element{x, y}, []*element.Element{x, y}
			},
			expected: "(\n\tx\n\n\ty\n)",
		},
		{
			name:   "leading comments travel",
			src:    "(\n\t// note\n\tb\n\ta\n)",
			spacer: -1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				b, a := at(src, "b", ""), at(src, "a", "")
				i := strings.Index(src, "// note")
				b.LeadingComments = []element.Comment{{Span: element.Span{Start: i, End: i + 7}, Text: "// note"}}
				return []*element.Element{b, a}, []*element.Element{a, b}
			},
			expected: "(\n\ta\n\t// note\n\tb\n)",
		},
		{
			name:   "pinned element between moved ones",
			src:    "(\n\tc\n\tz // keep\n\ta\n)",
			spacer: -1,
			build: func(src string) ([]*element.Element, []*element.Element) {
				c, a := at(src, "c", ""), at(src, "a", "")
				z := trailing(src, at(src, "z", ""), "// keep")
				z.IsDisabled = true
				return []*element.Element{c, z, a}, []*element.Element{a, z, c}
			},
			expected: "(\n\ta\n\tz // keep\n\tc\n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, target := tt.build(tt.src)
			edits, err := Synthesize([]byte(tt.src), original, target, tt.spacer)
			if err != nil {
				t.Fatalf("synthesize: %s", err)
			}

			out, err := Apply([]byte(tt.src), edits)
			if err != nil {
				t.Fatalf("apply: %s", err)
			}
			if string(out) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, out)
			}
		})
	}
}

func TestSynthesizeOrdered(t *testing.T) {
	src := "(\n\ta // first\n\n\tb\n)"
	a := trailing(src, at(src, "a", "x"), "// first")
	b := at(src, "b", "y")
	elems := []*element.Element{a, b}

	edits, err := Synthesize([]byte(src), elems, elems, spacer(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("no edits expected for an ordered sequence, got %v", edits)
	}
}

func TestSynthesizeUnsafe(t *testing.T) {
	src := "[\n\tb, a, // ay\n]"
	b := at(src, "b", "")
	a := trailing(src, at(src, "a", ""), "// ay")

	_, err := Synthesize([]byte(src), []*element.Element{b, a}, []*element.Element{a, b}, spacer(-1))
	if !errors.Is(err, ErrUnsafeLayout) {
		t.Errorf("unsafe layout error expected, got %v", err)
	}
}

func TestSynthesizeNotPermutation(t *testing.T) {
	src := "a b"
	a, b := at(src, "a", ""), at(src, "b", "")

	if _, err := Synthesize([]byte(src), []*element.Element{a, b}, []*element.Element{a, a}, spacer(-1)); err == nil {
		t.Error("error expected for a target which is not a permutation")
	}
}

func TestApply(t *testing.T) {
	src := []byte("hello world")

	tests := []struct {
		name     string
		edits    []TextEdit
		expected string
		err      error
	}{
		{
			name: "replace and insert",
			edits: []TextEdit{
				{Span: element.Span{Start: 0, End: 5}, NewText: "goodbye", OldText: "hello"},
				{Span: element.Span{Start: 11, End: 11}, NewText: "!"},
			},
			expected: "goodbye world!",
		},
		{
			name: "adjacent",
			edits: []TextEdit{
				{Span: element.Span{Start: 6, End: 11}, NewText: "there"},
				{Span: element.Span{Start: 5, End: 6}, NewText: ", "},
			},
			expected: "hello, there",
		},
		{
			name: "conflict",
			edits: []TextEdit{
				{Span: element.Span{Start: 0, End: 5}, NewText: "a"},
				{Span: element.Span{Start: 3, End: 8}, NewText: "b"},
			},
			err: ErrConflict,
		},
		{
			name: "insertion inside replacement",
			edits: []TextEdit{
				{Span: element.Span{Start: 0, End: 5}, NewText: "a"},
				{Span: element.Span{Start: 2, End: 2}, NewText: "b"},
			},
			err: ErrConflict,
		},
		{
			name: "mismatch",
			edits: []TextEdit{
				{Span: element.Span{Start: 0, End: 5}, NewText: "a", OldText: "world"},
			},
			err: ErrMismatch,
		},
		{
			name: "out of range",
			edits: []TextEdit{
				{Span: element.Span{Start: 5, End: 50}, NewText: "a"},
			},
			err: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(src, tt.edits)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("expected %v, got %v", tt.err, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, out)
			}
			if string(src) != "hello world" {
				t.Error("source must not be changed")
			}
		})
	}
}
