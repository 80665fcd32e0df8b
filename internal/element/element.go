// Package element defines the sortable unit every ordering component works with.
//
// Elements are built by construct adapters (imports, constant blocks, literal keys, etc.),
// consumed read-only by the ordering engine and dropped once a fix is produced.
package element

import "strings"

// UnknownGroup is assigned to elements that match no configured group.
const UnknownGroup = "unknown"

// Span is a half-open [Start, End) byte range in the source text.
type Span struct {
	Start int
	End   int
}

// Len returns span length.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty checks if the span covers nothing.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Comment is a comment attached to an element.
type Comment struct {
	Span Span
	Text string

	// Block is true for /* */ comments.
	Block bool

	// Boundary marks a comment which opened a partition. Boundary comments never move.
	Boundary bool
}

// Content returns comment text without comment markers and surrounding spaces.
func (c Comment) Content() string {
	text := c.Text
	if c.Block {
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	} else {
		text = strings.TrimPrefix(text, "//")
	}

	return strings.TrimSpace(text)
}

// Facts is a read-only bag of construct specific properties used by group matchers only.
type Facts struct {
	Selector   string
	Modifiers  []string
	Value      string
	Decorators []string

	// Predefined lists construct intrinsic group names in priority order.
	Predefined []string
}

// HasModifier checks if the given modifier is among element's modifiers.
func (f *Facts) HasModifier(m string) bool {
	for _, v := range f.Modifiers {
		if v == m {
			return true
		}
	}

	return false
}

// Element is one sortable unit.
type Element struct {
	Name string
	Size int

	// Group is resolved once at intake.
	Group       string
	PartitionID int

	// Dependencies are names of other elements this one's definition references.
	Dependencies []string

	// DependencyNames are names under which other elements reference this one.
	// Name is used when empty.
	DependencyNames []string

	IsDisabled    bool
	OriginalIndex int

	// BlankLinesBefore is the number of blank lines separating the element
	// from the previous one in the original source.
	BlankLinesBefore int

	Facts Facts

	// Span of the element itself, without attached comments.
	Span            Span
	LeadingComments []Comment
	TrailingComment *Comment
	Payload         any
}

// RefNames returns names this element can be referenced by.
func (e *Element) RefNames() []string {
	if len(e.DependencyNames) == 0 {
		return []string{e.Name}
	}

	return e.DependencyNames
}

// MovableStart returns the start of the element's movable range: the first leading comment
// past the last partition boundary, or the element itself.
func (e *Element) MovableStart() int {
	if cs := e.MovableComments(); len(cs) > 0 {
		return cs[0].Span.Start
	}

	return e.Span.Start
}

// MovableComments returns leading comments which travel with the element.
// Everything up to and including the last boundary comment stays in place.
func (e *Element) MovableComments() []Comment {
	from := 0
	for i, c := range e.LeadingComments {
		if c.Boundary {
			from = i + 1
		}
	}

	return e.LeadingComments[from:]
}
