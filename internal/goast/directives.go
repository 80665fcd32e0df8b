package goast

import (
	"fmt"
	"go/ast"
	"go/token"
	"maps"
	"math"
	"strings"
)

// Scope describes what a suppression directive covers.
type Scope int

const (
	ScopeInvalid Scope = iota

	// ScopeLine disables elements on the directive's line.
	ScopeLine

	// ScopeNextLine disables elements on the line following the directive.
	ScopeNextLine

	// ScopeRegionStart disables elements until the matching ScopeRegionEnd directive
	// or the end of file.
	ScopeRegionStart

	// ScopeRegionEnd closes the region.
	ScopeRegionEnd
)

var scopeValueMap = map[Scope]string{
	ScopeLine:        "line",
	ScopeNextLine:    "next-line",
	ScopeRegionStart: "region-start",
	ScopeRegionEnd:   "region-end",
}

func (s Scope) String() string {
	v, ok := scopeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Scope) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range scopeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown directive scope %q", text)
}

// Directives knows suppression comments.
type Directives struct {
	known map[string]Scope
}

// NewDirectives creates directives set with predefined ones plus custom. Custom directives
// take precedence over the predefined ones with the same text.
func NewDirectives(custom map[string]Scope) *Directives {
	predefined := map[string]Scope{
		"sortful:disable-line":      ScopeLine,
		"sortful:disable-next-line": ScopeNextLine,
		"sortful:disable":           ScopeRegionStart,
		"sortful:enable":            ScopeRegionEnd,

		// golangci-lint style.
		"nolint:sortful": ScopeLine,
		"nolint:all":     ScopeLine,
	}

	known := maps.Clone(predefined)
	if custom != nil {
		maps.Insert(known, maps.All(custom))
	}

	return &Directives{known: known}
}

// Lookup returns the scope of a comment text given with comment markers.
func (d *Directives) Lookup(text string) (Scope, bool) {
	c := commentContent(text)

	if rest, ok := strings.CutPrefix(c, "nolint:"); ok {
		list, _, _ := strings.Cut(rest, " ")
		for _, name := range strings.Split(list, ",") {
			if s, ok := d.known["nolint:"+strings.TrimSpace(name)]; ok {
				return s, true
			}
		}
		return ScopeInvalid, false
	}

	// Directive may be followed with an explanation.
	name, _, _ := strings.Cut(c, " ")
	s, ok := d.known[name]
	return s, ok
}

func commentContent(text string) string {
	if strings.HasPrefix(text, "/*") {
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/"))
	}

	return strings.TrimSpace(strings.TrimPrefix(text, "//"))
}

// suppression collects lines disabled by directives of a file.
type suppression struct {
	lines   map[int]struct{}
	regions []lineRange
}

type lineRange struct {
	from int
	to   int
}

func (d *Directives) scan(fset *token.FileSet, file *ast.File) *suppression {
	res := &suppression{
		lines: map[int]struct{}{},
	}

	open := -1
	for _, group := range file.Comments {
		for _, c := range group.List {
			scope, ok := d.Lookup(c.Text)
			if !ok {
				continue
			}

			switch scope {
			case ScopeLine:
				res.lines[fset.Position(c.Pos()).Line] = struct{}{}
			case ScopeNextLine:
				res.lines[fset.Position(c.End()).Line+1] = struct{}{}
			case ScopeRegionStart:
				if open < 0 {
					open = fset.Position(c.Pos()).Line
				}
			case ScopeRegionEnd:
				if open >= 0 {
					res.regions = append(res.regions, lineRange{from: open, to: fset.Position(c.Pos()).Line})
					open = -1
				}
			}
		}
	}
	if open >= 0 {
		res.regions = append(res.regions, lineRange{from: open, to: math.MaxInt})
	}

	return res
}

// covers checks if an element spanning the given lines is disabled.
func (s *suppression) covers(from, to int) bool {
	if _, ok := s.lines[from]; ok {
		return true
	}
	if _, ok := s.lines[to]; ok {
		return true
	}

	for _, r := range s.regions {
		if from >= r.from && from <= r.to {
			return true
		}
	}

	return false
}
