// Package groups assigns every element to exactly one named group.
//
// Custom groups are tried first, in declaration order; the first one whose predicate holds and
// whose name is listed in groups wins. Otherwise the construct's predefined group names are
// tried in their priority order. Elements matching nothing land in element.UnknownGroup.
package groups

import (
	"fmt"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/pattern"
)

// Resolver assigns groups to elements.
type Resolver struct {
	groups config.Groups
	custom []customMatcher
}

type customMatcher struct {
	name  string
	preds []predicate
}

type predicate struct {
	selector   string
	modifiers  []string
	names      *pattern.Set
	values     *pattern.Set
	decorators *pattern.Set
}

// New compiles group matchers.
func New(groups config.Groups, custom []config.CustomGroup) (*Resolver, error) {
	r := &Resolver{
		groups: groups,
		custom: make([]customMatcher, 0, len(custom)),
	}

	for i, cg := range custom {
		m := customMatcher{name: cg.GroupName}

		if len(cg.AnyOf) == 0 {
			p, err := compilePredicate(cg.Predicate)
			if err != nil {
				return nil, fmt.Errorf("custom group #%d %q: %w", i, cg.GroupName, err)
			}
			m.preds = append(m.preds, p)
		}
		for j, alt := range cg.AnyOf {
			p, err := compilePredicate(alt)
			if err != nil {
				return nil, fmt.Errorf("custom group #%d %q anyOf #%d: %w", i, cg.GroupName, j, err)
			}
			m.preds = append(m.preds, p)
		}

		r.custom = append(r.custom, m)
	}

	return r, nil
}

func compilePredicate(p config.Predicate) (predicate, error) {
	names, err := pattern.CompileList(p.ElementNamePattern)
	if err != nil {
		return predicate{}, fmt.Errorf("element name pattern: %w", err)
	}

	values, err := pattern.CompileList(p.ElementValuePattern)
	if err != nil {
		return predicate{}, fmt.Errorf("element value pattern: %w", err)
	}

	decorators, err := pattern.CompileList(p.DecoratorNamePattern)
	if err != nil {
		return predicate{}, fmt.Errorf("decorator name pattern: %w", err)
	}

	return predicate{
		selector:   p.Selector,
		modifiers:  p.Modifiers,
		names:      names,
		values:     values,
		decorators: decorators,
	}, nil
}

// Resolve returns the group of the element.
func (r *Resolver) Resolve(e *element.Element) string {
	for _, m := range r.custom {
		if !r.groups.Contains(m.name) {
			continue
		}

		for _, p := range m.preds {
			if p.match(e) {
				return m.name
			}
		}
	}

	for _, name := range e.Facts.Predefined {
		if r.groups.Contains(name) {
			return name
		}
	}

	return element.UnknownGroup
}

// Assign resolves and stores groups of all elements.
func (r *Resolver) Assign(elements []*element.Element) {
	for _, e := range elements {
		e.Group = r.Resolve(e)
	}
}

func (p predicate) match(e *element.Element) bool {
	if p.selector != "" && p.selector != e.Facts.Selector {
		return false
	}

	for _, m := range p.modifiers {
		if !e.Facts.HasModifier(m) {
			return false
		}
	}

	if !p.names.Empty() && !p.names.Match(e.Name) {
		return false
	}

	if !p.values.Empty() && !p.values.Match(e.Facts.Value) {
		return false
	}

	if !p.decorators.Empty() {
		var found bool
		for _, d := range e.Facts.Decorators {
			if p.decorators.Match(d) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
