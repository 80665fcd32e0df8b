// Package spacing computes how many blank lines must separate adjacent elements.
package spacing

import (
	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/sortrules"
)

// Enforcer computes blank line requirements from the global policy and per-boundary directives
// of the groups list.
type Enforcer struct {
	global config.NewlinesBetween
	groups config.Groups
}

// New creates an enforcer.
func New(o *config.Options) *Enforcer {
	return &Enforcer{
		global: o.NewlinesBetween,
		groups: o.Groups,
	}
}

// Required returns the number of blank lines required between adjacent elements of the given
// groups, and false if nothing is enforced.
//
// Elements of the same group must not be separated when any policy is enforced. Between
// different groups, enforced directives placed between them in the groups list win, the largest
// one if there are several. Otherwise the global policy applies.
func (e *Enforcer) Required(left, right string) (int, bool) {
	lr, rr := e.rank(left), e.rank(right)
	if lr == rr {
		if e.global.Enforced() {
			return 0, true
		}

		return 0, false
	}

	lo, hi := min(lr, rr), max(lr, rr)
	var (
		lines    int
		directed bool
	)
	for _, d := range e.groups.Directives(lo, hi) {
		if !d.Enforced() {
			continue
		}

		if !directed || d.Lines() > lines {
			lines = d.Lines()
		}
		directed = true
	}
	if directed {
		return lines, true
	}

	if e.global.Enforced() {
		return e.global.Lines(), true
	}

	return 0, false
}

// Check compares actual blank lines with the requirement. It returns the violated rule and true
// when there is a mismatch.
func (e *Enforcer) Check(left, right string, actual int) (sortrules.Rule, bool) {
	want, ok := e.Required(left, right)
	if !ok || want == actual {
		return 0, false
	}

	if actual < want {
		return sortrules.MissedSpacing(), true
	}

	return sortrules.ExtraSpacing(), true
}

// rank of a group in the groups list. Groups which are not listed go after all listed ones.
func (e *Enforcer) rank(group string) int {
	if r, ok := e.groups.Rank(group); ok {
		return r
	}

	return e.groups.Len()
}
