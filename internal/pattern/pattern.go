// Package pattern compiles textual patterns used by group matchers and comment partitioning.
//
// A pattern is one of:
//
//   - a regular expression (the default), with JavaScript-like flags ("i", "m", "s", "u");
//   - a glob-like wildcard ("*", "?", "[...]", "{a,b}");
//   - a literal string matched as a whole.
package pattern

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"
)

// Kind of pattern.
type Kind int

const (
	KindRegexp Kind = iota
	KindGlob
	KindLiteral
)

var kindValueMap = map[Kind]string{
	KindRegexp:  "regexp",
	KindGlob:    "glob",
	KindLiteral: "literal",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// UnmarshalText for setting values with configs.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kk, v := range kindValueMap {
		if v == text {
			*k = kk
			return nil
		}
	}

	return fmt.Errorf("unknown pattern kind %q", text)
}

// MarshalText is the counterpart of UnmarshalText.
func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", k)
	}

	return []byte(v), nil
}

// Spec is a pattern definition as it comes from configuration.
type Spec struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Flags   string `yaml:"flags"   toml:"flags"`
	Kind    Kind   `yaml:"kind"    toml:"kind"`
}

// Matcher checks strings against a compiled pattern.
type Matcher interface {
	Match(s string) bool
}

// Compile compiles a single pattern spec.
func Compile(s Spec) (Matcher, error) {
	switch s.Kind {
	case KindRegexp:
		opts, err := regexpOptions(s.Flags)
		if err != nil {
			return nil, fmt.Errorf("regexp %q: %w", s.Pattern, err)
		}

		re, err := regexp2.Compile(s.Pattern, opts)
		if err != nil {
			return nil, fmt.Errorf("compile regexp %q: %w", s.Pattern, err)
		}

		return regexpMatcher{re: re}, nil

	case KindGlob:
		fold := strings.Contains(s.Flags, "i")
		p := s.Pattern
		if fold {
			p = strings.ToLower(p)
		}

		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", s.Pattern, err)
		}

		return globMatcher{g: g, fold: fold}, nil

	case KindLiteral:
		return literalMatcher{text: s.Pattern, fold: strings.Contains(s.Flags, "i")}, nil

	default:
		return nil, fmt.Errorf("unsupported pattern kind %s", s.Kind)
	}
}

func regexpOptions(flags string) (regexp2.RegexOptions, error) {
	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		case 'g', 'y', 'd':
			// Stateful JavaScript flags have no meaning for a single match.
		default:
			return opts, fmt.Errorf("unknown flag %q", f)
		}
	}

	return opts, nil
}

type regexpMatcher struct {
	re *regexp2.Regexp
}

func (m regexpMatcher) Match(s string) bool {
	ok, err := m.re.MatchString(s)
	if err != nil {
		return false
	}

	return ok
}

type globMatcher struct {
	g    glob.Glob
	fold bool
}

func (m globMatcher) Match(s string) bool {
	if m.fold {
		s = strings.ToLower(s)
	}

	return m.g.Match(s)
}

type literalMatcher struct {
	text string
	fold bool
}

func (m literalMatcher) Match(s string) bool {
	if m.fold {
		return strings.EqualFold(m.text, s)
	}

	return m.text == s
}
