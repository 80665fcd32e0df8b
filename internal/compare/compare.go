// Package compare builds in-group comparators: alphabetical, natural, line-length,
// custom-alphabet and unsorted, with direction and fallback chaining.
//
// Comparators are built per ordering call and must not be shared between goroutines:
// collators and case folders keep internal buffers.
package compare

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

// Comparator returns a negative number when a goes before b, positive when after and 0 for equal rank.
type Comparator func(a, b *element.Element) int

// Settings of a comparator.
type Settings struct {
	Type              config.SortType
	Order             config.Order
	IgnoreCase        bool
	SpecialCharacters config.SpecialCharacters
	Locale            string
	Alphabet          string
	Fallback          *config.FallbackSort
}

// FromOptions takes comparator settings from options.
func FromOptions(o *config.Options) Settings {
	return Settings{
		Type:              o.Type,
		Order:             o.Order,
		IgnoreCase:        o.IsIgnoreCase(),
		SpecialCharacters: o.SpecialCharacters,
		Locale:            o.Locale,
		Alphabet:          o.Alphabet,
		Fallback:          o.FallbackSort,
	}
}

// WithGroupOverride applies a custom group's sorting overrides.
func (s Settings) WithGroupOverride(cg *config.CustomGroup) Settings {
	if cg == nil {
		return s
	}

	if cg.Type != config.SortTypeInvalid {
		s.Type = cg.Type
	}
	if cg.Order != config.OrderInvalid {
		s.Order = cg.Order
	}
	if cg.Alphabet != "" {
		s.Alphabet = cg.Alphabet
	}
	if cg.FallbackSort != nil {
		s.Fallback = cg.FallbackSort
	}

	return s
}

// New builds a comparator.
func New(s Settings) (Comparator, error) {
	if s.Type == config.SortTypeUnsorted {
		return unsorted, nil
	}

	primary, err := primary(s)
	if err != nil {
		return nil, err
	}

	if s.Fallback == nil {
		return primary, nil
	}

	sub := s
	sub.Type = s.Fallback.Type
	sub.Order = s.Fallback.Order
	sub.Fallback = s.Fallback.Fallback
	if sub.Type == config.SortTypeInvalid {
		sub.Type = config.SortTypeAlphabetical
	}
	if sub.Order == config.OrderInvalid {
		sub.Order = config.OrderAsc
	}

	fallback, err := New(sub)
	if err != nil {
		return nil, fmt.Errorf("fallback sort: %w", err)
	}

	return func(a, b *element.Element) int {
		if v := primary(a, b); v != 0 {
			return v
		}

		return fallback(a, b)
	}, nil
}

func primary(s Settings) (Comparator, error) {
	norm, err := newNormalizer(s)
	if err != nil {
		return nil, err
	}

	var cmp Comparator
	switch s.Type {
	case config.SortTypeAlphabetical, config.SortTypeInvalid:
		cmp = func(a, b *element.Element) int {
			return norm.compare(norm.apply(a.Name), norm.apply(b.Name))
		}

	case config.SortTypeNatural:
		cmp = func(a, b *element.Element) int {
			return compareNatural(norm, norm.apply(a.Name), norm.apply(b.Name))
		}

	case config.SortTypeLineLength:
		cmp = func(a, b *element.Element) int {
			return a.Size - b.Size
		}

	case config.SortTypeCustom:
		if s.Alphabet == "" {
			return nil, config.InvalidAlphabetError("comparator")
		}

		alpha := newAlphabet(s.Alphabet, norm)
		cmp = func(a, b *element.Element) int {
			return alpha.compare(norm.apply(a.Name), norm.apply(b.Name))
		}

	default:
		return nil, fmt.Errorf("unsupported sort type %s", s.Type)
	}

	if s.Order == config.OrderDesc {
		return func(a, b *element.Element) int {
			return -cmp(a, b)
		}, nil
	}

	return cmp, nil
}

func unsorted(_, _ *element.Element) int {
	return 0
}

// stringCompare compares already normalized strings with a locale collator if there is one.
type stringCompare struct {
	collator *collate.Collator
}

func newStringCompare(locale string, ignoreCase bool) (stringCompare, error) {
	if locale == "" {
		return stringCompare{}, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return stringCompare{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	var opts []collate.Option
	if ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}

	return stringCompare{collator: collate.New(tag, opts...)}, nil
}

func (c stringCompare) compare(a, b string) int {
	if c.collator != nil {
		if v := c.collator.CompareString(a, b); v != 0 {
			return v
		}
	}

	return strings.Compare(a, b)
}
