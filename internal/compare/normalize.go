package compare

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/sirkon/sortful/internal/config"
)

type normalizer struct {
	stringCompare
	special config.SpecialCharacters
	fold    *cases.Caser
}

func newNormalizer(s Settings) (*normalizer, error) {
	sc, err := newStringCompare(s.Locale, s.IgnoreCase)
	if err != nil {
		return nil, err
	}

	n := &normalizer{
		stringCompare: sc,
		special:       s.SpecialCharacters,
	}
	if s.IgnoreCase {
		c := cases.Fold()
		n.fold = &c
	}

	return n, nil
}

func (n *normalizer) apply(s string) string {
	switch n.special {
	case config.SpecialCharactersTrim:
		s = strings.TrimLeftFunc(s, isSpecial)
	case config.SpecialCharactersRemove:
		s = strings.Map(func(r rune) rune {
			if isSpecial(r) {
				return -1
			}
			return r
		}, s)
	}

	if n.fold != nil {
		s = n.fold.String(s)
	}

	return s
}

func (n *normalizer) foldRune(r rune) rune {
	if n.fold == nil {
		return r
	}

	v := []rune(n.fold.String(string(r)))
	if len(v) != 1 {
		return r
	}

	return v[0]
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
