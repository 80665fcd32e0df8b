package compare

import (
	"reflect"
	"slices"
	"testing"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

func names(elems []*element.Element) []string {
	res := make([]string, 0, len(elems))
	for _, e := range elems {
		res = append(res, e.Name)
	}

	return res
}

func elements(list ...string) []*element.Element {
	res := make([]*element.Element, 0, len(list))
	for _, name := range list {
		res = append(res, &element.Element{Name: name, Size: len(name)})
	}

	return res
}

func TestComparators(t *testing.T) {
	alpha := Settings{
		Type:              config.SortTypeAlphabetical,
		Order:             config.OrderAsc,
		IgnoreCase:        true,
		SpecialCharacters: config.SpecialCharactersKeep,
	}
	with := func(f func(s *Settings)) Settings {
		s := alpha
		f(&s)
		return s
	}

	tests := []struct {
		name     string
		settings Settings
		input    []string
		expected []string
	}{
		{
			name:     "alphabetical ignore case",
			settings: alpha,
			input:    []string{"b", "A", "c"},
			expected: []string{"A", "b", "c"},
		},
		{
			name:     "alphabetical case sensitive",
			settings: with(func(s *Settings) { s.IgnoreCase = false }),
			input:    []string{"b", "a", "A"},
			expected: []string{"A", "a", "b"},
		},
		{
			name:     "descending",
			settings: with(func(s *Settings) { s.Order = config.OrderDesc }),
			input:    []string{"a", "c", "b"},
			expected: []string{"c", "b", "a"},
		},
		{
			name:     "natural",
			settings: with(func(s *Settings) { s.Type = config.SortTypeNatural }),
			input:    []string{"v10", "v2", "v1", "v02"},
			expected: []string{"v1", "v2", "v02", "v10"},
		},
		{
			name:     "natural big numbers",
			settings: with(func(s *Settings) { s.Type = config.SortTypeNatural }),
			input:    []string{"n100000000000000000000", "n99999999999999999999"},
			expected: []string{"n99999999999999999999", "n100000000000000000000"},
		},
		{
			name:     "line length",
			settings: with(func(s *Settings) { s.Type = config.SortTypeLineLength }),
			input:    []string{"ccc", "a", "bb"},
			expected: []string{"a", "bb", "ccc"},
		},
		{
			name: "line length with fallback",
			settings: with(func(s *Settings) {
				s.Type = config.SortTypeLineLength
				s.Fallback = &config.FallbackSort{Type: config.SortTypeAlphabetical, Order: config.OrderDesc}
			}),
			input:    []string{"aa", "b", "cc", "a"},
			expected: []string{"b", "a", "cc", "aa"},
		},
		{
			name: "custom alphabet",
			settings: with(func(s *Settings) {
				s.Type = config.SortTypeCustom
				s.Alphabet = "cba"
			}),
			input:    []string{"a", "b", "c", "ca"},
			expected: []string{"c", "ca", "b", "a"},
		},
		{
			name: "custom alphabet with absent characters",
			settings: with(func(s *Settings) {
				s.Type = config.SortTypeCustom
				s.Alphabet = "ba"
			}),
			input:    []string{"d", "c", "a", "b"},
			expected: []string{"b", "a", "c", "d"},
		},
		{
			name:     "keep special characters",
			settings: alpha,
			input:    []string{"a", "_b"},
			expected: []string{"_b", "a"},
		},
		{
			name:     "trim special characters",
			settings: with(func(s *Settings) { s.SpecialCharacters = config.SpecialCharactersTrim }),
			input:    []string{"_b", "a"},
			expected: []string{"a", "_b"},
		},
		{
			name:     "remove special characters",
			settings: with(func(s *Settings) { s.SpecialCharacters = config.SpecialCharactersRemove }),
			input:    []string{"a-c", "ab"},
			expected: []string{"ab", "a-c"},
		},
		{
			name:     "unsorted",
			settings: with(func(s *Settings) { s.Type = config.SortTypeUnsorted }),
			input:    []string{"c", "a", "b"},
			expected: []string{"c", "a", "b"},
		},
		{
			name:     "code points without locale",
			settings: alpha,
			input:    []string{"ä", "b"},
			expected: []string{"b", "ä"},
		},
		{
			name:     "locale",
			settings: with(func(s *Settings) { s.Locale = "de" }),
			input:    []string{"b", "ä"},
			expected: []string{"ä", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := New(tt.settings)
			if err != nil {
				t.Fatalf("create comparator: %s", err)
			}

			elems := elements(tt.input...)
			slices.SortStableFunc(elems, cmp)
			if got := names(elems); !reflect.DeepEqual(tt.expected, got) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCustomWithoutAlphabet(t *testing.T) {
	_, err := New(Settings{Type: config.SortTypeCustom})
	if !config.IsCode(err, config.ErrCodeInvalidAlphabet) {
		t.Errorf("invalid alphabet error expected, got %v", err)
	}

	_, err = New(Settings{
		Type:     config.SortTypeAlphabetical,
		Fallback: &config.FallbackSort{Type: config.SortTypeCustom},
	})
	if !config.IsCode(err, config.ErrCodeInvalidAlphabet) {
		t.Errorf("invalid alphabet error expected from fallback, got %v", err)
	}
}

func TestInvalidLocale(t *testing.T) {
	if _, err := New(Settings{Type: config.SortTypeAlphabetical, Locale: "not a locale!"}); err == nil {
		t.Error("error expected for malformed locale")
	}
}

func TestWithGroupOverride(t *testing.T) {
	base := Settings{Type: config.SortTypeAlphabetical, Order: config.OrderAsc, IgnoreCase: true}
	got := base.WithGroupOverride(&config.CustomGroup{
		GroupName: "g",
		Type:      config.SortTypeNatural,
		Order:     config.OrderDesc,
	})

	expected := Settings{Type: config.SortTypeNatural, Order: config.OrderDesc, IgnoreCase: true}
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
	if !reflect.DeepEqual(base, base.WithGroupOverride(nil)) {
		t.Error("nil override must keep settings")
	}
}
