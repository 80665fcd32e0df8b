package groups

import (
	"testing"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/pattern"
)

func TestResolve(t *testing.T) {
	groups := config.Groups{
		config.Group("tests"),
		config.Group("exported-funcs", "getters"),
		config.Group("std"),
		config.Group("external"),
	}
	custom := []config.CustomGroup{
		{
			// Not listed in groups, must be skipped.
			GroupName: "everything",
		},
		{
			GroupName: "tests",
			Predicate: config.Predicate{
				ElementNamePattern: pattern.List{{Pattern: "_test$"}},
			},
		},
		{
			GroupName: "getters",
			AnyOf: []config.Predicate{
				{
					Selector:           "method",
					ElementNamePattern: pattern.List{{Pattern: "Get*", Kind: pattern.KindGlob}},
				},
				{
					Selector:            "field",
					Modifiers:           []string{"exported", "readonly"},
					ElementValuePattern: pattern.List{{Pattern: "get", Kind: pattern.KindLiteral}},
				},
			},
		},
		{
			GroupName: "exported-funcs",
			Predicate: config.Predicate{
				Modifiers:            []string{"exported"},
				DecoratorNamePattern: pattern.List{{Pattern: "^Deprecated$"}},
			},
		},
	}

	r, err := New(groups, custom)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		element  element.Element
		expected string
	}{
		{
			name:     "custom beats predefined",
			element:  element.Element{Name: "fmt_test", Facts: element.Facts{Predefined: []string{"std"}}},
			expected: "tests",
		},
		{
			name:     "anyOf first alternative",
			element:  element.Element{Name: "GetName", Facts: element.Facts{Selector: "method"}},
			expected: "getters",
		},
		{
			name: "anyOf second alternative",
			element: element.Element{Name: "name", Facts: element.Facts{
				Selector:  "field",
				Modifiers: []string{"readonly", "exported"},
				Value:     "get",
			}},
			expected: "getters",
		},
		{
			name: "modifiers must all be present",
			element: element.Element{Name: "name", Facts: element.Facts{
				Selector:   "field",
				Modifiers:  []string{"exported"},
				Value:      "get",
				Predefined: []string{"external"},
			}},
			expected: "external",
		},
		{
			name: "decorators",
			element: element.Element{Name: "Old", Facts: element.Facts{
				Modifiers:  []string{"exported"},
				Decorators: []string{"Inline", "Deprecated"},
			}},
			expected: "exported-funcs",
		},
		{
			name:     "first listed predefined",
			element:  element.Element{Name: "x", Facts: element.Facts{Predefined: []string{"side-effect", "std"}}},
			expected: "std",
		},
		{
			name:     "unknown",
			element:  element.Element{Name: "x", Facts: element.Facts{Predefined: []string{"side-effect"}}},
			expected: element.UnknownGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(&tt.element); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := New(config.Groups{config.Group("g")}, []config.CustomGroup{
		{GroupName: "g", Predicate: config.Predicate{ElementNamePattern: pattern.List{{Pattern: "("}}}},
	})
	if err == nil {
		t.Error("error expected for a broken pattern")
	}
}
