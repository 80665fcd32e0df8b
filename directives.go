package main

import (
	"fmt"
	"strings"

	"github.com/sirkon/sortful/internal/goast"
)

// Suppression directives are predefined by goast. Projects can add their own spellings in the
// config: a plain text is a line directive, "text=scope" picks the scope explicitly.
//
//	disableDirectives:
//	  - "lint:keep-order"
//	  - "lint:keep-order-below=region-start"
//	  - "lint:keep-order-end=region-end"
func newDirectives(custom []string) (*goast.Directives, error) {
	known := map[string]goast.Scope{}
	for _, d := range custom {
		text, rawScope, ok := strings.Cut(d, "=")
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("empty disable directive %q", d)
		}

		scope := goast.ScopeLine
		if ok {
			if err := scope.UnmarshalText([]byte(strings.TrimSpace(rawScope))); err != nil {
				return nil, fmt.Errorf("disable directive %q: %w", d, err)
			}
		}
		known[text] = scope
	}

	return goast.NewDirectives(known), nil
}

// mergeDirectives collects disable directives of every construct, first spelling wins.
func mergeDirectives(options map[Construct][]string) []string {
	seen := map[string]struct{}{}
	var res []string
	for _, c := range []Construct{ConstructImports, ConstructConstants, ConstructVariables, ConstructLiterals} {
		for _, d := range options[c] {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			res = append(res, d)
		}
	}

	return res
}
