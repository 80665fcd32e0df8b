package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirkon/sortful/internal/config"
)

// Construct describes kinds of Go lists the linter sorts.
type Construct int

const (
	ConstructInvalid Construct = iota

	// ConstructImports is a parenthesized import declaration.
	ConstructImports

	// ConstructConstants is a parenthesized const block with explicit values.
	ConstructConstants

	// ConstructVariables is a parenthesized package level var block with explicit values.
	ConstructVariables

	// ConstructLiterals is a composite literal with keyed elements.
	ConstructLiterals
)

var constructValueMap = map[Construct]string{
	ConstructImports:   config.ConstructImports,
	ConstructConstants: config.ConstructConstants,
	ConstructVariables: config.ConstructVariables,
	ConstructLiterals:  config.ConstructLiterals,
}

func (c Construct) String() string {
	v, ok := constructValueMap[c]
	if !ok {
		return fmt.Sprintf("invalid(%d)", c)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (c *Construct) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range constructValueMap {
		if v == text {
			*c = k
			return nil
		}
	}

	return fmt.Errorf("unknown construct %q", text)
}

// constructSet is a comma separated list of constructs flag.
type constructSet map[Construct]bool

func (s constructSet) String() string {
	var names []string
	for c, on := range s {
		if on {
			names = append(names, c.String())
		}
	}
	slices.Sort(names)

	return strings.Join(names, ",")
}

// Set replaces the set with constructs from the list.
func (s constructSet) Set(value string) error {
	parsed := constructSet{}
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var c Construct
		if err := c.UnmarshalText([]byte(name)); err != nil {
			return err
		}
		parsed[c] = true
	}

	clear(s)
	for c := range parsed {
		s[c] = true
	}
	return nil
}

// names returns config names of enabled constructs.
func (s constructSet) names() map[string]bool {
	res := map[string]bool{}
	for c, on := range s {
		if on {
			res[c.String()] = true
		}
	}

	return res
}
