package main

import (
	"maps"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/goast"
)

// newConstructDefaults returns base options of every construct, config file sections are resolved
// over them. Custom entries replace predefined ones.
//
// Imports follow the goimports convention: standard library first. Other constructs are split
// into partitions by blank lines since Go code separates logical sections this way.
func newConstructDefaults(custom map[Construct]config.Options) map[Construct]config.Options {
	predefined := map[Construct]config.Options{
		ConstructImports: {
			Groups: config.Groups{
				config.Group(goast.GroupStd),
				config.Group(goast.GroupExternal),
			},
		},
		ConstructConstants: {PartitionByNewLine: ptr(true)},
		ConstructVariables: {PartitionByNewLine: ptr(true)},
		ConstructLiterals:  {PartitionByNewLine: ptr(true)},
	}

	known := maps.Clone(predefined)
	if custom != nil {
		maps.Insert(known, maps.All(custom))
	}

	for c, o := range known {
		known[c] = config.Resolve(config.Defaults(), o, config.Options{})
	}

	return known
}

func ptr[T any](v T) *T {
	return &v
}
