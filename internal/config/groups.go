package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/sortful/internal/pattern"
)

// GroupItem is one entry of the groups list: either a group (possibly several equally ranked
// names) or a newline directive placed between two groups.
type GroupItem struct {
	Names    []string
	Newlines *NewlinesBetween
}

// IsDirective checks if the item is a newline directive rather than a group.
func (g GroupItem) IsDirective() bool {
	return g.Newlines != nil
}

// Group creates a group item of equally ranked names.
func Group(names ...string) GroupItem {
	return GroupItem{Names: names}
}

// Directive creates a newline directive item.
func Directive(n NewlinesBetween) GroupItem {
	return GroupItem{Newlines: &n}
}

// Groups is an ordered list of groups and newline directives.
type Groups []GroupItem

// Rank returns the position of a group in the list not counting directives,
// and false if the group is not listed.
func (gs Groups) Rank(name string) (int, bool) {
	rank := 0
	for _, item := range gs {
		if item.IsDirective() {
			continue
		}

		for _, n := range item.Names {
			if n == name {
				return rank, true
			}
		}
		rank++
	}

	return 0, false
}

// Len returns the number of groups, directives are not counted.
func (gs Groups) Len() int {
	var res int
	for _, item := range gs {
		if !item.IsDirective() {
			res++
		}
	}

	return res
}

// Contains checks if the group is listed.
func (gs Groups) Contains(name string) bool {
	_, ok := gs.Rank(name)
	return ok
}

// Directives returns newline directives located between groups with ranks lo and hi (lo < hi).
func (gs Groups) Directives(lo, hi int) []NewlinesBetween {
	var res []NewlinesBetween
	rank := -1
	for _, item := range gs {
		if !item.IsDirective() {
			rank++
			if rank >= hi {
				break
			}
			continue
		}

		if rank >= lo {
			res = append(res, *item.Newlines)
		}
	}

	return res
}

type newlinesDirective struct {
	NewlinesBetween *NewlinesBetween `yaml:"newlinesBetween" toml:"newlinesBetween"`
}

// UnmarshalYAML accepts a group name, a list of names, or a {newlinesBetween: X} mapping.
func (g *GroupItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*g = Group(node.Value)
		return nil

	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return fmt.Errorf("decode group names: %w", err)
		}

		*g = Group(names...)
		return nil

	case yaml.MappingNode:
		var d newlinesDirective
		if err := node.Decode(&d); err != nil {
			return fmt.Errorf("decode newlines directive: %w", err)
		}
		if d.NewlinesBetween == nil {
			return fmt.Errorf("line %d: group directive must set newlinesBetween", node.Line)
		}

		*g = Directive(*d.NewlinesBetween)
		return nil

	default:
		return fmt.Errorf("line %d: unexpected group item", node.Line)
	}
}

// UnmarshalTOML is the TOML counterpart of UnmarshalYAML.
func (g *GroupItem) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*g = Group(v)
		return nil

	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("group name must be a string, got %T", item)
			}
			names = append(names, s)
		}

		*g = Group(names...)
		return nil

	case map[string]any:
		raw, ok := v["newlinesBetween"]
		if !ok || len(v) != 1 {
			return fmt.Errorf("group directive must only set newlinesBetween")
		}

		var n NewlinesBetween
		if err := n.UnmarshalText([]byte(fmt.Sprint(raw))); err != nil {
			return err
		}

		*g = Directive(n)
		return nil

	default:
		return fmt.Errorf("unexpected group item of type %T", data)
	}
}

// Predicate is a single custom group condition. All non-empty parts must be satisfied.
type Predicate struct {
	Selector             string       `yaml:"selector"             toml:"selector"`
	Modifiers            []string     `yaml:"modifiers"            toml:"modifiers"`
	ElementNamePattern   pattern.List `yaml:"elementNamePattern"   toml:"elementNamePattern"`
	ElementValuePattern  pattern.List `yaml:"elementValuePattern"  toml:"elementValuePattern"`
	DecoratorNamePattern pattern.List `yaml:"decoratorNamePattern" toml:"decoratorNamePattern"`
}

// CustomGroup assigns elements matching its predicate (or any of AnyOf) to GroupName.
type CustomGroup struct {
	GroupName string `yaml:"groupName" toml:"groupName"`

	Predicate `yaml:",inline"`
	AnyOf     []Predicate `yaml:"anyOf" toml:"anyOf"`

	// Sorting overrides for this group.
	Type         SortType      `yaml:"type"         toml:"type"`
	Order        Order         `yaml:"order"        toml:"order"`
	Alphabet     string        `yaml:"alphabet"     toml:"alphabet"`
	FallbackSort *FallbackSort `yaml:"fallbackSort" toml:"fallbackSort"`
}

// CommentFilter selects comments: every comment when All is set, otherwise those
// matching Patterns.
type CommentFilter struct {
	All      bool
	Patterns pattern.List
}

// Enabled checks if the filter can select anything.
func (f CommentFilter) Enabled() bool {
	return f.All || len(f.Patterns) > 0
}

// UnmarshalYAML accepts a boolean or patterns.
func (f *CommentFilter) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!bool" {
		var v bool
		if err := node.Decode(&v); err != nil {
			return err
		}

		*f = CommentFilter{All: v}
		return nil
	}

	var l pattern.List
	if err := l.UnmarshalYAML(node); err != nil {
		return err
	}

	*f = CommentFilter{Patterns: l}
	return nil
}

// UnmarshalTOML is the TOML counterpart of UnmarshalYAML.
func (f *CommentFilter) UnmarshalTOML(data any) error {
	if v, ok := data.(bool); ok {
		*f = CommentFilter{All: v}
		return nil
	}

	var l pattern.List
	if err := l.UnmarshalTOML(data); err != nil {
		return err
	}

	*f = CommentFilter{Patterns: l}
	return nil
}

// PartitionByComment sets which comments split elements into partitions.
type PartitionByComment struct {
	Block CommentFilter
	Line  CommentFilter
}

// Enabled checks if any comment can become a partition boundary.
func (p *PartitionByComment) Enabled() bool {
	return p != nil && (p.Block.Enabled() || p.Line.Enabled())
}

type partitionByCommentSides struct {
	Block *CommentFilter `yaml:"block" toml:"block"`
	Line  *CommentFilter `yaml:"line"  toml:"line"`
}

// UnmarshalYAML accepts a boolean, patterns, or a {block: ..., line: ...} mapping.
func (p *PartitionByComment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && hasKey(node, "block", "line") {
		var sides partitionByCommentSides
		if err := node.Decode(&sides); err != nil {
			return fmt.Errorf("decode partitionByComment: %w", err)
		}

		*p = PartitionByComment{}
		if sides.Block != nil {
			p.Block = *sides.Block
		}
		if sides.Line != nil {
			p.Line = *sides.Line
		}
		return nil
	}

	var f CommentFilter
	if err := f.UnmarshalYAML(node); err != nil {
		return err
	}

	*p = PartitionByComment{Block: f, Line: f}
	return nil
}

// UnmarshalTOML is the TOML counterpart of UnmarshalYAML.
func (p *PartitionByComment) UnmarshalTOML(data any) error {
	if m, ok := data.(map[string]any); ok {
		_, hasBlock := m["block"]
		_, hasLine := m["line"]
		if hasBlock || hasLine {
			*p = PartitionByComment{}
			if v, ok := m["block"]; ok {
				if err := p.Block.UnmarshalTOML(v); err != nil {
					return fmt.Errorf("decode partitionByComment.block: %w", err)
				}
			}
			if v, ok := m["line"]; ok {
				if err := p.Line.UnmarshalTOML(v); err != nil {
					return fmt.Errorf("decode partitionByComment.line: %w", err)
				}
			}
			return nil
		}
	}

	var f CommentFilter
	if err := f.UnmarshalTOML(data); err != nil {
		return err
	}

	*p = PartitionByComment{Block: f, Line: f}
	return nil
}

func hasKey(node *yaml.Node, keys ...string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		for _, k := range keys {
			if node.Content[i].Value == k {
				return true
			}
		}
	}

	return false
}
