package pattern

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// List is a disjunction of patterns. An empty list matches nothing.
type List []Spec

// UnmarshalYAML accepts a plain string, a mapping with pattern and flags or a sequence of these.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = List{{Pattern: node.Value}}
		return nil

	case yaml.MappingNode:
		var s Spec
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("decode pattern: %w", err)
		}

		*l = List{s}
		return nil

	case yaml.SequenceNode:
		res := make(List, 0, len(node.Content))
		for _, item := range node.Content {
			var sub List
			if err := sub.UnmarshalYAML(item); err != nil {
				return err
			}

			res = append(res, sub...)
		}

		*l = res
		return nil

	default:
		return fmt.Errorf("line %d: unexpected pattern node", node.Line)
	}
}

// UnmarshalTOML is the TOML counterpart of UnmarshalYAML.
func (l *List) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = List{{Pattern: v}}
		return nil

	case map[string]any:
		s, err := specFromMap(v)
		if err != nil {
			return err
		}

		*l = List{s}
		return nil

	case []any:
		res := make(List, 0, len(v))
		for _, item := range v {
			var sub List
			if err := sub.UnmarshalTOML(item); err != nil {
				return err
			}

			res = append(res, sub...)
		}

		*l = res
		return nil

	default:
		return fmt.Errorf("unexpected pattern value of type %T", data)
	}
}

func specFromMap(m map[string]any) (Spec, error) {
	var s Spec
	for k, v := range m {
		str, ok := v.(string)
		if !ok {
			return s, fmt.Errorf("pattern field %q must be a string, got %T", k, v)
		}

		switch k {
		case "pattern":
			s.Pattern = str
		case "flags":
			s.Flags = str
		case "kind":
			if err := s.Kind.UnmarshalText([]byte(str)); err != nil {
				return s, err
			}
		default:
			return s, fmt.Errorf("unknown pattern field %q", k)
		}
	}

	return s, nil
}

// Set is a compiled List.
type Set struct {
	matchers []Matcher
}

// CompileList compiles every pattern of the list.
func CompileList(l List) (*Set, error) {
	res := &Set{matchers: make([]Matcher, 0, len(l))}
	for i, s := range l {
		m, err := Compile(s)
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i, err)
		}

		res.matchers = append(res.matchers, m)
	}

	return res, nil
}

// Empty checks if there are no patterns in the set.
func (s *Set) Empty() bool {
	return s == nil || len(s.matchers) == 0
}

// Match checks if any pattern of the set matches.
func (s *Set) Match(text string) bool {
	if s == nil {
		return false
	}

	for _, m := range s.matchers {
		if m.Match(text) {
			return true
		}
	}

	return false
}
