package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/sortful/internal/element"
)

// elementsFile is the YAML shape of an element sequence.
type elementsFile struct {
	Elements []elementSpec `yaml:"elements"`
}

type elementSpec struct {
	Name             string   `yaml:"name"`
	Size             int      `yaml:"size"`
	Selector         string   `yaml:"selector"`
	Modifiers        []string `yaml:"modifiers"`
	Value            string   `yaml:"value"`
	Decorators       []string `yaml:"decorators"`
	Predefined       []string `yaml:"predefined"`
	Dependencies     []string `yaml:"dependencies"`
	DependencyNames  []string `yaml:"dependencyNames"`
	Disabled         bool     `yaml:"disabled"`
	BlankLinesBefore int      `yaml:"blankLinesBefore"`
	Comments         []string `yaml:"comments"`
}

func loadElements(path string) ([]*element.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read elements: %w", err)
	}

	return parseElements(data)
}

func parseElements(data []byte) ([]*element.Element, error) {
	var f elementsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}

	res := make([]*element.Element, 0, len(f.Elements))
	for i, s := range f.Elements {
		if s.Name == "" {
			return nil, fmt.Errorf("element #%d: name must not be empty", i)
		}
		if s.BlankLinesBefore < 0 {
			return nil, fmt.Errorf("element %q: negative blankLinesBefore", s.Name)
		}

		res = append(res, s.element())
	}

	return res, nil
}

func (s elementSpec) element() *element.Element {
	size := s.Size
	if size == 0 {
		size = len(s.Name)
	}

	e := &element.Element{
		Name:             s.Name,
		Size:             size,
		Dependencies:     s.Dependencies,
		DependencyNames:  s.DependencyNames,
		IsDisabled:       s.Disabled,
		BlankLinesBefore: s.BlankLinesBefore,
		Facts: element.Facts{
			Selector:   s.Selector,
			Modifiers:  s.Modifiers,
			Value:      s.Value,
			Decorators: s.Decorators,
			Predefined: s.Predefined,
		},
	}
	for _, c := range s.Comments {
		e.LeadingComments = append(e.LeadingComments, element.Comment{
			Text:  c,
			Block: strings.HasPrefix(c, "/*"),
		})
	}

	return e
}
