package goast

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

// Import modifiers and predefined groups.
const (
	ModifierNamed = "named"
	ModifierBlank = "blank"
	ModifierDot   = "dot"

	GroupSideEffect = "side-effect"
	GroupStd        = "std"
	GroupExternal   = "external"
)

// Imports returns specs of every parenthesized import declaration.
func (x *Extractor) Imports() []*List {
	var res []*List
	for _, decl := range x.file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT || !gen.Lparen.IsValid() || len(gen.Specs) < 2 {
			continue
		}

		elems := make([]*element.Element, 0, len(gen.Specs))
		nodes := make([]ast.Node, 0, len(gen.Specs))
		for _, spec := range gen.Specs {
			is := spec.(*ast.ImportSpec)
			elems = append(elems, importElement(is))
			nodes = append(nodes, is)
		}

		x.attach(elems, nodes, x.offset(gen.Lparen)+1, x.offset(gen.Rparen))
		res = append(res, &List{
			Construct: config.ConstructImports,
			Node:      gen,
			Elements:  elems,
		})
	}

	return res
}

func importElement(is *ast.ImportSpec) *element.Element {
	path, err := strconv.Unquote(is.Path.Value)
	if err != nil {
		path = is.Path.Value
	}

	var modifiers []string
	var predefined []string
	if is.Name != nil {
		switch is.Name.Name {
		case "_":
			modifiers = append(modifiers, ModifierBlank)
			predefined = append(predefined, GroupSideEffect)
		case ".":
			modifiers = append(modifiers, ModifierDot)
		default:
			modifiers = append(modifiers, ModifierNamed)
		}
	}
	if isStd(path) {
		predefined = append(predefined, GroupStd)
	} else {
		predefined = append(predefined, GroupExternal)
	}

	return &element.Element{
		Name: path,
		Facts: element.Facts{
			Selector:   "import",
			Modifiers:  modifiers,
			Value:      path,
			Predefined: predefined,
		},
		Payload: is,
	}
}

// isStd reports standard library paths: their first element has no dot.
func isStd(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
