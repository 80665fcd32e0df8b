package goast

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

// Constant and variable modifiers and predefined groups.
const (
	ModifierExported   = "exported"
	ModifierUnexported = "unexported"
	ModifierMultiline  = "multiline"

	GroupExported   = "exported"
	GroupUnexported = "unexported"
)

// Values returns package level const and var blocks whose specs all have explicit values.
func (x *Extractor) Values() []*List {
	var res []*List
	for _, decl := range x.file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
			continue
		}
		if !gen.Lparen.IsValid() || len(gen.Specs) < 2 {
			continue
		}

		if l, ok := x.valueList(gen); ok {
			res = append(res, l)
		}
	}

	return res
}

func (x *Extractor) valueList(gen *ast.GenDecl) (*List, bool) {
	construct := config.ConstructVariables
	selector := "variable"
	if gen.Tok == token.CONST {
		construct = config.ConstructConstants
		selector = "constant"
	}

	local := map[string]struct{}{}
	for _, spec := range gen.Specs {
		vs := spec.(*ast.ValueSpec)
		if len(vs.Values) == 0 {
			// Implicit repetition of the previous expression.
			return nil, false
		}
		if gen.Tok == token.CONST && x.usesIota(vs) {
			return nil, false
		}
		for _, n := range vs.Names {
			local[n.Name] = struct{}{}
		}
	}

	elems := make([]*element.Element, 0, len(gen.Specs))
	nodes := make([]ast.Node, 0, len(gen.Specs))
	for _, spec := range gen.Specs {
		vs := spec.(*ast.ValueSpec)

		var names []string
		for _, n := range vs.Names {
			if n.Name != "_" {
				names = append(names, n.Name)
			}
		}

		name := vs.Names[0].Name
		visibility := ModifierUnexported
		if ast.IsExported(name) {
			visibility = ModifierExported
		}
		modifiers := []string{visibility}
		if x.multiline(vs) {
			modifiers = append(modifiers, ModifierMultiline)
		}

		e := &element.Element{
			Name:         name,
			Dependencies: x.dependencies(gen, vs, local),
			Facts: element.Facts{
				Selector:   selector,
				Modifiers:  modifiers,
				Value:      x.text(vs.Values[0].Pos(), vs.Values[len(vs.Values)-1].End()),
				Predefined: []string{visibility},
			},
			Payload: vs,
		}
		if len(vs.Names) > 1 {
			e.DependencyNames = names
		}

		elems = append(elems, e)
		nodes = append(nodes, vs)
	}

	x.attach(elems, nodes, x.offset(gen.Lparen)+1, x.offset(gen.Rparen))
	return &List{
		Construct: construct,
		Node:      gen,
		Elements:  elems,
	}, true
}

func (x *Extractor) usesIota(vs *ast.ValueSpec) bool {
	var found bool
	for _, v := range vs.Values {
		ast.Inspect(v, func(n ast.Node) bool {
			id, ok := n.(*ast.Ident)
			if !ok || id.Name != "iota" {
				return !found
			}

			if x.info == nil {
				found = true
				return false
			}
			if c, ok := x.info.Uses[id].(*types.Const); ok && c.Pkg() == nil {
				found = true
			}
			return !found
		})
	}

	return found
}

// dependencies collects names of block members referenced by spec values. With type info
// only objects declared in the block itself count, so shadowed names are not mistaken.
func (x *Extractor) dependencies(gen *ast.GenDecl, vs *ast.ValueSpec, local map[string]struct{}) []string {
	var res []string
	add := func(name string) {
		if !slices.Contains(res, name) {
			res = append(res, name)
		}
	}

	for _, v := range vs.Values {
		ast.Inspect(v, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.SelectorExpr:
				// Only the qualifier may refer to a block member.
				ast.Inspect(n.X, func(n ast.Node) bool {
					if id, ok := n.(*ast.Ident); ok {
						if name, ok := x.localRef(gen, id, local); ok {
							add(name)
						}
					}
					return true
				})
				return false

			case *ast.KeyValueExpr:
				// Struct field keys are not references.
				if id, ok := n.Key.(*ast.Ident); ok && x.fieldKey(id) {
					ast.Inspect(n.Value, func(n ast.Node) bool {
						if id, ok := n.(*ast.Ident); ok {
							if name, ok := x.localRef(gen, id, local); ok {
								add(name)
							}
						}
						return true
					})
					return false
				}

			case *ast.Ident:
				if name, ok := x.localRef(gen, n, local); ok {
					add(name)
				}
			}
			return true
		})
	}

	return res
}

func (x *Extractor) localRef(gen *ast.GenDecl, id *ast.Ident, local map[string]struct{}) (string, bool) {
	if x.info == nil {
		_, ok := local[id.Name]
		return id.Name, ok
	}

	obj := x.info.Uses[id]
	if obj == nil {
		return "", false
	}
	if obj.Pos() < gen.Pos() || obj.Pos() >= gen.End() {
		return "", false
	}
	if obj.Pkg() == nil || obj.Parent() != obj.Pkg().Scope() {
		// Fields and locals of function literals declared inside the block.
		return "", false
	}

	return obj.Name(), true
}

// fieldKey checks if a composite literal key names a struct field. Without type info every
// identifier key is taken for a field name.
func (x *Extractor) fieldKey(id *ast.Ident) bool {
	if x.info == nil {
		return true
	}

	v, ok := x.info.Uses[id].(*types.Var)
	return ok && v.IsField()
}
