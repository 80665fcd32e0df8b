package goast

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

// Literal element modifiers and predefined groups.
const (
	ModifierCall = "call"

	GroupMultiline = "multiline"
	GroupCall      = "call"
	GroupKey       = "key"
)

// Literal returns keyed elements of a composite literal. Literals with positional elements
// or less than two elements are not lists.
func (x *Extractor) Literal(lit *ast.CompositeLit) (*List, bool) {
	if len(lit.Elts) < 2 || !lit.Lbrace.IsValid() || !lit.Rbrace.IsValid() {
		return nil, false
	}

	elems := make([]*element.Element, 0, len(lit.Elts))
	nodes := make([]ast.Node, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, false
		}

		elems = append(elems, x.keyElement(kv))
		nodes = append(nodes, kv)
	}

	x.attach(elems, nodes, x.offset(lit.Lbrace)+1, x.offset(lit.Rbrace))
	return &List{
		Construct: config.ConstructLiterals,
		Node:      lit,
		Elements:  elems,
	}, true
}

func (x *Extractor) keyElement(kv *ast.KeyValueExpr) *element.Element {
	name := x.text(kv.Key.Pos(), kv.Key.End())
	if bl, ok := kv.Key.(*ast.BasicLit); ok && bl.Kind == token.STRING {
		if v, err := strconv.Unquote(bl.Value); err == nil {
			name = v
		}
	}

	var modifiers []string
	var predefined []string
	if x.multiline(kv) {
		modifiers = append(modifiers, ModifierMultiline)
		predefined = append(predefined, GroupMultiline)
	}
	if hasCall(kv.Value) {
		modifiers = append(modifiers, ModifierCall)
		predefined = append(predefined, GroupCall)
	}
	predefined = append(predefined, GroupKey)

	return &element.Element{
		Name: name,
		Facts: element.Facts{
			Selector:   "key",
			Modifiers:  modifiers,
			Value:      x.text(kv.Value.Pos(), kv.Value.End()),
			Predefined: predefined,
		},
		Payload: kv,
	}
}

func hasCall(n ast.Node) bool {
	var found bool
	ast.Inspect(n, func(n ast.Node) bool {
		if _, ok := n.(*ast.CallExpr); ok {
			found = true
		}
		return !found
	})

	return found
}
