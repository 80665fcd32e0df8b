package goast

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/element"
)

// List is a sortable element sequence found in a file.
type List struct {
	// Construct is one of config.Construct* names.
	Construct string

	// Node is the declaration or composite literal holding the list.
	Node     ast.Node
	Elements []*element.Element
}

// Extractor builds element lists out of a single file.
type Extractor struct {
	fset *token.FileSet
	file *ast.File
	tf   *token.File
	src  []byte
	info *types.Info
	supp *suppression
}

// NewExtractor creates an extractor over the file with the given source. Type info is optional,
// dependencies between constants and variables are resolved by name without it.
func NewExtractor(
	fset *token.FileSet,
	file *ast.File,
	src []byte,
	info *types.Info,
	directives *Directives,
) (*Extractor, error) {
	tf := fset.File(file.Pos())
	if tf == nil {
		return nil, fmt.Errorf("file is not registered in the file set")
	}
	if tf.Size() != len(src) {
		return nil, fmt.Errorf("source size %d does not match file size %d", len(src), tf.Size())
	}
	if directives == nil {
		directives = NewDirectives(nil)
	}

	return &Extractor{
		fset: fset,
		file: file,
		tf:   tf,
		src:  src,
		info: info,
		supp: directives.scan(fset, file),
	}, nil
}

// Source returns file source.
func (x *Extractor) Source() []byte {
	return x.src
}

// Lists returns every list of the given constructs in source order.
func (x *Extractor) Lists(constructs map[string]bool) []*List {
	var res []*List
	if constructs[config.ConstructImports] {
		res = append(res, x.Imports()...)
	}
	if constructs[config.ConstructConstants] || constructs[config.ConstructVariables] {
		for _, l := range x.Values() {
			if constructs[l.Construct] {
				res = append(res, l)
			}
		}
	}
	if constructs[config.ConstructLiterals] {
		ast.Inspect(x.file, func(n ast.Node) bool {
			if lit, ok := n.(*ast.CompositeLit); ok {
				if l, ok := x.Literal(lit); ok {
					res = append(res, l)
				}
			}
			return true
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Node.Pos() < res[j].Node.Pos()
	})
	return res
}

func (x *Extractor) offset(pos token.Pos) int {
	return x.tf.Offset(pos)
}

func (x *Extractor) line(offset int) int {
	return x.tf.Line(x.tf.Pos(offset))
}

func (x *Extractor) text(from, to token.Pos) string {
	return string(x.src[x.offset(from):x.offset(to)])
}

func (x *Extractor) multiline(n ast.Node) bool {
	return x.tf.Line(n.Pos()) != x.tf.Line(n.End())
}

// attach sets spans, comments, blank lines and disabled flags of elements lying in the list body.
// Node spans are given by nodes. The body spans [from, to) offsets.
func (x *Extractor) attach(elems []*element.Element, nodes []ast.Node, from, to int) {
	idx := newSpanIndex()
	for i, e := range elems {
		e.Span = element.Span{Start: x.offset(nodes[i].Pos()), End: x.offset(nodes[i].End())}
		e.Size = e.Span.Len()
		idx.Add(e.Span.Start, e.Span.End, i)
	}

	// Comments following the opening token on its line belong to the list itself.
	opener := x.line(from - 1)
	first := to
	if len(elems) > 0 {
		first = elems[0].Span.Start
	}

	for _, group := range x.file.Comments {
		if x.offset(group.End()) <= from || x.offset(group.Pos()) >= to {
			continue
		}

		for _, c := range group.List {
			start, end := x.offset(c.Pos()), x.offset(c.End())
			if start < from || end > to || idx.Find(start) >= 0 {
				continue
			}
			if start < first && x.line(start) == opener {
				continue
			}

			x.own(elems, start, end, c.Text)
		}
	}

	for i, e := range elems {
		e.IsDisabled = x.supp.covers(x.line(e.Span.Start), x.line(e.Span.End))
		if i == 0 {
			continue
		}

		// Blank lines between leading comments and the element move with it and are not counted.
		e.BlankLinesBefore = element.BlankLines(x.src, tailStart(elems[i-1]), headStart(e))
	}
}

// own attaches a comment to the element it belongs to, if any.
func (x *Extractor) own(elems []*element.Element, start, end int, text string) {
	k := sort.Search(len(elems), func(i int) bool {
		return elems[i].Span.Start >= end
	})

	comment := element.Comment{
		Span:  element.Span{Start: start, End: end},
		Text:  text,
		Block: text[1] == '*',
	}

	if k > 0 && x.line(elems[k-1].Span.End) == x.line(start) {
		prev := elems[k-1]
		if prev.TrailingComment != nil {
			// More than one comment on the line: they travel together.
			comment.Span.Start = prev.TrailingComment.Span.Start
			comment.Text = string(x.src[comment.Span.Start:end])
		}
		prev.TrailingComment = &comment
		return
	}

	if k < len(elems) {
		elems[k].LeadingComments = append(elems[k].LeadingComments, comment)
	}
}

func headStart(e *element.Element) int {
	if len(e.LeadingComments) > 0 {
		return e.LeadingComments[0].Span.Start
	}

	return e.Span.Start
}

func tailStart(e *element.Element) int {
	if e.TrailingComment != nil {
		return e.TrailingComment.Span.End
	}

	return e.Span.End
}
