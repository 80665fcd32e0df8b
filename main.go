package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/engine"
	"github.com/sirkon/sortful/internal/goast"
)

const doc = `sortful checks that imports, constant and variable blocks and keyed literals are sorted

Groups, sort order, partitions and blank lines between groups are set up with a YAML or TOML
config file. Every reported list carries a suggested fix putting it in order.`

const name = "sortful"

// Analyzer is the main entry point for the linter
var Analyzer = &analysis.Analyzer{
	Name:     name,
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	flagConfig     string
	flagVerbose    bool
	flagConstructs = constructSet{
		ConstructImports:   true,
		ConstructConstants: true,
		ConstructVariables: true,
	}
)

func init() {
	Analyzer.Flags.StringVar(&flagConfig, "config", "", "path to a YAML or TOML config file")
	Analyzer.Flags.BoolVar(&flagVerbose, "verbose", false, "log checked lists to stderr")
	Analyzer.Flags.Var(flagConstructs, "constructs", "comma separated constructs to check: imports,constants,variables,literals")
}

func main() {
	singlechecker.Main(Analyzer)
}

// settings are resolved flags and config of a run.
type settings struct {
	enabled    map[string]bool
	options    map[string]config.Options
	directives *goast.Directives
	logger     *log.Logger
}

func loadSettings() (*settings, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: name,
		Level:  log.WarnLevel,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	file := &config.File{}
	if flagConfig != "" {
		f, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		file = f
	}

	res := &settings{
		enabled: flagConstructs.names(),
		options: map[string]config.Options{},
		logger:  logger,
	}

	defaults := newConstructDefaults(nil)
	custom := map[Construct][]string{}
	for c, on := range flagConstructs {
		if !on {
			continue
		}

		opts, err := file.ForBase(c.String(), defaults[c])
		if err != nil {
			return nil, fmt.Errorf("setup %s options: %w", c, err)
		}
		res.options[c.String()] = opts
		custom[c] = opts.DisableDirectives
	}

	directives, err := newDirectives(mergeDirectives(custom))
	if err != nil {
		return nil, fmt.Errorf("setup disable directives: %w", err)
	}
	res.directives = directives

	return res, nil
}

func run(pass *analysis.Pass) (any, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}

	extractors := map[*token.File]*goast.Extractor{}
	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}

		tf := pass.Fset.File(file.Pos())
		src, err := pass.ReadFile(tf.Name())
		if err != nil {
			s.logger.Debug("skip file", "file", tf.Name(), "err", err)
			continue
		}

		x, err := goast.NewExtractor(pass.Fset, file, src, pass.TypesInfo, s.directives)
		if err != nil {
			s.logger.Debug("skip file", "file", tf.Name(), "err", err)
			continue
		}
		extractors[tf] = x

		var lists []*goast.List
		if s.enabled[config.ConstructImports] {
			lists = append(lists, x.Imports()...)
		}
		for _, l := range x.Values() {
			if s.enabled[l.Construct] {
				lists = append(lists, l)
			}
		}
		for _, l := range lists {
			if err := checkList(pass, s, tf, x, l); err != nil {
				return nil, err
			}
		}
	}

	if !s.enabled[config.ConstructLiterals] {
		return nil, nil
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CompositeLit)(nil),
	}

	var failure error
	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.CompositeLit) // No need to assert check since we only get composite literals.

		tf := pass.Fset.File(n.Pos())
		x, ok := extractors[tf]
		if !ok || failure != nil {
			return
		}

		l, ok := x.Literal(n)
		if !ok {
			return
		}

		failure = checkList(pass, s, tf, x, l)
	})

	return nil, failure
}

// checkList reports violations of a list. The fix goes with the first diagnostic only,
// it puts the whole list in order.
func checkList(pass *analysis.Pass, s *settings, tf *token.File, x *goast.Extractor, l *goast.List) error {
	res, err := engine.ComputeOrder(l.Elements, s.options[l.Construct])
	if err != nil {
		return fmt.Errorf("order %s at %s: %w", l.Construct, pass.Fset.Position(l.Node.Pos()), err)
	}

	s.logger.Debug(
		"list checked",
		"construct", l.Construct,
		"pos", pass.Fset.Position(l.Node.Pos()),
		"elements", len(l.Elements),
		"diagnostics", len(res.Diagnostics),
	)
	if len(res.Diagnostics) == 0 {
		return nil
	}

	var fixes []analysis.SuggestedFix
	edits, err := res.Fix(x.Source())
	switch {
	case err != nil:
		s.logger.Debug("no fix", "construct", l.Construct, "pos", pass.Fset.Position(l.Node.Pos()), "err", err)
	case len(edits) > 0:
		sf := analysis.SuggestedFix{
			Message: fmt.Sprintf("Sort %s", l.Construct),
		}
		for _, e := range edits {
			sf.TextEdits = append(sf.TextEdits, analysis.TextEdit{
				Pos:     tf.Pos(e.Span.Start),
				End:     tf.Pos(e.Span.End),
				NewText: []byte(e.NewText),
			})
		}
		fixes = append(fixes, sf)
	}

	for i, d := range res.Diagnostics {
		at := d.Pos()
		diag := analysis.Diagnostic{
			Pos:      tf.Pos(at.Span.Start),
			End:      tf.Pos(at.Span.End),
			Category: d.Rule.Category(),
			Message:  d.Message,
		}
		if i == 0 {
			diag.SuggestedFixes = fixes
		}

		pass.Report(diag)
	}

	return nil
}
