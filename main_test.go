package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/goast"
)

func TestSortful(t *testing.T) {
	tests := []struct {
		name       string
		pkg        string
		config     string
		constructs string
	}{
		{
			name:       "imports",
			pkg:        "imports",
			constructs: "imports",
		},
		{
			name:       "constants",
			pkg:        "constants",
			constructs: "constants,variables",
		},
		{
			name:       "literals",
			pkg:        "literals",
			constructs: "literals",
		},
		{
			name:       "spacing from config",
			pkg:        "spacing",
			config:     "spacing.yaml",
			constructs: "imports",
		},
	}

	dir := analysistest.TestData()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlag(t, "constructs", tt.constructs)
			cfg := ""
			if tt.config != "" {
				cfg = filepath.Join(dir, tt.config)
			}
			setFlag(t, "config", cfg)

			analysistest.RunWithSuggestedFixes(t, dir, Analyzer, tt.pkg)
		})
	}
}

func setFlag(t *testing.T, name, value string) {
	t.Helper()

	prev := Analyzer.Flags.Lookup(name).Value.String()
	if err := Analyzer.Flags.Set(name, value); err != nil {
		t.Fatalf("set flag %s: %s", name, err)
	}
	t.Cleanup(func() {
		if err := Analyzer.Flags.Set(name, prev); err != nil {
			t.Errorf("restore flag %s: %s", name, err)
		}
	})
}

func TestConstructSet(t *testing.T) {
	s := constructSet{}
	if err := s.Set("literals, imports"); err != nil {
		t.Fatal(err)
	}

	if got := s.String(); got != "imports,literals" {
		t.Errorf("unexpected set %q", got)
	}
	expectedNames := map[string]bool{
		config.ConstructImports:  true,
		config.ConstructLiterals: true,
	}
	if got := s.names(); !reflect.DeepEqual(expectedNames, got) {
		deepequal.SideBySide(t, "names", expectedNames, got)
		t.Error("unexpected construct names")
	}

	if err := s.Set("imports,structs"); err == nil {
		t.Error("error expected for unknown construct")
	}
	if got := s.String(); got != "imports,literals" {
		t.Errorf("set must stay intact after failure, got %q", got)
	}
}

func TestNewDirectives(t *testing.T) {
	d, err := newDirectives([]string{
		"lint:keep",
		"lint:keep-below=region-start",
		"lint:keep-end=region-end",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text  string
		scope goast.Scope
		ok    bool
	}{
		{text: "// lint:keep", scope: goast.ScopeLine, ok: true},
		{text: "//lint:keep-below", scope: goast.ScopeRegionStart, ok: true},
		{text: "/* lint:keep-end */", scope: goast.ScopeRegionEnd, ok: true},
		{text: "//sortful:disable-next-line", scope: goast.ScopeNextLine, ok: true},
		{text: "//nolint:errcheck,sortful // legacy", scope: goast.ScopeLine, ok: true},
		{text: "//nolint:errcheck", ok: false},
		{text: "// just a comment", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			scope, ok := d.Lookup(tt.text)
			if ok != tt.ok || scope != tt.scope {
				t.Errorf("expected (%s, %v), got (%s, %v)", tt.scope, tt.ok, scope, ok)
			}
		})
	}

	if _, err := newDirectives([]string{"lint:keep=everywhere"}); err == nil {
		t.Error("error expected for unknown scope")
	}
}

func TestConstructDefaults(t *testing.T) {
	defaults := newConstructDefaults(map[Construct]config.Options{
		ConstructLiterals: {Type: config.SortTypeNatural},
	})

	imports := defaults[ConstructImports]
	if imports.Type != config.SortTypeAlphabetical || imports.IsPartitionByNewLine() {
		t.Errorf("unexpected imports defaults: %s, partitionByNewLine=%v", imports.Type, imports.IsPartitionByNewLine())
	}
	expectedGroups := config.Groups{
		config.Group(goast.GroupStd),
		config.Group(goast.GroupExternal),
	}
	if !reflect.DeepEqual(expectedGroups, imports.Groups) {
		deepequal.SideBySide(t, "imports groups", expectedGroups, imports.Groups)
		t.Error("unexpected imports groups")
	}

	constants := defaults[ConstructConstants]
	if !constants.IsPartitionByNewLine() {
		t.Error("constants must be partitioned by blank lines by default")
	}

	literals := defaults[ConstructLiterals]
	if literals.Type != config.SortTypeNatural || literals.IsPartitionByNewLine() {
		t.Errorf("custom literals defaults expected, got %s, partitionByNewLine=%v", literals.Type, literals.IsPartitionByNewLine())
	}
}
