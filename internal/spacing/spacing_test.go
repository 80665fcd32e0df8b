package spacing

import (
	"testing"

	"github.com/sirkon/sortful/internal/config"
	"github.com/sirkon/sortful/internal/sortrules"
)

func TestRequired(t *testing.T) {
	groups := config.Groups{
		config.Group("a"),
		config.Directive(config.NewlinesExactly(1)),
		config.Group("b"),
		config.Directive(config.NewlinesExactly(2)),
		config.Directive(config.NewlinesBetweenIgnore),
		config.Group("c"),
		config.Group("d"),
	}

	type want struct {
		lines    int
		enforced bool
	}
	tests := []struct {
		name   string
		global config.NewlinesBetween
		left   string
		right  string
		want   want
	}{
		{
			name:   "same group",
			global: config.NewlinesBetweenNever,
			left:   "a",
			right:  "a",
			want:   want{0, true},
		},
		{
			name:   "same group ignored",
			global: config.NewlinesBetweenIgnore,
			left:   "b",
			right:  "b",
			want:   want{0, false},
		},
		{
			name:   "directive",
			global: config.NewlinesBetweenNever,
			left:   "a",
			right:  "b",
			want:   want{1, true},
		},
		{
			name:   "directive backwards",
			global: config.NewlinesBetweenIgnore,
			left:   "b",
			right:  "a",
			want:   want{1, true},
		},
		{
			name:   "largest directive wins",
			global: config.NewlinesBetweenNever,
			left:   "a",
			right:  "c",
			want:   want{2, true},
		},
		{
			name:   "global without directives",
			global: config.NewlinesBetweenAlways,
			left:   "c",
			right:  "d",
			want:   want{1, true},
		},
		{
			name:   "unlisted group",
			global: config.NewlinesExactly(3),
			left:   "d",
			right:  "unknown",
			want:   want{3, true},
		},
		{
			name:   "nothing enforced",
			global: config.NewlinesBetweenIgnore,
			left:   "c",
			right:  "d",
			want:   want{0, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&config.Options{NewlinesBetween: tt.global, Groups: groups})
			lines, enforced := e.Required(tt.left, tt.right)
			if got := (want{lines, enforced}); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	e := New(&config.Options{
		NewlinesBetween: config.NewlinesBetweenNever,
		Groups: config.Groups{
			config.Group("std"),
			config.Directive(config.NewlinesBetweenAlways),
			config.Group("external"),
		},
	})

	tests := []struct {
		name   string
		left   string
		right  string
		actual int
		rule   sortrules.Rule
		failed bool
	}{
		{
			name:   "missed",
			left:   "std",
			right:  "external",
			actual: 0,
			rule:   sortrules.MissedSpacing(),
			failed: true,
		},
		{
			name:   "extra",
			left:   "std",
			right:  "external",
			actual: 2,
			rule:   sortrules.ExtraSpacing(),
			failed: true,
		},
		{
			name:   "extra inside group",
			left:   "std",
			right:  "std",
			actual: 1,
			rule:   sortrules.ExtraSpacing(),
			failed: true,
		},
		{
			name:   "exact",
			left:   "external",
			right:  "std",
			actual: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, failed := e.Check(tt.left, tt.right, tt.actual)
			if failed != tt.failed {
				t.Fatalf("expected failure %v, got %v", tt.failed, failed)
			}
			if failed && rule != tt.rule {
				t.Errorf("expected rule %s, got %s", tt.rule, rule)
			}
		})
	}
}
