package report

import (
	"sync"
	"testing"

	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/sortrules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name    string
		phase   ReportPhase
		rule    sortrules.Rule
		left    string
		right   string
		message string
	}{
		{
			name:    "order-phase plain order",
			phase:   ReportOrder,
			rule:    sortrules.Order(),
			left:    "c",
			right:   "a",
			message: `Expected "a" to come before "c".`,
		},
		{
			name:    "order-phase dependency",
			phase:   ReportOrder,
			rule:    sortrules.DependencyOrder(),
			left:    "B",
			right:   "A",
			message: `Expected dependency "B" to come before "A".`,
		},
		{
			name:    "spacing-phase missed",
			phase:   ReportSpacing,
			rule:    sortrules.MissedSpacing(),
			left:    "x",
			right:   "y",
			message: `Missed spacing between "x" and "y".`,
		},
	}

	var r Reporter

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := r.Phase(tt.phase)
			phase.Report(
				tt.rule,
				&element.Element{Name: tt.left, OriginalIndex: i},
				&element.Element{Name: tt.right, OriginalIndex: i + 1},
				"",
			)
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.Rule != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.Rule, want.rule)
		}
		if rep.Message != want.message {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, want.message)
		}
		if rep.Pos().Name != want.right {
			t.Errorf("[%s] position mismatch: got %s, want %s", want.name, rep.Pos().Name, want.right)
		}
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:   ReportOrder,
				Rule:    sortrules.Order(),
				Right:   &element.Element{OriginalIndex: i},
				Message: "parallel add",
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	reps2 := r.Reports()
	if reps2[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
