// Package report collects diagnostics produced while ordering one element sequence.
package report

import (
	"fmt"
	"sync"

	"github.com/sirkon/sortful/internal/element"
	"github.com/sirkon/sortful/internal/sortrules"
)

// Reporter collects and classifies violations discovered during ordering.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry for a pair of elements.
type Report struct {
	Phase   ReportPhase
	Rule    sortrules.Rule
	Left    *element.Element
	Right   *element.Element
	Message string
}

// Pos returns the element the diagnostic should be reported at.
func (r Report) Pos() *element.Element {
	return r.Right
}

// ReportPhase marks the ordering stage where a report was generated.
type ReportPhase int

const (
	reportPhaseInvalid ReportPhase = iota
	ReportOrder                    // order, group order and dependency violations
	ReportSpacing                  // blank line violations
)

func (p ReportPhase) String() string {
	switch p {
	case ReportOrder:
		return "order"
	case ReportSpacing:
		return "spacing"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a phase-bound reporter that sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a rule violation between left and right under the bound phase.
// The message is rendered from the rule when empty.
func (rp *ReporterPhase) Report(rule sortrules.Rule, left, right *element.Element, message string) {
	if message == "" {
		message = rule.Message(left.Name, right.Name)
	}

	rp.parent.Report(Report{
		Phase:   rp.phase,
		Rule:    rule,
		Left:    left,
		Right:   right,
		Message: message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}
