// Package sortrules defines the canonical rule codes (SRT-series) reported by sortful.
// Each rule represents a distinct kind of ordering or spacing violation.
//
// Rule numbering scheme:
//
//	000–099  Ordering
//	100–199  Spacing
package sortrules

import "fmt"

// Rule represents a sortful rule code (SRT-series).
type Rule int

const (
	ruleInvalid Rule = iota

	SRT010Order
	SRT020GroupOrder
	SRT030DependencyOrder
	SRT110MissedSpacing
	SRT120ExtraSpacing
)

// String returns the canonical code and short name of the rule.
// Example: "SRT010: Order"
func (r Rule) String() string {
	switch r {
	case SRT010Order:
		return "SRT010: Order"
	case SRT020GroupOrder:
		return "SRT020: GroupOrder"
	case SRT030DependencyOrder:
		return "SRT030: DependencyOrder"
	case SRT110MissedSpacing:
		return "SRT110: MissedSpacing"
	case SRT120ExtraSpacing:
		return "SRT120: ExtraSpacing"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case SRT010Order:
		return "Elements of one group must follow the configured sort order."
	case SRT020GroupOrder:
		return "Groups must follow the order they are declared in."
	case SRT030DependencyOrder:
		return "An element must come after every element it references."
	case SRT110MissedSpacing:
		return "Required blank lines between groups are missing."
	case SRT120ExtraSpacing:
		return "There are more blank lines than allowed."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Category returns a short machine-friendly rule id.
func (r Rule) Category() string {
	switch r {
	case SRT010Order:
		return "unexpectedOrder"
	case SRT020GroupOrder:
		return "unexpectedGroupOrder"
	case SRT030DependencyOrder:
		return "unexpectedDependencyOrder"
	case SRT110MissedSpacing:
		return "missedSpacing"
	case SRT120ExtraSpacing:
		return "extraSpacing"
	default:
		return "unknown"
	}
}

// IsSpacing checks if the rule is about blank lines rather than order.
func (r Rule) IsSpacing() bool {
	return r >= SRT110MissedSpacing && r <= SRT120ExtraSpacing
}

// Message renders the diagnostic text for a pair of elements.
func (r Rule) Message(left, right string) string {
	switch r {
	case SRT010Order:
		return fmt.Sprintf("Expected %q to come before %q.", right, left)
	case SRT020GroupOrder:
		return fmt.Sprintf("Expected %q to come before %q (group order).", right, left)
	case SRT030DependencyOrder:
		return fmt.Sprintf("Expected dependency %q to come before %q.", left, right)
	case SRT110MissedSpacing:
		return fmt.Sprintf("Missed spacing between %q and %q.", left, right)
	case SRT120ExtraSpacing:
		return fmt.Sprintf("Extra spacing between %q and %q.", left, right)
	default:
		return r.Description()
	}
}

// Canonical constructors.

func Order() Rule           { return SRT010Order }
func GroupOrder() Rule      { return SRT020GroupOrder }
func DependencyOrder() Rule { return SRT030DependencyOrder }
func MissedSpacing() Rule   { return SRT110MissedSpacing }
func ExtraSpacing() Rule    { return SRT120ExtraSpacing }
