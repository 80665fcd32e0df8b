// Package sortrules defines the canonical SRT-series rule codes reported by sortful.
//
// Every diagnostic the ordering engine produces carries one of these codes, so that hosts can
// print distinct messages and filter findings consistently.
//
// # Structure
//
// Rule codes follow the format “SRT<NNN>: <Name>” and are grouped by functional area:
//
//	000–099  Ordering: plain order, group order, dependency order
//	100–199  Spacing: missed or extra blank lines between groups
//
// Example:
//
//	sortrules.SRT010Order.String()   → "SRT010: Order"
//	sortrules.SRT010Order.Category() → "unexpectedOrder"
//
// # Messages
//
// Ordering messages are rendered for an adjacent pair of the original sequence:
//
//	Expected "a" to come before "c".
//	Expected dependency "B" to come before "A".
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - New rules must take the next free slot of their range.
package sortrules
