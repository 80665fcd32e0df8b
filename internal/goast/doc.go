// Package goast extracts sortable element lists from Go syntax trees.
//
// Supported constructs:
//
//   - imports
//     Specs of a parenthesized import declaration, named by import path.
//
//   - constants, variables
//     Specs of parenthesized package level const and var blocks. Blocks with implicit values
//     or iota are left alone since their order carries meaning. References between specs of
//     one block become element dependencies.
//
//   - literals
//     Keyed elements of composite literals, named by key.
//
// Comments are owned explicitly: a comment on the line an element ends on is its trailing
// comment, other comments between two elements lead the latter one. Comments inside an element
// are part of it. Elements covered by suppression directives are disabled.
package goast
