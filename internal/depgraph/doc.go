// Package depgraph builds the reference graph of one partition's elements and computes an
// order where every element goes after the elements it references.
//
// Nodes here are elements of a single partition, addressed by their index in the partition.
//
// Edges are:
//
//   - A → B when A's definition references B by one of B's names.
//
// References to names absent from the partition are not edges. Self references are ignored.
//
// The graph may contain cycles. They are broken deterministically: elements are walked depth
// first in priority order, dependencies of a node in priority order too, and the first edge of a
// cycle met by the walk, the one leaving the node of the cycle entered first, is dropped. Every
// dropped edge is reported back, so only those edges may be violated by the resulting order.
package depgraph
