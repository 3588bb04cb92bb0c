// Package sortable defines the Sortable interface, which extends
// [github.com/amp-labs/amp-ternary/compare.Comparable] with a LessThan method.
//
// Both [github.com/amp-labs/amp-ternary/trit.Trit] (natural order
// Neg < Neu < Pos) and [github.com/amp-labs/amp-ternary/tryte.Tryte]
// (numeric order of the decoded value) implement it:
//
//	words := []tryte.Tryte{a, b, c}
//	sortable.Sort(words)
//	// words is now ordered by Int()
//
// A Sortable type must provide a strict weak order. The legacy trit comparator
// (trit.OrderLegacy) is deliberately not exposed through this interface because
// it does not satisfy that requirement.
package sortable
