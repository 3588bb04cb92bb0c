// Package trit implements the balanced ternary digit.
//
// A [Trit] is one of [Neg] (-1), [Neu] (0) or [Pos] (+1). It is a plain
// int8-backed value: copyable, comparable with ==, and safe to use from any
// number of goroutines. Every operation is a total function; nothing in this
// package panics or returns an error except the strict constructors [Parse]
// and [ParseOrder].
//
// # Logic
//
// [Trit.And] and [Trit.Or] are the ternary conjunction and disjunction with
// Neg playing the role of false: And picks the more negative operand and Or
// the more positive one. [Trit.Xor] is not arithmetic: a neutral operand
// yields Neu, two equal poles yield Neg and two different poles yield Pos.
//
// # Addition
//
// [Trit.Add] sums the integer codes and reports overflow separately:
//
//	overflow, sum := trit.Pos.Add(trit.Pos)
//	// overflow == trit.PosOverflow, sum == trit.Neu
//
// The returned digit is FromInt(raw sum), so out-of-range sums fall back to
// Neu rather than wrapping. Callers that ignore the overflow still get a
// well-defined value.
//
// # Ordering
//
// Two comparators are available as [Order] strategies. [OrderNatural] is
// Neg < Neu < Pos. [OrderLegacy] reproduces an older comparator in which Pos
// is greater than everything else and every other unequal pair compares as
// Less in both directions; it is not a total order and exists only for
// compatibility. The logic operators never consult either comparator.
package trit
