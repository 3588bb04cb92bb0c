// Package tryte implements a six-trit balanced ternary word.
package tryte

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-ternary/collectable"
	"github.com/amp-labs/amp-ternary/compare"
	"github.com/amp-labs/amp-ternary/errors"
	"github.com/amp-labs/amp-ternary/sortable"
	"github.com/amp-labs/amp-ternary/trit"
)

const (
	// Size is the number of trits in a Tryte.
	Size = 6

	// MaxValue is the largest value a Tryte can hold, (3^6 - 1) / 2.
	MaxValue = 364

	// MinValue is the smallest value a Tryte can hold.
	MinValue = -MaxValue
)

// Tryte is a fixed sequence of six trits, most significant first.
// The zero value is all-Neu and decodes to 0.
type Tryte [Size]trit.Trit

var (
	_ collectable.Collectable[Tryte] = Tryte{}
	_ sortable.Sortable[Tryte]       = Tryte{}
)

// New builds a Tryte from trits given most significant first. Fewer than Size
// trits are right-aligned, so New(trit.Pos) is 1. When more than Size trits are
// given only the last Size (least significant) are kept.
func New(trits ...trit.Trit) Tryte {
	var t Tryte

	if len(trits) > Size {
		trits = trits[len(trits)-Size:]
	}

	copy(t[Size-len(trits):], trits)

	return t
}

// FromInt encodes v in balanced ternary. Values outside MinValue..MaxValue
// are rejected with errors.ErrOutOfRange.
func FromInt(v int) (Tryte, error) {
	if v < MinValue || v > MaxValue {
		return Tryte{}, fmt.Errorf("%w: %d does not fit in a tryte", errors.ErrOutOfRange, v)
	}

	var t Tryte

	for pos := Size - 1; pos >= 0; pos-- {
		switch ((v % 3) + 3) % 3 {
		case 1:
			t[pos] = trit.Pos
			v--
		case 2:
			t[pos] = trit.Neg
			v++
		default:
			t[pos] = trit.Neu
		}

		v /= 3
	}

	return t, nil
}

// FromCodes builds a Tryte from integer trit codes, most significant first.
// Unlike New it validates every code and reports all invalid positions at once.
func FromCodes(codes ...int) (Tryte, error) {
	if len(codes) != Size {
		return Tryte{}, fmt.Errorf("%w: need %d trit codes, got %d", errors.ErrOutOfRange, Size, len(codes))
	}

	var (
		t    Tryte
		errs errors.Collection
	)

	for i, code := range codes {
		tr, err := trit.Parse(code)
		if err != nil {
			errs.Add(fmt.Errorf("position %d: %w", i, err))

			continue
		}

		t[i] = tr
	}

	if errs.HasError() {
		return Tryte{}, errs.GetError()
	}

	return t, nil
}

// Int decodes the tryte as a base-3 positional sum, weighting the last trit
// by 3^0 and the first by 3^5. The result is always within MinValue..MaxValue.
func (t Tryte) Int() int16 {
	var (
		total  int16
		weight int16 = 1
	)

	for i := Size - 1; i >= 0; i-- {
		switch t[i] {
		case trit.Pos:
			total += weight
		case trit.Neg:
			total -= weight
		}

		weight *= 3
	}

	return total
}

// Trit returns the trit at index i, where 0 is the most significant position.
// It panics if i is outside 0..Size-1, like any array index.
func (t Tryte) Trit(i int) trit.Trit {
	return t[i]
}

// Not applies trit.Trit.Not to every position. In balanced ternary this is
// negation: t.Not().Int() == -t.Int().
func (t Tryte) Not() Tryte {
	var out Tryte

	for i, tr := range t {
		out[i] = tr.Not()
	}

	return out
}

// Equals reports whether both trytes decode to the same value.
func (t Tryte) Equals(other Tryte) bool {
	return t.Int() == other.Int()
}

// LessThan orders trytes by their decoded value.
func (t Tryte) LessThan(other Tryte) bool {
	return t.Int() < other.Int()
}

// Compare orders a against b by decoded value.
func Compare(a, b Tryte) compare.Ordering {
	return compare.OrderedComparator[int16]()(a.Int(), b.Int())
}

// String renders each trit as '-', '0' or '+', most significant first.
func (t Tryte) String() string {
	var sb strings.Builder

	sb.Grow(Size)

	for _, tr := range t {
		switch tr {
		case trit.Pos:
			sb.WriteByte('+')
		case trit.Neg:
			sb.WriteByte('-')
		default:
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
