package trit

import (
	"fmt"

	"github.com/amp-labs/amp-ternary/errors"
	"github.com/amp-labs/amp-ternary/sortable"
)

// Trit is a balanced ternary digit. The zero value is Neu.
type Trit int8

const (
	// Neg is the negative digit, -1.
	Neg Trit = -1

	// Neu is the neutral digit, 0.
	Neu Trit = 0

	// Pos is the positive digit, +1.
	Pos Trit = 1
)

var _ sortable.Sortable[Trit] = Neu

// All returns the three trits in natural order.
func All() []Trit {
	return []Trit{Neg, Neu, Pos}
}

// FromInt maps -1, 0 and 1 to Neg, Neu and Pos. Any other value maps to Neu.
func FromInt(v int) Trit {
	switch v {
	case -1:
		return Neg
	case 1:
		return Pos
	default:
		return Neu
	}
}

// Parse is the strict counterpart of FromInt: values outside -1..1 are
// rejected with errors.ErrOutOfRange instead of being normalized.
func Parse(v int) (Trit, error) {
	if v < -1 || v > 1 {
		return Neu, fmt.Errorf("%w: trit code %d", errors.ErrOutOfRange, v)
	}

	return FromInt(v), nil
}

// Int returns the integer code of the trit. A value built by an unchecked
// conversion such as Trit(5) reports 0.
func (t Trit) Int() int {
	return int(t.normal())
}

// Valid reports whether t is one of Neg, Neu or Pos.
func (t Trit) Valid() bool {
	return t >= Neg && t <= Pos
}

// normal folds invalid codes onto Neu, matching FromInt.
func (t Trit) normal() Trit {
	return FromInt(int(t))
}

// IsNeutral reports whether t is Neu.
func (t Trit) IsNeutral() bool {
	return t.normal() == Neu
}

func (t Trit) String() string {
	switch t {
	case Neg:
		return "Neg"
	case Neu:
		return "Neu"
	case Pos:
		return "Pos"
	default:
		return fmt.Sprintf("Trit(%d)", int8(t))
	}
}

// Equals reports whether both trits have the same (normalized) value.
func (t Trit) Equals(other Trit) bool {
	return t.normal() == other.normal()
}

// LessThan orders trits naturally: Neg < Neu < Pos.
func (t Trit) LessThan(other Trit) bool {
	return t.normal() < other.normal()
}
