package trit

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-ternary/compare"
	"github.com/amp-labs/amp-ternary/errors"
)

// Order selects a comparator for trits.
type Order int8

const (
	// OrderNatural is the total order Neg < Neu < Pos.
	OrderNatural Order = iota

	// OrderLegacy treats Pos as greater than any other trit, equal trits as
	// Equal, and every remaining pair as Less. Neg and Neu therefore each
	// compare Less than the other.
	OrderLegacy
)

func (o Order) String() string {
	switch o {
	case OrderNatural:
		return "natural"
	case OrderLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Order(%d)", int8(o))
	}
}

// ParseOrder resolves an ordering strategy by name. Matching ignores case and
// surrounding whitespace.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "natural":
		return OrderNatural, nil
	case "legacy":
		return OrderLegacy, nil
	default:
		return OrderNatural, fmt.Errorf("%w: %q", errors.ErrUnknownOrder, name)
	}
}

// Compare orders a against b. Unknown strategies behave like OrderNatural.
func (o Order) Compare(a, b Trit) compare.Ordering {
	if o == OrderLegacy {
		return compareLegacy(a.normal(), b.normal())
	}

	return compareNatural(a.normal(), b.normal())
}

// Comparator returns o.Compare as a compare.Comparator.
func (o Order) Comparator() compare.Comparator[Trit] {
	return o.Compare
}

func compareNatural(a, b Trit) compare.Ordering {
	switch {
	case a < b:
		return compare.Less
	case a > b:
		return compare.Greater
	default:
		return compare.Equal
	}
}

func compareLegacy(a, b Trit) compare.Ordering {
	switch {
	case a == Pos && b != Pos:
		return compare.Greater
	case a == b:
		return compare.Equal
	default:
		return compare.Less
	}
}
