package sortable

import (
	"slices"

	"github.com/amp-labs/amp-ternary/compare"
)

// Sortable is implemented by values that carry their own total order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator adapts a Sortable type to a compare.Comparator.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) compare.Ordering {
		switch {
		case a.Equals(b):
			return compare.Equal
		case a.LessThan(b):
			return compare.Less
		default:
			return compare.Greater
		}
	}
}

// Sort sorts values in place in ascending order.
func Sort[T Sortable[T]](values []T) {
	slices.SortStableFunc(values, func(a, b T) int {
		return int(Comparator[T]()(a, b))
	})
}
