package compare

// Ordering is the result of comparing two values.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// Reverse flips Less and Greater. Equal stays Equal.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Comparator orders two values of the same type. A Comparator is not required
// to be a total order: callers that need a consistent ordering must pick a
// comparator that provides one.
type Comparator[T any] func(a, b T) Ordering

// Max returns b if cmp reports that b is greater than a, and a otherwise.
// Ties, and pairs the comparator cannot order, resolve to the left operand.
func Max[T any](cmp Comparator[T], a, b T) T { //nolint:ireturn
	if cmp(b, a) == Greater {
		return b
	}

	return a
}

// Min returns b if cmp reports that b is less than a, and a otherwise.
// Ties resolve to the left operand.
func Min[T any](cmp Comparator[T], a, b T) T { //nolint:ireturn
	if cmp(b, a) == Less {
		return b
	}

	return a
}

// OrderedComparator returns a Comparator for any type that supports the < operator.
func OrderedComparator[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~string]() Comparator[T] {
	return func(a, b T) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
}
