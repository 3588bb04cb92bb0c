package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// label is a string wrapper that implements Comparable.
type label string

func (l label) Equals(other label) bool {
	return string(l) == string(other)
}

// pair carries a key used for ordering and a tag used to tell ties apart.
type pair struct {
	key int
	tag string
}

func byKey(a, b pair) Ordering {
	return OrderedComparator[int]()(a.key, b.key)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[label](label("a"), "a"))
	assert.False(t, Equals[label](label("a"), "b"))
}

func TestOrdering_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "Ordering(?)", Ordering(7).String())
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
}

func TestOrderedComparator(t *testing.T) {
	t.Parallel()

	cmp := OrderedComparator[int16]()

	assert.Equal(t, Less, cmp(-3, 2))
	assert.Equal(t, Equal, cmp(5, 5))
	assert.Equal(t, Greater, cmp(9, -9))
}

func TestMaxMin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a       pair
		b       pair
		wantMax pair
		wantMin pair
	}{
		{
			name:    "left smaller",
			a:       pair{1, "a"},
			b:       pair{2, "b"},
			wantMax: pair{2, "b"},
			wantMin: pair{1, "a"},
		},
		{
			name:    "left larger",
			a:       pair{3, "a"},
			b:       pair{2, "b"},
			wantMax: pair{3, "a"},
			wantMin: pair{2, "b"},
		},
		{
			name:    "tie keeps left",
			a:       pair{2, "a"},
			b:       pair{2, "b"},
			wantMax: pair{2, "a"},
			wantMin: pair{2, "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantMax, Max(byKey, tt.a, tt.b))
			assert.Equal(t, tt.wantMin, Min(byKey, tt.a, tt.b))
		})
	}
}

func TestMax_UnorderedPairKeepsLeft(t *testing.T) {
	t.Parallel()

	// Everything is "less" than everything else.
	never := func(_, _ int) Ordering { return Less }

	assert.Equal(t, 1, Max(never, 1, 2))
	assert.Equal(t, 2, Max(never, 2, 1))
}
