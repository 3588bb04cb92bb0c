package set

import (
	"hash"
	"testing"

	"github.com/amp-labs/amp-ternary/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type code int16

func (c code) UpdateHash(h hash.Hash) error {
	return hashing.HashableInt16(c).UpdateHash(h)
}

func (c code) Equals(other code) bool {
	return c == other
}

func (c code) LessThan(other code) bool {
	return c < other
}

// constant hashes every value to the same key.
func constant(hashing.Hashable) (string, error) {
	return "same", nil
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("Add and Contains", func(t *testing.T) {
		t.Parallel()

		s := NewSet[code](hashing.Xxh3)

		require.NoError(t, s.Add(5))

		contains, err := s.Contains(5)
		require.NoError(t, err)
		assert.True(t, contains)

		contains, err = s.Contains(6)
		require.NoError(t, err)
		assert.False(t, contains)
	})

	t.Run("Add duplicate element", func(t *testing.T) {
		t.Parallel()

		s := NewSet[code](hashing.Xxh3)

		require.NoError(t, s.AddAll(1, 1, 1))
		assert.Equal(t, 1, s.Size())
	})

	t.Run("Remove", func(t *testing.T) {
		t.Parallel()

		s := NewSet[code](hashing.Sha256)

		require.NoError(t, s.AddAll(1, 2))
		require.NoError(t, s.Remove(1))
		require.NoError(t, s.Remove(9))

		assert.Equal(t, []code{2}, s.Entries())
	})

	t.Run("Collision", func(t *testing.T) {
		t.Parallel()

		s := NewSet[code](constant)

		require.NoError(t, s.Add(1))
		require.ErrorIs(t, s.Add(2), ErrHashCollision)

		_, err := s.Contains(2)
		require.ErrorIs(t, err, ErrHashCollision)
	})

	t.Run("Union and Intersection", func(t *testing.T) {
		t.Parallel()

		a := NewSet[code](hashing.Xxh3)
		b := NewSet[code](hashing.Xxh3)

		require.NoError(t, a.AddAll(1, 2, 3))
		require.NoError(t, b.AddAll(3, 4))

		union, err := a.Union(b)
		require.NoError(t, err)
		assert.Equal(t, []code{1, 2, 3, 4}, SortedEntries(union))

		inter, err := a.Intersection(b)
		require.NoError(t, err)
		assert.Equal(t, []code{3}, SortedEntries(inter))
	})
}
