// Package set provides a hash-keyed set of Collectable values.
package set

import (
	"errors"

	"github.com/amp-labs/amp-ternary/collectable"
	"github.com/amp-labs/amp-ternary/compare"
	"github.com/amp-labs/amp-ternary/hashing"
	"github.com/amp-labs/amp-ternary/sortable"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. If a collision is detected, an error
// is returned.
type Set[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// Remove removes an element from the set. If the element is not in
	// the set, no error is returned.
	Remove(element T) error

	// Contains checks if an element exists in the set.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() []T

	// Union returns a new set containing all elements from both sets.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set containing only elements present in both sets.
	Intersection(other Set[T]) (Set[T], error)
}

type setImpl[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
func NewSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *setImpl[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *setImpl[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

func (s *setImpl[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	if prev, ok := s.elements[hashVal]; ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *setImpl[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if !ok {
		return false, nil
	}

	if !compare.Equals(prev, element) {
		return true, ErrHashCollision
	}

	return true, nil
}

func (s *setImpl[T]) Size() int {
	return len(s.elements)
}

func (s *setImpl[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}

func (s *setImpl[T]) Union(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	if err := ns.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

func (s *setImpl[T]) Intersection(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	for _, item := range s.Entries() {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := ns.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return ns, nil
}

// SortedEntries returns the elements of a set whose element type is also
// Sortable, in ascending order.
func SortedEntries[T interface {
	collectable.Collectable[T]
	sortable.Sortable[T]
}](s Set[T],
) []T {
	items := s.Entries()

	sortable.Sort(items)

	return items
}
