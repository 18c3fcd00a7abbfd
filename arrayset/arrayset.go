// Package arrayset implements adt.Set on top of an unsorted, fixed-capacity
// array.  Every operation except Len and Cap is a linear search.
package arrayset

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
)

// Set is an unsorted array of distinct elements.
type Set[T comparable] struct {
	data []T
}

// New returns an empty Set that can hold up to maxElts elements.
func New[T comparable](maxElts int) *Set[T] {
	assert.Assertf(maxElts > 0, "maxElts %d <= 0", maxElts)
	return &Set[T]{data: make([]T, 0, maxElts)}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.data)
}

// Cap returns the maximum number of elements the set can hold.
func (s *Set[T]) Cap() int {
	return cap(s.data)
}

// Add appends elt unless it is already present or the set is full.
func (s *Set[T]) Add(elt T) bool {
	if len(s.data) >= cap(s.data) || s.search(elt) >= 0 {
		return false
	}
	s.data = append(s.data, elt)
	return true
}

// Remove deletes elt by moving the last element into its slot.
func (s *Set[T]) Remove(elt T) bool {
	i := s.search(elt)
	if i < 0 {
		return false
	}
	last := len(s.data) - 1
	s.data[i] = s.data[last]
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	return true
}

// Find returns the stored element equal to elt.
func (s *Set[T]) Find(elt T) (T, bool) {
	if i := s.search(elt); i >= 0 {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// Elements returns a copy of the elements in storage order.
func (s *Set[T]) Elements() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

func (s *Set[T]) search(elt T) int {
	for i, x := range s.data {
		if x == elt {
			return i
		}
	}
	return -1
}

var (
	_ adt.Set[string] = (*Set[string])(nil)
	_ adt.Bounded     = (*Set[string])(nil)
)
