// Package sortedset implements adt.Set as a fixed-capacity array kept in
// ascending order.  Lookups use binary search; insertion and removal shift
// the tail of the array.
package sortedset

import (
	"cmp"
	"slices"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
)

// Set is a sorted array of distinct elements.
type Set[T any] struct {
	data    []T
	compare func(a, b T) int
}

// New returns an empty Set of naturally ordered elements that can hold up to
// maxElts elements.
func New[T cmp.Ordered](maxElts int) *Set[T] {
	return NewFunc(maxElts, cmp.Compare[T])
}

// NewFunc is like New, but orders elements with compare, which must return
// a negative number, zero, or a positive number when a < b, a == b, or
// a > b respectively.
func NewFunc[T any](maxElts int, compare func(a, b T) int) *Set[T] {
	assert.Assertf(maxElts > 0, "maxElts %d <= 0", maxElts)
	assert.Assertf(compare != nil, "compare is nil")
	return &Set[T]{
		data:    make([]T, 0, maxElts),
		compare: compare,
	}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.data)
}

// Cap returns the maximum number of elements the set can hold.
func (s *Set[T]) Cap() int {
	return cap(s.data)
}

// Add inserts elt at its sorted position unless it is already present or
// the set is full.
func (s *Set[T]) Add(elt T) bool {
	if len(s.data) >= cap(s.data) {
		return false
	}
	i, found := s.search(elt)
	if found {
		return false
	}
	s.data = slices.Insert(s.data, i, elt)
	return true
}

// Remove deletes elt, preserving the order of the remaining elements.
func (s *Set[T]) Remove(elt T) bool {
	i, found := s.search(elt)
	if !found {
		return false
	}
	s.data = slices.Delete(s.data, i, i+1)
	return true
}

// Find returns the stored element equal to elt.
func (s *Set[T]) Find(elt T) (T, bool) {
	if i, found := s.search(elt); found {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// Elements returns a copy of the elements in ascending order.
func (s *Set[T]) Elements() []T {
	return slices.Clone(s.data)
}

// Min returns the smallest element.
func (s *Set[T]) Min() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return s.data[0], true
}

// Max returns the largest element.
func (s *Set[T]) Max() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return s.data[len(s.data)-1], true
}

// search returns the index of elt, or the index where it would be inserted.
func (s *Set[T]) search(elt T) (int, bool) {
	lo, hi := 0, len(s.data)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := s.compare(elt, s.data[mid]); {
		case c < 0:
			hi = mid - 1
		case c > 0:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}

var (
	_ adt.Set[string] = (*Set[string])(nil)
	_ adt.Bounded     = (*Set[string])(nil)
)
