package hashset

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
	"github.com/chronos-tachyon/adt/list"
)

// Alpha is the load factor Chained is sized for: a set created for maxElts
// elements gets maxElts/Alpha buckets.
const Alpha = 20

// Chained is a hash set whose buckets are linked lists.  It has no hard
// capacity; maxElts only determines the number of buckets.
type Chained[T any] struct {
	buckets []*list.List[T]
	count   int
	hash    func(T) uint32
}

// NewChained returns an empty Chained set sized for about maxElts elements.
func NewChained[T comparable](maxElts int, hash func(T) uint32) *Chained[T] {
	return NewChainedFunc(maxElts, hash, func(a, b T) bool { return a == b })
}

// NewChainedFunc is like NewChained, but compares elements with equal.
// Elements that are equal must have the same hash.
func NewChainedFunc[T any](maxElts int, hash func(T) uint32, equal func(a, b T) bool) *Chained[T] {
	assert.Assertf(maxElts > 0, "maxElts %d <= 0", maxElts)
	assert.Assertf(hash != nil, "hash is nil")
	assert.Assertf(equal != nil, "equal is nil")

	length := maxElts / Alpha
	if length < 1 {
		length = 1
	}
	buckets := make([]*list.List[T], length)
	for i := range buckets {
		buckets[i] = list.NewFunc(equal)
	}
	return &Chained[T]{buckets: buckets, hash: hash}
}

// Len returns the number of elements in the set.
func (s *Chained[T]) Len() int {
	return s.count
}

// Add prepends elt to its bucket unless it is already present.
func (s *Chained[T]) Add(elt T) bool {
	b := s.bucket(elt)
	if _, found := b.Find(elt); found {
		return false
	}
	b.AddFirst(elt)
	s.count++
	return true
}

// Remove deletes elt from its bucket.
func (s *Chained[T]) Remove(elt T) bool {
	if !s.bucket(elt).Remove(elt) {
		return false
	}
	s.count--
	return true
}

// Find returns the stored element equal to elt.
func (s *Chained[T]) Find(elt T) (T, bool) {
	return s.bucket(elt).Find(elt)
}

// Elements returns a copy of the elements, bucket by bucket.
func (s *Chained[T]) Elements() []T {
	out := make([]T, 0, s.count)
	for _, b := range s.buckets {
		out = append(out, b.Items()...)
	}
	return out
}

func (s *Chained[T]) bucket(elt T) *list.List[T] {
	return s.buckets[s.hash(elt)%uint32(len(s.buckets))]
}

var _ adt.Set[string] = (*Chained[string])(nil)
