package hashset

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
)

type slotState byte

const (
	empty slotState = iota
	filled
	deleted
)

// Open is a hash set using open addressing with linear probing.
type Open[T any] struct {
	data  []T
	flags []slotState
	count int
	hash  func(T) uint32
	equal func(a, b T) bool
}

// NewOpen returns an empty Open set with maxElts slots.
func NewOpen[T comparable](maxElts int, hash func(T) uint32) *Open[T] {
	return NewOpenFunc(maxElts, hash, func(a, b T) bool { return a == b })
}

// NewOpenFunc is like NewOpen, but compares elements with equal.  Elements
// that are equal must have the same hash.
func NewOpenFunc[T any](maxElts int, hash func(T) uint32, equal func(a, b T) bool) *Open[T] {
	assert.Assertf(maxElts > 0, "maxElts %d <= 0", maxElts)
	assert.Assertf(hash != nil, "hash is nil")
	assert.Assertf(equal != nil, "equal is nil")
	return &Open[T]{
		data:  make([]T, maxElts),
		flags: make([]slotState, maxElts),
		hash:  hash,
		equal: equal,
	}
}

// Len returns the number of elements in the set.
func (s *Open[T]) Len() int {
	return s.count
}

// Cap returns the number of slots in the table.
func (s *Open[T]) Cap() int {
	return len(s.data)
}

// Add inserts elt, reusing the first tombstone on its probe sequence.  It
// returns false if elt is already present or the table is full.
func (s *Open[T]) Add(elt T) bool {
	if s.count >= len(s.data) {
		return false
	}
	i, found := s.search(elt)
	if found {
		return false
	}
	s.data[i] = elt
	s.flags[i] = filled
	s.count++
	return true
}

// Remove deletes elt, leaving a tombstone so later probe sequences that
// pass through its slot stay intact.
func (s *Open[T]) Remove(elt T) bool {
	i, found := s.search(elt)
	if !found {
		return false
	}
	var zero T
	s.data[i] = zero
	s.flags[i] = deleted
	s.count--
	return true
}

// Find returns the stored element equal to elt.
func (s *Open[T]) Find(elt T) (T, bool) {
	if i, found := s.search(elt); found {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// Elements returns a copy of the elements in slot order.
func (s *Open[T]) Elements() []T {
	out := make([]T, 0, s.count)
	for i, flag := range s.flags {
		if flag == filled {
			out = append(out, s.data[i])
		}
	}
	return out
}

// search probes from the home slot of elt.  If elt is present it returns
// its slot and true.  Otherwise it returns the slot where elt should be
// inserted: the first tombstone seen, else the empty slot that ended the
// probe.  A full table with no tombstones yields -1.
func (s *Open[T]) search(elt T) (int, bool) {
	length := uint32(len(s.data))
	home := s.hash(elt) % length
	available := -1
	for n := uint32(0); n < length; n++ {
		i := int((home + n) % length)
		switch s.flags[i] {
		case empty:
			if available < 0 {
				available = i
			}
			return available, false
		case deleted:
			if available < 0 {
				available = i
			}
		case filled:
			if s.equal(elt, s.data[i]) {
				return i, true
			}
		}
	}
	return available, false
}

var (
	_ adt.Set[string] = (*Open[string])(nil)
	_ adt.Bounded     = (*Open[string])(nil)
)
