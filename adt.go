package adt

import (
	"errors"
)

// ErrFull is returned when an element cannot be added to a Bounded set
// because every slot is already in use.
var ErrFull = errors.New("set is full")

// Set is an unordered collection of distinct elements.
type Set[T any] interface {
	// Len returns the number of elements in the set.
	Len() int

	// Add inserts elt.  It returns false if an equal element is already
	// present, in which case the set is unchanged.
	Add(elt T) bool

	// Remove deletes the element equal to elt.  It returns false if no
	// such element exists.
	Remove(elt T) bool

	// Find returns the stored element equal to elt.
	Find(elt T) (T, bool)

	// Elements returns a freshly allocated slice of every element.
	Elements() []T
}

// Bounded is implemented by sets that hold at most Cap() elements.  Add on a
// full Bounded set leaves it unchanged and returns false.
type Bounded interface {
	Cap() int
}

// IsFull reports whether s is a Bounded set with no room left.
func IsFull[T any](s Set[T]) bool {
	b, ok := s.(Bounded)
	return ok && s.Len() >= b.Cap()
}

// List is a sequence that supports insertion and removal at both ends.
type List[T any] interface {
	Len() int
	AddFirst(item T)
	AddLast(item T)
	RemoveFirst() (T, bool)
	RemoveLast() (T, bool)
	First() (T, bool)
	Last() (T, bool)

	// Items returns a freshly allocated slice of every item, first to
	// last.
	Items() []T
}
