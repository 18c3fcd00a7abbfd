// Package list implements a circular, doubly-linked list with a sentinel
// node.  The sentinel's next pointer is the first item and its prev pointer
// is the last item, so every insertion and removal at either end is O(1)
// with no special cases for an empty list.
package list

import (
	"iter"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
)

type node[T any] struct {
	item T
	next *node[T]
	prev *node[T]
}

// List is a circular doubly-linked list.  Use New or NewFunc to create one.
type List[T any] struct {
	head  *node[T]
	count int
	equal func(a, b T) bool
}

// New returns an empty List whose items are compared with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc returns an empty List whose items are compared with equal.  If
// equal is nil, the list is unordered and Find and Remove may not be used.
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	head := &node[T]{}
	head.next = head
	head.prev = head
	return &List[T]{head: head, equal: equal}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return l.count
}

// AddFirst inserts item at the front of the list.
func (l *List[T]) AddFirst(item T) {
	l.insertAfter(l.head, item)
}

// AddLast inserts item at the back of the list.
func (l *List[T]) AddLast(item T) {
	l.insertAfter(l.head.prev, item)
}

// RemoveFirst removes and returns the first item.
func (l *List[T]) RemoveFirst() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.unlink(l.head.next), true
}

// RemoveLast removes and returns the last item.
func (l *List[T]) RemoveLast() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.unlink(l.head.prev), true
}

// First returns the first item without removing it.
func (l *List[T]) First() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.head.next.item, true
}

// Last returns the last item without removing it.
func (l *List[T]) Last() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.head.prev.item, true
}

// Find returns the first stored item equal to item.
func (l *List[T]) Find(item T) (T, bool) {
	if p := l.search(item); p != nil {
		return p.item, true
	}
	var zero T
	return zero, false
}

// Remove deletes the first item equal to item.
func (l *List[T]) Remove(item T) bool {
	p := l.search(item)
	if p == nil {
		return false
	}
	l.unlink(p)
	return true
}

// Items returns a copy of the items, first to last.
func (l *List[T]) Items() []T {
	out := make([]T, 0, l.count)
	for p := l.head.next; p != l.head; p = p.next {
		out = append(out, p.item)
	}
	return out
}

// All iterates over the items, first to last.  The list must not be
// modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head.next; p != l.head; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}

func (l *List[T]) insertAfter(prev *node[T], item T) {
	p := &node[T]{item: item, prev: prev, next: prev.next}
	prev.next.prev = p
	prev.next = p
	l.count++
}

func (l *List[T]) unlink(p *node[T]) T {
	p.prev.next = p.next
	p.next.prev = p.prev
	p.next, p.prev = nil, nil
	l.count--
	return p.item
}

func (l *List[T]) search(item T) *node[T] {
	assert.Assertf(l.equal != nil, "list has no equality function")
	for p := l.head.next; p != l.head; p = p.next {
		if l.equal(item, p.item) {
			return p
		}
	}
	return nil
}

var _ adt.List[int] = (*List[int])(nil)
