// Package deque implements a list as a doubly-linked chain of circular
// arrays.  Each array allocated at either end of the chain is twice the size
// of its neighbor, so a deque of n items has O(log n) nodes and indexed
// access walks O(log n) links.
package deque

import (
	"iter"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt"
)

// InitialNodeSize is the capacity of the first node in a new Deque.
const InitialNodeSize = 8

// node is a ring buffer: its count items start at data[first] and wrap
// around the end of data.
type node[T any] struct {
	data  []T
	first int
	count int
	next  *node[T]
	prev  *node[T]
}

func newNode[T any](size int) *node[T] {
	return &node[T]{data: make([]T, size)}
}

func (n *node[T]) full() bool {
	return n.count == len(n.data)
}

func (n *node[T]) slot(i int) int {
	return (n.first + i) % len(n.data)
}

func (n *node[T]) pushFront(item T) {
	n.first = (n.first + len(n.data) - 1) % len(n.data)
	n.data[n.first] = item
	n.count++
}

func (n *node[T]) pushBack(item T) {
	n.data[n.slot(n.count)] = item
	n.count++
}

func (n *node[T]) popFront() T {
	var zero T
	item := n.data[n.first]
	n.data[n.first] = zero
	n.first = (n.first + 1) % len(n.data)
	n.count--
	return item
}

func (n *node[T]) popBack() T {
	var zero T
	i := n.slot(n.count - 1)
	item := n.data[i]
	n.data[i] = zero
	n.count--
	return item
}

// Deque is a list of ring buffers.  The zero value is not usable; call New.
//
// Only the end nodes may be partially filled, and no node is ever empty
// unless it is the only one.
type Deque[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	n := newNode[T](InitialNodeSize)
	return &Deque[T]{head: n, tail: n}
}

// Len returns the number of items in the deque.
func (d *Deque[T]) Len() int {
	return d.count
}

// AddFirst inserts item at the front of the deque.
func (d *Deque[T]) AddFirst(item T) {
	if d.head.full() {
		n := newNode[T](2 * len(d.head.data))
		n.next = d.head
		d.head.prev = n
		d.head = n
	}
	d.head.pushFront(item)
	d.count++
}

// AddLast inserts item at the back of the deque.
func (d *Deque[T]) AddLast(item T) {
	if d.tail.full() {
		n := newNode[T](2 * len(d.tail.data))
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.tail.pushBack(item)
	d.count++
}

// RemoveFirst removes and returns the first item.
func (d *Deque[T]) RemoveFirst() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	item := d.head.popFront()
	d.count--
	if d.head.count == 0 && d.head != d.tail {
		d.dropHead()
	}
	return item, true
}

// RemoveLast removes and returns the last item.
func (d *Deque[T]) RemoveLast() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	item := d.tail.popBack()
	d.count--
	if d.tail.count == 0 && d.head != d.tail {
		d.dropTail()
	}
	return item, true
}

// First returns the first item without removing it.
func (d *Deque[T]) First() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.At(0), true
}

// Last returns the last item without removing it.
func (d *Deque[T]) Last() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.At(d.count - 1), true
}

// At returns the item at index i, counting from the front.
func (d *Deque[T]) At(i int) T {
	n, j := d.locate(i)
	return n.data[n.slot(j)]
}

// Set replaces the item at index i.
func (d *Deque[T]) Set(i int, item T) {
	n, j := d.locate(i)
	n.data[n.slot(j)] = item
}

// Items returns a copy of the items, first to last.
func (d *Deque[T]) Items() []T {
	out := make([]T, 0, d.count)
	for item := range d.All() {
		out = append(out, item)
	}
	return out
}

// All iterates over the items, first to last.  The deque must not be
// modified during iteration.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; n = n.next {
			for j := 0; j < n.count; j++ {
				if !yield(n.data[n.slot(j)]) {
					return
				}
			}
		}
	}
}

func (d *Deque[T]) locate(i int) (*node[T], int) {
	assert.Assertf(i >= 0 && i < d.count, "index %d out of range [0, %d)", i, d.count)
	n := d.head
	for i >= n.count {
		i -= n.count
		n = n.next
	}
	return n, i
}

func (d *Deque[T]) dropHead() {
	n := d.head
	d.head = n.next
	d.head.prev = nil
	n.next = nil
}

func (d *Deque[T]) dropTail() {
	n := d.tail
	d.tail = n.prev
	d.tail.next = nil
	n.prev = nil
}

var _ adt.List[int] = (*Deque[int])(nil)
