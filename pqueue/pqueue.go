// Package pqueue implements a minimum priority queue as a binary heap.
package pqueue

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Queue is a min priority queue: Pop returns the entry e for which no other
// entry x satisfies less(x, e).
type Queue[T any] struct {
	h entryHeap[T]
}

// New returns an empty Queue ordered by less.
func New[T any](less func(a, b T) bool) *Queue[T] {
	assert.Assertf(less != nil, "less is nil")
	return &Queue[T]{h: entryHeap[T]{less: less}}
}

// Len returns the number of entries in the queue.
func (q *Queue[T]) Len() int {
	return len(q.h.list)
}

// Push adds v to the queue in O(log n).
func (q *Queue[T]) Push(v T) {
	heap.Push(&q.h, v)
}

// Pop removes and returns the smallest entry in O(log n).
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.h.list) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the smallest entry without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.h.list) == 0 {
		var zero T
		return zero, false
	}
	return q.h.list[0], true
}

// type entryHeap {{{

type entryHeap[T any] struct {
	list []T
	less func(a, b T) bool
}

func (h *entryHeap[T]) Len() int {
	return len(h.list)
}

func (h *entryHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *entryHeap[T]) Less(i, j int) bool {
	return h.less(h.list[i], h.list[j])
}

func (h *entryHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(T))
}

func (h *entryHeap[T]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	var zero T
	h.list[last] = zero
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*entryHeap[int])(nil)

// }}}
