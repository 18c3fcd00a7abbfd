package labs

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt/deque"
)

// Radix is the base RadixSort sorts in.
const Radix = 10

// RadixSort sorts non-negative integers with a least-significant-digit
// radix sort.  Every pass drains a main queue into Radix bucket queues by
// the current digit and then concatenates the buckets back in order.
func RadixSort(nums []int) []int {
	main := deque.New[int]()
	hi := 0
	for _, n := range nums {
		assert.Assertf(n >= 0, "RadixSort: negative input %d", n)
		if n > hi {
			hi = n
		}
		main.AddLast(n)
	}

	var buckets [Radix]*deque.Deque[int]
	for i := range buckets {
		buckets[i] = deque.New[int]()
	}

	for div := 1; hi/div > 0; div *= Radix {
		for main.Len() > 0 {
			n, _ := main.RemoveFirst()
			buckets[(n/div)%Radix].AddLast(n)
		}
		for _, b := range buckets {
			for b.Len() > 0 {
				n, _ := b.RemoveFirst()
				main.AddLast(n)
			}
		}
		if hi/div < Radix {
			break
		}
	}
	return main.Items()
}
