package huffman

import (
	"fmt"
	mathbits "math/bits"
)

// lengthStats summarizes a list of code lengths, one per Symbol.
type lengthStats struct {
	counts  [MaxBitsPerCode + 1]uint64 // number of Symbols of each length
	used    uint32
	minSize byte
	maxSize byte
}

func measureLengths(sizes []byte) (lengthStats, error) {
	var ls lengthStats
	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		if size > MaxBitsPerCode {
			return lengthStats{}, fmt.Errorf("invalid bit length for symbol %d: got %d, max %d", symbol, size, MaxBitsPerCode)
		}
		if ls.used == 0 || size < ls.minSize {
			ls.minSize = size
		}
		if ls.used == 0 || size > ls.maxSize {
			ls.maxSize = size
		}
		ls.counts[size]++
		ls.used++
	}
	return ls, nil
}

// capacity is the number of maxSize-bit codes that exist.
func (ls *lengthStats) capacity() uint64 {
	return uint64(1) << ls.maxSize
}

// demand is the number of maxSize-bit codes the lengths cover.  It exceeds
// capacity for an over-subscribed code and falls short for an incomplete
// one.
func (ls *lengthStats) demand() uint64 {
	var sum uint64
	for size := byte(1); size <= ls.maxSize; size++ {
		sum += ls.counts[size] << (ls.maxSize - size)
	}
	return sum
}

// complete reports whether every bit string of maxSize bits starts with
// exactly one code.  A lone 1-bit code also counts.
func (ls *lengthStats) complete() bool {
	if ls.used == 1 && ls.maxSize == 1 {
		return true
	}
	return ls.demand() == ls.capacity()
}

// firstCodes returns the numerically smallest code of each length, most
// significant bit first, per RFC 1951 Section 3.2.2 step 2.
func (ls *lengthStats) firstCodes() [MaxBitsPerCode + 1]uint64 {
	var next [MaxBitsPerCode + 1]uint64
	var code uint64
	for size := 1; size <= int(ls.maxSize); size++ {
		code = (code + ls.counts[size-1]) << 1
		next[size] = code
	}
	return next
}

// tableHint estimates how many entries a Decoder table needs: about
// n×log2(n) for n coded Symbols.
func (ls *lengthStats) tableHint() int {
	n := ls.used
	if n == 0 {
		return 0
	}
	return int(n) * (32 - mathbits.LeadingZeros32(n))
}
