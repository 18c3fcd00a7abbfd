package huffman

import (
	"io"
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// The byte alphabet used by Compress: one Symbol per byte value, plus EOF.
const (
	// EOF marks the end of a packed bit stream.  It never occurs in the
	// input, so its frequency is always 0, but it is still given a code.
	EOF = Symbol(256)

	// NumSymbols is the size of the byte alphabet.
	NumSymbols = int(EOF) + 1
)

// Frequencies counts the occurrences of each Symbol of the byte alphabet.
type Frequencies [NumSymbols]uint64

// Total returns the number of input bytes counted.
func (f *Frequencies) Total() uint64 {
	var sum uint64
	for symbol := Symbol(0); symbol < EOF; symbol++ {
		sum += f[symbol]
	}
	return sum
}

// Used returns the number of Symbols with a non-zero count.
func (f *Frequencies) Used() int {
	var n int
	for _, count := range f {
		if count != 0 {
			n++
		}
	}
	return n
}

// Add counts every byte of p.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// CodeSizes returns the bit lengths of a length-limited code for these
// counts.  EOF always gets a code.
func (f *Frequencies) CodeSizes() []byte {
	return LimitedSizes(NumSymbols, f[:], EOF, MaxBitsPerCode)
}

// CountFrequencies reads r to the end and counts every byte.
func CountFrequencies(r io.Reader) (Frequencies, int64, error) {
	var freqs Frequencies
	buf := make([]byte, 64*1024)
	var total int64
	for {
		n, err := r.Read(buf)
		freqs.Add(buf[:n])
		total += int64(n)
		if err == io.EOF {
			return freqs, total, nil
		}
		if err != nil {
			return freqs, total, err
		}
	}
}
