package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for canonical Huffman codes.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// NewEncoder returns an Encoder for the canonical code with the given bit
// lengths.  It panics if the lengths are invalid; see InitFromSizes.
func NewEncoder(sizes []byte) *Encoder {
	e := new(Encoder)
	err := e.InitFromSizes(sizes)
	assert.Assertf(err == nil, "NewEncoder: %v", err)
	return e
}

// Init initializes this Encoder.  The first argument tells Init how many
// Symbols are in this code's alphabet, and the second argument lists the
// frequency (i.e. number of occurrences) for each Symbol in the code, one for
// each Symbol except that any Symbol not represented in the list is assumed to
// have a frequency of 0.
//
// The bit length of each Symbol is its depth in the merge tree built by
// BuildTree, limited to MaxBitsPerCode.
//
func (e *Encoder) Init(numSymbols int, frequencies []uint64) {
	assert.Assertf(numSymbols <= int(MaxSymbol), "numSymbols %d > MaxSymbol %d", numSymbols, int(MaxSymbol))
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))

	sizes := LimitedSizes(numSymbols, frequencies, InvalidSymbol, MaxBitsPerCode)
	err := e.InitFromSizes(sizes)
	assert.Assertf(err == nil, "merge tree produced invalid sizes: %v", err)
}

// InitFromSizes initializes this Encoder from a list of bit lengths, one for
// each Symbol, as returned by SizeBySymbol.  Symbols with a bit length of 0
// are not part of the code.  Within each length, codes are handed out in
// Symbol order, which makes the code canonical: a Decoder needs only the
// lengths to rebuild it.
func (e *Encoder) InitFromSizes(sizes []byte) error {
	ls, err := measureLengths(sizes)
	if err != nil {
		return err
	}
	if ls.demand() > ls.capacity() {
		return fmt.Errorf("over-subscribed Huffman code: lengths need %d codes of %d bits, only %d exist", ls.demand(), ls.maxSize, ls.capacity())
	}

	codes := make([]Code, len(sizes))
	next := ls.firstCodes()
	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		codes[symbol] = MakeCode(size, uint32(next[size]))
		next[size]++
	}

	*e = Encoder{
		codes:   codes,
		minSize: ls.minSize,
		maxSize: ls.maxSize,
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  The first bit
// of the code is the most significant of its Size bits; use Code.Reversed
// to obtain the bits in transmission order.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (e Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  This array can be transmitted to another party and used by
// Decoder to reconstruct this Huffman code on the receiving end.
//
func (e Encoder) SizeBySymbol() []byte {
	numSymbols := Symbol(len(e.codes))
	out := make([]byte, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	numSymbols := Symbol(len(e.codes))
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", len(e.codes), e.minSize, e.maxSize)
}

// GoString returns a Go expression that reconstructs this Encoder.
func (e Encoder) GoString() string {
	return "NewEncoder(" + formatSizes(e.SizeBySymbol()) + ")"
}

var (
	_ fmt.Stringer   = Encoder{}
	_ fmt.GoStringer = Encoder{}
)

func formatSizes(sizes []byte) string {
	var sb strings.Builder
	sb.WriteString("[]byte{")
	for i, size := range sizes {
		if i != 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", size)
	}
	sb.WriteString("}")
	return sb.String()
}
