package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a decoder for canonical Huffman codes.
type Decoder struct {
	table   map[Code]decoderData
	sizes   []byte
	minSize byte
	maxSize byte
}

// NewDecoder returns a Decoder for the canonical code with the given bit
// lengths.  It panics if the lengths are invalid; see Init.
func NewDecoder(sizes []byte) Decoder {
	var d Decoder
	err := d.Init(sizes)
	assert.Assertf(err == nil, "NewDecoder: %v", err)
	return d
}

// Init initializes this Decoder from a list of bit lengths, one for each
// Symbol, and rebuilds the canonical code they describe (RFC 1951 Section
// 3.2.2).  Symbols with a bit length of 0 are not part of the code.
//
// The lengths must describe a complete prefix code: one in which every
// sufficiently long bit string begins with exactly one code.  Two
// degenerate cases are accepted anyway, since no complete code exists for
// them: no Symbols at all, and a single Symbol with a 1-bit code.
//
func (d *Decoder) Init(sizes []byte) error {
	ls, err := measureLengths(sizes)
	if err != nil {
		return err
	}

	if ls.used == 0 {
		*d = Decoder{sizes: bytes.Clone(sizes)}
		if d.sizes == nil {
			d.sizes = []byte{}
		}
		return nil
	}

	if !ls.complete() {
		return fmt.Errorf("incomplete or over-subscribed Huffman code: lengths cover %d of %d codes of %d bits", ls.demand(), ls.capacity(), ls.maxSize)
	}

	*d = Decoder{
		table:   make(map[Code]decoderData, ls.tableHint()),
		sizes:   bytes.Clone(sizes),
		minSize: ls.minSize,
		maxSize: ls.maxSize,
	}

	// Table keys are in stream order, first bit least significant.
	next := ls.firstCodes()
	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		fillTable(d.table, Symbol(symbol), MakeReversedCode(size, uint32(next[size])))
		next[size]++
	}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size) additional bits will be required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// readSymbol reads bits until they spell a complete code and returns its
// Symbol.
func (d Decoder) readSymbol(bits *bitReader) (Symbol, error) {
	var hc Code
	for {
		bit, err := bits.ReadBit()
		if err != nil {
			return InvalidSymbol, err
		}
		hc = hc.Append(bit)

		symbol, minSize, _ := d.Decode(hc)
		switch {
		case symbol != InvalidSymbol:
			return symbol, nil
		case minSize == 0:
			return InvalidSymbol, fmt.Errorf("invalid code %s", hc)
		}
	}
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (d Decoder) MaxSymbol() Symbol {
	return Symbol(len(d.sizes)) - 1
}

// SizeBySymbol returns a copy of the original bit length array used to
// initialize this Decoder.
func (d Decoder) SizeBySymbol() []byte {
	out := make([]byte, len(d.sizes))
	copy(out, d.sizes)
	return out
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	for _, hc := range slices.SortedFunc(maps.Keys(d.table), Code.Compare) {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d Decoder) DebugString() string {
	var buf strings.Builder
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.sizes), d.minSize, d.maxSize)
}

// GoString returns a Go expression that reconstructs this Decoder.
func (d Decoder) GoString() string {
	return "NewDecoder(" + formatSizes(d.sizes) + ")"
}

// MarshalJSON encodes this Decoder as its array of bit lengths.
func (d Decoder) MarshalJSON() ([]byte, error) {
	list := make([]uint, len(d.sizes))
	for i, size := range d.sizes {
		list[i] = uint(size)
	}
	return json.Marshal(list)
}

// UnmarshalJSON decodes an array of bit lengths and initializes this
// Decoder from it.
func (d *Decoder) UnmarshalJSON(raw []byte) error {
	var wide []uint
	if err := json.Unmarshal(raw, &wide); err != nil {
		return err
	}
	list := make([]byte, len(wide))
	for i, size := range wide {
		if size > MaxBitsPerCode {
			return fmt.Errorf("invalid bit length for symbol %d: got %d, max %d", i, size, MaxBitsPerCode)
		}
		list[i] = byte(size)
	}
	return d.Init(list)
}

var (
	_ fmt.Stringer     = Decoder{}
	_ fmt.GoStringer   = Decoder{}
	_ json.Marshaler   = Decoder{}
	_ json.Unmarshaler = (*Decoder)(nil)
)

type decoderData struct {
	symbol  Symbol
	minSize byte
	maxSize byte
}

// fillTable records hc as the code for symbol, then walks up through its
// prefixes, widening each prefix's [minSize, maxSize] range to cover hc and
// the codes already below its sibling.  The walk stops early once a prefix
// is unchanged, since everything above it is then unchanged too.
func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	entry := decoderData{symbol, hc.Size, hc.Size}
	table[hc] = entry

	for hc.Size > 0 {
		last := uint32(1) << (hc.Size - 1)

		merged := decoderData{InvalidSymbol, entry.minSize, entry.maxSize}
		if sibling, ok := table[Code{Size: hc.Size, Bits: hc.Bits ^ last}]; ok {
			merged.minSize = min(merged.minSize, sibling.minSize)
			merged.maxSize = max(merged.maxSize, sibling.maxSize)
		}

		hc = Code{Size: hc.Size - 1, Bits: hc.Bits &^ last}
		if old, ok := table[hc]; ok && old == merged {
			break
		}
		table[hc] = merged
		entry = merged
	}
}
