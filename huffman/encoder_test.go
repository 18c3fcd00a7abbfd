package huffman

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestEncoder_Init(t *testing.T) {
	type testRow struct {
		name  string
		num   int
		freqs []uint64
		sizes []byte
		codes map[Symbol]string
	}
	testData := [...]testRow{
		{
			name:  "six-symbols",
			num:   6,
			freqs: []uint64{5, 9, 12, 13, 16, 45},
			sizes: []byte{4, 4, 3, 3, 3, 1},
			codes: map[Symbol]string{0: "1110", 1: "1111", 2: "100", 3: "101", 4: "110", 5: "0"},
		},
		{
			name:  "unused-tail",
			num:   5,
			freqs: []uint64{1, 1, 2},
			sizes: []byte{2, 2, 1, 0, 0},
			codes: map[Symbol]string{0: "10", 1: "11", 2: "0"},
		},
		{
			name:  "equal-weights",
			num:   4,
			freqs: []uint64{3, 3, 3, 3},
			sizes: []byte{2, 2, 2, 2},
			codes: map[Symbol]string{0: "00", 1: "01", 2: "10", 3: "11"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var e Encoder
			e.Init(row.num, row.freqs)

			if actual := e.SizeBySymbol(); !bytes.Equal(row.sizes, actual) {
				t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", row.sizes, actual)
			}
			for symbol, expect := range row.codes {
				if actual := e.Encode(symbol).String(); actual != strconv.Quote(expect) {
					t.Errorf("Encode(%d) = %s, expected %q", symbol, actual, expect)
				}
			}
		})
	}
}

func TestEncoder_Describe(t *testing.T) {
	e := NewEncoder([]byte{2, 0, 1, 2})

	expectDump := "Encoder{\n" +
		"\tMinSize() = 1\n" +
		"\tMaxSize() = 2\n" +
		"\tEncode(0) = \"10\"\n" +
		"\tEncode(1) = nil\n" +
		"\tEncode(2) = \"0\"\n" +
		"\tEncode(3) = \"11\"\n" +
		"}\n"
	var buf strings.Builder
	if _, err := e.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if actual := buf.String(); actual != expectDump {
		t.Errorf("wrong dump:\n\texpect: %s\n\tactual: %s", expectDump, actual)
	}

	if expect, actual := "NewEncoder([]byte{2,0,1,2})", e.GoString(); actual != expect {
		t.Errorf("wrong GoString:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "(Huffman encoder with 4 symbols, with coded lengths of 1 .. 2 bits)", e.String(); actual != expect {
		t.Errorf("wrong String:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if e.MaxSymbol() != 3 || e.MinSize() != 1 || e.MaxSize() != 2 {
		t.Errorf("wrong bounds: MaxSymbol %d, MinSize %d, MaxSize %d", e.MaxSymbol(), e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_InitFromSizes_OverSubscribed(t *testing.T) {
	var e Encoder
	if err := e.InitFromSizes([]byte{1, 1, 1}); err == nil {
		t.Errorf("expected error for three 1-bit codes")
	}
	if err := e.InitFromSizes([]byte{33, 1}); err == nil {
		t.Errorf("expected error for a 33-bit code")
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	e.Init(4, []uint64{0, 0, 7})

	actualSizes := e.SizeBySymbol()
	expectSizes := []byte{0, 0, 1, 0}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
	if hc := e.Encode(2); hc != MakeCode(1, 0) {
		t.Errorf("expected code \"0\", got %s", hc)
	}
}

func TestEncoder_DecoderAgree(t *testing.T) {
	var freqs Frequencies
	freqs['a'], freqs['b'], freqs['c'] = 45, 13, 12
	freqs['d'], freqs['e'], freqs['f'] = 16, 9, 5

	e := NewEncoder(freqs.CodeSizes())

	d := NewDecoder(e.SizeBySymbol())
	for _, symbol := range []Symbol{'a', 'b', 'c', 'd', 'e', 'f', EOF} {
		hc := e.Encode(symbol)
		if hc.Size == 0 {
			t.Errorf("symbol %d has no code", symbol)
			continue
		}
		actual, minSize, maxSize := d.Decode(hc.Reversed())
		if actual != symbol || minSize != hc.Size || maxSize != hc.Size {
			t.Errorf("Decode(%s) = {%d, %d, %d}, expected {%d, %d, %d}", hc.Reversed(), actual, minSize, maxSize, symbol, hc.Size, hc.Size)
		}
	}
}

func TestEncoder_Init_LargeAlphabet(t *testing.T) {
	var e Encoder
	e.Init(300, []uint64{5, 7})

	sizes := e.SizeBySymbol()
	if len(sizes) != 300 {
		t.Fatalf("expected 300 sizes, got %d", len(sizes))
	}
	for symbol, size := range sizes {
		expect := byte(0)
		if symbol < 2 {
			expect = 1
		}
		if size != expect {
			t.Errorf("symbol %d: expected size %d, got %d", symbol, expect, size)
		}
	}
}

func TestFrequencies_CodeSizes_Limited(t *testing.T) {
	// Fibonacci counts would need codes far longer than MaxBitsPerCode.
	var freqs Frequencies
	freqs[0], freqs[1] = 1, 1
	for i := 2; i < 60; i++ {
		freqs[i] = freqs[i-1] + freqs[i-2]
	}
	for i := 60; i < int(EOF); i++ {
		freqs[i] = 1
	}

	if depth := BuildTree(freqs[:], EOF).MaxDepth(); depth <= MaxBitsPerCode {
		t.Fatalf("expected an unlimited depth over %d, got %d", MaxBitsPerCode, depth)
	}

	e := NewEncoder(freqs.CodeSizes())
	if e.MaxSize() > MaxBitsPerCode {
		t.Errorf("MaxSize: expected at most %d, got %d", MaxBitsPerCode, e.MaxSize())
	}
	for symbol, size := range e.SizeBySymbol() {
		if size == 0 {
			t.Errorf("symbol %d has no code", symbol)
		}
	}
}
