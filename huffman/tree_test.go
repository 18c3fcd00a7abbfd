package huffman

import (
	"bytes"
	"testing"
)

func TestBuildTree_Depths(t *testing.T) {
	tree := BuildTree([]uint64{5, 9, 12, 13, 16, 45}, InvalidSymbol)

	expect := []int{4, 4, 3, 3, 3, 1}
	for symbol, want := range expect {
		if got := tree.Depth(Symbol(symbol)); got != want {
			t.Errorf("Depth(%d): expected %d, got %d", symbol, want, got)
		}
	}
	if got := tree.Weight(); got != 100 {
		t.Errorf("Weight: expected 100, got %d", got)
	}
	if got := tree.NumLeaves(); got != 6 {
		t.Errorf("NumLeaves: expected 6, got %d", got)
	}
}

func TestBuildTree_EOFLeaf(t *testing.T) {
	var freqs Frequencies
	freqs['x'] = 3

	tree := BuildTree(freqs[:], EOF)
	if got := tree.NumLeaves(); got != 2 {
		t.Fatalf("NumLeaves: expected 2, got %d", got)
	}
	if got := tree.Depth(EOF); got != 1 {
		t.Errorf("Depth(EOF): expected 1, got %d", got)
	}
	if got := tree.Depth('y'); got != 0 {
		t.Errorf("Depth('y'): expected 0, got %d", got)
	}
}

func TestBuildTree_NoEOFLeaf(t *testing.T) {
	freqs := make([]uint64, NumSymbols)
	freqs['x'] = 3

	tree := BuildTree(freqs, InvalidSymbol)
	if got := tree.NumLeaves(); got != 1 {
		t.Fatalf("NumLeaves: expected 1, got %d", got)
	}
	if got := tree.Depth(EOF); got != 0 {
		t.Errorf("Depth(EOF): expected 0, got %d", got)
	}
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	tree := BuildTree([]uint64{0, 4}, InvalidSymbol)
	if got := tree.Depth(1); got != 0 {
		t.Errorf("Depth(1): expected 0, got %d", got)
	}
	expect := []byte{0, 1, 0}
	if got := tree.Sizes(3); !bytes.Equal(expect, got) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expect, got)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil, InvalidSymbol)
	if got := tree.Weight(); got != 0 {
		t.Errorf("Weight: expected 0, got %d", got)
	}
	if got := tree.MaxDepth(); got != 0 {
		t.Errorf("MaxDepth: expected 0, got %d", got)
	}
}

func TestBuildTree_TiesAreDeterministic(t *testing.T) {
	freqs := []uint64{1, 1, 1, 1}
	a := BuildTree(freqs, InvalidSymbol).Sizes(4)
	b := BuildTree(freqs, InvalidSymbol).Sizes(4)
	if !bytes.Equal(a, b) {
		t.Errorf("sizes differ between runs: %v vs %v", a, b)
	}
	expect := []byte{2, 2, 2, 2}
	if !bytes.Equal(expect, a) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expect, a)
	}
}

func TestLimitedSizes(t *testing.T) {
	// Fibonacci weights produce the deepest possible tree.
	freqs := make([]uint64, 40)
	freqs[0], freqs[1] = 1, 1
	for i := 2; i < len(freqs); i++ {
		freqs[i] = freqs[i-1] + freqs[i-2]
	}

	if depth := BuildTree(freqs, InvalidSymbol).MaxDepth(); depth <= 12 {
		t.Fatalf("expected an unlimited depth over 12, got %d", depth)
	}

	sizes := LimitedSizes(len(freqs), freqs, InvalidSymbol, 12)
	for symbol, size := range sizes {
		if size == 0 || size > 12 {
			t.Errorf("symbol %d: size %d not in [1, 12]", symbol, size)
		}
	}

	var e Encoder
	if err := e.InitFromSizes(sizes); err != nil {
		t.Errorf("limited sizes are not a valid code: %v", err)
	}
}
