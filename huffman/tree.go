package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/adt/pqueue"
)

// Tree is a Huffman merge tree.  It is stored as a flat array of nodes in
// which each node knows only its parent; that is all that is needed to
// recover the depth, and therefore the code length, of every leaf.
type Tree struct {
	nodes  []treeNode
	leaves []int32 // index into nodes, by Symbol; -1 if Symbol is unused
	root   int32
}

type treeNode struct {
	symbol Symbol // InvalidSymbol for interior nodes
	weight uint64
	parent int32 // -1 for the root
}

// BuildTree constructs the merge tree for the given frequencies, indexed by
// Symbol.  A leaf is created for every Symbol with a non-zero frequency.  If
// eof is not InvalidSymbol, a leaf is created for it as well, even though its
// frequency is 0.
//
// Weights are combined with saturating addition.
//
func BuildTree(frequencies []uint64, eof Symbol) *Tree {
	assert.Assertf(len(frequencies) <= int(MaxSymbol), "len(frequencies) %d > MaxSymbol %d", len(frequencies), int(MaxSymbol))
	assert.Assertf(eof == InvalidSymbol || (eof >= 0 && int(eof) < len(frequencies)), "eof %d outside [0, %d)", eof, len(frequencies))

	t := &Tree{
		leaves: make([]int32, len(frequencies)),
		root:   -1,
	}
	for symbol := range t.leaves {
		t.leaves[symbol] = -1
	}

	// Creation order breaks ties between equal weights, which makes the
	// shape of the tree, and so the output, deterministic.
	q := pqueue.New(func(a, b int32) bool {
		wa, wb := t.nodes[a].weight, t.nodes[b].weight
		if wa != wb {
			return wa < wb
		}
		return a < b
	})

	for symbol, freq := range frequencies {
		if freq == 0 && Symbol(symbol) != eof {
			continue
		}
		index := t.addNode(Symbol(symbol), freq)
		t.leaves[symbol] = index
		q.Push(index)
	}

	for q.Len() > 1 {
		a, _ := q.Pop()
		b, _ := q.Pop()

		sum := t.nodes[a].weight + t.nodes[b].weight
		if sum < t.nodes[a].weight {
			sum = math.MaxUint64
		}

		parent := t.addNode(InvalidSymbol, sum)
		t.nodes[a].parent = parent
		t.nodes[b].parent = parent
		q.Push(parent)
	}

	if root, ok := q.Pop(); ok {
		t.root = root
	}
	return t
}

func (t *Tree) addNode(symbol Symbol, weight uint64) int32 {
	t.nodes = append(t.nodes, treeNode{symbol: symbol, weight: weight, parent: -1})
	return int32(len(t.nodes) - 1)
}

// NumLeaves returns the number of Symbols that have a leaf in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() uint64 {
	if t.root < 0 {
		return 0
	}
	return t.nodes[t.root].weight
}

// Depth returns the number of edges between the leaf for symbol and the
// root, found by following parent pointers.  It returns 0 for Symbols that
// are not in the tree, and for the sole leaf of a one-leaf tree.
func (t *Tree) Depth(symbol Symbol) int {
	if int(symbol) >= len(t.leaves) || symbol < 0 {
		return 0
	}
	index := t.leaves[symbol]
	if index < 0 {
		return 0
	}
	depth := 0
	for p := t.nodes[index].parent; p >= 0; p = t.nodes[p].parent {
		depth++
	}
	return depth
}

// Sizes returns the code length of every Symbol in [0, numSymbols).  The
// leaf of a one-leaf tree is given length 1, since a code must have at
// least one bit.
func (t *Tree) Sizes(numSymbols int) []byte {
	assert.Assertf(numSymbols >= len(t.leaves), "numSymbols %d < len(frequencies) %d", numSymbols, len(t.leaves))

	sizes := make([]byte, numSymbols)
	for symbol, index := range t.leaves {
		if index < 0 {
			continue
		}
		depth := t.Depth(Symbol(symbol))
		if depth == 0 {
			depth = 1
		}
		if depth > math.MaxUint8 {
			depth = math.MaxUint8
		}
		sizes[symbol] = byte(depth)
	}
	return sizes
}

// MaxDepth returns the depth of the deepest leaf.
func (t *Tree) MaxDepth() int {
	var max int
	for symbol := range t.leaves {
		if d := t.Depth(Symbol(symbol)); d > max {
			max = d
		}
	}
	return max
}

// LimitedSizes builds trees until every code fits in maxSize bits, halving
// the frequencies between attempts, and returns the resulting code lengths
// for the Symbols in [0, numSymbols).  Non-zero frequencies never halve to
// zero, so the set of coded Symbols does not change.  See BuildTree for eof.
func LimitedSizes(numSymbols int, frequencies []uint64, eof Symbol, maxSize int) []byte {
	assert.Assertf(maxSize >= 1 && maxSize <= MaxBitsPerCode, "maxSize %d not in [1, %d]", maxSize, MaxBitsPerCode)

	freqs := make([]uint64, len(frequencies))
	copy(freqs, frequencies)
	for {
		t := BuildTree(freqs, eof)
		if t.MaxDepth() <= maxSize {
			return t.Sizes(numSymbols)
		}
		changed := false
		for i, f := range freqs {
			if f > 1 {
				freqs[i] = (f >> 1) | 1
				changed = true
			}
		}
		assert.Assertf(changed, "cannot fit %d symbols into %d-bit codes", t.NumLeaves(), maxSize)
	}
}
