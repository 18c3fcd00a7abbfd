// Package huffman implements canonical Huffman codes and a byte-stream
// compressor built on them.
//
// Code lengths come from a merge tree: every symbol starts as a leaf in a
// min priority queue, the two lightest nodes are repeatedly merged under a
// new parent, and each leaf's depth is found by following parent pointers
// up to the root.  The lengths are then turned into a canonical code, so
// only the lengths need to be stored alongside the packed data.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffman
