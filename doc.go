// Package adt defines the container interfaces shared by the SET and LIST
// implementations in this module.
//
// Each subpackage backs the same interface with a different structure:
//
//     arrayset   unsorted array, linear search
//     sortedset  sorted array, binary search
//     hashset    open addressing with linear probing, and chained buckets
//     list       circular doubly-linked list with a sentinel node
//     deque      linked chain of ring buffers that double in size
//
// Package pqueue provides the min priority queue that package huffman uses
// to build its merge tree.
//
package adt
