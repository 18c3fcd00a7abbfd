// Package hashset implements adt.Set with two hash table designs.
//
// Open uses open addressing: a single array of slots, with collisions
// resolved by linear probing and removals leaving tombstones.
//
// Chained uses separate chaining: an array of list.List buckets, sized so
// that each bucket holds about Alpha elements at capacity.
//
package hashset
