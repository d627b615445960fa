// Package hamt implements a mutable hash-array-mapped trie: an
// in-memory key to value index whose interior nodes hold a 32-bit
// occupancy bitmap plus a compacted, popcount-indexed child array.
//
// A key's hash is consumed as a stream of 5-bit digits, least
// significant first. Each interior node branches on one digit; the
// physical index of a child within the node's compacted array equals
// the population count of the bitmap's set bits below the child's
// logical slot:
//
//	slice(hash, shift) = (hash >> shift) & 31
//	bit(slice)          = 1 << slice
//	physIndex(slice)    = popcount(bitmap & (bit(slice) - 1))
//
// Nodes are born small (capacity 2-4, tapering with depth) and grow
// one slot at a time as children are added; the root is always
// allocated at capacity 32. Removing the last child of a non-root
// interior node drops that node from its parent.
//
// The trie is single-owner and not safe for concurrent use without an
// external mutex. It never logs and never performs I/O; the boundary
// with a persistent, serialized sibling structure is the Encoder /
// EncodedNode pair in encoder.go.
package hamt
