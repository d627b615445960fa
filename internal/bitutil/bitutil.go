// Package bitutil collects the small bit-counting helpers shared by the
// hamt and smallbuf packages: popcount-based rank computation for the
// trie's compacted child arrays, and the growth-size arithmetic used
// whenever a buffer or node needs more room.
package bitutil

import "github.com/hideo55/go-popcount"

// PopCount32 returns the number of set bits in bm.
func PopCount32(bm uint32) int {
	return int(popcount.Count(uint64(bm)))
}

// RankBelow returns the number of set bits in bm below bit position b,
// i.e. the population count of bm & (1<<b - 1). This is the physical
// index of the slot that logical slot b occupies in a compacted array.
func RankBelow(bm uint32, b uint) int {
	return PopCount32(bm & ((uint32(1) << b) - 1))
}

// GrowTo computes the next capacity to use when growing from cur to at
// least need, following the 1.5x-or-needed rule: max(cur + cur/2, need).
func GrowTo(cur, need uint32) uint32 {
	grown := cur + cur/2
	if grown > need {
		return grown
	}
	return need
}
