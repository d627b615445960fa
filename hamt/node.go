package hamt

import "github.com/fleece-index/hamt/smallbuf"

// node is an interior trie node: a 32-bit occupancy bitmap plus a
// compacted, popcount-indexed children array. The i-th entry of
// children corresponds to the i-th set bit of bitmap, counting from
// the least significant bit.
type node[K any, V any] struct {
	bitmap   uint32
	children smallbuf.Buffer[slot[K, V]]
}

// initialCapacityForShift returns the starting capacity for a
// non-root interior node that will operate at the given shift (i.e.
// the node created to hold whatever collided one level up). The
// schedule tapers with depth: a node one hop below the root is the
// most likely to fan out, so it starts at 4; nodes two or three hops
// down start at 3; anything deeper starts at 2 — trading a little
// extra copying on rare deep fan-out against not over-allocating the
// common shallow case.
func initialCapacityForShift(shift uint) int {
	depth := int(shift/bitShift) - 1
	switch {
	case depth <= 0:
		return 4
	case depth <= 2:
		return 3
	default:
		return 2
	}
}

func newNode[K any, V any](capacity int) *node[K, V] {
	return &node[K, V]{children: *smallbuf.New[slot[K, V]](capacity)}
}

// newRootNode allocates a root interior node at the full 32-slot
// capacity, per the invariant that the root is the node most likely to
// reach maximum fan-out.
func newRootNode[K any, V any]() *node[K, V] {
	return newNode[K, V](maxChildren)
}

func (n *node[K, V]) hasChild(s uint32) bool {
	return n.bitmap&bitOf(s) != 0
}

func (n *node[K, V]) childCount() int {
	return n.children.Len()
}

// addChild inserts item at logical slot s. If the node's children
// buffer is already at capacity, it is grown by exactly one slot first,
// which is why this shift is done here rather than by relying on
// Buffer.PushBack's automatic 1.5x growth.
func (n *node[K, V]) addChild(s uint32, item slot[K, V]) {
	idx := physIndex(n.bitmap, s)
	count := n.children.Len()
	if count >= n.children.Cap() {
		n.children.SetCapacity(n.children.Cap() + 1)
	}
	n.children.Resize(count + 1)
	view := n.children.Slice()
	copy(view[idx+1:], view[idx:count])
	view[idx] = item
	n.bitmap |= bitOf(s)
}

// removeChildAt drops the child at logical slot s, compacting the
// array and clearing the bitmap bit. Capacity is never reduced.
func (n *node[K, V]) removeChildAt(s uint32) {
	idx := physIndex(n.bitmap, s)
	n.children.Erase(idx, idx+1)
	n.bitmap &^= bitOf(s)
}
