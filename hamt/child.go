package hamt

// childKind discriminates the sum type a child slot may hold: a plain
// leaf, a collision-list leaf, another interior node, or a reference
// into the external immutable encoded structure. Go has no tagged
// union, so the kind tag plus one pointer field per variant plays
// that role.
type childKind uint8

const (
	childNone childKind = iota
	childLeafKind
	childCollisionKind
	childInteriorKind
	childEncodedKind
)

// slot is one entry of an interior node's compacted children array.
// Exactly one of leaf, coll, node, enc is non-nil, selected by kind.
type slot[K any, V any] struct {
	kind childKind
	leaf *leaf[K, V]
	coll *collisionLeaf[K, V]
	node *node[K, V]
	enc  EncodedNode
}

func leafSlot[K any, V any](hash uint64, key K, val V) slot[K, V] {
	return slot[K, V]{kind: childLeafKind, leaf: &leaf[K, V]{hash: hash, key: key, val: val}}
}

func collisionSlot[K any, V any](cl *collisionLeaf[K, V]) slot[K, V] {
	return slot[K, V]{kind: childCollisionKind, coll: cl}
}

func nodeSlot[K any, V any](n *node[K, V]) slot[K, V] {
	return slot[K, V]{kind: childInteriorKind, node: n}
}

func encodedSlot[K any, V any](enc EncodedNode) slot[K, V] {
	return slot[K, V]{kind: childEncodedKind, enc: enc}
}
