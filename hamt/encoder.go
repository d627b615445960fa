package hamt

import "github.com/fleece-index/hamt/smallbuf"

// EncodedNode is one node of the external, immutable, serialized
// sibling structure this trie can be constructed over. It is the
// boundary contract with the serializer; this package never
// interprets the encoded byte layout itself, only these two
// read-only shapes.
type EncodedNode interface {
	IsLeaf() bool
}

// EncodedLeaf is implemented by an EncodedNode for which IsLeaf is
// true.
type EncodedLeaf[K any, V any] interface {
	EncodedNode
	Hash() uint64
	Key() K
	Value() V
}

// EncodedInterior is implemented by an EncodedNode for which IsLeaf is
// false. ChildCount equals the population count of Bitmap; Child maps
// a compacted physical index (0..ChildCount-1) to the corresponding
// child node, matching this package's own compaction scheme.
type EncodedInterior interface {
	EncodedNode
	Bitmap() uint32
	ChildCount() int
	Child(physIndex int) EncodedNode
}

// Encoder is the serializer boundary for writing a trie out: it walks
// the trie via these callbacks and is free to produce whatever byte
// stream it wants. EncodedSubtree is offered an untouched region
// still backed by the prior encoded structure, which lets a delta
// encoder skip re-encoding anything this trie never mutated.
type Encoder[K any, V any] interface {
	BeginNode(bitmap uint32, childCount int)
	EndNode()
	Leaf(hash uint64, key K, value V)
	EncodedSubtree(enc EncodedNode)
}

// WriteTo hands the trie to enc, which walks it and produces an
// encoded representation. The trie itself has no wire format of its
// own.
func (t *Trie[K, V]) WriteTo(enc Encoder[K, V]) error {
	if t.root == nil {
		enc.BeginNode(0, 0)
		enc.EndNode()
		return nil
	}
	writeNode(t.root, enc)
	return nil
}

func writeNode[K any, V any](n *node[K, V], enc Encoder[K, V]) {
	enc.BeginNode(n.bitmap, n.childCount())
	for _, cur := range n.children.Slice() {
		switch cur.kind {
		case childLeafKind:
			enc.Leaf(cur.leaf.hash, cur.leaf.key, cur.leaf.val)
		case childCollisionKind:
			for _, it := range cur.coll.items.Slice() {
				enc.Leaf(cur.coll.hash, it.key, it.val)
			}
		case childInteriorKind:
			writeNode(cur.node, enc)
		case childEncodedKind:
			enc.EncodedSubtree(cur.enc)
		}
	}
	enc.EndNode()
}

// NewFromEncoded constructs a mutable trie wrapping an immutable
// encoded root. The root itself is materialized eagerly (a trie's
// root must always be a real interior node, per the invariant that it
// is never demoted) at the full 32-slot capacity; its children stay as
// encoded-reference slots (childEncodedKind) and are only materialized
// the first time a mutation touches their path.
func NewFromEncoded[K any, V any](root EncodedInterior, hasher Hasher[K]) *Trie[K, V] {
	shell := materializeShell[K, V](root)
	shell.node.children.Reserve(maxChildren)
	return &Trie[K, V]{root: shell.node, hasher: hasher}
}

// materializeShell converts one level of the external encoded
// structure into a real node or leaf. For an interior node, only the
// node's own header (bitmap + children array) becomes real; each
// child slot is left as an encoded-reference slot wrapping the corresponding
// EncodedNode, deferring further materialization until that path is
// actually touched by a mutation.
func materializeShell[K any, V any](enc EncodedNode) slot[K, V] {
	if enc.IsLeaf() {
		l := enc.(EncodedLeaf[K, V])
		return leafSlot[K, V](l.Hash(), l.Key(), l.Value())
	}

	in := enc.(EncodedInterior)
	n := &node[K, V]{bitmap: in.Bitmap()}
	count := in.ChildCount()
	n.children = *smallbuf.New[slot[K, V]](count)
	n.children.Resize(count)
	view := n.children.Slice()
	for i := 0; i < count; i++ {
		view[i] = encodedSlot[K, V](in.Child(i))
	}
	return nodeSlot[K, V](n)
}
