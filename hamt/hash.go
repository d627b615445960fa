package hamt

import (
	"hash/maphash"

	"github.com/fleece-index/hamt/internal/bitutil"
)

const (
	// bitShift is the width, in bits, of one trie level's digit.
	bitShift = 5
	// maxChildren is the number of possible slots at any interior node.
	maxChildren = 1 << bitShift // 32
	// hashBits is the width of the host machine word this trie slices.
	hashBits = 64
	// maxShift is the last shift at which a level may still descend;
	// beyond it the hash has no more usable bits.
	maxShift = hashBits - hashBits%bitShift - bitShift
)

// Hasher supplies the two host-provided operations the trie needs on a
// key type: a deterministic-within-process hash, and an equality
// predicate used only to disambiguate collisions at a leaf.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// slice extracts the 5-bit digit of hash at the given shift.
func slice(hash uint64, shift uint) uint32 {
	return uint32((hash >> shift) & (maxChildren - 1))
}

// bitOf returns the bitmap bit corresponding to a logical slot.
func bitOf(s uint32) uint32 {
	return 1 << s
}

// physIndex returns the compacted array index of the child occupying
// logical slot s in a node with the given bitmap.
func physIndex(bitmap uint32, s uint32) int {
	return bitutil.RankBelow(bitmap, uint(s))
}

// stringHasher is the default Hasher[string], seeded per process via
// maphash so that hashing is deterministic within a run without being
// stable across processes or predictable from a fixed seed.
type stringHasher struct {
	seed maphash.Seed
}

// NewStringHasher returns the default Hasher for string keys.
func NewStringHasher() Hasher[string] {
	return stringHasher{seed: maphash.MakeSeed()}
}

func (h stringHasher) Hash(key string) uint64 {
	return maphash.String(h.seed, key)
}

func (h stringHasher) Equal(a, b string) bool {
	return a == b
}

// bytesHasher is the default Hasher[[]byte].
type bytesHasher struct {
	seed maphash.Seed
}

// NewBytesHasher returns the default Hasher for []byte keys.
func NewBytesHasher() Hasher[[]byte] {
	return bytesHasher{seed: maphash.MakeSeed()}
}

func (h bytesHasher) Hash(key []byte) uint64 {
	return maphash.Bytes(h.seed, key)
}

func (h bytesHasher) Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
