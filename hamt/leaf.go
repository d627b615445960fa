package hamt

import "github.com/fleece-index/hamt/smallbuf"

// leaf is a terminal (hash, key, value) tuple. Its hash and key never
// change after construction; Insert of the same key overwrites val in
// place.
type leaf[K any, V any] struct {
	hash uint64
	key  K
	val  V
}

// kv is one entry of a collisionLeaf's item list.
type kv[K any, V any] struct {
	key K
	val V
}

// collisionLeaf holds several (key, value) pairs that all share one
// full 64-bit hash, needed once descent exhausts the hash's bits
// without disambiguating two keys, rather than assuming that never
// happens.
type collisionLeaf[K any, V any] struct {
	hash  uint64
	items smallbuf.Buffer[kv[K, V]]
}

func newCollisionLeaf[K any, V any](hash uint64, k1 K, v1 V, k2 K, v2 V) *collisionLeaf[K, V] {
	cl := &collisionLeaf[K, V]{hash: hash, items: *smallbuf.New[kv[K, V]](2)}
	cl.items.PushBack(kv[K, V]{k1, v1})
	cl.items.PushBack(kv[K, V]{k2, v2})
	return cl
}

// get returns the value stored for key, searching linearly.
func (cl *collisionLeaf[K, V]) get(key K, hasher Hasher[K]) (V, bool) {
	for _, it := range cl.items.Slice() {
		if hasher.Equal(it.key, key) {
			return it.val, true
		}
	}
	var zero V
	return zero, false
}

// upsert overwrites key's value if present, otherwise appends it.
func (cl *collisionLeaf[K, V]) upsert(key K, val V, hasher Hasher[K]) {
	s := cl.items.Slice()
	for i := range s {
		if hasher.Equal(s[i].key, key) {
			cl.items.Set(i, kv[K, V]{key, val})
			return
		}
	}
	cl.items.PushBack(kv[K, V]{key, val})
}

// remove deletes key's entry if present. It reports whether anything
// was removed and how many items remain afterward.
func (cl *collisionLeaf[K, V]) remove(key K, hasher Hasher[K]) (removed bool, remaining int) {
	s := cl.items.Slice()
	for i := range s {
		if hasher.Equal(s[i].key, key) {
			cl.items.Erase(i, i+1)
			return true, cl.items.Len()
		}
	}
	return false, cl.items.Len()
}

// only returns the sole remaining item; callers must only call this
// when items.Len() == 1.
func (cl *collisionLeaf[K, V]) only() kv[K, V] {
	return cl.items.At(0)
}
