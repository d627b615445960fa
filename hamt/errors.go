package hamt

import "errors"

// ErrAllocationFailure would be returned by Insert if a node grow or
// leaf allocation could not obtain memory. Go's allocator aborts the
// process rather than returning an error on exhaustion, so this path
// is unreachable today; it is kept so the Insert signature matches a
// future arena-backed allocator.
var ErrAllocationFailure = errors.New("hamt: allocation failure")

// ErrHashDepthExhausted is panicked when two distinct keys collide on
// every usable 5-bit slice of a fixed-width hash and no collision-list
// leaf variant is in play. It should not occur through the public
// insert path, which always falls back to a collisionLeaf instead; it
// remains as a defensive invariant check in insert.go.
var ErrHashDepthExhausted = errors.New("hamt: hash depth exhausted")
