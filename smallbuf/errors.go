package smallbuf

import "errors"

// ErrCapacityOverflow is panicked when a requested capacity exceeds
// MaxCapacity. It is a programming error, never a runtime condition a
// caller should expect to recover from in the common path.
var ErrCapacityOverflow = errors.New("smallbuf: requested capacity exceeds 2^32-1")

// ErrShrinkBelowSize is panicked when SetCapacity is asked for a
// capacity smaller than the buffer's current length.
var ErrShrinkBelowSize = errors.New("smallbuf: requested capacity smaller than current size")
