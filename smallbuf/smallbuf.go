// Package smallbuf implements an ordered sequence with an inline
// capacity: up to MaxInline elements live in the Buffer's own struct,
// and only growth past that spills to a heap-allocated slice. It backs
// the hamt package's interior-node child arrays and any other small,
// short-lived collection that would otherwise pay for a heap
// allocation on every rewrite.
//
// A Buffer is movable (plain Go assignment transfers heap ownership
// correctly) but must not be copied once shared — the usual rule for
// any Go struct that owns a backing slice.
package smallbuf

import "github.com/fleece-index/hamt/internal/bitutil"

// MaxInline is the largest inline capacity a Buffer can hold without
// spilling to the heap. It is sized for the hamt package's largest
// non-root initial node capacity (4, for a direct child of the root);
// the root (capacity 32) and any other callers that ask
// for a larger initial capacity simply start out heap-backed.
const MaxInline = 4

// MaxCapacity is the largest capacity a Buffer may ever be asked to
// hold.
const MaxCapacity = 1<<32 - 1

// Buffer is an ordered sequence of T with an inline capacity of
// MaxInline elements.
type Buffer[T any] struct {
	size int
	cap  int
	small [MaxInline]T
	big   []T
}

// New returns a Buffer with the given initial capacity. Capacities up
// to MaxInline stay inline; larger ones spill straight to the heap.
func New[T any](capacity int) *Buffer[T] {
	b := &Buffer[T]{}
	if capacity > 0 {
		b.SetCapacity(capacity)
	} else {
		b.cap = MaxInline
	}
	return b
}

// Len returns the number of elements currently stored.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the buffer's current capacity.
func (b *Buffer[T]) Cap() int { return b.cap }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

func (b *Buffer[T]) storage() []T {
	if b.big != nil {
		return b.big[:b.cap]
	}
	return b.small[:]
}

// At returns the element at index i. Like a plain Go slice index, an
// out-of-range i panics.
func (b *Buffer[T]) At(i int) T {
	return b.storage()[:b.size][i]
}

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, v T) {
	b.storage()[:b.size][i] = v
}

// Slice returns a view over the current elements, valid until the next
// mutating call.
func (b *Buffer[T]) Slice() []T {
	return b.storage()[:b.size]
}

// PushBack appends t, growing the buffer if it is full, and returns a
// pointer to the newly stored element.
func (b *Buffer[T]) PushBack(t T) *T {
	b.growIfFull(b.size + 1)
	s := b.storage()
	s[b.size] = t
	p := &s[b.size]
	b.size++
	return p
}

// EmplaceBack constructs the new trailing element via build and stores
// it; Go has no placement new, so build is simply invoked before the
// value is copied in.
func (b *Buffer[T]) EmplaceBack(build func() T) *T {
	return b.PushBack(build())
}

// PopBack discards the last element.
func (b *Buffer[T]) PopBack() {
	if b.size == 0 {
		panic("smallbuf: PopBack on empty buffer")
	}
	var zero T
	s := b.storage()
	s[b.size-1] = zero
	b.size--
}

// Erase removes the half-open range [first, last), shifting the tail
// left.
func (b *Buffer[T]) Erase(first, last int) {
	if first < 0 || last > b.size || first > last {
		panic("smallbuf: Erase out of range")
	}
	s := b.storage()
	n := copy(s[first:], s[last:b.size])
	var zero T
	for i := first + n; i < b.size; i++ {
		s[i] = zero
	}
	b.size -= last - first
}

// Resize grows or shrinks the buffer to exactly n elements. Growing
// zero-fills the new trailing elements; shrinking discards the tail.
func (b *Buffer[T]) Resize(n int) {
	if n > b.size {
		b.growIfFull(n)
		s := b.storage()
		var zero T
		for i := b.size; i < n; i++ {
			s[i] = zero
		}
		b.size = n
		return
	}
	var zero T
	s := b.storage()
	for i := n; i < b.size; i++ {
		s[i] = zero
	}
	b.size = n
}

// Reserve grows capacity to at least cap; it is a no-op if the buffer
// is already at least that large.
func (b *Buffer[T]) Reserve(capacity int) {
	if capacity > b.cap {
		b.SetCapacity(capacity)
	}
}

// Clear destroys all elements without releasing heap storage.
func (b *Buffer[T]) Clear() {
	var zero T
	s := b.storage()
	for i := 0; i < b.size; i++ {
		s[i] = zero
	}
	b.size = 0
}

// growIfFull ensures capacity is at least need, applying the grow rule
// of max(cur + cur/2, need) when the buffer is full.
func (b *Buffer[T]) growIfFull(need int) {
	if need <= b.cap {
		return
	}
	grown := bitutil.GrowTo(uint32(b.cap), uint32(need))
	b.SetCapacity(int(grown))
}

// SetCapacity grows or shrinks the allocated capacity to exactly cap.
// Crossing MaxInline spills to (or returns from) the heap. It panics
// with ErrCapacityOverflow or ErrShrinkBelowSize on programming
// errors rather than failing silently.
func (b *Buffer[T]) SetCapacity(capacity int) {
	if capacity == b.cap {
		return
	}
	if capacity > MaxCapacity {
		panic(ErrCapacityOverflow)
	}
	if capacity < b.size {
		panic(ErrShrinkBelowSize)
	}

	switch {
	case capacity <= MaxInline:
		if b.big != nil {
			copy(b.small[:b.size], b.big[:b.size])
			b.big = nil
		}
	default:
		newBig := make([]T, capacity)
		if b.big != nil {
			copy(newBig, b.big[:b.size])
		} else {
			copy(newBig, b.small[:b.size])
		}
		b.big = newBig
	}
	b.cap = capacity
}
