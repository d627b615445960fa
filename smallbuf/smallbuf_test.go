package smallbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToInline(t *testing.T) {
	t.Parallel()

	b := New[int](0)

	assert.Equal(t, MaxInline, b.Cap())
	assert.True(t, b.Empty())
}

func TestPushBack_StaysInlineUntilSpill(t *testing.T) {
	t.Parallel()

	b := New[int](MaxInline)

	for i := 0; i < MaxInline; i++ {
		b.PushBack(i)
	}

	require.Equal(t, MaxInline, b.Len())
	assert.Equal(t, MaxInline, b.Cap())
	assert.Nil(t, b.big, "should still be inline after filling to capacity")

	b.PushBack(MaxInline) // one past capacity: must spill

	assert.NotNil(t, b.big)
	assert.GreaterOrEqual(t, b.Cap(), MaxInline+1)
	assert.Equal(t, MaxInline+1, b.Len())

	for i := 0; i <= MaxInline; i++ {
		assert.Equal(t, i, b.At(i))
	}
}

func TestPopBack_StaysHeapBackedAfterShrinkingSize(t *testing.T) {
	t.Parallel()

	b := New[int](4)
	for i := 0; i < 5; i++ {
		b.PushBack(i)
	}
	require.NotNil(t, b.big)

	b.PopBack()
	b.PopBack()
	b.PopBack()

	assert.Equal(t, 2, b.Len())
	assert.NotNil(t, b.big, "pop_back must not release heap storage")
}

func TestSetCapacity_MovesBackInlineAndReleasesHeap(t *testing.T) {
	t.Parallel()

	b := New[int](4)
	for i := 0; i < 5; i++ {
		b.PushBack(i)
	}
	b.PopBack() // back down to size 4

	b.SetCapacity(4)

	assert.Nil(t, b.big)
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 4, b.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, b.At(i))
	}
}

func TestSetCapacity_ShrinkBelowSizePanics(t *testing.T) {
	t.Parallel()

	b := New[int](4)
	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	assert.PanicsWithValue(t, ErrShrinkBelowSize, func() {
		b.SetCapacity(2)
	})
}

func TestSetCapacity_OverflowPanics(t *testing.T) {
	t.Parallel()

	b := New[int](4)

	assert.PanicsWithValue(t, ErrCapacityOverflow, func() {
		b.SetCapacity(MaxCapacity + 1)
	})
}

func TestErase_ShiftsTailLeft(t *testing.T) {
	t.Parallel()

	b := New[int](4)
	for i := 0; i < 4; i++ {
		b.PushBack(i)
	}

	b.Erase(1, 3) // remove indices 1,2

	require.Equal(t, 2, b.Len())
	assert.Equal(t, 0, b.At(0))
	assert.Equal(t, 3, b.At(1))
}

func TestResize_GrowsWithZeroValuesAndShrinksDiscardingTail(t *testing.T) {
	t.Parallel()

	b := New[string](2)
	b.PushBack("a")
	b.PushBack("b")

	b.Resize(4)
	require.Equal(t, 4, b.Len())
	assert.Equal(t, "", b.At(2))
	assert.Equal(t, "", b.At(3))

	b.Resize(1)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, "a", b.At(0))
}

func TestClear_KeepsHeapStorage(t *testing.T) {
	t.Parallel()

	b := New[int](4)
	for i := 0; i < 6; i++ {
		b.PushBack(i)
	}
	cap := b.Cap()

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, cap, b.Cap())
}

func TestReserve_NoOpWhenAlreadyBigEnough(t *testing.T) {
	t.Parallel()

	b := New[int](8)
	b.Reserve(4)

	assert.Equal(t, 8, b.Cap())
}

func TestEmplaceBack(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	b := New[point](2)
	p := b.EmplaceBack(func() point { return point{1, 2} })

	assert.Equal(t, point{1, 2}, *p)
	assert.Equal(t, 1, b.Len())
}
