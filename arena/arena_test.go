package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcoll/arena"
)

func TestArena_AllocGetRoundTrip(t *testing.T) {
	a := arena.New[string]()

	h := a.Alloc("payload")
	require.False(t, h.IsNil())
	require.Equal(t, 1, a.Len())

	p, err := a.Get(h)
	require.NoError(t, err)
	require.Equal(t, "payload", *p)
}

func TestArena_InPlaceMutation(t *testing.T) {
	a := arena.New[int]()
	h := a.Alloc(1)

	p, err := a.Get(h)
	require.NoError(t, err)
	*p = 42

	p2, err := a.Get(h)
	require.NoError(t, err)
	require.Equal(t, 42, *p2)
}

func TestArena_FreeInvalidatesHandle(t *testing.T) {
	a := arena.New[int]()
	h := a.Alloc(7)

	require.NoError(t, a.Free(h))
	require.Zero(t, a.Len())

	_, err := a.Get(h)
	require.ErrorIs(t, err, arena.ErrInvalidHandle)
}

func TestArena_DoubleFreeRejected(t *testing.T) {
	a := arena.New[int]()
	h := a.Alloc(7)

	require.NoError(t, a.Free(h))
	require.ErrorIs(t, a.Free(h), arena.ErrInvalidHandle)
	require.Zero(t, a.Len(), "double free must not corrupt the live count")
}

// TestArena_RecycledSlotRejectsStaleHandle checks that a freed slot,
// once reallocated, never honors the old handle.
func TestArena_RecycledSlotRejectsStaleHandle(t *testing.T) {
	a := arena.New[string]()

	old := a.Alloc("first")
	require.NoError(t, a.Free(old))

	fresh := a.Alloc("second")

	_, err := a.Get(old)
	require.ErrorIs(t, err, arena.ErrInvalidHandle, "stale handle must stay dead after recycling")

	p, err := a.Get(fresh)
	require.NoError(t, err)
	require.Equal(t, "second", *p)
}

func TestArena_NilHandle(t *testing.T) {
	a := arena.New[int]()

	var h arena.Handle
	require.True(t, h.IsNil())

	_, err := a.Get(h)
	require.ErrorIs(t, err, arena.ErrInvalidHandle)
	require.ErrorIs(t, a.Free(h), arena.ErrInvalidHandle)
}

func TestArena_ForeignHandlePanics(t *testing.T) {
	a := arena.New[int]()
	b := arena.New[int]()
	h := a.Alloc(1)

	require.Panics(t, func() { _, _ = b.Get(h) }, "handles are bound to their minting arena")
	require.Panics(t, func() { _ = b.Free(h) })
}

func TestArena_ManyAllocationsStayStable(t *testing.T) {
	a := arena.New[int](arena.WithCapacity(64))

	handles := make([]arena.Handle, 0, 1000)
	for i := 0; i < 1000; i++ {
		handles = append(handles, a.Alloc(i))
	}
	require.Equal(t, 1000, a.Len())

	// Handles must remain stable across every intermediate growth.
	for i, h := range handles {
		p, err := a.Get(h)
		require.NoError(t, err)
		require.Equal(t, i, *p)
	}

	// Retire every odd allocation, verify the evens survive untouched.
	for i := 1; i < 1000; i += 2 {
		require.NoError(t, a.Free(handles[i]))
	}
	require.Equal(t, 500, a.Len())
	for i := 0; i < 1000; i += 2 {
		p, err := a.Get(handles[i])
		require.NoError(t, err)
		require.Equal(t, i, *p)
	}
}

func TestHandle_String(t *testing.T) {
	var nilH arena.Handle
	require.Equal(t, "arena#nil", nilH.String())

	a := arena.New[int]()
	h := a.Alloc(0)
	require.Contains(t, h.String(), "arena#")
}
