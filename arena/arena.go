package arena

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrInvalidHandle indicates a handle that is stale (its slot was freed),
// was never issued, or is the zero Handle.
var ErrInvalidHandle = errors.New("arena: invalid or stale handle")

// nextArenaID hands out process-unique arena identities, so a Handle can
// always be traced back to the instance that minted it.
var nextArenaID atomic.Uint64

// Handle is an opaque, stable reference to one allocated slot.
// The zero value is the nil handle and never addresses storage.
type Handle struct {
	arena uint64 // identity of the minting arena; 0 = nil handle
	index uint32 // slot position
	gen   uint32 // slot generation at allocation time
}

// IsNil reports whether h is the zero (nil) handle.
func (h Handle) IsNil() bool { return h.arena == 0 }

// String renders a short diagnostic form, e.g. "arena#3[12@g2]".
func (h Handle) String() string {
	if h.IsNil() {
		return "arena#nil"
	}

	return fmt.Sprintf("arena#%d[%d@g%d]", h.arena, h.index, h.gen)
}

// slot holds one payload plus the bookkeeping needed for O(1)
// staleness detection.
type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Option configures an Arena before first use.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the slot store for n allocations.
// Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Arena owns node storage for a single structure instance.
// It is not safe for concurrent use; lvlcoll's resource model is
// single-writer by contract.
type Arena[T any] struct {
	id    uint64
	slots []slot[T]
	free  []uint32 // indices of retired slots, reused LIFO
	live  int
}

// New creates an empty arena with a fresh process-unique identity.
func New[T any](opts ...Option) *Arena[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arena[T]{
		id:    nextArenaID.Add(1),
		slots: make([]slot[T], 0, cfg.capacity),
	}
}

// Alloc stores v and returns its handle. O(1) amortized.
func (a *Arena[T]) Alloc(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].val = v
		a.slots[idx].live = true
	} else {
		// Fresh slots start at generation 1 so no live handle is ever
		// all-zero aside from the arena id.
		a.slots = append(a.slots, slot[T]{val: v, gen: 1, live: true})
		idx = uint32(len(a.slots) - 1)
	}
	a.live++

	return Handle{arena: a.id, index: idx, gen: a.slots[idx].gen}
}

// Get resolves h to the stored payload for reading or in-place mutation.
// Returns ErrInvalidHandle for nil, stale, or never-issued handles.
// Panics if h was minted by a different arena instance: that is a
// programming-contract violation, not recoverable data state.
func (a *Arena[T]) Get(h Handle) (*T, error) {
	if h.IsNil() {
		return nil, ErrInvalidHandle
	}
	if h.arena != a.id {
		panic(fmt.Sprintf("arena: handle %v presented to arena#%d", h, a.id))
	}
	if int(h.index) >= len(a.slots) {
		return nil, ErrInvalidHandle
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}

	return &s.val, nil
}

// Free retires the slot addressed by h. The slot's generation is bumped
// so every outstanding copy of h turns stale immediately.
// Returns ErrInvalidHandle on stale or double frees; panics on handles
// from a foreign arena (see Get).
func (a *Arena[T]) Free(h Handle) error {
	if _, err := a.Get(h); err != nil {
		return err
	}
	s := &a.slots[h.index]
	var zero T
	s.val = zero // drop payload references eagerly
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)
	a.live--

	return nil
}

// Len returns the number of live allocations. O(1).
func (a *Arena[T]) Len() int { return a.live }
