// Package arena provides generational slot storage that owns every node
// allocation of an lvlcoll structure instance.
//
// Tree rotations and graph edge rewiring re-point several owners at the
// same node; raw pointers would force reference counting or invite
// aliasing bugs. The arena sidesteps both: nodes live in slots, links
// are stable Handles, and the arena alone frees storage.
//
// Guarantees:
//
//   - A Handle stays valid for exactly the lifetime of its allocation.
//   - Freed slots are recycled, but their generation is bumped first, so
//     stale handles are rejected in O(1) with ErrInvalidHandle.
//   - Double frees are rejected, never corrupting the free list.
//   - Arena identities come from a process-scoped atomic counter owned by
//     this package; independent structures can never confuse handles.
//
// Presenting a Handle minted by a different Arena instance is a caller
// bug, not recoverable data state, and panics (see Get).
//
// Complexity: Alloc, Get, Free, Len are all O(1); storage grows
// amortized like an append-backed slice.
package arena
