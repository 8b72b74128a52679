// Package iterator defines the lazy sequence contract shared by every
// lvlcoll engine: trees yield in-/pre-/post-order pairs, graphs yield
// BFS/DFS node identities, all through the same pull-style Iterator.
//
// Contract:
//
//   - Next advances the sequence and reports whether a value is available.
//   - Value returns the current element; repeatable, side-effect free.
//   - Err returns the terminal error, if any, once Next has returned false.
//
// Exhaustion is normal termination, not an error. A sequence is not
// restartable mid-flight; asking the owning structure again produces a
// fresh, independent sequence.
//
// Structural mutation of the owning structure while a sequence is still
// being consumed invalidates it: the next Next() returns false and Err()
// reports ErrConcurrentModification. Detection is O(1) via a generation
// counter snapshot taken at sequence creation.
package iterator
