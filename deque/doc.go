// Package deque implements a generic double-ended queue backed by a
// growable ring buffer.
//
// It is the linear collaborator consumed by the traversal engines: bfs
// uses it as a FIFO frontier (PushBack/PopFront), dfs and the tree
// iterators use it as a LIFO stack (PushBack/PopBack), so adversarially
// deep structures never grow the call stack.
//
// Complexity:
//
//   - Push/Pop/Peek at either end: amortized O(1)
//   - Space: O(n)
//
// Popping or peeking an empty deque returns ErrEmptyDeque; it is a
// regular return value the caller branches on, never a panic.
package deque
