// Package avl implements the ordered tree engine: a generic, height-
// balanced (AVL) binary search tree over totally-ordered keys.
//
// Discipline: AVL with balance bound 1: after every Insert or Remove
// the heights of any node's subtrees differ by at most one, restored by
// single or double rotations along the ancestor path (at most O(log n)
// rotations per operation). Keys are unique; inserting an existing key
// replaces the value in place and is not a structural change.
//
// Ownership: all nodes live in an arena.Arena owned by the tree; links
// between nodes are stable arena handles, and parent links are
// non-owning back-references. Rotations re-point handles, never copy
// nodes, so iterative rebalancing and successor stepping stay O(1) per
// link touched.
//
// Iteration: InOrder, PreOrder and PostOrder return lazy sequences over
// Pair values. In-order yields keys in strictly ascending order, the
// structural correctness property of the BST invariant. Sequences are
// invalidated by any structural mutation (see package iterator).
//
// Complexity:
//
//   - Insert / Remove / Get: O(log n)
//   - Min / Max: O(log n)
//   - Full iteration: O(n) total, amortized O(1) per element
//
// The tree is single-writer: no internal locking, per the lvlcoll
// resource model.
package avl
