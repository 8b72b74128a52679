// Lazy traversal sequences over the tree. All three orders run
// iteratively on an explicit deque stack, so adversarially deep trees
// never grow the call stack, and all three share the same
// generation-counter invalidation rule.
package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlcoll/arena"
	"github.com/katalvlaran/lvlcoll/deque"
	"github.com/katalvlaran/lvlcoll/iterator"
)

// InOrder returns a lazy sequence yielding pairs in strictly ascending
// key order. A fresh call produces a new independent sequence.
func (t *Tree[K, V]) InOrder() iterator.Iterator[Pair[K, V]] {
	it := &inOrderIter[K, V]{guard: guard[K, V]{tree: t, gen: t.gen}}
	it.descend(t.root)

	return it
}

// PreOrder returns a lazy sequence yielding each node before its
// subtrees (root, left, right).
func (t *Tree[K, V]) PreOrder() iterator.Iterator[Pair[K, V]] {
	it := &preOrderIter[K, V]{guard: guard[K, V]{tree: t, gen: t.gen}}
	if !t.root.IsNil() {
		it.stack.PushBack(t.root)
	}

	return it
}

// PostOrder returns a lazy sequence yielding each node after its
// subtrees (left, right, root).
func (t *Tree[K, V]) PostOrder() iterator.Iterator[Pair[K, V]] {
	it := &postOrderIter[K, V]{guard: guard[K, V]{tree: t, gen: t.gen}}
	if !t.root.IsNil() {
		it.stack.PushBack(postFrame{h: t.root})
	}

	return it
}

// Keys collects every key in ascending order, the "collect all
// elements into an ordered sequence" conversion surface. O(n).
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	for it := t.InOrder(); it.Next(); {
		out = append(out, it.Value().Key)
	}

	return out
}

// Values collects every value in ascending key order. O(n).
func (t *Tree[K, V]) Values() []V {
	out := make([]V, 0, t.size)
	for it := t.InOrder(); it.Next(); {
		out = append(out, it.Value().Value)
	}

	return out
}

// guard carries what every tree sequence shares: the owning tree, the
// generation snapshot taken at creation, the current element, and the
// terminal error slot.
type guard[K constraints.Ordered, V any] struct {
	tree *Tree[K, V]
	gen  uint64
	cur  Pair[K, V]
	err  error
}

// live reports whether the sequence may continue, recording
// ErrConcurrentModification if the tree mutated underneath it.
func (g *guard[K, V]) live() bool {
	if g.err != nil {
		return false
	}
	if g.gen != g.tree.gen {
		g.err = iterator.ErrConcurrentModification

		return false
	}

	return true
}

func (g *guard[K, V]) Value() Pair[K, V] { return g.cur }

func (g *guard[K, V]) Err() error { return g.err }

// --- in-order -------------------------------------------------------------

type inOrderIter[K constraints.Ordered, V any] struct {
	guard guard[K, V]
	stack deque.Deque[arena.Handle]
}

// descend pushes the left spine of the subtree rooted at h.
func (it *inOrderIter[K, V]) descend(h arena.Handle) {
	for !h.IsNil() {
		it.stack.PushBack(h)
		h = it.guard.tree.mustNode(h).left
	}
}

func (it *inOrderIter[K, V]) Next() bool {
	if !it.guard.live() {
		return false
	}
	h, err := it.stack.PopBack()
	if err != nil {
		return false // exhausted: normal termination
	}
	n := it.guard.tree.mustNode(h)
	it.guard.cur = Pair[K, V]{Key: n.key, Value: n.val}
	it.descend(n.right)

	return true
}

func (it *inOrderIter[K, V]) Value() Pair[K, V] { return it.guard.Value() }

func (it *inOrderIter[K, V]) Err() error { return it.guard.Err() }

// --- pre-order ------------------------------------------------------------

type preOrderIter[K constraints.Ordered, V any] struct {
	guard guard[K, V]
	stack deque.Deque[arena.Handle]
}

func (it *preOrderIter[K, V]) Next() bool {
	if !it.guard.live() {
		return false
	}
	h, err := it.stack.PopBack()
	if err != nil {
		return false
	}
	n := it.guard.tree.mustNode(h)
	it.guard.cur = Pair[K, V]{Key: n.key, Value: n.val}
	// Right below left so the left subtree pops first.
	if !n.right.IsNil() {
		it.stack.PushBack(n.right)
	}
	if !n.left.IsNil() {
		it.stack.PushBack(n.left)
	}

	return true
}

func (it *preOrderIter[K, V]) Value() Pair[K, V] { return it.guard.Value() }

func (it *preOrderIter[K, V]) Err() error { return it.guard.Err() }

// --- post-order -----------------------------------------------------------

// postFrame marks whether a node's subtrees have already been pushed;
// a node is yielded only when popped in its expanded state.
type postFrame struct {
	h        arena.Handle
	expanded bool
}

type postOrderIter[K constraints.Ordered, V any] struct {
	guard guard[K, V]
	stack deque.Deque[postFrame]
}

func (it *postOrderIter[K, V]) Next() bool {
	if !it.guard.live() {
		return false
	}
	for {
		f, err := it.stack.PopBack()
		if err != nil {
			return false
		}
		n := it.guard.tree.mustNode(f.h)
		if f.expanded {
			it.guard.cur = Pair[K, V]{Key: n.key, Value: n.val}

			return true
		}
		it.stack.PushBack(postFrame{h: f.h, expanded: true})
		if !n.right.IsNil() {
			it.stack.PushBack(postFrame{h: n.right})
		}
		if !n.left.IsNil() {
			it.stack.PushBack(postFrame{h: n.left})
		}
	}
}

func (it *postOrderIter[K, V]) Value() Pair[K, V] { return it.guard.Value() }

func (it *postOrderIter[K, V]) Err() error { return it.guard.Err() }
