// Ordered tree engine: search, mutation, and AVL rebalancing.
//
// Node pointers obtained from the arena are only valid until the next
// Alloc (slot storage may move); every code path below re-fetches after
// allocating.
package avl

import "github.com/katalvlaran/lvlcoll/arena"

// Len returns the number of stored keys. O(1).
func (t *Tree[K, V]) Len() int { return t.size }

// Height returns the height of the tree in nodes (0 for an empty tree,
// 1 for a single node). O(1).
func (t *Tree[K, V]) Height() int { return t.heightOf(t.root) }

// Get returns the value stored under k. The second result is false when
// the key is absent; a miss is a regular outcome, not an error.
// O(log n), no mutation.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	if h := t.find(k); !h.IsNil() {
		return t.mustNode(h).val, true
	}
	var zero V

	return zero, false
}

// Insert stores v under k. If k is already present the value is
// replaced in place and the previous value is returned with
// replaced=true; no structural change occurs. Otherwise a new leaf is
// attached and every ancestor on the path back to the root is
// rebalanced. O(log n).
func (t *Tree[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	if t.root.IsNil() {
		t.root = t.nodes.Alloc(node[K, V]{key: k, val: v, height: 1})
		t.size++
		t.gen++

		return prev, false
	}

	// Ordered descent to the insertion point.
	var parent arena.Handle
	var goLeft bool
	cur := t.root
	for !cur.IsNil() {
		n := t.mustNode(cur)
		switch {
		case k < n.key:
			parent, goLeft, cur = cur, true, n.left
		case n.key < k:
			parent, goLeft, cur = cur, false, n.right
		default:
			prev, n.val = n.val, v

			return prev, true
		}
	}

	leaf := t.nodes.Alloc(node[K, V]{key: k, val: v, parent: parent, height: 1})
	p := t.mustNode(parent) // re-fetch: Alloc may have moved slot storage
	if goLeft {
		p.left = leaf
	} else {
		p.right = leaf
	}
	t.size++
	t.gen++
	t.retrace(parent)

	return prev, false
}

// Remove deletes k, returning the removed value. The second result is
// false when the key is absent (the tree is untouched). A node with two
// children is replaced by its in-order successor, which then has at
// most one child and is spliced out; ancestors are rebalanced exactly
// as on insert. O(log n).
func (t *Tree[K, V]) Remove(k K) (V, bool) {
	h := t.find(k)
	if h.IsNil() {
		var zero V

		return zero, false
	}
	n := t.mustNode(h)
	removed := n.val

	if !n.left.IsNil() && !n.right.IsNil() {
		// Two children: promote the in-order successor's key/value here,
		// then physically remove the successor node instead.
		s := t.leftmost(n.right)
		sn := t.mustNode(s)
		n.key, n.val = sn.key, sn.val
		h, n = s, sn
	}

	// h now has at most one child; splice it into the parent's slot.
	child := n.left
	if child.IsNil() {
		child = n.right
	}
	parent := n.parent
	if !child.IsNil() {
		t.mustNode(child).parent = parent
	}
	if parent.IsNil() {
		t.root = child
	} else {
		p := t.mustNode(parent)
		if p.left == h {
			p.left = child
		} else {
			p.right = child
		}
	}
	if err := t.nodes.Free(h); err != nil {
		panic("avl: arena freed a live node handle: " + err.Error())
	}
	t.size--
	t.gen++
	t.retrace(parent)

	return removed, true
}

// Min returns the smallest key and its value, or ErrEmptyTree.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.root.IsNil() {
		var k K
		var v V

		return k, v, ErrEmptyTree
	}
	n := t.mustNode(t.leftmost(t.root))

	return n.key, n.val, nil
}

// Max returns the largest key and its value, or ErrEmptyTree.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.root.IsNil() {
		var k K
		var v V

		return k, v, ErrEmptyTree
	}
	cur := t.root
	for {
		n := t.mustNode(cur)
		if n.right.IsNil() {
			return n.key, n.val, nil
		}
		cur = n.right
	}
}

// Equal reports structural equality with o: both trees yield identical
// ascending key sequences. Values and node shapes are not compared.
func (t *Tree[K, V]) Equal(o *Tree[K, V]) bool {
	if o == nil || t.size != o.size {
		return false
	}
	a, b := t.InOrder(), o.InOrder()
	for a.Next() {
		if !b.Next() || a.Value().Key != b.Value().Key {
			return false
		}
	}

	return !b.Next()
}

// --- internal helpers ----------------------------------------------------

// mustNode resolves a handle known to be live. A failure here means the
// tree corrupted its own topology, which is unrecoverable.
func (t *Tree[K, V]) mustNode(h arena.Handle) *node[K, V] {
	n, err := t.nodes.Get(h)
	if err != nil {
		panic("avl: broken node link " + h.String())
	}

	return n
}

// find locates the handle storing k, or the nil handle.
func (t *Tree[K, V]) find(k K) arena.Handle {
	cur := t.root
	for !cur.IsNil() {
		n := t.mustNode(cur)
		switch {
		case k < n.key:
			cur = n.left
		case n.key < k:
			cur = n.right
		default:
			return cur
		}
	}

	return cur
}

// leftmost descends to the minimum of the subtree rooted at h.
func (t *Tree[K, V]) leftmost(h arena.Handle) arena.Handle {
	for {
		n := t.mustNode(h)
		if n.left.IsNil() {
			return h
		}
		h = n.left
	}
}

func (t *Tree[K, V]) heightOf(h arena.Handle) int {
	if h.IsNil() {
		return 0
	}

	return t.mustNode(h).height
}

func (t *Tree[K, V]) updateHeight(h arena.Handle) {
	n := t.mustNode(h)
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
}

// balanceOf is height(left) - height(right); the AVL invariant keeps it
// within [-1, +1] between operations.
func (t *Tree[K, V]) balanceOf(h arena.Handle) int {
	n := t.mustNode(h)

	return t.heightOf(n.left) - t.heightOf(n.right)
}

// retrace walks from h to the root, refreshing heights and rotating
// wherever the balance bound is exceeded. Both insert and remove funnel
// through here; each visits O(log n) ancestors.
func (t *Tree[K, V]) retrace(h arena.Handle) {
	for cur := h; !cur.IsNil(); {
		t.updateHeight(cur)
		if bf := t.balanceOf(cur); bf > 1 || bf < -1 {
			cur = t.rebalance(cur, bf)
		}
		cur = t.mustNode(cur).parent
	}
}

// rebalance restores the bound at h, choosing between the four classic
// rotation cases, and returns the handle now rooting this position.
func (t *Tree[K, V]) rebalance(h arena.Handle, bf int) arena.Handle {
	n := t.mustNode(h)
	if bf > 1 {
		// Left-heavy; a left-right shape needs the inner rotation first.
		if t.balanceOf(n.left) < 0 {
			t.rotateLeft(n.left)
		}

		return t.rotateRight(h)
	}
	// Right-heavy, mirrored.
	if t.balanceOf(n.right) > 0 {
		t.rotateRight(n.right)
	}

	return t.rotateLeft(h)
}

// rotateLeft lifts h's right child into h's position and returns it.
//
//	  h                r
//	 / \              / \
//	a   r     →      h   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree[K, V]) rotateLeft(h arena.Handle) arena.Handle {
	n := t.mustNode(h)
	r := n.right
	rn := t.mustNode(r)

	n.right = rn.left
	if !rn.left.IsNil() {
		t.mustNode(rn.left).parent = h
	}
	rn.parent = n.parent
	if n.parent.IsNil() {
		t.root = r
	} else {
		p := t.mustNode(n.parent)
		if p.left == h {
			p.left = r
		} else {
			p.right = r
		}
	}
	rn.left = h
	n.parent = r

	t.updateHeight(h)
	t.updateHeight(r)

	return r
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K, V]) rotateRight(h arena.Handle) arena.Handle {
	n := t.mustNode(h)
	l := n.left
	ln := t.mustNode(l)

	n.left = ln.right
	if !ln.right.IsNil() {
		t.mustNode(ln.right).parent = h
	}
	ln.parent = n.parent
	if n.parent.IsNil() {
		t.root = l
	} else {
		p := t.mustNode(n.parent)
		if p.left == h {
			p.left = l
		} else {
			p.right = l
		}
	}
	ln.right = h
	n.parent = l

	t.updateHeight(h)
	t.updateHeight(l)

	return l
}
