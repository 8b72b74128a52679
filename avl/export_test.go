// Test-only access to internal structure: a full invariant audit used
// by the property-style tests. The balance bound is a parameter so the
// audit stays honest if the discipline ever changes.
package avl

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/arena"
)

// AuditInvariants walks every node and verifies, for the whole tree:
//
//   - BST order: left subtree keys < node key < right subtree keys
//   - balance: |height(left) − height(right)| ≤ maxImbalance
//   - cached heights match recomputed heights
//   - parent back-references match the downward topology
//   - the arena's live count equals the reachable node count
//
// Returns nil when every invariant holds.
func (t *Tree[K, V]) AuditInvariants(maxImbalance int) error {
	reached := 0
	if !t.root.IsNil() {
		if p := t.mustNode(t.root).parent; !p.IsNil() {
			return fmt.Errorf("root has parent %v", p)
		}
		if _, err := t.audit(t.root, maxImbalance, &reached); err != nil {
			return err
		}
	}
	if reached != t.size {
		return fmt.Errorf("size %d but %d nodes reachable", t.size, reached)
	}
	if live := t.nodes.Len(); live != t.size {
		return fmt.Errorf("size %d but arena holds %d live nodes", t.size, live)
	}

	return nil
}

// audit recursively checks the subtree at h and returns its true height.
func (t *Tree[K, V]) audit(h arena.Handle, maxImbalance int, reached *int) (int, error) {
	n := t.mustNode(h)
	*reached++

	var lh, rh int
	if !n.left.IsNil() {
		ln := t.mustNode(n.left)
		if !(ln.key < n.key) {
			return 0, fmt.Errorf("BST violation: left child %v !< %v", ln.key, n.key)
		}
		if ln.parent != h {
			return 0, fmt.Errorf("parent link broken at key %v", ln.key)
		}
		var err error
		if lh, err = t.audit(n.left, maxImbalance, reached); err != nil {
			return 0, err
		}
	}
	if !n.right.IsNil() {
		rn := t.mustNode(n.right)
		if !(n.key < rn.key) {
			return 0, fmt.Errorf("BST violation: right child %v !> %v", rn.key, n.key)
		}
		if rn.parent != h {
			return 0, fmt.Errorf("parent link broken at key %v", rn.key)
		}
		var err error
		if rh, err = t.audit(n.right, maxImbalance, reached); err != nil {
			return 0, err
		}
	}

	if diff := lh - rh; diff > maxImbalance || diff < -maxImbalance {
		return 0, fmt.Errorf("balance violation at key %v: left=%d right=%d", n.key, lh, rh)
	}
	height := 1 + max(lh, rh)
	if n.height != height {
		return 0, fmt.Errorf("stale height at key %v: cached=%d actual=%d", n.key, n.height, height)
	}

	return height, nil
}
