// Package verify provides a non-mutating structural checker for acidmap
// trees, used by tests to assert that the BST ordering, AVL balance, and
// bookkeeping invariants still hold after a sequence of operations.
package verify

import (
	"fmt"

	"github.com/acidmap/acidmap/acidmap"
	"github.com/acidmap/acidmap/cmp"
)

// Tree is the structural view a Map exposes for verification: its root
// and the comparator defining key order. *acidmap.Map[K, V] satisfies it.
type Tree[K comparable, V any] interface {
	Root() *acidmap.Node[K, V]
	Comparator() cmp.Comparator[K]
	Len() int
}

// Structure walks the live tree reachable from t.Root(), asserting BST
// ordering, the AVL balance invariant, parent/child consistency, stored
// height correctness, and reports whether the live node count matches
// t.Len(). It never mutates the tree. ok is false if and only if problems
// is non-empty.
func Structure[K comparable, V any](t Tree[K, V]) (ok bool, problems []string) {
	seen := make(map[K]struct{})

	count, _ := walk(t.Root(), nil, nil, nil, t.Comparator(), seen, &problems)

	if count != t.Len() {
		problems = append(problems, fmt.Sprintf("live node count %d does not match Len() %d", count, t.Len()))
	}

	return len(problems) == 0, problems
}

// walk recursively verifies the subtree rooted at n, whose parent is
// expected to be parent and whose key must fall strictly between lo and
// hi (either may be nil for an unbounded side). lo/hi are threaded down
// from every ancestor on the path from the root, not just n's immediate
// parent, so a key that only violates an ancestor further up (e.g. a
// right-subtree key that leaked into an ancestor's left subtree) is
// still caught rather than passing a purely local comparison against n's
// own children. Returns the number of live nodes in the subtree and its
// height as computed independently of the node's own stored height field
// (so that a corrupted stored height is caught rather than trusted).
func walk[K comparable, V any](
	n *acidmap.Node[K, V],
	parent *acidmap.Node[K, V],
	lo, hi *K,
	comparator cmp.Comparator[K],
	seen map[K]struct{},
	problems *[]string,
) (count, height int) {
	if n == nil {
		return 0, 0
	}

	key := n.Key()

	if n.Deleted() {
		*problems = append(*problems, fmt.Sprintf("tombstoned node %v reachable from live root", key))
	}

	if n.Parent() != parent {
		*problems = append(*problems, fmt.Sprintf("node %v has wrong parent link", key))
	}

	if _, dup := seen[key]; dup {
		*problems = append(*problems, fmt.Sprintf("key %v appears more than once in the live tree", key))
	}

	seen[key] = struct{}{}

	if lo != nil && comparator(*lo, key) >= 0 {
		*problems = append(*problems, fmt.Sprintf("node %v violates ancestor lower bound %v", key, *lo))
	}

	if hi != nil && comparator(key, *hi) >= 0 {
		*problems = append(*problems, fmt.Sprintf("node %v violates ancestor upper bound %v", key, *hi))
	}

	leftCount, leftHeight := walk(n.Left(), n, lo, &key, comparator, seen, problems)
	rightCount, rightHeight := walk(n.Right(), n, &key, hi, comparator, seen, problems)

	bf := leftHeight - rightHeight
	if bf < -1 || bf > 1 {
		*problems = append(*problems, fmt.Sprintf("node %v has balance factor %d", key, bf))
	}

	height = 1 + max(leftHeight, rightHeight)
	if n.Height() != height {
		*problems = append(*problems, fmt.Sprintf("node %v has stored height %d, computed %d", key, n.Height(), height))
	}

	return leftCount + rightCount + 1, height
}
