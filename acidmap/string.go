package acidmap

import (
	"fmt"
	"strings"
)

// String returns a compact "key => value" representation of the node's
// entry, or "key => value (tombstone)" if the node has been logically
// deleted.
func (n *Node[K, V]) String() string {
	if n.deleted {
		return fmt.Sprintf("%v => %v (tombstone)", n.key, n.value)
	}

	return fmt.Sprintf("%v => %v", n.key, n.value)
}

// String returns a tree-shaped rendering of the map's live structure,
// suitable for debugging. Tombstoned nodes are omitted: they no longer
// participate in the live shape the diagram depicts, even though they may
// still be reachable through an outstanding Iterator.
// Time complexity: O(n).
func (m *Map[K, V]) String() string {
	if m.tree.root == nil {
		return "Map[]"
	}

	var sb strings.Builder

	sb.WriteString("Map\n")
	output(m.tree.root, "", true, &sb)

	return sb.String()
}

// output recursively renders the live subtree rooted at node, in the same
// right-root-left layout the teacher repo's AVL tree printer uses.
func output[K comparable, V any](node *Node[K, V], prefix string, isTail bool, sb *strings.Builder) {
	if node == nil || node.deleted {
		return
	}

	if node.right != nil && !node.right.deleted {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}

		output(node.right, newPrefix, false, sb)
	}

	sb.WriteString(prefix)

	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}

	sb.WriteString(node.String() + "\n")

	if node.left != nil && !node.left.deleted {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}

		output(node.left, newPrefix, true, sb)
	}
}
