package acidmap

// NewCorruptedForVerifyTest builds a Map whose node graph is height-
// balanced and locally ordered at every adjacent parent/child pair, yet
// still violates the BST ordering invariant transitively: root=10,
// root.left=5, 5.right=15. The pair (5, 15) passes an adjacent-only
// check (15 > 5), but 15 sits inside root's left subtree despite being
// greater than root's own key, which spec.md §8 forbids ("every key in
// N's left subtree is less than N's key"). Every balance factor and
// stored height here is internally consistent, so this isolates the
// ordering defect from any accompanying AVL-balance or height-mismatch
// symptom.
//
// Exported so internal/verify's tests, in a separate package, can
// exercise verify.Structure against a tree the public Map API has no way
// to construct on its own (Insert/Erase never produce an inconsistent
// tree).
func NewCorruptedForVerifyTest() *Map[int, string] {
	alloc := defaultAllocator[int, string]{}

	root := alloc.New(10, "root")
	left := alloc.New(5, "left")
	leftRight := alloc.New(15, "leaked")
	right := alloc.New(20, "right")

	root.left, left.parent = left, root
	root.right, right.parent = right, root
	left.right, leftRight.parent = leftRight, left

	leftRight.height = 1
	right.height = 1
	left.height = 2
	root.height = 3

	return &Map[int, string]{
		tree: Tree[int, string]{
			root:       root,
			size:       4,
			comparator: func(a, b int) int { return a - b },
			alloc:      alloc,
		},
	}
}
