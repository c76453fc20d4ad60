package acidmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeAccessorsOnLiveNode(t *testing.T) {
	n := defaultAllocator[int, string]{}.New(1, "a")

	assert.Equal(t, 1, n.Key())
	assert.Equal(t, "a", n.Value())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.Nil(t, n.Parent())
	assert.False(t, n.Deleted())
	assert.Equal(t, 1, n.Height())
}

func TestHeightOfNilIsZero(t *testing.T) {
	var n *Node[int, string]

	assert.Equal(t, 0, height(n))
}

func TestUpdateHeightUsesTallerChild(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	parent := alloc.New(2, "b")
	left := alloc.New(1, "a")
	right := alloc.New(3, "c")

	parent.left, left.parent = left, parent
	parent.right, right.parent = right, parent

	left.height = 3

	updateHeight(parent)

	assert.Equal(t, 4, parent.height)
}

func TestBalanceFactorSignConvention(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	n := alloc.New(1, "a")
	n.left = alloc.New(0, "z")
	n.left.height = 2

	assert.Equal(t, 2, balanceFactor(n), "balanceFactor must be height(left) - height(right)")
}

func TestSuccessorAndPredecessorViaRightSubtree(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	root := alloc.New(2, "b")
	root.right = alloc.New(3, "c")
	root.right.parent = root
	root.right.left = alloc.New(2, "between")
	root.right.left.parent = root.right

	assert.Same(t, root.right.left, successor(root))
	assert.Same(t, root, predecessor(root.right.left))
}

func TestSuccessorWalksUpThroughAncestors(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	grandparent := alloc.New(3, "c")
	parent := alloc.New(1, "a")
	leaf := alloc.New(2, "b")

	grandparent.left, parent.parent = parent, grandparent
	parent.right, leaf.parent = leaf, parent

	assert.Same(t, grandparent, successor(leaf))
}

func TestAcquireReleaseRefcounting(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	n := alloc.New(1, "a")
	assert.Equal(t, 1, n.refs)

	acquire(n)
	assert.Equal(t, 2, n.refs)

	release(alloc, n)
	assert.Equal(t, 1, n.refs, "releasing a live node must not free it")

	n.deleted = true
	release(alloc, n)
	assert.Equal(t, 0, n.refs)
	assert.Nil(t, n.left)
}

func TestMarkDeletedFreesImmediatelyWhenUnreferenced(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	n := alloc.New(1, "a")
	n.left = alloc.New(0, "z")

	markDeleted(alloc, n)

	assert.True(t, n.deleted)
	assert.Nil(t, n.left, "Free must have run since refs dropped to zero")
}

func TestMarkDeletedLeavesPointersWhenIteratorStillHolds(t *testing.T) {
	alloc := defaultAllocator[int, string]{}
	n := alloc.New(1, "a")
	n.left = alloc.New(0, "z")
	acquire(n)

	markDeleted(alloc, n)

	assert.True(t, n.deleted)
	assert.NotNil(t, n.left, "Free must not run while an iterator still holds a share")
}
