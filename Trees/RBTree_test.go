package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// links checks parent back references and that the sentinel is untouched.
func (u *RBTree[T]) links(t *testing.T) {
	t.Helper()
	require.Equal(t, node[T]{}, *u.nilPtr, "sentinel was written to")
	if u.root == u.nilPtr {
		return
	}
	require.Nil(t, u.root.p, "root has a parent")
	var walk func(c *node[T])
	walk = func(c *node[T]) {
		for _, ch := range []*node[T]{c.l, c.r} {
			if ch != u.nilPtr {
				require.Same(t, c, ch.p, "broken parent link under %v", c.v)
				walk(ch)
			}
		}
		if c.l != u.nilPtr {
			require.False(t, c.v < c.l.v, "left child %v of %v is larger", c.l.v, c.v)
		}
		if c.r != u.nilPtr {
			require.False(t, c.r.v < c.v, "right child %v of %v is smaller", c.r.v, c.v)
		}
	}
	walk(u.root)
}

func TestRBTree_SingleInsert(t *testing.T) {
	tree := New[int]()
	tree.Insert(10)
	require.NotSame(t, tree.nilPtr, tree.root)
	assert.Equal(t, 10, tree.root.v)
	assert.False(t, tree.root.red)
	assert.Same(t, tree.nilPtr, tree.root.l)
	assert.Same(t, tree.nilPtr, tree.root.r)
	tree.links(t)
}

func TestRBTree_Shape(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 20, 30, 15, 25, 5, 1} {
		tree.Insert(v)
		tree.links(t)
		require.True(t, tree.Valid())
		require.False(t, tree.root.red)
	}
	r := tree.root
	assert.Equal(t, 20, r.v)
	assert.Equal(t, 10, r.l.v)
	assert.True(t, r.l.red)
	assert.Equal(t, 5, r.l.l.v)
	assert.False(t, r.l.l.red)
	assert.Equal(t, 1, r.l.l.l.v)
	assert.True(t, r.l.l.l.red)
	assert.Equal(t, 15, r.l.r.v)
	assert.Equal(t, 30, r.r.v)
	assert.Equal(t, 25, r.r.l.v)
	assert.True(t, r.r.l.red)
}

func TestRBTree_DuplicatesRouteRight(t *testing.T) {
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(5)
	assert.Same(t, tree.nilPtr, tree.root.l)
	require.NotSame(t, tree.nilPtr, tree.root.r)
	assert.Equal(t, 5, tree.root.r.v)
	assert.True(t, tree.root.r.red)
	tree.Insert(5) //zig-zig on the right spine
	assert.Equal(t, 5, tree.root.l.v)
	assert.Equal(t, 5, tree.root.r.v)
	assert.Equal(t, 3, tree.Count(5))
	tree.links(t)
}

func TestRBTree_Rotations(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{2, 1, 4, 3, 5} {
		tree.Insert(v)
	}
	before := tree.InOrder()
	tree.rotateLeft(tree.root)
	tree.links(t)
	assert.Equal(t, 4, tree.root.v)
	assert.Equal(t, 2, tree.root.l.v)
	assert.Equal(t, 3, tree.root.l.r.v)
	assert.Equal(t, before, tree.InOrder())

	tree.rotateRight(tree.root)
	tree.links(t)
	assert.Equal(t, 2, tree.root.v)
	assert.Equal(t, 4, tree.root.r.v)
	assert.Equal(t, before, tree.InOrder())

	tree.rotateRight(tree.root.r) //rotation below the root keeps the root.
	tree.links(t)
	assert.Equal(t, 2, tree.root.v)
	assert.Equal(t, 3, tree.root.r.v)
	assert.Equal(t, before, tree.InOrder())
}

func TestRBTree_ValidDetectsViolations(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 20, 30, 15, 25, 5, 1} {
		tree.Insert(v)
	}
	require.True(t, tree.Valid())

	tree.root.red = true
	assert.False(t, tree.Valid(), "red root")
	tree.root.red = false

	tree.root.l.l.red = true //5 under red 10
	assert.False(t, tree.Valid(), "red node with red child")
	assert.Equal(t, -1, tree.BlackHeight())
	tree.root.l.l.red = false

	tree.root.r.red = true //30 turns red: right paths lose one black
	tree.root.r.l.red = false
	assert.False(t, tree.Valid(), "unequal black height")
	assert.Equal(t, -1, tree.BlackHeight())
}

func TestRBTree_RandomLinks(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 5000; i++ {
		tree.Insert(_R.Intn(500))
	}
	tree.links(t)
	assert.True(t, tree.Valid())
}
