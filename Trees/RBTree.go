package Trees

import (
	"github.com/g-m-twostay/go-rbtree/Queues"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree that keeps repeated values. Equal values are
// routed to the right subtree on insertion, so they stay next to each other
// in the in-order sequence.
// This struct holds a root pointer and a corresponding nilPtr used as the
// leaf of every path. nilPtr is black and is never written to after New, so
// rotations and fixups check for it explicitly instead of storing through it.
// The height of the tree is at most 2*log2(n+1).
// RBTree doesn't support removal.
type RBTree[T constraints.Ordered] struct {
	root   *node[T] //the root of the tree. It's nilPtr when the tree is empty.
	nilPtr *node[T]
	size   int
}

// New returns an empty RBTree. RBTree shouldn't be created directly using struct literal.
func New[T constraints.Ordered]() *RBTree[T] {
	z := new(node[T])
	return &RBTree[T]{root: z, nilPtr: z}
}

// Insert [Tree.Insert]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Insert(v T) {
	var p *node[T]
	for cur := u.root; cur != u.nilPtr; {
		p = cur
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n := &node[T]{v: v, l: u.nilPtr, r: u.nilPtr, p: p, red: true}
	if p == nil {
		u.root = n
	} else if v < p.v {
		p.l = n
	} else {
		p.r = n
	}
	u.size++
	u.fixInsert(n)
}

// fixInsert restores the red-black properties after n was attached as a red
// leaf. n is red on every iteration and the only possible violation is
// between n and n.p.
func (u *RBTree[T]) fixInsert(n *node[T]) {
	for n.p != nil && n.p.red {
		g := n.p.p //n.p is red so it can't be the root.
		if n.p == g.l {
			if uncle := g.r; uncle.red {
				n.p.red, uncle.red, g.red = false, false, true
				n = g
			} else {
				if n == n.p.r { //inner grandchild, turn it into an outer one.
					n = n.p
					u.rotateLeft(n)
				}
				n.p.red, g.red = false, true
				u.rotateRight(g)
			}
		} else {
			if uncle := g.l; uncle.red {
				n.p.red, uncle.red, g.red = false, false, true
				n = g
			} else {
				if n == n.p.l {
					n = n.p
					u.rotateRight(n)
				}
				n.p.red, g.red = false, true
				u.rotateLeft(g)
			}
		}
	}
	u.root.red = false
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v == cur.v {
			return true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return false
}

func (u *RBTree[T]) count(c *node[T], v T) int {
	for c != u.nilPtr {
		if v < c.v {
			c = c.l
		} else if v > c.v {
			c = c.r
		} else { //rotations can move copies of v to either side.
			return 1 + u.count(c.l, v) + u.count(c.r, v)
		}
	}
	return 0
}

// Count [Tree.Count]. Recursive.
// Time: O(k*log n) where k is the result; every match is searched on both sides.
func (u *RBTree[T]) Count(v T) int {
	return u.count(u.root, v)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Size() int {
	return u.size
}

func (u *RBTree[T]) height(c *node[T]) int {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *RBTree[T]) Height() int {
	return u.height(u.root)
}

func (u *RBTree[T]) blackHeight(c *node[T]) int {
	if c == u.nilPtr {
		return 0
	}
	l, r := u.blackHeight(c.l), u.blackHeight(c.r)
	if l < 0 || l != r {
		return -1
	}
	if !c.red {
		l++
	}
	return l
}

// BlackHeight [Tree.BlackHeight]. Recursive.
// Time: O(n)
func (u *RBTree[T]) BlackHeight() int {
	return u.blackHeight(u.root)
}

// Minimum [Tree.Minimum]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

func (u *RBTree[T]) ascend(c *node[T], f func(T) bool) bool {
	if c == u.nilPtr {
		return true
	}
	return u.ascend(c.l, f) && f(c.v) && u.ascend(c.r, f)
}

// Ascend [Tree.Ascend]. Recursive.
func (u *RBTree[T]) Ascend(f func(T) bool) {
	u.ascend(u.root, f)
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(n)
func (u *RBTree[T]) InOrder() []T {
	res := make([]T, 0, u.size)
	u.ascend(u.root, func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

func (u *RBTree[T]) walk(c *node[T], d int, f func(T, bool, int)) {
	if c != u.nilPtr {
		f(c.v, c.red, d)
		u.walk(c.l, d+1, f)
		u.walk(c.r, d+1, f)
	}
}

// Walk [Tree.Walk]. Recursive.
func (u *RBTree[T]) Walk(f func(v T, red bool, depth int)) {
	u.walk(u.root, 0, f)
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *RBTree[T]) PreOrder() []T {
	res := make([]T, 0, u.size)
	u.walk(u.root, 0, func(v T, _ bool, _ int) {
		res = append(res, v)
	})
	return res
}

func (u *RBTree[T]) postOrder(c *node[T], res []T) []T {
	if c == u.nilPtr {
		return res
	}
	res = u.postOrder(c.l, res)
	res = u.postOrder(c.r, res)
	return append(res, c.v)
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *RBTree[T]) PostOrder() []T {
	return u.postOrder(u.root, make([]T, 0, u.size))
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(n)
func (u *RBTree[T]) LevelOrder() []T {
	res := make([]T, 0, u.size)
	if u.root == u.nilPtr {
		return res
	}
	q := Queues.NewArrayQueue[*node[T]](uint(u.size/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		res = append(res, cur.v)
		if cur.l != u.nilPtr {
			q.Push(cur.l)
		}
		if cur.r != u.nilPtr {
			q.Push(cur.r)
		}
	}
	return res
}

// check c's subtree for red-red edges and compare the black count of every
// path with the first one seen, which is stored in *first (-1 before that).
func (u *RBTree[T]) check(c *node[T], blacks int, first *int) bool {
	if c == u.nilPtr {
		if *first == -1 {
			*first = blacks
		}
		return *first == blacks
	}
	if c.red {
		if c.l.red || c.r.red {
			return false
		}
	} else {
		blacks++
	}
	return u.check(c.l, blacks, first) && u.check(c.r, blacks, first)
}

// Valid [Tree.Valid]. Recursive.
// Time: O(n)
func (u *RBTree[T]) Valid() bool {
	if u.root.red || u.nilPtr.red {
		return false
	}
	first := -1
	return u.check(u.root, 0, &first)
}

// Clear [Tree.Clear]
// Time: O(1)
func (u *RBTree[T]) Clear() {
	u.root, u.size = u.nilPtr, 0
}
