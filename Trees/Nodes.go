package Trees

import "golang.org/x/exp/constraints"

// A node in the RBTree.
// l and r are never nil: an absent child is the tree's nilPtr. p is nil only
// for the root; it's a back reference and doesn't own the parent.
type node[T constraints.Ordered] struct {
	v       T
	l, r, p *node[T]
	red     bool
}

// rotateLeft makes x.r the parent of x. x.r must not be nilPtr.
//
//	  x              y
//	a   y    =>    x   c
//	   b c        a b
//
// Colors aren't touched. Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateLeft(x *node[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	u.replaceChild(x, y)
	y.l = x
	x.p = y
}

// rotateRight makes y.l the parent of y. y.l must not be nilPtr.
//
//	    y            x
//	  x   c  =>    a   y
//	 a b              b c
//
// Colors aren't touched. Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateRight(y *node[T]) {
	x := y.l
	y.l = x.r
	if x.r != u.nilPtr {
		x.r.p = y
	}
	u.replaceChild(y, x)
	x.r = y
	y.p = x
}

// replaceChild hangs n where old was, moving the root if old was the root.
func (u *RBTree[T]) replaceChild(old, n *node[T]) {
	n.p = old.p
	if old.p == nil {
		u.root = n
	} else if old == old.p.l {
		old.p.l = n
	} else {
		old.p.r = n
	}
}
