package arrTree

import "golang.org/x/exp/constraints"

// info holds the links of a node. All links are indexes into base.ifs.
// 0 is the sentinel: it's black and its info is never written, so l, r and p
// of ifs[0] stay 0. p is 0 for the root.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[S constraints.Unsigned] struct {
	root S
	ifs  []info[S] //ifs[0] is the sentinel. len(ifs)=size+1
	cs   colors
}

// alloc appends a red node with parent p and returns its index. It panics if
// S can't address the new node.
func (u *base[S]) alloc(p S) S {
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic("arrTree: index type is too small for the tree size")
	}
	u.ifs = append(u.ifs, info[S]{p: p})
	u.cs.grow(len(u.ifs) - 1)
	u.cs.paint(int(i), true)
	return i
}

func (u *base[S]) red(i S) bool {
	return i != 0 && u.cs.red(int(i))
}

func (u *base[S]) paint(i S, red bool) {
	u.cs.paint(int(i), red)
}

// replaceChild hangs n where old was, moving the root if old was the root.
func (u *base[S]) replaceChild(old, n S) {
	p := u.ifs[old].p
	u.ifs[n].p = p
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == old {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
}

// rotateLeft makes the right child of xi its parent. The right child must not
// be the sentinel.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(xi S) {
	yi := u.ifs[xi].r
	bi := u.ifs[yi].l
	u.ifs[xi].r = bi
	if bi != 0 {
		u.ifs[bi].p = xi
	}
	u.replaceChild(xi, yi)
	u.ifs[yi].l = xi
	u.ifs[xi].p = yi
}

// rotateRight makes the left child of yi its parent. The left child must not
// be the sentinel.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(yi S) {
	xi := u.ifs[yi].l
	bi := u.ifs[xi].r
	u.ifs[yi].l = bi
	if bi != 0 {
		u.ifs[bi].p = yi
	}
	u.replaceChild(yi, xi)
	u.ifs[xi].r = yi
	u.ifs[yi].p = xi
}

// fixInsert restores the red-black properties after the red leaf ni was
// attached. Same state machine as Trees.RBTree, on indexes.
func (u *base[S]) fixInsert(ni S) {
	for pi := u.ifs[ni].p; pi != 0 && u.red(pi); pi = u.ifs[ni].p {
		gi := u.ifs[pi].p
		if pi == u.ifs[gi].l {
			if ui := u.ifs[gi].r; u.red(ui) {
				u.paint(pi, false)
				u.paint(ui, false)
				u.paint(gi, true)
				ni = gi
			} else {
				if ni == u.ifs[pi].r {
					ni, pi = pi, ni
					u.rotateLeft(ni)
				}
				u.paint(pi, false)
				u.paint(gi, true)
				u.rotateRight(gi)
			}
		} else {
			if ui := u.ifs[gi].l; u.red(ui) {
				u.paint(pi, false)
				u.paint(ui, false)
				u.paint(gi, true)
				ni = gi
			} else {
				if ni == u.ifs[pi].l {
					ni, pi = pi, ni
					u.rotateRight(ni)
				}
				u.paint(pi, false)
				u.paint(gi, true)
				u.rotateLeft(gi)
			}
		}
	}
	if u.root != 0 {
		u.paint(u.root, false)
	}
}
