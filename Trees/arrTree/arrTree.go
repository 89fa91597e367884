package arrTree

import (
	"github.com/g-m-twostay/go-rbtree/Queues"
	"golang.org/x/exp/constraints"
)

// Tree is a red-black tree whose nodes live in one arena slice and refer to
// each other by index. Child links own their target; parent links are plain
// indexes back into the same arena. Index 0 is a black sentinel that's never
// written, standing for every leaf. Equal values are kept and routed right,
// same as Trees.RBTree.
// S bounds the number of nodes: a Tree[T, uint16] holds at most 65535 values
// and Insert panics past that.
type Tree[T constraints.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i] corresponds to ifs[i+1].
}

// New returns an empty Tree with room for hint values before the arena grows.
func New[T constraints.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	return &Tree[T, S]{base: base[S]{ifs: ifs}, vs: make([]T, 0, hint)}
}

func (u *Tree[T, S]) getV(i S) T {
	return u.vs[i-1]
}

// Insert [Trees.Tree.Insert]
// Time: amortized O(log n)
func (u *Tree[T, S]) Insert(v T) {
	var pi S
	for curI := u.root; curI != 0; {
		pi = curI
		if v < u.getV(curI) {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	ni := u.alloc(pi)
	u.vs = append(u.vs, v)
	if pi == 0 {
		u.root = ni
	} else if v < u.getV(pi) {
		u.ifs[pi].l = ni
	} else {
		u.ifs[pi].r = ni
	}
	u.fixInsert(ni)
}

// Has [Trees.Tree.Has]
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if cv := u.getV(curI); v == cv {
			return true
		} else if v < cv {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return false
}

func (u *Tree[T, S]) count(curI S, v T) int {
	for curI != 0 {
		if cv := u.getV(curI); v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			return 1 + u.count(u.ifs[curI].l, v) + u.count(u.ifs[curI].r, v)
		}
	}
	return 0
}

// Count [Trees.Tree.Count]. Recursive.
// Time: O(k*log n) where k is the result.
func (u *Tree[T, S]) Count(v T) int {
	return u.count(u.root, v)
}

// Size [Trees.Tree.Size]
// Time: O(1)
func (u *Tree[T, S]) Size() int {
	return len(u.vs)
}

func (u *Tree[T, S]) height(curI S) int {
	if curI == 0 {
		return 0
	}
	return max(u.height(u.ifs[curI].l), u.height(u.ifs[curI].r)) + 1
}

// Height [Trees.Tree.Height]. Recursive.
func (u *Tree[T, S]) Height() int {
	return u.height(u.root)
}

func (u *Tree[T, S]) blackHeight(curI S) int {
	if curI == 0 {
		return 0
	}
	l, r := u.blackHeight(u.ifs[curI].l), u.blackHeight(u.ifs[curI].r)
	if l < 0 || l != r {
		return -1
	}
	if !u.red(curI) {
		l++
	}
	return l
}

// BlackHeight [Trees.Tree.BlackHeight]. Recursive.
func (u *Tree[T, S]) BlackHeight() int {
	return u.blackHeight(u.root)
}

// Minimum [Trees.Tree.Minimum]
func (u *Tree[T, S]) Minimum() (v T, ok bool) {
	curI := u.root
	if curI == 0 {
		return
	}
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.getV(curI), true
}

// Maximum [Trees.Tree.Maximum]
func (u *Tree[T, S]) Maximum() (v T, ok bool) {
	curI := u.root
	if curI == 0 {
		return
	}
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.getV(curI), true
}

// Ascend [Trees.Tree.Ascend]. Uses an explicit stack instead of recursion;
// the stack never grows past Height().
func (u *Tree[T, S]) Ascend(f func(T) bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.getV(curI)) {
			return
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
}

// InOrder [Trees.Tree.InOrder]
// Time: O(n); Space: O(n)
func (u *Tree[T, S]) InOrder() []T {
	res := make([]T, 0, len(u.vs))
	u.Ascend(func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

func (u *Tree[T, S]) walk(curI S, d int, f func(T, bool, int)) {
	if curI != 0 {
		f(u.getV(curI), u.red(curI), d)
		u.walk(u.ifs[curI].l, d+1, f)
		u.walk(u.ifs[curI].r, d+1, f)
	}
}

// Walk [Trees.Tree.Walk]. Recursive.
func (u *Tree[T, S]) Walk(f func(v T, red bool, depth int)) {
	u.walk(u.root, 0, f)
}

// PreOrder [Trees.Tree.PreOrder]. Recursive.
func (u *Tree[T, S]) PreOrder() []T {
	res := make([]T, 0, len(u.vs))
	u.walk(u.root, 0, func(v T, _ bool, _ int) {
		res = append(res, v)
	})
	return res
}

func (u *Tree[T, S]) postOrder(curI S, res []T) []T {
	if curI == 0 {
		return res
	}
	res = u.postOrder(u.ifs[curI].l, res)
	res = u.postOrder(u.ifs[curI].r, res)
	return append(res, u.getV(curI))
}

// PostOrder [Trees.Tree.PostOrder]. Recursive.
func (u *Tree[T, S]) PostOrder() []T {
	return u.postOrder(u.root, make([]T, 0, len(u.vs)))
}

// LevelOrder [Trees.Tree.LevelOrder]
func (u *Tree[T, S]) LevelOrder() []T {
	res := make([]T, 0, len(u.vs))
	if u.root == 0 {
		return res
	}
	q := Queues.NewArrayQueue[S](uint(len(u.vs)/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		res = append(res, u.getV(curI))
		if l := u.ifs[curI].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[curI].r; r != 0 {
			q.Push(r)
		}
	}
	return res
}

func (u *Tree[T, S]) check(curI S, blacks int, first *int) bool {
	if curI == 0 {
		if *first == -1 {
			*first = blacks
		}
		return *first == blacks
	}
	if u.red(curI) {
		if u.red(u.ifs[curI].l) || u.red(u.ifs[curI].r) {
			return false
		}
	} else {
		blacks++
	}
	return u.check(u.ifs[curI].l, blacks, first) && u.check(u.ifs[curI].r, blacks, first)
}

// Valid [Trees.Tree.Valid]. Recursive.
func (u *Tree[T, S]) Valid() bool {
	if u.red(u.root) || u.ifs[0] != (info[S]{}) {
		return false
	}
	first := -1
	return u.check(u.root, 0, &first)
}

// Clear [Trees.Tree.Clear]. The arena keeps its capacity.
// Time: O(n) to reset colors.
func (u *Tree[T, S]) Clear() {
	clear(u.vs)
	u.root, u.ifs, u.vs = 0, u.ifs[:1], u.vs[:0]
	u.cs.reset()
}
