package Trees

// Tree represents an ordered multiset kept in a balanced binary search tree.
// Every operation is total: none of them fail or return errors, on an empty
// tree included. Receivers that have a bool as a second return value use it
// to indicate whether the first return value is defined; for example calling
// Minimum on an empty tree returns (x T, false) and x should not be used.
// Implementations aren't safe for concurrent use unless stated otherwise; see
// Locked.
type Tree[T any] interface {
	//Insert v to the Tree. Equal values are kept, so inserting v twice stores
	//two copies of it.
	Insert(v T)
	//Has v. Equality is checked at every node visited on the search path.
	Has(v T) bool
	//Count returns how many copies of v are stored.
	Count(v T) int
	//Size of the tree, duplicates included.
	Size() int
	//Height is the number of nodes on the longest root to leaf path. It's 0
	//for an empty tree.
	Height() int
	//BlackHeight is the number of black nodes on any root to leaf path, or
	//-1 when paths disagree.
	BlackHeight() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder returns every element in non-decreasing order as a new slice.
	//Each call walks the whole tree again.
	InOrder() []T
	//PreOrder returns elements in node, left, right order.
	PreOrder() []T
	//PostOrder returns elements in left, right, node order.
	PostOrder() []T
	//LevelOrder returns elements breadth first, left to right.
	LevelOrder() []T
	//Ascend calls f on every element in non-decreasing order until f returns
	//false. The tree must not be modified from f.
	Ascend(f func(T) bool)
	//Walk calls f on every node in pre-order with its color and depth. The
	//root has depth 0.
	Walk(f func(v T, red bool, depth int))
	//Valid reports whether every red-black invariant holds: the root is
	//black, no red node has a red child, and all root to leaf paths have the
	//same number of black nodes.
	Valid() bool
	//Clear the tree.
	Clear()
}
