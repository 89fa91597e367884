package Trees

import "sync"

// Locked guards a Tree with a read-write lock: Insert and Clear hold it
// exclusively, every other method shares it. The zero value isn't usable;
// create it with NewLocked.
type Locked[T any] struct {
	mu sync.RWMutex
	t  Tree[T]
}

// NewLocked wraps t. t must not be used directly afterward.
func NewLocked[T any](t Tree[T]) *Locked[T] {
	return &Locked[T]{t: t}
}

// Insert [Tree.Insert]
func (u *Locked[T]) Insert(v T) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Insert(v)
}

// Clear [Tree.Clear]
func (u *Locked[T]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Clear()
}

// Has [Tree.Has]
func (u *Locked[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

// Count [Tree.Count]
func (u *Locked[T]) Count(v T) int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Count(v)
}

// Size [Tree.Size]
func (u *Locked[T]) Size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

// Height [Tree.Height]
func (u *Locked[T]) Height() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Height()
}

// BlackHeight [Tree.BlackHeight]
func (u *Locked[T]) BlackHeight() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.BlackHeight()
}

// Minimum [Tree.Minimum]
func (u *Locked[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

// Maximum [Tree.Maximum]
func (u *Locked[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

// InOrder [Tree.InOrder]
func (u *Locked[T]) InOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.InOrder()
}

// PreOrder [Tree.PreOrder]
func (u *Locked[T]) PreOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.PreOrder()
}

// PostOrder [Tree.PostOrder]
func (u *Locked[T]) PostOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.PostOrder()
}

// LevelOrder [Tree.LevelOrder]
func (u *Locked[T]) LevelOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.LevelOrder()
}

// Ascend [Tree.Ascend]. It holds the read lock for the whole walk, so f
// must not call Insert or Clear on u.
func (u *Locked[T]) Ascend(f func(T) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.Ascend(f)
}

// Walk [Tree.Walk]. It holds the read lock for the whole walk, like Ascend.
func (u *Locked[T]) Walk(f func(v T, red bool, depth int)) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.Walk(f)
}

// Valid [Tree.Valid]
func (u *Locked[T]) Valid() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Valid()
}
