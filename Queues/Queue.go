package Queues

import "errors"

// ErrEmptyQueue is returned by Pop on a queue with no elements.
var ErrEmptyQueue = errors.New("queue is empty: cannot Pop")

// Queue is a FIFO container. It isn't safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	// Pop removes the head. Returns ErrEmptyQueue when there is nothing to remove.
	Pop() (T, error)
	// Peek returns the head without removing it, or the zero value if the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
	// Clear drops every element but keeps the backing storage.
	Clear()
}
