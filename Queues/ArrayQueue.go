package Queues

// circArrQ is a ring buffer; head is the next slot to read and tail the next slot to write.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// NewArrayQueue returns an empty Queue backed by a circular array of initial capacity initCap.
// The array grows by 3/2 whenever it's full.
func NewArrayQueue[T any](initCap uint) Queue[T] {
	if initCap < 2 {
		initCap = 2
	}
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (q *circArrQ[T]) Empty() bool {
	return q.sz == 0
}

func (q *circArrQ[T]) Size() uint {
	return q.sz
}

// resize copies the live elements to the front of a new array of length newLen.
func (q *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.head < q.tail {
		copy(nc, q.content[q.head:q.tail])
	} else if q.sz > 0 {
		n := copy(nc, q.content[q.head:])
		copy(nc[n:], q.content[:q.tail])
	}
	q.content = nc
	q.head, q.tail = 0, q.sz%newLen
}

func (q *circArrQ[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

// Push appends item at the tail.
// Time: amortized O(1).
func (q *circArrQ[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz * 3 / 2)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *circArrQ[T]) Pop() (item T, err error) {
	if q.Empty() {
		return item, ErrEmptyQueue
	}
	item = q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return item, nil
}

func (q *circArrQ[T]) Peek() (item T) {
	if q.Empty() {
		return
	}
	return q.content[q.head]
}
