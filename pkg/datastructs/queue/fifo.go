package queue

var _ Queue[int] = (*FIFO[int])(nil)

// FIFO is an unbounded first-in-first-out queue backed by a slice.
// The front is index 0. Poll shifts the remaining items, so it costs
// O(n); use Ring when polls dominate.
type FIFO[T any] struct {
	data []T
}

// NewFIFO creates an empty queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

// NewFIFOWithCapacity creates an empty queue with room for capacity items.
func NewFIFOWithCapacity[T any](capacity int) *FIFO[T] {
	if capacity <= 0 {
		return NewFIFO[T]()
	}
	return &FIFO[T]{data: make([]T, 0, capacity)}
}

// Offer appends item to the back of the queue.
func (q *FIFO[T]) Offer(item T) {
	q.data = append(q.data, item)
}

// OfferBatch appends items in order.
func (q *FIFO[T]) OfferBatch(items []T) {
	q.data = append(q.data, items...)
}

// Poll removes and returns the front item. Returns false if the queue is empty.
func (q *FIFO[T]) Poll() (T, bool) {
	var zero T
	n := len(q.data)
	if n == 0 {
		return zero, false
	}

	item := q.data[0]
	copy(q.data, q.data[1:])
	q.data[n-1] = zero // drop reference held by the vacated slot
	q.data = q.data[:n-1]
	return item, true
}

// PollBatch removes up to len(out) items into out. Returns count polled.
func (q *FIFO[T]) PollBatch(out []T) int {
	n := copy(out, q.data)
	if n == 0 {
		return 0
	}

	var zero T
	rest := copy(q.data, q.data[n:])
	for i := rest; i < len(q.data); i++ {
		q.data[i] = zero
	}
	q.data = q.data[:rest]
	return n
}

// Peek returns the front item without removing it.
func (q *FIFO[T]) Peek() (T, bool) {
	if len(q.data) == 0 {
		var zero T
		return zero, false
	}
	return q.data[0], true
}

// Len returns the number of items.
func (q *FIFO[T]) Len() int { return len(q.data) }

// Size is an alias of Len.
func (q *FIFO[T]) Size() int { return len(q.data) }

// IsEmpty returns true if the queue holds no items.
func (q *FIFO[T]) IsEmpty() bool { return len(q.data) == 0 }

// Clear removes all items, keeping the allocated storage.
func (q *FIFO[T]) Clear() {
	clear(q.data)
	q.data = q.data[:0]
}

// Values returns a copy of the items from front to back.
func (q *FIFO[T]) Values() []T {
	out := make([]T, len(q.data))
	copy(out, q.data)
	return out
}
