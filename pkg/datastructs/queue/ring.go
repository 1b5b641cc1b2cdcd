package queue

import (
	"github.com/huynhanx03/go-queue/pkg/utils"
)

var _ Queue[int] = (*Ring[int])(nil)

const defaultRingCap = 16

// Ring is an unbounded FIFO queue on a circular buffer.
// Capacity is always a power of two and doubles when full.
type Ring[T any] struct {
	buf     []T
	mask    int
	readPos int // next position to poll from
	count   int
}

// NewRing creates a Ring with the given initial capacity.
// The capacity will be rounded up to the nearest power of two.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = defaultRingCap
	}
	capacity = utils.CeilToPowerOfTwo(capacity)
	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func (r *Ring[T]) wrapIndex(i int) int { return i & r.mask }

// Offer adds item at the back, growing if the buffer is full.
func (r *Ring[T]) Offer(item T) {
	if r.count == len(r.buf) {
		r.grow(len(r.buf) * 2)
	}
	r.buf[r.wrapIndex(r.readPos+r.count)] = item
	r.count++
}

// OfferBatch adds items in order.
func (r *Ring[T]) OfferBatch(items []T) {
	if need := r.count + len(items); need > len(r.buf) {
		r.grow(utils.CeilToPowerOfTwo(need))
	}
	for _, item := range items {
		r.buf[r.wrapIndex(r.readPos+r.count)] = item
		r.count++
	}
}

// Poll removes and returns the front item. Returns false if empty.
func (r *Ring[T]) Poll() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	item := r.buf[r.readPos]
	r.buf[r.readPos] = zero
	r.readPos = r.wrapIndex(r.readPos + 1)
	r.count--
	if r.count == 0 {
		r.readPos = 0
	}
	return item, true
}

// PollBatch removes up to len(out) items into out. Returns count polled.
func (r *Ring[T]) PollBatch(out []T) int {
	n := 0
	for n < len(out) {
		item, ok := r.Poll()
		if !ok {
			break
		}
		out[n] = item
		n++
	}
	return n
}

// Peek returns the front item without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.readPos], true
}

// Len returns the number of items.
func (r *Ring[T]) Len() int { return r.count }

// Size is an alias of Len.
func (r *Ring[T]) Size() int { return r.count }

// Cap returns the current buffer capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty returns true if the ring holds no items.
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }

// Clear removes all items, keeping the allocated buffer.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.readPos = 0
	r.count = 0
}

// Values returns a copy of the items from front to back.
func (r *Ring[T]) Values() []T {
	out := make([]T, r.count)
	r.copyTo(out)
	return out
}

// copyTo writes the items in FIFO order to dst, handling wrap-around.
func (r *Ring[T]) copyTo(dst []T) {
	if r.count == 0 {
		return
	}
	end := r.readPos + r.count
	if end <= len(r.buf) {
		copy(dst, r.buf[r.readPos:end])
		return
	}
	n := copy(dst, r.buf[r.readPos:])
	copy(dst[n:], r.buf[:end-len(r.buf)])
}

// grow reallocates to newCap (a power of two) and unwraps the items to index 0.
func (r *Ring[T]) grow(newCap int) {
	if newCap == 0 { // zero-value Ring
		newCap = defaultRingCap
	}
	if !utils.IsPowerOfTwo(newCap) {
		panic("queue: ring capacity must be a power of two")
	}
	buf := make([]T, newCap)
	r.copyTo(buf)
	r.buf = buf
	r.mask = newCap - 1
	r.readPos = 0
}
