package queue

import (
	"strings"

	"github.com/pkg/errors"
)

// Queue is a generic interface for FIFO queues.
// Implementations are not safe for concurrent use.
type Queue[T any] interface {
	// Offer adds an item to the back of the queue.
	Offer(item T)

	// Poll removes and returns the item at the front of the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Poll() (T, bool)

	// Peek returns the item at the front of the queue without removing it.
	Peek() (T, bool)

	// Len returns the number of items in the queue.
	Len() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// Clear removes all items.
	Clear()
}

// Kind selects a Queue implementation.
type Kind string

const (
	// KindSlice is the slice-backed FIFO.
	KindSlice Kind = "slice"
	// KindRing is the ring-buffer backed Ring.
	KindRing Kind = "ring"
)

// ErrUnknownKind is returned for a Kind that has no implementation.
var ErrUnknownKind = errors.New("queue: unknown kind")

// ParseKind parses s case-insensitively into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSlice, KindRing:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// New creates an empty queue of the given kind.
// capacity is a preallocation hint; non-positive means none.
func New[T any](kind Kind, capacity int) (Queue[T], error) {
	switch kind {
	case KindSlice:
		return NewFIFOWithCapacity[T](capacity), nil
	case KindRing:
		return NewRing[T](capacity), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", string(kind))
	}
}
