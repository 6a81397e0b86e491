// Package ring implements the fixed-capacity buffers that sit between the
// interrupt-like producers (PS/2 clock edges, Wheelwriter bus reception,
// host link reception) and the single consumer that is the firmware loop.
//
// A Buffer is safe for exactly one producer goroutine and exactly one
// consumer goroutine. The read and write indices are free running counters
// that are only ever masked when indexing the storage.
package ring

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrFull is returned by Push() when the buffer has no room for the value.
var ErrFull = errors.New("ring buffer full")

// Buffer is a single-producer/single-consumer ring of values of type T.
type Buffer[T any] struct {
	data []T
	mask uint32

	// head is written only by the producer, tail only by the consumer. the
	// exception is an overflow in compatible mode, where the producer also
	// advances tail
	head atomic.Uint32
	tail atomic.Uint32

	overflows atomic.Uint32

	// in compatible mode a push onto a full buffer overwrites the oldest
	// unread value rather than being refused
	compatible bool
}

// New creates a Buffer with the given capacity, which must be a power of two.
func New[T any](capacity int, compatible bool) *Buffer[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("ring: capacity must be a power of two (%d)", capacity))
	}
	return &Buffer[T]{
		data:       make([]T, capacity),
		mask:       uint32(capacity - 1),
		compatible: compatible,
	}
}

// Push adds a value to the buffer. Producer side only.
//
// If the buffer is full the push is refused with ErrFull, unless the buffer
// was created in compatible mode, in which case the value is written anyway
// and the oldest value is lost. In both cases the overflow is counted.
func (b *Buffer[T]) Push(v T) error {
	h := b.head.Load()
	if h-b.tail.Load() > b.mask {
		b.overflows.Add(1)
		if !b.compatible {
			return ErrFull
		}
		// drop the oldest value so that the reader sees the most recent
		// capacity values
		b.tail.Add(1)
	}
	b.data[h&b.mask] = v
	b.head.Store(h + 1)
	return nil
}

// Available returns true if there is at least one value to read.
func (b *Buffer[T]) Available() bool {
	return b.head.Load() != b.tail.Load()
}

// Len returns the number of unread values.
func (b *Buffer[T]) Len() int {
	return int(b.head.Load() - b.tail.Load())
}

// Cap returns the capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Get removes and returns the oldest value. The boolean result is false if
// the buffer was empty. Consumer side only.
func (b *Buffer[T]) Get() (T, bool) {
	t := b.tail.Load()
	if t == b.head.Load() {
		var zero T
		return zero, false
	}
	v := b.data[t&b.mask]
	b.tail.Store(t + 1)
	return v, true
}

// Peek returns the oldest value without removing it. Consumer side only.
func (b *Buffer[T]) Peek() (T, bool) {
	t := b.tail.Load()
	if t == b.head.Load() {
		var zero T
		return zero, false
	}
	return b.data[t&b.mask], true
}

// Flush discards all unread values. Consumer side only.
func (b *Buffer[T]) Flush() {
	b.tail.Store(b.head.Load())
}

// Overflows returns the number of pushes that found the buffer full.
func (b *Buffer[T]) Overflows() int {
	return int(b.overflows.Load())
}
