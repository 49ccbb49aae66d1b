// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core offset model of the growable ring buffer.
// The backing array length is always a power of two, so every modular
// offset computation is a bitwise AND with mask = capacity-1.
// length is authoritative: head == tail is never used to detect a full
// buffer, only length == capacity is.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/pow2"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Buffer[any])(nil)

// minCapacity is the smallest backing array ever allocated.
const minCapacity = 8

// Buffer is a growable double-ended ring buffer.
// The zero Buffer is ready to use; the first write allocates backing storage.
type Buffer[T any] struct {
	buf    []T
	head   int // absolute offset of the first element, [0, cap)
	tail   int // one past the last element, derived from head+length
	mask   int // cap-1
	length int // live element count, authoritative
}

// New returns an empty buffer whose capacity is the smallest power of two
// >= max(capacity, 8).
func New[T any](capacity int) *Buffer[T] {
	c := pow2.Ceil(max(capacity, minCapacity))
	return &Buffer[T]{
		buf:  make([]T, c),
		mask: c - 1,
	}
}

// From bulk-initializes a buffer from values without wraparound.
// Capacity is the smallest power of two >= max(len(values), 8); an exact
// power-of-two fit grows once on the next push, never repeatedly.
func From[T any](values []T) *Buffer[T] {
	b := New[T](len(values))
	copy(b.buf, values)
	b.length = len(values)
	b.tail = b.length & b.mask
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the backing array capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool { return b.length == 0 }

// IsWrapped reports whether the live span crosses the physical end of the
// backing array. Computed from head+length so it stays correct when full.
func (b *Buffer[T]) IsWrapped() bool { return b.head+b.length > len(b.buf) }

// idx maps logical index i to an absolute backing offset.
func (b *Buffer[T]) idx(i int) int { return (b.head + i) & b.mask }

// PushBack appends v at the tail, doubling capacity first when full.
func (b *Buffer[T]) PushBack(v T) {
	if b.length == len(b.buf) {
		b.grow()
	}
	b.buf[b.tail] = v
	b.tail = (b.tail + 1) & b.mask
	b.length++
}

// PushFront prepends v before the head, doubling capacity first when full.
func (b *Buffer[T]) PushFront(v T) {
	if b.length == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1) & b.mask
	b.buf[b.head] = v
	b.length++
}

// PopBack removes and returns the last element; ok false if empty.
// The vacated slot is zeroed so the element can be collected.
func (b *Buffer[T]) PopBack() (T, bool) {
	var zero T
	if b.length == 0 {
		return zero, false
	}
	b.tail = (b.tail - 1) & b.mask
	v := b.buf[b.tail]
	b.buf[b.tail] = zero
	b.length--
	return v, true
}

// PopFront removes and returns the first element; ok false if empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.length == 0 {
		return zero, false
	}
	v := b.buf[b.head]
	b.buf[b.head] = zero
	b.head = (b.head + 1) & b.mask
	b.length--
	return v, true
}

// Front returns the first element without removing it.
func (b *Buffer[T]) Front() (T, bool) { return b.At(0) }

// Back returns the last element without removing it.
func (b *Buffer[T]) Back() (T, bool) { return b.At(b.length - 1) }

// At returns the element at logical index i, or ok false when i is
// outside [0, Len()).
func (b *Buffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= b.length {
		var zero T
		return zero, false
	}
	return b.buf[b.idx(i)], true
}

// grow doubles the backing array, unwrapping the sequence to offset 0.
func (b *Buffer[T]) grow() {
	b.relocate(max(len(b.buf)*2, minCapacity))
}

// reserve guarantees capacity for at least n elements.
func (b *Buffer[T]) reserve(n int) {
	c := pow2.Ceil(max(n, minCapacity))
	if c > len(b.buf) {
		b.relocate(c)
	}
}

// relocate copies the logical sequence into a fresh backing array of
// power-of-two capacity c >= length, leaving it unwrapped at offset 0.
func (b *Buffer[T]) relocate(c int) {
	buf := make([]T, c)
	b.copyTo(buf)
	b.buf = buf
	b.mask = c - 1
	b.head = 0
	b.tail = b.length & b.mask
}

// copyTo writes the logical sequence in order into dst, which must hold
// at least length elements.
func (b *Buffer[T]) copyTo(dst []T) {
	if b.IsWrapped() {
		n := copy(dst, b.buf[b.head:])
		copy(dst[n:], b.buf[:b.length-n])
	} else {
		copy(dst, b.buf[b.head:b.head+b.length])
	}
}
