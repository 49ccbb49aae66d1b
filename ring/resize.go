// File: ring/resize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Explicit capacity control. Because capacities are powers of two, any
// accepted shrink is at most half the current backing length; requests
// that round back to the current capacity are refused to avoid flapping.

package ring

import "github.com/momentics/hioload-ring/internal/pow2"

// Resize changes capacity to the smallest power of two >= capacity
// (minimum 8). Growth always succeeds. A shrink is refused, with no
// mutation, when the target cannot hold Len() elements or rounds to the
// current capacity. Returns whether the backing array changed.
func (b *Buffer[T]) Resize(capacity int) bool {
	c := pow2.Ceil(max(capacity, minCapacity))
	if c == len(b.buf) || c < b.length {
		return false
	}
	b.relocate(c)
	return true
}

// Grow guarantees a backing capacity of at least the next power of two
// >= capacity. No-op when the current backing array is already as large.
// Growth unwraps the sequence relative to the old modulus; it may wrap
// again later relative to the new one.
func (b *Buffer[T]) Grow(capacity int) {
	b.reserve(capacity)
}

// Unwrap forces the logical sequence to start at backing offset 0 with no
// wraparound, for callers needing a guaranteed-contiguous region.
// Returns false on an empty buffer.
func (b *Buffer[T]) Unwrap() bool {
	if b.length == 0 {
		return false
	}
	if b.head != 0 {
		b.relocate(len(b.buf))
	}
	return true
}

// Compact retains only elements for which keep(value, index) is true,
// preserving relative order and zeroing freed slots. When the retained
// count drops below half the backing length, the backing array shrinks to
// the smallest power of two >= the retained count (minimum 8).
// Returns whether anything was removed.
func (b *Buffer[T]) Compact(keep func(value T, index int) bool) bool {
	kept := 0
	for i := 0; i < b.length; i++ {
		v := b.buf[b.idx(i)]
		if keep(v, i) {
			if kept != i {
				b.buf[b.idx(kept)] = v
			}
			kept++
		}
	}
	if kept == b.length {
		return false
	}
	var zero T
	for i := kept; i < b.length; i++ {
		b.buf[b.idx(i)] = zero
	}
	b.length = kept
	b.tail = (b.head + b.length) & b.mask
	if kept*2 < len(b.buf) {
		if c := pow2.Ceil(max(kept, minCapacity)); c < len(b.buf) {
			b.relocate(c)
		}
	}
	return true
}

// Clear resets to empty at the default minimum capacity, dropping all
// element references.
func (b *Buffer[T]) Clear() {
	b.buf = make([]T, minCapacity)
	b.mask = minCapacity - 1
	b.head = 0
	b.tail = 0
	b.length = 0
}
