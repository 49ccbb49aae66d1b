// File: ring/edit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interior gap surgery: opening and closing ranges of slots at arbitrary
// logical positions. Every shift moves the shorter of the two sides, so
// cost is bounded by min(index, length-index) rather than a fixed side.
// When growth combines with an existing wrap, relocate unwraps the
// sequence first so shifts never face a three-way split.

package ring

// Allocate opens a gap of count zeroed slots at logical position index
// (0 <= index <= Len()), growing capacity first if needed.
// Returns false for index out of range or count <= 0, without mutating.
func (b *Buffer[T]) Allocate(index, count int) bool {
	if index < 0 || index > b.length || count <= 0 {
		return false
	}
	b.reserve(b.length + count)
	if index <= b.length-index {
		// shift the head-ward prefix [0, index) back by count
		newHead := (b.head - count) & b.mask
		for i := 0; i < index; i++ {
			b.buf[(newHead+i)&b.mask] = b.buf[(b.head+i)&b.mask]
		}
		b.head = newHead
	} else {
		// shift the tail-ward suffix [index, length) forward by count
		for i := b.length - 1; i >= index; i-- {
			b.buf[(b.head+i+count)&b.mask] = b.buf[(b.head+i)&b.mask]
		}
	}
	var zero T
	for i := index; i < index+count; i++ {
		b.buf[(b.head+i)&b.mask] = zero
	}
	b.length += count
	b.tail = (b.head + b.length) & b.mask
	return true
}

// Deallocate removes count logical elements starting at index, zeroing
// vacated slots. count is clamped to the elements available from index.
// Returns false for index out of range, count <= 0, or nothing to remove.
func (b *Buffer[T]) Deallocate(index, count int) bool {
	if index < 0 || index > b.length || count <= 0 {
		return false
	}
	if count > b.length-index {
		count = b.length - index
	}
	if count == 0 {
		return false
	}
	var zero T
	if index <= b.length-index-count {
		// shift the prefix [0, index) forward by count
		for i := index - 1; i >= 0; i-- {
			b.buf[(b.head+i+count)&b.mask] = b.buf[(b.head+i)&b.mask]
		}
		for i := 0; i < count; i++ {
			b.buf[(b.head+i)&b.mask] = zero
		}
		b.head = (b.head + count) & b.mask
	} else {
		// shift the suffix [index+count, length) back by count
		for i := index + count; i < b.length; i++ {
			b.buf[(b.head+i-count)&b.mask] = b.buf[(b.head+i)&b.mask]
		}
		for i := b.length - count; i < b.length; i++ {
			b.buf[(b.head+i)&b.mask] = zero
		}
	}
	b.length -= count
	b.tail = (b.head + b.length) & b.mask
	return true
}

// Set overwrites values starting at logical index, auto-extending at the
// tail when index+len(values) exceeds Len(). Returns false for index out
// of range.
func (b *Buffer[T]) Set(index int, values ...T) bool {
	if index < 0 || index > b.length {
		return false
	}
	if len(values) == 0 {
		return true
	}
	if need := index + len(values) - b.length; need > 0 {
		if !b.Allocate(b.length, need) {
			return false
		}
	}
	for i, v := range values {
		b.buf[b.idx(index+i)] = v
	}
	return true
}

// Insert opens a gap at index and writes values into it, shifting
// existing elements apart. Returns false for index out of range.
func (b *Buffer[T]) Insert(index int, values ...T) bool {
	if index < 0 || index > b.length {
		return false
	}
	if len(values) == 0 {
		return true
	}
	if !b.Allocate(index, len(values)) {
		return false
	}
	for i, v := range values {
		b.buf[b.idx(index+i)] = v
	}
	return true
}

// RemoveAt removes the single element at index, shifting the shorter side
// by one step. Returns index, or -1 when out of range.
func (b *Buffer[T]) RemoveAt(index int) int {
	if index < 0 || index >= b.length {
		return -1
	}
	b.Deallocate(index, 1)
	return index
}

// Remove removes count elements starting at index and returns them in
// logical order. Returns nil for an invalid range.
func (b *Buffer[T]) Remove(index, count int) []T {
	if index < 0 || index > b.length || count <= 0 {
		return nil
	}
	out := b.Slice(index, index+count)
	b.Deallocate(index, count)
	return out
}
