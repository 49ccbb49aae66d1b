// File: ring/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Equality search over the live span. These are package-level functions
// because they need T to be comparable while Buffer itself does not.
// The scan walks the head segment up to the physical end of the backing
// array, then the wrapped remainder from offset 0.

package ring

// Index returns the first logical index >= from whose element equals v,
// or -1. from below zero is treated as zero.
func Index[T comparable](b *Buffer[T], v T, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= b.length {
		return -1
	}
	split := len(b.buf) - b.head
	if split > b.length {
		split = b.length
	}
	for i := from; i < split; i++ {
		if b.buf[b.head+i] == v {
			return i
		}
	}
	start := from - split
	if start < 0 {
		start = 0
	}
	for i := start; i < b.length-split; i++ {
		if b.buf[i] == v {
			return split + i
		}
	}
	return -1
}

// Contains reports whether v occurs in the buffer.
func Contains[T comparable](b *Buffer[T], v T) bool {
	return Index(b, v, 0) != -1
}

// RemoveValue removes the first occurrence of v at or after from.
// Returns the removed logical index, or -1 when not found.
func RemoveValue[T comparable](b *Buffer[T], v T, from int) int {
	i := Index(b, v, from)
	if i == -1 {
		return -1
	}
	return b.RemoveAt(i)
}
