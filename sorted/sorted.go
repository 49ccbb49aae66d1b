// File: sorted/sorted.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Array owns exactly one ring.Buffer and is its sole writer; all storage
// movement is delegated to the deque, all positioning happens here.
// The comparator is a total order: cmp(a, b) < 0 means a sorts before b,
// and cmp(a, b) == 0 is the equality used by IndexOf and RemoveValue.

package sorted

import (
	"iter"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ensure compile-time interface compliance.
var _ api.SortedStore[any] = (*Array[any])(nil)

// Array is a sorted sequence with binary-search positioning.
type Array[T any] struct {
	cmp func(a, b T) int
	buf *ring.Buffer[T]
}

// New returns an empty sorted array ordered by cmp.
func New[T any](cmp func(a, b T) int) *Array[T] {
	return &Array[T]{
		cmp: cmp,
		buf: ring.New[T](0),
	}
}

// From bulk-loads values, which must already be sorted by cmp.
func From[T any](cmp func(a, b T) int, values []T) *Array[T] {
	return &Array[T]{
		cmp: cmp,
		buf: ring.From(values),
	}
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int { return a.buf.Len() }

// Cap returns the backing capacity.
func (a *Array[T]) Cap() int { return a.buf.Cap() }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.buf.IsEmpty() }

// LowerBound returns the smallest index i such that no element before i
// sorts below v: the leftmost insertion point among duplicates.
func (a *Array[T]) LowerBound(v T) int {
	lo, hi := 0, a.buf.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		e, _ := a.buf.At(mid)
		if a.cmp(e, v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the smallest index i such that no element before i
// sorts at or below v: the rightmost insertion point among duplicates.
func (a *Array[T]) UpperBound(v T) int {
	lo, hi := 0, a.buf.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		e, _ := a.buf.At(mid)
		if a.cmp(e, v) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// IndexOf returns some index at or after from whose element compares
// equal to v, or -1. Which duplicate is returned is unspecified; use
// LowerBound/UpperBound for deterministic ends of an equal run.
func (a *Array[T]) IndexOf(v T, from int) int {
	if from < 0 {
		from = 0
	}
	i := a.LowerBound(v)
	if i < from {
		i = from
	}
	if i >= a.buf.Len() {
		return -1
	}
	e, _ := a.buf.At(i)
	if a.cmp(e, v) != 0 {
		return -1
	}
	return i
}

// Contains reports whether some element compares equal to v.
func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v, 0) != -1
}

// Insert places v at its leftmost ordered position, before existing
// equals, and returns the insertion index.
func (a *Array[T]) Insert(v T) int {
	i := a.LowerBound(v)
	a.buf.Insert(i, v)
	return i
}

// At returns the element at index i; ok false out of range.
func (a *Array[T]) At(i int) (T, bool) { return a.buf.At(i) }

// RemoveAt removes the element at i; returns i or -1 out of range.
func (a *Array[T]) RemoveAt(i int) int { return a.buf.RemoveAt(i) }

// RemoveValue removes the first element comparing equal to v.
// Returns the removed index, or -1 when absent.
func (a *Array[T]) RemoveValue(v T) int {
	i := a.LowerBound(v)
	if i >= a.buf.Len() {
		return -1
	}
	e, _ := a.buf.At(i)
	if a.cmp(e, v) != 0 {
		return -1
	}
	return a.buf.RemoveAt(i)
}

// Remove removes count elements starting at index and returns them in
// order; nil for an invalid range.
func (a *Array[T]) Remove(index, count int) []T {
	return a.buf.Remove(index, count)
}

// ToSlice returns the sorted contents as a fresh slice.
func (a *Array[T]) ToSlice() []T { return a.buf.ToSlice() }

// Values iterates the elements in comparator order.
func (a *Array[T]) Values() iter.Seq[T] { return a.buf.Values() }

// Drain iterates in order, removing each element as it yields.
func (a *Array[T]) Drain() iter.Seq[T] { return a.buf.Drain() }
