// File: api/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended buffer contracts. Not safe for concurrent use;
// callers needing cross-thread access must wrap with their own lock.

package api

import "iter"

// Deque is the double-ended queue contract.
type Deque[T any] interface {
	// PushBack appends to the tail, growing capacity when full.
	PushBack(v T)
	// PushFront prepends before the head, growing capacity when full.
	PushFront(v T)
	// PopBack removes and returns the last element; ok false if empty.
	PopBack() (T, bool)
	// PopFront removes and returns the first element; ok false if empty.
	PopFront() (T, bool)
	// Front returns the first element without removing it.
	Front() (T, bool)
	// Back returns the last element without removing it.
	Back() (T, bool)
	// At returns the element at logical index i; ok false out of range.
	At(i int) (T, bool)
	// Len returns the number of live elements.
	Len() int
	// Cap returns the backing array capacity (a power of two).
	Cap() int
	// Values iterates live elements in logical order without mutating.
	Values() iter.Seq[T]
	// Drain iterates front to back, removing each element as it yields.
	Drain() iter.Seq[T]
}

// SortedStore is the contract of a comparator-ordered container.
type SortedStore[T any] interface {
	// Insert places v keeping order, before existing equals.
	// Returns the insertion index.
	Insert(v T) int
	// LowerBound returns the leftmost insertion point for v.
	LowerBound(v T) int
	// UpperBound returns the rightmost insertion point for v.
	UpperBound(v T) int
	// At returns the element at index i; ok false out of range.
	At(i int) (T, bool)
	// RemoveAt removes the element at i; returns i or -1 out of range.
	RemoveAt(i int) int
	// Len returns the number of stored elements.
	Len() int
	// Values iterates stored elements in comparator order.
	Values() iter.Seq[T]
}

// Pool is the generic object pool contract shared by pool implementations.
type Pool[T any] interface {
	Get() T
	Put(v T)
}
