// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FreeList[T] is a bounded LIFO free list over ring.Buffer storage.
// LIFO keeps recently released objects hot in cache. Unlike SyncPool it
// never drops objects under GC pressure, but it is single-threaded.

package pool

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ensure compile-time interface compliance.
var _ api.Pool[any] = (*FreeList[any])(nil)

// FreeList reuses objects up to a fixed limit; beyond it, released
// objects are dropped for the collector.
type FreeList[T any] struct {
	free  ring.Buffer[T]
	limit int
	alloc func() T
}

// NewFreeList creates a free list holding at most limit idle objects.
// alloc constructs a fresh object on a miss. limit <= 0 means unbounded.
func NewFreeList[T any](limit int, alloc func() T) *FreeList[T] {
	return &FreeList[T]{
		limit: limit,
		alloc: alloc,
	}
}

// Get returns a pooled object, or a freshly allocated one on a miss.
func (f *FreeList[T]) Get() T {
	if v, ok := f.free.PopBack(); ok {
		return v
	}
	return f.alloc()
}

// Put returns an object to the list; dropped when the list is at limit.
func (f *FreeList[T]) Put(v T) {
	if f.limit > 0 && f.free.Len() >= f.limit {
		return
	}
	f.free.PushBack(v)
}

// Idle returns the number of pooled objects currently held.
func (f *FreeList[T]) Idle() int { return f.free.Len() }

// Trim discards idle objects above n, releasing their references.
func (f *FreeList[T]) Trim(n int) {
	if n < 0 {
		n = 0
	}
	for f.free.Len() > n {
		f.free.PopBack()
	}
}
