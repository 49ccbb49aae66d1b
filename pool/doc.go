// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object reuse built on the ring deque.
// FreeList[T] is a bounded single-threaded free list whose storage is a
// ring.Buffer; SyncPool[T] wraps sync.Pool for callers that do need
// cross-goroutine reuse. Both satisfy api.Pool.
package pool
