// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lazy forward iteration. Values snapshots head and length at creation;
// mutating the buffer while ranging over Values is not supported.

package ring

import "iter"

// Values returns a forward iterator over the live elements in logical
// order. The iterator does not mutate the buffer.
func (b *Buffer[T]) Values() iter.Seq[T] {
	head, length := b.head, b.length
	return func(yield func(T) bool) {
		for i := 0; i < length; i++ {
			if !yield(b.buf[(head+i)&b.mask]) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes each element from the front as
// it is produced. Ranging it to completion leaves the buffer empty;
// stopping early keeps the unconsumed tail.
func (b *Buffer[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := b.PopFront()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
