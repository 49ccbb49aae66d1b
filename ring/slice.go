// File: ring/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range materialization with wraparound transparency.

package ring

// Slice returns a freshly allocated copy of the half-open logical range
// [start, end). Negative indices count from the end (Python style); both
// bounds are clamped to [0, Len()]. An empty range returns nil.
func (b *Buffer[T]) Slice(start, end int) []T {
	if start < 0 {
		start += b.length
	}
	if end < 0 {
		end += b.length
	}
	start = clamp(start, 0, b.length)
	end = clamp(end, 0, b.length)
	if end <= start {
		return nil
	}
	out := make([]T, end-start)
	lo := b.head + start
	hi := b.head + end
	switch {
	case hi <= len(b.buf):
		// fully inside the head segment
		copy(out, b.buf[lo:hi])
	case lo >= len(b.buf):
		// fully inside the wrapped segment
		copy(out, b.buf[lo-len(b.buf):hi-len(b.buf)])
	default:
		n := copy(out, b.buf[lo:])
		copy(out[n:], b.buf[:hi-len(b.buf)])
	}
	return out
}

// ToSlice returns the whole logical sequence as a fresh slice.
func (b *Buffer[T]) ToSlice() []T {
	return b.Slice(0, b.length)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
