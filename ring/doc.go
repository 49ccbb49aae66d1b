// Package ring
// Author: momentics <momentics@gmail.com>
//
// Growable power-of-two circular buffer for hioload pipelines.
// Buffer[T] is a single-threaded deque with amortized O(1) push/pop at both
// ends, arbitrary-position insertion and removal bounded by the shorter side,
// slicing with wraparound transparency, and explicit capacity control
// (Grow, Resize, Unwrap, Compact). Unlike the lock-free rings in this
// family of libraries, Buffer trades atomics for a full positional API;
// it is not safe for concurrent use.
// See ring.go for the offset model, edit.go for gap surgery.
package ring
