// Package sorted
// Author: momentics <momentics@gmail.com>
//
// Comparator-ordered array layered on ring.Buffer storage.
// Array[T] keeps its backing deque sorted across every public operation
// and positions elements by binary search (LowerBound/UpperBound).
// Single-threaded, like the rest of this module.
package sorted
