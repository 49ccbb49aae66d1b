// File: internal/pow2/pow2.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Power-of-two capacity math shared by the ring and pool packages.
// All backing arrays in this module are power-of-two sized so that
// modular offset arithmetic reduces to a bitwise AND with capacity-1.

package pow2

import "math/bits"

// Ceil returns the smallest power of two >= n.
// Ceil(0) and Ceil(1) both return 1.
func Ceil(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Is reports whether n is a power of two.
func Is(n int) bool {
	return n > 0 && n&(n-1) == 0
}
