// File: internal/pow2/pow2_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pow2

import "testing"

func TestCeil(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{1023, 1024},
		{1024, 1024},
		{1025, 2048},
	}
	for _, c := range cases {
		if got := Ceil(c.in); got != c.want {
			t.Errorf("Ceil(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIs(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1 << 20} {
		if !Is(n) {
			t.Errorf("Is(%d) = false, want true", n)
		}
	}
	for _, n := range []int{-4, 0, 3, 6, 12, 1<<20 + 1} {
		if Is(n) {
			t.Errorf("Is(%d) = true, want false", n)
		}
	}
}
