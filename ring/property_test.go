// File: ring/property_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Randomized model tests: the buffer must behave exactly like a plain
// slice under any operation sequence, and like eapache/queue under pure
// FIFO traffic.

package ring

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/eapache/queue"
)

// TestDequeModel drives random deque and interior operations against a
// plain slice model and compares the full contents after every step.
func TestDequeModel(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := New[int](0)
		model := make([]int, 0)

		for step := 0; step < 4000; step++ {
			switch op := rng.Intn(8); op {
			case 0:
				v := rng.Intn(100000)
				b.PushBack(v)
				model = append(model, v)
			case 1:
				v := rng.Intn(100000)
				b.PushFront(v)
				model = append([]int{v}, model...)
			case 2:
				v, ok := b.PopBack()
				if ok != (len(model) > 0) {
					t.Fatalf("seed %d step %d: PopBack ok=%v, model len %d", seed, step, ok, len(model))
				}
				if ok {
					if want := model[len(model)-1]; v != want {
						t.Fatalf("seed %d step %d: PopBack = %d, want %d", seed, step, v, want)
					}
					model = model[:len(model)-1]
				}
			case 3:
				v, ok := b.PopFront()
				if ok != (len(model) > 0) {
					t.Fatalf("seed %d step %d: PopFront ok=%v, model len %d", seed, step, ok, len(model))
				}
				if ok {
					if want := model[0]; v != want {
						t.Fatalf("seed %d step %d: PopFront = %d, want %d", seed, step, v, want)
					}
					model = model[1:]
				}
			case 4:
				i := rng.Intn(len(model) + 1)
				v := rng.Intn(100000)
				if !b.Insert(i, v) {
					t.Fatalf("seed %d step %d: Insert(%d) failed", seed, step, i)
				}
				model = slices.Insert(model, i, v)
			case 5:
				if len(model) == 0 {
					continue
				}
				i := rng.Intn(len(model))
				if got := b.RemoveAt(i); got != i {
					t.Fatalf("seed %d step %d: RemoveAt(%d) = %d", seed, step, i, got)
				}
				model = slices.Delete(model, i, i+1)
			case 6:
				lo := rng.Intn(len(model) + 1)
				hi := rng.Intn(len(model) + 1)
				got := b.Slice(lo, hi)
				var want []int
				if lo < hi {
					want = model[lo:hi]
				}
				if !slices.Equal(got, want) {
					t.Fatalf("seed %d step %d: Slice(%d, %d) = %v, want %v", seed, step, lo, hi, got, want)
				}
			case 7:
				if rng.Intn(50) == 0 {
					b.Resize(rng.Intn(64))
				}
			}
			if b.Len() != len(model) {
				t.Fatalf("seed %d step %d: length %d, model %d", seed, step, b.Len(), len(model))
			}
		}
		if got := b.ToSlice(); !slices.Equal(got, model) {
			t.Fatalf("seed %d: final contents %v, want %v", seed, got, model)
		}
	}
}

// TestFIFOAgainstQueue replays random enqueue/dequeue traffic against
// eapache/queue as the reference FIFO.
func TestFIFOAgainstQueue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New[int](0)
	q := queue.New()

	for step := 0; step < 20000; step++ {
		if rng.Intn(2) == 0 {
			v := rng.Intn(1 << 20)
			b.PushBack(v)
			q.Add(v)
		} else if q.Length() > 0 {
			want := q.Remove().(int)
			got, ok := b.PopFront()
			if !ok || got != want {
				t.Fatalf("step %d: PopFront = %d, %v; queue says %d", step, got, ok, want)
			}
		}
		if b.Len() != q.Length() {
			t.Fatalf("step %d: length %d, queue %d", step, b.Len(), q.Length())
		}
		if b.Len() > 0 {
			front, _ := b.Front()
			if peek := q.Peek().(int); front != peek {
				t.Fatalf("step %d: Front = %d, queue peek %d", step, front, peek)
			}
		}
	}
}

// TestGrowthPreservesContents checks that no growth path loses or
// reorders elements.
func TestGrowthPreservesContents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New[int](8)
	// rotate into a wrapped state first
	for i := 0; i < 6; i++ {
		b.PushBack(i)
	}
	for i := 0; i < 4; i++ {
		b.PopFront()
		b.PushBack(100 + i)
	}
	for i := 0; i < 2000; i++ {
		want := append(b.ToSlice(), i)
		if rng.Intn(2) == 0 {
			b.PushBack(i)
		} else {
			b.PushFront(i)
			copy(want[1:], want)
			want[0] = i
		}
		if got := b.ToSlice(); !slices.Equal(got, want) {
			t.Fatalf("push %d: got %v, want %v", i, got, want)
		}
	}
}

// TestCompactModel compares Compact against filtering a slice model.
func TestCompactModel(t *testing.T) {
	for seed := int64(0); seed < 4; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := New[int](0)
		model := make([]int, 0)
		for i := 0; i < 500; i++ {
			v := rng.Intn(1000)
			b.PushBack(v)
			model = append(model, v)
		}
		// rotate to wrap
		for i := 0; i < 100; i++ {
			v, _ := b.PopFront()
			b.PushBack(v)
			model = append(model[1:], v)
		}
		keep := func(v, _ int) bool { return v%3 != 0 }
		b.Compact(keep)
		filtered := model[:0:0]
		for i, v := range model {
			if keep(v, i) {
				filtered = append(filtered, v)
			}
		}
		if got := b.ToSlice(); !slices.Equal(got, filtered) {
			t.Fatalf("seed %d: Compact got %v, want %v", seed, got, filtered)
		}
	}
}
