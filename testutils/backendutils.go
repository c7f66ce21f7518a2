// Package testutils holds checks every memo backend has to pass.
package testutils

import (
	"testing"

	memo "github.com/venkatsvpr/golang-memo"
)

// CoherenceTest checks that a Get right after an Add returns that value,
// including after an overwrite.
func CoherenceTest(t *testing.T, b memo.Backend[int, int], capacity int) {
	t.Helper()
	for i := 0; i < 2*capacity; i++ {
		b.Add(i, i*3)
		if v, ok := b.Get(i); !ok || v != i*3 {
			t.Fatalf("bad get after add %d: %v, %v", i, v, ok)
		}
	}

	// overwrite the most recent key
	last := 2*capacity - 1
	if evicted := b.Add(last, -1); evicted {
		t.Fatalf("overwrite should not evict")
	}
	if v, ok := b.Get(last); !ok || v != -1 {
		t.Fatalf("bad overwritten value: %v, %v", v, ok)
	}
	if b.Len() > 2*capacity {
		t.Fatalf("bad len: %v", b.Len())
	}
}

// PurgeTest checks that nothing added before a Purge can be read back.
func PurgeTest(t *testing.T, b memo.Backend[int, int], capacity int) {
	t.Helper()
	for i := 0; i < capacity; i++ {
		b.Add(i, i)
	}
	if b.Len() != capacity {
		t.Fatalf("bad len: %v", b.Len())
	}

	b.Purge()
	if b.Len() != 0 {
		t.Fatalf("bad len after purge: %v", b.Len())
	}
	for i := 0; i < capacity; i++ {
		if _, ok := b.Get(i); ok {
			t.Fatalf("%d should be gone after purge", i)
		}
	}

	// the backend stays usable
	b.Add(capacity, capacity)
	if v, ok := b.Get(capacity); !ok || v != capacity {
		t.Fatalf("bad get after purge: %v, %v", v, ok)
	}
}

// MemoizeTest checks that a Memo over b always agrees with the function it
// wraps, and that repeated keys are served from b.
func MemoizeTest(t *testing.T, b memo.Backend[int, int], capacity int) {
	t.Helper()
	calls := 0
	square := func(n int) int {
		calls++
		return n * n
	}
	m := memo.New(b, square)

	for round := 0; round < 3; round++ {
		for i := 0; i < capacity; i++ {
			if v := m.Call(i); v != i*i {
				t.Fatalf("bad result for %d: %v", i, v)
			}
		}
	}
	if calls != capacity {
		t.Fatalf("bad call count: %v, want %v", calls, capacity)
	}

	stats := m.Stats()
	if stats.Misses != uint64(capacity) || stats.Hits != uint64(2*capacity) {
		t.Fatalf("bad stats: %+v", stats)
	}

	m.Invalidate()
	if v := m.Call(1); v != 1 {
		t.Fatalf("bad result after invalidate: %v", v)
	}
	if calls != capacity+1 {
		t.Fatalf("invalidate should force a recompute, calls %v", calls)
	}
}
