// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package simplelru

import (
	"reflect"
	"testing"
)

func TestLRU(t *testing.T) {
	evictCounter := 0
	onEvicted := func(k int, v int) {
		if k != v {
			t.Fatalf("Evict values not equal (%v!=%v)", k, v)
		}
		evictCounter++
	}
	l, err := NewLRU(128, onEvicted)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for i := 0; i < 256; i++ {
		l.Add(i, i)
	}
	if l.Len() != 128 {
		t.Fatalf("bad len: %v", l.Len())
	}

	if evictCounter != 128 {
		t.Fatalf("bad evict count: %v", evictCounter)
	}

	for i, k := range l.Keys() {
		if v, ok := l.Get(k); !ok || v != k || v != i+128 {
			t.Fatalf("bad key: %v", k)
		}
	}
	for i, v := range l.Values() {
		if v != i+128 {
			t.Fatalf("bad value: %v", v)
		}
	}
	for i := 0; i < 128; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be evicted")
		}
	}
	for i := 128; i < 256; i++ {
		if _, ok := l.Get(i); !ok {
			t.Fatalf("should not be evicted")
		}
	}
	for i := 128; i < 192; i++ {
		if ok := l.Remove(i); !ok {
			t.Fatalf("should be contained")
		}
		if ok := l.Remove(i); ok {
			t.Fatalf("should not be contained")
		}
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be deleted")
		}
	}

	l.Get(192) // expect 192 to be last key in l.Keys()

	for i, k := range l.Keys() {
		if (i < 63 && k != i+193) || (i == 63 && k != 192) {
			t.Fatalf("out of order key: %v", k)
		}
	}

	l.Purge()
	if l.Len() != 0 {
		t.Fatalf("bad len: %v", l.Len())
	}
	if _, ok := l.Get(200); ok {
		t.Fatalf("should contain nothing")
	}
}

func TestLRU_GetOldest_RemoveOldest(t *testing.T) {
	l, err := NewLRU[int, int](128, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for i := 0; i < 256; i++ {
		l.Add(i, i)
	}
	k, _, ok := l.GetOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 128 {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 128 {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 129 {
		t.Fatalf("bad: %v", k)
	}
}

// Test that Add returns true/false if an eviction occurred
func TestLRU_Add(t *testing.T) {
	evictCounter := 0
	onEvicted := func(k int, v int) {
		evictCounter++
	}

	l, err := NewLRU(1, onEvicted)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if l.Add(1, 1) == true || evictCounter != 0 {
		t.Errorf("should not have an eviction")
	}
	if l.Add(2, 2) == false || evictCounter != 1 {
		t.Errorf("should have an eviction")
	}
}

// Test that Contains doesn't update recent-ness
func TestLRU_Contains(t *testing.T) {
	l, err := NewLRU[int, int](2, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	l.Add(1, 1)
	l.Add(2, 2)
	if !l.Contains(1) {
		t.Errorf("1 should be contained")
	}

	l.Add(3, 3)
	if l.Contains(1) {
		t.Errorf("Contains should not have updated recent-ness of 1")
	}
}

// Test that Peek doesn't update recent-ness
func TestLRU_Peek(t *testing.T) {
	l, err := NewLRU[int, int](2, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	l.Add(1, 1)
	l.Add(2, 2)
	if v, ok := l.Peek(1); !ok || v != 1 {
		t.Errorf("1 should be set to 1: %v, %v", v, ok)
	}

	l.Add(3, 3)
	if l.Contains(1) {
		t.Errorf("should not have updated recent-ness of 1")
	}
}

func (c *LRU[K, V]) wantKeys(t *testing.T, want []K) {
	t.Helper()
	got := c.Keys()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrong keys got: %v, want: %v ", got, want)
	}
}

func TestCache_EvictionSameKey(t *testing.T) {
	var evictedKeys []int

	cache, _ := NewLRU(
		2,
		func(key int, _ struct{}) {
			evictedKeys = append(evictedKeys, key)
		})

	if evicted := cache.Add(1, struct{}{}); evicted {
		t.Error("First 1: got unexpected eviction")
	}
	cache.wantKeys(t, []int{1})

	if evicted := cache.Add(2, struct{}{}); evicted {
		t.Error("2: got unexpected eviction")
	}
	cache.wantKeys(t, []int{1, 2})

	if evicted := cache.Add(1, struct{}{}); evicted {
		t.Error("Second 1: got unexpected eviction")
	}
	cache.wantKeys(t, []int{2, 1})

	if evicted := cache.Add(3, struct{}{}); !evicted {
		t.Error("3: did not get expected eviction")
	}
	cache.wantKeys(t, []int{1, 3})

	want := []int{2}
	if !reflect.DeepEqual(evictedKeys, want) {
		t.Errorf("evictedKeys got: %v want: %v", evictedKeys, want)
	}
}

func TestLRU_NonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewLRU[int, int](size, nil); err == nil {
			t.Fatalf("size %d should be rejected", size)
		}
	}
}

// Test that a Get refreshes recency so the untouched key is evicted
func TestLRU_GetRefreshesRecency(t *testing.T) {
	l, err := NewLRU[int, string](2, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	l.Add(1, "a")
	l.Add(2, "b")
	if v, ok := l.Get(1); !ok || v != "a" {
		t.Fatalf("bad get: %v, %v", v, ok)
	}
	if evicted := l.Add(3, "c"); !evicted {
		t.Fatalf("should have an eviction")
	}

	if l.Contains(2) {
		t.Errorf("2 should have been evicted")
	}
	if !l.Contains(1) || !l.Contains(3) {
		t.Errorf("1 and 3 should remain: %v", l.Keys())
	}
	l.wantKeys(t, []int{1, 3})
}

// Test that capacity+1 distinct inserts evict exactly the first key
func TestLRU_EvictsFirstInserted(t *testing.T) {
	const capacity = 16
	var evictedKeys []int
	l, err := NewLRU(capacity, func(k int, _ int) {
		evictedKeys = append(evictedKeys, k)
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for i := 0; i <= capacity; i++ {
		l.Add(i, i*10)
	}
	if l.Len() != capacity {
		t.Fatalf("bad len: %v", l.Len())
	}
	if !reflect.DeepEqual(evictedKeys, []int{0}) {
		t.Fatalf("bad evicted keys: %v", evictedKeys)
	}
	if l.Cap() != capacity {
		t.Fatalf("bad cap: %v", l.Cap())
	}
}

// Test that overwriting an existing key never evicts and keeps one entry
func TestLRU_Overwrite(t *testing.T) {
	l, err := NewLRU[string, int](2, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	l.Add("a", 1)
	l.Add("b", 2)
	if evicted := l.Add("a", 3); evicted {
		t.Fatalf("overwrite should not evict")
	}
	if l.Len() != 2 {
		t.Fatalf("bad len: %v", l.Len())
	}
	if v, ok := l.Peek("a"); !ok || v != 3 {
		t.Fatalf("bad value: %v, %v", v, ok)
	}
	l.wantKeys(t, []string{"b", "a"})
}

// Test that Purge reports every entry and leaves a usable cache
func TestLRU_Purge(t *testing.T) {
	purged := map[int]int{}
	l, err := NewLRU(4, func(k int, v int) {
		purged[k] = v
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for i := 0; i < 4; i++ {
		l.Add(i, i+100)
	}
	l.Purge()

	if l.Len() != 0 {
		t.Fatalf("bad len: %v", l.Len())
	}
	if len(purged) != 4 {
		t.Fatalf("bad purge count: %v", len(purged))
	}
	for i := 0; i < 4; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("%d should be gone", i)
		}
	}
	if k, _, ok := l.GetOldest(); ok {
		t.Fatalf("empty cache has oldest: %v", k)
	}

	l.Add(7, 7)
	l.wantKeys(t, []int{7})
}
