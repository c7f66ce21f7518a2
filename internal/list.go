// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package internal holds the recency list shared by the LRU cache.
package internal

// Entry is an element of the recency list.
type Entry[K comparable, V any] struct {
	// Next and previous pointers in the doubly-linked list of elements.
	// The list is kept as a ring with a sentinel root, so root.prev is the
	// back of the list and root.next is the front.
	next, prev *Entry[K, V]

	// The list to which this element belongs.
	list *RecencyList[K, V]

	// The key and value of this element.
	Key   K
	Value V
}

// PrevEntry returns the previous list element or nil.
func (e *Entry[K, V]) PrevEntry() *Entry[K, V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// NextEntry returns the next list element or nil.
func (e *Entry[K, V]) NextEntry() *Entry[K, V] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// RecencyList is a doubly linked list ordered from most recently used
// (front) to least recently used (back).
type RecencyList[K comparable, V any] struct {
	root Entry[K, V] // sentinel list element, only &root, root.prev, and root.next are used
	len  int         // current list length excluding (this) sentinel element
}

// Init initializes or clears list l.
func (l *RecencyList[K, V]) Init() *RecencyList[K, V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// NewList returns an initialized list.
func NewList[K comparable, V any]() *RecencyList[K, V] { return new(RecencyList[K, V]).Init() }

// Length returns the number of elements of list l.
func (l *RecencyList[K, V]) Length() int { return l.len }

// Back returns the last element of list l or nil if the list is empty.
func (l *RecencyList[K, V]) Back() *Entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Front returns the first element of list l or nil if the list is empty.
func (l *RecencyList[K, V]) Front() *Entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// lazyInit lazily initializes a zero List value.
func (l *RecencyList[K, V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// insert inserts e after at, increments l.len, and returns e.
func (l *RecencyList[K, V]) insert(e, at *Entry[K, V]) *Entry[K, V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// PushFront inserts a new element e with value v at the front of list l and returns e.
func (l *RecencyList[K, V]) PushFront(k K, v V) *Entry[K, V] {
	l.lazyInit()
	return l.insert(&Entry[K, V]{Key: k, Value: v}, &l.root)
}

// Remove removes e from its list, decrements l.len
func (l *RecencyList[K, V]) Remove(e *Entry[K, V]) V {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil // avoid memory leaks
	e.prev = nil // avoid memory leaks
	e.list = nil
	l.len--

	return e.Value
}

// move moves e to next to at.
func (l *RecencyList[K, V]) move(e, at *Entry[K, V]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// MoveToFront moves element e to the front of list l.
// If e is not an element of l, the list is not modified.
// The element must not be nil.
func (l *RecencyList[K, V]) MoveToFront(e *Entry[K, V]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.move(e, &l.root)
}
