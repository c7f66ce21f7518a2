// Package memo memoizes expensive, repeatable computations on top of one of
// two interchangeable cache backends.
//
// The LRU backend is a fixed capacity recency cache from the simplelru
// package. It has O(1) access and evicts the least recently used entry
// once the capacity is reached.
//
// The splay backend is a self-adjusting binary search tree from the splay
// package. It is unbounded, needs an ordering on keys and moves every
// accessed key to the root, giving amortized O(log n) access.
//
// A Memo consults its backend before calling the wrapped function and
// stores every computed result. Invalidate discards everything the backend
// holds; callers invoke it whenever an input the function depends on
// changes.
//
// Nothing in this package takes locks. A Memo and its backend must be used
// from a single goroutine at a time.
package memo
