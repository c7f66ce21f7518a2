// Package splay provides a self-adjusting binary search tree used as a
// key/value cache. Every Search and Insert splays the accessed key to the
// root, so recently used keys stay cheap to reach and any sequence of
// operations costs amortized O(log n) each. A single operation can still
// cost O(n), for example after inserting keys in ascending order.
//
// Tree is not safe for concurrent use. Lookups restructure the tree, so
// even concurrent readers need a single lock around the whole tree.
package splay

import "cmp"

// node is a tree node. Each node owns its left and right subtrees.
type node[K any, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// Tree is a splay tree keyed by K under a total order.
type Tree[K any, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int
	size    int
}

// New creates an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal
// to or greater than b.
func New[K any, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("splay: nil compare function")
	}
	return &Tree[K, V]{compare: compare}
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Insert stores value under key. An existing key is overwritten in place;
// otherwise the new key becomes the root.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++
		return
	}

	t.root = t.splay(t.root, key)
	c := t.compare(key, t.root.key)
	if c == 0 {
		t.root.value = value
		return
	}

	// After the splay every key below the root on one side is on the same
	// side of key, so the old root splits cleanly around the new node.
	n := &node[K, V]{key: key, value: value}
	if c < 0 {
		n.right = t.root
		n.left = t.root.left
		t.root.left = nil
	} else {
		n.left = t.root
		n.right = t.root.right
		t.root.right = nil
	}
	t.root = n
	t.size++
}

// Search looks up key, splaying the tree toward it whether or not it is
// present. A miss returns the zero value and false.
func (t *Tree[K, V]) Search(key K) (value V, ok bool) {
	t.root = t.splay(t.root, key)
	if t.root != nil && t.compare(key, t.root.key) == 0 {
		return t.root.value, true
	}
	return
}

// Delete removes key from the tree, returning whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	if t.root == nil {
		return false
	}
	t.root = t.splay(t.root, key)
	if t.compare(key, t.root.key) != 0 {
		return false
	}

	left, right := t.root.left, t.root.right
	if right == nil {
		t.root = left
	} else {
		// Every key in right is greater than key, so splaying for key brings
		// the minimum of right to its root, which then has no left child.
		right = t.splay(right, key)
		right.left = left
		t.root = right
	}
	t.size--
	return true
}

// Contains reports whether key is present without restructuring the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Peek returns the value stored under key without restructuring the tree.
func (t *Tree[K, V]) Peek(key K) (value V, ok bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	return
}

// RootKey returns the key currently at the root.
func (t *Tree[K, V]) RootKey() (key K, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.key, true
}

// Min returns the smallest key and its value without restructuring.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the largest key and its value without restructuring.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Keys returns the keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.walk(func(n *node[K, V]) { keys = append(keys, n.key) })
	return keys
}

// Values returns the values in ascending key order.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	t.walk(func(n *node[K, V]) { values = append(values, n.value) })
	return values
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Tree[K, V]) Height() int {
	type level struct {
		n     *node[K, V]
		depth int
	}
	height := 0
	stack := []level{}
	if t.root != nil {
		stack = append(stack, level{t.root, 1})
	}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.depth > height {
			height = l.depth
		}
		if l.n.left != nil {
			stack = append(stack, level{l.n.left, l.depth + 1})
		}
		if l.n.right != nil {
			stack = append(stack, level{l.n.right, l.depth + 1})
		}
	}
	return height
}

// Purge removes every key.
func (t *Tree[K, V]) Purge() {
	t.root = nil
	t.size = 0
}

// find is a plain BST lookup.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// walk visits nodes in order. It is iterative because a degenerate tree
// can be as deep as it is large.
func (t *Tree[K, V]) walk(visit func(*node[K, V])) {
	var stack []*node[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		n = n.right
	}
}
