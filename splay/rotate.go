package splay

// splay brings key, or the last node on its search path when key is
// absent, to the root of the subtree n and returns the new subtree root.
func (t *Tree[K, V]) splay(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	c := t.compare(key, n.key)
	if c == 0 {
		return n
	}

	if c < 0 {
		if n.left == nil {
			return n
		}
		switch cl := t.compare(key, n.left.key); {
		case cl < 0:
			// zig-zig
			n.left.left = t.splay(n.left.left, key)
			n = rotateRight(n)
		case cl > 0:
			// zig-zag
			n.left.right = t.splay(n.left.right, key)
			if n.left.right != nil {
				n.left = rotateLeft(n.left)
			}
		}
		if n.left == nil {
			return n
		}
		return rotateRight(n)
	}

	if n.right == nil {
		return n
	}
	switch cr := t.compare(key, n.right.key); {
	case cr > 0:
		// zag-zag
		n.right.right = t.splay(n.right.right, key)
		n = rotateLeft(n)
	case cr < 0:
		// zag-zig
		n.right.left = t.splay(n.right.left, key)
		if n.right.left != nil {
			n.right = rotateRight(n.right)
		}
	}
	if n.right == nil {
		return n
	}
	return rotateLeft(n)
}

// rotateLeft promotes n.right into n's place.
func rotateLeft[K any, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

// rotateRight promotes n.left into n's place.
func rotateRight[K any, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}
