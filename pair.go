package memo

import "cmp"

// Pair is a composite key for two-argument functions.
type Pair[A, B cmp.Ordered] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B cmp.Ordered](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// ComparePair orders pairs by First, then by Second.
func ComparePair[A, B cmp.Ordered](x, y Pair[A, B]) int {
	if c := cmp.Compare(x.First, y.First); c != 0 {
		return c
	}
	return cmp.Compare(x.Second, y.Second)
}
