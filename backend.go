package memo

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/venkatsvpr/golang-memo/simplelru"
	"github.com/venkatsvpr/golang-memo/splay"
)

// Backend is the storage a Memo consults before recomputing.
type Backend[K comparable, V any] interface {
	// Get returns the stored value for key. #value, isFound
	Get(key K) (value V, ok bool)

	// Add stores value under key, returning true if an eviction occurred.
	Add(key K, value V) (evicted bool)

	// Purge discards every stored entry.
	Purge()

	// Len returns the number of stored entries.
	Len() int
}

// Kind names a backend implementation.
type Kind string

const (
	// KindLRU is the bounded least recently used cache.
	KindLRU Kind = "lru"

	// KindSplay is the unbounded splay tree.
	KindSplay Kind = "splay"
)

// Kinds lists every supported backend kind.
var Kinds = []Kind{KindLRU, KindSplay}

// ErrUnknownKind is returned for a backend name that is not in Kinds.
var ErrUnknownKind = errors.New("unknown backend kind")

// ParseKind converts a backend name such as "LRU" or "splay" to a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// SplayBackend adapts a splay tree to Backend. It never evicts.
type SplayBackend[K comparable, V any] struct {
	*splay.Tree[K, V]
}

// Get searches the tree, splaying key (or its closest neighbour) to the root.
func (b *SplayBackend[K, V]) Get(key K) (V, bool) {
	return b.Search(key)
}

// Add inserts or overwrites key. It always returns false.
func (b *SplayBackend[K, V]) Add(key K, value V) bool {
	b.Insert(key, value)
	return false
}

var (
	_ Backend[int, int] = (*simplelru.LRU[int, int])(nil)
	_ Backend[int, int] = (*SplayBackend[int, int])(nil)
)

// NewLRUBackend creates a recency cache holding at most size entries.
func NewLRUBackend[K comparable, V any](size int) (*simplelru.LRU[K, V], error) {
	return simplelru.NewLRU[K, V](size, nil)
}

// NewSplayBackend creates a splay tree backend for naturally ordered keys.
func NewSplayBackend[K cmp.Ordered, V any]() *SplayBackend[K, V] {
	return &SplayBackend[K, V]{Tree: splay.NewOrdered[K, V]()}
}

// NewSplayBackendFunc creates a splay tree backend ordered by compare.
func NewSplayBackendFunc[K comparable, V any](compare func(a, b K) int) *SplayBackend[K, V] {
	return &SplayBackend[K, V]{Tree: splay.New[K, V](compare)}
}

// NewBackend creates a backend of the given kind for naturally ordered
// keys. size bounds the LRU backend and is ignored by the splay backend.
func NewBackend[K cmp.Ordered, V any](kind Kind, size int) (Backend[K, V], error) {
	return NewBackendFunc[K, V](kind, size, cmp.Compare[K])
}

// NewBackendFunc is like NewBackend for keys ordered by compare.
func NewBackendFunc[K comparable, V any](kind Kind, size int, compare func(a, b K) int) (Backend[K, V], error) {
	switch kind {
	case KindLRU:
		l, err := NewLRUBackend[K, V](size)
		if err != nil {
			return nil, fmt.Errorf("lru backend: %w", err)
		}
		return l, nil
	case KindSplay:
		if compare == nil {
			return nil, errors.New("splay backend: nil compare function")
		}
		return NewSplayBackendFunc[K, V](compare), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
