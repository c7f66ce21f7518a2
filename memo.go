package memo

// Option configures a Memo.
type Option func(*options)

type options struct {
	metrics Metrics
}

// WithMetrics reports hits, misses, evictions and invalidations to m.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// Memo caches the results of fn in a backend.
type Memo[K comparable, V any] struct {
	backend Backend[K, V]
	fn      func(key K) V
	metrics Metrics
	stats   Stats
}

// New wraps fn with the given backend. The Memo owns the backend from now
// on; it must not be shared with another Memo.
func New[K comparable, V any](backend Backend[K, V], fn func(key K) V, opts ...Option) *Memo[K, V] {
	if backend == nil {
		panic("memo: nil backend")
	}
	if fn == nil {
		panic("memo: nil function")
	}
	o := options{metrics: NoopMetrics{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Memo[K, V]{
		backend: backend,
		fn:      fn,
		metrics: o.metrics,
	}
}

// Call returns fn(key), from the backend when it holds the key and by
// calling fn and storing the result otherwise. fn may call Call
// recursively.
func (m *Memo[K, V]) Call(key K) V {
	if value, ok := m.backend.Get(key); ok {
		m.stats.Hits++
		m.metrics.Hit()
		return value
	}
	m.stats.Misses++
	m.metrics.Miss()

	value := m.fn(key)
	if m.backend.Add(key, value) {
		m.stats.Evictions++
		m.metrics.Eviction()
	}
	return value
}

// Invalidate discards every stored result. Call it whenever anything fn
// reads, other than its argument, changes.
func (m *Memo[K, V]) Invalidate() {
	m.backend.Purge()
	m.stats.Invalidations++
	m.metrics.Invalidate()
}

// Len returns the number of stored results.
func (m *Memo[K, V]) Len() int {
	return m.backend.Len()
}

// Stats returns the counters accumulated so far.
func (m *Memo[K, V]) Stats() Stats {
	return m.stats
}

// ResetStats zeroes the counters without touching stored results.
func (m *Memo[K, V]) ResetStats() {
	m.stats = Stats{}
}
