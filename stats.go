package memo

// Stats counts what a Memo has done since it was created or last reset.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Evictions     uint64
	Invalidations uint64
}

// HitRate returns hits as a fraction of lookups, or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Metrics receives Memo events, for example to export them.
type Metrics interface {
	// Hit is called when a result is served from the backend.
	Hit()

	// Miss is called when the function has to be invoked.
	Miss()

	// Eviction is called when storing a result pushed another one out.
	Eviction()

	// Invalidate is called when the backend is purged.
	Invalidate()
}

// NoopMetrics ignores every event.
type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Eviction()   {}
func (NoopMetrics) Invalidate() {}
