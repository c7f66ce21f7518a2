// Package bench times the workloads with and without memoization and
// renders the comparison.
package bench

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	memo "github.com/venkatsvpr/golang-memo"
	"github.com/venkatsvpr/golang-memo/workload"
)

// ErrMismatch is returned when a memoized run disagrees with the direct one.
var ErrMismatch = errors.New("memoized result differs from direct computation")

// NoCache labels the run without memoization.
const NoCache = "no cache"

// MetricsFunc returns the metrics sink for one workload and backend.
type MetricsFunc func(workload string, kind memo.Kind) memo.Metrics

func metricsOption(f MetricsFunc, name string, kind memo.Kind) []memo.Option {
	if f == nil {
		return nil
	}
	return []memo.Option{memo.WithMetrics(f(name, kind))}
}

// Result is one timed run of the range-sum workload.
type Result struct {
	Name     string
	Duration time.Duration
	Checksum int
	Stats    memo.Stats
}

// RangeSumOptions describes a range-sum comparison.
type RangeSumOptions struct {
	Values    []int
	Queries   []workload.Query
	CacheSize int
	Kinds     []memo.Kind
	Metrics   MetricsFunc
}

// RunRangeSum replays the same queries without a cache and then through
// each backend, each run starting from its own copy of Values.
func RunRangeSum(opts RangeSumOptions) ([]Result, error) {
	results := make([]Result, 0, len(opts.Kinds)+1)

	values := append([]int(nil), opts.Values...)
	start := time.Now()
	checksum, err := workload.ApplyQueriesDirect(values, opts.Queries)
	if err != nil {
		return nil, err
	}
	results = append(results, Result{Name: NoCache, Duration: time.Since(start), Checksum: checksum})

	for _, kind := range opts.Kinds {
		b, err := memo.NewBackendFunc[workload.Span, int](kind, opts.CacheSize, workload.CompareSpans)
		if err != nil {
			return nil, err
		}
		rs := workload.NewRangeSum(opts.Values, b, metricsOption(opts.Metrics, "rangesum", kind)...)

		start := time.Now()
		got, err := workload.ApplyQueries(rs, opts.Queries)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		if got != checksum {
			return nil, fmt.Errorf("%w: %s checksum %d, want %d", ErrMismatch, kind, got, checksum)
		}
		results = append(results, Result{Name: kind.String(), Duration: elapsed, Checksum: got, Stats: rs.Stats()})
	}
	return results, nil
}

// FibonacciOptions describes a Fibonacci sweep.
type FibonacciOptions struct {
	MaxN      int
	Step      int
	Repeat    int
	CacheSize int
	Kinds     []memo.Kind
	Metrics   MetricsFunc
}

// FibPoint holds the mean time per backend to compute one Fibonacci number.
type FibPoint struct {
	N     int
	Means map[memo.Kind]time.Duration
}

// FibonacciSweep computes fib(n) for n = 0, Step, 2*Step, ... up to MaxN,
// Repeat times each, with one memo per backend kept across the whole sweep.
func FibonacciSweep(opts FibonacciOptions) ([]FibPoint, error) {
	if opts.Step < 1 || opts.Repeat < 1 {
		return nil, fmt.Errorf("step and repeat must be positive, got %d and %d", opts.Step, opts.Repeat)
	}

	fibs := make(map[memo.Kind]*workload.Fibonacci, len(opts.Kinds))
	for _, kind := range opts.Kinds {
		b, err := memo.NewBackend[int, *big.Int](kind, opts.CacheSize)
		if err != nil {
			return nil, err
		}
		fibs[kind] = workload.NewFibonacci(b, metricsOption(opts.Metrics, "fibonacci", kind)...)
	}

	var points []FibPoint
	for n := 0; n <= opts.MaxN; n += opts.Step {
		want, err := workload.FibIterative(n)
		if err != nil {
			return nil, err
		}
		p := FibPoint{N: n, Means: make(map[memo.Kind]time.Duration, len(opts.Kinds))}
		for _, kind := range opts.Kinds {
			var total time.Duration
			for i := 0; i < opts.Repeat; i++ {
				start := time.Now()
				got, err := fibs[kind].Fib(n)
				total += time.Since(start)
				if err != nil {
					return nil, err
				}
				if got.Cmp(want) != 0 {
					return nil, fmt.Errorf("%w: %s fib(%d)", ErrMismatch, kind, n)
				}
			}
			p.Means[kind] = total / time.Duration(opts.Repeat)
		}
		points = append(points, p)
	}
	return points, nil
}
