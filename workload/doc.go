// Package workload drives memoized computations the way a benchmark would:
// range sums over an array that is updated between queries, and the
// Fibonacci recursion. Each workload owns its state and invalidates its
// Memo itself after every mutation.
package workload
