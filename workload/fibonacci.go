package workload

import (
	"errors"
	"math/big"

	memo "github.com/venkatsvpr/golang-memo"
)

// ErrNegative is returned for a negative Fibonacci index.
var ErrNegative = errors.New("negative fibonacci index")

// Fibonacci computes Fibonacci numbers with the naive recursion, memoized.
// The function is pure, so it never invalidates.
type Fibonacci struct {
	memo *memo.Memo[int, *big.Int]
}

// NewFibonacci memoizes Fibonacci numbers in backend.
func NewFibonacci(backend memo.Backend[int, *big.Int], opts ...memo.Option) *Fibonacci {
	f := &Fibonacci{}
	f.memo = memo.New(backend, f.compute, opts...)
	return f
}

func (f *Fibonacci) compute(n int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	return new(big.Int).Add(f.memo.Call(n-1), f.memo.Call(n-2))
}

// Fib returns the n-th Fibonacci number. The result is shared with the
// cache and must not be modified.
func (f *Fibonacci) Fib(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return f.memo.Call(n), nil
}

// Stats returns the memo counters.
func (f *Fibonacci) Stats() memo.Stats {
	return f.memo.Stats()
}

// FibIterative returns the n-th Fibonacci number in O(n) additions.
func FibIterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}
