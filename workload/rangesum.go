package workload

import (
	"errors"
	"fmt"

	memo "github.com/venkatsvpr/golang-memo"
)

// ErrRange is returned for indices outside the array or an inverted range.
var ErrRange = errors.New("index out of range")

// Span is an inclusive [First, Second] index range.
type Span = memo.Pair[int, int]

// CompareSpans orders spans by start, then by end.
func CompareSpans(a, b Span) int {
	return memo.ComparePair(a, b)
}

// RangeSum answers inclusive range sums over an array it owns, memoizing
// each answered range until the next update.
type RangeSum struct {
	values []int
	memo   *memo.Memo[Span, int]
}

// NewRangeSum copies values and memoizes range sums in backend.
func NewRangeSum(values []int, backend memo.Backend[Span, int], opts ...memo.Option) *RangeSum {
	rs := &RangeSum{values: append([]int(nil), values...)}
	rs.memo = memo.New(backend, rs.sum, opts...)
	return rs
}

func (rs *RangeSum) sum(s Span) int {
	return sumRange(rs.values, s.First, s.Second)
}

func sumRange(values []int, l, r int) int {
	total := 0
	for _, v := range values[l : r+1] {
		total += v
	}
	return total
}

func checkSpan(n, l, r int) error {
	if l < 0 || r >= n || l > r {
		return fmt.Errorf("%w: [%d, %d] of %d", ErrRange, l, r, n)
	}
	return nil
}

// Sum returns values[l] + ... + values[r].
func (rs *RangeSum) Sum(l, r int) (int, error) {
	if err := checkSpan(len(rs.values), l, r); err != nil {
		return 0, err
	}
	return rs.memo.Call(memo.MakePair(l, r)), nil
}

// Update sets values[i] to v and drops every memoized sum, since any of
// them may cover i.
func (rs *RangeSum) Update(i, v int) error {
	if i < 0 || i >= len(rs.values) {
		return fmt.Errorf("%w: %d of %d", ErrRange, i, len(rs.values))
	}
	rs.values[i] = v
	rs.memo.Invalidate()
	return nil
}

// Len returns the array length.
func (rs *RangeSum) Len() int {
	return len(rs.values)
}

// Stats returns the memo counters.
func (rs *RangeSum) Stats() memo.Stats {
	return rs.memo.Stats()
}

// SumDirect computes a range sum over values without any caching.
func SumDirect(values []int, l, r int) (int, error) {
	if err := checkSpan(len(values), l, r); err != nil {
		return 0, err
	}
	return sumRange(values, l, r), nil
}

// UpdateDirect sets values[i] to v.
func UpdateDirect(values []int, i, v int) error {
	if i < 0 || i >= len(values) {
		return fmt.Errorf("%w: %d of %d", ErrRange, i, len(values))
	}
	values[i] = v
	return nil
}
