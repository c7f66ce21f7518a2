package workload

import (
	"fmt"
	"math/rand"
)

// Op is a query kind.
type Op int

const (
	// OpRange asks for the sum of [A, B].
	OpRange Op = iota
	// OpUpdate sets element A to B.
	OpUpdate
)

func (o Op) String() string {
	switch o {
	case OpRange:
		return "range"
	case OpUpdate:
		return "update"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Query is one step of a range-sum workload.
type Query struct {
	Op   Op
	A, B int
}

// RandomArray returns n values in [1, maxValue].
func RandomArray(r *rand.Rand, n, maxValue int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = 1 + r.Intn(maxValue)
	}
	return values
}

// GenerateQueries returns count queries over an array of length n. Each is
// an update with probability updateRatio; range queries use two distinct
// indices in increasing order and updates write a value in [1, maxValue].
func GenerateQueries(r *rand.Rand, n, count int, updateRatio float64, maxValue int) []Query {
	if n < 2 {
		panic("workload: need at least two elements for range queries")
	}
	queries := make([]Query, count)
	for i := range queries {
		if r.Float64() < updateRatio {
			queries[i] = Query{Op: OpUpdate, A: r.Intn(n), B: 1 + r.Intn(maxValue)}
			continue
		}
		l := r.Intn(n)
		h := r.Intn(n - 1)
		if h >= l {
			h++
		} else {
			l, h = h, l
		}
		queries[i] = Query{Op: OpRange, A: l, B: h}
	}
	return queries
}

// ApplyQueries runs queries against rs and returns the sum of all range
// results, so runs against different backends can be compared.
func ApplyQueries(rs *RangeSum, queries []Query) (checksum int, err error) {
	for _, q := range queries {
		switch q.Op {
		case OpRange:
			s, err := rs.Sum(q.A, q.B)
			if err != nil {
				return 0, err
			}
			checksum += s
		case OpUpdate:
			if err := rs.Update(q.A, q.B); err != nil {
				return 0, err
			}
		}
	}
	return checksum, nil
}

// ApplyQueriesDirect is ApplyQueries without a cache. values is modified.
func ApplyQueriesDirect(values []int, queries []Query) (checksum int, err error) {
	for _, q := range queries {
		switch q.Op {
		case OpRange:
			s, err := SumDirect(values, q.A, q.B)
			if err != nil {
				return 0, err
			}
			checksum += s
		case OpUpdate:
			if err := UpdateDirect(values, q.A, q.B); err != nil {
				return 0, err
			}
		}
	}
	return checksum, nil
}
