// Command memobench compares memoization backends on the range-sum and
// Fibonacci workloads.
package main

import "github.com/venkatsvpr/golang-memo/internal/cli"

func main() {
	cli.Execute()
}
