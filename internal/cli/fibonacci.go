package cli

import (
	"github.com/spf13/cobra"

	"github.com/venkatsvpr/golang-memo/internal/bench"
	"github.com/venkatsvpr/golang-memo/internal/config"
)

func newFibonacciCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fibonacci",
		Short: "Time memoized Fibonacci numbers across a sweep of n",
		Long: `Compute fib(n) for n = 0, step, 2*step, ... up to max-n with one memo per
backend kept for the whole sweep, and report the mean time per n.

Examples:
  memobench fibonacci
  memobench fibonacci --max-n 2000 --step 100 --repeat 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(a.runFibonacci)
		},
	}

	d := config.DefaultConfig().Fibonacci
	flags := cmd.Flags()
	flags.Int("max-n", d.MaxN, "largest n in the sweep")
	flags.Int("step", d.Step, "distance between consecutive n")
	flags.Int("repeat", d.Repeat, "timed repetitions per n")
	flags.Int("cache-size", d.CacheSize, "LRU capacity")
	flags.StringSlice("backends", d.Backends, "backends to compare")
	bindFlags(a.v, flags, map[string]string{
		"fibonacci.max_n":      "max-n",
		"fibonacci.step":       "step",
		"fibonacci.repeat":     "repeat",
		"fibonacci.cache_size": "cache-size",
		"fibonacci.backends":   "backends",
	})
	return cmd
}

func (a *app) runFibonacci() error {
	cfg := a.cfg.Fibonacci
	kinds := config.Kinds(cfg.Backends)

	a.log.Info().
		Int("max_n", cfg.MaxN).
		Int("step", cfg.Step).
		Int("repeat", cfg.Repeat).
		Strs("backends", cfg.Backends).
		Msg("running fibonacci sweep")

	points, err := bench.FibonacciSweep(bench.FibonacciOptions{
		MaxN:      cfg.MaxN,
		Step:      cfg.Step,
		Repeat:    cfg.Repeat,
		CacheSize: cfg.CacheSize,
		Kinds:     kinds,
		Metrics:   a.metricsFor,
	})
	if err != nil {
		return err
	}
	return bench.RenderFibonacci(a.out, kinds, points)
}
