package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/venkatsvpr/golang-memo/internal/bench"
	"github.com/venkatsvpr/golang-memo/internal/config"
	"github.com/venkatsvpr/golang-memo/workload"
)

func newRangeSumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rangesum",
		Short: "Time range-sum queries with interleaved updates",
		Long: `Generate a random array and a random mix of range-sum and update
queries, then replay the queries without a cache and through each backend.

Examples:
  memobench rangesum
  memobench rangesum --size 10000 --queries 5000 --cache-size 100 --backends lru`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(a.runRangeSum)
		},
	}

	d := config.DefaultConfig().RangeSum
	flags := cmd.Flags()
	flags.Int("size", d.Size, "array length")
	flags.Int("queries", d.Queries, "number of queries")
	flags.Float64("update-ratio", d.UpdateRatio, "fraction of queries that update the array")
	flags.Int("max-value", d.MaxValue, "largest generated element value")
	flags.Int("cache-size", d.CacheSize, "LRU capacity")
	flags.StringSlice("backends", d.Backends, "backends to compare")
	bindFlags(a.v, flags, map[string]string{
		"rangesum.size":         "size",
		"rangesum.queries":      "queries",
		"rangesum.update_ratio": "update-ratio",
		"rangesum.max_value":    "max-value",
		"rangesum.cache_size":   "cache-size",
		"rangesum.backends":     "backends",
	})
	return cmd
}

func (a *app) runRangeSum() error {
	cfg := a.cfg.RangeSum
	r := rand.New(rand.NewSource(a.cfg.Seed))
	values := workload.RandomArray(r, cfg.Size, cfg.MaxValue)
	queries := workload.GenerateQueries(r, cfg.Size, cfg.Queries, cfg.UpdateRatio, cfg.MaxValue)

	a.log.Info().
		Int("size", cfg.Size).
		Int("queries", cfg.Queries).
		Int("cache_size", cfg.CacheSize).
		Strs("backends", cfg.Backends).
		Msg("running range-sum workload")

	results, err := bench.RunRangeSum(bench.RangeSumOptions{
		Values:    values,
		Queries:   queries,
		CacheSize: cfg.CacheSize,
		Kinds:     config.Kinds(cfg.Backends),
		Metrics:   a.metricsFor,
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		a.log.Debug().
			Str("run", res.Name).
			Dur("elapsed", res.Duration).
			Uint64("hits", res.Stats.Hits).
			Uint64("misses", res.Stats.Misses).
			Msg("range-sum run finished")
	}
	return bench.RenderRangeSum(a.out, results)
}
