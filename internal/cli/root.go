// Package cli provides the cobra commands of memobench.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	memo "github.com/venkatsvpr/golang-memo"
	"github.com/venkatsvpr/golang-memo/internal/config"
	"github.com/venkatsvpr/golang-memo/internal/logging"
	"github.com/venkatsvpr/golang-memo/metrics"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	log      zerolog.Logger
	out      io.Writer
	registry *prometheus.Registry
	vecs     *metrics.Vecs
	server   *metrics.Server
}

func (a *app) metricsFor(workload string, kind memo.Kind) memo.Metrics {
	return a.vecs.For(workload, kind)
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: config.NewViper(), out: out}
	var configPath string

	root := &cobra.Command{
		Use:   "memobench",
		Short: "Compare memoization backends on cache-friendly workloads",
		Long: `memobench times two workloads with and without memoization.

Backends:
  lru    bounded least recently used cache
  splay  self-adjusting binary search tree

Workloads:
  rangesum   range sums over an array with interleaved point updates;
             every update invalidates the whole cache
  fibonacci  naive Fibonacci recursion, memoized across a sweep of n`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.init(configPath)
		},
	}

	flags := root.PersistentFlags()
	d := config.DefaultConfig()
	flags.StringVar(&configPath, "config", "", "config file (default ./memobench.{yaml,toml,json})")
	flags.String("log-level", d.Log.Level, "log level: trace, debug, info, warn, error, disabled")
	flags.String("log-format", d.Log.Format, "log format: console or json")
	flags.String("metrics-addr", d.MetricsAddr, "serve Prometheus metrics on this address while running")
	flags.Int64("seed", d.Seed, "random seed for generated data")
	bindFlags(a.v, flags, map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"metrics_addr": "metrics-addr",
		"seed":         "seed",
	})

	root.AddCommand(newRangeSumCmd(a), newFibonacciCmd(a))
	return root
}

// Execute runs memobench and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init(configPath string) error {
	cfg, err := config.Load(a.v, configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("path", used).Msg("loaded config file")
	}

	a.registry = prometheus.NewRegistry()
	a.vecs = metrics.NewVecs(a.registry, "memobench")
	if cfg.MetricsAddr != "" {
		a.server = metrics.NewServer(cfg.MetricsAddr, a.registry)
		a.server.StartAsync(func(err error) {
			a.log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server failed")
		})
		a.log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}
	return nil
}

// run executes a workload and then stops the metrics server, also when the
// workload fails.
func (a *app) run(workload func() error) error {
	err := workload()
	return errors.Join(err, a.close())
}

func (a *app) close() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.server.Stop(ctx)
	a.server = nil
	if err != nil {
		return fmt.Errorf("stop metrics server: %w", err)
	}
	return nil
}
