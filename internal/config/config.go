// Package config loads memobench settings from defaults, an optional config
// file, MEMOBENCH_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	memo "github.com/venkatsvpr/golang-memo"
	"github.com/venkatsvpr/golang-memo/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. MEMOBENCH_RANGESUM_SIZE.
const EnvPrefix = "MEMOBENCH"

// MinFibonacciCacheSize is the smallest LRU that keeps memoized Fibonacci linear.
const MinFibonacciCacheSize = 3

// Config is the full memobench configuration.
type Config struct {
	Log         LogConfig       `mapstructure:"log"`
	MetricsAddr string          `mapstructure:"metrics_addr"`
	Seed        int64           `mapstructure:"seed"`
	RangeSum    RangeSumConfig  `mapstructure:"rangesum"`
	Fibonacci   FibonacciConfig `mapstructure:"fibonacci"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RangeSumConfig sizes the range-sum workload.
type RangeSumConfig struct {
	Size        int      `mapstructure:"size"`
	Queries     int      `mapstructure:"queries"`
	UpdateRatio float64  `mapstructure:"update_ratio"`
	MaxValue    int      `mapstructure:"max_value"`
	CacheSize   int      `mapstructure:"cache_size"`
	Backends    []string `mapstructure:"backends"`
}

// FibonacciConfig sizes the Fibonacci sweep.
type FibonacciConfig struct {
	MaxN      int      `mapstructure:"max_n"`
	Step      int      `mapstructure:"step"`
	Repeat    int      `mapstructure:"repeat"`
	CacheSize int      `mapstructure:"cache_size"`
	Backends  []string `mapstructure:"backends"`
}

// DefaultConfig returns the settings of the reference experiments.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Seed: 1,
		RangeSum: RangeSumConfig{
			Size:        100_000,
			Queries:     50_000,
			UpdateRatio: 0.5,
			MaxValue:    1000,
			CacheSize:   1000,
			Backends:    []string{string(memo.KindLRU), string(memo.KindSplay)},
		},
		Fibonacci: FibonacciConfig{
			MaxN:      950,
			Step:      50,
			Repeat:    5,
			CacheSize: 4096,
			Backends:  []string{string(memo.KindLRU), string(memo.KindSplay)},
		},
	}
}

// NewViper returns a viper instance carrying the defaults and environment
// binding. Flags are bound on it by the caller before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics_addr", d.MetricsAddr)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("rangesum.size", d.RangeSum.Size)
	v.SetDefault("rangesum.queries", d.RangeSum.Queries)
	v.SetDefault("rangesum.update_ratio", d.RangeSum.UpdateRatio)
	v.SetDefault("rangesum.max_value", d.RangeSum.MaxValue)
	v.SetDefault("rangesum.cache_size", d.RangeSum.CacheSize)
	v.SetDefault("rangesum.backends", d.RangeSum.Backends)

	v.SetDefault("fibonacci.max_n", d.Fibonacci.MaxN)
	v.SetDefault("fibonacci.step", d.Fibonacci.Step)
	v.SetDefault("fibonacci.repeat", d.Fibonacci.Repeat)
	v.SetDefault("fibonacci.cache_size", d.Fibonacci.CacheSize)
	v.SetDefault("fibonacci.backends", d.Fibonacci.Backends)
}

// Load reads path (or memobench.{yaml,toml,json} from the working
// directory when path is empty) into v and returns the validated result.
// A missing default config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("memobench")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", v.ConfigFileUsed(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the workloads cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}

	rs := c.RangeSum
	if rs.Size < 2 {
		errs = append(errs, fmt.Errorf("rangesum.size must be at least 2, got %d", rs.Size))
	}
	if rs.Queries < 0 {
		errs = append(errs, fmt.Errorf("rangesum.queries must not be negative, got %d", rs.Queries))
	}
	if rs.UpdateRatio < 0 || rs.UpdateRatio > 1 {
		errs = append(errs, fmt.Errorf("rangesum.update_ratio must be within [0, 1], got %v", rs.UpdateRatio))
	}
	if rs.MaxValue < 1 {
		errs = append(errs, fmt.Errorf("rangesum.max_value must be positive, got %d", rs.MaxValue))
	}
	if rs.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("rangesum.cache_size must be positive, got %d", rs.CacheSize))
	}
	errs = append(errs, validateBackends("rangesum.backends", rs.Backends)...)

	fib := c.Fibonacci
	if fib.MaxN < 0 {
		errs = append(errs, fmt.Errorf("fibonacci.max_n must not be negative, got %d", fib.MaxN))
	}
	if fib.Step < 1 {
		errs = append(errs, fmt.Errorf("fibonacci.step must be positive, got %d", fib.Step))
	}
	if fib.Repeat < 1 {
		errs = append(errs, fmt.Errorf("fibonacci.repeat must be positive, got %d", fib.Repeat))
	}
	// The recursion holds n-1 and n-2 while computing n; fewer slots thrash.
	if fib.CacheSize < MinFibonacciCacheSize {
		errs = append(errs, fmt.Errorf("fibonacci.cache_size must be at least %d, got %d", MinFibonacciCacheSize, fib.CacheSize))
	}
	errs = append(errs, validateBackends("fibonacci.backends", fib.Backends)...)

	return errors.Join(errs...)
}

func validateBackends(key string, names []string) []error {
	if len(names) == 0 {
		return []error{fmt.Errorf("%s must name at least one backend", key)}
	}
	var errs []error
	for _, name := range names {
		if _, err := memo.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errs
}

// Kinds parses backend names already checked by Validate.
func Kinds(names []string) []memo.Kind {
	kinds := make([]memo.Kind, 0, len(names))
	for _, name := range names {
		if k, err := memo.ParseKind(name); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.Log.Format
	return cfg
}
