package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memo "github.com/venkatsvpr/golang-memo"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []memo.Kind{memo.KindLRU, memo.KindSplay}, Kinds(cfg.RangeSum.Backends))
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
rangesum:
  size: 10
  queries: 20
  backends: [splay]
fibonacci:
  max_n: 100
`), 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.RangeSum.Size)
	assert.Equal(t, 20, cfg.RangeSum.Queries)
	assert.Equal(t, []string{"splay"}, cfg.RangeSum.Backends)
	assert.Equal(t, 1000, cfg.RangeSum.CacheSize)
	assert.Equal(t, 100, cfg.Fibonacci.MaxN)
	assert.Equal(t, 50, cfg.Fibonacci.Step)

	lc := cfg.Logging()
	assert.Equal(t, zerolog.DebugLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MEMOBENCH_RANGESUM_CACHE_SIZE", "7")
	t.Setenv("MEMOBENCH_SEED", "42")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RangeSum.CacheSize)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.RangeSum.CacheSize = 0
	cfg.RangeSum.UpdateRatio = 1.5
	cfg.Fibonacci.Backends = []string{"arc"}
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rangesum.cache_size")
	assert.Contains(t, err.Error(), "rangesum.update_ratio")
	assert.ErrorIs(t, err, memo.ErrUnknownKind)
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate_FibonacciCacheSize(t *testing.T) {
	for _, size := range []int{0, 1, 2} {
		cfg := DefaultConfig()
		cfg.Fibonacci.CacheSize = size
		err := cfg.Validate()
		require.Error(t, err, "size %d", size)
		assert.Contains(t, err.Error(), "fibonacci.cache_size")
	}

	cfg := DefaultConfig()
	cfg.Fibonacci.CacheSize = MinFibonacciCacheSize
	assert.NoError(t, cfg.Validate())
}
