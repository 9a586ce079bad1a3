package config

import (
	"testing"
	"time"

	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1_000_000, cfg.NumKeys)
	assert.Equal(t, keygen.Distributions(), cfg.DistributionList())
	assert.Equal(t, []table.Typ{table.HashMap, table.OpenAddr, table.BTree, table.Bloom}, cfg.TableList())
	assert.Equal(t, []float64{1.0, 0.5, 0.0}, cfg.MatchingRates)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KEYBENCH_NUM_KEYS", "1024")
	t.Setenv("KEYBENCH_DISTRIBUTIONS", "UNIQUE,SAME")
	t.Setenv("KEYBENCH_TABLES", "hwt_btree")
	t.Setenv("KEYBENCH_MATCHING_RATES", "0.25")
	t.Setenv("KEYBENCH_TTL", "30s")
	t.Setenv("KEYBENCH_SEED", "77")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.NumKeys)
	assert.Equal(t, []keygen.Distribution{keygen.UNIQUE, keygen.SAME}, cfg.DistributionList())
	assert.Equal(t, []table.Typ{table.HWTBTree}, cfg.TableList())
	assert.Equal(t, []float64{0.25}, cfg.MatchingRates)
	assert.Equal(t, uint64(77), cfg.Seed)

	opts := cfg.TableOptions()
	assert.Equal(t, 1024, opts.Capacity)
	assert.Equal(t, 30*time.Second, opts.TTL)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("KEYBENCH_NUM_KEYS", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("KEYBENCH_DISTRIBUTIONS", "GAUSSIAN,BOGUS")
	t.Setenv("KEYBENCH_TABLES", "skiplist")
	t.Setenv("KEYBENCH_MATCHING_RATES", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown distribution "BOGUS"`)
	assert.Contains(t, err.Error(), `unknown table "skiplist"`)
	assert.Contains(t, err.Error(), "matching rate must be in [0,1]")
}
