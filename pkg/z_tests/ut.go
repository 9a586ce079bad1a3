package tests

import (
	"testing"

	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type NewTable func(opts table.Options) table.ITable[int64]

// TestInsertContains UNIQUE keys are all found after insert.
func TestInsertContains(newTable NewTable, t *testing.T) {
	const n = 5000
	tbl := newTable(table.DefaultOptions(n))
	defer tbl.Close()

	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIQUE, keys))

	for _, k := range keys {
		tbl.Insert(k)
	}
	for _, k := range keys {
		assert.True(t, tbl.Contains(k), "for %d", k)
	}
}

// TestSentinelKeys 0 and 1 are ordinary keys for callers.
func TestSentinelKeys(newTable NewTable, t *testing.T) {
	tbl := newTable(table.DefaultOptions(16))
	defer tbl.Close()

	for _, k := range []int64{0, 1, 42, -1} {
		tbl.Insert(k)
	}
	for _, k := range []int64{0, 1, 42, -1} {
		assert.True(t, tbl.Contains(k), "for %d", k)
	}
}

// TestLen duplicates from UNIFORM collapse. Exact tables only.
func TestLen(newTable NewTable, t *testing.T) {
	const n = 4000
	tbl := newTable(table.DefaultOptions(n))
	defer tbl.Close()

	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIFORM, keys))

	distinct := make(map[int64]struct{})
	for _, k := range keys {
		tbl.Insert(k)
		distinct[k] = struct{}{}
	}
	assert.Equal(t, len(distinct), tbl.Len())

	empty := newTable(table.DefaultOptions(0))
	defer empty.Close()
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains(42))
}

// TestMisses probes with matching rate 0 never hit. Exact tables only.
func TestMisses(newTable NewTable, t *testing.T) {
	const n = 5000
	tbl := newTable(table.DefaultOptions(n))
	defer tbl.Close()

	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIQUE, keys))
	for _, k := range keys {
		tbl.Insert(k)
	}

	probes := make([]int64, n)
	keygen.GenerateProbeKeys(0.0, keys, probes)
	for _, k := range probes {
		assert.False(t, tbl.Contains(k), "for %d", k)
	}
}

// TestMatchingRate hits equal the probes that kept their original key.
// Approximate tables may only over-report.
func TestMatchingRate(newTable NewTable, exact bool, t *testing.T) {
	const n = 10_000
	tbl := newTable(table.DefaultOptions(n))
	defer tbl.Close()

	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIQUE, keys))
	for _, k := range keys {
		tbl.Insert(k)
	}

	probes := make([]int64, n)
	keygen.GenerateProbeKeys(0.5, keys, probes)

	matches, hits := 0, 0
	for _, k := range probes {
		if k <= n+1 {
			matches++
		}
		if tbl.Contains(k) {
			hits++
		}
	}

	if exact {
		assert.Equal(t, matches, hits)
	} else {
		assert.GreaterOrEqual(t, hits, matches)
		assert.Less(t, hits-matches, n/20)
	}
}
