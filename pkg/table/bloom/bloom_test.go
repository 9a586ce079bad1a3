package bloom

import (
	"testing"

	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
	tests "github.com/dborchard/keybench/pkg/z_tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var constructors = map[string]tests.NewTable{
	"bloom":        func(opts table.Options) table.ITable[int64] { return New[int64](opts) },
	"atomic_bloom": func(opts table.Options) table.ITable[int64] { return NewAtomic[int64](opts) },
	"blob_bloom":   func(opts table.Options) table.ITable[int64] { return NewBlocked[int64](opts) },
}

func TestInsertContains(t *testing.T) {
	for name, newTable := range constructors {
		t.Run(name, func(t *testing.T) {
			tests.TestInsertContains(newTable, t)
		})
	}
}

func TestSentinelKeys(t *testing.T) {
	for name, newTable := range constructors {
		t.Run(name, func(t *testing.T) {
			tests.TestSentinelKeys(newTable, t)
		})
	}
}

func TestMatchingRate(t *testing.T) {
	for name, newTable := range constructors {
		t.Run(name, func(t *testing.T) {
			tests.TestMatchingRate(newTable, false, t)
		})
	}
}

func TestConcurrentContains(t *testing.T) {
	for name, newTable := range constructors {
		t.Run(name, func(t *testing.T) {
			tests.TestConcurrentContains(newTable, t)
		})
	}
}

func TestFalsePositiveRate(t *testing.T) {
	const n = 20_000
	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIQUE, keys))
	probes := make([]int64, n)
	keygen.GenerateProbeKeys(0.0, keys, probes)

	for name, newTable := range constructors {
		t.Run(name, func(t *testing.T) {
			tbl := newTable(table.DefaultOptions(n))
			defer tbl.Close()

			for _, k := range keys {
				tbl.Insert(k)
			}
			assert.Equal(t, n, tbl.Len())
			assert.Equal(t, name, tbl.Name())

			falsePositives := 0
			for _, k := range probes {
				if tbl.Contains(k) {
					falsePositives++
				}
			}
			assert.Less(t, float64(falsePositives)/n, 0.03)
		})
	}
}
