package keygen

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMaxKey(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), MaxKey[int8]())
	assert.Equal(t, int32(math.MaxInt32), MaxKey[int32]())
	assert.Equal(t, int64(math.MaxInt64), MaxKey[int64]())
	assert.Equal(t, uint8(math.MaxUint8), MaxKey[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), MaxKey[uint64]())
}

func TestProbeKeysFullMatch(t *testing.T) {
	keys := make([]int64, 1000)
	require.True(t, Generate(UNIQUE, keys))

	probes := make([]int64, len(keys))
	GenerateProbeKeys(1.0, keys, probes)

	sortedKeys := append([]int64(nil), keys...)
	sort.Slice(sortedKeys, func(i, j int) bool { return sortedKeys[i] < sortedKeys[j] })
	sort.Slice(probes, func(i, j int) bool { return probes[i] < probes[j] })
	assert.Equal(t, sortedKeys, probes)
}

func TestProbeKeysNoMatch(t *testing.T) {
	const n = 1000
	keys := make([]int32, n)
	require.True(t, Generate(UNIQUE, keys))

	probes := make([]int32, n)
	GenerateProbeKeys(0.0, keys, probes, WithSeed(3))

	for _, k := range probes {
		assert.Greater(t, k, int32(n+1))
		assert.LessOrEqual(t, k, int32(math.MaxInt32-2))
	}
}

func TestProbeKeysInPlace(t *testing.T) {
	keys := make([]uint64, 500)
	require.True(t, Generate(SAME, keys))

	GenerateProbeKeys(1.0, keys, keys)
	for _, k := range keys {
		assert.Equal(t, uint64(42), k)
	}
}

func TestProbeKeysMatchingRate(t *testing.T) {
	const n = 20_000
	keys := make([]int64, n)
	require.True(t, Generate(UNIQUE, keys, WithSeed(1)))

	probes := make([]int64, n)
	GenerateProbeKeys(0.25, keys, probes, WithSeed(2))

	matches := 0
	for _, k := range probes {
		if k <= n+1 {
			matches++
		}
	}
	assert.InDelta(t, 0.25, float64(matches)/n, 0.02)
}

func TestProbeKeysNarrowType(t *testing.T) {
	keys := make([]uint8, 16)
	require.True(t, Generate(UNIQUE, keys))

	probes := make([]uint8, len(keys))
	GenerateProbeKeys(0.0, keys, probes)
	for _, k := range probes {
		assert.GreaterOrEqual(t, k, uint8(18))
		assert.LessOrEqual(t, k, uint8(253))
	}
}

func TestProbeKeysProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		rate := rapid.Float64Range(0, 1).Draw(t, "rate")

		keys := make([]int64, n)
		Generate(UNIQUE, keys)
		probes := make([]int64, n)
		GenerateProbeKeys(rate, keys, probes)

		for _, k := range probes {
			if k < 2 || k > math.MaxInt64-2 {
				t.Fatalf("probe key %d out of range", k)
			}
		}
	})
}
