package keygen

import (
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// GenerateProbeKeys copies keys into out and then, slot by slot, replaces the
// key with a fresh non-matching one with probability 1-matchingRate.
// Non-matching keys are drawn uniformly from [N+2, MaxKey-2], above every key
// UNIQUE can hand out. The result is shuffled so hits and misses are not
// positionally predictable. keys and out must have the same length and may
// be the same slice.
func GenerateProbeKeys[K constraints.Integer](matchingRate float64, keys, out []K, opts ...Option) {
	copy(out, keys)

	o := newOptions(opts)
	rng := rand.New(o.newSource())

	lo := K(len(out) + firstUniqueKey)
	hi := MaxKey[K]() - 2
	span := uint64(hi) - uint64(lo) + 1

	for i := range out {
		if rng.Float64() > matchingRate {
			out[i] = lo + K(uint64n(rng, span))
		}
	}
	shuffle(rng, out)
}

// MaxKey returns the largest value representable by K.
func MaxKey[K constraints.Integer]() K {
	var zero K
	if ^zero > zero {
		return ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	return K(uint64(1)<<(bits-1) - 1)
}

// uint64n returns a value in [0, n); n == 0 stands for the full 64-bit range.
func uint64n(rng *rand.Rand, n uint64) uint64 {
	if n == 0 {
		return rng.Uint64()
	}
	return rng.Uint64n(n)
}
