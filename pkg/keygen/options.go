package keygen

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// DefaultMultiplicity is the UNIFORM divisor used when none is given.
const DefaultMultiplicity = 8

type options struct {
	multiplicity int
	seed         uint64
	seeded       bool
}

type Option func(*options)

// WithMultiplicity sets the divisor bounding the UNIFORM range to [1, N/m].
// Values below 1 fall back to DefaultMultiplicity.
func WithMultiplicity(m int) Option {
	return func(o *options) {
		o.multiplicity = m
	}
}

// WithSeed makes the call deterministic. Without it every call seeds its own
// generator from the system entropy source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func newOptions(opts []Option) options {
	o := options{multiplicity: DefaultMultiplicity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.multiplicity < 1 {
		o.multiplicity = DefaultMultiplicity
	}
	return o
}

// newSource returns a generator private to a single call.
func (o options) newSource() rand.Source {
	if o.seeded {
		return rand.NewSource(o.seed)
	}
	return rand.NewSource(entropySeed())
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
