package bench

import (
	"errors"
	"fmt"

	"github.com/dborchard/keybench/pkg/keygen"
	"golang.org/x/exp/constraints"
)

var ErrUnknownDistribution = errors.New("unknown distribution")

// Workload describes one key set and the probes run against it.
type Workload struct {
	Distribution keygen.Distribution
	NumKeys      int
	Multiplicity int
	MatchingRate float64
	// Seed makes the workload reproducible; 0 seeds from system entropy.
	Seed uint64
}

// GenerateWorkload builds the insert keys and the probe keys for w.
func GenerateWorkload[K constraints.Integer](w Workload) (keys, probes []K, err error) {
	keyOpts := []keygen.Option{keygen.WithMultiplicity(w.Multiplicity)}
	var probeOpts []keygen.Option
	if w.Seed != 0 {
		keyOpts = append(keyOpts, keygen.WithSeed(w.Seed))
		probeOpts = append(probeOpts, keygen.WithSeed(w.Seed+1))
	}

	keys = make([]K, w.NumKeys)
	if !keygen.Generate(w.Distribution, keys, keyOpts...) {
		return nil, nil, fmt.Errorf("generate keys: %w: %s", ErrUnknownDistribution, w.Distribution)
	}

	probes = make([]K, w.NumKeys)
	keygen.GenerateProbeKeys(w.MatchingRate, keys, probes, probeOpts...)
	return keys, probes, nil
}
