package keygen

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Key is any numeric type a key buffer can hold.
type Key interface {
	constraints.Integer | constraints.Float
}

const (
	sameKey = 42

	// first key handed out by UNIQUE; 0 and 1 are sentinels in some tables
	firstUniqueKey = 2

	geometricP = 1e-9
)

// Generate fills out with len(out) keys drawn from dist. It returns false,
// leaving out untouched, when dist is not a known Distribution.
func Generate[K Key](dist Distribution, out []K, opts ...Option) bool {
	switch dist {
	case GAUSSIAN, GEOMETRIC, UNIFORM, UNIQUE, SAME:
	default:
		return false
	}

	o := newOptions(opts)
	src := o.newSource()

	switch dist {
	case GAUSSIAN:
		fillGaussian(src, out)
	case GEOMETRIC:
		fillGeometric(src, out)
	case UNIFORM:
		fillUniform(rand.New(src), out, o.multiplicity)
	case UNIQUE:
		fillUnique(rand.New(src), out)
	case SAME:
		for i := range out {
			out[i] = sameKey
		}
	}
	return true
}

// GenerateByName is Generate keyed by the distribution name. Unknown names
// return false before out is touched.
func GenerateByName[K Key](name string, out []K, opts ...Option) bool {
	dist, ok := ParseDistribution(name)
	if !ok {
		return false
	}
	return Generate(dist, out, opts...)
}

// fillGaussian draws from N(n/2, n/5) and rejects anything outside [0, n).
func fillGaussian[K Key](src rand.Source, out []K) {
	n := len(out)
	d := distuv.Normal{
		Mu:    float64(n / 2),
		Sigma: float64(n / 5),
		Src:   src,
	}

	limit := float64(n)
	for i := range out {
		k := d.Rand()
		for k < 0 || k >= limit {
			k = d.Rand()
		}
		out[i] = K(k)
	}
}

// fillGeometric samples the number of failures before the first success with
// p = 1e-9 (floor of an exponential with rate -ln(1-p)) and rescales it by
// n / MaxInt32.
func fillGeometric[K Key](src rand.Source, out []K) {
	d := distuv.Exponential{
		Rate: -math.Log1p(-geometricP),
		Src:  src,
	}

	coeff := float64(len(out)) / float64(math.MaxInt32)
	for i := range out {
		out[i] = K(math.Floor(d.Rand()) * coeff)
	}
}

func fillUniform[K Key](rng *rand.Rand, out []K, multiplicity int) {
	upper := len(out) / multiplicity
	if upper < 1 {
		upper = 1
	}

	for i := range out {
		out[i] = K(1 + rng.Int63n(int64(upper)))
	}
}

func fillUnique[K Key](rng *rand.Rand, out []K) {
	for i := range out {
		out[i] = K(i + firstUniqueKey)
	}
	shuffle(rng, out)
}

func shuffle[K any](rng *rand.Rand, out []K) {
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
}
