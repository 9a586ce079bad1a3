package keygen

// Distribution selects the sampling policy used to fill a key buffer.
type Distribution int

const (
	GAUSSIAN Distribution = iota
	GEOMETRIC
	UNIFORM
	UNIQUE
	SAME
)

var distributions = []Distribution{GAUSSIAN, GEOMETRIC, UNIFORM, UNIQUE, SAME}

var distributionByName = map[string]Distribution{
	"GAUSSIAN":  GAUSSIAN,
	"GEOMETRIC": GEOMETRIC,
	"UNIFORM":   UNIFORM,
	"UNIQUE":    UNIQUE,
	"SAME":      SAME,
}

func (d Distribution) String() string {
	switch d {
	case GAUSSIAN:
		return "GAUSSIAN"
	case GEOMETRIC:
		return "GEOMETRIC"
	case UNIFORM:
		return "UNIFORM"
	case UNIQUE:
		return "UNIQUE"
	case SAME:
		return "SAME"
	default:
		return "ERROR"
	}
}

// ParseDistribution maps a case-sensitive name to its Distribution.
func ParseDistribution(name string) (Distribution, bool) {
	d, ok := distributionByName[name]
	return d, ok
}

// Distributions lists every known distribution in declaration order.
func Distributions() []Distribution {
	res := make([]Distribution, len(distributions))
	copy(res, distributions)
	return res
}

// Names lists the distribution names, used for CLI argument listings.
func Names() []string {
	names := make([]string, 0, len(distributions))
	for _, d := range distributions {
		names = append(names, d.String())
	}
	return names
}
