package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
)

// Config drives a benchmark run. Every field can be set from the environment.
type Config struct {
	NumKeys       int           `env:"KEYBENCH_NUM_KEYS" envDefault:"1000000"`
	Distributions []string      `env:"KEYBENCH_DISTRIBUTIONS" envDefault:"GAUSSIAN,GEOMETRIC,UNIFORM,UNIQUE,SAME" envSeparator:","`
	Tables        []string      `env:"KEYBENCH_TABLES" envDefault:"hashmap,openaddr,btree,bloom" envSeparator:","`
	Multiplicity  int           `env:"KEYBENCH_MULTIPLICITY" envDefault:"8"`
	MatchingRates []float64     `env:"KEYBENCH_MATCHING_RATES" envDefault:"1.0,0.5,0.0" envSeparator:","`
	Workers       int           `env:"KEYBENCH_WORKERS" envDefault:"8"`
	ChunkSize     int           `env:"KEYBENCH_CHUNK_SIZE" envDefault:"4096"`
	AsyncInsert   bool          `env:"KEYBENCH_ASYNC_INSERT" envDefault:"false"`
	TTL           time.Duration `env:"KEYBENCH_TTL" envDefault:"10m"`
	FPRate        float64       `env:"KEYBENCH_FP_RATE" envDefault:"0.01"`
	Seed          uint64        `env:"KEYBENCH_SEED" envDefault:"0"`
	LogLevel      string        `env:"KEYBENCH_LOG_LEVEL" envDefault:"info"`
	LogStats      bool          `env:"KEYBENCH_LOG_STATS" envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.NumKeys < 1 {
		errs = append(errs, fmt.Errorf("num keys must be positive, got %d", c.NumKeys))
	}
	if c.Multiplicity < 1 {
		errs = append(errs, fmt.Errorf("multiplicity must be positive, got %d", c.Multiplicity))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize))
	}
	if c.FPRate <= 0 || c.FPRate >= 1 {
		errs = append(errs, fmt.Errorf("fp rate must be in (0,1), got %g", c.FPRate))
	}
	if c.TTL <= 0 {
		errs = append(errs, fmt.Errorf("ttl must be positive, got %s", c.TTL))
	}
	for _, name := range c.Distributions {
		if _, ok := keygen.ParseDistribution(name); !ok {
			errs = append(errs, fmt.Errorf("unknown distribution %q", name))
		}
	}
	for _, name := range c.Tables {
		if _, ok := table.ParseTyp(name); !ok {
			errs = append(errs, fmt.Errorf("unknown table %q", name))
		}
	}
	for _, rate := range c.MatchingRates {
		if rate < 0 || rate > 1 {
			errs = append(errs, fmt.Errorf("matching rate must be in [0,1], got %g", rate))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DistributionList resolves the configured names. Call after Validate.
func (c Config) DistributionList() []keygen.Distribution {
	res := make([]keygen.Distribution, 0, len(c.Distributions))
	for _, name := range c.Distributions {
		if d, ok := keygen.ParseDistribution(name); ok {
			res = append(res, d)
		}
	}
	return res
}

// TableList resolves the configured names. Call after Validate.
func (c Config) TableList() []table.Typ {
	res := make([]table.Typ, 0, len(c.Tables))
	for _, name := range c.Tables {
		if t, ok := table.ParseTyp(name); ok {
			res = append(res, t)
		}
	}
	return res
}

func (c Config) TableOptions() table.Options {
	return table.Options{
		Capacity: c.NumKeys,
		FPRate:   c.FPRate,
		TTL:      c.TTL,
	}
}
