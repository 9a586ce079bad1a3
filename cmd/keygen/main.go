package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	dist := flag.String("dist", "UNIQUE", "key distribution")
	n := flag.Int("n", 100, "number of keys")
	multiplicity := flag.Int("multiplicity", keygen.DefaultMultiplicity, "UNIFORM range divisor")
	seed := flag.Uint64("seed", 0, "seed, 0 for system entropy")
	rate := flag.Float64("rate", -1, "if in [0,1], print probe keys with this matching rate instead")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := []keygen.Option{keygen.WithMultiplicity(*multiplicity)}
	if *seed != 0 {
		opts = append(opts, keygen.WithSeed(*seed))
	}

	keys := make([]int64, *n)
	if !keygen.GenerateByName(*dist, keys, opts...) {
		log.Fatal().Str("dist", *dist).Strs("known", keygen.Names()).Msg("unknown distribution")
	}

	if *rate >= 0 && *rate <= 1 {
		keygen.GenerateProbeKeys(*rate, keys, keys)
	}

	for _, key := range keys {
		fmt.Println(key)
	}
}
