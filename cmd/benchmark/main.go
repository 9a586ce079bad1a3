package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/dborchard/keybench/pkg/bench"
	"github.com/dborchard/keybench/pkg/config"
	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Key width matches the 64-bit keys of the hash table benchmarks.
type Key = int64

func main() {
	list := flag.Bool("list", false, "print distribution and table names and exit")
	flag.Parse()

	if *list {
		fmt.Printf("distributions: %s\n", strings.Join(keygen.Names(), ", "))
		fmt.Printf("tables:        %s\n", strings.Join(table.Names(), ", "))
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().
		Int("keys", cfg.NumKeys).
		Strs("distributions", cfg.Distributions).
		Strs("tables", cfg.Tables).
		Floats64("matching_rates", cfg.MatchingRates).
		Int("workers", cfg.Workers).
		Bool("async_insert", cfg.AsyncInsert).
		Msgf("** New Run %s **", time.Now().Format("2006_01_02_15_04_05"))

	runOpts := bench.Options{
		Workers:       cfg.Workers,
		ChunkSize:     cfg.ChunkSize,
		AsyncInsert:   cfg.AsyncInsert,
		LatencyWindow: 64,
		LogStats:      cfg.LogStats,
	}

	for _, dist := range cfg.DistributionList() {
		for _, rate := range cfg.MatchingRates {
			if err := RangeBenchTest(ctx, cfg, runOpts, dist, rate); err != nil {
				log.Error().Err(err).Str("distribution", dist.String()).Float64("rate", rate).Msg("benchmark aborted")
				return
			}
		}
		log.Info().Str("distribution", dist.String()).Msg("Batch Completed")
	}
}

func RangeBenchTest(ctx context.Context, cfg config.Config, runOpts bench.Options, dist keygen.Distribution, rate float64) error {
	keys, probes, err := bench.GenerateWorkload[Key](bench.Workload{
		Distribution: dist,
		NumKeys:      cfg.NumKeys,
		Multiplicity: cfg.Multiplicity,
		MatchingRate: rate,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return err
	}

	for _, typ := range cfg.TableList() {
		tbl := bench.NewTable[Key](typ, cfg.TableOptions())

		res, err := bench.Run(ctx, tbl, keys, probes, runOpts)
		tbl.Close()
		if err != nil {
			return fmt.Errorf("run %s: %w", typ, err)
		}
		res.Distribution = dist.String()
		res.MatchingRate = rate

		log.Info().
			Str("table", res.Table).
			Str("distribution", res.Distribution).
			Float64("rate", rate).
			Int("len", res.Len).
			Float64("hit_rate", res.HitRate()).
			Float64("insert_ops", res.InsertOpsPerSec()).
			Float64("probe_ops", res.ProbeOpsPerSec()).
			Dur("avg_chunk", res.AvgChunkLatency).
			Msg("result")

		if err := bench.WriteOutput(os.Stdout, res); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		runtime.GC()
	}
	return nil
}
