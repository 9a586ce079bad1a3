package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/alphadose/zenq/v2"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Options struct {
	// Workers is the probe pool size.
	Workers int
	// ChunkSize is the number of probes one pool task handles.
	ChunkSize int
	// AsyncInsert routes inserts through a queue drained by one writer thread.
	AsyncInsert bool
	// LatencyWindow is the number of chunks averaged in Result.AvgChunkLatency.
	LatencyWindow int
	// LogStats logs per-phase timings.
	LogStats bool
}

func DefaultOptions() Options {
	return Options{
		Workers:       runtime.GOMAXPROCS(0),
		ChunkSize:     4096,
		LatencyWindow: 64,
	}
}

type Result struct {
	Table        string
	Distribution string
	MatchingRate float64

	Inserts int
	Len     int
	Probes  int
	Hits    int64

	InsertDuration time.Duration
	ProbeDuration  time.Duration

	AvgChunkLatency time.Duration
}

// HitRate is the observed fraction of probes found in the table.
func (r Result) HitRate() float64 {
	if r.Probes == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Probes)
}

func (r Result) InsertOpsPerSec() float64 {
	return opsPerSec(r.Inserts, r.InsertDuration)
}

func (r Result) ProbeOpsPerSec() float64 {
	return opsPerSec(r.Probes, r.ProbeDuration)
}

func opsPerSec(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// Run inserts keys into tbl and then looks up every probe on a worker pool.
// The probe phase stops between chunks once ctx is done.
func Run[K constraints.Integer](ctx context.Context, tbl table.ITable[K], keys, probes []K, opts Options) (Result, error) {
	res := Result{
		Table:   tbl.Name(),
		Inserts: len(keys),
		Probes:  len(probes),
	}

	// 1. Insert phase
	startTs := time.Now()
	if opts.AsyncInsert {
		insertAsync(tbl, keys)
	} else {
		for _, k := range keys {
			tbl.Insert(k)
		}
	}
	res.InsertDuration = time.Since(startTs)
	res.Len = tbl.Len()

	if opts.LogStats {
		log.Debug().
			Str("table", res.Table).
			Int("keys", len(keys)).
			Int("len", res.Len).
			Dur("elapsed", res.InsertDuration).
			Msg("insert phase done")
	}

	// 2. Probe phase
	hits, avgLatency, elapsed, err := probe(ctx, tbl, probes, opts)
	res.Hits = hits
	res.AvgChunkLatency = avgLatency
	res.ProbeDuration = elapsed
	if err != nil {
		return res, err
	}

	if opts.LogStats {
		log.Debug().
			Str("table", res.Table).
			Int("probes", len(probes)).
			Int64("hits", hits).
			Dur("elapsed", elapsed).
			Dur("avg_chunk", avgLatency).
			Msg("probe phase done")
	}
	return res, nil
}

func insertAsync[K constraints.Integer](tbl table.ITable[K], keys []K) {
	if len(keys) == 0 {
		return
	}

	queue := zenq.New[K](1 << 16)
	defer queue.Close()

	var pendingUpdates atomic.Int64
	pendingUpdates.Store(int64(len(keys)))

	done := make(chan struct{})

	// Writer Thread
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		for pendingUpdates.Load() > 0 {
			if k, isQueueOpen := queue.Read(); isQueueOpen {
				tbl.Insert(k)
				pendingUpdates.Add(-1)
			}
		}
	}()

	for _, k := range keys {
		queue.Write(k)
	}
	<-done
}

func probe[K constraints.Integer](ctx context.Context, tbl table.ITable[K], probes []K, opts Options) (int64, time.Duration, time.Duration, error) {
	if len(probes) == 0 {
		return 0, 0, 0, ctx.Err()
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	chunkSize := opts.ChunkSize
	if chunkSize < 1 {
		chunkSize = len(probes)
	}
	window := opts.LatencyWindow
	if window < 1 {
		window = 1
	}

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("create probe pool: %w", err)
	}
	defer pool.Release()

	var hits atomic.Int64
	var wg sync.WaitGroup
	var mu sync.Mutex
	moAvg := movingaverage.New(window)

	startTs := time.Now()
	for start := 0; start < len(probes); start += chunkSize {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return hits.Load(), avg(&mu, moAvg), time.Since(startTs), err
		}

		chunk := probes[start:min(start+chunkSize, len(probes))]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			chunkTs := time.Now()
			var found int64
			for _, k := range chunk {
				if tbl.Contains(k) {
					found++
				}
			}
			hits.Add(found)

			mu.Lock()
			moAvg.Add(float64(time.Since(chunkTs).Nanoseconds()))
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return hits.Load(), avg(&mu, moAvg), time.Since(startTs), fmt.Errorf("submit probe chunk: %w", err)
		}
	}
	wg.Wait()

	return hits.Load(), avg(&mu, moAvg), time.Since(startTs), nil
}

func avg(mu *sync.Mutex, moAvg *movingaverage.MovingAverage) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return time.Duration(moAvg.Avg())
}
