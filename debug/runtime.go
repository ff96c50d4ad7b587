// Package debug holds diagnostics that only run when config.Debug is set.
package debug

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// StartRuntimeLogger logs goroutine count and heap/stack usage every
// interval until ctx is done. Useful to confirm that repeated loads and
// exports release their bitmaps.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			logger.Info("runtime-stats", Snapshot(samples)...)
		}
	}()
}

// Snapshot reads the current runtime counters as slog attributes. samples
// must contain the goroutine count metric.
func Snapshot(samples []metrics.Sample) []any {
	metrics.Read(samples)
	var goroutines uint64
	if len(samples) > 0 && samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return []any{
		slog.Uint64("goroutines", goroutines),
		slog.String("heap_alloc", humanize.Bytes(ms.HeapAlloc)),
		slog.String("heap_sys", humanize.Bytes(ms.HeapSys)),
		slog.String("stack_inuse", humanize.Bytes(ms.StackInuse)),
		slog.Uint64("gc_cycles", uint64(ms.NumGC)),
	}
}
