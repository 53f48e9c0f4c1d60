// benchmark.go
// A reusable benchmarking module for the exam tools
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("benchmark")

// Report holds the resource usage of one wrapped call.
type Report struct {
	Label          string
	Elapsed        time.Duration
	AllocMB        float64
	TotalAllocMB   float64
	HeapMB         float64
	GCCycles       uint32
	StartGoroutine int
	EndGoroutine   int
}

const mb = 1024.0 * 1024.0

// Measure runs f and records its runtime and memory usage.
func Measure(label string, f func()) Report {
	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	alloc := 0.0
	if memEnd.Alloc > memStart.Alloc {
		alloc = float64(memEnd.Alloc-memStart.Alloc) / mb
	}
	return Report{
		Label:          label,
		Elapsed:        elapsed,
		AllocMB:        alloc,
		TotalAllocMB:   float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb,
		HeapMB:         float64(memEnd.HeapAlloc) / mb,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		StartGoroutine: startGoroutines,
		EndGoroutine:   runtime.NumGoroutine(),
	}
}

// Run wraps any function to measure its runtime and memory usage, logging
// the report at NOTICE level.
func Run(label string, f func()) {
	log.Noticef("[Benchmark] Running: %s", label)
	log.Noticef("[Benchmark] Timestamp: %s", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		log.Noticef("[Benchmark] Hostname: %s", host)
	}
	log.Noticef("[Benchmark] Go Version: %s", runtime.Version())
	log.Noticef("[Benchmark] OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH)

	r := Measure(label, f)

	log.Noticef("[Benchmark] Time Elapsed: %v", r.Elapsed)
	log.Noticef("[Benchmark] Memory Used: %.2f MB", r.AllocMB)
	log.Noticef("[Benchmark] Total Allocated: %.2f MB", r.TotalAllocMB)
	log.Noticef("[Benchmark] Peak Heap: %.2f MB", r.HeapMB)
	log.Noticef("[Benchmark] GC Cycles: %d", r.GCCycles)
	log.Noticef("[Benchmark] CPU Cores: %d", runtime.NumCPU())
	log.Noticef("[Benchmark] Goroutines: %d -> %d", r.StartGoroutine, r.EndGoroutine)
}
