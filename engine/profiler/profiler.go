// Package profiler tracks frame timing and memory statistics for the run
// loop and reports them to the log at a fixed interval.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates per-frame timings between reports. Call Tick once per
// rendered frame.
type Profiler struct {
	frameCount     int
	worstFrame     time.Duration
	lastFrame      time.Time
	lastReport     time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	lastFPS        float64
}

// NewProfiler creates a profiler reporting once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastFrame:      now,
		lastReport:     now,
		updateInterval: time.Second,
	}
}

// SetUpdateInterval changes how often Tick writes a report.
func (p *Profiler) SetUpdateInterval(d time.Duration) {
	if d > 0 {
		p.updateInterval = d
	}
}

// LastFPS returns the frame rate of the most recent report.
func (p *Profiler) LastFPS() float64 {
	return p.lastFPS
}

// Tick records one frame and logs a report when the update interval has
// elapsed: frame rate, worst frame time, live heap, allocation rate and GC
// count.
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick() bool {
	now := time.Now()
	if frame := now.Sub(p.lastFrame); frame > p.worstFrame {
		p.worstFrame = frame
	}
	p.lastFrame = now
	p.frameCount++

	elapsed := now.Sub(p.lastReport)
	if elapsed < p.updateInterval {
		return false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] FPS: %.2f | Worst frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		p.lastFPS, float64(p.worstFrame.Microseconds())/1000, heapMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
