package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler tracks a smoothed frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration
	smoothing      float64
	fps            float64
	logging        bool
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with the provided options.
// Update interval defaults to 1 second and the FPS smoothing factor to 2/21,
// an exponential moving average over roughly the last 20 frames.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	now := time.Now()
	p := &Profiler{
		mu:             &sync.Mutex{},
		lastTime:       now,
		lastFrame:      now,
		updateInterval: time.Second,
		smoothing:      2.0 / 21.0,
		logging:        true,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: smoothed FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick() bool {
	return p.tick(time.Now())
}

// Sample records a frame for the FPS readout without reporting statistics.
func (p *Profiler) Sample() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sample(time.Now())
}

// FPS returns the smoothed frames per second, or 0 before the second frame.
//
// Returns:
//   - float64: the smoothed frame rate
func (p *Profiler) FPS() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

func (p *Profiler) tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sample(now)

	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	if p.logging {
		p.logStats(elapsed)
	}

	p.frameCount = 0
	p.lastTime = now
	return true
}

// sample folds the time since the previous frame into the moving average.
func (p *Profiler) sample(now time.Time) {
	if frame := now.Sub(p.lastFrame); frame > 0 {
		sample := 1 / frame.Seconds()
		if p.fps == 0 {
			p.fps = sample
		} else {
			p.fps += p.smoothing * (sample - p.fps)
		}
	}
	p.lastFrame = now
}

// logStats reads the runtime memory statistics and logs one report line.
func (p *Profiler) logStats(elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (tracks churn)
	// Sys: Total bytes of memory obtained from the OS
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f (%d frames) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.fps, p.frameCount, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
