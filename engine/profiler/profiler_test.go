package profiler

import (
	"math"
	"testing"
	"time"
)

func TestProfiler_SmoothedFPS(t *testing.T) {
	p := NewProfiler(WithLogging(false), WithSmoothing(0.5))
	start := p.lastFrame

	p.tick(start.Add(10 * time.Millisecond))
	if got := p.FPS(); math.Abs(got-100) > 1e-6 {
		t.Fatalf("first sample FPS = %v, want 100", got)
	}

	p.tick(start.Add(30 * time.Millisecond))
	// halfway between 100 and 50
	if got := p.FPS(); math.Abs(got-75) > 1e-6 {
		t.Errorf("smoothed FPS = %v, want 75", got)
	}
}

func TestProfiler_SteadyRateConverges(t *testing.T) {
	p := NewProfiler(WithLogging(false))
	now := p.lastFrame

	for i := 0; i < 200; i++ {
		now = now.Add(time.Second / 60)
		p.tick(now)
	}
	if got := p.FPS(); math.Abs(got-60) > 0.01 {
		t.Errorf("FPS = %v, want ~60", got)
	}
}

func TestProfiler_ReportInterval(t *testing.T) {
	p := NewProfiler(WithLogging(false), WithUpdateInterval(100*time.Millisecond))
	start := p.lastTime

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"before interval", 50 * time.Millisecond, false},
		{"interval elapsed", 100 * time.Millisecond, true},
		{"window restarted", 150 * time.Millisecond, false},
		{"next interval", 210 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := p.tick(start.Add(tt.offset)); got != tt.want {
			t.Errorf("%s: tick() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProfiler_ZeroFrameTimeIgnored(t *testing.T) {
	p := NewProfiler(WithLogging(false))
	p.tick(p.lastFrame)
	if got := p.FPS(); got != 0 {
		t.Errorf("FPS = %v, want 0", got)
	}
}

func TestProfilerOptions_InvalidValuesKeepDefaults(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(-1), WithSmoothing(2))
	if p.updateInterval != time.Second {
		t.Errorf("updateInterval = %v", p.updateInterval)
	}
	if p.smoothing != 2.0/21.0 {
		t.Errorf("smoothing = %v", p.smoothing)
	}
}
