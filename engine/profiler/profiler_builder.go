package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithUpdateInterval sets how often statistics are reported. Values <= 0 keep the default.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithSmoothing sets the FPS moving-average factor. Values outside (0, 1] keep the default.
//
// Parameters:
//   - factor: weight of the newest frame sample
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithSmoothing(factor float64) ProfilerBuilderOption {
	return func(p *Profiler) {
		if factor > 0 && factor <= 1 {
			p.smoothing = factor
		}
	}
}

// WithLogging enables or disables the periodic log line. FPS is tracked either way.
//
// Parameters:
//   - enabled: if true, stats are logged each interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogging(enabled bool) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logging = enabled
	}
}
