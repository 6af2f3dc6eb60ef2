package engine

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scheduler"
	"github.com/rs/zerolog"
)

// EngineBuilderOption configures the engine during construction.
type EngineBuilderOption func(*engine)

// WithInput sets the input aggregator. When omitted a default aggregator without a cursor
// capturer is created.
//
// Parameters:
//   - agg: the input aggregator
//
// Returns:
//   - EngineBuilderOption: a function that applies the aggregator
func WithInput(agg input.Aggregator) EngineBuilderOption {
	return func(e *engine) {
		e.input = agg
	}
}

// WithScheduler sets the frame pacing scheduler. Takes precedence over WithTickRate.
//
// Parameters:
//   - s: the scheduler
//
// Returns:
//   - EngineBuilderOption: a function that applies the scheduler
func WithScheduler(s scheduler.Scheduler) EngineBuilderOption {
	return func(e *engine) {
		e.scheduler = s
	}
}

// WithTickRate sets the target tick rate in frames per second (defaults to 60 if <= 0).
//
// Parameters:
//   - fps: target frames per second
//
// Returns:
//   - EngineBuilderOption: a function that applies the tick rate
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = fps
	}
}

// WithEventSource sets the platform event pump, normally the window.
//
// Parameters:
//   - source: the event source
//
// Returns:
//   - EngineBuilderOption: a function that applies the event source
func WithEventSource(source EventSource) EngineBuilderOption {
	return func(e *engine) {
		e.events = source
	}
}

// WithFrameRenderer sets the renderer that receives the camera matrix every tick.
//
// Parameters:
//   - r: the frame renderer
//
// Returns:
//   - EngineBuilderOption: a function that applies the renderer
func WithFrameRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithProfiling enables or disables profiling output.
//
// Parameters:
//   - enabled: whether profiling should be enabled
//
// Returns:
//   - EngineBuilderOption: a function that applies the profiling setting
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithLogger sets the engine logger. It is also handed to the default aggregator and the profiler.
func WithLogger(logger zerolog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger
	}
}
