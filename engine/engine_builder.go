package engine

import (
	"time"

	"github.com/Carmen-Shannon/glint-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the logic tick rate in ticks per second. Values <= 0
// are treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.tickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a pre-configured window for the engine to use rather than
// letting the engine create one with defaults.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w *window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}
