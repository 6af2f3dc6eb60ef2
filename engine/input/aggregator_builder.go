package input

import "github.com/rs/zerolog"

type AggregatorBuilderOption func(*aggregatorImpl)

// WithBindings replaces the key to action map.
//
// Parameters:
//   - bindings: the key bindings to use
//
// Returns:
//   - AggregatorBuilderOption: a function that sets the bindings
func WithBindings(bindings Bindings) AggregatorBuilderOption {
	return func(a *aggregatorImpl) {
		a.bindings = make(Bindings, len(bindings))
		for k, v := range bindings {
			a.bindings[k] = v
		}
	}
}

// WithReleaseKey sets the key that releases a captured cursor when pressed.
//
// Parameters:
//   - key: key code from the common package
//
// Returns:
//   - AggregatorBuilderOption: a function that sets the release key
func WithReleaseKey(key uint32) AggregatorBuilderOption {
	return func(a *aggregatorImpl) {
		a.releaseKey = key
	}
}

// WithCursorCapturer attaches the window capability used on capture transitions.
//
// Parameters:
//   - capturer: the cursor capturer, ignored if nil
//
// Returns:
//   - AggregatorBuilderOption: a function that sets the capturer
func WithCursorCapturer(capturer CursorCapturer) AggregatorBuilderOption {
	return func(a *aggregatorImpl) {
		if capturer != nil {
			a.capturer = capturer
		}
	}
}

// WithLogger sets the logger used for capture transitions and failures.
func WithLogger(logger zerolog.Logger) AggregatorBuilderOption {
	return func(a *aggregatorImpl) {
		a.logger = logger
	}
}
