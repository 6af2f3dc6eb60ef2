package input

import (
	"errors"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrCaptureRequestFailed is wrapped by CursorCapturer implementations when the platform
// refuses to confine the cursor.
var ErrCaptureRequestFailed = errors.New("cursor capture request failed")

// CursorCapturer is the windowing capability used to confine and release the cursor.
type CursorCapturer interface {
	// RequestCursorCapture hides and confines the cursor.
	//
	// Returns:
	//   - error: wraps ErrCaptureRequestFailed if the platform refused
	RequestCursorCapture() error

	// RequestCursorRelease shows the cursor and lets it move freely again.
	RequestCursorRelease()
}

// CaptureState is the cursor capture state.
type CaptureState uint8

const (
	CaptureReleased CaptureState = iota
	CaptureCaptured
)

func (s CaptureState) String() string {
	if s == CaptureCaptured {
		return "captured"
	}
	return "released"
}

// Snapshot is the aggregated input for one frame.
type Snapshot struct {
	Captured bool
	Flags    [ActionCount]bool
	DX, DY   float32
}

// Active reports whether the control for the given action is currently held.
func (s Snapshot) Active(a Action) bool {
	return a < ActionCount && s.Flags[a]
}

// HasPointerDelta reports whether any pointer motion was accumulated.
func (s Snapshot) HasPointerDelta() bool {
	return s.DX != 0 || s.DY != 0
}

// Aggregator folds raw input events into level-triggered action flags, a cursor capture state
// and a pointer delta that is consumed once per frame.
// It is not safe for concurrent use; events and drains happen on the frame loop thread.
type Aggregator interface {
	// HandleEvent applies one raw event. Unrecognized keys and buttons are ignored.
	//
	// Parameters:
	//   - e: the event to apply
	HandleEvent(e Event)

	// DrainAndReset returns the current snapshot and zeroes the pointer delta.
	// Action flags are left untouched.
	//
	// Returns:
	//   - Snapshot: flags, capture state and accumulated pointer delta
	DrainAndReset() Snapshot

	// CaptureState returns whether the cursor is captured.
	CaptureState() CaptureState

	// CursorInside reports whether the cursor is over the window.
	CursorInside() bool
}

type aggregatorImpl struct {
	bindings   Bindings
	releaseKey uint32
	capturer   CursorCapturer
	logger     zerolog.Logger

	// throttles capture failure warnings when the user keeps clicking
	failureLog *rate.Sometimes

	flags    [ActionCount]bool
	captured bool
	inside   bool
	dx, dy   float32
}

var _ Aggregator = &aggregatorImpl{}

// NewAggregator creates an Aggregator with WASD bindings, Escape as the release key and no
// cursor capturer attached.
//
// Parameters:
//   - options: functional options to configure the aggregator
//
// Returns:
//   - Aggregator: the newly created aggregator
func NewAggregator(options ...AggregatorBuilderOption) Aggregator {
	a := &aggregatorImpl{
		bindings:   DefaultBindings(),
		releaseKey: common.KeyEsc,
		capturer:   noopCapturer{},
		logger:     zerolog.Nop(),
		failureLog: &rate.Sometimes{Interval: time.Second},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *aggregatorImpl) HandleEvent(e Event) {
	switch ev := e.(type) {
	case KeyChanged:
		if ev.Key == a.releaseKey {
			if ev.Pressed {
				a.release()
			}
			return
		}
		if action, ok := a.bindings[ev.Key]; ok && action < ActionCount {
			a.flags[action] = ev.Pressed
		}
	case PointerMoved:
		if finite(ev.DX) && finite(ev.DY) {
			a.dx += ev.DX
			a.dy += ev.DY
		}
	case PointerButtonChanged:
		if ev.Button == common.MouseButtonPrimary && ev.Pressed && a.inside && !a.captured {
			a.capture()
		}
	case CursorEntered:
		a.inside = true
	case CursorLeft:
		a.inside = false
	case CursorCaptureReleaseRequested:
		a.release()
	default:
		// nil or foreign events carry nothing to aggregate
	}
}

func (a *aggregatorImpl) capture() {
	a.captured = true
	a.dx, a.dy = 0, 0

	if err := a.capturer.RequestCursorCapture(); err != nil {
		a.captured = false
		a.failureLog.Do(func() {
			a.logger.Warn().Err(err).Msg("cursor capture refused, camera stays inert")
		})
		return
	}
	a.logger.Debug().Msg("cursor captured")
}

func (a *aggregatorImpl) release() {
	if !a.captured {
		return
	}
	a.captured = false
	a.dx, a.dy = 0, 0
	a.capturer.RequestCursorRelease()
	a.logger.Debug().Msg("cursor released")
}

func (a *aggregatorImpl) DrainAndReset() Snapshot {
	s := Snapshot{
		Captured: a.captured,
		Flags:    a.flags,
		DX:       a.dx,
		DY:       a.dy,
	}
	a.dx, a.dy = 0, 0
	return s
}

func (a *aggregatorImpl) CaptureState() CaptureState {
	if a.captured {
		return CaptureCaptured
	}
	return CaptureReleased
}

func (a *aggregatorImpl) CursorInside() bool {
	return a.inside
}

type noopCapturer struct{}

func (noopCapturer) RequestCursorCapture() error { return nil }
func (noopCapturer) RequestCursorRelease()       {}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
