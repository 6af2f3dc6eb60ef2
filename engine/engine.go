package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scheduler"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ErrAlreadyStarted is returned by Run when the engine has already been run.
var ErrAlreadyStarted = errors.New("engine already started")

// State is the lifecycle state of the engine loop.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// EventSource is the platform event pump the run loop blocks on between ticks.
// Event callbacks fire from inside WaitEvents on the loop thread.
type EventSource interface {
	// WaitEvents processes pending events, blocking up to timeout for new ones.
	// A non-positive timeout only processes what is already pending.
	WaitEvents(timeout time.Duration)

	// Wake unblocks a pending WaitEvents. Safe to call from any goroutine.
	Wake()

	// IsRunning reports false once the user asked to close the window.
	IsRunning() bool
}

// FrameRenderer draws one frame from the camera's matrix and position.
type FrameRenderer interface {
	RenderFrame(viewProj mgl32.Mat4, eye mgl32.Vec3) error
}

// Resizable is implemented by frame renderers that own a surface sized to the window.
type Resizable interface {
	Resize(width, height int)
}

// movements holds the intent for each action in driver order.
var movements = [input.ActionCount]camera.Movement{
	input.ActionForward:     camera.Forward(),
	input.ActionBackward:    camera.Backward(),
	input.ActionStrafeLeft:  camera.StrafeLeft(),
	input.ActionStrafeRight: camera.StrafeRight(),
	input.ActionDescend:     camera.Descend(),
	input.ActionAscend:      camera.Ascend(),
}

// engine implements the Engine interface.
// Owns the camera, input aggregator and scheduler; all of them are touched only from the loop thread.
type engine struct {
	camera    camera.Camera
	input     input.Aggregator
	scheduler scheduler.Scheduler
	tickRate  float64

	events   EventSource
	renderer FrameRenderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	logger       zerolog.Logger
	renderLogger zerolog.Logger

	state       atomic.Int32
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
}

// Engine is the frame driver. Each tick it drains the input aggregator, turns held controls
// into camera movements and hands the resulting matrix to the frame renderer.
type Engine interface {
	// HandleEvent forwards a raw input event to the aggregator.
	//
	// Parameters:
	//   - e: the raw input event
	HandleEvent(e input.Event)

	// HandleResize updates the camera aspect ratio and the renderer surface.
	// Zero-sized (minimized) framebuffers are ignored.
	//
	// Parameters:
	//   - width, height: new framebuffer size in pixels
	HandleResize(width, height int)

	// Step runs one tick: movement when the cursor is captured, then rendering.
	//
	// Parameters:
	//   - elapsed: time since the previous tick
	Step(elapsed time.Duration)

	// Run drives ticks at the configured rate until ctx is cancelled, Quit is called or the
	// event source stops running. It must be called from the thread that owns the window.
	//
	// Parameters:
	//   - ctx: cancelling it stops the loop
	//
	// Returns:
	//   - error: ctx.Err() on cancellation, ErrAlreadyStarted on a second call, nil otherwise
	Run(ctx context.Context) error

	// Quit stops the loop. Safe to call multiple times and from any goroutine.
	Quit()

	// State returns the lifecycle state.
	State() State

	// Camera returns the driven camera.
	Camera() camera.Camera

	// Input returns the input aggregator.
	Input() input.Aggregator
}

var _ Engine = &engine{}

// NewEngine creates a new Engine driving cam.
// Defaults: a fresh input aggregator, a 60 Hz scheduler, a timer-based event source and no renderer.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(cam camera.Camera, options ...EngineBuilderOption) Engine {
	e := &engine{
		camera:      cam,
		tickRate:    scheduler.DefaultRate,
		logger:      zerolog.Nop(),
		quitChannel: make(chan struct{}),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.input == nil {
		e.input = input.NewAggregator(input.WithLogger(e.logger))
	}
	if e.scheduler == nil {
		e.scheduler = scheduler.NewScheduler(e.tickRate)
	}
	if e.events == nil {
		e.events = newTimerEventSource()
	}
	if e.profilingEnabled {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	e.renderLogger = e.logger.Sample(&zerolog.BurstSampler{Burst: 1, Period: time.Second})

	return e
}

func (e *engine) HandleEvent(ev input.Event) {
	e.input.HandleEvent(ev)
}

func (e *engine) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if err := e.camera.SetAspect(float32(width) / float32(height)); err != nil {
		e.logger.Warn().Err(err).Int("width", width).Int("height", height).Msg("ignoring resize")
		return
	}
	if r, ok := e.renderer.(Resizable); ok {
		r.Resize(width, height)
	}
}

func (e *engine) Step(elapsed time.Duration) {
	snapshot := e.input.DrainAndReset()

	if snapshot.Captured {
		for action := range input.ActionCount {
			if snapshot.Active(action) {
				e.camera.ApplyMovement(movements[action], elapsed)
			}
		}
		if snapshot.HasPointerDelta() {
			e.camera.ApplyMovement(camera.Rotate(snapshot.DX, snapshot.DY), elapsed)
		}
	}

	if e.renderer != nil {
		if err := e.renderer.RenderFrame(e.camera.ViewProjectionMatrix(), e.camera.Position()); err != nil {
			e.renderLogger.Warn().Err(err).Msg("frame skipped")
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engine) Run(ctx context.Context) error {
	if !e.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrAlreadyStarted
	}
	defer e.state.Store(int32(StateStopped))

	stopWake := context.AfterFunc(ctx, e.events.Wake)
	defer stopWake()

	e.logger.Info().Dur("interval", e.scheduler.Interval()).Msg("engine started")
	defer e.logger.Info().Msg("engine stopped")

	// the first tick is due immediately and measures from here, not from NewEngine
	e.scheduler.Reset()
	deadline := e.scheduler.LastUpdate()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-e.quitChannel:
			return nil
		default:
		}
		if !e.events.IsRunning() {
			return nil
		}

		if wait := time.Until(deadline); wait > 0 {
			e.events.WaitEvents(wait)
			continue
		}
		// a slow frame leaves no time to wait; still pump events so input keeps flowing
		e.events.WaitEvents(0)

		var elapsed time.Duration
		deadline, elapsed = e.scheduler.Tick()
		e.Step(elapsed)
	}
}

// Quit signals the loop to stop.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
		e.events.Wake()
	})
}

func (e *engine) State() State {
	return State(e.state.Load())
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Input() input.Aggregator {
	return e.input
}

// timerEventSource waits on a timer when no window is attached.
type timerEventSource struct {
	wake chan struct{}
}

func newTimerEventSource() *timerEventSource {
	return &timerEventSource{wake: make(chan struct{}, 1)}
}

func (t *timerEventSource) WaitEvents(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-t.wake:
	}
}

func (t *timerEventSource) Wake() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

func (t *timerEventSource) IsRunning() bool {
	return true
}
