package window

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing, raw input events and cursor capture.
// Wraps platform-specific window implementations with a common interface.
// All methods except Wake must be called from the thread that created the window.
type Window interface {
	InputSource

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestCursorCapture hides the cursor and locks it to the window so that motion is
	// reported as unbounded relative deltas.
	//
	// Returns:
	//   - error: wraps input.ErrCaptureRequestFailed if the platform refused the mode change
	RequestCursorCapture() error

	// RequestCursorRelease restores the normal visible cursor.
	RequestCursorRelease()

	// WaitEvents processes pending events, sleeping up to timeout when there are none.
	// A non-positive timeout only polls.
	//
	// Parameters:
	//   - timeout: the longest time to block
	WaitEvents(timeout time.Duration)

	// Wake interrupts a blocked WaitEvents. Safe to call from any goroutine.
	Wake()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// InputSource is the part of a window that reports raw input.
type InputSource interface {
	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonCallback sets the callback for mouse button transitions.
	//
	// Parameters:
	//   - callback: function receiving the button code and whether it was pressed
	SetMouseButtonCallback(callback func(button uint32, pressed bool))

	// SetMouseMoveCallback sets the callback for relative cursor motion.
	// The first sample after creation, a cursor mode change or re-entry only sets the baseline.
	//
	// Parameters:
	//   - callback: function receiving the motion delta in screen units
	SetMouseMoveCallback(callback func(dx, dy float32))

	// SetCursorEnterCallback sets the callback for the cursor entering or leaving the content area.
	//
	// Parameters:
	//   - callback: function receiving true on enter, false on leave
	SetCursorEnterCallback(callback func(entered bool))

	// CursorHovered reports whether the cursor is currently over the content area.
	CursorHovered() bool
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth and maxHeight bound the window size during resize.
	maxWidth  int
	maxHeight int

	// minWidth and minHeight bound the window size during resize.
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// closed is set once Close has released the platform window.
	closed atomic.Bool

	cursor cursorTracker

	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseButton func(button uint32, pressed bool)
	onMouseMove   func(dx, dy float32)
	onCursorEnter func(entered bool)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "Default Window Title",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  200,
		minHeight: 150,
		width:     800,
		height:    600,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button uint32, pressed bool)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(dx, dy float32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetCursorEnterCallback(callback func(entered bool)) {
	w.onCursorEnter = callback
}

func (w *engineWindow) CursorHovered() bool {
	return platformCursorHovered(w)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) RequestCursorCapture() error {
	w.cursor.reset()
	return platformSetCursorCaptured(w, true)
}

func (w *engineWindow) RequestCursorRelease() {
	w.cursor.reset()
	_ = platformSetCursorCaptured(w, false)
}

func (w *engineWindow) WaitEvents(timeout time.Duration) {
	platformWaitEvents(w, timeout)
}

func (w *engineWindow) Wake() {
	if w.closed.Load() {
		return
	}
	platformWake()
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// handleCursorPos turns an absolute cursor position into a relative motion callback.
func (w *engineWindow) handleCursorPos(x, y float64) {
	dx, dy, ok := w.cursor.delta(x, y)
	if ok && w.onMouseMove != nil {
		w.onMouseMove(dx, dy)
	}
}

// cursorTracker converts absolute cursor positions into deltas.
type cursorTracker struct {
	lastX, lastY float64
	primed       bool
}

// delta returns the motion since the previous sample. The first sample after a reset only
// records the baseline and reports ok == false.
func (c *cursorTracker) delta(x, y float64) (dx, dy float32, ok bool) {
	if !c.primed {
		c.lastX, c.lastY, c.primed = x, y, true
		return 0, 0, false
	}
	dx, dy = float32(x-c.lastX), float32(y-c.lastY)
	c.lastX, c.lastY = x, y
	return dx, dy, true
}

func (c *cursorTracker) reset() {
	c.primed = false
}
