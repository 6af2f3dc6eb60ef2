package renderer

import "github.com/go-gl/mathgl/mgl32"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// drawableSpec is everything the backend needs to create the GPU resources of one drawable.
type drawableSpec struct {
	label        string
	shaderSource string
	vertexData   []byte
	indexData    []byte
	indexCount   int
}

// uniformData holds the packed contents of the three group 0 uniform buffers for one draw.
type uniformData struct {
	camera []byte
	light  []byte
	model  []byte
}

// rendererBackend is the GPU API behind the Renderer.
// Drawables are addressed by the handle the Renderer allocated for them.
type rendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and depth buffer for the given size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the depth texture could not be created
	ConfigureSurface(width, height int) error

	// SetPresentMode sets the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the frame's color attachment is cleared to.
	SetClearColor(color mgl32.Vec4)

	// InitDrawable creates the pipeline, mesh buffers, uniform buffers and bind group for a drawable.
	//
	// Parameters:
	//   - handle: the handle the drawable will be drawn through
	//   - spec: shader source and packed mesh data
	//
	// Returns:
	//   - error: an error if any GPU object could not be created
	InitDrawable(handle DrawableHandle, spec drawableSpec) error

	// WriteUniforms uploads the uniform data for the drawable's next draw.
	WriteUniforms(handle DrawableHandle, data uniformData)

	// BeginFrame acquires the next surface texture and opens the frame's render pass.
	BeginFrame() error

	// DrawCall records an indexed draw of the drawable into the open render pass.
	DrawCall(handle DrawableHandle) error

	// EndFrame closes the render pass and submits the frame's commands.
	EndFrame()

	// Present presents the acquired surface texture.
	Present()

	// Release frees every GPU object held by the backend.
	Release()
}
