package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownDrawable is returned by Draw for a handle this renderer never issued.
	ErrUnknownDrawable = errors.New("unknown drawable handle")

	// ErrNoFrame is returned by Draw when no frame has been begun.
	ErrNoFrame = errors.New("no frame in progress")
)

// DrawableHandle identifies a drawable whose GPU resources were created by Initialize.
type DrawableHandle int

// Drawable is something the renderer can turn into GPU resources.
type Drawable interface {
	// Label names the drawable's GPU objects.
	Label() string

	// Model returns the mesh to upload.
	Model() model.Model

	// ShaderSource returns the WGSL body passed through ComposeShader.
	ShaderSource() string
}

// AuxParams are the per-draw values besides the view-projection matrix.
type AuxParams struct {
	CameraPosition mgl32.Vec3
	Light          light.Light
	Model          mgl32.Mat4
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend rendererBackend
	labels  map[DrawableHandle]string
	next    DrawableHandle
	inFrame bool
	logger  zerolog.Logger

	// Pre-creation config collected from builder options
	presentMode PresentMode
	clearColor  mgl32.Vec4
}

// Renderer is the render collaborator of the frame driver.
//
// A frame is BeginFrame, any number of Draw calls, EndFrame, then Present.
// Each drawable owns its uniform buffers, so it may be drawn once per frame.
type Renderer interface {
	// Initialize creates the pipeline, buffers and bind group for a drawable.
	//
	// Parameters:
	//   - d: the drawable to upload
	//
	// Returns:
	//   - DrawableHandle: the handle to pass to Draw
	//   - error: an error if the mesh is missing or a GPU object could not be created
	Initialize(d Drawable) (DrawableHandle, error)

	// BeginFrame acquires the next surface texture and opens the render pass.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame() error

	// Draw uploads the drawable's uniforms and records its draw.
	//
	// Parameters:
	//   - h: a handle returned by Initialize
	//   - viewProj: the camera's view-projection matrix
	//   - aux: camera position, light and model matrix for this draw
	//
	// Returns:
	//   - error: ErrNoFrame, ErrUnknownDrawable, or a backend error
	Draw(h DrawableHandle, viewProj mgl32.Mat4, aux AuxParams) error

	// EndFrame submits the recorded draws. It is a no-op without a frame in progress.
	EndFrame()

	// Present presents the frame.
	Present()

	// Resize reconfigures the surface. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	Resize(width, height int)

	// SetClearColor sets the background color used from the next frame on.
	SetClearColor(color mgl32.Vec4)

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer drawing to the given surface.
//
// Parameters:
//   - surfaceDescriptor: the platform surface to render into (see window.Window)
//   - width: initial framebuffer width in pixels
//   - height: initial framebuffer height in pixels
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the new renderer
//   - error: an error if no adapter or device is available or the surface cannot be configured
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)

	backend, err := newWGPURendererBackend(surfaceDescriptor)
	if err != nil {
		return nil, err
	}
	if err := r.attach(backend, width, height); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		labels:      make(map[DrawableHandle]string),
		presentMode: PresentModeVSync,
		clearColor:  mgl32.Vec4{0.1, 0.1, 0.1, 1},
		logger:      zerolog.Nop(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *renderer) attach(backend rendererBackend, width, height int) error {
	r.backend = backend
	backend.SetPresentMode(r.presentMode)
	backend.SetClearColor(r.clearColor)
	if err := backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("failed to configure surface: %w", err)
	}
	return nil
}

func (r *renderer) Initialize(d Drawable) (DrawableHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := d.Model()
	if m == nil {
		return 0, fmt.Errorf("drawable %q: %w", d.Label(), model.ErrEmptyMesh)
	}

	h := r.next
	err := r.backend.InitDrawable(h, drawableSpec{
		label:        d.Label(),
		shaderSource: ComposeShader(d.ShaderSource()),
		vertexData:   m.VertexData(),
		indexData:    m.IndexData(),
		indexCount:   m.IndexCount(),
	})
	if err != nil {
		return 0, fmt.Errorf("drawable %q: %w", d.Label(), err)
	}

	r.next++
	r.labels[h] = d.Label()
	return h, nil
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.inFrame = true
	return nil
}

func (r *renderer) Draw(h DrawableHandle, viewProj mgl32.Mat4, aux AuxParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inFrame {
		return ErrNoFrame
	}
	label, ok := r.labels[h]
	if !ok {
		return fmt.Errorf("handle %d: %w", h, ErrUnknownDrawable)
	}

	r.backend.WriteUniforms(h, packUniforms(viewProj, aux))
	if err := r.backend.DrawCall(h); err != nil {
		return fmt.Errorf("drawable %q: %w", label, err)
	}
	return nil
}

func (r *renderer) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inFrame {
		return
	}
	r.backend.EndFrame()
	r.inFrame = false
}

func (r *renderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Present()
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		r.logger.Warn().Err(err).Int("width", width).Int("height", height).Msg("surface resize failed")
	}
}

func (r *renderer) SetClearColor(color mgl32.Vec4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = color
	r.backend.SetClearColor(color)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
	r.labels = make(map[DrawableHandle]string)
	r.inFrame = false
}
