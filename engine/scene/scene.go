package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ClearColorFactor scales the light color into the background color.
const ClearColorFactor = 0.2

// ErrNotPrepared is returned by RenderFrame before Prepare has succeeded.
var ErrNotPrepared = errors.New("scene not prepared")

type scene struct {
	mu *sync.Mutex

	light     light.Light
	drawables []meshDrawable
	handles   []renderer.DrawableHandle
	r         renderer.Renderer

	buildWorkers int
	logger       zerolog.Logger
}

// Scene is the demo scene: a hair-shaded cube lit by a point light, with a small cube marking the light.
// It implements the engine's frame renderer.
type Scene interface {
	// Prepare builds every drawable's mesh on a worker pool, then uploads them through the renderer.
	//
	// Parameters:
	//   - r: the renderer the scene draws with from now on
	//
	// Returns:
	//   - error: the first mesh build or upload failure
	Prepare(r renderer.Renderer) error

	// RenderFrame draws one frame with the given camera matrix and eye position.
	// A failed draw does not stop the remaining drawables; all failures are returned joined.
	//
	// Parameters:
	//   - viewProj: the camera's view-projection matrix
	//   - eye: the camera's world-space position
	//
	// Returns:
	//   - error: ErrNotPrepared, a frame acquisition error, or the joined draw errors
	RenderFrame(viewProj mgl32.Mat4, eye mgl32.Vec3) error

	// Resize forwards a framebuffer resize to the renderer.
	Resize(width, height int)

	// Light returns the scene light. Changes to it show from the next frame.
	Light() light.Light
}

var _ Scene = &scene{}

// NewScene creates the demo scene lit by the given light.
//
// Parameters:
//   - l: the scene light
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(l light.Light, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:           &sync.Mutex{},
		light:        l,
		buildWorkers: max(runtime.NumCPU()-1, 1),
		logger:       zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	if s.drawables == nil {
		s.drawables = []meshDrawable{NewLightCube(), NewHairCube(mgl32.Ident4())}
	}
	return s
}

func (s *scene) Prepare(r renderer.Renderer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.buildMeshes(); err != nil {
		return err
	}

	// GPU uploads stay on the calling goroutine, which owns the device.
	handles := make([]renderer.DrawableHandle, len(s.drawables))
	for i, d := range s.drawables {
		h, err := r.Initialize(d)
		if err != nil {
			return err
		}
		handles[i] = h
	}

	s.r = r
	s.handles = handles
	s.logger.Debug().Int("drawables", len(handles)).Msg("scene prepared")
	return nil
}

func (s *scene) buildMeshes() error {
	pool := worker.NewDynamicWorkerPool(min(s.buildWorkers, len(s.drawables)), len(s.drawables), time.Second)
	defer pool.Stop()

	wg := &sync.WaitGroup{}
	errs := make([]error, len(s.drawables))
	for i, d := range s.drawables {
		wg.Add(1)
		idx, dCap := i, d
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				if err := dCap.Build(); err != nil {
					errs[idx] = fmt.Errorf("failed to build %q: %w", dCap.Label(), err)
				}
				return nil, errs[idx]
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *scene) RenderFrame(viewProj mgl32.Mat4, eye mgl32.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return ErrNotPrepared
	}

	c := s.light.Color().Mul(ClearColorFactor)
	s.r.SetClearColor(c.Vec4(1))

	if err := s.r.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}

	var errs []error
	for i, d := range s.drawables {
		err := s.r.Draw(s.handles[i], viewProj, renderer.AuxParams{
			CameraPosition: eye,
			Light:          s.light,
			Model:          d.Transform(s.light),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.r.EndFrame()
	s.r.Present()
	return errors.Join(errs...)
}

func (s *scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return
	}
	s.r.Resize(width, height)
}

func (s *scene) Light() light.Light {
	return s.light
}
