package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	configured  [][2]int
	configErr   error
	presentMode PresentMode
	clearColor  mgl32.Vec4
	specs       map[DrawableHandle]drawableSpec
	initErr     error
	uniforms    map[DrawableHandle]uniformData
	calls       []string
	beginErr    error
	released    bool
}

var _ rendererBackend = &fakeBackend{}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		specs:    make(map[DrawableHandle]drawableSpec),
		uniforms: make(map[DrawableHandle]uniformData),
	}
}

func (f *fakeBackend) ConfigureSurface(width, height int) error {
	f.configured = append(f.configured, [2]int{width, height})
	return f.configErr
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = mode }
func (f *fakeBackend) SetClearColor(color mgl32.Vec4)  { f.clearColor = color }
func (f *fakeBackend) EndFrame()                       { f.calls = append(f.calls, "end") }
func (f *fakeBackend) Present()                        { f.calls = append(f.calls, "present") }
func (f *fakeBackend) Release()                        { f.released = true }

func (f *fakeBackend) InitDrawable(handle DrawableHandle, spec drawableSpec) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.specs[handle] = spec
	return nil
}

func (f *fakeBackend) WriteUniforms(handle DrawableHandle, data uniformData) {
	f.uniforms[handle] = data
}

func (f *fakeBackend) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return f.beginErr
}

func (f *fakeBackend) DrawCall(handle DrawableHandle) error {
	f.calls = append(f.calls, "draw")
	return nil
}

type testDrawable struct {
	label string
	m     model.Model
}

func (d testDrawable) Label() string        { return d.label }
func (d testDrawable) Model() model.Model   { return d.m }
func (d testDrawable) ShaderSource() string { return "// " + d.label }

func newTestRenderer(t *testing.T, options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	t.Helper()
	r := newRenderer(options...)
	f := newFakeBackend()
	require.NoError(t, r.attach(f, 800, 600))
	return r, f
}

func readFloat(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestClipCorrection(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1.6, 0.1, 100)
	m := ClipCorrection.Mul4(proj)

	near := m.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	far := m.Mul4x1(mgl32.Vec4{0, 0, -100, 1})
	assert.InDelta(t, 0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-4)

	// x and y are untouched
	p := mgl32.Vec4{0.3, -0.2, -5, 1}
	assert.InDelta(t, proj.Mul4x1(p).X(), m.Mul4x1(p).X(), 1e-6)
	assert.InDelta(t, proj.Mul4x1(p).Y(), m.Mul4x1(p).Y(), 1e-6)
}

func TestPackUniforms(t *testing.T) {
	l := light.NewLight(light.WithPosition(2, 0.9, -4), light.WithColor(1, 0.5, 0.25))
	viewProj := mgl32.Translate3D(1, 2, 3)

	data := packUniforms(viewProj, AuxParams{
		CameraPosition: mgl32.Vec3{0, 0, 3},
		Light:          l,
		Model:          mgl32.Scale3D(0.2, 0.2, 0.2),
	})

	require.Len(t, data.camera, camera.GPUCameraUniformSize)
	require.Len(t, data.light, light.GPULightSize)
	require.Len(t, data.model, ModelUniformSize)

	want := ClipCorrection.Mul4(viewProj)
	for i := range 16 {
		assert.Equal(t, want[i], readFloat(data.camera, i*4), "view_proj[%d]", i)
	}
	assert.Equal(t, float32(3), readFloat(data.camera, 72))
	assert.Equal(t, float32(-4), readFloat(data.light, 8))
	assert.Equal(t, float32(0.5), readFloat(data.light, 20))
	assert.Equal(t, float32(0.2), readFloat(data.model, 0))
	assert.Equal(t, float32(1), readFloat(data.model, 60))
}

func TestPackUniforms_Defaults(t *testing.T) {
	data := packUniforms(mgl32.Ident4(), AuxParams{})

	ident := mgl32.Ident4()
	for i := range 16 {
		assert.Equal(t, ident[i], readFloat(data.model, i*4))
	}
	for i := 0; i < light.GPULightSize; i += 4 {
		assert.Equal(t, float32(0), readFloat(data.light, i))
	}
}

func TestComposeShader(t *testing.T) {
	src := ComposeShader("@vertex fn vs_main() {}")

	assert.Contains(t, src, "struct CameraUniform")
	assert.Contains(t, src, "struct Light")
	assert.Contains(t, src, "struct VertexInput")
	assert.Contains(t, src, "@group(0) @binding(2) var<uniform> model: mat4x4<f32>;")
	assert.True(t, strings.HasSuffix(src, "@vertex fn vs_main() {}"))
	assert.Less(t, strings.Index(src, "struct CameraUniform"), strings.Index(src, "var<uniform> camera"))
}

func TestNewRenderer_AppliesOptions(t *testing.T) {
	bg := mgl32.Vec4{0.2, 0.2, 0.2, 1}
	_, f := newTestRenderer(t, WithPresentMode(PresentModeUncapped), WithClearColor(bg))

	assert.Equal(t, PresentModeUncapped, f.presentMode)
	assert.Equal(t, bg, f.clearColor)
	assert.Equal(t, [][2]int{{800, 600}}, f.configured)
}

func TestRenderer_AttachFails(t *testing.T) {
	r := newRenderer()
	f := newFakeBackend()
	f.configErr = errors.New("boom")
	assert.ErrorContains(t, r.attach(f, 1, 1), "failed to configure surface")
}

func TestRenderer_Initialize(t *testing.T) {
	r, f := newTestRenderer(t)
	cube, err := model.NewCube("cube")
	require.NoError(t, err)

	h0, err := r.Initialize(testDrawable{label: "a", m: cube})
	require.NoError(t, err)
	h1, err := r.Initialize(testDrawable{label: "b", m: cube})
	require.NoError(t, err)
	assert.NotEqual(t, h0, h1)

	spec := f.specs[h1]
	assert.Equal(t, "b", spec.label)
	assert.Equal(t, 36, spec.indexCount)
	assert.Equal(t, cube.VertexData(), spec.vertexData)
	assert.True(t, strings.HasSuffix(spec.shaderSource, "// b"))
}

func TestRenderer_InitializeErrors(t *testing.T) {
	r, f := newTestRenderer(t)

	_, err := r.Initialize(testDrawable{label: "empty"})
	assert.ErrorIs(t, err, model.ErrEmptyMesh)

	cube, err := model.NewCube("cube")
	require.NoError(t, err)
	f.initErr = errors.New("bad shader")
	_, err = r.Initialize(testDrawable{label: "broken", m: cube})
	assert.ErrorContains(t, err, `drawable "broken": bad shader`)
}

func TestRenderer_FrameLifecycle(t *testing.T) {
	r, f := newTestRenderer(t)
	cube, err := model.NewCube("cube")
	require.NoError(t, err)
	h, err := r.Initialize(testDrawable{label: "cube", m: cube})
	require.NoError(t, err)

	assert.ErrorIs(t, r.Draw(h, mgl32.Ident4(), AuxParams{}), ErrNoFrame)

	require.NoError(t, r.BeginFrame())
	assert.ErrorIs(t, r.Draw(h+1, mgl32.Ident4(), AuxParams{}), ErrUnknownDrawable)
	require.NoError(t, r.Draw(h, mgl32.Ident4(), AuxParams{CameraPosition: mgl32.Vec3{1, 2, 3}}))
	r.EndFrame()
	r.Present()
	r.EndFrame()

	assert.Equal(t, []string{"begin", "draw", "end", "present"}, f.calls)
	assert.Equal(t, float32(2), readFloat(f.uniforms[h].camera, 68))
}

func TestRenderer_BeginFrameError(t *testing.T) {
	r, f := newTestRenderer(t)
	f.beginErr = errors.New("surface lost")

	assert.EqualError(t, r.BeginFrame(), "surface lost")
	assert.ErrorIs(t, r.Draw(0, mgl32.Ident4(), AuxParams{}), ErrNoFrame)
}

func TestRenderer_Resize(t *testing.T) {
	r, f := newTestRenderer(t)

	r.Resize(1024, 768)
	r.Resize(0, 768)
	r.Resize(1024, -1)
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, f.configured)
}

func TestRenderer_SetClearColorAndRelease(t *testing.T) {
	r, f := newTestRenderer(t)

	c := mgl32.Vec4{0.2, 0.1, 0, 1}
	r.SetClearColor(c)
	assert.Equal(t, c, f.clearColor)

	r.Release()
	assert.True(t, f.released)
}
