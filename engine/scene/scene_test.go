package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	handle   renderer.DrawableHandle
	viewProj mgl32.Mat4
	aux      renderer.AuxParams
}

type fakeRenderer struct {
	initialized []renderer.Drawable
	draws       []drawCall
	calls       []string
	clear       mgl32.Vec4
	resized     [][2]int
	initErr     error
	beginErr    error
	drawErr     error
}

func (f *fakeRenderer) Initialize(d renderer.Drawable) (renderer.DrawableHandle, error) {
	if f.initErr != nil {
		return 0, f.initErr
	}
	f.initialized = append(f.initialized, d)
	return renderer.DrawableHandle(len(f.initialized) + 10), nil
}

func (f *fakeRenderer) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return f.beginErr
}

func (f *fakeRenderer) Draw(h renderer.DrawableHandle, viewProj mgl32.Mat4, aux renderer.AuxParams) error {
	f.calls = append(f.calls, "draw")
	f.draws = append(f.draws, drawCall{h, viewProj, aux})
	return f.drawErr
}

func (f *fakeRenderer) EndFrame()                      { f.calls = append(f.calls, "end") }
func (f *fakeRenderer) Present()                       { f.calls = append(f.calls, "present") }
func (f *fakeRenderer) Resize(width, height int)       { f.resized = append(f.resized, [2]int{width, height}) }
func (f *fakeRenderer) SetClearColor(color mgl32.Vec4) { f.clear = color }
func (f *fakeRenderer) Release()                       {}

type failingDrawable struct {
	*HairCube
}

func (failingDrawable) Build() error { return errors.New("no geometry") }

func newTestLight() light.Light {
	return light.NewLight(light.WithPosition(2, 0.9, -4), light.WithColor(1, 0.5, 0))
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlicef(t, want[:], got[:], 1e-5, "want %v, got %v", want, got)
}

func TestScene_Prepare(t *testing.T) {
	r := &fakeRenderer{}
	s := NewScene(newTestLight(), WithBuildWorkers(2))

	require.NoError(t, s.Prepare(r))
	require.Len(t, r.initialized, 2)
	for _, d := range r.initialized {
		require.NotNil(t, d.Model(), d.Label())
		assert.Equal(t, 36, d.Model().IndexCount())
		assert.Contains(t, d.ShaderSource(), "fn fs_main")
	}
	assert.Equal(t, "Light Cube", r.initialized[0].Label())
	assert.Equal(t, "Hair Cube", r.initialized[1].Label())
}

func TestScene_PrepareBuildFailure(t *testing.T) {
	r := &fakeRenderer{}
	s := NewScene(newTestLight(), withDrawables(NewLightCube(), failingDrawable{NewHairCube(mgl32.Ident4())}))

	err := s.Prepare(r)
	assert.ErrorContains(t, err, `failed to build "Hair Cube": no geometry`)
	assert.Empty(t, r.initialized)
	assert.ErrorIs(t, s.RenderFrame(mgl32.Ident4(), mgl32.Vec3{}), ErrNotPrepared)
}

func TestScene_PrepareUploadFailure(t *testing.T) {
	r := &fakeRenderer{initErr: errors.New("no device")}
	s := NewScene(newTestLight())

	assert.EqualError(t, s.Prepare(r), "no device")
	assert.ErrorIs(t, s.RenderFrame(mgl32.Ident4(), mgl32.Vec3{}), ErrNotPrepared)
}

func TestScene_RenderFrame(t *testing.T) {
	r := &fakeRenderer{}
	l := newTestLight()
	hair := mgl32.Translate3D(0, 1, 0)
	s := NewScene(l, WithHairTransform(hair))
	require.NoError(t, s.Prepare(r))

	viewProj := mgl32.Translate3D(0, 0, -3)
	eye := mgl32.Vec3{0, 0, 3}
	require.NoError(t, s.RenderFrame(viewProj, eye))

	assert.Equal(t, []string{"begin", "draw", "draw", "end", "present"}, r.calls)
	assert.Equal(t, mgl32.Vec4{0.2, 0.1, 0, 1}, r.clear)

	require.Len(t, r.draws, 2)
	lightDraw, hairDraw := r.draws[0], r.draws[1]
	assert.Equal(t, renderer.DrawableHandle(11), lightDraw.handle)
	assert.Equal(t, renderer.DrawableHandle(12), hairDraw.handle)
	for _, d := range r.draws {
		assert.Equal(t, viewProj, d.viewProj)
		assert.Equal(t, eye, d.aux.CameraPosition)
		assert.Same(t, l, d.aux.Light)
	}

	center := lightDraw.aux.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	corner := lightDraw.aux.Model.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1})
	assertVec3(t, mgl32.Vec3{2, 0.9, -4}, center.Vec3())
	assertVec3(t, mgl32.Vec3{0.1, 0.1, 0.1}, corner.Vec3().Sub(center.Vec3()))
	assert.Equal(t, hair, hairDraw.aux.Model)
}

func TestScene_RenderFrameFollowsLight(t *testing.T) {
	r := &fakeRenderer{}
	s := NewScene(newTestLight())
	require.NoError(t, s.Prepare(r))

	s.Light().SetPosition(-1, 0, 0)
	s.Light().SetColor(0, 0, 1)
	require.NoError(t, s.RenderFrame(mgl32.Ident4(), mgl32.Vec3{}))

	assert.Equal(t, mgl32.Vec4{0, 0, 0.2, 1}, r.clear)
	center := r.draws[0].aux.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, center.Vec3())
}

func TestScene_RenderFrameErrors(t *testing.T) {
	r := &fakeRenderer{beginErr: errors.New("surface lost")}
	s := NewScene(newTestLight())
	require.NoError(t, s.Prepare(r))

	err := s.RenderFrame(mgl32.Ident4(), mgl32.Vec3{})
	assert.ErrorContains(t, err, "failed to begin frame: surface lost")
	assert.Equal(t, []string{"begin"}, r.calls)

	r.beginErr = nil
	r.calls = nil
	r.drawErr = errors.New("bad handle")
	err = s.RenderFrame(mgl32.Ident4(), mgl32.Vec3{})
	assert.ErrorContains(t, err, "bad handle")
	// the frame is still closed and presented
	assert.Equal(t, []string{"begin", "draw", "draw", "end", "present"}, r.calls)
}

func TestScene_Resize(t *testing.T) {
	r := &fakeRenderer{}
	s := NewScene(newTestLight())

	s.Resize(640, 480)
	require.NoError(t, s.Prepare(r))
	s.Resize(1024, 768)
	assert.Equal(t, [][2]int{{1024, 768}}, r.resized)
}
