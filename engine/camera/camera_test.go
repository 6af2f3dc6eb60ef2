package camera

import (
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func newTestCamera(t *testing.T, options ...CameraBuilderOption) Camera {
	t.Helper()
	c, err := NewCamera(options...)
	require.NoError(t, err)
	return c
}

// assertVec3 compares each component within an absolute eps.
func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlicef(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.InDeltaSlicef(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func TestNewCamera_Defaults(t *testing.T) {
	c := newTestCamera(t)

	assertVec3(t, mgl32.Vec3{0, 0, 3}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, float32(90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(2.5), c.MoveSpeed())
	assert.Equal(t, float32(40), c.MouseSpeed())
	assert.InDelta(t, mgl32.DegToRad(45), c.Fov(), eps)
	assert.InDelta(t, 1.6, c.Aspect(), eps)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
}

func TestNewCamera_InvalidConfiguration(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name   string
		option CameraBuilderOption
		field  string
	}{
		{"zero fov", WithFov(0), "fov"},
		{"straight angle fov", WithFov(math.Pi), "fov"},
		{"zero aspect", WithAspect(0), "aspect"},
		{"negative aspect", WithAspect(-1), "aspect"},
		{"zero near", WithNear(0), "near"},
		{"far before near", WithFar(0.05), "far"},
		{"zero up", WithUp(0, 0, 0), "up"},
		{"pitch past pole", WithPitch(90), "pitch"},
		{"nan move speed", WithMoveSpeed(nan), "move speed"},
		{"negative mouse speed", WithMouseSpeed(-1), "mouse speed"},
		{"infinite position", WithPosition(float32(math.Inf(1)), 0, 0), "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(tt.option)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewCamera_WrapsInitialYaw(t *testing.T) {
	assert.InDelta(t, 270, newTestCamera(t, WithYaw(-90)).Yaw(), eps)
	assert.InDelta(t, 0, newTestCamera(t, WithYaw(720)).Yaw(), eps)
	assert.InDelta(t, 10, newTestCamera(t, WithYaw(370)).Yaw(), eps)
}

func TestApplyMovement_ForwardEndToEnd(t *testing.T) {
	c := newTestCamera(t, WithMoveSpeed(2.5))
	start := c.Position()
	front := c.Front()

	c.ApplyMovement(Forward(), time.Second)

	moved := c.Position().Sub(start)
	assert.InDelta(t, 2.5, moved.Len(), eps)
	assertVec3(t, front.Mul(2.5), moved)
}

func TestApplyMovement_Translations(t *testing.T) {
	tests := []struct {
		name string
		move Movement
		want mgl32.Vec3
	}{
		{"forward", Forward(), mgl32.Vec3{0, 0, 2}},
		{"backward", Backward(), mgl32.Vec3{0, 0, 4}},
		{"strafe left", StrafeLeft(), mgl32.Vec3{-1, 0, 3}},
		{"strafe right", StrafeRight(), mgl32.Vec3{1, 0, 3}},
		{"ascend", Ascend(), mgl32.Vec3{0, 1, 3}},
		{"descend", Descend(), mgl32.Vec3{0, -1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(t, WithMoveSpeed(1))
			c.ApplyMovement(tt.move, time.Second)
			assertVec3(t, tt.want, c.Position())
		})
	}
}

func TestApplyMovement_SequentialComposition(t *testing.T) {
	c := newTestCamera(t, WithMoveSpeed(1))
	c.ApplyMovement(Forward(), time.Second)
	c.ApplyMovement(StrafeLeft(), time.Second)

	assertVec3(t, mgl32.Vec3{-1, 0, 2}, c.Position())
}

func TestApplyMovement_ZeroElapsedIsNoop(t *testing.T) {
	moves := []Movement{Forward(), Backward(), StrafeLeft(), StrafeRight(), Ascend(), Descend(), Rotate(25, -13)}
	for _, m := range moves {
		t.Run(m.Kind.String(), func(t *testing.T) {
			c := newTestCamera(t)
			pos, front, yaw, pitch := c.Position(), c.Front(), c.Yaw(), c.Pitch()

			c.ApplyMovement(m, 0)

			assert.Equal(t, pos, c.Position())
			assert.Equal(t, front, c.Front())
			assert.Equal(t, yaw, c.Yaw())
			assert.Equal(t, pitch, c.Pitch())
		})
	}
}

func TestApplyMovement_RotateReducesYaw(t *testing.T) {
	c := newTestCamera(t, WithMouseSpeed(40), WithYaw(90))

	c.ApplyMovement(Rotate(10, 0), 100*time.Millisecond)

	assert.InDelta(t, 50, c.Yaw(), eps)
	assert.Equal(t, float32(0), c.Pitch())
}

func TestApplyMovement_RotateWrapsYaw(t *testing.T) {
	c := newTestCamera(t, WithMouseSpeed(1), WithYaw(359))

	c.ApplyMovement(Rotate(-3, 0), time.Second)
	assert.InDelta(t, 2, c.Yaw(), eps)

	c.ApplyMovement(Rotate(5, 0), time.Second)
	assert.InDelta(t, 357, c.Yaw(), eps)
}

func TestApplyMovement_PitchClampAtBoundary(t *testing.T) {
	c := newTestCamera(t, WithMouseSpeed(1))

	for range 10 {
		c.ApplyMovement(Rotate(0, -30), time.Second)
		assert.LessOrEqual(t, c.Pitch(), MaxPitch)
	}
	assert.Equal(t, MaxPitch, c.Pitch())

	// rotation away from the boundary resumes immediately
	c.ApplyMovement(Rotate(0, 9), time.Second)
	assert.InDelta(t, 80, c.Pitch(), eps)

	for range 10 {
		c.ApplyMovement(Rotate(0, 30), time.Second)
		assert.GreaterOrEqual(t, c.Pitch(), -MaxPitch)
	}
	assert.Equal(t, -MaxPitch, c.Pitch())
}

func TestApplyMovement_RandomRotationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := newTestCamera(t)

	for range 5000 {
		dx := (rng.Float32() - 0.5) * 400
		dy := (rng.Float32() - 0.5) * 400
		elapsed := time.Duration(rng.Intn(50)) * time.Millisecond

		c.ApplyMovement(Rotate(dx, dy), elapsed)

		require.GreaterOrEqual(t, c.Pitch(), -MaxPitch)
		require.LessOrEqual(t, c.Pitch(), MaxPitch)
		require.GreaterOrEqual(t, c.Yaw(), float32(0))
		require.Less(t, c.Yaw(), FullTurn)
		require.InDelta(t, 1, c.Front().Len(), eps)
	}
}

func TestApplyMovement_NonFiniteRotateIgnored(t *testing.T) {
	c := newTestCamera(t)
	c.ApplyMovement(Rotate(float32(math.NaN()), 1), time.Second)

	assert.Equal(t, float32(90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
}

func TestViewProjectionMatrix_Idempotent(t *testing.T) {
	c := newTestCamera(t)
	c.ApplyMovement(Rotate(3, 4), 16*time.Millisecond)

	first := c.ViewProjectionMatrix()
	second := c.ViewProjectionMatrix()
	assert.Equal(t, first, second)
}

func TestViewProjectionMatrix_Composition(t *testing.T) {
	c := newTestCamera(t, WithPosition(1, 2, 3), WithYaw(30), WithPitch(-20))

	eye := c.Position()
	view := mgl32.LookAtV(eye, eye.Add(c.Front()), c.Up())
	proj := mgl32.Perspective(c.Fov(), c.Aspect(), c.Near(), c.Far())

	assertMat4(t, proj.Mul4(view), c.ViewProjectionMatrix())
	assertMat4(t, view, c.ViewMatrix())
	assertMat4(t, proj, c.ProjectionMatrix())
}

func TestViewProjectionMatrix_TracksState(t *testing.T) {
	c := newTestCamera(t)
	before := c.ViewProjectionMatrix()

	c.ApplyMovement(Forward(), time.Second)
	assert.NotEqual(t, before, c.ViewProjectionMatrix())
}

func TestCustomUpVector(t *testing.T) {
	c := newTestCamera(t, WithUp(0, 0, 2))

	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Up())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Front())
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), eps)

	c.ApplyMovement(Ascend(), time.Second)
	assertVec3(t, mgl32.Vec3{0, 0, 5.5}, c.Position())

	// pitching up tilts toward the configured up axis
	c.ApplyMovement(Rotate(0, -1), time.Second)
	assert.Greater(t, c.Front().Dot(c.Up()), float32(0))
}

func TestSetAspect(t *testing.T) {
	c := newTestCamera(t)

	require.NoError(t, c.SetAspect(2))
	assert.Equal(t, float32(2), c.Aspect())

	err := c.SetAspect(0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, float32(2), c.Aspect())
}

func TestGPUCameraUniform_Marshal(t *testing.T) {
	vp := mgl32.Ident4()
	u := NewGPUCameraUniform(vp, mgl32.Vec3{1, 2, 3})

	buf := u.Marshal()
	require.Len(t, buf, GPUCameraUniformSize)

	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[72:])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[76:]))
	assert.Contains(t, GPUCameraUniformSource, "view_proj")
}
