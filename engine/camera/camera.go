package camera

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxPitch is the largest absolute pitch in degrees. Looking straight along the up axis is never allowed.
	MaxPitch float32 = 89.0
	// FullTurn is the yaw period in degrees. Yaw is always kept in [0, FullTurn).
	FullTurn float32 = 360.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

type cameraImpl struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	// yaw and pitch are in degrees.
	yaw   float32
	pitch float32

	moveSpeed  float32
	mouseSpeed float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	// basis rotates the +Y up frame onto the configured up vector.
	basis mgl32.Quat
}

// Camera defines a free-look camera driven by yaw/pitch angles.
// It is not safe for concurrent use; the frame loop owns it exclusively.
type Camera interface {
	// ApplyMovement applies one movement intent scaled by the elapsed frame time.
	// Translations move by MoveSpeed * elapsed seconds along front, the strafe axis or up.
	// Rotate scales the pointer delta by MouseSpeed * elapsed seconds, clamps pitch and wraps yaw.
	// A zero or negative elapsed time leaves the camera unchanged.
	//
	// Parameters:
	//   - m: the movement intent
	//   - elapsed: time since the previous frame
	ApplyMovement(m Movement, elapsed time.Duration)

	// ViewMatrix returns the right-handed look-at matrix for the current state.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection for the current settings.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view, recomputed on every call.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Position returns the eye position in world space.
	Position() mgl32.Vec3

	// Front returns the unit look direction.
	Front() mgl32.Vec3

	// Up returns the configured unit up vector.
	Up() mgl32.Vec3

	// Yaw returns the yaw angle in degrees, in [0, 360).
	Yaw() float32

	// Pitch returns the pitch angle in degrees, in [-89, 89].
	Pitch() float32

	// MoveSpeed returns the linear speed in units per second.
	MoveSpeed() float32

	// MouseSpeed returns the angular sensitivity in degrees per pointer unit per second.
	MouseSpeed() float32

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetAspect replaces the aspect ratio, typically after a window resize.
	//
	// Parameters:
	//   - aspect: the new aspect ratio, must be finite and positive
	//
	// Returns:
	//   - error: a *ConfigurationError if the aspect ratio is rejected
	SetAspect(aspect float32) error
}

var _ Camera = &cameraImpl{}

// NewCamera builds a Camera from the given options and validates the result.
// Without options the camera sits at (0, 0, 3) looking down -Z with a 45 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
//   - error: a *ConfigurationError if any setting is invalid
func NewCamera(options ...CameraBuilderOption) (Camera, error) {
	c := &cameraImpl{
		position:   mgl32.Vec3{0, 0, 3},
		up:         worldUp,
		yaw:        90,
		pitch:      0,
		moveSpeed:  2.5,
		mouseSpeed: 40,
		fov:        mgl32.DegToRad(45),
		aspect:     8.0 / 5.0,
		near:       0.1,
		far:        100,
	}
	for _, option := range options {
		option(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.up = c.up.Normalize()
	c.basis = mgl32.QuatBetweenVectors(worldUp, c.up)
	c.yaw = wrapYaw(c.yaw)
	c.updateFront()
	return c, nil
}

func (c *cameraImpl) validate() error {
	if !finite(c.position[0]) || !finite(c.position[1]) || !finite(c.position[2]) {
		return configErr("position", "must be finite")
	}
	if !finite(c.up[0]) || !finite(c.up[1]) || !finite(c.up[2]) || c.up.Len() == 0 {
		return configErr("up", "must be a finite non-zero vector")
	}
	if !finite(c.yaw) {
		return configErr("yaw", "must be finite")
	}
	if !finite(c.pitch) || c.pitch < -MaxPitch || c.pitch > MaxPitch {
		return configErr("pitch", "must be within [-89, 89] degrees")
	}
	if !finite(c.moveSpeed) || c.moveSpeed < 0 {
		return configErr("move speed", "must be finite and non-negative")
	}
	if !finite(c.mouseSpeed) || c.mouseSpeed < 0 {
		return configErr("mouse speed", "must be finite and non-negative")
	}
	if !finite(c.fov) || c.fov <= 0 || c.fov >= math.Pi {
		return configErr("fov", "must be within (0, pi) radians")
	}
	if err := validateAspect(c.aspect); err != nil {
		return err
	}
	if !finite(c.near) || c.near <= 0 {
		return configErr("near", "must be positive")
	}
	if !finite(c.far) || c.far <= c.near {
		return configErr("far", "must be greater than near")
	}
	return nil
}

func validateAspect(aspect float32) error {
	if !finite(aspect) || aspect <= 0 {
		return configErr("aspect", "must be positive")
	}
	return nil
}

func (c *cameraImpl) ApplyMovement(m Movement, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	seconds := float32(elapsed.Seconds())
	step := c.moveSpeed * seconds

	switch m.Kind {
	case MoveForward:
		c.position = c.position.Add(c.front.Mul(step))
	case MoveBackward:
		c.position = c.position.Sub(c.front.Mul(step))
	case MoveStrafeLeft:
		c.position = c.position.Sub(c.right().Mul(step))
	case MoveStrafeRight:
		c.position = c.position.Add(c.right().Mul(step))
	case MoveAscend:
		c.position = c.position.Add(c.up.Mul(step))
	case MoveDescend:
		c.position = c.position.Sub(c.up.Mul(step))
	case MoveRotate:
		if !finite(m.DX) || !finite(m.DY) {
			return
		}
		scale := c.mouseSpeed * seconds
		c.pitch = mgl32.Clamp(c.pitch-m.DY*scale, -MaxPitch, MaxPitch)
		c.yaw = wrapYaw(c.yaw - m.DX*scale)
		c.updateFront()
	}
}

// right is the strafe axis. front is never parallel to up because pitch stays inside the poles.
func (c *cameraImpl) right() mgl32.Vec3 {
	return c.front.Cross(c.up).Normalize()
}

// updateFront recomputes the look direction from yaw and pitch.
func (c *cameraImpl) updateFront() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	local := mgl32.Vec3{
		float32(math.Cos(yaw)),
		float32(math.Tan(pitch)),
		float32(-math.Sin(yaw)),
	}.Normalize()
	c.front = c.basis.Rotate(local).Normalize()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	return c.front
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) MoveSpeed() float32 {
	return c.moveSpeed
}

func (c *cameraImpl) MouseSpeed() float32 {
	return c.mouseSpeed
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) error {
	if err := validateAspect(aspect); err != nil {
		return err
	}
	c.aspect = aspect
	return nil
}

// wrapYaw maps any finite angle into [0, 360).
// Per-frame deltas are small so a single step normally suffices.
func wrapYaw(yaw float32) float32 {
	if yaw >= FullTurn {
		yaw -= FullTurn
	} else if yaw < 0 {
		yaw += FullTurn
	}
	if yaw < 0 || yaw >= FullTurn {
		yaw = float32(math.Mod(float64(yaw), float64(FullTurn)))
		if yaw < 0 {
			yaw += FullTurn
		}
	}
	// float32 rounding can land exactly on 360 (e.g. -1e-6 + 360).
	if yaw >= FullTurn {
		yaw = 0
	}
	return yaw
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
