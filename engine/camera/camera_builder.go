package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - x, y, z: position components in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithYaw sets the initial yaw in degrees. Values outside [0, 360) are wrapped.
//
// Parameters:
//   - degrees: yaw angle
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's yaw
func WithYaw(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = degrees
	}
}

// WithPitch sets the initial pitch in degrees. NewCamera rejects values outside [-89, 89].
//
// Parameters:
//   - degrees: pitch angle
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch
func WithPitch(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = degrees
	}
}

// WithUp sets the camera's up vector. It is normalized on construction and yaw rotates about it.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}
	}
}

// WithMoveSpeed sets the linear speed in world units per second.
//
// Parameters:
//   - speed: linear speed
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's move speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithMouseSpeed sets the angular sensitivity in degrees per pointer unit per second.
//
// Parameters:
//   - speed: angular sensitivity
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mouse speed
func WithMouseSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSpeed = speed
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
