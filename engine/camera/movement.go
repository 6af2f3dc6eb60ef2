package camera

// MovementKind tags a Movement intent.
type MovementKind uint8

const (
	MoveForward MovementKind = iota
	MoveBackward
	MoveStrafeLeft
	MoveStrafeRight
	MoveAscend
	MoveDescend
	MoveRotate
)

// String returns the lower-case name of the movement kind.
func (k MovementKind) String() string {
	switch k {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveStrafeLeft:
		return "strafe_left"
	case MoveStrafeRight:
		return "strafe_right"
	case MoveAscend:
		return "ascend"
	case MoveDescend:
		return "descend"
	case MoveRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Movement is a single motion command applied to a Camera.
// DX and DY are only meaningful for MoveRotate and hold the raw pointer delta.
type Movement struct {
	Kind   MovementKind
	DX, DY float32
}

// Forward moves the camera along its front vector.
func Forward() Movement { return Movement{Kind: MoveForward} }

// Backward moves the camera against its front vector.
func Backward() Movement { return Movement{Kind: MoveBackward} }

// StrafeLeft moves the camera against its right vector.
func StrafeLeft() Movement { return Movement{Kind: MoveStrafeLeft} }

// StrafeRight moves the camera along its right vector.
func StrafeRight() Movement { return Movement{Kind: MoveStrafeRight} }

// Ascend moves the camera along its up vector.
func Ascend() Movement { return Movement{Kind: MoveAscend} }

// Descend moves the camera against its up vector.
func Descend() Movement { return Movement{Kind: MoveDescend} }

// Rotate builds a rotation intent from a pointer delta in pixels.
//
// Parameters:
//   - dx: horizontal pointer delta
//   - dy: vertical pointer delta
//
// Returns:
//   - Movement: the rotation intent
func Rotate(dx, dy float32) Movement {
	return Movement{Kind: MoveRotate, DX: dx, DY: dy}
}
