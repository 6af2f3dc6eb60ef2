package input

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

// Action is a logical movement control. Constants are declared in the order the frame
// driver evaluates them.
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionDescend
	ActionAscend

	// ActionCount is the number of actions.
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionForward:     "forward",
	ActionBackward:    "backward",
	ActionStrafeLeft:  "strafe_left",
	ActionStrafeRight: "strafe_right",
	ActionDescend:     "descend",
	ActionAscend:      "ascend",
}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction resolves an action name such as "forward" or "strafe_left".
//
// Parameters:
//   - name: action name, case-insensitive
//
// Returns:
//   - Action: the parsed action
//   - bool: false if the name is unknown
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Bindings maps key codes to actions. Several keys may share one action.
type Bindings map[uint32]Action

// DefaultBindings returns the WASD layout with Space to ascend and Left Shift to descend.
//
// Returns:
//   - Bindings: a fresh bindings map
func DefaultBindings() Bindings {
	return Bindings{
		common.KeyW:         ActionForward,
		common.KeyS:         ActionBackward,
		common.KeyA:         ActionStrafeLeft,
		common.KeyD:         ActionStrafeRight,
		common.KeyLeftShift: ActionDescend,
		common.KeySpace:     ActionAscend,
	}
}
