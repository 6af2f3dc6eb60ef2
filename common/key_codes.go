package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyC         = 67  // C key (ASCII)
	KeyF         = 70  // F key (ASCII)
	KeyR         = 82  // R key (ASCII)
	KeyX         = 88  // X key (ASCII)
	KeyZ         = 90  // Z key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyTab       = 258 // Tab key (GLFW)
)

// Additional non-printable keys
const (
	KeyRight        = 262 // Right arrow (GLFW)
	KeyLeft         = 263 // Left arrow (GLFW)
	KeyDown         = 264 // Down arrow (GLFW)
	KeyUp           = 265 // Up arrow (GLFW)
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// Mouse button codes, matching GLFW mouse button numbering.
const (
	MouseButtonPrimary   = 0 // Left button (GLFW_MOUSE_BUTTON_1)
	MouseButtonSecondary = 1 // Right button (GLFW_MOUSE_BUTTON_2)
	MouseButtonMiddle    = 2 // Middle button (GLFW_MOUSE_BUTTON_3)
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"W":            KeyW,
	"A":            KeyA,
	"S":            KeyS,
	"D":            KeyD,
	"Q":            KeyQ,
	"E":            KeyE,
	"C":            KeyC,
	"F":            KeyF,
	"R":            KeyR,
	"X":            KeyX,
	"Z":            KeyZ,
	"SPACE":        KeySpace,
	"BACKSPACE":    KeyBackspace,
	"ESCAPE":       KeyEsc,
	"ESC":          KeyEsc,
	"TAB":          KeyTab,
	"RIGHT":        KeyRight,
	"LEFT":         KeyLeft,
	"DOWN":         KeyDown,
	"UP":           KeyUp,
	"LEFTSHIFT":    KeyLeftShift,
	"LSHIFT":       KeyLeftShift,
	"LEFTCONTROL":  KeyLeftControl,
	"LCTRL":        KeyLeftControl,
	"RIGHTSHIFT":   KeyRightShift,
	"RSHIFT":       KeyRightShift,
	"RIGHTCONTROL": KeyRightControl,
	"RCTRL":        KeyRightControl,
}

// KeyByName resolves a key name such as "W", "Space" or "LeftShift" to its key code.
// Lookup is case-insensitive and ignores surrounding whitespace.
//
// Parameters:
//   - name: the key name to resolve
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is not known
func KeyByName(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return code, ok
}
