package window

import "github.com/Carmen-Shannon/oxy-viewer/engine/input"

// ForwardInput registers callbacks on src that translate raw window input into input events.
// If the cursor is already over the window a CursorEntered event is sent immediately, since
// the platform only reports enter transitions.
//
// Parameters:
//   - src: the window (or any input source)
//   - handle: receives every translated event, typically Engine.HandleEvent
func ForwardInput(src InputSource, handle func(input.Event)) {
	src.SetKeyDownCallback(func(keyCode uint32) {
		handle(input.KeyChanged{Key: keyCode, Pressed: true})
	})
	src.SetKeyUpCallback(func(keyCode uint32) {
		handle(input.KeyChanged{Key: keyCode, Pressed: false})
	})
	src.SetMouseButtonCallback(func(button uint32, pressed bool) {
		handle(input.PointerButtonChanged{Button: button, Pressed: pressed})
	})
	src.SetMouseMoveCallback(func(dx, dy float32) {
		handle(input.PointerMoved{DX: dx, DY: dy})
	})
	src.SetCursorEnterCallback(func(entered bool) {
		if entered {
			handle(input.CursorEntered{})
		} else {
			handle(input.CursorLeft{})
		}
	})

	if src.CursorHovered() {
		handle(input.CursorEntered{})
	}
}
