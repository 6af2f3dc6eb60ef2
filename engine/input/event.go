package input

// Event is a raw input event delivered by the platform window.
// The set of implementations is closed: KeyChanged, PointerMoved, PointerButtonChanged,
// CursorEntered, CursorLeft and CursorCaptureReleaseRequested.
type Event interface {
	isEvent()
}

// KeyChanged reports a key transition. Key uses the codes in the common package.
type KeyChanged struct {
	Key     uint32
	Pressed bool
}

// PointerMoved reports relative pointer motion since the previous motion event.
type PointerMoved struct {
	DX, DY float32
}

// PointerButtonChanged reports a mouse button transition.
type PointerButtonChanged struct {
	Button  uint32
	Pressed bool
}

// CursorEntered reports that the cursor moved over the window's content area.
type CursorEntered struct{}

// CursorLeft reports that the cursor left the window's content area.
type CursorLeft struct{}

// CursorCaptureReleaseRequested asks for a captured cursor to be given back to the user.
type CursorCaptureReleaseRequested struct{}

func (KeyChanged) isEvent()                    {}
func (PointerMoved) isEvent()                  {}
func (PointerButtonChanged) isEvent()          {}
func (CursorEntered) isEvent()                 {}
func (CursorLeft) isEvent()                    {}
func (CursorCaptureReleaseRequested) isEvent() {}
