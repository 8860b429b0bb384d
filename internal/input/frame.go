package input

// Touch is one touch point in screen coordinates.
type Touch struct {
	ID   int
	X, Y int
}

// Frame is the raw pointer and keyboard state for one frame.
// Touch slices are only valid until the next Poll.
type Frame struct {
	MouseX, MouseY    int
	MousePressed      bool
	MouseJustPressed  bool
	MouseJustReleased bool

	// Touches are the active touches, JustTouched the ones that started
	// this frame.
	Touches     []Touch
	JustTouched []Touch

	ToggleKey bool
	// AnyKey is true when any key went down this frame.
	AnyKey bool
}
