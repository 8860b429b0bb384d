// Package input turns mouse, touch, keyboard and tilt input into the small
// set of events the bulb simulation understands.
package input

import "fmt"

// EventKind identifies an input event variant.
type EventKind int

const (
	// DragBegin starts a grab at (X, Y).
	DragBegin EventKind = iota
	// DragMove moves an active grab to (X, Y).
	DragMove
	// DragEnd releases the grab; only Y is meaningful.
	DragEnd
	// Tilt carries a lateral device tilt in degrees.
	Tilt
	// ToggleRequest asks for the light to be switched.
	ToggleRequest
)

func (k EventKind) String() string {
	switch k {
	case DragBegin:
		return "DragBegin"
	case DragMove:
		return "DragMove"
	case DragEnd:
		return "DragEnd"
	case Tilt:
		return "Tilt"
	case ToggleRequest:
		return "ToggleRequest"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is produced by the Sampler and consumed in the same frame.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Gamma float64
}

func (e Event) String() string {
	switch e.Kind {
	case DragBegin, DragMove:
		return fmt.Sprintf("%s{%.1f,%.1f}", e.Kind, e.X, e.Y)
	case DragEnd:
		return fmt.Sprintf("%s{%.1f}", e.Kind, e.Y)
	case Tilt:
		return fmt.Sprintf("%s{%.2f}", e.Kind, e.Gamma)
	}
	return e.Kind.String()
}

// HitCircle is the circular grab area of the draggable element.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
