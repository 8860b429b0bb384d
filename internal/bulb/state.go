package bulb

import (
	"math"
	"time"
)

// Vec2 is a point or vector in viewport pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// State is the physical state of the bulb.
type State struct {
	Position Vec2
	// Velocity is in pixels per tick.
	Velocity   Vec2
	IsOn       bool
	IsDragging bool
	LastToggle time.Time

	// Anchor and RestLength are derived from the viewport on every tick.
	Anchor     Vec2
	RestLength float64
}

// Curve is a quadratic Bezier from Start to End bent toward Control.
type Curve struct {
	Start, Control, End Vec2
}

// At returns the point at parameter t in [0, 1].
func (c Curve) At(t float64) Vec2 {
	u := 1 - t
	return Vec2{
		X: u*u*c.Start.X + 2*u*t*c.Control.X + t*t*c.End.X,
		Y: u*u*c.Start.Y + 2*u*t*c.Control.Y + t*t*c.End.Y,
	}
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	// Bulb is the bulb centre.
	Bulb        Vec2
	BulbWidth   float64
	BulbHeight  float64
	Rope        Curve
	GlowRadius  float64
	GlowOpacity float64
	IsOn        bool
}
