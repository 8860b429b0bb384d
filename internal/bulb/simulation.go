// Package bulb simulates a light bulb hanging on an elastic rope from the top
// centre of the viewport.
package bulb

import (
	"math"
	"time"

	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/input"
)

// Simulation owns the bulb state. It is not safe for concurrent use; input
// and ticks are expected on the same goroutine.
type Simulation struct {
	cfg      config.Simulation
	state    State
	viewport Viewport
}

func New(cfg config.Simulation) *Simulation {
	return &Simulation{cfg: cfg}
}

// State returns a copy of the current state.
func (s *Simulation) State() State { return s.state }

// Reset hangs the bulb motionless at its rest position for vp.
func (s *Simulation) Reset(vp Viewport) {
	s.viewport = vp
	s.state.Anchor = Vec2{X: vp.Width / 2}
	s.state.RestLength = vp.Height * s.cfg.RestRatio
	s.state.Position = Vec2{X: s.state.Anchor.X, Y: s.state.RestLength}
	s.state.Velocity = Vec2{}
}

// HandleInput applies one input event at time now. It reports whether the
// light was switched.
func (s *Simulation) HandleInput(now time.Time, ev input.Event) bool {
	st := &s.state
	switch ev.Kind {
	case input.DragBegin:
		st.IsDragging = true
		st.Position = s.belowAnchor(Vec2{ev.X, ev.Y})
		if !s.cfg.InheritGrabVelocity {
			st.Velocity = Vec2{}
		}

	case input.DragMove:
		p := s.belowAnchor(Vec2{ev.X, ev.Y})
		st.Velocity = p.Sub(st.Position)
		st.Position = p

	case input.DragEnd:
		st.IsDragging = false
		pull := ev.Y - s.viewport.Height*s.cfg.RestRatio
		if pull > s.cfg.PullThreshold {
			return s.toggle(now)
		}

	case input.Tilt:
		if st.IsDragging {
			return false
		}
		st.Velocity.X += ev.Gamma * s.cfg.TiltSensitivity * s.cfg.TiltScale
		st.Velocity.X = clamp(st.Velocity.X, -s.cfg.MaxTiltVelocity, s.cfg.MaxTiltVelocity)

	case input.ToggleRequest:
		return s.toggle(now)
	}
	return false
}

// toggle flips the light unless the last accepted toggle was less than the
// debounce window ago.
func (s *Simulation) toggle(now time.Time) bool {
	st := &s.state
	if !st.LastToggle.IsZero() && now.Sub(st.LastToggle) < s.cfg.ToggleDebounce {
		return false
	}
	st.IsOn = !st.IsOn
	st.LastToggle = now
	return true
}

// Tick advances the simulation by one frame and returns what to draw.
func (s *Simulation) Tick(vp Viewport) Snapshot {
	s.viewport = vp
	st := &s.state
	st.Anchor = Vec2{X: vp.Width / 2}
	st.RestLength = vp.Height * s.cfg.RestRatio

	if !st.IsDragging {
		d := st.Position.Sub(st.Anchor)
		dist := d.Len()

		st.Velocity.Y += s.cfg.Gravity

		// the rope only resists stretching
		if dist > st.RestLength {
			n := d.Scale(1 / dist)
			st.Velocity = st.Velocity.Sub(n.Scale((dist - st.RestLength) * s.cfg.Stiffness))
		}

		st.Velocity = st.Velocity.Scale(s.cfg.Damping)
		st.Position = st.Position.Add(st.Velocity)
	}

	st.Position = s.belowAnchor(st.Position)

	return s.snapshot(vp)
}

// belowAnchor keeps p at least MinDrop below the anchor.
func (s *Simulation) belowAnchor(p Vec2) Vec2 {
	p.Y = math.Max(p.Y, s.state.Anchor.Y+s.cfg.MinDrop)
	return p
}

func (s *Simulation) snapshot(vp Viewport) Snapshot {
	st := s.state
	attach := Vec2{X: st.Position.X, Y: st.Position.Y - s.cfg.BulbHeight/2 + 5}
	mid := st.Anchor.Add(attach).Scale(0.5)
	radius := math.Max(vp.Width, vp.Height) / s.cfg.GlowRadiusDivisor

	snap := Snapshot{
		Bulb:       st.Position,
		BulbWidth:  s.cfg.BulbWidth,
		BulbHeight: s.cfg.BulbHeight,
		Rope:       Curve{Start: st.Anchor, Control: mid, End: attach},
		GlowRadius: radius,
		IsOn:       st.IsOn,
	}
	if st.IsOn {
		ref := Vec2{X: vp.Width / 2, Y: vp.Height * s.cfg.GlowReferenceY}
		snap.GlowOpacity = GlowStrength(st.Position.Sub(ref).Len(), radius, s.cfg)
	}
	return snap
}

// GlowStrength is the overlay opacity for a bulb dist pixels from the
// reference point. It falls off with the square of the distance and never
// exceeds cfg.GlowMax.
func GlowStrength(dist, radius float64, cfg config.Simulation) float64 {
	if radius <= 0 {
		return 0
	}
	strength := 1 / (1 + dist*dist/(radius*radius*cfg.GlowFalloff))
	return clamp(strength, 0, cfg.GlowMax)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
