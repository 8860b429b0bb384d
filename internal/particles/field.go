// Package particles animates the drifting, linked dot background.
package particles

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/lightbulb/internal/config"
)

// Particle is one background dot.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

// Field is a set of particles moving inside the viewport.
type Field struct {
	cfg           config.Particles
	rng           *rand.Rand
	width, height float64
	ps            []Particle
}

// New creates a field sized for a width x height viewport. The seed makes
// the layout reproducible.
func New(cfg config.Particles, width, height float64, seed int64) *Field {
	f := &Field{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	f.Resize(width, height)
	return f
}

// Count returns how many particles a width x height viewport should hold.
// With density on, the configured count applies per valueArea thousand
// square pixels.
func Count(cfg config.Particles, width, height float64) int {
	if !cfg.Density || cfg.ValueArea <= 0 {
		return cfg.Count
	}
	area := width * height / 1000
	return int(math.Round(area * float64(cfg.Count) / cfg.ValueArea))
}

// Resize adapts the field to a new viewport, adding or dropping particles to
// keep the density and wrapping strays back inside.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	n := Count(f.cfg, width, height)
	if n < len(f.ps) {
		f.ps = f.ps[:n]
	}
	for len(f.ps) < n {
		f.ps = append(f.ps, f.spawn())
	}
	for i := range f.ps {
		f.wrap(&f.ps[i])
	}
}

func (f *Field) spawn() Particle {
	angle := f.rng.Float64() * 2 * math.Pi
	return Particle{
		X:       f.rng.Float64() * f.width,
		Y:       f.rng.Float64() * f.height,
		VX:      math.Cos(angle) * f.cfg.Speed,
		VY:      math.Sin(angle) * f.cfg.Speed,
		Size:    (0.1 + 0.9*f.rng.Float64()) * f.cfg.MaxSize,
		Opacity: (0.1 + 0.9*f.rng.Float64()) * f.cfg.MaxOpacity,
	}
}

// Step moves every particle one frame.
func (f *Field) Step() {
	for i := range f.ps {
		p := &f.ps[i]
		p.X += p.VX
		p.Y += p.VY
		f.wrap(p)
	}
}

// wrap moves a particle that left the viewport to the opposite edge.
func (f *Field) wrap(p *Particle) {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	switch {
	case p.X-p.Size > f.width:
		p.X = -p.Size
	case p.X+p.Size < 0:
		p.X = f.width + p.Size
	}
	switch {
	case p.Y-p.Size > f.height:
		p.Y = -p.Size
	case p.Y+p.Size < 0:
		p.Y = f.height + p.Size
	}
}

// Particles returns the current particles. The slice is owned by the field.
func (f *Field) Particles() []Particle { return f.ps }

// Links calls fn for every pair of particles closer than the link distance,
// with the line opacity fading linearly to zero at that distance.
func (f *Field) Links(fn func(a, b *Particle, opacity float64)) {
	d := f.cfg.LinkDistance
	if d <= 0 {
		return
	}
	for i := range f.ps {
		a := &f.ps[i]
		for j := i + 1; j < len(f.ps); j++ {
			b := &f.ps[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist > d {
				continue
			}
			fn(a, b, f.cfg.LinkOpacity*(1-dist/d))
		}
	}
}
