// Package render draws a bulb.Snapshot and the page around it with ebiten.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lightbulb/internal/bulb"
	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/particles"
	"github.com/iburimskiy/lightbulb/internal/projects"
)

var (
	backgroundColor = color.RGBA{R: 13, G: 13, B: 18, A: 255}
	warmColor       = color.RGBA{R: 255, G: 204, B: 51, A: 255}  // #ffcc33
	paleWarmColor   = color.RGBA{R: 255, G: 235, B: 153, A: 255} // #ffeb99
	haloColor       = color.RGBA{R: 255, G: 229, B: 153, A: 255} // #ffe599
	ropeOffColor    = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	bulbOffColor    = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	bulbOffMid      = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	bulbOffShine    = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	socketColor     = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	panelColor      = color.RGBA{R: 20, G: 22, B: 30, A: 235}
	panelBorder     = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	bannerColor     = color.RGBA{R: 90, G: 60, B: 20, A: 230}
)

// Modal is an open project card.
type Modal struct {
	Project projects.Project
	Preview string
}

// Renderer turns simulation snapshots into pixels.
type Renderer struct {
	page          config.Page
	glowRefY      float64
	particleColor color.RGBA
	linkColor     color.RGBA
	banner        banner
	help          string
}

func New(cfg *config.Config, projectCount int) *Renderer {
	help := fmt.Sprintf("Drag the bulb or press %s | M: sound | F: fullscreen", cfg.Input.ToggleKey)
	if projectCount > 0 {
		help += fmt.Sprintf(" | 1-%d: projects", min(projectCount, 9))
	}
	return &Renderer{
		page:          cfg.Page,
		glowRefY:      cfg.Simulation.GlowReferenceY,
		particleColor: mustColor(cfg.Particles.Color, paleWarmColor),
		linkColor:     mustColor(cfg.Particles.LinkColor, ropeOffColor),
		banner:        newBanner(),
		help:          help,
	}
}

// ShowBanner slides a notice in from the top edge.
func (r *Renderer) ShowBanner(text string) {
	r.banner.show(text)
}

// Update advances renderer-only animation. Call once per tick.
func (r *Renderer) Update() {
	r.banner.update()
}

// Draw paints one frame. field and modal may be nil.
func (r *Renderer) Draw(screen *ebiten.Image, snap bulb.Snapshot, field *particles.Field, modal *Modal) {
	screen.Fill(backgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if field != nil {
		r.drawParticles(screen, field)
	}
	r.drawHeadline(screen, snap, float64(w), float64(h))
	if snap.IsOn {
		r.drawLight(screen, snap)
	}
	r.drawRope(screen, snap)
	r.drawBulb(screen, snap)

	ebitenutil.DebugPrintAt(screen, r.help, 12, h-24)

	if modal != nil {
		r.drawModal(screen, modal, w, h)
	}
	if r.banner.visible() {
		r.drawBanner(screen, w)
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, field *particles.Field) {
	field.Links(func(a, b *particles.Particle, opacity float64) {
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, withAlpha(r.linkColor, opacity), false)
	})
	for _, p := range field.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(r.particleColor, p.Opacity), true)
	}
}

// drawHeadline draws the page headline with the glow overlay behind it.
func (r *Renderer) drawHeadline(screen *ebiten.Image, snap bulb.Snapshot, w, h float64) {
	cx := w / 2
	cy := h * r.glowRefY
	textW := float64(max(len(r.page.Headline), len(r.page.Tagline)) * debugCharWidth)

	if snap.GlowOpacity > 0 {
		ow, oh := textW+80, 70.0
		vector.DrawFilledRect(screen, float32(cx-ow/2), float32(cy-oh/2), float32(ow), float32(oh), withAlpha(haloColor, snap.GlowOpacity), true)
	}

	ebitenutil.DebugPrintAt(screen, r.page.Headline, int(cx)-len(r.page.Headline)*debugCharWidth/2, int(cy)-18)
	ebitenutil.DebugPrintAt(screen, r.page.Tagline, int(cx)-len(r.page.Tagline)*debugCharWidth/2, int(cy)+2)
}

func (r *Renderer) drawLight(screen *ebiten.Image, snap bulb.Snapshot) {
	x, y := float32(snap.Bulb.X), float32(snap.Bulb.Y)
	vector.DrawFilledCircle(screen, x, y, float32(snap.GlowRadius), withAlpha(warmColor, 0.08), true)
	vector.DrawFilledCircle(screen, x, y, float32(snap.GlowRadius*0.9), withAlpha(warmColor, 0.08), true)
	vector.DrawFilledCircle(screen, x, y, float32(snap.GlowRadius*0.5), withAlpha(haloColor, 0.15), true)
}

func (r *Renderer) drawRope(screen *ebiten.Image, snap bulb.Snapshot) {
	clr := ropeOffColor
	if snap.IsOn {
		clr = warmColor
	}
	prev := snap.Rope.Start
	for i := 1; i <= config.RopeSegments; i++ {
		p := snap.Rope.At(float64(i) / config.RopeSegments)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), config.RopeWidth, clr, true)
		prev = p
	}
}

func (r *Renderer) drawBulb(screen *ebiten.Image, snap bulb.Snapshot) {
	body, mid, shine := bulbOffColor, bulbOffMid, bulbOffShine
	if snap.IsOn {
		body, mid, shine = warmColor, paleWarmColor, color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	x, y := snap.Bulb.X, snap.Bulb.Y
	rw := snap.BulbWidth / 2

	// socket above the glass
	sw, sh := snap.BulbWidth*0.45, snap.BulbHeight*0.22
	vector.DrawFilledRect(screen, float32(x-sw/2), float32(y-snap.BulbHeight/2), float32(sw), float32(sh), socketColor, false)

	gy := y + snap.BulbHeight*0.1
	vector.DrawFilledCircle(screen, float32(x), float32(gy), float32(rw), body, true)
	vector.DrawFilledCircle(screen, float32(x-rw*0.2), float32(gy-rw*0.2), float32(rw*0.6), mid, true)
	vector.DrawFilledCircle(screen, float32(x-rw*0.4), float32(gy-rw*0.4), float32(rw*0.25), shine, true)
}

func (r *Renderer) drawModal(screen *ebiten.Image, m *Modal, w, h int) {
	x := (w - config.ModalWidth) / 2
	y := (h - config.ModalHeight) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), config.ModalWidth, config.ModalHeight, panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.ModalWidth, config.ModalHeight, 2, panelBorder, false)

	cols := (config.ModalWidth - 2*config.ModalPadding) / debugCharWidth
	lines := []string{m.Project.Title, ""}
	lines = append(lines, wrapText(m.Project.Description, cols)...)
	if len(m.Project.Tech) > 0 {
		lines = append(lines, "", "Tech: "+strings.Join(m.Project.Tech, ", "))
	}
	if len(m.Project.Features) > 0 {
		lines = append(lines, "", "Features:")
		for _, f := range m.Project.Features {
			lines = append(lines, wrapText("- "+f, cols)...)
		}
	}
	lines = append(lines, "", m.Project.Link, "Preview: "+m.Preview, "", "Esc to close")

	ty := y + config.ModalPadding
	for _, line := range lines {
		if ty > y+config.ModalHeight-config.ModalPadding {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+config.ModalPadding, ty)
		ty += 16
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, w int) {
	by := r.banner.y()
	bw := float32(len(r.banner.text)*debugCharWidth + 24)
	bx := (float32(w) - bw) / 2
	vector.DrawFilledRect(screen, bx, float32(by), bw, config.BannerHeight, bannerColor, false)
	vector.StrokeRect(screen, bx, float32(by), bw, config.BannerHeight, 1, warmColor, false)
	ebitenutil.DebugPrintAt(screen, r.banner.text, int(bx)+12, int(by)+6)
}
