package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/lightbulb/internal/config"
)

// bannerFrames is how long a banner stays out before sliding back.
const bannerFrames = 6 * config.TPS

// banner is a one-line notice that slides down from the top edge.
type banner struct {
	text   string
	spring harmonica.Spring
	pos    float64 // 0 hidden, 1 fully shown
	vel    float64
	frames int
}

func newBanner() banner {
	return banner{spring: harmonica.NewSpring(harmonica.FPS(config.TPS), 6.0, 0.6)}
}

func (b *banner) show(text string) {
	b.text = text
	b.frames = bannerFrames
}

func (b *banner) update() {
	target := 0.0
	if b.frames > 0 {
		b.frames--
		target = 1
	}
	b.pos, b.vel = b.spring.Update(b.pos, b.vel, target)
}

func (b *banner) visible() bool {
	return b.text != "" && (b.frames > 0 || b.pos > 0.01)
}

// y returns the banner's top edge.
func (b *banner) y() float64 {
	return -config.BannerHeight + b.pos*(config.BannerHeight+config.BannerMargin)
}
