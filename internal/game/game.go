// Package game hosts the bulb simulation inside the ebiten game loop.
package game

import (
	"context"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/lightbulb/internal/bulb"
	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/input"
	"github.com/iburimskiy/lightbulb/internal/input/ebitensrc"
	"github.com/iburimskiy/lightbulb/internal/particles"
	"github.com/iburimskiy/lightbulb/internal/projects"
	"github.com/iburimskiy/lightbulb/internal/render"
	"github.com/iburimskiy/lightbulb/internal/settings"
	"github.com/iburimskiy/lightbulb/internal/sound"
)

const volumeStep = 0.1

var projectKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Options configure a Game. Only Config is required.
type Options struct {
	Config  *config.Config
	Tilt    input.TiltSource
	Store   *gdata.Manager
	Catalog *projects.Catalog
	// Assets holds project preview images. Nil means every project uses
	// the fallback preview.
	Assets fs.FS
	// Seed seeds the particle field.
	Seed int64
}

// Game implements ebiten.Game.
type Game struct {
	cancel  context.CancelFunc
	now     func() time.Time
	assets  fs.FS
	catalog *projects.Catalog

	sim      *bulb.Simulation
	poller   *ebitensrc.Poller
	sampler  *input.Sampler
	player   *sound.Player
	settings *settings.Manager
	field    *particles.Field
	renderer *render.Renderer

	viewport bulb.Viewport
	pending  bulb.Viewport
	snap     bulb.Snapshot
	modal    *render.Modal

	// input edge detection for app keys
	prevKey map[ebiten.Key]bool
}

// New builds a Game and opens the speaker.
func New(opts Options) (*Game, error) {
	return newGame(opts, sound.New(opts.Config.Sound))
}

func newGame(opts Options, player *sound.Player) (*Game, error) {
	cfg := opts.Config
	key, err := ebitensrc.ParseKey(cfg.Input.ToggleKey)
	if err != nil {
		return nil, err
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = projects.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		cancel:   cancel,
		now:      time.Now,
		assets:   opts.Assets,
		catalog:  catalog,
		sim:      bulb.New(cfg.Simulation),
		poller:   ebitensrc.NewPoller(key),
		player:   player,
		renderer: render.New(cfg, catalog.Len()),
		prevKey:  map[ebiten.Key]bool{},
	}

	defaults := settings.DefaultPreferences()
	defaults.SoundEnabled = cfg.Sound.Enabled
	defaults.Volume = cfg.Sound.Volume
	g.settings = settings.NewManager(opts.Store, defaults)
	prefs := g.settings.Preferences()
	g.player.SetEnabled(prefs.SoundEnabled)
	g.player.SetVolume(prefs.Volume)

	vp := bulb.Viewport{Width: config.WindowWidth, Height: config.WindowHeight}
	g.field = particles.New(cfg.Particles, vp.Width, vp.Height, opts.Seed)
	g.resize(vp)

	g.sampler = input.NewSampler(ctx, opts.Tilt, g.tiltUnavailable)
	return g, nil
}

// Close stops any pending permission request.
func (g *Game) Close() {
	g.cancel()
}

// Settings returns the preference manager.
func (g *Game) Settings() *settings.Manager { return g.settings }

func (g *Game) Update() error {
	if g.pending != g.viewport {
		g.resize(g.pending)
	}

	frame := g.poller.Poll()
	events := g.sampler.Sample(frame, bulbHitCircle(g.snap))
	g.handleEvents(g.now(), events)
	g.snap = g.sim.Tick(g.viewport)
	g.field.Step()
	g.renderer.Update()

	return g.handleKeys()
}

// handleEvents feeds events to the simulation and clicks on every
// accepted toggle. While a project card is open only a drag that started
// before it opened keeps moving and can be released.
func (g *Game) handleEvents(now time.Time, events []input.Event) {
	for _, ev := range events {
		if g.modal != nil && !continuesDrag(ev, g.sim.State().IsDragging) {
			continue
		}
		if g.sim.HandleInput(now, ev) {
			g.player.Click(g.sim.State().IsOn)
		}
	}
}

func continuesDrag(ev input.Event, dragging bool) bool {
	return dragging && (ev.Kind == input.DragMove || ev.Kind == input.DragEnd)
}

func (g *Game) handleKeys() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) {
		if g.modal != nil {
			g.modal = nil
			return nil
		}
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		g.toggleSound()
	}
	if justPressed(ebiten.KeyMinus) {
		g.changeVolume(-volumeStep)
	}
	if justPressed(ebiten.KeyEqual) {
		g.changeVolume(volumeStep)
	}
	if justPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}
	for i, k := range projectKeys {
		if justPressed(k) {
			g.openProject(i + 1)
		}
	}
	return nil
}

func (g *Game) toggleSound() {
	enabled := !g.settings.Preferences().SoundEnabled
	g.settings.SetSoundEnabled(enabled)
	g.player.SetEnabled(enabled)
	g.savePreferences()
}

func (g *Game) changeVolume(delta float64) {
	g.settings.SetVolume(g.settings.Preferences().Volume + delta)
	g.player.SetVolume(g.settings.Preferences().Volume)
	g.savePreferences()
}

func (g *Game) toggleFullscreen() {
	enabled := !g.settings.Preferences().Fullscreen
	g.settings.SetFullscreen(enabled)
	ebiten.SetFullscreen(enabled)
	g.savePreferences()
}

func (g *Game) savePreferences() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Game] %v", err)
	}
}

// openProject shows the n-th project (1-based) of the catalog. Unknown
// projects leave the page unchanged.
func (g *Game) openProject(n int) {
	p, ok := projectAt(g.catalog, n)
	if !ok {
		return
	}
	g.modal = &render.Modal{Project: p, Preview: projects.Preview(p, g.assets)}
}

func projectAt(c *projects.Catalog, n int) (projects.Project, bool) {
	ids := c.IDs()
	if n < 1 || n > len(ids) {
		return projects.Project{}, false
	}
	return c.Lookup(ids[n-1])
}

// resize hangs the bulb afresh for the new viewport.
func (g *Game) resize(vp bulb.Viewport) {
	g.viewport, g.pending = vp, vp
	g.sim.Reset(vp)
	g.field.Resize(vp.Width, vp.Height)
	g.snap = g.sim.Tick(vp)
}

func (g *Game) tiltUnavailable(reason string) {
	log.Printf("[Game] Tilt control unavailable: %s", reason)
	switch reason {
	case input.ReasonDenied:
		g.renderer.ShowBanner("Tilt permission denied. Drag the bulb instead.")
		warn("Tilt control", "Permission to use device orientation was denied.")
	default:
		g.renderer.ShowBanner("Tilt control is not available on this device.")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap, g.field, g.modal)
}

// Layout uses the outside size as the viewport. The resize is applied on
// the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pending = bulb.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	}
	return int(g.pending.Width), int(g.pending.Height)
}

// bulbHitCircle is the grab area around the bulb.
func bulbHitCircle(snap bulb.Snapshot) input.HitCircle {
	return input.HitCircle{
		CenterX: snap.Bulb.X,
		CenterY: snap.Bulb.Y,
		Radius:  max(snap.BulbWidth, snap.BulbHeight) / 2,
	}
}
