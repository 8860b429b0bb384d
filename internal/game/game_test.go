package game

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/iburimskiy/lightbulb/internal/bulb"
	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/input"
	"github.com/iburimskiy/lightbulb/internal/projects"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Tilt == nil {
		opts.Tilt = &input.FakeTilt{Availability: input.TiltAvailable}
	}
	g, err := newGame(opts, nil)
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func TestNewRejectsUnknownToggleKey(t *testing.T) {
	cfg := config.Default()
	cfg.Input.ToggleKey = "NoSuchKey"
	if _, err := newGame(Options{Config: cfg}, nil); err == nil {
		t.Fatal("expected error for unknown toggle key")
	}
}

func TestInitialViewport(t *testing.T) {
	g := newTestGame(t, Options{})
	st := g.sim.State()
	if st.Anchor.X != config.WindowWidth/2 {
		t.Errorf("anchor x: got %v, want %v", st.Anchor.X, config.WindowWidth/2)
	}
	if g.snap.Bulb.X != config.WindowWidth/2 {
		t.Errorf("snapshot bulb x: got %v", g.snap.Bulb.X)
	}
}

func TestLayoutResetsOnResize(t *testing.T) {
	g := newTestGame(t, Options{})
	g.handleEvents(time.Unix(100, 0), []input.Event{{Kind: input.DragBegin, X: 100, Y: 500}})

	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("Layout: got %dx%d, want 800x600", w, h)
	}
	if g.viewport.Width != config.WindowWidth {
		t.Fatal("viewport changed before Update")
	}

	g.resize(g.pending)
	st := g.sim.State()
	if st.Anchor.X != 400 || st.RestLength != 150 {
		t.Errorf("anchor %v rest %v, want x=400 rest=150", st.Anchor, st.RestLength)
	}
	if st.Position.X != 400 {
		t.Errorf("bulb not re-hung: %v", st.Position)
	}

	// zero sizes during minimise are ignored
	if w, h := g.Layout(0, 0); w != 800 || h != 600 {
		t.Errorf("Layout(0,0): got %dx%d", w, h)
	}
}

func TestHandleEventsDebouncesToggles(t *testing.T) {
	g := newTestGame(t, Options{})
	t0 := time.Unix(1000, 0)
	toggle := []input.Event{{Kind: input.ToggleRequest}}

	g.handleEvents(t0, toggle)
	if !g.sim.State().IsOn {
		t.Fatal("first toggle rejected")
	}
	g.handleEvents(t0.Add(100*time.Millisecond), toggle)
	if !g.sim.State().IsOn {
		t.Fatal("toggle inside debounce window accepted")
	}
	g.handleEvents(t0.Add(600*time.Millisecond), toggle)
	if g.sim.State().IsOn {
		t.Fatal("toggle after debounce window rejected")
	}
}

func TestPullToToggle(t *testing.T) {
	g := newTestGame(t, Options{})
	now := time.Unix(1000, 0)
	x := g.snap.Bulb.X
	g.handleEvents(now, []input.Event{
		{Kind: input.DragBegin, X: x, Y: 200},
		{Kind: input.DragMove, X: x, Y: 500},
		{Kind: input.DragEnd, X: x, Y: 500},
	})
	if !g.sim.State().IsOn {
		t.Error("pull past threshold did not switch the light on")
	}
}

func TestProjectOpenedMidDragReleasesBulb(t *testing.T) {
	g := newTestGame(t, Options{})
	now := time.Unix(1000, 0)
	x, y := g.snap.Bulb.X, g.snap.Bulb.Y

	g.handleEvents(now, []input.Event{{Kind: input.DragBegin, X: x, Y: y}})
	g.openProject(1)
	if g.modal == nil {
		t.Fatal("modal not opened")
	}
	g.handleEvents(now, []input.Event{
		{Kind: input.DragMove, X: x, Y: y + 10},
		{Kind: input.DragEnd, X: x, Y: y + 10},
	})
	st := g.sim.State()
	if st.IsDragging {
		t.Fatal("bulb still held after release behind the modal")
	}
	if st.Position.Y != y+10 {
		t.Errorf("move behind modal: y=%v, want %v", st.Position.Y, y+10)
	}

	// new grabs and toggles stay blocked while the modal is open
	g.handleEvents(now.Add(time.Second), []input.Event{
		{Kind: input.DragBegin, X: x, Y: y},
		{Kind: input.DragMove, X: x, Y: y + 300},
		{Kind: input.ToggleRequest},
	})
	st = g.sim.State()
	if st.IsDragging || st.IsOn || st.Position.Y != y+10 {
		t.Errorf("input leaked through modal: %+v", st)
	}
}

func TestProjectAt(t *testing.T) {
	c := projects.Default()
	tests := []struct {
		n         int
		wantTitle string
		wantOK    bool
	}{
		{1, "Audio Visualization", true},
		{2, "Task Board", true},
		{3, "Weather Dashboard", true},
		{0, "", false},
		{4, "", false},
		{9, "", false},
	}
	for _, tt := range tests {
		p, ok := projectAt(c, tt.n)
		if ok != tt.wantOK || p.Title != tt.wantTitle {
			t.Errorf("projectAt(%d): got (%q, %v), want (%q, %v)", tt.n, p.Title, ok, tt.wantTitle, tt.wantOK)
		}
	}
}

func TestOpenProject(t *testing.T) {
	catalog, err := projects.Parse([]byte(`
demo:
  title: Demo
  path: images/demo.png
`))
	if err != nil {
		t.Fatal(err)
	}
	assets := fstest.MapFS{"images/demo.png": &fstest.MapFile{Data: []byte("png")}}
	g := newTestGame(t, Options{Catalog: catalog, Assets: assets})

	g.openProject(2)
	if g.modal != nil {
		t.Fatal("unknown project opened a modal")
	}

	g.openProject(1)
	if g.modal == nil {
		t.Fatal("modal not opened")
	}
	if g.modal.Project.Title != "Demo" || g.modal.Preview != "images/demo.png" {
		t.Errorf("modal: got %+v", g.modal)
	}
}

func TestTiltDeniedWarns(t *testing.T) {
	var titles []string
	orig := warn
	warn = func(title, text string) { titles = append(titles, title) }
	t.Cleanup(func() { warn = orig })

	g := newTestGame(t, Options{})
	g.tiltUnavailable(input.ReasonUnsupportedPlatform)
	if len(titles) != 0 {
		t.Fatalf("unsupported platform opened a dialog: %v", titles)
	}
	g.tiltUnavailable(input.ReasonDenied)
	if len(titles) != 1 {
		t.Fatalf("denied: got %d dialogs, want 1", len(titles))
	}
}

func TestPreferencesSeededFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sound.Enabled = false
	cfg.Sound.Volume = 0.3
	g := newTestGame(t, Options{Config: cfg})

	prefs := g.Settings().Preferences()
	if prefs.SoundEnabled || prefs.Volume != 0.3 || prefs.Fullscreen {
		t.Errorf("prefs: got %+v", prefs)
	}

	g.toggleSound()
	g.changeVolume(volumeStep)
	prefs = g.Settings().Preferences()
	if !prefs.SoundEnabled || prefs.Volume < 0.39 || prefs.Volume > 0.41 {
		t.Errorf("after toggle: got %+v", prefs)
	}
}

func TestBulbHitCircle(t *testing.T) {
	hit := bulbHitCircle(bulb.Snapshot{Bulb: bulb.Vec2{X: 100, Y: 200}, BulbWidth: 50, BulbHeight: 70})
	if !hit.Contains(100, 234) {
		t.Error("bottom of glass not grabbable")
	}
	if hit.Contains(140, 200) {
		t.Error("point outside bulb grabbed")
	}
}
