package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/game"
	"github.com/iburimskiy/lightbulb/internal/input"
	"github.com/iburimskiy/lightbulb/internal/input/ebitensrc"
	"github.com/iburimskiy/lightbulb/internal/projects"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	projectsPath := flag.String("projects", "", "path to a project data file (JSON or YAML)")
	gamepadTilt := flag.Bool("gamepad-tilt", false, "steer the bulb with the left gamepad stick")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if *gamepadTilt {
		cfg.Input.GamepadTilt = true
	}

	catalog, assets, err := loadCatalog(*projectsPath, cfg)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	store, err := gdata.Open(gdata.Config{AppName: "lightbulb"})
	if err != nil {
		log.Printf("[Main] Preferences storage unavailable: %v (settings will not be saved)", err)
		store = nil
	}

	var tilt input.TiltSource = input.NoTilt{}
	if cfg.Input.GamepadTilt {
		tilt = &ebitensrc.GamepadTilt{}
	}

	g, err := game.New(game.Options{
		Config:  cfg,
		Tilt:    tilt,
		Store:   store,
		Catalog: catalog,
		Assets:  assets,
		Seed:    time.Now().UnixNano(),
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Light Bulb - drag the bulb down to switch it, Esc: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	ebiten.SetFullscreen(g.Settings().Preferences().Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("[Main] %v", err)
	}
}

// loadCatalog picks the project data file: the -projects flag first, then
// page.projects from the config, then the embedded catalog. Preview images
// resolve relative to the data file.
func loadCatalog(flagPath string, cfg *config.Config) (*projects.Catalog, fs.FS, error) {
	path := flagPath
	if path == "" {
		path = cfg.Page.Projects
	}
	if path == "" {
		return projects.Default(), os.DirFS("."), nil
	}
	catalog, err := projects.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return catalog, os.DirFS(filepath.Dir(path)), nil
}
