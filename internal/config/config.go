package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Banner dimensions
	BannerHeight = 28
	BannerMargin = 12

	// Modal dimensions
	ModalWidth   = 520
	ModalHeight  = 300
	ModalPadding = 16

	// Rope drawing
	RopeSegments = 24
	RopeWidth    = 2

	TPS = 60
)

// Config is the full application configuration. Every field has a default,
// so a YAML file only needs to name the values it overrides.
type Config struct {
	Simulation Simulation `yaml:"simulation"`
	Input      Input      `yaml:"input"`
	Sound      Sound      `yaml:"sound"`
	Particles  Particles  `yaml:"particles"`
	Page       Page       `yaml:"page"`
}

// Simulation holds the bulb physics and glow parameters.
type Simulation struct {
	Gravity   float64 `yaml:"gravity"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`

	// RestRatio is the rope rest length as a fraction of viewport height.
	RestRatio float64 `yaml:"restRatio"`
	// MinDrop keeps the bulb at least this far below the anchor.
	MinDrop float64 `yaml:"minDrop"`

	PullThreshold  float64       `yaml:"pullThreshold"`
	ToggleDebounce time.Duration `yaml:"toggleDebounce"`
	// InheritGrabVelocity keeps residual velocity when a drag begins.
	InheritGrabVelocity bool `yaml:"inheritGrabVelocity"`

	TiltSensitivity float64 `yaml:"tiltSensitivity"`
	TiltScale       float64 `yaml:"tiltScale"`
	MaxTiltVelocity float64 `yaml:"maxTiltVelocity"`

	GlowRadiusDivisor float64 `yaml:"glowRadiusDivisor"`
	GlowReferenceY    float64 `yaml:"glowReferenceY"`
	GlowFalloff       float64 `yaml:"glowFalloff"`
	GlowMax           float64 `yaml:"glowMax"`

	BulbWidth  float64 `yaml:"bulbWidth"`
	BulbHeight float64 `yaml:"bulbHeight"`
}

type Input struct {
	// ToggleKey is a key name as ebiten spells it, e.g. "Space" or "Enter".
	ToggleKey   string `yaml:"toggleKey"`
	GamepadTilt bool   `yaml:"gamepadTilt"`
}

type Sound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Sample is an optional wav/mp3/flac file played instead of the
	// synthesised click.
	Sample string `yaml:"sample"`
}

// Particles mirrors the background particle settings of the page.
type Particles struct {
	Count        int     `yaml:"count"`
	ValueArea    float64 `yaml:"valueArea"`
	Density      bool    `yaml:"density"`
	Color        string  `yaml:"color"`
	MaxSize      float64 `yaml:"maxSize"`
	MaxOpacity   float64 `yaml:"maxOpacity"`
	Speed        float64 `yaml:"speed"`
	LinkDistance float64 `yaml:"linkDistance"`
	LinkColor    string  `yaml:"linkColor"`
	LinkOpacity  float64 `yaml:"linkOpacity"`
}

type Page struct {
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	// Projects is an optional path to a project data file; the embedded
	// catalog is used when empty.
	Projects string `yaml:"projects"`
}

// Default returns the configuration the toy ships with.
func Default() *Config {
	return &Config{
		Simulation: Simulation{
			Gravity:           0.3,
			Stiffness:         0.015,
			Damping:           0.9,
			RestRatio:         0.25,
			MinDrop:           5,
			PullThreshold:     120,
			ToggleDebounce:    500 * time.Millisecond,
			TiltSensitivity:   0.2,
			TiltScale:         0.03,
			MaxTiltVelocity:   12,
			GlowRadiusDivisor: 5,
			GlowReferenceY:    0.6,
			GlowFalloff:       0.25,
			GlowMax:           0.35,
			BulbWidth:         50,
			BulbHeight:        70,
		},
		Input: Input{
			ToggleKey: "Space",
		},
		Sound: Sound{
			Enabled: true,
			Volume:  0.8,
		},
		Particles: Particles{
			Count:        60,
			ValueArea:    800,
			Density:      true,
			Color:        "#ffe066",
			MaxSize:      3,
			MaxOpacity:   0.5,
			Speed:        1,
			LinkDistance: 150,
			LinkColor:    "#555555",
			LinkOpacity:  0.4,
		},
		Page: Page{
			Headline: "Hi, I build things for the web.",
			Tagline:  "Pull the cord to turn the light on.",
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges that would break the simulation.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Damping < 0 || s.Damping > 1 {
		return fmt.Errorf("simulation.damping must be in [0, 1], got %v", s.Damping)
	}
	if s.Stiffness < 0 {
		return fmt.Errorf("simulation.stiffness must be >= 0, got %v", s.Stiffness)
	}
	if s.RestRatio <= 0 {
		return fmt.Errorf("simulation.restRatio must be > 0, got %v", s.RestRatio)
	}
	if s.ToggleDebounce < 0 {
		return fmt.Errorf("simulation.toggleDebounce must be >= 0, got %v", s.ToggleDebounce)
	}
	if s.MaxTiltVelocity <= 0 {
		return fmt.Errorf("simulation.maxTiltVelocity must be > 0, got %v", s.MaxTiltVelocity)
	}
	if s.GlowRadiusDivisor <= 0 {
		return fmt.Errorf("simulation.glowRadiusDivisor must be > 0, got %v", s.GlowRadiusDivisor)
	}
	if s.GlowFalloff <= 0 {
		return fmt.Errorf("simulation.glowFalloff must be > 0, got %v", s.GlowFalloff)
	}
	if s.GlowMax < 0 || s.GlowMax > 1 {
		return fmt.Errorf("simulation.glowMax must be in [0, 1], got %v", s.GlowMax)
	}
	if s.BulbWidth <= 0 || s.BulbHeight <= 0 {
		return fmt.Errorf("simulation bulb size must be positive, got %vx%v", s.BulbWidth, s.BulbHeight)
	}
	if strings.TrimSpace(c.Input.ToggleKey) == "" {
		return errors.New("input.toggleKey must be set")
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be in [0, 1], got %v", c.Sound.Volume)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("particles.count must be >= 0, got %d", c.Particles.Count)
	}
	if c.Particles.Density && c.Particles.ValueArea <= 0 {
		return fmt.Errorf("particles.valueArea must be > 0 when density is on, got %v", c.Particles.ValueArea)
	}
	return nil
}
