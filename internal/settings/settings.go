// Package settings persists user preferences between runs. The bulb itself is
// never saved: every run starts with the light off.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences are the user-facing toggles that survive a restart.
type Preferences struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	Volume       float64 `yaml:"volume"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultPreferences are the preferences of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		SoundEnabled: true,
		Volume:       0.8,
	}
}

const (
	prefsObject   = "settings"
	prefsProperty = "preferences"
)

// Manager loads and saves Preferences through gdata. A nil gdata manager
// keeps preferences in memory only.
type Manager struct {
	store *gdata.Manager
	prefs Preferences
}

// NewManager creates a manager seeded with defaults and loads any saved
// preferences. A failed load is logged and the defaults are kept.
func NewManager(store *gdata.Manager, defaults Preferences) *Manager {
	m := &Manager{store: store, prefs: defaults}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Failed to load preferences: %v (using defaults)", err)
	}
	return m
}

// Load replaces the in-memory preferences with the saved ones, if any.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := m.prefs
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	prefs.Volume = clampVolume(prefs.Volume)
	m.prefs = prefs
	return nil
}

// Save writes the current preferences. It is a no-op without a store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (m *Manager) Preferences() Preferences { return m.prefs }

func (m *Manager) SetSoundEnabled(enabled bool) { m.prefs.SoundEnabled = enabled }

// SetVolume stores volume clamped to [0, 1].
func (m *Manager) SetVolume(volume float64) { m.prefs.Volume = clampVolume(volume) }

func (m *Manager) SetFullscreen(enabled bool) { m.prefs.Fullscreen = enabled }

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
