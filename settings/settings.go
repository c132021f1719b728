// Package settings persists presentation preferences between runs. They
// only affect how frontends draw; the engine never reads them.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "stackfall"

	preferencesObject   = "settings"
	preferencesProperty = "preferences"
)

// Preferences are the toggles a player can flip at runtime.
type Preferences struct {
	ShowGhost    bool `yaml:"showGhost"`
	ShowGrid     bool `yaml:"showGrid"`
	DebugOverlay bool `yaml:"debugOverlay"`
}

func Defaults() Preferences {
	return Preferences{
		ShowGhost: true,
		ShowGrid:  true,
	}
}

// Manager loads and saves Preferences through gdata. A nil gdata manager
// keeps everything in memory.
type Manager struct {
	store *gdata.Manager
	prefs Preferences
}

// Open creates the gdata store for appName. When the store cannot be opened
// the manager falls back to in-memory preferences.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (preferences will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager loads saved preferences from store, if any.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, prefs: Defaults()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load preferences: %v (using defaults)", err)
	}
	return m
}

// Load replaces the in-memory preferences with the stored ones. Missing
// data and load failures leave the defaults in place.
func (m *Manager) Load() error {
	m.prefs = Defaults()
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(preferencesObject, preferencesProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	m.prefs = loaded
	log.Printf("[Settings] preferences loaded")
	return nil
}

// Save writes the current preferences. It is a no-op without storage.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	log.Printf("[Settings] preferences saved")
	return nil
}

// Persistent reports whether Save reaches disk.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Get returns a pointer to the live preferences. Changes are kept in memory
// until Save.
func (m *Manager) Get() *Preferences {
	return &m.prefs
}

func (m *Manager) ToggleGhost()        { m.prefs.ShowGhost = !m.prefs.ShowGhost }
func (m *Manager) ToggleGrid()         { m.prefs.ShowGrid = !m.prefs.ShowGrid }
func (m *Manager) ToggleDebugOverlay() { m.prefs.DebugOverlay = !m.prefs.DebugOverlay }
