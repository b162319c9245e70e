// Package settings persists the viewer's UI state between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "wave_spheres"

	settingsObject   = "settings"
	settingsProperty = "ui"

	sliderMax = 100
)

// Settings is the UI state restored at startup. A zero Distance means the
// camera orbit was never saved.
type Settings struct {
	AutoPlay    bool    `yaml:"autoPlay"`
	Slider      float64 `yaml:"slider"`
	ToneEnabled bool    `yaml:"toneEnabled"`
	Azimuth     float64 `yaml:"azimuth"`
	Polar       float64 `yaml:"polar"`
	Distance    float64 `yaml:"distance"`
}

// Default is auto-play on, slider at zero, tone off.
func Default() *Settings {
	return &Settings{AutoPlay: true}
}

// Manager loads and saves Settings. A nil gdata manager keeps settings in
// memory only.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// Open creates the gdata store for AppName and loads any saved settings.
// Failing to open the store is not fatal: the manager runs in memory.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Settings] storage unavailable, settings will not persist: %v", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager wraps store, which may be nil, and loads from it.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] %v (using defaults)", err)
	}
	return m
}

// Load replaces the current settings with the stored ones. Keys missing from
// the stored document keep their defaults.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	loaded := *Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	loaded.Slider = clampSlider(loaded.Slider)
	m.settings = &loaded
	return nil
}

// Save writes the current settings. It is a no-op without a store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Printf("[Settings] saved")
	return nil
}

func (m *Manager) Get() Settings { return *m.settings }

func (m *Manager) SetAutoPlay(on bool) { m.settings.AutoPlay = on }

// SetSlider stores the slider position, clamped to 0..100.
func (m *Manager) SetSlider(v float64) { m.settings.Slider = clampSlider(v) }

func (m *Manager) SetToneEnabled(on bool) { m.settings.ToneEnabled = on }

func (m *Manager) SetOrbit(azimuth, polar, distance float64) {
	m.settings.Azimuth = azimuth
	m.settings.Polar = polar
	m.settings.Distance = distance
}

func clampSlider(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > sliderMax {
		return sliderMax
	}
	return v
}
