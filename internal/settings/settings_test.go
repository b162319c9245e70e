package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return store
}

func TestDefault(t *testing.T) {
	s := Default()
	if !s.AutoPlay {
		t.Error("AutoPlay: got false, want true")
	}
	if s.Slider != 0 || s.ToneEnabled || s.Distance != 0 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestNilStoreKeepsSettingsInMemory(t *testing.T) {
	m := NewManager(nil)
	m.SetSlider(40)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if got := m.Get().Slider; got != 40 {
		t.Errorf("Slider = %v, want 40", got)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := m.Get().Slider; got != 0 {
		t.Errorf("Slider after Load = %v, want default 0", got)
	}
}

func TestSetSliderClamps(t *testing.T) {
	m := NewManager(nil)
	m.SetSlider(-5)
	if got := m.Get().Slider; got != 0 {
		t.Errorf("Slider = %v, want 0", got)
	}
	m.SetSlider(250)
	if got := m.Get().Slider; got != 100 {
		t.Errorf("Slider = %v, want 100", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t, "test_wave_settings")

	m := NewManager(store)
	m.SetAutoPlay(false)
	m.SetSlider(73)
	m.SetToneEnabled(true)
	m.SetOrbit(0.5, 1.2, 14)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewManager(store)
	got := reloaded.Get()
	want := Settings{AutoPlay: false, Slider: 73, ToneEnabled: true, Azimuth: 0.5, Polar: 1.2, Distance: 14}
	if got != want {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	store := openTestStore(t, "test_wave_settings_partial")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("slider: 10\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := NewManager(store)
	got := m.Get()
	if got.Slider != 10 {
		t.Errorf("Slider = %v, want 10", got.Slider)
	}
	if !got.AutoPlay {
		t.Error("AutoPlay missing from stored settings was restored as off")
	}
}

func TestLoadCorrupt(t *testing.T) {
	store := openTestStore(t, "test_wave_settings_corrupt")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("slider: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := NewManager(store)
	if err := m.Load(); err == nil {
		t.Error("Load() accepted corrupt data")
	}
	if !m.Get().AutoPlay {
		t.Error("corrupt data did not fall back to defaults")
	}
}
