package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-spheres/internal/config"
	"github.com/iburimskiy/wave-spheres/internal/settings"
	"github.com/iburimskiy/wave-spheres/internal/ui"
	"github.com/iburimskiy/wave-spheres/internal/wave"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	start := time.Unix(1000, 0)
	g.start = start
	g.now = func() time.Time { return start }
	return g
}

// idle is a pointer parked in a corner away from the panel and the spheres.
var idle = ui.Pointer{X: 1000, Y: 600}

func TestAutoPlayUsesElapsedTime(t *testing.T) {
	g := newTestGame(t)
	if !g.autoPlay.Checked {
		t.Fatal("auto-play off by default")
	}
	pi := math.Pi
	g.now = func() time.Time { return g.start.Add(time.Duration(pi * float64(time.Second))) }
	g.step(idle, 0)
	if got := g.Field().Time(); math.Abs(got-math.Pi) > 1e-6 {
		t.Errorf("Time() = %v, want pi", got)
	}
	if !g.slider.Disabled {
		t.Error("slider enabled during auto-play")
	}
}

func TestManualUsesSlider(t *testing.T) {
	g := newTestGame(t)
	g.ToggleAutoPlay()
	g.slider.SetValue(50)
	g.now = func() time.Time { return g.start.Add(42 * time.Second) }
	g.step(idle, 0)
	if got := g.Field().Time(); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("Time() = %v, want pi", got)
	}
	for i, p := range g.Field().Points {
		if p.Y != wave.Offset(p.X, math.Pi) {
			t.Fatalf("point %d Y = %v, want sin(x+pi)", i, p.Y)
		}
	}
}

func TestStepSliderOnlyInManualMode(t *testing.T) {
	g := newTestGame(t)
	g.StepSlider(5)
	if g.slider.Value != 0 {
		t.Errorf("slider moved during auto-play: %d", g.slider.Value)
	}
	g.ToggleAutoPlay()
	g.StepSlider(5)
	g.StepSlider(-2)
	if g.slider.Value != 3 {
		t.Errorf("slider = %d, want 3", g.slider.Value)
	}
	g.StepSlider(-10)
	if g.slider.Value != 0 {
		t.Errorf("slider = %d, want clamped 0", g.slider.Value)
	}
}

func TestCheckboxClickTogglesAutoPlay(t *testing.T) {
	g := newTestGame(t)
	x, y := g.autoPlay.X+2, g.autoPlay.Y+2
	g.step(ui.Pointer{X: x, Y: y, Down: true, JustPressed: true}, 0)
	g.step(ui.Pointer{X: x, Y: y, JustReleased: true}, 0)
	if g.autoPlay.Checked {
		t.Error("auto-play still on after click")
	}
	if g.slider.Disabled {
		t.Error("slider disabled in manual mode")
	}
	if g.orbiting {
		t.Error("click on the panel started an orbit drag")
	}
}

func TestHoverShowsTooltip(t *testing.T) {
	g := newTestGame(t)
	g.ToggleAutoPlay()
	g.step(idle, 0)

	// point 50 sits at the origin at t = 0
	sx, sy, _, ok := g.camera.Project(g.centers[50])
	if !ok {
		t.Fatal("centre sphere not visible")
	}
	p := ui.Pointer{X: int(math.Round(sx)), Y: int(math.Round(sy))}
	g.step(p, 0)

	idx, hovered := g.Hovered()
	if !hovered || idx != 50 {
		t.Fatalf("Hovered() = (%d, %v), want (50, true)", idx, hovered)
	}
	if !g.tooltip.Visible || g.tooltip.Text != "X: 0.00, Y: 0.00" {
		t.Errorf("tooltip = %+v", g.tooltip)
	}
	if g.tooltip.X != float64(p.X+config.TooltipOffset) {
		t.Errorf("tooltip X = %v, want %v", g.tooltip.X, p.X+config.TooltipOffset)
	}

	g.step(idle, 0)
	if _, hovered := g.Hovered(); hovered {
		t.Error("still hovered after moving away")
	}
	if g.tooltip.Visible {
		t.Error("tooltip visible with nothing hovered")
	}
}

func TestHoverIgnoredOutsideWindow(t *testing.T) {
	g := newTestGame(t)
	g.step(ui.Pointer{X: -5, Y: -5}, 0)
	if _, hovered := g.Hovered(); hovered {
		t.Error("hover outside the window")
	}
}

func TestLayoutUpdatesCamera(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(800, 400)
	if w != 800 || h != 400 {
		t.Errorf("Layout() = (%d, %d), want (800, 400)", w, h)
	}
	if g.camera.Aspect() != 2 {
		t.Errorf("Aspect() = %v, want 2", g.camera.Aspect())
	}
}

func TestDragOrbitsCamera(t *testing.T) {
	g := newTestGame(t)
	before := g.camera.Position
	g.step(ui.Pointer{X: 600, Y: 400, Down: true, JustPressed: true}, 0)
	g.step(ui.Pointer{X: 700, Y: 400, Down: true}, 0)
	g.step(ui.Pointer{X: 700, Y: 400, JustReleased: true}, 0)
	for i := 0; i < 10; i++ {
		g.step(idle, 0)
	}
	if g.camera.Position.X() == before.X() {
		t.Error("camera did not orbit after drag")
	}
	az, _, _ := g.controls.Orbit()
	if az >= 0 {
		t.Errorf("azimuth = %v, want negative after dragging right", az)
	}
}

func TestWheelZooms(t *testing.T) {
	g := newTestGame(t)
	_, _, before := g.controls.Orbit()
	g.step(idle, 3)
	if _, _, after := g.controls.Orbit(); after >= before {
		t.Errorf("distance %v -> %v, want closer", before, after)
	}
}

func TestLoadScene(t *testing.T) {
	g := newTestGame(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(good, []byte("points:\n  count: 10\n  spacing: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.LoadScene(good); err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if n := len(g.Field().Points); n != 10 {
		t.Errorf("points = %d, want 10", n)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("points:\n  count: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.LoadScene(bad); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("LoadScene(bad) error = %v, want ErrInvalid", err)
	}
	if n := len(g.Field().Points); n != 10 {
		t.Errorf("bad scene replaced the field: %d points", n)
	}
}

func TestOpenSceneDialogCanceled(t *testing.T) {
	g := newTestGame(t)
	g.openSceneFile = func() (string, error) { return "", zenity.ErrCanceled }
	if err := g.openSceneDialog(); err != nil {
		t.Errorf("openSceneDialog() = %v, want nil on cancel", err)
	}
}

func TestRestoreSettings(t *testing.T) {
	sm := settings.NewManager(nil)
	sm.SetAutoPlay(false)
	sm.SetSlider(25)
	sm.SetOrbit(0.3, 1.0, 12)

	g, err := New(config.Default(), sm, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if g.autoPlay.Checked || g.slider.Value != 25 {
		t.Errorf("restored autoPlay=%v slider=%d", g.autoPlay.Checked, g.slider.Value)
	}
	az, po, di := g.controls.Orbit()
	if az != 0.3 || po != 1.0 || di != 12 {
		t.Errorf("restored orbit = (%v, %v, %v)", az, po, di)
	}
	if g.toneEnabled {
		t.Error("tone enabled without a player")
	}

	g.ToggleAutoPlay()
	if !sm.Get().AutoPlay {
		t.Error("auto-play change not recorded in settings")
	}
	g.Close()
	g.Close()
}

func TestFormatPhase(t *testing.T) {
	if got := formatPhase(math.Pi / 2); got != "0.50π" {
		t.Errorf("formatPhase(pi/2) = %q", got)
	}
}
