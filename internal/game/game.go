package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-spheres/internal/config"
	"github.com/iburimskiy/wave-spheres/internal/scene"
	"github.com/iburimskiy/wave-spheres/internal/settings"
	"github.com/iburimskiy/wave-spheres/internal/tone"
	"github.com/iburimskiy/wave-spheres/internal/ui"
	"github.com/iburimskiy/wave-spheres/internal/wave"
)

// Game is the ebiten.Game driving the wave scene.
type Game struct {
	cfg *config.SceneConfig

	// scene
	field    *wave.Field
	centers  []scene.Vec3
	camera   *scene.Camera
	controls *scene.OrbitControls
	lights   []scene.Light
	specular colorful.Color
	order    []int

	// ui
	face     *text.GoTextFace
	autoPlay *ui.Checkbox
	slider   *ui.Slider
	tooltip  ui.Tooltip

	// orbit drag
	orbiting     bool
	lastX, lastY int

	width, height int
	hovered       int
	prevKey       map[ebiten.Key]bool

	settings    *settings.Manager
	player      *tone.Player
	toneEnabled bool

	start         time.Time
	now           func() time.Time
	openSceneFile func() (string, error)
	lastErr       error
	closed        bool
}

// New builds the scene from cfg and restores UI state from the settings
// manager. player may be nil to disable the hover tone entirely.
func New(cfg *config.SceneConfig, sm *settings.Manager, player *tone.Player) (*Game, error) {
	face, err := ui.NewFace(config.FontSize)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		face:          face,
		hovered:       -1,
		prevKey:       map[ebiten.Key]bool{},
		settings:      sm,
		player:        player,
		now:           time.Now,
		openSceneFile: selectSceneFile,
		tooltip:       ui.Tooltip{Offset: config.TooltipOffset},
		lights:        scene.DefaultLights(),
		specular:      colorful.Color{R: 0x11 / 255.0, G: 0x11 / 255.0, B: 0x11 / 255.0},
	}
	g.start = g.now()

	g.autoPlay = &ui.Checkbox{
		X:       config.PanelX,
		Y:       config.PanelY,
		Size:    config.CheckboxSize,
		Label:   "Auto-play",
		Checked: true,
	}
	lw, _ := ui.MeasureText(g.autoPlay.Label, face)
	g.autoPlay.SetLabelWidth(int(lw))

	g.slider = &ui.Slider{
		X:      config.PanelX + config.KnobRadius,
		Y:      config.PanelY + config.SliderGap,
		Width:  config.SliderWidth,
		Height: config.SliderHeight,
		Knob:   config.KnobRadius,
		Max:    wave.SliderMax,
	}

	g.applyScene(cfg)
	g.restoreSettings()
	g.Layout(cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

// applyScene (re)builds the field, camera and controls from cfg.
func (g *Game) applyScene(cfg *config.SceneConfig) {
	g.cfg = cfg
	g.field = wave.NewField(cfg.Points.Count, cfg.Points.Spacing)
	g.centers = make([]scene.Vec3, len(g.field.Points))
	g.order = make([]int, len(g.field.Points))
	g.syncCenters()

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	if g.camera != nil {
		w, h = g.camera.Viewport()
	}
	g.camera = scene.NewCamera(cfg.Camera.FOV, w, h)
	g.camera.LookAt(scene.V(0, 0, cfg.Camera.Distance), scene.V(0, 0, 0))
	g.controls = scene.NewOrbitControls(g.camera, config.TPS,
		cfg.Controls.Frequency, cfg.Controls.Damping,
		cfg.Controls.MinDistance, cfg.Controls.MaxDistance)
	g.hovered = -1
	g.tooltip.Hide()
}

func (g *Game) restoreSettings() {
	if g.settings == nil {
		g.setToneEnabled(g.cfg.Audio.HoverTone)
		return
	}
	s := g.settings.Get()
	g.autoPlay.Checked = s.AutoPlay
	g.slider.SetValue(int(s.Slider))
	g.setToneEnabled(s.ToneEnabled || g.cfg.Audio.HoverTone)
	if s.Distance > 0 {
		g.controls.SetOrbit(s.Azimuth, s.Polar, s.Distance)
	}
}

func (g *Game) syncCenters() {
	for i, p := range g.field.Points {
		g.centers[i] = scene.V(p.X, p.Y, 0)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.ToggleAutoPlay()
	}
	if justPressed(ebiten.KeyLeft) {
		g.StepSlider(-1)
	}
	if justPressed(ebiten.KeyRight) {
		g.StepSlider(1)
	}
	if justPressed(ebiten.KeyR) {
		g.controls.Reset()
	}
	if justPressed(ebiten.KeyM) {
		g.setToneEnabled(!g.toneEnabled)
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openSceneDialog(); err != nil {
			g.lastErr = err
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	g.step(ui.Pointer{
		X:            mouseX,
		Y:            mouseY,
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, wheelY)
	return nil
}

// step runs one frame of input handling and animation.
func (g *Game) step(p ui.Pointer, wheelY float64) {
	if g.autoPlay.Update(p) {
		g.onAutoPlayChanged()
	}
	g.slider.Disabled = g.autoPlay.Checked
	if g.slider.Update(p) && g.settings != nil {
		g.settings.SetSlider(float64(g.slider.Value))
	}

	overUI := g.autoPlay.Contains(p.X, p.Y) || g.slider.Contains(p.X, p.Y) || g.slider.Dragging()

	// Orbit controls
	if p.JustPressed && !overUI {
		g.orbiting = true
		g.lastX, g.lastY = p.X, p.Y
	}
	if g.orbiting {
		if p.Down {
			g.controls.Rotate(float64(p.X-g.lastX), float64(p.Y-g.lastY), float64(g.height))
			g.lastX, g.lastY = p.X, p.Y
		} else {
			g.orbiting = false
		}
	}
	if wheelY != 0 && !overUI {
		g.controls.Dolly(wheelY)
	}
	g.controls.Update()

	// Animate
	elapsed := g.now().Sub(g.start).Seconds()
	g.field.Update(wave.ResolveTime(g.autoPlay.Checked, elapsed, float64(g.slider.Value)))
	g.syncCenters()

	g.updateHover(p, overUI)
}

func (g *Game) updateHover(p ui.Pointer, overUI bool) {
	inside := p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
	idx, ok := -1, false
	if inside && !overUI {
		nx, ny := g.camera.ScreenToNDC(float64(p.X), float64(p.Y))
		idx, ok = scene.PickHovered(nx, ny, g.centers, g.cfg.Points.Radius, g.camera)
	}
	if !ok {
		g.hovered = -1
		g.tooltip.Hide()
		return
	}

	pt := g.field.Points[idx]
	if idx != g.hovered && g.toneEnabled && g.player != nil {
		g.player.Play(pt.Y)
	}
	g.hovered = idx

	label := ui.FormatCoords(pt.X, pt.Y)
	tw, th := ui.MeasureText(label, g.face)
	g.tooltip.Show(label, float64(p.X), float64(p.Y), tw, th, float64(g.width), float64(g.height))
}

// Hovered returns the index of the sphere under the pointer.
func (g *Game) Hovered() (int, bool) { return g.hovered, g.hovered >= 0 }

// Field exposes the animated points.
func (g *Game) Field() *wave.Field { return g.field }

func (g *Game) ToggleAutoPlay() {
	g.autoPlay.Checked = !g.autoPlay.Checked
	g.onAutoPlayChanged()
}

func (g *Game) onAutoPlayChanged() {
	g.slider.Disabled = g.autoPlay.Checked
	if g.settings != nil {
		g.settings.SetAutoPlay(g.autoPlay.Checked)
	}
}

// StepSlider nudges the manual time; ignored during auto-play.
func (g *Game) StepSlider(delta int) {
	if g.autoPlay.Checked {
		return
	}
	g.slider.SetValue(g.slider.Value + delta)
	if g.settings != nil {
		g.settings.SetSlider(float64(g.slider.Value))
	}
}

func (g *Game) setToneEnabled(on bool) {
	if on && g.player != nil {
		if err := g.player.Init(); err != nil {
			log.Printf("[Tone] audio unavailable: %v", err)
			g.lastErr = fmt.Errorf("audio: %w", err)
			on = false
		}
	}
	if g.player == nil {
		on = false
	}
	g.toneEnabled = on
	if g.settings != nil {
		g.settings.SetToneEnabled(on)
	}
}

func (g *Game) openSceneDialog() error {
	path, err := g.openSceneFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.LoadScene(path); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Open Scene"))
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	return nil
}

// LoadScene replaces the scene with one read from a YAML file. The current
// scene is kept if the file cannot be used.
func (g *Game) LoadScene(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	g.applyScene(cfg)
	g.lastErr = nil
	log.Printf("[Scene] loaded %s (%d points)", path, cfg.Points.Count)
	return nil
}

func selectSceneFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
}

// Close persists UI state and releases the audio device.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.settings != nil {
		g.settings.SetOrbit(g.controls.Orbit())
		if err := g.settings.Save(); err != nil {
			log.Printf("[Settings] %v", err)
		}
	}
	if g.player != nil {
		g.player.Close()
	}
}

// Layout follows the window size so a resize only changes the projection.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.camera.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
