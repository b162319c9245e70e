package game

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/wave-spheres/internal/config"
	"github.com/iburimskiy/wave-spheres/internal/scene"
	"github.com/iburimskiy/wave-spheres/internal/ui"
)

var (
	axisXColor   = color.RGBA{R: 255, A: 255}
	axisYColor   = color.RGBA{G: 255, A: 255}
	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	labelColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawAxes(screen)

	for _, i := range g.depthOrder() {
		g.drawSphere(screen, i)
	}

	g.drawPanel(screen)
	g.tooltip.Draw(screen, g.face)
}

func (g *Game) drawAxes(screen *ebiten.Image) {
	l := float64(config.AxisLength)
	g.drawSegment(screen, scene.V(-l, 0, 0), scene.V(l, 0, 0), axisXColor)
	g.drawSegment(screen, scene.V(0, -l, 0), scene.V(0, l, 0), axisYColor)
}

func (g *Game) drawSegment(screen *ebiten.Image, a, b scene.Vec3, clr color.Color) {
	x0, y0, x1, y1, ok := g.camera.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

// depthOrder sorts sphere indices back to front.
func (g *Game) depthOrder() []int {
	eye, fwd := g.camera.Position, g.camera.Forward()
	depth := func(i int) float64 { return g.centers[i].Sub(eye).Dot(fwd) }
	for i := range g.order {
		g.order[i] = i
	}
	sort.SliceStable(g.order, func(a, b int) bool { return depth(g.order[a]) > depth(g.order[b]) })
	return g.order
}

// drawSphere fakes a lit sphere with concentric discs: the outer disc is
// shaded with a normal turned away from the key light, inner discs step
// toward the half vector and shift toward the highlight.
func (g *Game) drawSphere(screen *ebiten.Image, i int) {
	c := g.centers[i]
	sx, sy, _, ok := g.camera.Project(c)
	if !ok {
		return
	}
	radius := g.cfg.Points.Radius
	r := g.camera.ProjectedRadius(c, radius)
	if r < 0.75 {
		r = 0.75
	}

	pt := g.field.Points[i]
	base, _ := colorful.MakeColor(pt.Color)
	mat := scene.Material{
		Color:     base,
		Emissive:  pt.Highlight,
		Specular:  g.specular,
		Shininess: pt.Shininess,
	}

	eye := g.camera.Position.Sub(c).Normalize()
	half := eye.Add(g.keyLightDir(c)).Normalize()
	side := half.Sub(eye.Mul(half.Dot(eye)))
	if side.Dot(side) < 1e-12 {
		side = g.camera.CameraUp()
	}
	side = side.Normalize()
	rim := eye.Mul(0.35).Sub(side).Normalize()
	hx, hy := side.Dot(g.camera.Right()), -side.Dot(g.camera.CameraUp())

	rings := config.ShadeRings
	for k := 0; k < rings; k++ {
		s := float64(k) / float64(rings-1)
		n := rim.Mul(1 - s).Add(half.Mul(s)).Normalize()
		rr := r * (1 - float64(k)/float64(rings))
		off := (r - rr) * 0.6
		clr := scene.Shade(mat, g.lights, c.Add(n.Mul(radius)), n, g.camera.Position)
		vector.DrawFilledCircle(screen, float32(sx+hx*off), float32(sy+hy*off), float32(rr), clr, true)
	}

	if i == g.hovered {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(r+2), 1.5, outlineColor, true)
	}
}

// keyLightDir points from p to the first non-ambient light.
func (g *Game) keyLightDir(p scene.Vec3) scene.Vec3 {
	for _, l := range g.lights {
		switch l.Kind {
		case scene.PointLight:
			return l.Position.Sub(p).Normalize()
		case scene.DirectionalLight:
			return l.Position.Normalize()
		}
	}
	return g.camera.Position.Sub(p).Normalize()
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	g.autoPlay.Draw(screen, g.face)
	g.slider.Draw(screen, g.face)

	label := "Time " + formatPhase(g.field.Time())
	ui.DrawText(screen, label, g.face, float64(config.PanelX), float64(g.slider.Y+g.slider.Knob+6), labelColor)

	// Draw help
	status := "Drag: orbit | Wheel: zoom | R: reset view | Space: auto-play | Left/Right: step | O: open scene | M: tone"
	if g.toneEnabled {
		status += " (on)"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}
