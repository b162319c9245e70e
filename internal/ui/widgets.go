// Package ui draws the control panel and the hover tooltip.
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	textColor     = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	dimTextColor  = color.RGBA{R: 120, G: 125, B: 135, A: 255}
	boxColor      = color.RGBA{R: 25, G: 30, B: 40, A: 220}
	borderColor   = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	hoverColor    = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	accentColor   = color.RGBA{R: 117, G: 115, B: 255, A: 255}
	disabledColor = color.RGBA{R: 60, G: 64, B: 72, A: 255}
)

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y         int
	Down         bool
	JustPressed  bool
	JustReleased bool
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

// Checkbox is a labelled toggle. Clicking the box or the label flips it.
type Checkbox struct {
	X, Y    int
	Size    int
	Label   string
	Checked bool

	labelWidth int
	hovered    bool
	pressed    bool
}

func (c *Checkbox) bounds() rect {
	return rect{c.X, c.Y, c.Size + 8 + c.labelWidth, c.Size}
}

// Contains reports whether the point is over the checkbox or its label.
func (c *Checkbox) Contains(x, y int) bool { return c.bounds().contains(x, y) }

// Update handles a click and reports whether Checked changed.
func (c *Checkbox) Update(p Pointer) bool {
	c.hovered = c.Contains(p.X, p.Y)
	if c.hovered && p.JustPressed {
		c.pressed = true
	}
	changed := false
	if p.JustReleased {
		if c.pressed && c.hovered {
			c.Checked = !c.Checked
			changed = true
		}
		c.pressed = false
	}
	return changed
}

// SetLabelWidth sizes the clickable label area, usually from MeasureText.
func (c *Checkbox) SetLabelWidth(w int) { c.labelWidth = w }

func (c *Checkbox) Draw(screen *ebiten.Image, face text.Face) {
	border := borderColor
	if c.hovered {
		border = hoverColor
	}
	x, y, s := float32(c.X), float32(c.Y), float32(c.Size)
	vector.DrawFilledRect(screen, x, y, s, s, boxColor, false)
	vector.StrokeRect(screen, x, y, s, s, 2, border, false)
	if c.Checked {
		vector.DrawFilledRect(screen, x+4, y+4, s-8, s-8, accentColor, false)
	}
	if face != nil {
		DrawText(screen, c.Label, face, float64(c.X+c.Size+8), float64(c.Y), textColor)
	}
}

// Slider picks an integer value in [0, Max] by clicking or dragging the
// track. A disabled slider ignores input and is drawn greyed out.
type Slider struct {
	X, Y     int
	Width    int
	Height   int
	Knob     int
	Max      int
	Value    int
	Disabled bool

	hovered  bool
	dragging bool
}

func (s *Slider) bounds() rect {
	return rect{s.X - s.Knob, s.Y - s.Knob, s.Width + 2*s.Knob, s.Height + 2*s.Knob}
}

// Contains reports whether the point is over the track or knob area.
func (s *Slider) Contains(x, y int) bool { return s.bounds().contains(x, y) }

// Ratio is Value as a fraction of Max.
func (s *Slider) Ratio() float64 {
	if s.Max <= 0 {
		return 0
	}
	return float64(s.Value) / float64(s.Max)
}

// SetValue clamps v into [0, Max].
func (s *Slider) SetValue(v int) {
	if v < 0 {
		v = 0
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// Dragging reports whether the knob is held.
func (s *Slider) Dragging() bool { return s.dragging }

// Update handles click and drag and reports whether Value changed.
func (s *Slider) Update(p Pointer) bool {
	s.hovered = s.Contains(p.X, p.Y)
	if s.Disabled {
		s.dragging = false
		return false
	}
	if s.hovered && p.JustPressed {
		s.dragging = true
	}
	if p.JustReleased || !p.Down {
		defer func() { s.dragging = false }()
	}
	if !s.dragging {
		return false
	}
	old := s.Value
	s.SetValue(s.valueAt(p.X))
	return s.Value != old
}

func (s *Slider) valueAt(px int) int {
	if s.Width <= 0 {
		return 0
	}
	ratio := float64(px-s.X) / float64(s.Width)
	return int(math.Round(ratio * float64(s.Max)))
}

func (s *Slider) Draw(screen *ebiten.Image, face text.Face) {
	track, fill, knob := borderColor, accentColor, color.Color(color.White)
	if s.Disabled {
		track, fill, knob = disabledColor, disabledColor, dimTextColor
	} else if s.hovered || s.dragging {
		track = hoverColor
	}

	x, y := float32(s.X), float32(s.Y)
	w, h := float32(s.Width), float32(s.Height)
	vector.DrawFilledRect(screen, x, y, w, h, boxColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, track, false)
	fillW := float32(s.Ratio()) * w
	vector.DrawFilledRect(screen, x, y, fillW, h, fill, false)

	kx, ky := x+fillW, y+h/2
	vector.DrawFilledCircle(screen, kx, ky, float32(s.Knob), knob, true)
	vector.StrokeCircle(screen, kx, ky, float32(s.Knob), 2, track, true)

	if face != nil {
		clr := color.Color(textColor)
		if s.Disabled {
			clr = dimTextColor
		}
		DrawText(screen, fmt.Sprintf("%d", s.Value), face, float64(s.X+s.Width+s.Knob+8), float64(s.Y)-float64(s.Knob), clr)
	}
}

// Tooltip is a small text box that follows the pointer.
type Tooltip struct {
	Visible bool
	Text    string
	X, Y    float64
	Offset  float64
}

// Show places the tooltip Offset pixels right of and below the pointer,
// pushed back inside a viewport of the given size.
func (t *Tooltip) Show(s string, px, py, textW, textH, viewW, viewH float64) {
	t.Visible = true
	t.Text = s
	w, h := textW+2*tooltipPadding, textH+2*tooltipPadding
	t.X = math.Max(0, math.Min(px+t.Offset, viewW-w))
	t.Y = math.Max(0, math.Min(py+t.Offset, viewH-h))
}

func (t *Tooltip) Hide() { t.Visible = false }

const tooltipPadding = 5

func (t *Tooltip) Draw(screen *ebiten.Image, face text.Face) {
	if !t.Visible || face == nil {
		return
	}
	w, h := MeasureText(t.Text, face)
	x, y := float32(t.X), float32(t.Y)
	bw, bh := float32(w+2*tooltipPadding), float32(h+2*tooltipPadding)
	vector.DrawFilledRect(screen, x, y, bw, bh, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, x, y, bw, bh, 1, borderColor, false)
	DrawText(screen, t.Text, face, t.X+tooltipPadding, t.Y+tooltipPadding, textColor)
}

// FormatCoords is the tooltip text for a point.
func FormatCoords(x, y float64) string {
	return fmt.Sprintf("X: %.2f, Y: %.2f", x, y)
}
