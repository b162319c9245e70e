package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOV  float64 // vertical, degrees
	Near float64
	Far  float64

	width, height float64

	view, proj         mgl64.Mat4
	forward, right, up Vec3
}

// NewCamera places a camera at (0, 0, 20) looking at the origin.
func NewCamera(fov, width, height float64) *Camera {
	c := &Camera{
		Position: V(0, 0, 20),
		Up:       V(0, 1, 0),
		FOV:      fov,
		Near:     0.1,
		Far:      1000,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport changes the aspect ratio, e.g. after a window resize.
func (c *Camera) SetViewport(width, height float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width, c.height = width, height
	c.update()
}

// Viewport returns the size in pixels the camera projects onto.
func (c *Camera) Viewport() (width, height float64) { return c.width, c.height }

// Aspect is width over height.
func (c *Camera) Aspect() float64 { return c.width / c.height }

// LookAt moves the camera and re-aims it.
func (c *Camera) LookAt(position, target Vec3) {
	c.Position = position
	c.Target = target
	c.update()
}

func (c *Camera) update() {
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)

	// view matrix rows are the camera axes; row 2 points backwards
	c.right = c.view.Row(0).Vec3()
	c.up = c.view.Row(1).Vec3()
	c.forward = c.view.Row(2).Vec3().Mul(-1)
}

// Forward, Right and CameraUp are the unit axes of the view.
func (c *Camera) Forward() Vec3 { return c.forward }

func (c *Camera) Right() Vec3 { return c.right }

func (c *Camera) CameraUp() Vec3 { return c.up }

// Depth is the distance of p along the view axis.
func (c *Camera) Depth(p Vec3) float64 {
	return p.Sub(c.Position).Dot(c.forward)
}

// Project maps a world point to pixel coordinates. depth is the distance along
// the view axis; ok is false outside the near/far range.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	depth = c.Depth(p)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	sx, sy = c.toScreen(p)
	return sx, sy, depth, true
}

func (c *Camera) toScreen(p Vec3) (float64, float64) {
	w, h := c.viewportInts()
	win := mgl64.Project(p, c.view, c.proj, 0, 0, w, h)
	// window coordinates grow upwards
	return win.X(), float64(h) - win.Y()
}

func (c *Camera) viewportInts() (int, int) {
	return int(math.Round(c.width)), int(math.Round(c.height))
}

// ProjectedRadius is the on-screen radius in pixels of a sphere of radius r
// centred at p.
func (c *Camera) ProjectedRadius(p Vec3, r float64) float64 {
	depth := c.Depth(p)
	if depth <= 0 {
		return 0
	}
	return r * c.proj.At(1, 1) / depth * c.height / 2
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates,
// x and y in [-1, 1] with +y up.
func (c *Camera) ScreenToNDC(x, y float64) (float64, float64) {
	return x/c.width*2 - 1, -(y/c.height)*2 + 1
}

// NDCToScreen is the inverse of ScreenToNDC.
func (c *Camera) NDCToScreen(nx, ny float64) (float64, float64) {
	return (nx + 1) / 2 * c.width, (1 - ny) / 2 * c.height
}

// rayDirection returns the unit direction from the camera through an NDC
// point, unprojected onto the near plane.
func (c *Camera) rayDirection(nx, ny float64) Vec3 {
	w, h := c.viewportInts()
	win := V((nx+1)/2*float64(w), (ny+1)/2*float64(h), 0)
	p, err := mgl64.UnProject(win, c.view, c.proj, 0, 0, w, h)
	if err != nil {
		return c.forward
	}
	return p.Sub(c.Position).Normalize()
}

// ProjectSegment projects a line segment, clipping it against the near plane.
func (c *Camera) ProjectSegment(a, b Vec3) (x0, y0, x1, y1 float64, ok bool) {
	da, db := c.Depth(a), c.Depth(b)
	if da < c.Near && db < c.Near {
		return 0, 0, 0, 0, false
	}
	if da < c.Near {
		a = a.Add(b.Sub(a).Mul((c.Near - da) / (db - da)))
	} else if db < c.Near {
		b = b.Add(a.Sub(b).Mul((c.Near - db) / (da - db)))
	}
	x0, y0 = c.toScreen(a)
	x1, y1 = c.toScreen(b)
	return x0, y0, x1, y1, true
}
