package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	minPolar = 0.01
	maxPolar = math.Pi - 0.01

	zoomStep = 0.95
)

// OrbitControls keeps the camera on a sphere around its target. Input moves
// goal angles and distance; Update eases the camera toward them.
type OrbitControls struct {
	camera *Camera

	MinDistance float64
	MaxDistance float64
	RotateSpeed float64

	spring harmonica.Spring

	azimuth, polar, distance             orbitAxis
	homeAzimuth, homePolar, homeDistance float64
}

type orbitAxis struct {
	pos, vel, goal float64
}

func (a *orbitAxis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.goal)
}

func (a *orbitAxis) jump(v float64) {
	a.pos, a.vel, a.goal = v, 0, v
}

// NewOrbitControls derives the starting orbit from the camera's current
// position relative to its target, with the distance held in
// [minDistance, maxDistance]. frequency and damping tune the easing.
func NewOrbitControls(c *Camera, fps int, frequency, damping, minDistance, maxDistance float64) *OrbitControls {
	oc := &OrbitControls{
		camera:      c,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		RotateSpeed: 1,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
	az, po, di := sphericalOf(c.Position.Sub(c.Target))
	di = clamp(di, minDistance, maxDistance)
	oc.homeAzimuth, oc.homePolar, oc.homeDistance = az, clamp(po, minPolar, maxPolar), di
	oc.SetOrbit(az, po, di)
	return oc
}

// Rotate turns the goal orbit by a pointer drag of (dx, dy) pixels in a
// viewport of the given height. A full-height drag is one turn.
func (oc *OrbitControls) Rotate(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	oc.azimuth.goal -= 2 * math.Pi * dx / viewportHeight * oc.RotateSpeed
	oc.polar.goal = clamp(oc.polar.goal-2*math.Pi*dy/viewportHeight*oc.RotateSpeed, minPolar, maxPolar)
}

// Dolly moves the goal distance; positive steps zoom in.
func (oc *OrbitControls) Dolly(steps float64) {
	oc.distance.goal = clamp(oc.distance.goal*math.Pow(zoomStep, steps), oc.MinDistance, oc.MaxDistance)
}

// SetOrbit jumps straight to the given orbit, skipping the easing.
func (oc *OrbitControls) SetOrbit(azimuth, polar, distance float64) {
	oc.azimuth.jump(azimuth)
	oc.polar.jump(clamp(polar, minPolar, maxPolar))
	oc.distance.jump(clamp(distance, oc.MinDistance, oc.MaxDistance))
	oc.apply()
}

// Orbit returns the goal orbit.
func (oc *OrbitControls) Orbit() (azimuth, polar, distance float64) {
	return oc.azimuth.goal, oc.polar.goal, oc.distance.goal
}

// Reset eases back to the orbit the controls were created with.
func (oc *OrbitControls) Reset() {
	oc.azimuth.goal = oc.homeAzimuth
	oc.polar.goal = oc.homePolar
	oc.distance.goal = oc.homeDistance
}

// Update advances the easing by one frame and moves the camera.
func (oc *OrbitControls) Update() {
	oc.azimuth.step(oc.spring)
	oc.polar.step(oc.spring)
	oc.distance.step(oc.spring)
	oc.apply()
}

func (oc *OrbitControls) apply() {
	offset := fromSpherical(oc.azimuth.pos, clamp(oc.polar.pos, minPolar, maxPolar), oc.distance.pos)
	oc.camera.LookAt(oc.camera.Target.Add(offset), oc.camera.Target)
}

// sphericalOf uses +Y as the pole and measures azimuth from +Z toward +X.
func sphericalOf(v Vec3) (azimuth, polar, distance float64) {
	distance = v.Len()
	if distance == 0 {
		return 0, math.Pi / 2, 0
	}
	return math.Atan2(v.X(), v.Z()), math.Acos(clamp(v.Y()/distance, -1, 1)), distance
}

func fromSpherical(azimuth, polar, distance float64) Vec3 {
	s := math.Sin(polar)
	return V(distance*s*math.Sin(azimuth), distance*math.Cos(polar), distance*s*math.Cos(azimuth))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
