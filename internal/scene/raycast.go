package scene

import (
	"math"
	"sort"
)

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit length
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Mul(t)) }

// Hit is one ray/sphere intersection.
type Hit struct {
	Index    int
	Distance float64
	Point    Vec3
}

// Raycaster casts rays from a camera through screen positions.
type Raycaster struct {
	Ray  Ray
	Near float64
	Far  float64
}

// NewRaycaster returns a raycaster with no far limit.
func NewRaycaster() *Raycaster {
	return &Raycaster{Far: math.Inf(1)}
}

// SetFromCamera aims the ray from the camera through the NDC point (nx, ny).
func (rc *Raycaster) SetFromCamera(nx, ny float64, c *Camera) {
	rc.Ray = Ray{Origin: c.Position, Direction: c.rayDirection(nx, ny)}
}

// IntersectSphere returns the distance to the first surface crossing of a
// sphere within [Near, Far].
func (rc *Raycaster) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := rc.Ray.Origin.Sub(center)
	b := oc.Dot(rc.Ray.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < rc.Near {
		// origin inside the sphere or sphere partly behind the near plane
		t = -b + sq
	}
	if t < rc.Near || t > rc.Far {
		return 0, false
	}
	return t, true
}

// IntersectSpheres tests every centre and returns the hits nearest first.
func (rc *Raycaster) IntersectSpheres(centers []Vec3, radius float64) []Hit {
	var hits []Hit
	for i, c := range centers {
		if t, ok := rc.IntersectSphere(c, radius); ok {
			hits = append(hits, Hit{Index: i, Distance: t, Point: rc.Ray.At(t)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// PickHovered returns the index of the nearest sphere under the NDC point.
func PickHovered(nx, ny float64, centers []Vec3, radius float64, c *Camera) (int, bool) {
	rc := NewRaycaster()
	rc.SetFromCamera(nx, ny, c)
	hits := rc.IntersectSpheres(centers, radius)
	if len(hits) == 0 {
		return -1, false
	}
	return hits[0].Index, true
}
