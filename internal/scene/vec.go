// Package scene holds the 3D side of the viewer: a perspective camera with
// orbit controls, ray casting against spheres and lighting.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the scene's vector type.
type Vec3 = mgl64.Vec3

// V builds a Vec3.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// unit normalizes v, leaving the zero vector as is.
func unit(v Vec3) Vec3 {
	if v.Dot(v) == 0 {
		return v
	}
	return v.Normalize()
}
