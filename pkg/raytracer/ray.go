// Package raytracer implements a recursive path tracer over a flat list of
// implicit surfaces, sharing the math3d linear-algebra layer and the
// render package's exposure camera with the rasterizer.
package raytracer

import "github.com/taigrr/trophy/pkg/math3d"

// Ray is an origin plus a direction that need not be normalized; scattered
// rays inherit whatever direction a Material produced.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// At returns the point origin + t*direction.
func (r Ray) At(t float64) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
