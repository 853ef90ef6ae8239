package raytracer

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Sphere is the ray tracer's only implicit primitive.
type Sphere struct {
	Center   math3d.Vec3
	Radius   float64
	Material Material
}

// Hit solves |origin + t*dir - center|^2 = radius^2 for the smallest root
// t in (tMin, tMax).
func (s Sphere) Hit(r Ray, tMin, tMax float64) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LenSq()
	halfB := oc.Dot(r.Direction)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	var h Hit
	h.T = root
	h.Position = r.At(root)
	outward := h.Position.Sub(s.Center).Scale(1 / s.Radius)
	h.SetFaceNormal(r, outward)
	h.Material = s.Material
	return h, true
}
