package raytracer

import "github.com/taigrr/trophy/pkg/math3d"

// Hit records one ray-surface intersection.
type Hit struct {
	T         float64
	Position  math3d.Vec3
	Normal    math3d.Vec3
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to always point against the incoming ray,
// recording whether the ray originated outside the surface (front face) so
// Dielectric knows which side of the interface it entered from. outward
// must be a unit vector; ray-tracing code throughout this package depends
// on the normal always opposing the ray after this call.
func (h *Hit) SetFaceNormal(r Ray, outward math3d.Vec3) {
	h.FrontFace = r.Direction.Dot(outward) < 0
	if h.FrontFace {
		h.Normal = outward
	} else {
		h.Normal = outward.Negate()
	}
}

// Hittable is an open extension point: scenes compose arbitrary hittables,
// and Scene itself implements it by delegating to its members.
type Hittable interface {
	Hit(r Ray, tMin, tMax float64) (Hit, bool)
}
