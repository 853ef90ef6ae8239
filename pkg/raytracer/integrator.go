package raytracer

import (
	"math"
	"math/rand"

	"github.com/taigrr/trophy/pkg/math3d"
)

// shadowAcneEpsilon is the minimum hit distance; it discards
// self-intersections caused by floating-point error at the scattering
// point.
const shadowAcneEpsilon = 0.001

// RayColor recursively traces r through scene, bouncing up to depth times.
// Each bounce multiplies in the material's attenuation; running out of
// depth or hitting a material that declines to scatter returns black. A
// miss returns a sky gradient blending white into (0.5, 0.7, 1.0) by the
// ray's vertical component.
func RayColor(r Ray, scene Hittable, depth int, rng *rand.Rand) math3d.Vec3 {
	if depth <= 0 {
		return math3d.V3(0, 0, 0)
	}

	if h, ok := scene.Hit(r, shadowAcneEpsilon, math.Inf(1)); ok {
		scatter, ok := h.Material.Scatter(r, h, rng)
		if !ok {
			return math3d.V3(0, 0, 0)
		}
		return scatter.Attenuation.Mul(RayColor(scatter.Scattered, scene, depth-1, rng))
	}

	unit := r.Direction.Normalize()
	t := 0.5 * (unit.Y + 1)
	white := math3d.V3(1, 1, 1)
	sky := math3d.V3(0.5, 0.7, 1.0)
	return white.Scale(1 - t).Add(sky.Scale(t))
}
