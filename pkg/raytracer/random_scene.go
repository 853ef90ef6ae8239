package raytracer

import (
	"math/rand"

	"github.com/taigrr/trophy/pkg/math3d"
)

// RandomScene builds the classic "book cover" demo scene: a large ground
// sphere, a grid of small randomly-materialed spheres, and three feature
// spheres (glass, diffuse, metal) — the scene the offline raytrace command
// renders.
func RandomScene(rng *rand.Rand) *Scene {
	scene := NewScene()

	ground := Lambertian(math3d.V3(0.5, 0.5, 0.5))
	scene.Add(Sphere{Center: math3d.V3(0, -1000, 0), Radius: 1000, Material: ground})

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := math3d.V3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(math3d.V3(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			choice := rng.Float64()
			var mat Material
			switch {
			case choice < 0.8:
				albedo := randomVec3(rng).Mul(randomVec3(rng))
				mat = Lambertian(albedo)
			case choice < 0.95:
				albedo := randomVec3Range(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				mat = Metal(albedo, fuzz)
			default:
				mat = Dielectric(1.5)
			}
			scene.Add(Sphere{Center: center, Radius: 0.2, Material: mat})
		}
	}

	scene.Add(Sphere{Center: math3d.V3(0, 1, 0), Radius: 1, Material: Dielectric(1.5)})
	scene.Add(Sphere{Center: math3d.V3(-4, 1, 0), Radius: 1, Material: Lambertian(math3d.V3(0.4, 0.2, 0.1))})
	scene.Add(Sphere{Center: math3d.V3(4, 1, 0), Radius: 1, Material: Metal(math3d.V3(0.7, 0.6, 0.5), 0)})

	return scene
}

func randomVec3(rng *rand.Rand) math3d.Vec3 {
	return math3d.V3(rng.Float64(), rng.Float64(), rng.Float64())
}

func randomVec3Range(rng *rand.Rand, lo, hi float64) math3d.Vec3 {
	span := hi - lo
	return math3d.V3(lo+rng.Float64()*span, lo+rng.Float64()*span, lo+rng.Float64()*span)
}
