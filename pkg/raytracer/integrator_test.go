package raytracer

import (
	"math/rand"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestRayColorSkyGradient(t *testing.T) {
	scene := NewScene() // empty scene: every ray misses
	rng := rand.New(rand.NewSource(1))

	up := RayColor(Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 1, 0)}, scene, 10, rng)
	want := math3d.V3(0.5, 0.7, 1.0)
	if !approxEqual(up.X, want.X, 1e-9) || !approxEqual(up.Y, want.Y, 1e-9) || !approxEqual(up.Z, want.Z, 1e-9) {
		t.Fatalf("straight-up miss color = %v, want %v", up, want)
	}

	horizon := RayColor(Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(1, 0, 0)}, scene, 10, rng)
	wantHorizon := math3d.V3(0.75, 0.85, 1.0)
	if !approxEqual(horizon.X, wantHorizon.X, 1e-9) || !approxEqual(horizon.Y, wantHorizon.Y, 1e-9) || !approxEqual(horizon.Z, wantHorizon.Z, 1e-9) {
		t.Fatalf("horizon miss color = %v, want %v", horizon, wantHorizon)
	}
}

func TestRayColorZeroDepthIsBlack(t *testing.T) {
	scene := NewScene(Sphere{Center: math3d.V3(0, 0, -1), Radius: 0.5, Material: Lambertian(math3d.V3(1, 1, 1))})
	rng := rand.New(rand.NewSource(1))

	got := RayColor(Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 0, -1)}, scene, 0, rng)
	if got != (math3d.Vec3{}) {
		t.Fatalf("RayColor at depth 0 = %v, want zero vector", got)
	}
}

func TestRayColorLambertianSphereIsAttenuated(t *testing.T) {
	albedo := math3d.V3(0.5, 0.1, 0.1)
	scene := NewScene(Sphere{Center: math3d.V3(0, 0, -1), Radius: 0.5, Material: Lambertian(albedo)})
	rng := rand.New(rand.NewSource(1))

	got := RayColor(Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 0, -1)}, scene, 10, rng)
	// Every bounce multiplies in albedo, so the result must stay within the
	// unit cube and be driven toward zero by the low-reflectance channels.
	if got.X < 0 || got.X > 1 || got.Y < 0 || got.Y > 1 || got.Z < 0 || got.Z > 1 {
		t.Fatalf("RayColor = %v, want components in [0,1]", got)
	}
	if got.Y > got.X {
		t.Fatalf("RayColor = %v, expected the low-albedo green channel to stay below red", got)
	}
}
