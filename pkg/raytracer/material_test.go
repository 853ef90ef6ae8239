package raytracer

import (
	"math/rand"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestLambertianScatterStaysAboveSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Lambertian(math3d.V3(0.5, 0.5, 0.5))
	h := Hit{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 1, 0), FrontFace: true}
	r := Ray{Origin: math3d.V3(0, 1, 0), Direction: math3d.V3(0, -1, 0)}

	for range 100 {
		scatter, ok := m.Scatter(r, h, rng)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != m.Albedo {
			t.Fatalf("Attenuation = %v, want %v", scatter.Attenuation, m.Albedo)
		}
	}
}

func TestMetalScatterReflectsAboutNormal(t *testing.T) {
	m := Metal(math3d.V3(1, 1, 1), 0)
	h := Hit{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 1, 0)}
	r := Ray{Origin: math3d.V3(-1, 1, 0), Direction: math3d.V3(1, -1, 0).Normalize()}

	scatter, ok := m.Scatter(r, h, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("expected a reflection")
	}
	want := math3d.V3(1, 1, 0).Normalize()
	if !approxEqual(scatter.Scattered.Direction.X, want.X, 1e-9) ||
		!approxEqual(scatter.Scattered.Direction.Y, want.Y, 1e-9) {
		t.Fatalf("reflected direction = %v, want %v", scatter.Scattered.Direction, want)
	}
}

func TestMetalAbsorbsGrazingFuzz(t *testing.T) {
	m := Metal(math3d.V3(1, 1, 1), 1)
	h := Hit{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 1, 0)}
	r := Ray{Origin: math3d.V3(-1, 0.1, 0), Direction: math3d.V3(1, -0.1, 0).Normalize()}

	// The grazing reflection leaves the surface at a shallow angle, so with
	// Fuzz=1 the reflected ray can be perturbed below the surface;
	// over many trials at least one attempt must be absorbed (ok=false).
	rng := rand.New(rand.NewSource(7))
	sawAbsorption := false
	for range 200 {
		if _, ok := m.Scatter(r, h, rng); !ok {
			sawAbsorption = true
			break
		}
	}
	if !sawAbsorption {
		t.Fatal("expected at least one absorbed (below-surface) scatter with Fuzz=1")
	}
}

func TestDielectricAlwaysRefractsOrReflects(t *testing.T) {
	m := Dielectric(1.5)
	h := Hit{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 1, 0), FrontFace: true}
	r := Ray{Origin: math3d.V3(0, 1, 0), Direction: math3d.V3(0, -1, 0)}

	scatter, ok := m.Scatter(r, h, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("Dielectric should always scatter")
	}
	if scatter.Attenuation != (math3d.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("Attenuation = %v, want {1 1 1}", scatter.Attenuation)
	}
}

func TestSchlickAtNormalIncidenceMatchesR0(t *testing.T) {
	got := schlick(1, 1.5)
	want := 0.04
	if !approxEqual(got, want, 1e-2) {
		t.Fatalf("schlick(1, 1.5) = %v, want ~%v", got, want)
	}
}

func TestSchlickGrazingAngleApproachesOne(t *testing.T) {
	got := schlick(0, 1.5)
	if got < 0.9 {
		t.Fatalf("schlick(0, 1.5) = %v, want close to 1", got)
	}
}
