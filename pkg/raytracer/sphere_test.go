package raytracer

import (
	"math"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSphereHitStraightOn(t *testing.T) {
	s := Sphere{Center: math3d.V3(0, 0, -5), Radius: 1, Material: Lambertian(math3d.V3(1, 1, 1))}
	r := Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 0, -1)}

	h, ok := s.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approxEqual(h.T, 4, 1e-9) {
		t.Fatalf("T = %v, want 4", h.T)
	}
	if !h.FrontFace {
		t.Fatal("expected a front-face hit from outside the sphere")
	}
	wantNormal := math3d.V3(0, 0, 1)
	if !approxEqual(h.Normal.X, wantNormal.X, 1e-9) || !approxEqual(h.Normal.Y, wantNormal.Y, 1e-9) || !approxEqual(h.Normal.Z, wantNormal.Z, 1e-9) {
		t.Fatalf("Normal = %v, want %v", h.Normal, wantNormal)
	}
}

func TestSphereMiss(t *testing.T) {
	s := Sphere{Center: math3d.V3(0, 0, -5), Radius: 1, Material: Lambertian(math3d.V3(1, 1, 1))}
	r := Ray{Origin: math3d.V3(5, 5, 0), Direction: math3d.V3(0, 0, -1)}

	if _, ok := s.Hit(r, 0.001, math.Inf(1)); ok {
		t.Fatal("expected no hit")
	}
}

func TestSphereHitFromInsideIsBackFace(t *testing.T) {
	s := Sphere{Center: math3d.V3(0, 0, 0), Radius: 2, Material: Lambertian(math3d.V3(1, 1, 1))}
	r := Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 0, -1)}

	h, ok := s.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if h.FrontFace {
		t.Fatal("expected a back-face hit from inside the sphere")
	}
}

func TestSceneHitReturnsClosest(t *testing.T) {
	near := Sphere{Center: math3d.V3(0, 0, -3), Radius: 1, Material: Lambertian(math3d.V3(1, 0, 0))}
	far := Sphere{Center: math3d.V3(0, 0, -10), Radius: 1, Material: Lambertian(math3d.V3(0, 1, 0))}
	scene := NewScene(far, near)

	r := Ray{Origin: math3d.V3(0, 0, 0), Direction: math3d.V3(0, 0, -1)}
	h, ok := scene.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approxEqual(h.T, 2, 1e-9) {
		t.Fatalf("T = %v, want 2 (the nearer sphere)", h.T)
	}
}
