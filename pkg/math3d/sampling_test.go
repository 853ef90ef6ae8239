package math3d

import (
	"math/rand"
	"testing"
)

func TestRandomInUnitSphereBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		v := RandomInUnitSphere(rng)
		if v.LenSq() >= 1 {
			t.Fatalf("sample %v has length^2 %v, want < 1", v, v.LenSq())
		}
	}
}

func TestRandomUnitVectorIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for range 1000 {
		v := RandomUnitVector(rng)
		if !approxEqual(v.Len(), 1, 1e-9) {
			t.Fatalf("sample %v has length %v, want 1", v, v.Len())
		}
	}
}

func TestRandomUnitDiskVectorBoundedAndFlat(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 1000 {
		v := RandomUnitDiskVector(rng)
		if v.Z != 0 {
			t.Fatalf("sample %v has nonzero Z", v)
		}
		if v.LenSq() >= 1 {
			t.Fatalf("sample %v has length^2 %v, want < 1", v, v.LenSq())
		}
	}
}

func TestRandomHemisphereVectorMatchesNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := V3(0, 1, 0)
	for range 1000 {
		v := RandomHemisphereVector(n, rng)
		if v.Dot(n) < 0 {
			t.Fatalf("sample %v lies in the wrong hemisphere relative to %v", v, n)
		}
	}
}
