package math3d

import "testing"

func TestBarycentricVertices(t *testing.T) {
	a, b, c := V2(0, 0), V2(4, 0), V2(0, 4)

	cases := []struct {
		name string
		p    Vec2
		want Vec3
	}{
		{"a", a, Vec3{1, 0, 0}},
		{"b", b, Vec3{0, 1, 0}},
		{"c", c, Vec3{0, 0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, degenerate := Barycentric(a, b, c, tc.p)
			if degenerate {
				t.Fatalf("unexpected degenerate result for %v", tc.p)
			}
			if !approxEqual(got.X, tc.want.X, 1e-9) || !approxEqual(got.Y, tc.want.Y, 1e-9) || !approxEqual(got.Z, tc.want.Z, 1e-9) {
				t.Fatalf("Barycentric(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestBarycentricInsideSumsToOne(t *testing.T) {
	a, b, c := V2(0, 0), V2(6, 0), V2(0, 6)
	p := V2(2, 1)
	got, degenerate := Barycentric(a, b, c, p)
	if degenerate {
		t.Fatal("unexpected degenerate result")
	}
	sum := got.X + got.Y + got.Z
	if !approxEqual(sum, 1, 1e-9) {
		t.Fatalf("barycentric coords sum to %v, want 1", sum)
	}
	if got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Fatalf("interior point has a negative barycentric coordinate: %v", got)
	}
}

func TestBarycentricOutsideHasNegativeComponent(t *testing.T) {
	a, b, c := V2(0, 0), V2(4, 0), V2(0, 4)
	p := V2(10, 10)
	got, degenerate := Barycentric(a, b, c, p)
	if degenerate {
		t.Fatal("unexpected degenerate result")
	}
	if got.X >= 0 && got.Y >= 0 && got.Z >= 0 {
		t.Fatalf("expected a negative component for an outside point, got %v", got)
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	a, b, c := V2(0, 0), V2(2, 0), V2(4, 0)
	_, degenerate := Barycentric(a, b, c, V2(1, 0))
	if !degenerate {
		t.Fatal("expected a collinear triangle to be reported degenerate")
	}
}
