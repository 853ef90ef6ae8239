package math3d

import "testing"

func TestVec2Add(t *testing.T) {
	got := V2(1, 2).Add(V2(3, 4))
	if got != (Vec2{4, 6}) {
		t.Fatalf("Add = %v, want {4 6}", got)
	}
}

func TestVec2Sub(t *testing.T) {
	got := V2(5, 7).Sub(V2(2, 3))
	if got != (Vec2{3, 4}) {
		t.Fatalf("Sub = %v, want {3 4}", got)
	}
}

func TestVec2Scale(t *testing.T) {
	got := V2(2, -3).Scale(2)
	if got != (Vec2{4, -6}) {
		t.Fatalf("Scale = %v, want {4 -6}", got)
	}
}

func TestVec2Dot(t *testing.T) {
	got := V2(1, 2).Dot(V2(3, 4))
	if got != 11 {
		t.Fatalf("Dot = %v, want 11", got)
	}
}

func TestVec2Len(t *testing.T) {
	got := V2(3, 4).Len()
	if !approxEqual(got, 5, 1e-9) {
		t.Fatalf("Len = %v, want 5", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a, b := V2(0, 0), V2(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(t=1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid != (Vec2{5, 10}) {
		t.Fatalf("Lerp(t=0.5) = %v, want {5 10}", mid)
	}
}
