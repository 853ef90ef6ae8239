package math3d

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMatrixInverseIdentity(t *testing.T) {
	cases := [][][]float64{
		{{2, 0}, {0, 4}},
		{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}},
		{{4, 3, 2, 1}, {1, 0, 3, 2}, {2, 3, 0, 1}, {3, 2, 1, 4}},
	}

	for _, rows := range cases {
		m := MatrixFromRows(rows)
		inv := m.Inverse()
		product := m.Mul(inv)
		n := m.Rows
		for r := range n {
			for c := range n {
				want := 0.0
				if r == c {
					want = 1
				}
				if !approxEqual(product.At(r, c), want, 1e-4) {
					t.Fatalf("M*inverse(M)[%d][%d] = %v, want %v", r, c, product.At(r, c), want)
				}
			}
		}
	}
}

func TestMatrixInverseSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on singular matrix")
		}
	}()
	m := MatrixFromRows([][]float64{{1, 2}, {2, 4}})
	m.Inverse()
}

func TestMatrixTranspose(t *testing.T) {
	m := MatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	if tr.Rows != 3 || tr.Cols != 2 {
		t.Fatalf("transpose dims = %dx%d, want 3x2", tr.Rows, tr.Cols)
	}
	for r := range m.Rows {
		for c := range m.Cols {
			if m.At(r, c) != tr.At(c, r) {
				t.Fatalf("transpose[%d][%d] = %v, want %v", c, r, tr.At(c, r), m.At(r, c))
			}
		}
	}
}

func TestMatrixMulDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	a := NewMatrix(2, 3)
	b := NewMatrix(2, 2)
	a.Mul(b)
}

func TestColumnRoundTrip(t *testing.T) {
	v := V3(1, -2, 3.5)
	col := ColumnFromVec3(v, 1)
	got := Vec3FromColumn(col)
	if !approxEqual(got.X, v.X, 1e-9) || !approxEqual(got.Y, v.Y, 1e-9) || !approxEqual(got.Z, v.Z, 1e-9) {
		t.Fatalf("Vec3FromColumn(ColumnFromVec3(v)) = %v, want %v", got, v)
	}
}

func TestIdentityMatrix(t *testing.T) {
	id := IdentityMatrix(4)
	for r := range 4 {
		for c := range 4 {
			want := 0.0
			if r == c {
				want = 1
			}
			if id.At(r, c) != want {
				t.Fatalf("identity[%d][%d] = %v, want %v", r, c, id.At(r, c), want)
			}
		}
	}
}
