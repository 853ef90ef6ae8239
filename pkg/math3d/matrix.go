package math3d

import "fmt"

// Matrix is a row-major, fixed-dimension matrix whose size is chosen at
// construction (Go generics cannot parameterize array length by a type
// parameter's value, so the dimensions live in the struct rather than the
// type, unlike the specialized allocation-free Mat4). It backs the LinAlg
// layer's general inverse/transpose/multiply operations and the homogeneous
// column-vector helpers ColumnFromVec3/Vec3FromColumn; Mat4 remains the
// hot-path type for Camera and the rasterizer.
type Matrix struct {
	Rows, Cols int
	data       []float64
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// IdentityMatrix returns the n x n identity matrix.
func IdentityMatrix(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := range n {
		m.Set(i, i, 1)
	}
	return m
}

// MatrixFromRows builds a matrix from row-major literal data. Every row must
// have the same length.
func MatrixFromRows(rows [][]float64) *Matrix {
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.Cols+col]
}

// Set assigns the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.data[row*m.Cols+col] = v
}

// Transpose returns a new matrix that is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.Cols, m.Rows)
	for r := range m.Rows {
		for c := range m.Cols {
			t.Set(c, r, m.At(r, c))
		}
	}
	return t
}

// Mul multiplies m by other, returning a new matrix. The caller is
// responsible for matching inner dimensions; a mismatch panics, matching the
// assertion-based precondition style used throughout the rendering core.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.Cols != other.Rows {
		panic(fmt.Sprintf("math3d: matrix dimension mismatch in Mul: %dx%d * %dx%d", m.Rows, m.Cols, other.Rows, other.Cols))
	}
	out := NewMatrix(m.Rows, other.Cols)
	for r := range m.Rows {
		for c := range other.Cols {
			var sum float64
			for k := range m.Cols {
				sum += m.At(r, k) * other.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// Inverse computes the matrix inverse via Gauss-Jordan elimination with an
// augmented identity of width 2n. It panics if a pivot is exactly zero
// (no partial pivoting) — callers are expected to avoid singular input, per
// the core's assertion-based error model.
func (m *Matrix) Inverse() *Matrix {
	if m.Rows != m.Cols {
		panic("math3d: Inverse requires a square matrix")
	}
	n := m.Rows
	aug := NewMatrix(n, 2*n)
	for r := range n {
		for c := range n {
			aug.Set(r, c, m.At(r, c))
		}
		aug.Set(r, n+r, 1)
	}

	for col := range n {
		pivot := aug.At(col, col)
		if pivot == 0 {
			panic(fmt.Sprintf("math3d: Inverse: zero pivot at row %d (singular matrix)", col))
		}
		invPivot := 1 / pivot
		for c := range 2 * n {
			aug.Set(col, c, aug.At(col, c)*invPivot)
		}
		for r := range n {
			if r == col {
				continue
			}
			factor := aug.At(r, col)
			if factor == 0 {
				continue
			}
			for c := range 2 * n {
				aug.Set(r, c, aug.At(r, c)-factor*aug.At(col, c))
			}
		}
	}

	inv := NewMatrix(n, n)
	for r := range n {
		for c := range n {
			inv.Set(r, c, aug.At(r, n+c))
		}
	}
	return inv
}

// Vec3FromColumn converts a (4,1) homogeneous column-vector matrix, as
// produced by a projection, into a Vec3 by dividing through its fourth
// (homogeneous) component.
func Vec3FromColumn(m *Matrix) Vec3 {
	if m.Rows != 4 || m.Cols != 1 {
		panic(fmt.Sprintf("math3d: Vec3FromColumn requires a 4x1 matrix, got %dx%d", m.Rows, m.Cols))
	}
	w := m.At(3, 0)
	if w == 0 {
		w = minNormalizeMagnitude
	}
	return Vec3{m.At(0, 0) / w, m.At(1, 0) / w, m.At(2, 0) / w}
}

// ColumnFromVec3 embeds a Vec3 as a homogeneous (4,1) column-vector matrix
// with the given w component (1 for a point, 0 for a direction).
func ColumnFromVec3(v Vec3, w float64) *Matrix {
	m := NewMatrix(4, 1)
	m.Set(0, 0, v.X)
	m.Set(1, 0, v.Y)
	m.Set(2, 0, v.Z)
	m.Set(3, 0, w)
	return m
}
