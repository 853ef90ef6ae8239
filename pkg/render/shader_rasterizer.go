package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Rasterizer triangle-scans a shader's vertex output over a pixel bounding
// box, testing barycentric coverage and deferring everything else —
// coloring, depth testing, varying interpolation — to the Shader. It holds
// no per-frame state of its own: BasicShader/LightShader already own the
// framebuffer and depth buffer they write to.
type Rasterizer struct{}

// NewRasterizer returns a stateless triangle rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Triangle rasterizes one triangle whose vertices have already been
// transformed to screen space by a shader's Vertex stage. It back-face
// culls via the sign of the screen-space cross product, then calls
// shader.Fragment once per pixel in the integer bounding box.
func (r *Rasterizer) Triangle(v1, v2, v3 math3d.Vec3, shader Shader) {
	cross := v2.Sub(v1).Cross(v3.Sub(v1))
	if cross.Z < 0 {
		return
	}

	x0 := int(math.Round(math.Min(v1.X, math.Min(v2.X, v3.X))))
	x1 := int(math.Round(math.Max(v1.X, math.Max(v2.X, v3.X))))
	y0 := int(math.Round(math.Min(v1.Y, math.Min(v2.Y, v3.Y))))
	y1 := int(math.Round(math.Max(v1.Y, math.Max(v2.Y, v3.Y))))

	a := math3d.V2(v1.X, v1.Y)
	b := math3d.V2(v2.X, v2.Y)
	c := math3d.V2(v3.X, v3.Y)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			bary, degenerate := math3d.Barycentric(a, b, c, math3d.V2(float64(x), float64(y)))
			if degenerate {
				continue
			}
			shader.Fragment(bary)
		}
	}
}

// MeshFaces is the subset of models.Mesh the Rasterizer's driving loop
// needs; kept minimal here to avoid an import of pkg/models, which itself
// imports pkg/render for Texture.
type MeshFaces interface {
	NumFaces() int
}

// RasterizeMesh drives a Shader across every face of a mesh: three Vertex
// calls build the triangle, then Triangle walks its covered pixels.
func (r *Rasterizer) RasterizeMesh(mesh MeshFaces, shader Shader) {
	for face := range mesh.NumFaces() {
		v1 := shader.Vertex(face, 0)
		v2 := shader.Vertex(face, 1)
		v3 := shader.Vertex(face, 2)
		r.Triangle(v1, v2, v3, shader)
	}
}
