// Package models provides 3D model loading and representation for Trophy.
package models

import (
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/render"
)

// Mesh represents a 3D mesh with vertices and faces.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Diffuse and NormalMap are sampled by BasicShader; either may be nil,
	// in which case the shader uses plain white / its flat face normal.
	Diffuse   *render.Texture
	NormalMap *render.Texture

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Face represents a triangle face with vertex indices.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]MeshVertex, 0),
		Faces:     make([]Face, 0),
		BoundsMin: math3d.V3(0, 0, 0),
		BoundsMax: math3d.V3(0, 0, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateNormals computes face normals and assigns them to vertices.
// This is a simple flat-shading approach; for smooth shading, normals
// should be averaged per-vertex.
func (m *Mesh) CalculateNormals() {
	for i := range m.Faces {
		f := &m.Faces[i]
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2).Normalize()

		// Assign to vertices (flat shading - each face has its own normal)
		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// CalculateSmoothNormals computes averaged normals for smooth shading.
func (m *Mesh) CalculateSmoothNormals() {
	// Reset all normals
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	// Accumulate face normals per vertex
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2) // Don't normalize yet

		m.Vertices[f.V[0]].Normal = m.Vertices[f.V[0]].Normal.Add(normal)
		m.Vertices[f.V[1]].Normal = m.Vertices[f.V[1]].Normal.Add(normal)
		m.Vertices[f.V[2]].Normal = m.Vertices[f.V[2]].Normal.Add(normal)
	}

	// Normalize all accumulated normals
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
		// Normals go through the matrix's upper 3x3 (not its inverse
		// transpose) and are renormalized, which is exact for rotations and
		// uniform scales but not for non-uniform scales.
		m.Vertices[i].Normal = mat.MulVec3Dir(m.Vertices[i].Normal).Normalize()
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Diffuse:   m.Diffuse,
		NormalMap: m.NormalMap,
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// NumFaces returns the number of triangles, for driving a Rasterizer loop.
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// Vertex returns the object-space position of the v-th corner (0,1,2) of
// face.
func (m *Mesh) Vertex(face, v int) math3d.Vec3 {
	return m.Vertices[m.Faces[face].V[v]].Position
}

// VertexNormal returns the stored per-vertex normal of the v-th corner of
// face.
func (m *Mesh) VertexNormal(face, v int) math3d.Vec3 {
	return m.Vertices[m.Faces[face].V[v]].Normal
}

// TexCoords returns the UV coordinate of the v-th corner of face.
func (m *Mesh) TexCoords(face, v int) math3d.Vec2 {
	return m.Vertices[m.Faces[face].V[v]].UV
}

// Texture samples the mesh's diffuse map at (u,v), or white if the mesh has
// none.
func (m *Mesh) Texture(u, v float64) render.Color {
	if m.Diffuse == nil {
		return render.RGB(255, 255, 255)
	}
	return m.Diffuse.Sample(u, v)
}

// Normal samples the mesh's tangent-space normal map at (u,v) and returns
// it as a unit vector in the [-1,1]^3 cube; ok is false if the mesh has no
// normal map, in which case BasicShader keeps its flat face normal.
func (m *Mesh) Normal(u, v float64) (n math3d.Vec3, ok bool) {
	if m.NormalMap == nil {
		return math3d.Vec3{}, false
	}
	c := m.NormalMap.Sample(u, v)
	decode := func(b uint8) float64 { return 2*(float64(b)/255) - 1 }
	return math3d.V3(decode(c.R), decode(c.G), decode(c.B)).Normalize(), true
}
