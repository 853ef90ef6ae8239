package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// specularExponent is the Phong exponent used for the highlight term; the
// spec fixes it at 23 and assumes the viewer lies along +z, looking down -z.
const specularExponent = 23

// ShadedMesh is the subset of models.Mesh that BasicShader needs. It lives
// here, not in pkg/models, because pkg/models already imports pkg/render
// (for Texture) and an import back would cycle; models.Mesh satisfies this
// interface structurally.
type ShadedMesh interface {
	NumFaces() int
	Vertex(face, v int) math3d.Vec3
	TexCoords(face, v int) math3d.Vec2
	Texture(u, v float64) Color
	Normal(u, v float64) (math3d.Vec3, bool)
}

// BasicShader is the textured/lit/normal-mapped shader driven by
// Rasterizer.RasterizeMesh. One BasicShader renders one mesh; Fragment
// writes directly into Framebuffer and DepthBuffer, and into LightTex (a
// grayscale record of the diffuse+specular term at each pixel) that
// LightShader reads back for its ambient-occlusion pass.
type BasicShader struct {
	Mesh     ShadedMesh
	Viewport math3d.Mat4
	Proj     math3d.Mat4
	View     math3d.Mat4
	Light    math3d.Vec3 // unit direction toward the light
	Config   ShaderConfig

	Framebuffer *Framebuffer
	Depth       *DepthBuffer
	LightTex    *Framebuffer

	varPos     [3]math3d.Vec3
	varUV      [3]math3d.Vec2
	faceNormal math3d.Vec3
}

// Vertex transforms vertex v of face into screen space via
// viewport*proj*view and records its screen position and UV; on the third
// vertex of a triangle it also computes the flat face normal used as a
// fallback when normal mapping is disabled or the mesh carries no map.
func (s *BasicShader) Vertex(face, v int) math3d.Vec3 {
	world := s.Mesh.Vertex(face, v)
	vp := s.Viewport.Mul(s.Proj).Mul(s.View)
	screen := vp.MulVec3(world)

	s.varPos[v] = screen
	s.varUV[v] = s.Mesh.TexCoords(face, v)

	if v == 2 {
		p0 := s.Mesh.Vertex(face, 0)
		p1 := s.Mesh.Vertex(face, 1)
		p2 := s.Mesh.Vertex(face, 2)
		s.faceNormal = p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	}

	return screen
}

// Fragment interpolates screen position and UV from bary, depth-tests and
// writes to the framebuffer/depth buffer, and records the diffuse+specular
// light term into LightTex for the SSAO pass to consume.
func (s *BasicShader) Fragment(bary math3d.Vec3) {
	if bary.X < 0 || bary.Y < 0 || bary.Z < 0 {
		return
	}

	pos := s.varPos[0].Scale(bary.X).Add(s.varPos[1].Scale(bary.Y)).Add(s.varPos[2].Scale(bary.Z))
	x := int(math.Round(pos.X))
	y := int(math.Round(pos.Y))
	z := pos.Z

	if x < 0 || x >= s.Framebuffer.Width || y < 0 || y >= s.Framebuffer.Height || z < 0 {
		return
	}
	if z >= s.Depth.At(x, y) {
		return
	}

	uv := s.varUV[0].Scale(bary.X).Add(s.varUV[1].Scale(bary.Y)).Add(s.varUV[2].Scale(bary.Z))

	texColor := Color{R: 255, G: 255, B: 255, A: 255}
	if s.Config.Texture {
		texColor = s.Mesh.Texture(uv.X, uv.Y)
	}

	n := s.faceNormal
	if s.Config.Normals {
		if sampled, ok := s.Mesh.Normal(uv.X, uv.Y); ok {
			invT := s.View.Inverse().Transpose()
			n = invT.MulVec3Dir(sampled).Normalize()
		}
	}

	var lightTerm float64
	if s.Config.DiffuseLight {
		lightTerm += n.Dot(s.Light)
	}
	if s.Config.SpecularLight {
		reflected := n.Scale(2 * n.Dot(s.Light)).Sub(s.Light)
		lightTerm += math.Pow(math.Max(reflected.Z, 0), specularExponent) * 0.9
	}

	s.LightTex.SetPixel(x, y, grayscale(lightTerm))

	var out Color
	if s.Config.Occlusion {
		out = texColor
	} else {
		out = highlight(texColor, lightTerm)
	}

	s.Framebuffer.SetPixel(x, y, out)
	s.Depth.Set(x, y, z)
}

// grayscale encodes a light term in [-1,1]-ish range into an r=g=b byte
// triple, clamped to [0,255].
func grayscale(h float64) Color {
	v := clamp01((h+1)/2) * 255
	b := uint8(math.Round(v))
	return Color{R: b, G: b, B: b, A: 255}
}

// highlight brightens or darkens c by light factor h: each channel is
// scaled by clamp(1+h, 0, 1).
func highlight(c Color, h float64) Color {
	factor := clampF(1+h, 0, 1)
	return Color{
		R: uint8(math.Min(255, float64(c.R)*factor)),
		G: uint8(math.Min(255, float64(c.G)*factor)),
		B: uint8(math.Min(255, float64(c.B)*factor)),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return clampF(v, 0, 1)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
