package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// aoNeighborhood is the half-width of the SSAO sampling neighborhood: 11x11
// pixels total.
const aoNeighborhood = 5

// aoContributionCap bounds how much a single neighbor can contribute to the
// occlusion total, and aoThreshold is the minimum depth delta before a
// neighbor counts as occluding at all.
const (
	aoContributionCap = 0.05
	aoThreshold        = 0.01
)

// fullScreenQuad is the two-triangle NDC quad LightShader rasterizes over.
var fullScreenQuad = [2][3]math3d.Vec3{
	{{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 1, Z: 0}},
	{{X: -1, Y: -1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}},
}

// LightShader is the screen-space ambient occlusion post-process: it reads
// the depth buffer BasicShader produced, accumulates an occlusion estimate
// from each pixel's 11x11 neighborhood, and darkens Framebuffer in place.
// The occlusion texture caches the per-pixel total so a pixel visited by
// both quad triangles (the shared diagonal) is only computed once.
type LightShader struct {
	Viewport math3d.Mat4
	Depth    *DepthBuffer
	LightTex *Framebuffer

	Framebuffer *Framebuffer
	Occlusion   *Framebuffer

	varPos [3]math3d.Vec3
}

// NewLightShader allocates the occlusion cache texture alongside the given
// color/light/depth targets.
func NewLightShader(fb *Framebuffer, depth *DepthBuffer, lightTex *Framebuffer, viewport math3d.Mat4) *LightShader {
	return &LightShader{
		Viewport:    viewport,
		Depth:       depth,
		LightTex:    lightTex,
		Framebuffer: fb,
		Occlusion:   NewFramebuffer(fb.Width, fb.Height),
	}
}

// Vertex transforms the v-th corner of the face-th full-screen-quad
// triangle through the viewport matrix only; the quad is already in NDC.
func (s *LightShader) Vertex(face, v int) math3d.Vec3 {
	screen := s.Viewport.MulVec3(fullScreenQuad[face][v])
	s.varPos[v] = screen
	return screen
}

// Fragment accumulates the SSAO total for the interpolated pixel and
// darkens the framebuffer color there.
func (s *LightShader) Fragment(bary math3d.Vec3) {
	if bary.X < 0 || bary.Y < 0 || bary.Z < 0 {
		return
	}

	pos := s.varPos[0].Scale(bary.X).Add(s.varPos[1].Scale(bary.Y)).Add(s.varPos[2].Scale(bary.Z))
	x := int(math.Round(pos.X))
	y := int(math.Round(pos.Y))
	if x < 0 || x >= s.Framebuffer.Width || y < 0 || y >= s.Framebuffer.Height {
		return
	}

	occlusionPixel := s.Occlusion.GetPixel(x, y)
	var total float64
	if occlusionPixel.R == 0 && occlusionPixel.G == 0 && occlusionPixel.B == 0 {
		pixelZ := s.Depth.At(x, y)
		if pixelZ > aoThreshold {
			for dy := -aoNeighborhood; dy <= aoNeighborhood; dy++ {
				for dx := -aoNeighborhood; dx <= aoNeighborhood; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= s.Depth.Width || ny < 0 || ny >= s.Depth.Height {
						continue
					}
					diff := s.Depth.At(nx, ny) - pixelZ
					if diff > aoThreshold {
						total += math.Min(diff, aoContributionCap)
					}
				}
			}
			total /= 2
		}
		s.Occlusion.SetPixel(x, y, grayscale(total))
	} else {
		total = float64(occlusionPixel.R)/255*2 - 1
	}

	lightR := float64(s.LightTex.GetPixel(x, y).R)
	// Faithful to the source's darkening formula, which is unusually
	// shaped (the light term is folded in twice): light = 4*(r/255) - 2 - total,
	// then the framebuffer color is scaled by highlight(light), not by light
	// directly.
	light := 4*(lightR/255) - 2 - total

	c := s.Framebuffer.GetPixel(x, y)
	s.Framebuffer.SetPixel(x, y, highlight(c, light))
}

// Apply drives the full-screen quad through Rasterizer to run the SSAO
// pass over the entire framebuffer.
func (s *LightShader) Apply(r *Rasterizer) {
	for face := range 2 {
		v1 := s.Vertex(face, 0)
		v2 := s.Vertex(face, 1)
		v3 := s.Vertex(face, 2)
		r.Triangle(v1, v2, v3, s)
	}
}
