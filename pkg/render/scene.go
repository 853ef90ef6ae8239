package render

import "github.com/taigrr/trophy/pkg/math3d"

// RasterizableScene is an ordered list of meshes the rasterizer draws in
// order; each owns its own textures.
type RasterizableScene struct {
	Meshes []ShadedMesh
}

// NewRasterizableScene wraps a slice of meshes for rasterization.
func NewRasterizableScene(meshes ...ShadedMesh) *RasterizableScene {
	return &RasterizableScene{Meshes: meshes}
}

// Render draws every mesh in the scene with a fresh BasicShader per mesh
// (each mesh keeps its own diffuse/normal textures), sharing one
// framebuffer, depth buffer, and light texture across the whole scene so
// depth testing is consistent scene-wide. If cfg.Occlusion is set, a
// LightShader SSAO pass runs once at the end over the accumulated depth
// and light buffers.
func Render(scene *RasterizableScene, view, proj, viewport math3d.Mat4, light math3d.Vec3, cfg ShaderConfig, fb *Framebuffer, depth *DepthBuffer) {
	lightTex := NewFramebuffer(fb.Width, fb.Height)
	r := NewRasterizer()

	for _, mesh := range scene.Meshes {
		shader := &BasicShader{
			Mesh:        mesh,
			Viewport:    viewport,
			Proj:        proj,
			View:        view,
			Light:       light,
			Config:      cfg,
			Framebuffer: fb,
			Depth:       depth,
			LightTex:    lightTex,
		}
		r.RasterizeMesh(mesh, shader)
	}

	if cfg.Occlusion {
		ao := NewLightShader(fb, depth, lightTex, viewport)
		ao.Apply(r)
	}
}
