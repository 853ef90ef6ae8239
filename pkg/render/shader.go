package render

import "github.com/taigrr/trophy/pkg/math3d"

// Shader is a stateful vertex+fragment pair driven by Rasterizer. Vertex is
// called exactly three times per triangle, in order v=0,1,2, before any
// Fragment call for that triangle; it must record whatever per-vertex
// varyings (uv, screen xyz, ...) Fragment will need, since Fragment only
// receives barycentric coordinates. Fragment is called once per pixel in
// the triangle's screen-space bounding box and is responsible for its own
// coverage test (reject negative barycentric components) and its own
// depth test, since only the shader knows which of its varyings is depth.
type Shader interface {
	Vertex(face, v int) math3d.Vec3
	Fragment(bary math3d.Vec3)
}

// ShaderConfig holds the runtime toggles BasicShader consults; it has no
// effect on LightShader, which always runs its full SSAO pass.
type ShaderConfig struct {
	DiffuseLight  bool
	SpecularLight bool
	Texture       bool
	Normals       bool
	Occlusion     bool
}

// DefaultShaderConfig enables lighting and texturing but not normal mapping
// or ambient occlusion, matching a mesh that may not ship a normal map.
func DefaultShaderConfig() ShaderConfig {
	return ShaderConfig{
		DiffuseLight:  true,
		SpecularLight: true,
		Texture:       true,
		Normals:       false,
		Occlusion:     false,
	}
}
