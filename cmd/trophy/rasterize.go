package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/models"
	"github.com/taigrr/trophy/pkg/raytracer"
	"github.com/taigrr/trophy/pkg/render"
)

func rasterizeCmd() *cobra.Command {
	var (
		width, height int
		outPath       string
		texturePath   string
		normalPath    string
		lightDir      string
		fovDeg        float64
		diffuse       bool
		specular      bool
		texture       bool
		normals       bool
		occlusion     bool
		gamma         float64
	)

	cmd := &cobra.Command{
		Use:   "rasterize <model.obj|model.glb>",
		Short: "Render a mesh offline with the triangle rasterizer and write a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rasterizeConfig{
				modelPath:   args[0],
				width:       width,
				height:      height,
				outPath:     outPath,
				texturePath: texturePath,
				normalPath:  normalPath,
				lightDir:    lightDir,
				fovDeg:      fovDeg,
				gamma:       gamma,
				shader: render.ShaderConfig{
					DiffuseLight:  diffuse,
					SpecularLight: specular,
					Texture:       texture,
					Normals:       normals,
					Occlusion:     occlusion,
				},
			}
			return runRasterize(cfg)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1200, "Output image width")
	cmd.Flags().IntVar(&height, "height", 800, "Output image height")
	cmd.Flags().StringVarP(&outPath, "output", "o", "image.png", "Output PNG path")
	cmd.Flags().StringVar(&texturePath, "texture", "", "Diffuse texture (TGA/PNG), overrides embedded/material texture")
	cmd.Flags().StringVar(&normalPath, "normal-map", "", "Tangent-space normal map (TGA/PNG)")
	cmd.Flags().StringVar(&lightDir, "light", "1,1,1", "Directional light vector (X,Y,Z)")
	cmd.Flags().Float64Var(&fovDeg, "fov", 60, "Vertical field of view in degrees")
	cmd.Flags().BoolVar(&diffuse, "diffuse", true, "Enable diffuse lighting term")
	cmd.Flags().BoolVar(&specular, "specular", true, "Enable specular highlight term")
	cmd.Flags().BoolVar(&texture, "enable-texture", true, "Sample the diffuse texture")
	cmd.Flags().BoolVar(&normals, "enable-normal-map", false, "Perturb shading normals from a normal map")
	cmd.Flags().BoolVar(&occlusion, "ssao", false, "Apply the screen-space ambient occlusion pass")
	cmd.Flags().Float64Var(&gamma, "gamma", 1.5, "Output gamma correction")

	return cmd
}

type rasterizeConfig struct {
	modelPath   string
	width       int
	height      int
	outPath     string
	texturePath string
	normalPath  string
	lightDir    string
	fovDeg      float64
	gamma       float64
	shader      render.ShaderConfig
}

func runRasterize(cfg rasterizeConfig) error {
	mesh, err := loadMesh(cfg.modelPath)
	if err != nil {
		return err
	}

	if cfg.texturePath != "" {
		tex, err := loadTexture(cfg.texturePath)
		if err != nil {
			return fmt.Errorf("load texture: %w", err)
		}
		mesh.Diffuse = tex
	}
	if cfg.normalPath != "" {
		tex, err := loadTexture(cfg.normalPath)
		if err != nil {
			return fmt.Errorf("load normal map: %w", err)
		}
		mesh.NormalMap = tex
	}

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		transform := math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Scale(-1)))
		mesh.Transform(transform)
	}

	var lx, ly, lz float64
	fmt.Sscanf(cfg.lightDir, "%g,%g,%g", &lx, &ly, &lz)
	light := math3d.V3(lx, ly, lz).Normalize()

	camera := render.NewProjectable(
		math3d.V3(0, 0, 3), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0),
		cfg.fovDeg, float64(cfg.width)/float64(cfg.height), 0.1, 100,
	)

	fb := render.NewFramebuffer(cfg.width, cfg.height)
	depth := render.NewDepthBuffer(cfg.width, cfg.height)
	viewport := render.ViewportMatrix(cfg.width, cfg.height)

	scene := render.NewRasterizableScene(mesh)
	rc := raytracer.RenderConfig{Type: raytracer.Rasterization, Camera: camera, Scene: scene}
	if err := rc.Validate(); err != nil {
		return err
	}
	render.Render(scene, camera.ViewMatrix(), camera.ProjectionMatrix(), viewport, light, cfg.shader, fb, depth)

	fb.ApplyGamma(cfg.gamma)
	if err := fb.SavePNG(cfg.outPath); err != nil {
		return fmt.Errorf("save PNG: %w", err)
	}

	fmt.Printf("Rendered %s -> %s (%dx%d, %d triangles)\n", filepath.Base(cfg.modelPath), cfg.outPath, cfg.width, cfg.height, mesh.TriangleCount())
	return nil
}

func loadMesh(path string) (*models.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	case ".obj":
		return models.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported model format: %s (use .obj or .glb)", ext)
	}
}

func loadTexture(path string) (*render.Texture, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tga" {
		return render.LoadTGA(path)
	}
	return render.LoadTexture(path)
}
