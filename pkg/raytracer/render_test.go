package raytracer

import (
	"context"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/render"
)

func smallTestScene() *Scene {
	return NewScene(
		Sphere{Center: math3d.V3(0, -100.5, -1), Radius: 100, Material: Lambertian(math3d.V3(0.8, 0.8, 0))},
		Sphere{Center: math3d.V3(0, 0, -1), Radius: 0.5, Material: Lambertian(math3d.V3(0.1, 0.2, 0.5))},
	)
}

func TestRenderIsDeterministicForAFixedSeed(t *testing.T) {
	cfg := Config{Width: 16, Height: 12, SamplesPerPixel: 4, MaxDepth: 5, Seed: 42}
	cam := render.NewExposureCamera(math3d.V3(0, 0, 1), math3d.V3(0, 0, -1), math3d.V3(0, 1, 0), 60, float64(cfg.Width)/float64(cfg.Height), 0)

	fb1, err := Render(context.Background(), cam, smallTestScene(), cfg)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	fb2, err := Render(context.Background(), cam, smallTestScene(), cfg)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	for y := range cfg.Height {
		for x := range cfg.Width {
			if fb1.GetPixel(x, y) != fb2.GetPixel(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identically-seeded renders: %v vs %v", x, y, fb1.GetPixel(x, y), fb2.GetPixel(x, y))
			}
		}
	}
}

func TestRenderRespectsCancellation(t *testing.T) {
	cfg := Config{Width: 64, Height: 64, SamplesPerPixel: 50, MaxDepth: 50, Seed: 1}
	cam := render.NewExposureCamera(math3d.V3(0, 0, 1), math3d.V3(0, 0, -1), math3d.V3(0, 1, 0), 60, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Render(ctx, cam, smallTestScene(), cfg); err == nil {
		t.Fatal("expected Render to return an error for an already-canceled context")
	}
}
