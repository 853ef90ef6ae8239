package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/raytracer"
	"github.com/taigrr/trophy/pkg/render"
)

func raytraceCmd() *cobra.Command {
	defaults := raytracer.DefaultConfig()
	var (
		width, height int
		samples       int
		maxDepth      int
		seed          int64
		aperture      float64
		fovDeg        float64
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "raytrace",
		Short: "Render the classic random-spheres scene with the path tracer and write a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := raytracer.Config{
				Width:           width,
				Height:          height,
				SamplesPerPixel: samples,
				MaxDepth:        maxDepth,
				Seed:            seed,
			}
			return runRaytrace(cfg, aperture, fovDeg, outPath)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaults.Width, "Output image width")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "Output image height")
	cmd.Flags().IntVar(&samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	cmd.Flags().IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "Maximum bounce depth")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "PRNG seed")
	cmd.Flags().Float64Var(&aperture, "aperture", 0.1, "Lens aperture (0 for a pinhole camera)")
	cmd.Flags().Float64Var(&fovDeg, "fov", 20, "Vertical field of view in degrees")
	cmd.Flags().StringVarP(&outPath, "output", "o", "image.png", "Output PNG path")

	return cmd
}

func runRaytrace(cfg raytracer.Config, aperture, fovDeg float64, outPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	rng := rand.New(rand.NewSource(cfg.Seed))
	scene := raytracer.RandomScene(rng)

	lookFrom := math3d.V3(13, 2, 3)
	lookAt := math3d.V3(0, 0, 0)
	camera := render.NewExposureCamera(lookFrom, lookAt, math3d.V3(0, 1, 0), fovDeg, float64(cfg.Width)/float64(cfg.Height), aperture)

	rc := raytracer.RenderConfig{Type: raytracer.RayTracing, Camera: camera, Scene: scene}
	if err := rc.Validate(); err != nil {
		return err
	}

	start := time.Now()
	fb, err := raytracer.Render(ctx, camera, scene, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("Rendered %dx%d, %d spp in %s\n", cfg.Width, cfg.Height, cfg.SamplesPerPixel, time.Since(start).Round(time.Millisecond))

	if err := fb.SavePNG(outPath); err != nil {
		return fmt.Errorf("save PNG: %w", err)
	}
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
