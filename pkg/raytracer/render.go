package raytracer

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/render"
)

// Config bundles the offline ray tracer's per-run parameters. The spec's
// baked-in CLI constants (1200x800, 50 samples, depth 200) live in
// DefaultConfig; cmd/trophy exposes them as flags.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

// DefaultConfig matches the spec's baked-in offline-renderer constants.
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          800,
		SamplesPerPixel: 50,
		MaxDepth:        200,
		Seed:            1,
	}
}

// Render partitions the output image into horizontal bands and renders
// them concurrently with errgroup.Group, one goroutine per band. Each
// band owns its own PRNG, seeded deterministically from cfg.Seed and the
// band's starting row, and writes only its own slice of rows, so there is
// no shared mutable state between goroutines. The scene and camera are
// read-only for the whole render and must not be mutated by any other
// goroutine concurrently with this call.
func Render(ctx context.Context, cam *render.ExposureCamera, scene Hittable, cfg Config) (*render.Framebuffer, error) {
	fb := render.NewFramebuffer(cfg.Width, cfg.Height)

	bandSize := bandHeight(cfg.Height)
	g, gctx := errgroup.WithContext(ctx)

	for bandStart := 0; bandStart < cfg.Height; bandStart += bandSize {
		bandStart := bandStart
		bandEnd := min(bandStart+bandSize, cfg.Height)

		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(bandStart)))
			for y := bandStart; y < bandEnd; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				renderRow(fb, cam, scene, cfg, y, rng)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fb, nil
}

// renderRow fills one row left-to-right, matching the spec's ordering
// guarantee within a band.
func renderRow(fb *render.Framebuffer, cam *render.ExposureCamera, scene Hittable, cfg Config, y int, rng *rand.Rand) {
	for x := range cfg.Width {
		var accum math3d.Vec3
		for range cfg.SamplesPerPixel {
			s := (float64(x) + rng.Float64()) / float64(cfg.Width)
			t := (float64(y) + rng.Float64()) / float64(cfg.Height)
			origin, dir := cam.ExposureRay(s, t, rng)
			accum = accum.Add(RayColor(Ray{Origin: origin, Direction: dir}, scene, cfg.MaxDepth, rng))
		}
		accum = accum.Scale(1 / float64(cfg.SamplesPerPixel))
		fb.SetPixel(x, y, toneMap(accum))
	}
}

// toneMap applies gamma-2.0 tone mapping (a per-channel square root),
// clamps to [0, 0.999) to avoid rounding up to 256, and scales to a byte.
func toneMap(c math3d.Vec3) render.Color {
	channel := func(v float64) uint8 {
		v = math.Sqrt(math.Max(v, 0))
		if v > 0.999 {
			v = 0.999
		}
		return uint8(v * 256)
	}
	return render.RGB(channel(c.X), channel(c.Y), channel(c.Z))
}

// bandHeight picks the band size: about 32 rows per band for images taller
// than 64 rows, and one band covering the whole image otherwise. The CPU
// count is not consulted.
func bandHeight(height int) int {
	const minBands = 1
	bands := minBands
	if height > 64 {
		bands = height / 32
	}
	if bands < 1 {
		bands = 1
	}
	size := height / bands
	if size < 1 {
		size = 1
	}
	return size
}
