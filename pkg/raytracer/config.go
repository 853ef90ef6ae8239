package raytracer

import (
	"errors"

	"github.com/taigrr/trophy/pkg/render"
)

// RenderType names which of the two render pipelines a RenderConfig targets.
type RenderType int

const (
	Rasterization RenderType = iota
	RayTracing
)

// Fixed configuration-mismatch errors. Apart from a canceled context in
// Render, the render API fails explicitly only for this one reason: a caller
// paired the wrong camera or scene kind with a RenderType.
var (
	ErrWrongConfigType = errors.New("raytracer: render type does not match requested pipeline")
	ErrWrongCamera     = errors.New("raytracer: camera type does not match render type")
	ErrWrongScene      = errors.New("raytracer: scene type does not match render type")
)

// RenderConfig pairs a RenderType with the camera and scene a caller intends
// to render, so the mismatch between (for example) a ray-tracing config and
// a rasterization scene surfaces as one of the errors above instead of a
// panic or a silently wrong image.
type RenderConfig struct {
	Type   RenderType
	Camera any
	Scene  any
}

// Validate checks Camera and Scene against Type.
func (c RenderConfig) Validate() error {
	switch c.Type {
	case RayTracing:
		if _, ok := c.Camera.(*render.ExposureCamera); !ok {
			return ErrWrongCamera
		}
		if _, ok := c.Scene.(Hittable); !ok {
			return ErrWrongScene
		}
	case Rasterization:
		if _, ok := c.Camera.(*render.Projectable); !ok {
			return ErrWrongCamera
		}
		if _, ok := c.Scene.(*render.RasterizableScene); !ok {
			return ErrWrongScene
		}
	default:
		return ErrWrongConfigType
	}
	return nil
}
