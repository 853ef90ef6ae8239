package render

import (
	"math"
	"math/rand"

	"github.com/taigrr/trophy/pkg/math3d"
)

// ZDepth is the viewport transform's depth range, matching the spec's
// Z_DEPTH=255 convention: NDC z in [-1,1] maps to [0, ZDepth].
const ZDepth = 255.0

// Camera is the lookAt/focus camera used by the offline rasterizer and ray
// tracer (as opposed to FreeCamera, the Euler-angle camera the interactive
// terminal viewer drives). It bundles position/focus/up state and a lazily
// recomputed lookAt matrix; Projectable and ExposureCamera extend it by
// embedding rather than forming a deep hierarchy, per the capability-bundle
// design in the spec.
type Camera struct {
	Position math3d.Vec3
	Focus    math3d.Vec3
	Up       math3d.Vec3
	Speed    float64

	view      math3d.Mat4
	viewDirty bool
}

// Direction names a navigation shift relative to the camera's current
// orientation.
type Direction int

const (
	Front Direction = iota
	Back
	Left
	Right
)

// NewCamera creates a camera looking from position toward focus.
func NewCamera(position, focus, up math3d.Vec3) *Camera {
	return &Camera{
		Position:  position,
		Focus:     focus,
		Up:        up,
		Speed:     1,
		viewDirty: true,
	}
}

// SetPosition updates the eye position and invalidates the lookAt cache.
func (c *Camera) SetPosition(p math3d.Vec3) {
	c.Position = p
	c.viewDirty = true
}

// SetFocus updates the look-at target and invalidates the lookAt cache.
func (c *Camera) SetFocus(f math3d.Vec3) {
	c.Focus = f
	c.viewDirty = true
}

// SetUp updates the up vector and invalidates the lookAt cache.
func (c *Camera) SetUp(u math3d.Vec3) {
	c.Up = u
	c.viewDirty = true
}

// basis returns the camera's orthonormal screen-space basis
// (x=right, y=up, z=back), i.e. w in the spec's (u,v,w) naming for the
// thin-lens camera: z = normalize(position-focus); x = normalize(up x z);
// y = z x x.
func (c *Camera) basis() (x, y, z math3d.Vec3) {
	z = c.Position.Sub(c.Focus).Normalize()
	x = c.Up.Cross(z).Normalize()
	y = z.Cross(x)
	return x, y, z
}

// ViewMatrix returns the cached lookAt matrix R*T (R the orthonormal basis
// rows, T translation by -position), recomputing lazily if position, focus,
// or up changed since the last call.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		x, y, z := c.basis()
		c.view = math3d.Mat4{
			x.X, y.X, z.X, 0,
			x.Y, y.Y, z.Y, 0,
			x.Z, y.Z, z.Z, 0,
			-x.Dot(c.Position), -y.Dot(c.Position), -z.Dot(c.Position), 1,
		}
		c.viewDirty = false
	}
	return c.view
}

// MoveCamera translates position and focus together along the forward axis
// (focus - position, normalized) by distance d.
func (c *Camera) MoveCamera(d float64) {
	forward := c.Focus.Sub(c.Position).Normalize()
	delta := forward.Scale(d)
	c.Position = c.Position.Add(delta)
	c.Focus = c.Focus.Add(delta)
	c.viewDirty = true
}

// YawCamera translates position and focus together along the sideways axis
// (position - focus) x up, by distance d. That axis points to the camera's
// left, so a positive d moves the camera left.
func (c *Camera) YawCamera(d float64) {
	axis := c.Position.Sub(c.Focus).Cross(c.Up).Normalize()
	delta := axis.Scale(d)
	c.Position = c.Position.Add(delta)
	c.Focus = c.Focus.Add(delta)
	c.viewDirty = true
}

// ShiftCamera dollies/strafes the camera by +-Speed along the forward or
// sideways axis depending on dir.
func (c *Camera) ShiftCamera(dir Direction) {
	switch dir {
	case Front:
		c.MoveCamera(c.Speed)
	case Back:
		c.MoveCamera(-c.Speed)
	case Left:
		c.YawCamera(c.Speed)
	case Right:
		c.YawCamera(-c.Speed)
	}
}

// Projectable extends Camera with perspective-projection state (fov, aspect,
// near/far clip, zoom) and a lazily recomputed projection matrix.
type Projectable struct {
	*Camera

	FovYDeg     float64
	AspectRatio float64
	ZNear       float64
	ZFar        float64
	Zoom        float64

	proj      math3d.Mat4
	projDirty bool
}

// NewProjectable creates a Projectable camera with the given vertical field
// of view (degrees), aspect ratio, and near/far clip planes. Zoom defaults
// to 1.
func NewProjectable(position, focus, up math3d.Vec3, fovYDeg, aspect, znear, zfar float64) *Projectable {
	return &Projectable{
		Camera:      NewCamera(position, focus, up),
		FovYDeg:     fovYDeg,
		AspectRatio: aspect,
		ZNear:       znear,
		ZFar:        zfar,
		Zoom:        1,
		projDirty:   true,
	}
}

// SetFov updates the vertical field of view (degrees) and invalidates the
// projection cache.
func (p *Projectable) SetFov(fovYDeg float64) {
	p.FovYDeg = fovYDeg
	p.projDirty = true
}

// SetAspectRatio updates the aspect ratio and invalidates the projection
// cache.
func (p *Projectable) SetAspectRatio(aspect float64) {
	p.AspectRatio = aspect
	p.projDirty = true
}

// SetZoom updates the zoom factor and invalidates the projection cache.
func (p *Projectable) SetZoom(zoom float64) {
	p.Zoom = zoom
	p.projDirty = true
}

// SetClipPlanes updates znear/zfar and invalidates the projection cache.
func (p *Projectable) SetClipPlanes(znear, zfar float64) {
	p.ZNear = znear
	p.ZFar = zfar
	p.projDirty = true
}

// fovYRadians is the vertical field of view in radians.
func (p *Projectable) fovYRadians() float64 {
	return p.FovYDeg * math.Pi / 180
}

// ProjectionMatrix returns the cached perspective projection matrix,
// recomputing lazily if fov/aspect/zoom/znear/zfar changed since the last
// call.
func (p *Projectable) ProjectionMatrix() math3d.Mat4 {
	if p.projDirty {
		theta := p.fovYRadians()
		t := math.Tan(theta/2) / p.Zoom
		near, far := p.ZNear, p.ZFar
		p.proj = math3d.Mat4{
			1 / (p.AspectRatio * t), 0, 0, 0,
			0, 1 / t, 0, 0,
			0, 0, (far + near) / (near - far), -1,
			0, 0, 2 * far * near / (near - far), 0,
		}
		p.projDirty = false
	}
	return p.proj
}

// ViewProjectionMatrix returns ProjectionMatrix() * ViewMatrix().
func (p *Projectable) ViewProjectionMatrix() math3d.Mat4 {
	return p.ProjectionMatrix().Mul(p.ViewMatrix())
}

// ViewportMatrix returns the NDC-to-pixel viewport transform for a w x h
// target: diagonal (w/2, h/2, ZDepth/2, 1) with translation column
// ((w-1)/2, (h-1)/2, ZDepth/2, 1).
func ViewportMatrix(w, h int) math3d.Mat4 {
	fw, fh := float64(w), float64(h)
	return math3d.Mat4{
		fw / 2, 0, 0, 0,
		0, fh / 2, 0, 0,
		0, 0, ZDepth / 2, 0,
		(fw - 1) / 2, (fh - 1) / 2, ZDepth / 2, 1,
	}
}

// ExposureCamera extends Projectable with a finite-aperture thin lens, so
// it can generate depth-of-field camera rays for the path tracer.
type ExposureCamera struct {
	*Projectable

	// Aperture is the lens diameter; 0 degenerates to a pinhole camera.
	Aperture float64
}

// NewExposureCamera creates a thin-lens camera.
func NewExposureCamera(position, focus, up math3d.Vec3, fovYDeg, aspect, aperture float64) *ExposureCamera {
	return &ExposureCamera{
		Projectable: NewProjectable(position, focus, up, fovYDeg, aspect, 0.001, 1000),
		Aperture:    aperture,
	}
}

// FocusDistance returns |focus - position|.
func (e *ExposureCamera) FocusDistance() float64 {
	return e.Focus.Sub(e.Position).Len()
}

// ExposureRay generates a thin-lens camera ray for normalized screen
// coordinates (s,t) in [0,1]^2, returning (origin, direction). For
// aperture=0 and (s,t)=(0.5,0.5) the ray originates at Position and points
// toward Focus, independent of lens jitter.
func (e *ExposureCamera) ExposureRay(s, t float64, rng *rand.Rand) (origin, direction math3d.Vec3) {
	u, v, _ := e.basis()

	lensRadius := e.Aperture / 2
	disk := math3d.RandomUnitDiskVector(rng)
	offset := u.Scale(disk.X * lensRadius).Add(v.Scale(disk.Y * lensRadius))

	f := e.FocusDistance()
	k := math.Tan(e.fovYRadians()/2) * f

	origin = e.Position.Add(offset)
	direction = e.Focus.Sub(e.Position).Sub(offset).
		Add(u.Scale((2*s - 1) * e.AspectRatio * k)).
		Add(v.Scale((2*t - 1) * k))
	return origin, direction
}
