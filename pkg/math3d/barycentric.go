package math3d

import "math"

// degenerateTriangleEpsilon bounds how close to zero the cross product's z
// component can be before a 2-D triangle is considered degenerate.
const degenerateTriangleEpsilon = 1e-10

// Barycentric returns the barycentric coordinates (alpha, beta, gamma) of
// point p with respect to triangle (a, b, c), using only the x/y components
// of each input (z, if present, is the caller's own varying — typically
// screen-space depth — and is ignored here).
//
// It uses the cross-product formulation: form two vectors carrying
// (c-a, b-a, a-p) in x and y respectively, take their cross product, and
// divide its x/y components by its z to recover beta/gamma. If the
// resulting z is near zero the triangle is degenerate in screen space; the
// second return value reports that so callers can skip the fragment
// (which in turn makes any barycentric component negative, so the normal
// "outside triangle" rejection already drops degenerate triangles too).
func Barycentric(a, b, c, p Vec2) (bary Vec3, degenerate bool) {
	u := Vec3{c.X - a.X, b.X - a.X, a.X - p.X}
	v := Vec3{c.Y - a.Y, b.Y - a.Y, a.Y - p.Y}
	cr := u.Cross(v)

	if math.Abs(cr.Z) < degenerateTriangleEpsilon {
		return Vec3{-1, 1, 1}, true
	}

	beta := cr.Y / cr.Z
	gamma := cr.X / cr.Z
	alpha := 1 - beta - gamma
	return Vec3{alpha, beta, gamma}, false
}
