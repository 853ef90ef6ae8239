package raytracer

// Scene is an ordered list of owned hittable primitives; it implements
// Hittable itself by delegating to its members and keeping the closest
// accepted hit, so scenes compose like any other Hittable.
type Scene struct {
	Objects []Hittable
}

// NewScene wraps a slice of hittables.
func NewScene(objects ...Hittable) *Scene {
	return &Scene{Objects: objects}
}

// Add appends a hittable to the scene.
func (s *Scene) Add(h Hittable) {
	s.Objects = append(s.Objects, h)
}

// Hit returns the closest hit among all objects within (tMin, tMax).
func (s *Scene) Hit(r Ray, tMin, tMax float64) (Hit, bool) {
	var closest Hit
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range s.Objects {
		if h, ok := obj.Hit(r, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = h.T
			closest = h
		}
	}
	return closest, hitAnything
}
