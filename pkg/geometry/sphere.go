package geometry

import (
	"math"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
)

// Sphere represents a sphere that may move between frames
type Sphere struct {
	Center core.Point3
	Motion core.Vec3 // Per-tick velocity, applied by animation only
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, motion core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Motion: motion,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere.
// The nearest root beyond HitEpsilon is used; when the ray starts inside the
// sphere this is the far root, and the normal still faces outward.
func (s *Sphere) Hit(ray core.Ray) (HitRecord, bool) {
	if ray.IsDegenerate() {
		return HitRecord{}, false
	}

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Direction is unit length, so t² + 2·halfB·t + c = 0
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := -halfB - sqrtD
	if root <= HitEpsilon {
		root = -halfB + sqrtD
		if root <= HitEpsilon {
			// Sphere is entirely behind the ray origin
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	return HitRecord{
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
		T:      root,
	}, true
}

// Advance moves the sphere one tick along its motion vector
func (s *Sphere) Advance() {
	s.Center = s.Center.Add(s.Motion)
}
