package geometry

import "github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"

// HitEpsilon is the smallest accepted ray parameter. Hits closer to the ray
// origin are rejected so shadow rays leaving a surface do not re-hit it.
const HitEpsilon = 1e-3

// HitRecord contains information about a ray-sphere intersection
type HitRecord struct {
	Point  core.Point3 // Point of intersection
	Normal core.Vec3   // Outward unit surface normal
	T      float64     // Parameter t along the ray
}
