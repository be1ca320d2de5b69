package renderer

import (
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
)

// InShadow reports whether a ray from point toward the light (along toLight)
// hits any sphere other than owner, the sphere the point lies on
func InShadow(point core.Point3, toLight core.Vec3, owner int, spheres []*geometry.Sphere) bool {
	shadowRay := core.NewRay(point, toLight)
	for i, sphere := range spheres {
		if i == owner {
			continue
		}
		if _, isHit := sphere.Hit(shadowRay); isHit {
			return true
		}
	}
	return false
}
