package core

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a ray from an origin and a direction, normalizing the direction.
// A zero direction produces a degenerate ray that intersects nothing.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewRayThrough creates a ray from origin through target
func NewRayThrough(origin, target Point3) Ray {
	return NewRay(origin, target.Subtract(origin))
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsDegenerate reports whether the ray has no direction
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}
