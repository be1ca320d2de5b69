package scene

import (
	"fmt"
	"math"
)

// OrbitAngleStep is the angle in radians a satellite advances per tick
const OrbitAngleStep = 0.1

// Animator mutates a scene by one tick. It must not run while a frame is
// being rendered from the same scene.
type Animator interface {
	Step(s *Scene)
}

// Orbit moves a satellite sphere on a circle around an anchor sphere.
// The circle lies in the plane parallel to xy through the satellite's
// starting z, and its radius is the initial distance between the centers.
type Orbit struct {
	Anchor    int
	Satellite int
	Radius    float64
	Angle     float64
	AngleStep float64
}

// NewOrbit creates an orbit for the given sphere indices of s
func NewOrbit(s *Scene, anchor, satellite int) (*Orbit, error) {
	n := len(s.Spheres)
	if anchor < 0 || anchor >= n || satellite < 0 || satellite >= n {
		return nil, fmt.Errorf("orbit indices (%d, %d) out of range for %d spheres", anchor, satellite, n)
	}
	if anchor == satellite {
		return nil, fmt.Errorf("sphere %d cannot orbit itself", anchor)
	}

	return &Orbit{
		Anchor:    anchor,
		Satellite: satellite,
		Radius:    s.Spheres[anchor].Center.DistanceTo(s.Spheres[satellite].Center),
		AngleStep: OrbitAngleStep,
	}, nil
}

// Step implements Animator
func (o *Orbit) Step(s *Scene) {
	o.Angle += o.AngleStep

	anchor := s.Spheres[o.Anchor].Center
	satellite := s.Spheres[o.Satellite]
	satellite.Center.X = anchor.X + o.Radius*math.Cos(o.Angle)
	satellite.Center.Y = anchor.Y + o.Radius*math.Sin(o.Angle)
}

// Drift moves every sphere along its own motion vector
type Drift struct{}

// Step implements Animator
func (Drift) Step(s *Scene) {
	for _, sphere := range s.Spheres {
		sphere.Advance()
	}
}

// NewAnimator returns the named animation for s: "orbit", "drift" or "none".
// An orbit needs at least two spheres; with fewer it falls back to none.
func NewAnimator(name string, s *Scene) (Animator, error) {
	switch name {
	case "orbit":
		if len(s.Spheres) < 2 {
			return nil, nil
		}
		orbit, err := NewOrbit(s, 0, 1)
		if err != nil {
			return nil, err
		}
		return orbit, nil
	case "drift":
		return Drift{}, nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown animation: %s", name)
	}
}
