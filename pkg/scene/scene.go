package scene

import (
	"errors"
	"fmt"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/lights"
)

var (
	// ErrMismatchedColors is returned when spheres and colors are not index-aligned
	ErrMismatchedColors = errors.New("sphere and color lists differ in length")
	// ErrInvalidRadius is returned for a sphere with a non-positive radius
	ErrInvalidRadius = errors.New("sphere radius must be positive")
)

// DefaultCameraZ is the starting camera position on the z axis
const DefaultCameraZ = -5.0

// Scene contains all the elements needed for rendering.
// Spheres and Colors share indices: Colors[i] is the base color of Spheres[i].
type Scene struct {
	Camera  core.Point3
	Spheres []*geometry.Sphere
	Colors  []core.Color
	Lights  []lights.Directional
}

// NewScene creates an empty scene with the camera at the default position and the default lights
func NewScene() *Scene {
	return &Scene{
		Camera: core.NewPoint3(0, 0, DefaultCameraZ),
		Lights: lights.DefaultLights(),
	}
}

// AddSphere appends a sphere with its base color and returns its index
func (s *Scene) AddSphere(sphere *geometry.Sphere, color core.Color) int {
	s.Spheres = append(s.Spheres, sphere)
	s.Colors = append(s.Colors, color)
	return len(s.Spheres) - 1
}

// Validate checks the scene invariants
func (s *Scene) Validate() error {
	if len(s.Spheres) != len(s.Colors) {
		return fmt.Errorf("%w: %d spheres, %d colors", ErrMismatchedColors, len(s.Spheres), len(s.Colors))
	}
	for i, sphere := range s.Spheres {
		if sphere == nil || !(sphere.Radius > 0) {
			return fmt.Errorf("sphere %d: %w", i, ErrInvalidRadius)
		}
	}
	for i, light := range s.Lights {
		if _, err := light.Direction.NormalizeChecked(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of the scene so it can be animated independently
func (s *Scene) Clone() *Scene {
	clone := &Scene{
		Camera: s.Camera,
		Colors: append([]core.Color(nil), s.Colors...),
		Lights: append([]lights.Directional(nil), s.Lights...),
	}
	clone.Spheres = make([]*geometry.Sphere, len(s.Spheres))
	for i, sphere := range s.Spheres {
		copied := *sphere
		clone.Spheres[i] = &copied
	}
	return clone
}

// SetCameraZ moves the camera along the z axis
func (s *Scene) SetCameraZ(z float64) {
	s.Camera = core.NewPoint3(0, 0, z)
}
