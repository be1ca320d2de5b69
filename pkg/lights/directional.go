package lights

import (
	"fmt"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
)

// Directional is a light infinitely far away. Direction is the unit vector
// from a shaded point toward the light; it is used both for shadow rays and
// as the light vector in the Phong model.
type Directional struct {
	Direction core.Vec3
	Color     core.Color
}

// NewDirectional creates a directional light, normalizing its direction
func NewDirectional(direction core.Vec3, color core.Color) (Directional, error) {
	unit, err := direction.NormalizeChecked()
	if err != nil {
		return Directional{}, fmt.Errorf("light direction: %w", err)
	}
	return Directional{Direction: unit, Color: color}, nil
}

// DefaultLights returns the three white lights of the standard scene
func DefaultLights() []Directional {
	white := core.NewColorInt(250, 250, 250)
	directions := []core.Vec3{
		core.NewVec3(-1, -1, -1),
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
	}

	lights := make([]Directional, 0, len(directions))
	for _, d := range directions {
		lights = append(lights, Directional{Direction: d.Normalize(), Color: white})
	}
	return lights
}
