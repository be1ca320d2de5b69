package scene

import (
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/lights"
)

// NewDefaultScene creates the procedurally generated scene: a static anchor
// sphere with satellites, lit by the three default lights
func NewDefaultScene(config GeneratorConfig) *Scene {
	return NewRandomGenerator(config).Generate()
}

// NewSingleSphereScene creates one sphere of radius 2 at the origin lit by a
// single light from (-1,-1,-1)
func NewSingleSphereScene() *Scene {
	s := NewScene()
	s.Lights = []lights.Directional{lights.DefaultLights()[0]}
	s.AddSphere(geometry.NewSphere(core.NewPoint3(0, 0, 0), core.Vec3{}, 2), core.NewColorInt(200, 80, 40))
	return s
}

// NewShadowScene creates a large sphere partly shadowed by a small one that
// sits between it and the (1,1,1) light
func NewShadowScene() *Scene {
	s := NewScene()
	s.AddSphere(geometry.NewSphere(core.NewPoint3(0, 0, 1), core.Vec3{}, 0.6), core.NewColorInt(40, 120, 220))
	s.AddSphere(geometry.NewSphere(core.NewPoint3(0.5, 0.5, -0.2), core.NewVec3(0.002, -0.001, 0), 0.15), core.NewColorInt(230, 200, 30))
	return s
}
