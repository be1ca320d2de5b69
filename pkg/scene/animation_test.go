package scene

import (
	"math"
	"testing"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
)

func newPairScene() *Scene {
	s := NewScene()
	s.AddSphere(geometry.NewSphere(core.NewPoint3(0, 0, 0.5), core.Vec3{}, 0.2), core.NewColorInt(255, 0, 0))
	s.AddSphere(geometry.NewSphere(core.NewPoint3(0.6, 0.8, 0.5), core.NewVec3(0.01, 0, 0), 0.1), core.NewColorInt(0, 255, 0))
	return s
}

func TestOrbit_Step(t *testing.T) {
	s := newPairScene()
	orbit, err := NewOrbit(s, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(orbit.Radius-1.0) > 1e-12 {
		t.Fatalf("Expected orbit radius 1, got %f", orbit.Radius)
	}

	for tick := 1; tick <= 20; tick++ {
		orbit.Step(s)

		angle := float64(tick) * OrbitAngleStep
		center := s.Spheres[1].Center
		if math.Abs(center.X-math.Cos(angle)) > 1e-9 || math.Abs(center.Y-math.Sin(angle)) > 1e-9 {
			t.Fatalf("Tick %d: expected (%f, %f), got %v", tick, math.Cos(angle), math.Sin(angle), center)
		}
		if center.Z != 0.5 {
			t.Fatalf("Tick %d: expected z to stay 0.5, got %f", tick, center.Z)
		}
		if d := center.DistanceTo(s.Spheres[0].Center); math.Abs(d-orbit.Radius) > 1e-9 {
			t.Fatalf("Tick %d: expected distance %f from anchor, got %f", tick, orbit.Radius, d)
		}
	}

	if s.Spheres[0].Center != core.NewPoint3(0, 0, 0.5) {
		t.Errorf("Expected anchor to stay put, got %v", s.Spheres[0].Center)
	}
}

func TestNewOrbit_InvalidIndices(t *testing.T) {
	s := newPairScene()

	for _, pair := range [][2]int{{0, 0}, {0, 2}, {-1, 1}} {
		if _, err := NewOrbit(s, pair[0], pair[1]); err == nil {
			t.Errorf("Expected error for indices %v", pair)
		}
	}
}

func TestDrift_Step(t *testing.T) {
	s := newPairScene()
	Drift{}.Step(s)

	if s.Spheres[0].Center != core.NewPoint3(0, 0, 0.5) {
		t.Errorf("Expected static sphere to stay put, got %v", s.Spheres[0].Center)
	}
	if math.Abs(s.Spheres[1].Center.X-0.61) > 1e-12 {
		t.Errorf("Expected moving sphere at x=0.61, got %v", s.Spheres[1].Center)
	}
}

func TestNewAnimator(t *testing.T) {
	tests := []struct {
		name      string
		animation string
		spheres   int
		wantNil   bool
		wantErr   bool
	}{
		{"orbit", "orbit", 2, false, false},
		{"orbit with one sphere", "orbit", 1, true, false},
		{"drift", "drift", 2, false, false},
		{"none", "none", 2, true, false},
		{"unknown", "spin", 2, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPairScene()
			s.Spheres = s.Spheres[:tt.spheres]
			s.Colors = s.Colors[:tt.spheres]

			animator, err := NewAnimator(tt.animation, s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if (animator == nil) != tt.wantNil {
				t.Errorf("Expected nil animator %v, got %T", tt.wantNil, animator)
			}
		})
	}
}
