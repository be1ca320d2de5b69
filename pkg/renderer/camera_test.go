package renderer

import (
	"math"
	"testing"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
)

func TestImagePlane_PointAt(t *testing.T) {
	plane := NewImagePlane(600, 600)

	tests := []struct {
		name     string
		x, y     int
		expected core.Point3
	}{
		{"center", 300, 300, core.NewPoint3(0, 0, 0)},
		{"bottom left", 0, 0, core.NewPoint3(-1, -1, 0)},
		{"top right", 599, 599, core.NewPoint3(598.0/600, 598.0/600, 0)},
		{"quarter", 450, 150, core.NewPoint3(0.5, -0.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plane.PointAt(tt.x, tt.y)
			if got.DistanceTo(tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImagePlane_OddSize(t *testing.T) {
	// Integer half-size: pixel 2 of a 5-wide raster is the origin
	plane := NewImagePlane(5, 5)
	if got := plane.PointAt(2, 2); got != core.NewPoint3(0, 0, 0) {
		t.Errorf("Expected origin, got %v", got)
	}
}

func TestImagePlane_PrimaryRay(t *testing.T) {
	plane := NewImagePlane(600, 600)
	camera := core.NewPoint3(0, 0, -5)

	ray := plane.PrimaryRay(camera, 300, 300)
	if ray.Origin != camera {
		t.Errorf("Expected ray from camera, got %v", ray.Origin)
	}
	if ray.Direction != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected direction (0,0,1), got %v", ray.Direction)
	}

	corner := plane.PrimaryRay(camera, 0, 0)
	if math.Abs(corner.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", corner.Direction.Length())
	}
}
