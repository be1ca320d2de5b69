package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(-1, -1, -1)},
		{"large", NewVec3(1e6, -3e5, 42)},
		{"tiny", NewVec3(1e-9, 2e-9, -3e-9)},
		{"mixed", NewVec3(0.3, -4, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.vector.Normalize()
			if math.Abs(n.Length()-1) > 1e-9 {
				t.Errorf("Expected unit length, got %f for %v", n.Length(), n)
			}
			// Same direction as the input
			if n.Dot(tt.vector) <= 0 {
				t.Errorf("Normalized vector %v points away from %v", n, tt.vector)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := NewVec3(0, 0, 0)

	if n := zero.Normalize(); !n.IsZero() {
		t.Errorf("Expected zero vector sentinel, got %v", n)
	}

	_, err := zero.NormalizeChecked()
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("Expected ErrZeroLength, got %v", err)
	}

	n, err := NewVec3(0, 3, 4).NormalizeChecked()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(n.Y-0.6) > 1e-12 || math.Abs(n.Z-0.8) > 1e-12 {
		t.Errorf("Expected (0,0.6,0.8), got %v", n)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestPoint3_Arithmetic(t *testing.T) {
	p := NewPoint3(1, 1, 1)
	q := NewPoint3(4, 5, 1)

	if got := q.Subtract(p); got != NewVec3(3, 4, 0) {
		t.Errorf("Subtract: expected (3,4,0), got %v", got)
	}
	if got := p.Add(NewVec3(0, 0, -6)); got != NewPoint3(1, 1, -5) {
		t.Errorf("Add: got %v", got)
	}
	if got := p.DistanceTo(q); got != 5 {
		t.Errorf("DistanceTo: expected 5, got %f", got)
	}
	if got := NewPoint3(0, 0, -5.5).String(); got != "0,0,-5.5" {
		t.Errorf("String: expected 0,0,-5.5, got %s", got)
	}
}

func TestRay_Construction(t *testing.T) {
	origin := NewPoint3(0, 0, -5)

	ray := NewRay(origin, NewVec3(0, 0, 10))
	if ray.Direction != NewVec3(0, 0, 1) {
		t.Errorf("Expected normalized direction (0,0,1), got %v", ray.Direction)
	}

	through := NewRayThrough(origin, NewPoint3(3, 4, -5))
	if math.Abs(through.Direction.X-0.6) > 1e-12 || math.Abs(through.Direction.Y-0.8) > 1e-12 {
		t.Errorf("Expected direction (0.6,0.8,0), got %v", through.Direction)
	}
	if got := through.At(5); math.Abs(got.X-3) > 1e-12 || math.Abs(got.Y-4) > 1e-12 {
		t.Errorf("Expected At(5) = (3,4,-5), got %v", got)
	}

	degenerate := NewRayThrough(origin, origin)
	if !degenerate.IsDegenerate() {
		t.Error("Expected ray through its own origin to be degenerate")
	}
}
