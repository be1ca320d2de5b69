package core

import (
	"math"
	"testing"
)

func TestNewColor_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected Color
	}{
		{"in range", 10, 128, 254.9, Color{10, 128, 254}},
		{"overflow", 300, 255, 1e9, Color{255, 255, 255}},
		{"negative", -1, -300, 0, Color{0, 0, 0}},
		{"nan", math.NaN(), 5, math.Inf(1), Color{0, 5, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewColor(tt.r, tt.g, tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_AddSaturates(t *testing.T) {
	a := Color{200, 100, 0}
	b := Color{100, 100, 0}

	if got := a.Add(b); got != (Color{255, 200, 0}) {
		t.Errorf("Expected (255,200,0), got %v", got)
	}
	if got := NewColorInt(-20, 256, 1000); got != (Color{0, 255, 255}) {
		t.Errorf("Expected (0,255,255), got %v", got)
	}
}

func TestColor_Scale(t *testing.T) {
	c := Color{100, 200, 255}

	if got := c.Scale(0.5); got != (Color{50, 100, 127}) {
		t.Errorf("Expected (50,100,127), got %v", got)
	}
	if got := c.Scale(2); got != (Color{200, 255, 255}) {
		t.Errorf("Expected (200,255,255), got %v", got)
	}
	if got := c.Scale(-1); got != Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		colors   []Color
		expected Color
	}{
		{"none", nil, Black},
		{"single", []Color{{9, 8, 7}}, Color{9, 8, 7}},
		{"truncates", []Color{{1, 2, 255}, {2, 2, 255}, {2, 3, 254}}, Color{1, 2, 254}},
		{"full", []Color{{255, 255, 255}, {255, 255, 255}, {255, 255, 255}}, Color{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.colors...); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
