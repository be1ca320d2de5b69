package material

import (
	"testing"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/lights"
)

func TestPhong_Shade(t *testing.T) {
	camera := core.NewPoint3(0, 0, -5)
	point := core.NewPoint3(0, 0, -2)
	normal := core.NewVec3(0, 0, -1)
	white := core.NewColorInt(250, 250, 250)

	tests := []struct {
		name      string
		toLight   core.Vec3
		baseColor core.Color
		coeffs    Coefficients
		expected  core.Color
	}{
		{
			name:      "ambient only in shadow",
			toLight:   core.NewVec3(0, 0, -1),
			baseColor: core.NewColorInt(100, 200, 50),
			coeffs:    ShadowCoefficients,
			expected:  core.NewColorInt(40, 80, 20),
		},
		{
			name:      "head-on light",
			toLight:   core.NewVec3(0, 0, -1),
			baseColor: core.NewColorInt(100, 100, 100),
			coeffs:    LitCoefficients,
			expected:  core.NewColorInt(180, 180, 180), // 40 ambient + 40 diffuse + 100 specular
		},
		{
			name:      "light behind surface",
			toLight:   core.NewVec3(0, 0, 1),
			baseColor: core.NewColorInt(100, 100, 100),
			coeffs:    LitCoefficients,
			expected:  core.NewColorInt(40, 40, 40),
		},
		{
			name:      "sum clamps at 255",
			toLight:   core.NewVec3(0, 0, -1),
			baseColor: core.NewColorInt(255, 255, 255),
			coeffs:    Coefficients{Ambient: 1, Diffuse: 1, Specular: 1, Shininess: 1},
			expected:  core.NewColorInt(255, 255, 255),
		},
		{
			name:      "negative contribution clamps at 0",
			toLight:   core.NewVec3(0, 0, 1),
			baseColor: core.NewColorInt(100, 100, 100),
			coeffs:    Coefficients{Ambient: -1, Diffuse: 0, Specular: 0, Shininess: 1},
			expected:  core.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := lights.NewDirectional(tt.toLight, white)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			shader := NewPhong(camera, light)
			shader.SetMaterial(tt.baseColor, tt.coeffs)

			if got := shader.Shade(point, normal); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPhong_SpecularFalloff(t *testing.T) {
	camera := core.NewPoint3(0, 0, -5)
	point := core.NewPoint3(0, 0, -2)
	normal := core.NewVec3(0, 0, -1)
	white := core.NewColorInt(250, 250, 250)
	base := core.NewColorInt(0, 0, 0)

	// Light moving away from the mirror direction loses specular energy
	var previous = 256
	for _, toLight := range []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.2, 0, -1),
		core.NewVec3(0.5, 0, -1),
		core.NewVec3(1, 0, -1),
	} {
		light, err := lights.NewDirectional(toLight, white)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		shader := NewPhong(camera, light)
		shader.SetMaterial(base, LitCoefficients)

		got := int(shader.Shade(point, normal).R)
		if got >= previous {
			t.Errorf("Expected specular to decrease for light %v: got %d after %d", toLight, got, previous)
		}
		previous = got
	}
}

func TestPhong_DefaultsToLitCoefficients(t *testing.T) {
	shader := NewPhong(core.NewPoint3(0, 0, -5), lights.DefaultLights()[0])
	if shader.coeffs != LitCoefficients {
		t.Errorf("Expected lit coefficients by default, got %+v", shader.coeffs)
	}
}
