package material

import (
	"math"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/lights"
)

// Coefficients are the Phong reflectance terms for one shading call
type Coefficients struct {
	Ambient   float64 // kA
	Diffuse   float64 // kD
	Specular  float64 // kS
	Shininess float64 // n, specular exponent
}

// LitCoefficients is used for points that no light is blocked from
var LitCoefficients = Coefficients{Ambient: 0.4, Diffuse: 0.4, Specular: 0.4, Shininess: 10}

// ShadowCoefficients is used for points in shadow: ambient only
var ShadowCoefficients = Coefficients{Ambient: 0.4, Diffuse: 0, Specular: 0, Shininess: 1}

// Phong shades surface points for a single light seen from a fixed camera.
// A Phong value is not safe for concurrent use; each worker owns its shaders.
type Phong struct {
	camera    core.Point3
	light     lights.Directional
	baseColor core.Color
	coeffs    Coefficients
}

// NewPhong creates a shader for the given camera and light
func NewPhong(camera core.Point3, light lights.Directional) *Phong {
	return &Phong{
		camera: camera,
		light:  light,
		coeffs: LitCoefficients,
	}
}

// SetMaterial selects the object color and coefficients for subsequent Shade calls
func (p *Phong) SetMaterial(baseColor core.Color, coeffs Coefficients) {
	p.baseColor = baseColor
	p.coeffs = coeffs
}

// Shade evaluates ambient + diffuse + specular at point with unit normal
func (p *Phong) Shade(point core.Point3, normal core.Vec3) core.Color {
	base := p.baseColor.Vec()
	toLight := p.light.Direction

	ambient := base.Multiply(p.coeffs.Ambient)

	nDotL := normal.Dot(toLight)
	diffuse := base.Multiply(p.coeffs.Diffuse * math.Max(0, nDotL))

	// Mirror of the light vector about the normal
	reflect := normal.Multiply(2 * nDotL).Subtract(toLight)
	view := p.camera.Subtract(point).Normalize()
	rDotV := math.Max(0, reflect.Dot(view))
	specular := p.light.Color.Vec().Multiply(p.coeffs.Specular * math.Pow(rDotV, p.coeffs.Shininess))

	return core.ColorFromVec(ambient.Add(diffuse).Add(specular))
}
