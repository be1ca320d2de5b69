package renderer

import (
	"image"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/material"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
)

// PixelResult describes how a pixel was computed
type PixelResult struct {
	Hit      bool // Primary ray hit a sphere
	Sphere   int  // Index of the closest sphere, -1 on a miss
	Shadowed bool // Shadow material was selected
}

// Raytracer computes pixels for one scene and configuration. It owns one
// Phong shader per light, so each worker needs its own Raytracer.
type Raytracer struct {
	scene   *scene.Scene
	config  Config
	plane   ImagePlane
	shaders []*material.Phong
}

// NewRaytracer creates a raytracer; the scene must not change while it is used
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	shaders := make([]*material.Phong, len(s.Lights))
	for i, light := range s.Lights {
		shaders[i] = material.NewPhong(s.Camera, light)
	}

	return &Raytracer{
		scene:   s,
		config:  config,
		plane:   NewImagePlane(config.Width, config.Height),
		shaders: shaders,
	}
}

// closestHit returns the hit with the smallest depth. Ties keep the lower index.
func (rt *Raytracer) closestHit(ray core.Ray) (int, geometry.HitRecord) {
	closest := -1
	var closestHit geometry.HitRecord
	closestDepth := rt.config.FarPlane

	for i, sphere := range rt.scene.Spheres {
		if hit, isHit := sphere.Hit(ray); isHit && hit.Point.Z < closestDepth {
			closest = i
			closestHit = hit
			closestDepth = hit.Point.Z
		}
	}

	return closest, closestHit
}

// Inspection is the full record of one traced pixel
type Inspection struct {
	Color  core.Color
	Result PixelResult
	Hit    geometry.HitRecord // Zero on a miss
}

// TracePixel computes the color of pixel (x, y)
func (rt *Raytracer) TracePixel(x, y int) (core.Color, PixelResult) {
	in := rt.Inspect(x, y)
	return in.Color, in.Result
}

// Inspect traces pixel (x, y) and keeps the closest hit
func (rt *Raytracer) Inspect(x, y int) Inspection {
	ray := rt.plane.PrimaryRay(rt.scene.Camera, x, y)

	index, hit := rt.closestHit(ray)
	if index < 0 {
		return Inspection{Color: core.Black, Result: PixelResult{Sphere: -1}}
	}

	in := Inspection{Result: PixelResult{Hit: true, Sphere: index}, Hit: hit}
	switch rt.config.Mode {
	case ModeNormal:
		in.Color = normalColor(hit.Normal)
	default:
		in.Color, in.Result.Shadowed = rt.shade(index, hit)
	}
	return in
}

// normalColor maps each normal component from [-1, 1] to [0, 254]
func normalColor(n core.Vec3) core.Color {
	return core.NewColor(127+127*n.X, 127+127*n.Y, 127+127*n.Z)
}

// shade evaluates one Phong shade per light and averages them. If any light
// is blocked, every light uses the ambient-only material.
func (rt *Raytracer) shade(index int, hit geometry.HitRecord) (core.Color, bool) {
	shadowed := false
	for _, light := range rt.scene.Lights {
		if InShadow(hit.Point, light.Direction, index, rt.scene.Spheres) {
			shadowed = true
			break
		}
	}

	coeffs := material.LitCoefficients
	if shadowed {
		coeffs = material.ShadowCoefficients
	}

	baseColor := rt.scene.Colors[index]
	shades := make([]core.Color, len(rt.shaders))
	for i, shader := range rt.shaders {
		shader.SetMaterial(baseColor, coeffs)
		shades[i] = shader.Shade(hit.Point, hit.Normal)
	}

	return core.Average(shades...), shadowed
}

// RenderBounds renders the pixels within bounds into frame.
// Distinct bounds write disjoint cells, so tiles may render concurrently.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color, result := rt.TracePixel(x, y)
			frame.Set(x, y, color)

			if result.Hit {
				stats.HitPixels++
			}
			if result.Shadowed {
				stats.ShadowedPixels++
			}
		}
	}

	return stats
}
