package scene

import (
	"math/rand"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/geometry"
)

// Generator produces the scene a run starts from
type Generator interface {
	Generate() *Scene
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func() *Scene

// Generate implements Generator
func (f GeneratorFunc) Generate() *Scene {
	return f()
}

// GeneratorConfig controls procedural scene generation
type GeneratorConfig struct {
	Seed        int64   // Seed for the random source
	SphereCount int     // Number of spheres (at least 1)
	Extent      float64 // Size of the region spheres are placed in
}

// DefaultGeneratorConfig returns the standard two-sphere setup
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42,
		SphereCount: 2,
		Extent:      2.0,
	}
}

// RandomGenerator places small spheres with random colors near the origin.
// The first sphere is static and sits on the z axis; the rest are scattered
// in front of it with small random motion vectors.
type RandomGenerator struct {
	config GeneratorConfig
	random *rand.Rand
}

// NewRandomGenerator creates a generator seeded from config
func NewRandomGenerator(config GeneratorConfig) *RandomGenerator {
	return &RandomGenerator{
		config: config,
		random: rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate implements Generator
func (g *RandomGenerator) Generate() *Scene {
	s := NewScene()
	e := g.config.Extent
	count := max(1, g.config.SphereCount)

	anchor := geometry.NewSphere(
		core.NewPoint3(0, 0, g.uniform(0, e/2)),
		core.NewVec3(0, 0, 0),
		g.uniform(e/20, e/10),
	)
	s.AddSphere(anchor, g.color())

	for i := 1; i < count; i++ {
		center := core.NewPoint3(g.uniform(-e/2, e/2), g.uniform(-e/2, e/2), g.uniform(0, e/2))
		motion := core.NewVec3(g.uniform(-e/100, e/200), g.uniform(-e/100, e/200), g.uniform(-e/100, e/200))
		radius := g.uniform(e/20, e/10)
		s.AddSphere(geometry.NewSphere(center, motion, radius), g.color())
	}

	return s
}

// uniform returns a value in [lo, hi)
func (g *RandomGenerator) uniform(lo, hi float64) float64 {
	return lo + g.random.Float64()*(hi-lo)
}

func (g *RandomGenerator) color() core.Color {
	return core.NewColorInt(g.random.Intn(255), g.random.Intn(255), g.random.Intn(255))
}
