package renderer

import "fmt"

// DisplayMode selects what a hit pixel shows
type DisplayMode string

const (
	ModeNormal DisplayMode = "normal" // Surface normal mapped to RGB
	ModePhong  DisplayMode = "phong"  // Shadow-gated Phong shading
)

// ParseDisplayMode converts a mode name to a DisplayMode
func ParseDisplayMode(name string) (DisplayMode, error) {
	switch DisplayMode(name) {
	case ModeNormal, ModePhong:
		return DisplayMode(name), nil
	default:
		return "", fmt.Errorf("unknown display mode: %q (want %q or %q)", name, ModeNormal, ModePhong)
	}
}

// Config contains rendering configuration
type Config struct {
	Width      int         // Raster width in pixels
	Height     int         // Raster height in pixels
	Mode       DisplayMode // What hit pixels display
	FarPlane   float64     // Hits with depth at or beyond this are ignored
	TileSize   int         // Edge length of a work unit in pixels
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns a 600x600 Phong configuration
func DefaultConfig() Config {
	return Config{
		Width:      600,
		Height:     600,
		Mode:       ModePhong,
		FarPlane:   600,
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// MergeConfig applies non-zero override fields on top of base
func MergeConfig(base, override Config) Config {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.FarPlane != 0 {
		result.FarPlane = override.FarPlane
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	return result
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("raster size must be positive, got: %dx%d", c.Width, c.Height)
	}
	if _, err := ParseDisplayMode(string(c.Mode)); err != nil {
		return err
	}
	if !(c.FarPlane > 0) {
		return fmt.Errorf("far plane must be positive, got: %f", c.FarPlane)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got: %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got: %d", c.NumWorkers)
	}
	return nil
}
