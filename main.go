package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/viewer"
)

// Config holds the options of one CLI run
type Config struct {
	SceneType string
	Mode      string
	CameraZ   float64
	Width     int
	Height    int
	Seed      int64
	Spheres   int
	Animation string
	Frames    int
	Output    string
	Workers   int
	Overlay   bool
}

func main() {
	config := parseFlags()
	if config == nil {
		return
	}

	if err := run(*config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *Config {
	defaults := renderer.DefaultConfig()
	generator := scene.DefaultGeneratorConfig()

	sceneType := flag.String("scene", "default", "Scene type: 'default', 'single', 'shadow' or 'empty'")
	mode := flag.String("mode", string(defaults.Mode), "Display mode: 'phong' or 'normal'")
	cameraZ := flag.Float64("camera", scene.DefaultCameraZ, "Camera z position (between -10 and -5)")
	width := flag.Int("width", defaults.Width, "Raster width in pixels")
	height := flag.Int("height", defaults.Height, "Raster height in pixels")
	seed := flag.Int64("seed", generator.Seed, "Random seed for the default scene")
	spheres := flag.Int("spheres", generator.SphereCount, "Number of spheres in the default scene")
	animation := flag.String("animation", "orbit", "Animation: 'orbit', 'drift' or 'none'")
	frames := flag.Int("frames", 1, "Number of frames; more than one writes an animated GIF")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.png|gif)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	overlay := flag.Bool("overlay", false, "Draw the camera position and mode onto still images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return nil
	}

	return &Config{
		SceneType: *sceneType,
		Mode:      *mode,
		CameraZ:   *cameraZ,
		Width:     *width,
		Height:    *height,
		Seed:      *seed,
		Spheres:   *spheres,
		Animation: *animation,
		Frames:    *frames,
		Output:    *output,
		Workers:   *workers,
		Overlay:   *overlay,
	}
}

func showHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png (or .gif for animations)")
}

func run(config Config) error {
	fmt.Println("Starting Sphere Raytracer...")

	renderConfig, err := createRenderConfig(config)
	if err != nil {
		return err
	}

	s, err := createScene(config.SceneType, scene.GeneratorConfig{
		Seed:        config.Seed,
		SphereCount: config.Spheres,
		Extent:      scene.DefaultGeneratorConfig().Extent,
	})
	if err != nil {
		return err
	}
	if config.CameraZ < viewer.MinCameraZ || config.CameraZ > viewer.MaxCameraZ {
		return fmt.Errorf("camera must be between %g and %g, got: %g", viewer.MinCameraZ, viewer.MaxCameraZ, config.CameraZ)
	}
	s.SetCameraZ(config.CameraZ)

	animator, err := scene.NewAnimator(config.Animation, s)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	v := viewer.New(s, renderConfig, animator, logger)
	logger.Printf("Scene %s: %d spheres, %d lights, camera %v, mode %s\n",
		config.SceneType, len(s.Spheres), len(s.Lights), s.Camera, renderConfig.Mode)

	filename := config.Output
	if filename == "" {
		outputDir := createOutputDir(config.SceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		filename = filepath.Join(outputDir, outputFilename(config.Frames, time.Now()))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	startTime := time.Now()
	if config.Frames <= 1 {
		if err := v.Snapshot(file, config.Overlay); err != nil {
			return err
		}
		stats := v.LastStats()
		logger.Printf("Render completed in %v (%d of %d pixels hit, %d shadowed)\n",
			stats.Elapsed, stats.HitPixels, stats.TotalPixels, stats.ShadowedPixels)
	} else {
		frames, err := renderSequence(v, config.Frames)
		if err != nil {
			return err
		}
		if err := renderer.EncodeGIF(file, frames, 2); err != nil {
			return err
		}
		logger.Printf("Rendered %d frames in %v\n", len(frames), time.Since(startTime))
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createRenderConfig validates the raster options of a run
func createRenderConfig(config Config) (renderer.Config, error) {
	mode, err := renderer.ParseDisplayMode(config.Mode)
	if err != nil {
		return renderer.Config{}, err
	}

	renderConfig := renderer.DefaultConfig()
	renderConfig.Width = config.Width
	renderConfig.Height = config.Height
	renderConfig.Mode = mode
	renderConfig.NumWorkers = config.Workers
	if err := renderConfig.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return renderConfig, nil
}

// createScene builds a scene by name
func createScene(sceneType string, config scene.GeneratorConfig) (*scene.Scene, error) {
	if config.SphereCount < 1 {
		return nil, fmt.Errorf("sphere count must be at least 1, got: %d", config.SphereCount)
	}
	return scene.Create(sceneType, config)
}

// createOutputDir returns the directory renders of sceneType are written to
func createOutputDir(sceneType string) string {
	if sceneType == "" {
		sceneType = "default"
	}
	return filepath.Join("output", filepath.Base(sceneType))
}

// outputFilename returns a timestamped file name; sequences are GIFs
func outputFilename(frames int, now time.Time) string {
	ext := "png"
	if frames > 1 {
		ext = "gif"
	}
	return fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), ext)
}

// renderSequence renders count frames, stepping the animation between them
func renderSequence(v *viewer.Viewer, count int) ([]*renderer.Frame, error) {
	frames := make([]*renderer.Frame, 0, count)
	err := v.Run(context.Background(), count, func(frame *renderer.Frame) error {
		frames = append(frames, frame)
		return nil
	})
	return frames, err
}
