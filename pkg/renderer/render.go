package renderer

import (
	"fmt"
	"time"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
)

// Render computes a complete frame of s. The scene is read by several
// goroutines and must not be mutated until Render returns.
func Render(s *scene.Scene, config Config) (*Frame, RenderStats, error) {
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	startTime := time.Now()
	frame := NewFrame(config.Width, config.Height)
	tiles := NewTileGrid(config.Width, config.Height, config.TileSize)

	pool := NewWorkerPool(s, config, config.NumWorkers, len(tiles))
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}

	var stats RenderStats
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(startTime)
	return frame, stats, nil
}

// RenderSequential computes a frame on the calling goroutine
func RenderSequential(s *scene.Scene, config Config) (*Frame, RenderStats, error) {
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	startTime := time.Now()
	frame := NewFrame(config.Width, config.Height)
	stats := NewRaytracer(s, config).RenderBounds(frame.Bounds(), frame)
	stats.Elapsed = time.Since(startTime)
	return frame, stats, nil
}
