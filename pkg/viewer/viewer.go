// Package viewer holds the state of an interactive rendering session: the
// scene, the display settings, the camera distance and the running animation.
package viewer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/fogleman/gg"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
)

const (
	MinCameraZ = -10.0 // Farthest camera position
	MaxCameraZ = -5.0  // Nearest camera position
	CameraStep = 0.5   // Distance moved per key press

	// TickInterval is the animation period of an interactive session
	TickInterval = 10 * time.Millisecond
)

// Help lists the keyboard commands understood by HandleKey
const Help = `Program commands:
   '+' - increase camera distance
   '-' - decrease camera distance
   'p' - show Phong shading
   'n' - show surface normals
   'q' - quit program
`

// Viewer serializes rendering and scene mutation. Keys, ticks and renders
// may arrive from different goroutines.
type Viewer struct {
	mu        sync.Mutex
	scene     *scene.Scene
	config    renderer.Config
	animator  scene.Animator
	logger    core.Logger
	ticks     int
	lastStats renderer.RenderStats
}

// New creates a viewer. animator may be nil for a still scene.
func New(s *scene.Scene, config renderer.Config, animator scene.Animator, logger core.Logger) *Viewer {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Viewer{
		scene:    s,
		config:   config,
		animator: animator,
		logger:   logger,
	}
}

// HandleKey applies one keyboard command and reports whether the session
// should end. Unknown keys are ignored.
func (v *Viewer) HandleKey(key rune) (quit bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch key {
	case 'q':
		return true
	case '+':
		if z := v.scene.Camera.Z; z > MinCameraZ {
			v.scene.SetCameraZ(max(MinCameraZ, z-CameraStep))
			v.logger.Printf("camera: %v\n", v.scene.Camera)
		}
	case '-':
		if z := v.scene.Camera.Z; z < MaxCameraZ {
			v.scene.SetCameraZ(min(MaxCameraZ, z+CameraStep))
			v.logger.Printf("camera: %v\n", v.scene.Camera)
		}
	case 'n':
		v.config.Mode = renderer.ModeNormal
	case 'p':
		v.config.Mode = renderer.ModePhong
	}
	return false
}

// Tick advances the animation by one step
func (v *Viewer) Tick() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.animator != nil {
		v.animator.Step(v.scene)
	}
	v.ticks++
}

// Render computes a frame of the current state
func (v *Viewer) Render() (*renderer.Frame, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	frame, stats, err := renderer.Render(v.scene, v.config)
	if err != nil {
		return nil, err
	}
	v.lastStats = stats
	return frame, nil
}

// Run ticks and renders until ctx is done or frames frames were produced
// (frames <= 0 means no limit). onFrame receives each frame in order.
func (v *Viewer) Run(ctx context.Context, frames int, onFrame func(*renderer.Frame) error) error {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for count := 1; ; count++ {
		frame, err := v.Render()
		if err != nil {
			return err
		}
		if err := onFrame(frame); err != nil {
			return err
		}
		if frames > 0 && count >= frames {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		v.Tick()
	}
}

// PixelInfo describes what pixel (X, Y) of the current state shows
type PixelInfo struct {
	X, Y int
	renderer.Inspection
	Center    core.Point3 // Center of the hit sphere
	Radius    float64     // Radius of the hit sphere
	BaseColor core.Color  // Material color of the hit sphere
}

// Inspect traces a single pixel of the current state
func (v *Viewer) Inspect(x, y int) (PixelInfo, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if x < 0 || x >= v.config.Width || y < 0 || y >= v.config.Height {
		return PixelInfo{}, fmt.Errorf("pixel (%d, %d) outside %dx%d raster", x, y, v.config.Width, v.config.Height)
	}

	info := PixelInfo{X: x, Y: y, Inspection: renderer.NewRaytracer(v.scene, v.config).Inspect(x, y)}
	if info.Result.Hit {
		sphere := v.scene.Spheres[info.Result.Sphere]
		info.Center = sphere.Center
		info.Radius = sphere.Radius
		info.BaseColor = v.scene.Colors[info.Result.Sphere]
	}
	return info, nil
}

// CameraZ returns the camera's current z coordinate
func (v *Viewer) CameraZ() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scene.Camera.Z
}

// Mode returns the current display mode
func (v *Viewer) Mode() renderer.DisplayMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.config.Mode
}

// Ticks returns the number of animation steps taken so far
func (v *Viewer) Ticks() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ticks
}

// LastStats returns the statistics of the most recent render
func (v *Viewer) LastStats() renderer.RenderStats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastStats
}

// Size returns the raster dimensions
func (v *Viewer) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.config.Width, v.config.Height
}

// Caption describes the current camera and mode, e.g. "camera: 0,0,-5  mode: phong"
func (v *Viewer) Caption() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fmt.Sprintf("camera: %v  mode: %s", v.scene.Camera, v.config.Mode)
}

// Annotate draws caption onto a copy of the frame's image in the top-left corner
func Annotate(frame *renderer.Frame, caption string) *image.RGBA {
	img := frame.ToRGBA()
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(color.RGBA{0, 0, 0, 160})
	w, h := dc.MeasureString(caption)
	dc.DrawRectangle(0, 0, w+12, h+10)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, 6, 5, 0, 1)
	return img
}

// Snapshot renders the current state and writes it as a PNG.
// With overlay set, the camera position and mode are drawn onto the image.
func (v *Viewer) Snapshot(w io.Writer, overlay bool) error {
	frame, err := v.Render()
	if err != nil {
		return err
	}
	if !overlay {
		return renderer.EncodePNG(w, frame)
	}

	dc := gg.NewContextForImage(Annotate(frame, v.Caption()))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
