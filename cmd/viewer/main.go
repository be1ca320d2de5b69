// Command viewer opens a window showing the animated scene. Keyboard:
// '+'/'-' move the camera, 'n'/'p' switch display mode, 'q' or Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/viewer"
)

// Game adapts a viewer session to ebiten's update/draw loop
type Game struct {
	session *viewer.Viewer
	width   int
	height  int
	pixels  []byte // RGBA, top row first
}

// NewGame wraps session
func NewGame(session *viewer.Viewer) *Game {
	width, height := session.Size()
	return &Game{session: session, width: width, height: height}
}

// keyRunes maps keys without a printable character to viewer commands
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyNumpadAdd:      '+',
	ebiten.KeyNumpadSubtract: '-',
	ebiten.KeyEscape:         'q',
}

// Update runs once per tick: keys, then one animation step, then a render
func (g *Game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if g.session.HandleKey(r) {
			return ebiten.Termination
		}
	}
	for key, r := range keyRunes {
		if inpututil.IsKeyJustPressed(key) && g.session.HandleKey(r) {
			return ebiten.Termination
		}
	}

	g.session.Tick()

	frame, err := g.session.Render()
	if err != nil {
		return err
	}
	g.pixels = frame.ToRGBA().Pix
	return nil
}

// Draw copies the last frame to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.pixels != nil {
		screen.WritePixels(g.pixels)
	}
}

// Layout keeps the raster size regardless of the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	defaults := renderer.DefaultConfig()
	generator := scene.DefaultGeneratorConfig()

	sceneType := flag.String("scene", "default", "Scene type: 'default', 'single', 'shadow' or 'empty'")
	mode := flag.String("mode", string(defaults.Mode), "Display mode: 'phong' or 'normal'")
	size := flag.Int("size", defaults.Width, "Window width and height in pixels")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the default scene")
	spheres := flag.Int("spheres", generator.SphereCount, "Number of spheres in the default scene")
	animation := flag.String("animation", "orbit", "Animation: 'orbit', 'drift' or 'none'")
	flag.Parse()

	displayMode, err := renderer.ParseDisplayMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	s, err := scene.Create(*sceneType, scene.GeneratorConfig{Seed: *seed, SphereCount: *spheres, Extent: generator.Extent})
	if err != nil {
		log.Fatal(err)
	}
	animator, err := scene.NewAnimator(*animation, s)
	if err != nil {
		log.Fatal(err)
	}

	config := renderer.MergeConfig(defaults, renderer.Config{Width: *size, Height: *size, Mode: displayMode})
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Print(viewer.Help)
	session := viewer.New(s, config, animator, renderer.NewDefaultLogger())

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle("Ray Trace")
	ebiten.SetTPS(int(time.Second / viewer.TickInterval))
	if err := ebiten.RunGame(NewGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
