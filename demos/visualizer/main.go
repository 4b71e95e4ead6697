// visualizer bundles the tangent teaching scenes into one switchable app:
// number keys pick a scene, S/L save and load the session, P grabs a
// screenshot, D toggles the pipeline overlay, R flies the camera home.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tangent"
	"github.com/phanxgames/tangent/scenes"
)

const (
	screenW = 1000
	screenH = 800

	statePath = "visualizer_state.json"
	shotDir   = "screenshots"

	tickSeconds = 1.0 / 60.0
)

// sceneKeys maps the number row onto the scene list.
var sceneKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

type visualizer struct {
	cam    *tangent.Camera
	scenes []scenes.Scene
	active int

	stats   tangent.FrameStats
	overlay bool

	// wantShot defers the screenshot to Draw, where the frame exists.
	wantShot bool
	lastIn   tangent.FrameInput
}

func newVisualizer() *visualizer {
	return &visualizer{
		cam: tangent.NewCamera(),
		scenes: []scenes.Scene{
			scenes.NewDotProduct(),
			scenes.NewSurfaceNormal(),
			scenes.NewPointLight(),
			scenes.NewProjection(),
			scenes.NewFrustum(),
		},
	}
}

func (v *visualizer) handleKeys() {
	for i, key := range sceneKeys {
		if i < len(v.scenes) && inpututil.IsKeyJustPressed(key) {
			v.active = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := scenes.Save(statePath, v.cam, v.scenes); err != nil {
			tangent.Debugf("save state: %v", err)
		} else {
			tangent.Debugf("state saved to %s", statePath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := scenes.Load(statePath, v.cam, v.scenes); err != nil {
			tangent.Debugf("load state: %v", err)
		} else {
			tangent.Debugf("state loaded from %s", statePath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.wantShot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.overlay = !v.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		home := tangent.NewCamera()
		v.cam.FlyTo(home.Latitude, home.Longitude, home.Distance, 0.8, ease.InOutQuad)
	}
}

func (v *visualizer) Update(in tangent.FrameInput) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.handleKeys()

	v.stats.ResetFrame()
	v.cam.Update(tickSeconds)
	v.lastIn = in

	ctx := &scenes.Context{
		In:    in,
		VP:    tangent.FitViewport(in.CanvasWidth, in.CanvasHeight),
		Cam:   v.cam,
		Stats: &v.stats,
	}
	v.scenes[v.active].Step(ctx)

	v.cam.BeginFrame(in.CanvasWidth, in.CanvasHeight)
	return nil
}

func (v *visualizer) Draw(screen *ebiten.Image) {
	screen.Fill(scenes.Background())

	in := v.lastIn
	ctx := &scenes.Context{
		In:    in,
		VP:    tangent.FitViewport(in.CanvasWidth, in.CanvasHeight),
		Cam:   v.cam,
		Dst:   screen,
		Stats: &v.stats,
	}
	sc := v.scenes[v.active]
	sc.Draw(ctx)

	w := screen.Bounds().Dx()
	ctx.CanvasLabel("[1-5] scene  [S]ave [L]oad [P]ic [D]ebug [R]eset", w-360, 16)
	ctx.CanvasLabel(sc.Name(), w-360, 32)
	if v.overlay {
		ctx.CanvasLabel(v.stats.String(), 16, screen.Bounds().Dy()-36)
	}

	if v.wantShot {
		v.wantShot = false
		path, err := tangent.SaveScreenshot(screen, shotDir, sc.Name())
		if err != nil {
			tangent.Debugf("screenshot: %v", err)
		} else {
			tangent.Debugf("screenshot saved to %s", path)
		}
	}
}

func main() {
	app := newVisualizer()
	err := tangent.Run(app, tangent.RunConfig{
		Title:     "tangent visualizer",
		Width:     screenW,
		Height:    screenH,
		ShowFPS:   true,
		Resizable: true,
	})
	if err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
