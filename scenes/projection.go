package scenes

import (
	"fmt"
)

// Projection orbits a wireframe cube. Sliders drive the shared camera's
// field of view and orbit distance, and each cube edge is tinted by its
// depth after projection, so the perspective parameters can be read straight
// off the picture.
type Projection struct {
	orbit      OrbitControl
	fovSlider  Slider
	distSlider Slider
	bound      bool
}

func NewProjection() *Projection {
	return &Projection{}
}

func (sc *Projection) Name() string {
	return "projection"
}

// State returns nil: the camera pose the sliders drive is saved with the
// snapshot's camera section.
func (sc *Projection) State() any {
	return nil
}

// bind points the sliders at the shared camera. The camera lives on the
// Context, so this waits for the first frame.
func (sc *Projection) bind(ctx *Context) {
	if sc.bound {
		return
	}
	sc.fovSlider = Slider{X: 16, Y: 72, Width: 140, Min: 20, Max: 120, Label: "fov", Value: &ctx.Cam.FOVYDegrees}
	sc.distSlider = Slider{X: 16, Y: 112, Width: 140, Min: -12, Max: -1, Label: "distance", Value: &ctx.Cam.Distance}
	sc.bound = true
}

func (sc *Projection) Step(ctx *Context) {
	sc.bind(ctx)
	if sc.fovSlider.Step(ctx.In) || sc.distSlider.Step(ctx.In) {
		return
	}
	sc.orbit.Step(ctx)
}

func (sc *Projection) Draw(ctx *Context) {
	sc.bind(ctx)

	ctx.GroundGrid(2, 0.5, -1.4)
	ctx.Axes3D(1.5)

	corners := cubeCorners(0.8)
	for _, e := range cubeEdgePairs {
		a, b := corners[e[0]], corners[e[1]]
		mid := a.Add(b).Scale(0.5)
		clip := ctx.Cam.WorldToClip(mid)
		clr := colDim
		if clip.W > 1e-9 {
			clr = depthRamp(clip.Z / clip.W)
		}
		ctx.Segment3D(a, b, clr)
	}

	sc.fovSlider.Draw(ctx.Dst)
	sc.distSlider.Draw(ctx.Dst)

	eye := ctx.Cam.Eye()
	ctx.CanvasLabel(fmt.Sprintf("eye (%.2f, %.2f, %.2f)", eye.X, eye.Y, eye.Z), 16, 16)
	ctx.CanvasLabel("drag to orbit, wheel to zoom", 16, 32)
}
