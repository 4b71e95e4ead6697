package scenes

import (
	"fmt"

	"github.com/phanxgames/tangent"
)

type pointLightState struct {
	Light  tangent.Vec2 `json:"light"`
	Radius float64      `json:"radius"`
}

// PointLight shows a draggable light over a field of sample points with
// inverse-square falloff. Wall segments cast hard shadows: a sample is dark
// when any wall sits between it and the light.
type PointLight struct {
	state  pointLightState
	drag   tangent.Dragger
	slider Slider
	walls  [][2]tangent.Vec2
}

const sampleStep = 0.125

func NewPointLight() *PointLight {
	sc := &PointLight{
		state: pointLightState{
			Light:  tangent.Vec2{X: 0.1, Y: 0.45},
			Radius: 0.6,
		},
		walls: [][2]tangent.Vec2{
			{{X: -0.55, Y: 0.15}, {X: 0.1, Y: 0.15}},
			{{X: 0.45, Y: -0.6}, {X: 0.45, Y: 0.1}},
			{{X: -0.6, Y: -0.45}, {X: -0.15, Y: -0.75}},
		},
	}
	sc.slider = Slider{X: 16, Y: 72, Width: 140, Min: 0.1, Max: 2, Label: "radius", Value: &sc.state.Radius}
	return sc
}

func (sc *PointLight) Name() string {
	return "point-light"
}

func (sc *PointLight) State() any {
	return &sc.state
}

// occluded reports whether any wall sits strictly between the sample and
// the light.
func (sc *PointLight) occluded(sample tangent.Vec2) bool {
	const eps = 1e-6
	for _, w := range sc.walls {
		u := tangent.RaySegmentParameter(w[0], w[1], sample, sc.state.Light)
		if u > eps && u < 1-eps {
			return true
		}
	}
	return false
}

// intensity returns the inverse-square falloff at a distance, saturating
// inside the light radius.
func (sc *PointLight) intensity(d float64) float64 {
	if d*d < 1e-12 {
		return 1
	}
	r := sc.state.Radius
	return tangent.Saturate(r * r / (d * d))
}

func (sc *PointLight) Step(ctx *Context) {
	if sc.slider.Step(ctx.In) {
		return
	}

	p := ctx.PointerWorld()
	if sc.drag.Active() {
		sc.drag.Update(p, ctx.In.Buttons)
		sc.state.Light = clampToWorld(sc.state.Light)
		return
	}
	if ctx.In.Buttons&tangent.ButtonLeft != 0 && ctx.HitHandle(sc.state.Light) {
		sc.drag.Begin(tangent.NewPositionDrag(&sc.state.Light, p, ctx.In.Buttons))
	}
}

func (sc *PointLight) Draw(ctx *Context) {
	light := sc.state.Light

	for y := -1.0; y <= 1.0+1e-9; y += sampleStep {
		for x := -1.0; x <= 1.0+1e-9; x += sampleStep {
			sample := tangent.Vec2{X: x, Y: y}
			i := sc.intensity(sample.Sub(light).Length())
			if sc.occluded(sample) {
				i = 0
			}
			ctx.Dot(sample, 3.5, intensityRamp(i))
		}
	}

	for _, w := range sc.walls {
		ctx.CanvasLine(ctx.VP.WorldToCanvas(w[0]), ctx.VP.WorldToCanvas(w[1]), 4, colHandle)
	}

	ctx.Circle(light, sc.state.Radius, colDim)
	ctx.Dot(light, 6, colAccentB)
	ctx.Handle(light)

	sc.slider.Draw(ctx.Dst)
	ctx.CanvasLabel(fmt.Sprintf("light (%.2f, %.2f)", light.X, light.Y), 16, 16)
	ctx.CanvasLabel("drag the light through the walls", 16, 32)
}
