package scenes

import (
	"fmt"

	"github.com/phanxgames/tangent"
)

type surfaceNormalState struct {
	P0       tangent.Vec2 `json:"p0"`
	P1       tangent.Vec2 `json:"p1"`
	LightDir tangent.Vec2 `json:"lightDir"`
}

// SurfaceNormal shows a draggable surface segment, its normal, and a light
// direction that rotates around the surface midpoint. The diffuse term
// N . L drives the surface color.
type SurfaceNormal struct {
	state surfaceNormalState
	drag  tangent.Dragger
}

// lightArm is the distance from the surface midpoint to the light handle.
const lightArm = 0.55

func NewSurfaceNormal() *SurfaceNormal {
	return &SurfaceNormal{
		state: surfaceNormalState{
			P0:       tangent.Vec2{X: -0.5, Y: -0.2},
			P1:       tangent.Vec2{X: 0.5, Y: -0.2},
			LightDir: tangent.Vec2{X: 0.4, Y: 0.8}.Normalize(),
		},
	}
}

func (sc *SurfaceNormal) Name() string {
	return "surface-normal"
}

func (sc *SurfaceNormal) State() any {
	return &sc.state
}

func (sc *SurfaceNormal) mid() tangent.Vec2 {
	return sc.state.P0.Add(sc.state.P1).Scale(0.5)
}

func (sc *SurfaceNormal) lightPos() tangent.Vec2 {
	return sc.mid().Add(sc.state.LightDir.Scale(lightArm))
}

// normal returns the unit surface normal, or a zero vector while the
// endpoints coincide.
func (sc *SurfaceNormal) normal() tangent.Vec2 {
	span := sc.state.P1.Sub(sc.state.P0)
	if span.Length() < 1e-9 {
		return tangent.Vec2{}
	}
	return span.Perp().Normalize()
}

func (sc *SurfaceNormal) Step(ctx *Context) {
	// A restored snapshot may carry a denormalized direction.
	if sc.state.LightDir.Length() > 1e-9 {
		sc.state.LightDir = sc.state.LightDir.Normalize()
	} else {
		sc.state.LightDir = tangent.Vec2{Y: 1}
	}

	p := ctx.PointerWorld()
	if sc.drag.Active() {
		sc.drag.Update(p, ctx.In.Buttons)
		sc.state.P0 = clampToWorld(sc.state.P0)
		sc.state.P1 = clampToWorld(sc.state.P1)
		return
	}
	if ctx.In.Buttons&tangent.ButtonLeft == 0 {
		return
	}
	if ctx.HitHandle(sc.lightPos()) {
		sc.drag.Begin(tangent.NewNormalDrag(&sc.state.LightDir, sc.mid(), p, ctx.In.Buttons))
		return
	}
	for _, end := range []*tangent.Vec2{&sc.state.P0, &sc.state.P1} {
		if ctx.HitHandle(*end) {
			sc.drag.Begin(tangent.NewPositionDrag(end, p, ctx.In.Buttons))
			return
		}
	}
}

func (sc *SurfaceNormal) Draw(ctx *Context) {
	ctx.Grid(0.25)

	n := sc.normal()
	intensity := tangent.Saturate(n.Dot(sc.state.LightDir))
	mid := sc.mid()
	light := sc.lightPos()

	ctx.CanvasLine(ctx.VP.WorldToCanvas(sc.state.P0), ctx.VP.WorldToCanvas(sc.state.P1), 5, intensityRamp(intensity))
	if n.Length() > 0 {
		ctx.Arrow(mid, mid.Add(n.Scale(0.35)), colAccentA)
		ctx.Label("n", mid.Add(n.Scale(0.35)))
	}

	ctx.Arrow(light, mid.Add(sc.state.LightDir.Scale(0.12)), colAccentB)
	ctx.Dot(light, 6, colAccentB)

	ctx.Handle(sc.state.P0)
	ctx.Handle(sc.state.P1)
	ctx.Handle(light)

	ctx.CanvasLabel(fmt.Sprintf("n . l = %.3f", n.Dot(sc.state.LightDir)), 16, 16)
	ctx.CanvasLabel(fmt.Sprintf("diffuse = %.3f", intensity), 16, 32)
	ctx.CanvasLabel("drag the endpoints or swing the light", 16, 48)
}
