package scenes

import (
	"fmt"

	"github.com/phanxgames/tangent"
)

type dotProductState struct {
	A tangent.Vec2 `json:"a"`
	B tangent.Vec2 `json:"b"`
}

// DotProduct shows two draggable vectors, the projection of a onto b, and
// the dot product's sign and magnitude as color.
type DotProduct struct {
	state dotProductState
	drag  tangent.Dragger
}

func NewDotProduct() *DotProduct {
	return &DotProduct{
		state: dotProductState{
			A: tangent.Vec2{X: 0.35, Y: 0.55},
			B: tangent.Vec2{X: 0.7, Y: -0.1},
		},
	}
}

func (sc *DotProduct) Name() string {
	return "dot-product"
}

func (sc *DotProduct) State() any {
	return &sc.state
}

// clampToWorld keeps a dragged point inside the world square.
func clampToWorld(v tangent.Vec2) tangent.Vec2 {
	return tangent.Vec2{
		X: tangent.Clamp(v.X, -1, 1),
		Y: tangent.Clamp(v.Y, -1, 1),
	}
}

func (sc *DotProduct) Step(ctx *Context) {
	p := ctx.PointerWorld()
	if sc.drag.Active() {
		sc.drag.Update(p, ctx.In.Buttons)
		sc.state.A = clampToWorld(sc.state.A)
		sc.state.B = clampToWorld(sc.state.B)
		return
	}
	if ctx.In.Buttons&tangent.ButtonLeft == 0 {
		return
	}
	for _, tip := range []*tangent.Vec2{&sc.state.A, &sc.state.B} {
		if ctx.HitHandle(*tip) {
			sc.drag.Begin(tangent.NewPositionDrag(tip, p, ctx.In.Buttons))
			return
		}
	}
}

func (sc *DotProduct) Draw(ctx *Context) {
	ctx.Grid(0.25)

	a, b := sc.state.A, sc.state.B
	dot := a.Dot(b)

	origin := tangent.Vec2{}
	if b.Length() > 1e-9 {
		bhat := b.Normalize()
		proj := bhat.Scale(a.Dot(bhat))
		ctx.ThinLine(a, proj, colDim)
		ctx.CanvasLine(ctx.VP.WorldToCanvas(origin), ctx.VP.WorldToCanvas(proj), 4, signRamp(dot, 1))
		ctx.CrossMarker(proj, colDim)
	}

	ctx.Arrow(origin, a, colAccentA)
	ctx.Arrow(origin, b, colAccentB)
	ctx.Handle(a)
	ctx.Handle(b)
	ctx.Label("a", a)
	ctx.Label("b", b)

	ctx.CanvasLabel(fmt.Sprintf("a . b = %.3f", dot), 16, 16)
	ctx.CanvasLabel("drag the vector tips", 16, 32)
}
