// Package tangent is the geometric core of an interactive vector-geometry
// teaching visualizer built on [Ebitengine].
//
// It provides the coordinate-space conversions between world, clip, and
// canvas space for a 2D orthographic mode and a 3D perspective mode, a
// near-plane segment clipper in homogeneous clip space, and the drag state
// machine that lets a user grab positions and rotate directions with the
// mouse. Demo scenes live in the scenes package and programs under demos/
// and examples/.
//
// # Quick start
//
// Implement [App] and hand it to [Run], which creates the window and loop:
//
//	type game struct {
//		vp    tangent.Viewport2D
//		point tangent.Vec2
//		drag  tangent.Dragger
//	}
//
//	func (g *game) Update(in tangent.FrameInput) error {
//		g.vp = tangent.FitViewport(in.CanvasWidth, in.CanvasHeight)
//		p := g.vp.CanvasToWorld(in.Pointer)
//		if !g.drag.Active() && in.Buttons != 0 && p.Sub(g.point).Length() < 0.05 {
//			g.drag.Begin(tangent.NewPositionDrag(&g.point, p, in.Buttons))
//		}
//		g.drag.Update(p, in.Buttons)
//		return nil
//	}
//
//	func (g *game) Draw(screen *ebiten.Image) {
//		// draw g.point via g.vp.WorldToCanvas(g.point)
//	}
//
//	func main() {
//		if err := tangent.Run(&game{point: tangent.Vec2{}}, tangent.RunConfig{
//			Title: "Drag the point", Width: 640, Height: 480,
//		}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Coordinate spaces
//
// The 2D world is the square [-1, 1] x [-1, 1] with +Y up. [Viewport2D] maps
// it onto a centered square of the canvas, whose origin is top-left with +Y
// down; [Viewport2D.CanvasToWorld] is the exact inverse for pointer
// hit-testing. The 3D pipeline goes world -> clip via [Camera.WorldToClip],
// through [ClipSegment] against [NearPlane] for segments, then
// [Camera.ClipToCanvas], which performs the perspective divide, reuses the
// same square mapping for x and y, and passes NDC depth through for the
// caller's visibility test.
//
// # Input
//
// [FrameInput] is sampled exactly once per frame by [Run] and handed to
// [App.Update]; nothing in the core re-reads the mouse mid-frame. An
// [InputQueue] injects synthetic pointer events ahead of the real mouse, and
// [Script] replays a JSON-described sequence into a queue for automated
// runs and interaction tests.
//
// [Ebitengine]: https://ebitengine.org
package tangent
