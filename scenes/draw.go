package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/tangent"
)

// Shared palette. Scenes pick accents from here so the demos read as one app.
var (
	colBackground = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	colGrid       = colorful.Hsv(225, 0.20, 0.22)
	colAxis       = colorful.Hsv(225, 0.12, 0.42)
	colAccentA    = colorful.Hsv(205, 0.80, 0.95)
	colAccentB    = colorful.Hsv(35, 0.85, 0.95)
	colHandle     = colorful.Hsv(0, 0.0, 0.92)
	colDim        = colorful.Hsv(225, 0.10, 0.55)
)

// Background returns the clear color shared by all scenes.
func Background() color.Color {
	return colBackground
}

// intensityRamp maps t in [0, 1] to a cold-to-hot blend. Values outside the
// range saturate.
func intensityRamp(t float64) colorful.Color {
	cold := colorful.Hsv(232, 0.65, 0.30)
	hot := colorful.Hsv(52, 0.90, 1.00)
	return cold.BlendLab(hot, tangent.Saturate(t)).Clamped()
}

// signRamp maps v to a diverging blend: red below zero, green above, neutral
// near zero. scale is the magnitude at which the ramp saturates.
func signRamp(v, scale float64) colorful.Color {
	neutral := colorful.Hsv(0, 0.0, 0.88)
	t := tangent.Saturate(math.Abs(v) / scale)
	if v < 0 {
		return neutral.BlendLab(colorful.Hsv(10, 0.85, 0.90), t).Clamped()
	}
	return neutral.BlendLab(colorful.Hsv(145, 0.75, 0.85), t).Clamped()
}

// depthRamp maps an NDC depth in [-1, 1] to an edge color, bright near the
// camera and dim at the far plane.
func depthRamp(z float64) colorful.Color {
	near := colorful.Hsv(195, 0.70, 0.98)
	far := colorful.Hsv(250, 0.45, 0.35)
	return near.BlendLab(far, tangent.Saturate((z+1)/2)).Clamped()
}

const (
	lineWidth float32 = 2
	thinWidth float32 = 1

	handleRadius = 7.0
	markerSize   = 0.035
	arrowHead    = 0.055
)

// CanvasLine draws a line between two canvas points.
func (ctx *Context) CanvasLine(a, b tangent.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(ctx.Dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// Line draws a world-space segment.
func (ctx *Context) Line(a, b tangent.Vec2, clr color.Color) {
	ctx.CanvasLine(ctx.VP.WorldToCanvas(a), ctx.VP.WorldToCanvas(b), lineWidth, clr)
}

// ThinLine draws a world-space segment one pixel wide.
func (ctx *Context) ThinLine(a, b tangent.Vec2, clr color.Color) {
	ctx.CanvasLine(ctx.VP.WorldToCanvas(a), ctx.VP.WorldToCanvas(b), thinWidth, clr)
}

// Arrow draws a world-space segment with a head at to.
func (ctx *Context) Arrow(from, to tangent.Vec2, clr color.Color) {
	ctx.Line(from, to, clr)
	dir := to.Sub(from)
	if dir.Length() < 1e-9 {
		return
	}
	dir = dir.Normalize()
	base := to.Sub(dir.Scale(arrowHead))
	side := dir.Perp().Scale(arrowHead * 0.5)
	ctx.Line(to, base.Add(side), clr)
	ctx.Line(to, base.Sub(side), clr)
}

// Handle draws a draggable point, highlighted while the pointer is over it.
func (ctx *Context) Handle(p tangent.Vec2) {
	c := ctx.VP.WorldToCanvas(p)
	r := float32(handleRadius)
	if ctx.HitHandle(p) {
		r += 2
	}
	vector.DrawFilledCircle(ctx.Dst, float32(c.X), float32(c.Y), r, colHandle, true)
}

// Dot draws a filled circle with a radius in canvas pixels at a world point.
func (ctx *Context) Dot(p tangent.Vec2, radius float32, clr color.Color) {
	c := ctx.VP.WorldToCanvas(p)
	vector.DrawFilledCircle(ctx.Dst, float32(c.X), float32(c.Y), radius, clr, true)
}

// Circle draws a stroked circle with a world-space radius.
func (ctx *Context) Circle(center tangent.Vec2, radius float64, clr color.Color) {
	const steps = 48
	prev := center.Add(tangent.Vec2{X: radius})
	for i := 1; i <= steps; i++ {
		a := float64(i) / steps * 2 * math.Pi
		p := center.Add(tangent.Vec2{X: math.Cos(a) * radius, Y: math.Sin(a) * radius})
		ctx.ThinLine(prev, p, clr)
		prev = p
	}
}

// CrossMarker draws a small x at a world point.
func (ctx *Context) CrossMarker(p tangent.Vec2, clr color.Color) {
	d := tangent.Vec2{X: markerSize, Y: markerSize}
	ctx.ThinLine(p.Sub(d), p.Add(d), clr)
	ctx.ThinLine(p.Add(tangent.Vec2{X: -markerSize, Y: markerSize}), p.Add(tangent.Vec2{X: markerSize, Y: -markerSize}), clr)
}

// Grid draws grid lines across the world square at the given spacing, with
// the two axes on top.
func (ctx *Context) Grid(step float64) {
	for v := -1.0; v <= 1.0+1e-9; v += step {
		ctx.ThinLine(tangent.Vec2{X: v, Y: -1}, tangent.Vec2{X: v, Y: 1}, colGrid)
		ctx.ThinLine(tangent.Vec2{X: -1, Y: v}, tangent.Vec2{X: 1, Y: v}, colGrid)
	}
	ctx.ThinLine(tangent.Vec2{X: -1}, tangent.Vec2{X: 1}, colAxis)
	ctx.ThinLine(tangent.Vec2{Y: -1}, tangent.Vec2{Y: 1}, colAxis)
}

// Label prints text next to a world point.
func (ctx *Context) Label(text string, at tangent.Vec2) {
	c := ctx.VP.WorldToCanvas(at)
	ebitenutil.DebugPrintAt(ctx.Dst, text, int(c.X)+8, int(c.Y)-8)
}

// CanvasLabel prints text at a canvas position.
func (ctx *Context) CanvasLabel(text string, x, y int) {
	ebitenutil.DebugPrintAt(ctx.Dst, text, x, y)
}

// Segment3D projects a world-space segment through the camera and draws the
// visible part: both ends transform to clip space, the near plane clips the
// segment, and endpoints outside the depth range reject it.
func (ctx *Context) Segment3D(a, b tangent.Vec3, clr color.Color) {
	ctx.StrokeSegment3D(a, b, lineWidth, clr)
}

// StrokeSegment3D is Segment3D with an explicit stroke width.
func (ctx *Context) StrokeSegment3D(a, b tangent.Vec3, width float32, clr color.Color) {
	ca := ctx.Cam.WorldToClip(a)
	cb := ctx.Cam.WorldToClip(b)
	behind := ca.Dot(tangent.NearPlane) < 0 || cb.Dot(tangent.NearPlane) < 0
	if !tangent.ClipSegment(&ca, &cb, tangent.NearPlane) {
		if ctx.Stats != nil {
			ctx.Stats.SegmentsCulled++
		}
		return
	}

	pa := ctx.Cam.ClipToCanvas(ca, ctx.VP)
	pb := ctx.Cam.ClipToCanvas(cb, ctx.VP)
	// Allow rounding at the clipped boundary.
	const slack = 1e-9
	if pa.Z < -1-slack || pa.Z > 1+slack || pb.Z < -1-slack || pb.Z > 1+slack {
		if ctx.Stats != nil {
			ctx.Stats.SegmentsCulled++
		}
		return
	}

	if ctx.Stats != nil {
		ctx.Stats.SegmentsDrawn++
		if behind {
			ctx.Stats.SegmentsClipped++
		}
	}
	vector.StrokeLine(ctx.Dst, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), width, clr, true)
}

// cubeCorners returns the corners of an axis-aligned cube with the given
// half extent. Bit i&1 selects x, i&2 y, i&4 z.
func cubeCorners(half float64) [8]tangent.Vec3 {
	var out [8]tangent.Vec3
	for i := 0; i < 8; i++ {
		out[i] = tangent.Vec3{
			X: half * (float64(i&1)*2 - 1),
			Y: half * (float64(i>>1&1)*2 - 1),
			Z: half * (float64(i>>2&1)*2 - 1),
		}
	}
	return out
}

// cubeEdgePairs indexes the 12 edges of cubeCorners.
var cubeEdgePairs = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// WireCube draws an origin-centered wireframe cube with the given half
// extent.
func (ctx *Context) WireCube(half float64) {
	corners := cubeCorners(half)
	for _, e := range cubeEdgePairs {
		ctx.Segment3D(corners[e[0]], corners[e[1]], colAccentA)
	}
}

// GroundGrid draws a reference grid on the y = height plane so 3D scenes
// have a horizon to orbit against.
func (ctx *Context) GroundGrid(extent, step, height float64) {
	for v := -extent; v <= extent+1e-9; v += step {
		ctx.StrokeSegment3D(tangent.Vec3{X: v, Y: height, Z: -extent}, tangent.Vec3{X: v, Y: height, Z: extent}, thinWidth, colGrid)
		ctx.StrokeSegment3D(tangent.Vec3{X: -extent, Y: height, Z: v}, tangent.Vec3{X: extent, Y: height, Z: v}, thinWidth, colGrid)
	}
}

// Axes3D draws the three world axes from the origin.
func (ctx *Context) Axes3D(length float64) {
	ctx.Segment3D(tangent.Vec3{}, tangent.Vec3{X: length}, colorful.Hsv(5, 0.75, 0.90))
	ctx.Segment3D(tangent.Vec3{}, tangent.Vec3{Y: length}, colorful.Hsv(130, 0.70, 0.85))
	ctx.Segment3D(tangent.Vec3{}, tangent.Vec3{Z: length}, colorful.Hsv(215, 0.75, 0.95))
}
