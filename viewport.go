package tangent

// Viewport2D is the square drawing region the 2D world maps onto: a centered
// square of side min(canvas width, canvas height). World space is the square
// [-1, 1] x [-1, 1] with +Y up; canvas space has its origin at the top-left
// with +Y down. Recompute the viewport from the canvas size every frame with
// FitViewport.
type Viewport2D struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// FitViewport returns the centered square viewport for a canvas of the given
// pixel size. Width and Height are always equal; the offsets center the
// square along the canvas's longer axis.
func FitViewport(canvasWidth, canvasHeight int) Viewport2D {
	w := float64(canvasWidth)
	h := float64(canvasHeight)
	side := w
	if h < side {
		side = h
	}
	return Viewport2D{
		Width:   side,
		Height:  side,
		OffsetX: (w - side) / 2,
		OffsetY: (h - side) / 2,
	}
}

// WorldToCanvas maps a world-space point in [-1, 1]^2 to canvas pixels.
// The Y axis flips: world +Y is up, canvas +Y is down. Points outside the
// world square map proportionally outside the viewport.
func (vp Viewport2D) WorldToCanvas(v Vec2) Vec2 {
	return Vec2{
		X: (v.X*0.5+0.5)*vp.Width + vp.OffsetX,
		Y: (-v.Y*0.5+0.5)*vp.Height + vp.OffsetY,
	}
}

// CanvasToWorld maps a canvas-pixel point back to world space. It is the
// exact algebraic inverse of WorldToCanvas, so converting a point there and
// back reproduces it to within floating-point rounding.
func (vp Viewport2D) CanvasToWorld(v Vec2) Vec2 {
	return Vec2{
		X: (v.X-vp.OffsetX)/vp.Width*2 - 1,
		Y: 1 - (v.Y-vp.OffsetY)/vp.Height*2,
	}
}

// Contains reports whether the canvas-pixel point p lies inside the viewport
// square. Points on the edge are considered inside.
func (vp Viewport2D) Contains(p Vec2) bool {
	return p.X >= vp.OffsetX && p.X <= vp.OffsetX+vp.Width &&
		p.Y >= vp.OffsetY && p.Y <= vp.OffsetY+vp.Height
}
