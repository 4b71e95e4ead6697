// Package scenes holds the interactive demos that ship with tangent: each
// scene owns a handful of draggable values, advances them from one frame of
// pointer input, and draws itself through the geometric pipeline in the root
// package. Scenes never read the mouse directly; the host samples input once
// per frame and hands every scene the same Context.
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tangent"
)

// Scene is one interactive demo. Step advances the scene's values from this
// frame's input (Context.Dst is nil there); Draw renders them. State returns
// a pointer to the scene's serializable values for snapshots, or nil for a
// scene with nothing worth saving.
type Scene interface {
	Name() string
	Step(ctx *Context)
	Draw(ctx *Context)
	State() any
}

// Context carries the per-frame data every scene works from: the input
// sample, the fitted viewport, the shared orbit camera, and during Draw the
// destination image. One Context value is built per frame and passed to Step
// and Draw in turn, so hit-testing, dragging, and drawing all see the same
// pointer.
type Context struct {
	In  tangent.FrameInput
	VP  tangent.Viewport2D
	Cam *tangent.Camera
	// Dst is the frame's render target. It is nil during Step.
	Dst *ebiten.Image
	// Stats collects pipeline counters when non-nil.
	Stats *tangent.FrameStats
}

// PointerWorld returns the pointer position in 2D world coordinates.
func (ctx *Context) PointerWorld() tangent.Vec2 {
	return ctx.VP.CanvasToWorld(ctx.In.Pointer)
}

// grabRadius is the handle hit distance in canvas pixels.
const grabRadius = 12.0

// HitHandle reports whether the pointer is over a handle at the given world
// position. The test runs in canvas pixels so handles feel the same size at
// every window size.
func (ctx *Context) HitHandle(world tangent.Vec2) bool {
	return ctx.VP.WorldToCanvas(world).Sub(ctx.In.Pointer).Length() <= grabRadius
}

// --- Orbit control ---

const (
	// orbitSpeed converts dragged canvas pixels to orbit radians.
	orbitSpeed = 0.01
	// zoomSpeed converts wheel ticks to orbit distance.
	zoomSpeed = 0.4
)

// OrbitControl drives the shared camera from the pointer: dragging inside
// the viewport orbits latitude and longitude, the wheel zooms distance. The
// pose is dragged as a 2D value, so the session mechanics are the same as
// the scenes' handle drags. The zero value is ready to use.
type OrbitControl struct {
	drag tangent.Dragger
	pose tangent.Vec2 // X latitude, Y longitude while dragging
}

// Step applies this frame's input to the camera. It reports whether an orbit
// drag is in progress so scenes can skip their own hit tests.
func (oc *OrbitControl) Step(ctx *Context) bool {
	cam := ctx.Cam
	in := ctx.In

	if in.Wheel != 0 {
		cam.Distance += in.Wheel * zoomSpeed
	}

	// Canvas pixels scaled to radians make the pose a plain position drag.
	scaled := tangent.Vec2{X: in.Pointer.X * orbitSpeed, Y: in.Pointer.Y * orbitSpeed}
	if oc.drag.Active() {
		oc.drag.Update(scaled, in.Buttons)
		cam.Latitude = oc.pose.X
		cam.Longitude = oc.pose.Y
		return oc.drag.Active()
	}
	if in.Buttons&tangent.ButtonLeft != 0 && ctx.VP.Contains(in.Pointer) {
		oc.pose = tangent.Vec2{X: cam.Latitude, Y: cam.Longitude}
		oc.drag.Begin(tangent.NewPositionDrag(&oc.pose, scaled, in.Buttons))
	}
	return oc.drag.Active()
}

// Dragging reports whether an orbit drag is in progress.
func (oc *OrbitControl) Dragging() bool {
	return oc.drag.Active()
}
