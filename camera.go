package tangent

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NearPlaneDistance is the fixed near plane of the perspective projection.
const NearPlaneDistance = 0.1

// MinCameraDistance is the closest orbit radius. Distance is clamped to stay
// at or below its negation so the camera never reaches the origin.
const MinCameraDistance = 1.0

// polarLimit keeps Longitude away from the poles, where the look-at basis
// would become parallel to the up vector.
const polarLimit = 0.05

// flightAnim holds active fly-to tweens for the three orbit parameters.
type flightAnim struct {
	tweenLat  *gween.Tween
	tweenLon  *gween.Tween
	tweenDist *gween.Tween
	doneLat   bool
	doneLon   bool
	doneDist  bool
}

// Camera is the spherical-coordinate orbit camera for the 3D pipeline. It
// always looks at the world origin with up (0, 1, 0). Latitude is the
// azimuth around the Y axis and Longitude the polar angle from it, both in
// radians; Distance is the signed orbit radius and stays negative (the eye
// sits behind the origin along the view direction).
//
// Mutate the exported fields freely between frames; BeginFrame clamps them
// into range and refreshes the cached matrices. There is no error path: out
// of range parameters are clamped, never rejected, so every frame renders.
type Camera struct {
	Latitude  float64
	Longitude float64
	// Distance is kept <= -MinCameraDistance by BeginFrame.
	Distance float64
	// FOVYDegrees is the vertical field of view.
	FOVYDegrees float64
	// Aspect is width over height. BeginFrame derives it from the canvas;
	// set it directly (and call Rebuild) to configure a camera that does
	// not render to a canvas of its own.
	Aspect float64
	// Far is the far plane distance. math.Inf(1) selects the infinite-far
	// projection and is the default.
	Far float64

	view          Mat4
	projection    Mat4
	clipFromWorld Mat4
	dirty         bool
	built         [6]float64 // parameters the cached matrices were built from

	flight *flightAnim
}

// NewCamera returns a camera with the default orbit pose: pulled back along
// a three-quarter view with an infinite far plane.
func NewCamera() *Camera {
	return &Camera{
		Latitude:    0.6,
		Longitude:   1.1,
		Distance:    -6,
		FOVYDegrees: 60,
		Aspect:      1,
		Far:         math.Inf(1),
		dirty:       true,
	}
}

// clamp forces every parameter into its renderable range.
func (c *Camera) clamp() {
	if c.Distance > -MinCameraDistance {
		c.Distance = -MinCameraDistance
	}
	c.Longitude = Clamp(c.Longitude, polarLimit, math.Pi-polarLimit)
	c.FOVYDegrees = Clamp(c.FOVYDegrees, 1, 179)
	if !math.IsInf(c.Far, 1) && c.Far <= NearPlaneDistance {
		c.Far = math.Inf(1)
	}
}

// BeginFrame clamps the camera parameters, derives the aspect ratio from the
// canvas size, and refreshes the cached view, projection, and
// clip-from-world matrices. Call once per frame after input handling and
// before any WorldToClip conversions.
func (c *Camera) BeginFrame(canvasWidth, canvasHeight int) {
	if canvasHeight > 0 {
		c.Aspect = float64(canvasWidth) / float64(canvasHeight)
	}
	c.Rebuild()
}

// Rebuild clamps parameters and recomputes the cached matrices if any
// parameter changed since the last rebuild. Conversions call this themselves,
// so an explicit call is only needed to control when the work happens.
func (c *Camera) Rebuild() {
	c.clamp()
	params := [6]float64{c.Latitude, c.Longitude, c.Distance, c.FOVYDegrees, c.Aspect, c.Far}
	if !c.dirty && params == c.built {
		return
	}
	c.dirty = false
	c.built = params

	c.projection = Perspective(c.FOVYDegrees, c.Aspect, NearPlaneDistance, c.Far)
	c.view = LookAt(c.Eye(), Vec3{}, Vec3{Y: 1})
	c.clipFromWorld = c.projection.Mul(c.view)
}

// MarkDirty forces the next Rebuild to recompute the matrices.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Eye returns the camera position in world space, on the orbit sphere given
// by the current latitude, longitude, and distance.
func (c *Camera) Eye() Vec3 {
	sinLon := math.Sin(c.Longitude)
	dir := Vec3{
		X: sinLon * math.Sin(c.Latitude),
		Y: math.Cos(c.Longitude),
		Z: sinLon * math.Cos(c.Latitude),
	}
	return dir.Scale(c.Distance)
}

// WorldToClip homogenizes the world-space point v and multiplies it through
// the clip-from-world matrix. Run segments through ClipSegment with NearPlane
// before dividing.
func (c *Camera) WorldToClip(v Vec3) Vec4 {
	c.Rebuild()
	return c.clipFromWorld.MulVec4(Vec4{v.X, v.Y, v.Z, 1})
}

// ClipToCanvas perspective-divides the clip-space point and maps the
// resulting NDC x and y into canvas pixels through vp, with the same Y flip
// as the 2D mapping. Z carries the NDC depth through unchanged: callers
// reject points whose Z falls outside [-1, 1] as behind the camera or beyond
// the far plane.
func (c *Camera) ClipToCanvas(clip Vec4, vp Viewport2D) Vec3 {
	ndc := clip.PerspDiv()
	p := vp.WorldToCanvas(Vec2{ndc.X, ndc.Y})
	return Vec3{X: p.X, Y: p.Y, Z: ndc.Z}
}

// ViewMatrix returns the current view matrix, rebuilding if needed.
func (c *Camera) ViewMatrix() Mat4 {
	c.Rebuild()
	return c.view
}

// ProjectionMatrix returns the current projection matrix, rebuilding if
// needed.
func (c *Camera) ProjectionMatrix() Mat4 {
	c.Rebuild()
	return c.projection
}

// ClipFromWorld returns projection * view, rebuilding if needed. Its inverse
// unprojects NDC corners back into world space.
func (c *Camera) ClipFromWorld() Mat4 {
	c.Rebuild()
	return c.clipFromWorld
}

// FlyTo animates latitude, longitude, and distance to the given pose over
// duration seconds. Any flight already in progress is replaced. The tweens
// advance in Update.
func (c *Camera) FlyTo(latitude, longitude, distance float64, duration float32, easeFn ease.TweenFunc) {
	c.flight = &flightAnim{
		tweenLat:  gween.New(float32(c.Latitude), float32(latitude), duration, easeFn),
		tweenLon:  gween.New(float32(c.Longitude), float32(longitude), duration, easeFn),
		tweenDist: gween.New(float32(c.Distance), float32(distance), duration, easeFn),
	}
}

// Flying reports whether a FlyTo animation is in progress.
func (c *Camera) Flying() bool {
	return c.flight != nil
}

// StopFlight cancels any in-progress FlyTo, leaving the camera where it is.
// Hosts call this when a user drag takes over from an animation.
func (c *Camera) StopFlight() {
	c.flight = nil
}

// Update advances any active flight by dt seconds. Call once per frame
// before BeginFrame.
func (c *Camera) Update(dt float64) {
	if c.flight == nil {
		return
	}
	f := c.flight
	step := float32(dt)
	if !f.doneLat {
		val, done := f.tweenLat.Update(step)
		c.Latitude = float64(val)
		f.doneLat = done
	}
	if !f.doneLon {
		val, done := f.tweenLon.Update(step)
		c.Longitude = float64(val)
		f.doneLon = done
	}
	if !f.doneDist {
		val, done := f.tweenDist.Update(step)
		c.Distance = float64(val)
		f.doneDist = done
	}
	if f.doneLat && f.doneLon && f.doneDist {
		c.flight = nil
	}
}
