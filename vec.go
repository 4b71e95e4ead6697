package tangent

import "math"

// normalizeEpsilon is the squared-length floor below which a vector is
// treated as zero rather than normalized.
const normalizeEpsilon = 1e-12

// Vec2 is a 2D vector used for world positions, directions, and canvas
// coordinates throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product, the Z component of v x o.
// Positive when o lies counterclockwise of v.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// the zero vector instead of producing NaN components.
func (v Vec2) Normalize() Vec2 {
	lsq := v.X*v.X + v.Y*v.Y
	if lsq < normalizeEpsilon {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{v.X / l, v.Y / l}
}

// Lerp linearly interpolates between v and o by t. t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Perp returns v rotated 90 degrees counterclockwise: (-y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate returns v rotated counterclockwise by the angle whose sine and
// cosine are given. Passing a raw cross/dot pair of two unit vectors rotates
// by the angle between them.
func (v Vec2) Rotate(sin, cos float64) Vec2 {
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Vec3 is a 3D vector used for world-space positions and directions in the
// perspective pipeline.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector for
// degenerate input.
func (v Vec3) Normalize() Vec3 {
	lsq := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if lsq < normalizeEpsilon {
		return Vec3{}
	}
	l := math.Sqrt(lsq)
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Lerp linearly interpolates between v and o by t. t is not clamped.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Vec4 is a homogeneous 4D vector. Clip-space positions live here between
// projection and the perspective divide.
type Vec4 struct {
	X, Y, Z, W float64
}

// Dot returns the 4-component dot product of v and o. Dotting a clip-space
// point against a plane 4-vector yields its signed distance in homogeneous
// form, which is what the segment clipper tests.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Lerp linearly interpolates between v and o by t across all four
// components. t is not clamped.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
		v.W + (o.W-v.W)*t,
	}
}

// PerspDiv divides the X, Y, Z components by W, producing normalized device
// coordinates for a clip-space point. A W of zero returns the components
// undivided so a degenerate point cannot poison later math with NaN.
func (v Vec4) PerspDiv() Vec3 {
	if math.Abs(v.W) < normalizeEpsilon {
		return Vec3{v.X, v.Y, v.Z}
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}
