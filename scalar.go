package tangent

import "math"

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns the fraction at which v sits between a and b.
// Returns 0 when the span is empty.
func InverseLerp(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate(v float64) float64 {
	return Clamp(v, 0, 1)
}

// PointSegmentDistance returns the distance from p to the segment a0-a1.
// The projection of p onto the segment's line is clamped to the segment, so
// points past either end measure to the nearest endpoint.
func PointSegmentDistance(a0, a1, p Vec2) float64 {
	seg := a1.Sub(a0)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return p.Sub(a0).Length()
	}
	t := Saturate(p.Sub(a0).Dot(seg) / lenSq)
	closest := a0.Add(seg.Scale(t))
	return p.Sub(closest).Length()
}

// NoIntersection is the sentinel returned by RaySegmentParameter when the
// ray misses the segment. Callers test for a negative result, never for NaN.
const NoIntersection = -1.0

// intersectTolerance pads the parallel test and the segment-parameter bounds
// so near-degenerate crossings report a miss instead of an unstable
// parameter.
const intersectTolerance = 0.01

// RaySegmentParameter intersects the ray from b0 through b1 with the segment
// a0-a1 and returns the parameter along the ray (0 at b0, 1 at b1). It
// returns NoIntersection when the two are near parallel or the crossing
// falls outside the segment. A result may still be negative when the
// crossing lies behind b0; callers treat any negative value as a miss.
func RaySegmentParameter(a0, a1, b0, b1 Vec2) float64 {
	segDir := a1.Sub(a0)
	rayDir := b1.Sub(b0)
	denom := segDir.Cross(rayDir)
	if math.Abs(denom) < intersectTolerance {
		return NoIntersection
	}
	diff := b0.Sub(a0)
	s := diff.Cross(rayDir) / denom
	if s < -intersectTolerance || s > 1+intersectTolerance {
		return NoIntersection
	}
	return diff.Cross(segDir) / denom
}
