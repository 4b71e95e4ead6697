package tangent

// NearPlane is the near clip plane as a homogeneous 4-vector. A clip-space
// point p is on the visible side when p.Dot(NearPlane) >= 0, which for the
// perspective projections built here means NDC z >= -1.
var NearPlane = Vec4{0, 0, 1, 1}

// ClipSegment clips the segment from a to b, both in homogeneous clip space,
// against a plane given in the same 4-vector form. It reports false when the
// segment lies entirely behind the plane; otherwise it reports true after
// truncating the segment in place, moving whichever endpoint was behind the
// plane onto it. Endpoints are left untouched when no part is behind.
//
// Equal signed distances on both ends skip the truncation step entirely,
// which keeps the interpolation well defined when a segment lies within the
// plane.
func ClipSegment(a, b *Vec4, plane Vec4) bool {
	dotA := a.Dot(plane)
	dotB := b.Dot(plane)

	if dotA < 0 && dotB < 0 {
		return false
	}
	if dotA == dotB {
		return true
	}

	t := dotA / (dotA - dotB)
	if dotA < 0 {
		*a = a.Lerp(*b, t)
	} else if dotB < 0 {
		*b = a.Lerp(*b, t)
	}
	return true
}
