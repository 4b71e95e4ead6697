package tangent

import (
	"math"
	"testing"
)

func mat4ApproxEqual(a, b Mat4, eps float64) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestMat4IdentityMul(t *testing.T) {
	m := LookAt(Vec3{2, 3, 5}, Vec3{}, Vec3{Y: 1})
	if got := Mat4Identity().Mul(m); got != m {
		t.Errorf("I*M != M")
	}
	if got := m.Mul(Mat4Identity()); got != m {
		t.Errorf("M*I != M")
	}
}

func TestMat4MulVec4Identity(t *testing.T) {
	v := Vec4{1, -2, 3, 1}
	if got := Mat4Identity().MulVec4(v); got != v {
		t.Errorf("I*v = %v, want %v", got, v)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{2, 3, 5}
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := view.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	if !approxEqual(got.X, 0, epsilon) || !approxEqual(got.Y, 0, epsilon) || !approxEqual(got.Z, 0, epsilon) {
		t.Errorf("view*eye = %v, want origin", got)
	}
}

func TestLookAtForwardDepth(t *testing.T) {
	// Eye on +Z looking at the origin: the origin sits 5 units ahead,
	// which is -5 in view space.
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{Y: 1})
	got := view.MulVec4(Vec4{0, 0, 0, 1})
	if !approxEqual(got.X, 0, epsilon) || !approxEqual(got.Y, 0, epsilon) || !approxEqual(got.Z, -5, epsilon) {
		t.Errorf("view*origin = %v, want {0 0 -5 1}", got)
	}
}

func TestPerspectiveFiniteDepthRange(t *testing.T) {
	near, far := 0.1, 100.0
	proj := Perspective(60, 1, near, far)

	a := proj.MulVec4(Vec4{0, 0, -near, 1})
	if got := a.Z / a.W; !approxEqual(got, -1, 1e-9) {
		t.Errorf("near plane ndc z = %v, want -1", got)
	}
	b := proj.MulVec4(Vec4{0, 0, -far, 1})
	if got := b.Z / b.W; !approxEqual(got, 1, 1e-9) {
		t.Errorf("far plane ndc z = %v, want 1", got)
	}
}

func TestPerspectiveInfiniteFar(t *testing.T) {
	near := 0.1
	proj := Perspective(60, 1, near, math.Inf(1))
	for i, v := range proj {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("entry %d is %v with infinite far", i, v)
		}
	}

	a := proj.MulVec4(Vec4{0, 0, -near, 1})
	if got := a.Z / a.W; !approxEqual(got, -1, 1e-9) {
		t.Errorf("near plane ndc z = %v, want -1", got)
	}
	// Depth approaches but never reaches 1 for very distant points.
	b := proj.MulVec4(Vec4{0, 0, -1e9, 1})
	if got := b.Z / b.W; got >= 1 || got < 0.999 {
		t.Errorf("distant ndc z = %v, want just below 1", got)
	}
}

func TestPerspectiveNearPlaneDot(t *testing.T) {
	// A view-space point on the near plane lands exactly on the
	// homogeneous clip plane z+w=0.
	proj := Perspective(60, 1.5, 0.1, math.Inf(1))
	clip := proj.MulVec4(Vec4{0.3, -0.2, -0.1, 1})
	if got := clip.Dot(NearPlane); !approxEqual(got, 0, 1e-9) {
		t.Errorf("near plane dot = %v, want 0", got)
	}
}

func TestMat4Inverse(t *testing.T) {
	view := LookAt(Vec3{2, 3, 5}, Vec3{}, Vec3{Y: 1})
	proj := Perspective(60, 1.5, 0.1, 100)
	m := proj.Mul(view)
	if got := m.Mul(m.Inverse()); !mat4ApproxEqual(got, Mat4Identity(), 1e-6) {
		t.Errorf("M*inv(M) = %v, want identity", got)
	}
	if got := Mat4Identity().Inverse(); !mat4ApproxEqual(got, Mat4Identity(), epsilon) {
		t.Errorf("inv(I) = %v, want identity", got)
	}
}

func TestMat4InverseSingular(t *testing.T) {
	var zero Mat4
	if got := zero.Inverse(); got != Mat4Identity() {
		t.Errorf("inv(singular) = %v, want identity fallback", got)
	}
}

func TestMat4TransformPoint(t *testing.T) {
	p := Vec3{1, -2, 3}
	if got := Mat4Identity().TransformPoint(p); got != p {
		t.Errorf("identity TransformPoint = %v, want %v", got, p)
	}
	// A matrix that doubles w halves the carried point.
	m := Mat4Identity()
	m[15] = 2
	if got := m.TransformPoint(p); !approxEqual(got.X, 0.5, epsilon) || !approxEqual(got.Y, -1, epsilon) || !approxEqual(got.Z, 1.5, epsilon) {
		t.Errorf("TransformPoint with w=2 = %v, want {0.5 -1 1.5}", got)
	}
}

func TestClipFromWorldComposition(t *testing.T) {
	// Multiplying projection by view must match transforming in two steps.
	view := LookAt(Vec3{1, 2, 4}, Vec3{}, Vec3{Y: 1})
	proj := Perspective(45, 1.2, 0.1, math.Inf(1))
	world := Vec4{0.5, -0.5, 0.25, 1}

	combined := proj.Mul(view).MulVec4(world)
	stepped := proj.MulVec4(view.MulVec4(world))
	if !approxEqual(combined.X, stepped.X, epsilon) ||
		!approxEqual(combined.Y, stepped.Y, epsilon) ||
		!approxEqual(combined.Z, stepped.Z, epsilon) ||
		!approxEqual(combined.W, stepped.W, epsilon) {
		t.Errorf("composed = %v, stepped = %v", combined, stepped)
	}
}
