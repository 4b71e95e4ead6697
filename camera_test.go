package tangent

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()
	if cam.Distance != -6 {
		t.Errorf("Distance = %v, want -6", cam.Distance)
	}
	if cam.FOVYDegrees != 60 {
		t.Errorf("FOVYDegrees = %v, want 60", cam.FOVYDegrees)
	}
	if !math.IsInf(cam.Far, 1) {
		t.Errorf("Far = %v, want +Inf", cam.Far)
	}
	if cam.Flying() {
		t.Error("new camera should not be flying")
	}
}

func TestCameraDistanceClamp(t *testing.T) {
	cam := NewCamera()
	cam.Distance = -0.2
	cam.Rebuild()
	if cam.Distance != -MinCameraDistance {
		t.Errorf("Distance = %v, want %v", cam.Distance, -MinCameraDistance)
	}

	// Positive distances would flip past the origin; clamped the same way.
	cam.Distance = 3
	cam.Rebuild()
	if cam.Distance != -MinCameraDistance {
		t.Errorf("Distance = %v, want %v", cam.Distance, -MinCameraDistance)
	}
}

func TestCameraPolarClamp(t *testing.T) {
	cam := NewCamera()
	cam.Longitude = 0
	cam.Rebuild()
	if cam.Longitude != polarLimit {
		t.Errorf("Longitude = %v, want %v", cam.Longitude, polarLimit)
	}
	cam.Longitude = math.Pi
	cam.Rebuild()
	if !approxEqual(cam.Longitude, math.Pi-polarLimit, epsilon) {
		t.Errorf("Longitude = %v, want %v", cam.Longitude, math.Pi-polarLimit)
	}
}

func TestCameraFarClamp(t *testing.T) {
	cam := NewCamera()
	cam.Far = 0.05
	cam.Rebuild()
	if !math.IsInf(cam.Far, 1) {
		t.Errorf("Far = %v, want +Inf after clamping below near", cam.Far)
	}
	cam.Far = 50
	cam.Rebuild()
	if cam.Far != 50 {
		t.Errorf("Far = %v, want 50", cam.Far)
	}
}

func TestCameraEye(t *testing.T) {
	cam := NewCamera()
	cam.Latitude = 0
	cam.Longitude = math.Pi / 2
	cam.Distance = -6
	eye := cam.Eye()
	if !approxEqual(eye.X, 0, epsilon) || !approxEqual(eye.Y, 0, epsilon) || !approxEqual(eye.Z, -6, epsilon) {
		t.Errorf("Eye = %v, want {0 0 -6}", eye)
	}
}

func TestCameraOrbitRadius(t *testing.T) {
	cam := NewCamera()
	if got := cam.Eye().Length(); !approxEqual(got, 6, epsilon) {
		t.Errorf("orbit radius = %v, want 6", got)
	}
	cam.Latitude = 2.4
	cam.Longitude = 0.3
	if got := cam.Eye().Length(); !approxEqual(got, 6, epsilon) {
		t.Errorf("orbit radius after rotation = %v, want 6", got)
	}
}

func TestCameraOriginProjectsToCenter(t *testing.T) {
	cam := NewCamera()
	cam.BeginFrame(800, 600)
	vp := FitViewport(800, 600)

	clip := cam.WorldToClip(Vec3{})
	p := cam.ClipToCanvas(clip, vp)
	if !approxEqual(p.X, 400, 1e-6) || !approxEqual(p.Y, 300, 1e-6) {
		t.Errorf("origin projects to (%v, %v), want (400, 300)", p.X, p.Y)
	}
	if p.Z < -1 || p.Z > 1 {
		t.Errorf("origin depth = %v, want inside [-1, 1]", p.Z)
	}
}

func TestCameraPointBehindEye(t *testing.T) {
	cam := NewCamera()
	cam.BeginFrame(800, 600)
	vp := FitViewport(800, 600)

	// Twice the eye position sits behind the camera.
	behind := cam.Eye().Scale(2)
	clip := cam.WorldToClip(behind)
	if got := clip.Dot(NearPlane); got >= 0 {
		t.Errorf("behind-eye near dot = %v, want negative", got)
	}
	if z := cam.ClipToCanvas(clip, vp).Z; z >= -1 && z <= 1 {
		t.Errorf("behind-eye depth = %v, want outside [-1, 1]", z)
	}
}

func TestCameraDepthOrdering(t *testing.T) {
	cam := NewCamera()
	cam.BeginFrame(800, 600)
	vp := FitViewport(800, 600)

	// One unit from the origin toward the eye is nearer than the origin.
	toEye := cam.Eye().Normalize()
	nearZ := cam.ClipToCanvas(cam.WorldToClip(toEye), vp).Z
	farZ := cam.ClipToCanvas(cam.WorldToClip(Vec3{}), vp).Z
	if nearZ >= farZ {
		t.Errorf("near depth %v not below far depth %v", nearZ, farZ)
	}
}

func TestCameraAspectFromCanvas(t *testing.T) {
	cam := NewCamera()
	cam.BeginFrame(800, 400)
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect)
	}
	// Degenerate canvas keeps the previous aspect.
	cam.BeginFrame(100, 0)
	if cam.Aspect != 2 {
		t.Errorf("Aspect after zero-height canvas = %v, want 2", cam.Aspect)
	}
}

func TestCameraMatrixCache(t *testing.T) {
	cam := NewCamera()
	cam.BeginFrame(640, 480)
	first := cam.ClipFromWorld()
	if got := cam.ClipFromWorld(); got != first {
		t.Error("unchanged parameters rebuilt a different matrix")
	}
	cam.Latitude += 0.3
	if got := cam.ClipFromWorld(); got == first {
		t.Error("latitude change did not refresh the matrix")
	}
}

func TestCameraFlyTo(t *testing.T) {
	cam := NewCamera()
	cam.FlyTo(1.0, 1.4, -8, 0.5, ease.Linear)
	if !cam.Flying() {
		t.Fatal("FlyTo did not start a flight")
	}
	for i := 0; i < 60; i++ {
		cam.Update(1.0 / 60.0)
	}
	if cam.Flying() {
		t.Error("flight still active after full duration")
	}
	if !approxEqual(cam.Latitude, 1.0, 1e-3) {
		t.Errorf("Latitude = %v, want 1.0", cam.Latitude)
	}
	if !approxEqual(cam.Longitude, 1.4, 1e-3) {
		t.Errorf("Longitude = %v, want 1.4", cam.Longitude)
	}
	if !approxEqual(cam.Distance, -8, 1e-3) {
		t.Errorf("Distance = %v, want -8", cam.Distance)
	}
}

func TestCameraFlyToReplacesFlight(t *testing.T) {
	cam := NewCamera()
	cam.FlyTo(1.0, 1.4, -8, 1.0, ease.Linear)
	cam.Update(0.1)
	cam.FlyTo(0.2, 0.9, -4, 0.2, ease.OutQuad)
	for i := 0; i < 30; i++ {
		cam.Update(1.0 / 60.0)
	}
	if cam.Flying() {
		t.Error("replacement flight still active")
	}
	if !approxEqual(cam.Distance, -4, 1e-3) {
		t.Errorf("Distance = %v, want -4 from the replacement flight", cam.Distance)
	}
}

func TestCameraStopFlight(t *testing.T) {
	cam := NewCamera()
	cam.FlyTo(2.0, 1.4, -10, 1.0, ease.Linear)
	cam.Update(0.25)
	mid := cam.Latitude

	cam.StopFlight()
	if cam.Flying() {
		t.Fatal("StopFlight left the flight active")
	}

	// Further updates must not move the camera.
	cam.Update(0.5)
	if cam.Latitude != mid {
		t.Errorf("Latitude = %v, want %v after the flight stopped", cam.Latitude, mid)
	}
}
