package scenes

import (
	"encoding/json"
	"math"

	"github.com/phanxgames/tangent"
)

type frustumState struct {
	FOV float64
	Far float64
}

// frustumStateJSON is the wire form of frustumState. JSON has no +Inf, so a
// far value of 0 stands for the infinite far plane.
type frustumStateJSON struct {
	FOV float64 `json:"fov"`
	Far float64 `json:"far"`
}

func (st frustumState) MarshalJSON() ([]byte, error) {
	out := frustumStateJSON{FOV: st.FOV, Far: st.Far}
	if math.IsInf(st.Far, 1) {
		out.Far = 0
	}
	return json.Marshal(out)
}

func (st *frustumState) UnmarshalJSON(data []byte) error {
	var in frustumStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	st.FOV = in.FOV
	st.Far = in.Far
	if in.Far == 0 {
		st.Far = math.Inf(1)
	}
	return nil
}

// Frustum orbits around a second, fixed camera and draws that camera's view
// volume as wireframe: the eight clip-space corners unproject through the
// inverse clip-from-world matrix back into the world. Sliders set the inner
// field of view and far plane; the far slider's top end is infinity.
type Frustum struct {
	state     frustumState
	inner     *tangent.Camera
	orbit     OrbitControl
	fovSlider Slider
	farSlider Slider
}

func NewFrustum() *Frustum {
	sc := &Frustum{
		state: frustumState{FOV: 50, Far: 4},
		inner: tangent.NewCamera(),
	}
	sc.inner.Latitude = 2.7
	sc.inner.Longitude = 1.2
	sc.inner.Distance = -2.5
	sc.inner.Aspect = 1.4
	sc.fovSlider = Slider{X: 16, Y: 72, Width: 140, Min: 20, Max: 110, Label: "inner fov", Value: &sc.state.FOV}
	sc.farSlider = Slider{X: 16, Y: 112, Width: 140, Min: 0.5, Max: 12, Label: "inner far", Value: &sc.state.Far, InfinityAtMax: true}
	return sc
}

func (sc *Frustum) Name() string {
	return "frustum"
}

func (sc *Frustum) State() any {
	return &sc.state
}

func (sc *Frustum) Step(ctx *Context) {
	if sc.fovSlider.Step(ctx.In) || sc.farSlider.Step(ctx.In) {
		return
	}
	sc.orbit.Step(ctx)
}

// frustumCorners unprojects the inner camera's clip-space cube into world
// space. With an infinite far plane the far corners sit at w = 0 and cannot
// unproject, so they back off to just inside the far boundary, which puts
// them thousands of units out and reads as infinite.
func (sc *Frustum) frustumCorners() [8]tangent.Vec3 {
	sc.inner.FOVYDegrees = sc.state.FOV
	sc.inner.Far = sc.state.Far
	sc.inner.Rebuild()

	ndcFar := 1.0
	if math.IsInf(sc.inner.Far, 1) {
		ndcFar = 1 - 1e-4
	}
	inv := sc.inner.ClipFromWorld().Inverse()

	var out [8]tangent.Vec3
	for i := 0; i < 8; i++ {
		ndc := tangent.Vec3{
			X: float64(i&1)*2 - 1,
			Y: float64(i>>1&1)*2 - 1,
			Z: -1,
		}
		if i&4 != 0 {
			ndc.Z = ndcFar
		}
		out[i] = inv.TransformPoint(ndc)
	}
	return out
}

func (sc *Frustum) Draw(ctx *Context) {
	ctx.GroundGrid(2, 0.5, -1.4)
	ctx.Axes3D(1.2)

	// Something for the view volume to contain.
	corners := cubeCorners(0.45)
	for _, e := range cubeEdgePairs {
		ctx.StrokeSegment3D(corners[e[0]], corners[e[1]], thinWidth, colDim)
	}

	fc := sc.frustumCorners()
	for _, e := range [4][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}} {
		ctx.Segment3D(fc[e[0]], fc[e[1]], colAccentA)
	}
	for _, e := range [4][2]int{{4, 5}, {5, 7}, {7, 6}, {6, 4}} {
		ctx.Segment3D(fc[e[0]], fc[e[1]], colAccentB)
	}
	for i := 0; i < 4; i++ {
		ctx.StrokeSegment3D(fc[i], fc[i+4], thinWidth, colDim)
	}

	// Inner eye marker.
	eye := sc.inner.Eye()
	const m = 0.07
	ctx.Segment3D(eye.Sub(tangent.Vec3{X: m}), eye.Add(tangent.Vec3{X: m}), colHandle)
	ctx.Segment3D(eye.Sub(tangent.Vec3{Y: m}), eye.Add(tangent.Vec3{Y: m}), colHandle)
	ctx.Segment3D(eye.Sub(tangent.Vec3{Z: m}), eye.Add(tangent.Vec3{Z: m}), colHandle)

	sc.fovSlider.Draw(ctx.Dst)
	sc.farSlider.Draw(ctx.Dst)
	ctx.CanvasLabel("inner camera view volume", 16, 16)
	ctx.CanvasLabel("near plane in blue, far plane in orange", 16, 32)
}
