package scenes

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/phanxgames/tangent"
)

// CameraState is the persisted camera pose. JSON has no +Inf, so a far value
// of 0 stands for the infinite far plane.
type CameraState struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Distance    float64 `json:"distance"`
	FOVYDegrees float64 `json:"fovYDegrees"`
	Far         float64 `json:"far"`
}

// Snapshot bundles the camera pose with each scene's saved values, keyed by
// scene name.
type Snapshot struct {
	Camera CameraState                `json:"camera"`
	Scenes map[string]json.RawMessage `json:"scenes,omitempty"`
}

// CaptureCamera reads the persisted pose out of a camera.
func CaptureCamera(cam *tangent.Camera) CameraState {
	st := CameraState{
		Latitude:    cam.Latitude,
		Longitude:   cam.Longitude,
		Distance:    cam.Distance,
		FOVYDegrees: cam.FOVYDegrees,
		Far:         cam.Far,
	}
	if math.IsInf(cam.Far, 1) {
		st.Far = 0
	}
	return st
}

// ApplyCamera writes a saved pose back onto a camera. The camera clamps the
// values on its next rebuild.
func ApplyCamera(st CameraState, cam *tangent.Camera) {
	cam.Latitude = st.Latitude
	cam.Longitude = st.Longitude
	cam.Distance = st.Distance
	cam.FOVYDegrees = st.FOVYDegrees
	cam.Far = st.Far
	if st.Far == 0 {
		cam.Far = math.Inf(1)
	}
}

// Save writes the camera pose and every scene's state to path as JSON.
func Save(path string, cam *tangent.Camera, scenes []Scene) error {
	snap := Snapshot{
		Camera: CaptureCamera(cam),
		Scenes: map[string]json.RawMessage{},
	}
	for _, sc := range scenes {
		st := sc.State()
		if st == nil {
			continue
		}
		raw, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("snapshot scene %s: %w", sc.Name(), err)
		}
		snap.Scenes[sc.Name()] = raw
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from path and applies it to the camera and to every
// scene the file has state for. Scenes missing from the file keep their
// current values.
func Load(path string, cam *tangent.Camera, scenes []Scene) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	ApplyCamera(snap.Camera, cam)
	for _, sc := range scenes {
		st := sc.State()
		if st == nil {
			continue
		}
		raw, ok := snap.Scenes[sc.Name()]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, st); err != nil {
			return fmt.Errorf("decode snapshot scene %s: %w", sc.Name(), err)
		}
	}
	return nil
}
