package tangent

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a JSON-described pointer sequence into an InputQueue across
// frames, for demos that drive themselves and for interaction tests. Call
// Step once per frame before ReadInput; pending queued events drain before
// the next script step runs.
//
// Supported actions: "press", "move", "release", "click" (x, y), "drag"
// (fromX, fromY, toX, toY, frames), and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// LoadScriptFile reads and parses a JSON input script from disk.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has been executed and drained.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame, queueing events into q.
func (r *Script) Step(q *InputQueue) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if q.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		q.Press(st.X, st.Y)
	case "move":
		q.Move(st.X, st.Y)
	case "release":
		q.Release(st.X, st.Y)
	case "click":
		q.Click(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		q.Drag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && q.Pending() == 0 {
		r.done = true
	}
}
