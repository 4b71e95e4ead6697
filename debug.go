package tangent

import (
	"fmt"
	"os"
)

// Debugf prints a diagnostic line to stderr with the package prefix.
// Hosts gate calls on their own debug flag.
func Debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tangent] "+format+"\n", args...)
}

// FrameStats counts per-frame pipeline work. Drawing helpers increment the
// segment counters; the host resets them at the top of each frame and logs
// or overlays the result.
type FrameStats struct {
	// Frames is the total frame count since start. It survives ResetFrame.
	Frames int
	// SegmentsDrawn counts 3D segments that reached the canvas this frame.
	SegmentsDrawn int
	// SegmentsClipped counts segments truncated by the near plane.
	SegmentsClipped int
	// SegmentsCulled counts segments dropped entirely: behind the near
	// plane or outside the depth range.
	SegmentsCulled int
}

// ResetFrame clears the per-frame counters and advances the frame count.
func (st *FrameStats) ResetFrame() {
	st.Frames++
	st.SegmentsDrawn = 0
	st.SegmentsClipped = 0
	st.SegmentsCulled = 0
}

// Log prints the current counters to stderr.
func (st *FrameStats) Log() {
	Debugf("frame %d | segments drawn: %d | clipped: %d | culled: %d",
		st.Frames, st.SegmentsDrawn, st.SegmentsClipped, st.SegmentsCulled)
}

// String returns the counters in a single overlay-friendly line.
func (st *FrameStats) String() string {
	return fmt.Sprintf("segments: %d drawn, %d clipped, %d culled",
		st.SegmentsDrawn, st.SegmentsClipped, st.SegmentsCulled)
}
