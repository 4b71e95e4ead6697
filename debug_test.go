package tangent

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugfPrefix(t *testing.T) {
	out := captureStderr(t, func() {
		Debugf("drag start at (%v, %v)", 1.5, 2.0)
	})
	if !strings.HasPrefix(out, "[tangent] ") {
		t.Errorf("missing package prefix: %q", out)
	}
	if !strings.Contains(out, "drag start at (1.5, 2)") {
		t.Errorf("formatted message missing: %q", out)
	}
}

func TestFrameStatsResetFrame(t *testing.T) {
	var st FrameStats
	st.SegmentsDrawn = 12
	st.SegmentsClipped = 3
	st.SegmentsCulled = 5

	st.ResetFrame()
	if st.Frames != 1 {
		t.Errorf("Frames = %d, want 1", st.Frames)
	}
	if st.SegmentsDrawn != 0 || st.SegmentsClipped != 0 || st.SegmentsCulled != 0 {
		t.Errorf("counters not cleared: %+v", st)
	}

	st.ResetFrame()
	if st.Frames != 2 {
		t.Errorf("Frames = %d, want 2 (frame count survives resets)", st.Frames)
	}
}

func TestFrameStatsString(t *testing.T) {
	st := FrameStats{Frames: 9, SegmentsDrawn: 4, SegmentsClipped: 2, SegmentsCulled: 1}
	got := st.String()
	if got != "segments: 4 drawn, 2 clipped, 1 culled" {
		t.Errorf("String() = %q", got)
	}
}

func TestFrameStatsLog(t *testing.T) {
	st := FrameStats{Frames: 3, SegmentsDrawn: 7}
	out := captureStderr(t, func() {
		st.Log()
	})
	if !strings.Contains(out, "frame 3") || !strings.Contains(out, "segments drawn: 7") {
		t.Errorf("log line = %q", out)
	}
}
