package scenes

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tangent"
)

const (
	knobRadius  = 10.0
	trackHeight = 4.0
)

// Slider is a horizontal canvas-space slider bound to a float64. Grabbing
// the knob with the left button and dragging maps the pointer back to a
// value between Min and Max; the value clamps at the ends rather than
// escaping them.
type Slider struct {
	X, Y  float64
	Width float64
	Min   float64
	Max   float64
	Label string
	Value *float64

	// InfinityAtMax makes the top end of the range stand for +Inf.
	InfinityAtMax bool

	active  bool
	wasHeld bool
}

func (s *Slider) knobX() float64 {
	v := *s.Value
	if s.InfinityAtMax && math.IsInf(v, 1) {
		v = s.Max
	}
	t := tangent.InverseLerp(s.Min, s.Max, tangent.Clamp(v, s.Min, s.Max))
	return s.X + t*s.Width
}

// Step applies one frame of input. It reports whether the slider owns the
// pointer this frame, so callers can skip their own hit tests while a grab
// is in progress. The knob only grabs on the frame the button goes down, so
// a held drag passing over it cannot capture the slider.
func (s *Slider) Step(in tangent.FrameInput) bool {
	held := in.Buttons&tangent.ButtonLeft != 0
	pressed := held && !s.wasHeld
	s.wasHeld = held

	if !held {
		s.active = false
		return false
	}
	if !s.active && pressed {
		if math.Hypot(in.Pointer.X-s.knobX(), in.Pointer.Y-s.Y) <= knobRadius*1.5 {
			s.active = true
		}
	}
	if !s.active {
		return false
	}

	t := tangent.Saturate((in.Pointer.X - s.X) / s.Width)
	v := tangent.Lerp(s.Min, s.Max, t)
	if s.InfinityAtMax && t >= 1 {
		v = math.Inf(1)
	}
	*s.Value = v
	return true
}

// Active reports whether the slider currently owns the pointer.
func (s *Slider) Active() bool {
	return s.active
}

// Draw renders the track, knob, and label with the current value.
func (s *Slider) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y-trackHeight/2), float32(s.Width), float32(trackHeight), colGrid, true)
	vector.DrawFilledCircle(dst, float32(s.knobX()), float32(s.Y), float32(knobRadius), colHandle, true)

	v := *s.Value
	text := fmt.Sprintf("%s: %.2f", s.Label, v)
	if math.IsInf(v, 1) {
		text = fmt.Sprintf("%s: inf", s.Label)
	}
	ebitenutil.DebugPrintAt(dst, text, int(s.X), int(s.Y)-24)
}
