package tangent

import "github.com/hajimehoshi/ebiten/v2"

// ButtonMask is a bitmask of held pointer buttons.
// Values combine with bitwise OR (e.g. ButtonLeft | ButtonRight).
type ButtonMask uint8

const (
	ButtonLeft   ButtonMask = 1 << iota // primary (left) mouse button
	ButtonRight                         // secondary (right) mouse button
	ButtonMiddle                        // middle mouse button
)

// FrameInput is the pointer and canvas sample for one frame. It is read once
// at the top of the frame and held constant through hit-testing, dragging,
// and drawing, so the three can never disagree about where the pointer was.
type FrameInput struct {
	CanvasWidth  int
	CanvasHeight int
	// Pointer is the pointer position in canvas pixels.
	Pointer Vec2
	// Buttons is the held-button mask.
	Buttons ButtonMask
	// Wheel is the vertical scroll amount this frame.
	Wheel float64
}

// Buttons reads the current mouse button mask from ebiten.
func Buttons() ButtonMask {
	var m ButtonMask
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		m |= ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		m |= ButtonRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		m |= ButtonMiddle
	}
	return m
}

// ReadInput builds the frame's input sample. When queue holds a pending
// synthetic event it is consumed in place of the real mouse, so scripted
// input flows through exactly the path a user's input does. queue may be
// nil.
func ReadInput(canvasWidth, canvasHeight int, queue *InputQueue) FrameInput {
	in := FrameInput{CanvasWidth: canvasWidth, CanvasHeight: canvasHeight}

	if queue != nil {
		if evt, ok := queue.pop(); ok {
			in.Pointer = Vec2{evt.x, evt.y}
			in.Buttons = evt.buttons
			return in
		}
	}

	mx, my := ebiten.CursorPosition()
	in.Pointer = Vec2{float64(mx), float64(my)}
	in.Buttons = Buttons()
	_, in.Wheel = ebiten.Wheel()
	return in
}
