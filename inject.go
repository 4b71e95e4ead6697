package tangent

// syntheticPointerEvent is one injected pointer sample in canvas pixels.
type syntheticPointerEvent struct {
	x, y    float64
	buttons ButtonMask
}

// InputQueue buffers synthetic pointer events for scripted or test-driven
// input. ReadInput consumes one event per frame ahead of the real mouse, so
// injected input exercises the same once-per-frame sampling path. The zero
// value is ready to use.
type InputQueue struct {
	events []syntheticPointerEvent
}

// Pending returns the number of queued events not yet consumed.
func (q *InputQueue) Pending() int {
	return len(q.events)
}

// Press queues a pointer sample at (x, y) with the left button held.
func (q *InputQueue) Press(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{x: x, y: y, buttons: ButtonLeft})
}

// Move queues a held-button sample at (x, y). Use between Press and Release
// to simulate a drag.
func (q *InputQueue) Move(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{x: x, y: y, buttons: ButtonLeft})
}

// Release queues a no-buttons sample at (x, y).
func (q *InputQueue) Release(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{x: x, y: y})
}

// Click queues a press followed by a release at the same position.
// Consumes two frames.
func (q *InputQueue) Click(x, y float64) {
	q.Press(x, y)
	q.Release(x, y)
}

// Drag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated held moves, and release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2 (press + release).
func (q *InputQueue) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	q.Release(toX, toY)
}

// pop removes and returns the oldest queued event.
func (q *InputQueue) pop() (syntheticPointerEvent, bool) {
	if len(q.events) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return evt, true
}
