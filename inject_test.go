package tangent

import "testing"

func TestInputQueueOrder(t *testing.T) {
	var q InputQueue
	q.Press(10, 20)
	q.Move(30, 40)
	q.Release(50, 60)

	if q.Pending() != 3 {
		t.Fatalf("expected 3 events, got %d", q.Pending())
	}

	// Verify order: press, move, release.
	evt, _ := q.pop()
	if evt.buttons != ButtonLeft || evt.x != 10 || evt.y != 20 {
		t.Error("first event should be press at (10,20)")
	}
	evt, _ = q.pop()
	if evt.buttons != ButtonLeft || evt.x != 30 || evt.y != 40 {
		t.Error("second event should be held move at (30,40)")
	}
	evt, _ = q.pop()
	if evt.buttons != 0 || evt.x != 50 || evt.y != 60 {
		t.Error("third event should be release at (50,60)")
	}
	if _, ok := q.pop(); ok {
		t.Error("queue should be empty after three pops")
	}
}

func TestInputQueueClick(t *testing.T) {
	var q InputQueue
	q.Click(100, 200)
	if q.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Pending())
	}

	press, _ := q.pop()
	release, _ := q.pop()
	if press.buttons != ButtonLeft || release.buttons != 0 {
		t.Error("click should queue press then release")
	}
	if press.x != 100 || press.y != 200 || release.x != 100 || release.y != 200 {
		t.Error("click events should share the position")
	}
}

func TestInputQueueDrag(t *testing.T) {
	var q InputQueue

	// Drag from (10,10) to (200,200) over 5 frames:
	// frame 0: press at (10,10)
	// frame 1: move to ~(57.5, 57.5)
	// frame 2: move to ~(105, 105)
	// frame 3: move to ~(152.5, 152.5)
	// frame 4: release at (200, 200)
	q.Drag(10, 10, 200, 200, 5)
	if q.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", q.Pending())
	}

	first, _ := q.pop()
	if first.buttons != ButtonLeft || first.x != 10 {
		t.Error("drag should start with a press at the from position")
	}
	mid, _ := q.pop()
	if mid.buttons != ButtonLeft || !approxEqual(mid.x, 57.5, epsilon) {
		t.Errorf("first move at x=%v, want 57.5", mid.x)
	}
	q.pop()
	q.pop()
	last, _ := q.pop()
	if last.buttons != 0 || last.x != 200 || last.y != 200 {
		t.Error("drag should end with a release at the to position")
	}
}

func TestInputQueueDrag_MinFrames(t *testing.T) {
	var q InputQueue
	q.Drag(0, 0, 100, 100, 1) // should clamp to 2
	if q.Pending() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", q.Pending())
	}
}
