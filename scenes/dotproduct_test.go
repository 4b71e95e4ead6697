package scenes

import (
	"testing"

	"github.com/phanxgames/tangent"
)

// Default A = (0.35, 0.55) sits at canvas (270, 90) on a 400x400 canvas.

func TestDotProductDragMovesTip(t *testing.T) {
	sc := NewDotProduct()
	ctx := testContext(400, 400)
	b0 := sc.state.B

	// Grab 5px left of the tip: the offset keeps the grab point under the
	// pointer instead of snapping the tip.
	sc.Step(ctx.withPointer(265, 90, tangent.ButtonLeft))
	if !sc.drag.Active() {
		t.Fatal("expected a drag session after pressing on the tip")
	}
	if !vecApprox(sc.state.A, tangent.Vec2{X: 0.35, Y: 0.55}, 1e-9) {
		t.Error("the press frame should not move the tip")
	}

	// 40px right is 0.2 world units.
	sc.Step(ctx.withPointer(305, 90, tangent.ButtonLeft))
	if !vecApprox(sc.state.A, tangent.Vec2{X: 0.55, Y: 0.55}, 1e-9) {
		t.Errorf("expected A (0.55, 0.55), got (%v, %v)", sc.state.A.X, sc.state.A.Y)
	}

	// Release keeps the value and ends the session.
	sc.Step(ctx.withPointer(305, 90, 0))
	if sc.drag.Active() {
		t.Error("expected the session to end on release")
	}
	if !vecApprox(sc.state.A, tangent.Vec2{X: 0.55, Y: 0.55}, 1e-9) {
		t.Error("the release frame should not move the tip")
	}
	if sc.state.B != b0 {
		t.Error("dragging A should not disturb B")
	}
}

func TestDotProductDragClampsToWorld(t *testing.T) {
	sc := NewDotProduct()
	ctx := testContext(400, 400)

	sc.Step(ctx.withPointer(270, 90, tangent.ButtonLeft))
	sc.Step(ctx.withPointer(420, 90, tangent.ButtonLeft))
	if sc.state.A.X != 1 {
		t.Errorf("expected A.X clamped to 1, got %v", sc.state.A.X)
	}
	if !approx(sc.state.A.Y, 0.55, 1e-9) {
		t.Errorf("expected A.Y to stay 0.55, got %v", sc.state.A.Y)
	}
}

func TestDotProductDragDoesNotStealOtherTip(t *testing.T) {
	sc := NewDotProduct()
	ctx := testContext(400, 400)
	b0 := sc.state.B

	// Grab A, then drag the pointer onto B's handle. The live session
	// keeps A; B must not be grabbed mid-drag.
	sc.Step(ctx.withPointer(270, 90, tangent.ButtonLeft))
	sc.Step(ctx.withPointer(340, 220, tangent.ButtonLeft))
	if !vecApprox(sc.state.A, b0, 1e-9) {
		t.Errorf("expected A dragged onto (%v, %v), got (%v, %v)", b0.X, b0.Y, sc.state.A.X, sc.state.A.Y)
	}
	if sc.state.B != b0 {
		t.Error("expected B untouched while A's session is live")
	}
}

func TestDotProductPressOnEmptySpace(t *testing.T) {
	sc := NewDotProduct()
	ctx := testContext(400, 400)
	a0, b0 := sc.state.A, sc.state.B

	sc.Step(ctx.withPointer(100, 300, tangent.ButtonLeft))
	if sc.drag.Active() {
		t.Error("a press on empty space should not start a session")
	}
	if sc.state.A != a0 || sc.state.B != b0 {
		t.Error("expected both tips unchanged")
	}
}
