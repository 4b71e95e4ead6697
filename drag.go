package tangent

// dragKind tags the DragSession variant.
type dragKind uint8

const (
	dragPosition dragKind = iota // rigid translation of a free point
	dragNormal                   // rotation of a direction around a pivot
)

// DragSession tracks one in-progress pointer drag over a 2D value owned by
// the caller. Construct one with NewPositionDrag or NewNormalDrag at the
// moment a hit test succeeds with buttons held, then call Update once per
// frame until it reports release. The session writes through target; it
// never owns the value, and it never hit-tests or decides when to start.
//
// The two variants share the single Update operation and are dispatched on
// an internal tag, so callers hold a plain *DragSession either way.
type DragSession struct {
	kind    dragKind
	target  *Vec2
	buttons ButtonMask // mask captured at creation

	// position drag
	offset Vec2

	// normal drag
	origin      Vec2
	dragStart   Vec2
	normalStart Vec2
}

// NewPositionDrag starts a rigid-translation drag of *target. dragStart is
// the pointer's world position at grab time; the offset between it and the
// value is preserved, so the value follows the pointer without snapping to
// it.
func NewPositionDrag(target *Vec2, dragStart Vec2, buttons ButtonMask) *DragSession {
	return &DragSession{
		kind:    dragPosition,
		target:  target,
		buttons: buttons,
		offset:  target.Sub(dragStart),
	}
}

// NewNormalDrag starts a rotation drag of the direction *target around
// origin. On every update the value becomes the grab-time value rotated by
// the angle the pointer has swept around the origin since dragStart. A
// fixed-radius direction handle therefore tracks the pointer exactly even
// though the value is a direction, not a position.
func NewNormalDrag(target *Vec2, origin, dragStart Vec2, buttons ButtonMask) *DragSession {
	return &DragSession{
		kind:        dragNormal,
		target:      target,
		buttons:     buttons,
		origin:      origin,
		dragStart:   dragStart,
		normalStart: *target,
	}
}

// Update advances the session with this frame's pointer world position and
// button mask. It returns true as soon as the mask differs from the one
// captured at creation, including a release to zero; the caller must then
// discard the session. While the mask still matches, the target value is
// rewritten in place from the pointer and false is returned.
func (s *DragSession) Update(pointer Vec2, buttons ButtonMask) bool {
	if buttons != s.buttons {
		return true
	}

	switch s.kind {
	case dragPosition:
		*s.target = pointer.Add(s.offset)
	case dragNormal:
		toDragStart := s.dragStart.Sub(s.origin).Normalize()
		toPointer := pointer.Sub(s.origin).Normalize()
		if toDragStart == (Vec2{}) || toPointer == (Vec2{}) {
			break // pointer at the pivot; hold the current value
		}
		sin := toDragStart.Cross(toPointer)
		cos := toDragStart.Dot(toPointer)
		*s.target = s.normalStart.Rotate(sin, cos)
	}
	return false
}

// Dragger holds the at-most-one active drag session of a scene. The zero
// value is ready to use.
type Dragger struct {
	session *DragSession
}

// Active reports whether a session is currently held.
func (d *Dragger) Active() bool {
	return d.session != nil
}

// Begin installs a session and reports whether it was accepted. It refuses
// while another session is active, so a second grab cannot start before the
// first releases.
func (d *Dragger) Begin(s *DragSession) bool {
	if d.session != nil || s == nil {
		return false
	}
	d.session = s
	return true
}

// Update advances the active session and drops it when it requests release.
// No-op while idle.
func (d *Dragger) Update(pointer Vec2, buttons ButtonMask) {
	if d.session == nil {
		return
	}
	if d.session.Update(pointer, buttons) {
		d.session = nil
	}
}
