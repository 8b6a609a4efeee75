// Package interaction consumes raw pointer and touch events, maintains
// hover/active/focus state keyed by widget id, and hit-tests against the
// current frame's geometry. Touch events are canonicalized into the same
// pointer state machine used for mouse events.
package interaction

import "github.com/iamnbutler/sol-ui/geometry"

// EventKind tags an input event variant.
type EventKind uint8

const (
	PointerDown EventKind = iota
	PointerUp
	PointerMove
	PointerLeave
	TouchDown
	TouchUp
	TouchMove
	TouchCancel
	Scroll
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "PointerDown"
	case PointerUp:
		return "PointerUp"
	case PointerMove:
		return "PointerMove"
	case PointerLeave:
		return "PointerLeave"
	case TouchDown:
		return "TouchDown"
	case TouchUp:
		return "TouchUp"
	case TouchMove:
		return "TouchMove"
	case TouchCancel:
		return "TouchCancel"
	case Scroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// PointerKind separates the two input families sharing the pointer
// abstraction.
type PointerKind uint8

const (
	KindMouse PointerKind = iota
	KindTouch
)

// Pointer is a device-reported identifier: a mouse button or a touch id.
type Pointer struct {
	Kind PointerKind
	Num  int
}

// Mouse button numbers.
const (
	ButtonLeft = iota
	ButtonRight
	ButtonMiddle
)

// Event is a raw input event fed into route_input. Delta is only meaningful
// for Scroll events.
type Event struct {
	Kind    EventKind
	Pointer Pointer
	Pos     geometry.Vec2
	Delta   geometry.Vec2
}

// MouseDown builds a pointer-down event for a mouse button.
func MouseDown(button int, pos geometry.Vec2) Event {
	return Event{Kind: PointerDown, Pointer: Pointer{Kind: KindMouse, Num: button}, Pos: pos}
}

// MouseUp builds a pointer-up event for a mouse button.
func MouseUp(button int, pos geometry.Vec2) Event {
	return Event{Kind: PointerUp, Pointer: Pointer{Kind: KindMouse, Num: button}, Pos: pos}
}

// MouseMove builds a pointer-move event.
func MouseMove(pos geometry.Vec2) Event {
	return Event{Kind: PointerMove, Pointer: Pointer{Kind: KindMouse}, Pos: pos}
}

// MouseLeave builds a pointer-leave event, fired when the pointer exits the
// window.
func MouseLeave() Event {
	return Event{Kind: PointerLeave, Pointer: Pointer{Kind: KindMouse}}
}

// ScrollWheel builds a scroll event at the given position.
func ScrollWheel(pos, delta geometry.Vec2) Event {
	return Event{Kind: Scroll, Pointer: Pointer{Kind: KindMouse}, Pos: pos, Delta: delta}
}

// TouchBegin builds a touch-down event for a touch id.
func TouchBegin(id int, pos geometry.Vec2) Event {
	return Event{Kind: TouchDown, Pointer: Pointer{Kind: KindTouch, Num: id}, Pos: pos}
}

// TouchMoved builds a touch-move event for a touch id.
func TouchMoved(id int, pos geometry.Vec2) Event {
	return Event{Kind: TouchMove, Pointer: Pointer{Kind: KindTouch, Num: id}, Pos: pos}
}

// TouchEnd builds a touch-up event for a touch id.
func TouchEnd(id int, pos geometry.Vec2) Event {
	return Event{Kind: TouchUp, Pointer: Pointer{Kind: KindTouch, Num: id}, Pos: pos}
}

// TouchCanceled builds a touch-cancel event for a touch id: the touch left
// the screen without a release, so no click may fire from it.
func TouchCanceled(id int) Event {
	return Event{Kind: TouchCancel, Pointer: Pointer{Kind: KindTouch, Num: id}}
}
