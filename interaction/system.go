package interaction

import (
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/ui"
	"github.com/kamstrup/intmap"
)

type widgetState struct {
	hovered bool
	active  bool
	focused bool
}

type clickRecord struct {
	id      ui.WidgetId
	pointer Pointer
}

// System tracks per-widget interaction state for one UI layer. State records
// are created on first observation of a widget id and garbage-collected for
// ids not observed in the current frame. One widget at most holds focus per
// system.
//
// The state machine per id: Idle -> Hovered (pointer enters bounds) ->
// Active (pointer down while hovered) -> Idle or Hovered (pointer up; a
// click fires only when the release hit-tests to the same id). Touch events
// drive the same transitions keyed by touch id; TouchCancel forces Active
// back to Idle without a click.
type System struct {
	states *intmap.Map[ui.WidgetId, *widgetState]
	known  []ui.WidgetId

	// Hit geometry from the most recent frame, in paint order.
	entries []ui.HitEntry

	hovered      ui.WidgetId
	focused      ui.WidgetId
	pressed      ui.WidgetId
	pressedPtr   Pointer
	pressedValid bool

	pointerPos    geometry.Vec2
	pointerInside bool

	clicks  []clickRecord
	scrolls map[ui.WidgetId]geometry.Vec2
}

// NewSystem creates an interaction system with no geometry.
func NewSystem() *System {
	return &System{
		states:  intmap.New[ui.WidgetId, *widgetState](256),
		scrolls: make(map[ui.WidgetId]geometry.Vec2),
	}
}

func (s *System) state(id ui.WidgetId) *widgetState {
	if st, ok := s.states.Get(id); ok {
		return st
	}
	st := &widgetState{}
	s.states.Put(id, st)
	s.known = append(s.known, id)
	return st
}

// peek returns existing state without creating a record.
func (s *System) peek(id ui.WidgetId) *widgetState {
	st, _ := s.states.Get(id)
	return st
}

// hitTest selects the topmost widget whose bounds contain the point, by
// iterating the frame's geometry in reverse paint order.
func (s *System) hitTest(pos geometry.Vec2) (ui.HitEntry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Bounds.Contains(pos) {
			return s.entries[i], true
		}
	}
	return ui.HitEntry{}, false
}

// HitTest reports the widget at the given position, if any.
func (s *System) HitTest(pos geometry.Vec2) (ui.WidgetId, bool) {
	entry, ok := s.hitTest(pos)
	return entry.Id, ok
}

// HandleInput processes one event against the current frame's geometry and
// reports whether the event was consumed. Events referencing widgets that
// vanished this frame are dropped silently; disappearance between input
// delivery and frame production is an expected race, not an error.
func (s *System) HandleInput(ev Event) bool {
	switch ev.Kind {
	case PointerMove, TouchMove:
		s.handleMove(ev.Pos)
	case PointerDown, TouchDown:
		// A touch has no hover phase of its own; entering the bounds and
		// pressing arrive as one event.
		s.handleMove(ev.Pos)
		s.handleDown(ev.Pointer, ev.Pos)
	case PointerUp, TouchUp:
		s.handleUp(ev.Pointer, ev.Pos)
	case TouchCancel:
		s.handleCancel(ev.Pointer)
	case PointerLeave:
		s.handleLeave()
	case Scroll:
		s.handleScroll(ev.Pos, ev.Delta)
	default:
		return false
	}
	return true
}

func (s *System) handleMove(pos geometry.Vec2) {
	s.pointerPos = pos
	s.pointerInside = true

	entry, hit := s.hitTest(pos)
	var next ui.WidgetId
	if hit {
		next = entry.Id
	}

	if next == s.hovered {
		return
	}
	if prev := s.peek(s.hovered); prev != nil {
		prev.hovered = false
	}
	if hit {
		s.state(next).hovered = true
	}
	s.hovered = next
}

func (s *System) handleDown(ptr Pointer, pos geometry.Vec2) {
	entry, hit := s.hitTest(pos)
	if !hit {
		// Pressing empty space clears focus.
		s.Blur()
		return
	}

	s.pressed = entry.Id
	s.pressedPtr = ptr
	s.pressedValid = true
	s.state(entry.Id).active = true

	if entry.Focusable {
		s.RequestFocus(entry.Id)
	}
}

func (s *System) handleUp(ptr Pointer, pos geometry.Vec2) {
	if !s.pressedValid || s.pressedPtr != ptr {
		return
	}

	pressed := s.pressed
	s.pressedValid = false
	if st := s.peek(pressed); st != nil {
		st.active = false
	}

	// A click fires only when the release lands on the widget that was
	// pressed.
	if entry, hit := s.hitTest(pos); hit && entry.Id == pressed {
		s.clicks = append(s.clicks, clickRecord{id: pressed, pointer: ptr})
	}
}

func (s *System) handleCancel(ptr Pointer) {
	if !s.pressedValid || s.pressedPtr != ptr {
		return
	}
	if st := s.peek(s.pressed); st != nil {
		st.active = false
	}
	s.pressedValid = false
}

func (s *System) handleLeave() {
	s.pointerInside = false
	if st := s.peek(s.hovered); st != nil {
		st.hovered = false
	}
	s.hovered = 0
	// Pressed state survives so a drag can continue outside the window.
}

func (s *System) handleScroll(pos, delta geometry.Vec2) {
	if entry, hit := s.hitTest(pos); hit {
		s.scrolls[entry.Id] = s.scrolls[entry.Id].Add(delta)
	}
}

// Hovered reports whether the pointer is over the widget.
func (s *System) Hovered(id ui.WidgetId) bool {
	st := s.peek(id)
	return st != nil && st.hovered
}

// Active reports whether the widget is pressed and tracking a pointer.
func (s *System) Active(id ui.WidgetId) bool {
	st := s.peek(id)
	return st != nil && st.active
}

// Focused reports whether the widget holds focus.
func (s *System) Focused(id ui.WidgetId) bool {
	st := s.peek(id)
	return st != nil && st.focused
}

// Clicked reports whether a click completed on the widget since the last
// frame finished.
func (s *System) Clicked(id ui.WidgetId) bool {
	for _, c := range s.clicks {
		if c.id == id {
			return true
		}
	}
	return false
}

// ClickedBy returns the pointer that clicked the widget, when one did.
func (s *System) ClickedBy(id ui.WidgetId) (Pointer, bool) {
	for _, c := range s.clicks {
		if c.id == id {
			return c.pointer, true
		}
	}
	return Pointer{}, false
}

// ScrollDelta returns the accumulated scroll over the widget since the last
// frame finished.
func (s *System) ScrollDelta(id ui.WidgetId) geometry.Vec2 {
	return s.scrolls[id]
}

// FocusedId returns the widget currently holding focus, zero when none.
func (s *System) FocusedId() ui.WidgetId {
	return s.focused
}

// RequestFocus transfers focus to the widget, clearing it elsewhere.
func (s *System) RequestFocus(id ui.WidgetId) {
	if s.focused == id {
		return
	}
	if prev := s.peek(s.focused); prev != nil {
		prev.focused = false
	}
	s.state(id).focused = true
	s.focused = id
}

// focusables lists the current frame's focusable widgets in paint order.
func (s *System) focusables() []ui.WidgetId {
	var ids []ui.WidgetId
	for _, e := range s.entries {
		if e.Focusable {
			ids = append(ids, e.Id)
		}
	}
	return ids
}

func indexOf(ids []ui.WidgetId, id ui.WidgetId) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return 0
}

// FocusNext moves focus to the next focusable widget in paint order,
// wrapping past the last. With no focus held, the first focusable widget is
// chosen. No-op when the frame has no focusable geometry.
func (s *System) FocusNext() {
	ids := s.focusables()
	if len(ids) == 0 {
		return
	}

	next := 0
	if s.focused != 0 {
		next = (indexOf(ids, s.focused) + 1) % len(ids)
	}
	s.RequestFocus(ids[next])
}

// FocusPrev moves focus to the previous focusable widget in paint order,
// wrapping past the first. With no focus held, the last focusable widget is
// chosen.
func (s *System) FocusPrev() {
	ids := s.focusables()
	if len(ids) == 0 {
		return
	}

	prev := len(ids) - 1
	if s.focused != 0 {
		if i := indexOf(ids, s.focused); i > 0 {
			prev = i - 1
		}
	}
	s.RequestFocus(ids[prev])
}

// Blur clears focus entirely.
func (s *System) Blur() {
	if st := s.peek(s.focused); st != nil {
		st.focused = false
	}
	s.focused = 0
}

// FinishFrame installs the new frame's hit geometry, garbage-collects state
// for widget ids not observed this frame, clears the click and scroll
// accumulators consumed during the frame, and re-evaluates hover against the
// new geometry.
func (s *System) FinishFrame(entries []ui.HitEntry, observed *ui.IdSet) {
	kept := s.known[:0]
	for _, id := range s.known {
		if observed != nil && observed.Contains(id) {
			kept = append(kept, id)
			continue
		}
		s.states.Del(id)
		if s.hovered == id {
			s.hovered = 0
		}
		if s.focused == id {
			s.focused = 0
		}
		if s.pressedValid && s.pressed == id {
			s.pressedValid = false
		}
	}
	s.known = kept

	s.entries = entries
	s.clicks = s.clicks[:0]
	clear(s.scrolls)

	if s.pointerInside {
		s.handleMove(s.pointerPos)
	}
}

// StateCount returns the number of widget ids with live interaction state.
func (s *System) StateCount() int {
	return s.states.Len()
}
