package draw

import (
	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/geometry"
)

// Pos marks a position in a List, recorded before emitting children so a
// container background can be inserted there afterwards.
type Pos struct {
	index int
}

// Index returns the command index the marker refers to.
func (p Pos) Index() int {
	return p.index
}

// List is an ordered sequence of draw commands for one frame. Later commands
// paint over earlier ones. A List is created fresh per frame per layer and
// dropped after the renderer consumes it.
type List struct {
	commands  []Command
	clipStack []geometry.Rect
	viewport  *geometry.Rect
	nextSeq   int
}

// NewList creates an empty draw list.
func NewList() *List {
	return &List{}
}

// SetViewport sets an optional culling rectangle. Commands entirely outside
// the viewport are skipped on emission. Pass nil to disable culling.
func (l *List) SetViewport(viewport *geometry.Rect) {
	l.viewport = viewport
}

// Clear removes all commands and resets the emission counter for a new frame.
func (l *List) Clear() {
	l.commands = l.commands[:0]
	l.clipStack = l.clipStack[:0]
	l.nextSeq = 0
}

// Commands returns the accumulated commands in paint order.
func (l *List) Commands() []Command {
	return l.commands
}

// Len returns the number of emitted commands.
func (l *List) Len() int {
	return len(l.commands)
}

// Empty reports whether no commands have been emitted.
func (l *List) Empty() bool {
	return len(l.commands) == 0
}

// Mark records the current end of the list for a later InsertAt.
func (l *List) Mark() Pos {
	return Pos{index: len(l.commands)}
}

func (l *List) culled(rect geometry.Rect) bool {
	if l.viewport == nil {
		return false
	}
	_, overlaps := rect.Intersect(*l.viewport)
	return !overlaps
}

func (l *List) append(cmd Command) {
	cmd.Seq = l.nextSeq
	l.nextSeq++
	l.commands = append(l.commands, cmd)
}

// insertAt places a command at the marker position, shifting every command
// emitted after the marker. The command still receives the next emission tag;
// the relative order of previously emitted commands is preserved.
func (l *List) insertAt(pos Pos, cmd Command) {
	cmd.Seq = l.nextSeq
	l.nextSeq++

	i := pos.index
	if i > len(l.commands) {
		i = len(l.commands)
	}
	l.commands = append(l.commands, Command{})
	copy(l.commands[i+1:], l.commands[i:])
	l.commands[i] = cmd
}

// AddRect emits a filled rectangle. Fully transparent rectangles are skipped.
func (l *List) AddRect(rect geometry.Rect, c color.Color) {
	if c.Transparent() || l.culled(rect) {
		return
	}
	l.append(Command{Op: OpRect, Rect: rect, Color: c})
}

// AddText emits a text command anchored at pos. Empty strings are skipped.
// The payload is opaque to the list; glyph shaping happens in the renderer's
// text backend.
func (l *List) AddText(pos geometry.Vec2, text string, style TextStyle) {
	if text == "" {
		return
	}
	l.append(Command{
		Op:        OpText,
		Rect:      geometry.Rect{Pos: pos},
		Text:      text,
		TextStyle: style,
	})
}

// AddFrame emits a styled frame. Frames with no visible fill, border or
// shadow are skipped.
func (l *List) AddFrame(rect geometry.Rect, style FrameStyle) {
	if !style.visible() || l.culled(rect) {
		return
	}
	l.append(Command{Op: OpFrame, Rect: rect, Frame: style})
}

// InsertRectAt inserts a filled rectangle at the marker position. Used to
// retrofit a container background behind children that were already emitted.
func (l *List) InsertRectAt(pos Pos, rect geometry.Rect, c color.Color) {
	if c.Transparent() {
		return
	}
	l.insertAt(pos, Command{Op: OpRect, Rect: rect, Color: c})
}

// InsertFrameAt inserts a styled frame at the marker position.
func (l *List) InsertFrameAt(pos Pos, rect geometry.Rect, style FrameStyle) {
	if !style.visible() {
		return
	}
	l.insertAt(pos, Command{Op: OpFrame, Rect: rect, Frame: style})
}

// PushClip emits a clip command intersected with the current clip rectangle.
// A disjoint clip degenerates to a zero-sized rect at the requested origin.
func (l *List) PushClip(rect geometry.Rect) {
	clip := rect
	if len(l.clipStack) > 0 {
		current := l.clipStack[len(l.clipStack)-1]
		if inter, ok := current.Intersect(rect); ok {
			clip = inter
		} else {
			clip = geometry.FromPosSize(rect.Pos, geometry.Vec2{})
		}
	}

	l.clipStack = append(l.clipStack, clip)
	l.append(Command{Op: OpPushClip, Rect: clip})
}

// PopClip emits the matching pop for the innermost PushClip. A pop without a
// matching push is ignored.
func (l *List) PopClip() {
	if len(l.clipStack) == 0 {
		return
	}
	l.clipStack = l.clipStack[:len(l.clipStack)-1]
	l.append(Command{Op: OpPopClip})
}

// CurrentClip returns the innermost clip rectangle, if any.
func (l *List) CurrentClip() (geometry.Rect, bool) {
	if len(l.clipStack) == 0 {
		return geometry.Rect{}, false
	}
	return l.clipStack[len(l.clipStack)-1], true
}
