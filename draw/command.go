// Package draw accumulates typed drawing operations for one frame.
// A List is produced per layer per frame and consumed once by the renderer;
// it never inspects command payloads, so raw and UI layers can share it.
package draw

import (
	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/geometry"
)

// Op identifies the kind of a draw command.
type Op uint8

const (
	OpRect Op = iota
	OpText
	OpFrame
	OpPushClip
	OpPopClip
)

// String returns a human-readable name for the op.
func (o Op) String() string {
	switch o {
	case OpRect:
		return "Rect"
	case OpText:
		return "Text"
	case OpFrame:
		return "Frame"
	case OpPushClip:
		return "PushClip"
	case OpPopClip:
		return "PopClip"
	default:
		return "Unknown"
	}
}

// Command is a single drawing operation. Seq is the emission order tag,
// assigned by the List and monotonically increasing within a frame; it is a
// stable tiebreak for commands at equal depth. Commands are immutable after
// emission.
type Command struct {
	Op  Op
	Seq int

	// Rect is the geometry for OpRect, OpFrame and OpPushClip, and the
	// anchor position (Pos only) for OpText.
	Rect geometry.Rect

	// OpRect payload.
	Color color.Color

	// OpText payload. The text string is treated as opaque; shaping belongs
	// to the text backend.
	Text      string
	TextStyle TextStyle

	// OpFrame payload.
	Frame FrameStyle
}
