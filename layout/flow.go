package layout

import "github.com/iamnbutler/sol-ui/geometry"

// DefaultMargin is the distance from the viewport origin to the first box.
const DefaultMargin = 10

// DefaultSpacing separates sibling boxes along the main axis.
const DefaultSpacing = 5

type flowFrame struct {
	id       NodeId
	style    Style
	origin   geometry.Vec2 // content origin, inside padding
	cursor   geometry.Vec2
	maxCross float32
}

// FlowSolver lays boxes out in vertical or horizontal flow, matching the
// cursor-driven layout of the UI context's single declarative pass.
// Container sizes grow from the content registered inside them.
type FlowSolver struct {
	frames []flowFrame
	bounds map[NodeId]geometry.Rect
}

// NewFlowSolver creates a flow solver.
func NewFlowSolver() *FlowSolver {
	return &FlowSolver{bounds: make(map[NodeId]geometry.Rect, 64)}
}

func (f *FlowSolver) top() *flowFrame {
	if len(f.frames) == 0 {
		panic("layout: no active frame; call Begin first")
	}
	return &f.frames[len(f.frames)-1]
}

// Begin starts a new frame over the viewport with an implicit vertical root
// container.
func (f *FlowSolver) Begin(viewport geometry.Rect) {
	clear(f.bounds)
	origin := viewport.Pos.Add(geometry.V(DefaultMargin, DefaultMargin))
	f.frames = f.frames[:0]
	f.frames = append(f.frames, flowFrame{
		style:  Style{Dir: DirVertical, Spacing: DefaultSpacing},
		origin: origin,
		cursor: origin,
	})
}

// End finishes the frame. Panics if containers are still open, since the
// caller's push/pop pairs are unbalanced.
func (f *FlowSolver) End() {
	if len(f.frames) != 1 {
		panic("layout: unbalanced PushContainer/PopContainer")
	}
	f.frames = f.frames[:0]
}

// PushContainer opens a container at the current flow position.
func (f *FlowSolver) PushContainer(id NodeId, style Style) geometry.Vec2 {
	if style.Spacing == 0 {
		style.Spacing = DefaultSpacing
	}
	parent := f.top()
	origin := parent.cursor.Add(geometry.V(style.Padding, style.Padding))
	f.frames = append(f.frames, flowFrame{
		id:     id,
		style:  style,
		origin: origin,
		cursor: origin,
	})
	return origin
}

// PopContainer closes the innermost container, records its bounds and
// advances the parent's flow position past it.
func (f *FlowSolver) PopContainer() geometry.Rect {
	if len(f.frames) <= 1 {
		panic("layout: PopContainer without matching PushContainer")
	}

	frame := *f.top()
	f.frames = f.frames[:len(f.frames)-1]

	content := frame.contentSize()
	size := content.Add(geometry.V(2*frame.style.Padding, 2*frame.style.Padding))
	rect := geometry.FromPosSize(
		frame.origin.Sub(geometry.V(frame.style.Padding, frame.style.Padding)),
		size,
	)

	if frame.id != 0 {
		f.bounds[frame.id] = rect
	}
	f.top().place(size)
	return rect
}

// NextBox allocates a leaf box at the current flow position.
func (f *FlowSolver) NextBox(id NodeId, size geometry.Vec2) geometry.Rect {
	frame := f.top()
	rect := geometry.FromPosSize(frame.cursor, size)
	frame.place(size)
	if id != 0 {
		f.bounds[id] = rect
	}
	return rect
}

// Advance inserts empty space along the current main axis.
func (f *FlowSolver) Advance(amount float32) {
	frame := f.top()
	if frame.style.Dir == DirHorizontal {
		frame.cursor.X += amount
	} else {
		frame.cursor.Y += amount
	}
}

// SetCursor moves the flow position for manual placement.
func (f *FlowSolver) SetCursor(pos geometry.Vec2) {
	frame := f.top()
	frame.cursor = pos
	frame.origin = pos
}

// Cursor returns the current flow position.
func (f *FlowSolver) Cursor() geometry.Vec2 {
	return f.top().cursor
}

// Bounds returns the resolved rect for a box registered this frame.
func (f *FlowSolver) Bounds(id NodeId) (geometry.Rect, bool) {
	rect, ok := f.bounds[id]
	return rect, ok
}

// place advances the cursor past a child of the given size and widens the
// cross-axis extent.
func (fr *flowFrame) place(size geometry.Vec2) {
	if fr.style.Dir == DirHorizontal {
		fr.cursor.X += size.X + fr.style.Spacing
		if size.Y > fr.maxCross {
			fr.maxCross = size.Y
		}
	} else {
		fr.cursor.Y += size.Y + fr.style.Spacing
		if size.X > fr.maxCross {
			fr.maxCross = size.X
		}
	}
}

// contentSize is the extent of everything placed in the frame, trailing
// spacing excluded.
func (fr *flowFrame) contentSize() geometry.Vec2 {
	if fr.cursor == fr.origin {
		return geometry.Vec2{}
	}
	if fr.style.Dir == DirHorizontal {
		return geometry.V(fr.cursor.X-fr.origin.X-fr.style.Spacing, fr.maxCross)
	}
	return geometry.V(fr.maxCross, fr.cursor.Y-fr.origin.Y-fr.style.Spacing)
}
