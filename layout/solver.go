// Package layout defines the boundary contract between the UI context and a
// layout solver. Boxes are registered in tree order keyed by node id, and
// every registration resolves a bounding rectangle synchronously before the
// declarative call returns. The bundled FlowSolver implements simple
// vertical/horizontal flow; a flexbox-style solver is an external
// collaborator implementing the same interface.
package layout

import "github.com/iamnbutler/sol-ui/geometry"

// NodeId keys a layout box. UI widget ids convert to NodeId directly.
type NodeId uint64

// Dir is the main-axis direction of a container.
type Dir uint8

const (
	DirVertical Dir = iota
	DirHorizontal
)

// Style carries the constraints a container registers with the solver.
type Style struct {
	Dir     Dir
	Spacing float32
	Padding float32
}

// Solver resolves a bounding rectangle for every registered box. All calls
// are synchronous; a rect is final as soon as the registration returns.
type Solver interface {
	// Begin starts a new frame over the given viewport.
	Begin(viewport geometry.Rect)

	// PushContainer opens a container box and returns the content origin for
	// its children.
	PushContainer(id NodeId, style Style) geometry.Vec2

	// PopContainer closes the innermost container and returns its resolved
	// bounds, sized from the content registered inside it.
	PopContainer() geometry.Rect

	// NextBox allocates a leaf box of the given size at the current flow
	// position and returns its bounds.
	NextBox(id NodeId, size geometry.Vec2) geometry.Rect

	// Advance inserts empty space along the current main axis.
	Advance(amount float32)

	// SetCursor moves the flow position for manual placement.
	SetCursor(pos geometry.Vec2)

	// Cursor returns the current flow position.
	Cursor() geometry.Vec2

	// Bounds returns the resolved rect for a box registered this frame.
	Bounds(id NodeId) (geometry.Rect, bool)

	// End finishes the frame. Unbalanced PushContainer/PopContainer pairs
	// are a usage error and panic.
	End()
}
