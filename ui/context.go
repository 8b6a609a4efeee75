package ui

import (
	"github.com/iamnbutler/sol-ui/draw"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/layout"
)

// HitEntry is one widget's hit-testable geometry, recorded in paint order.
type HitEntry struct {
	Id        WidgetId
	Bounds    geometry.Rect
	Focusable bool
}

// Interactions is the per-layer interaction state queried by interactive
// widgets. Implemented by the interaction package; a nil Interactions makes
// every widget render in its idle state.
type Interactions interface {
	Hovered(id WidgetId) bool
	Active(id WidgetId) bool
	Focused(id WidgetId) bool
	Clicked(id WidgetId) bool
	RequestFocus(id WidgetId)
}

// Frame is the output of one declarative pass: the draw list, the
// hit-testable geometry in paint order, and the set of widget ids observed
// this frame.
type Frame struct {
	List       *draw.List
	HitEntries []HitEntry
	Observed   *IdSet
}

// Context drives one declarative render pass for one UI layer per frame.
// Every widget call derives its id, requests a box from the layout solver,
// optionally consults interaction state, and appends draw commands in paint
// order. A Context is single-threaded and owned by its layer.
type Context struct {
	list     *draw.List
	ids      *IdStack
	solver   layout.Solver
	inter    Interactions
	observed *IdSet
	entries  []HitEntry
	deferred []func()
	viewport geometry.Rect
	inFrame  bool
}

// NewContext creates a context over the given layout solver. inter may be
// nil for layers without input.
func NewContext(solver layout.Solver, inter Interactions) *Context {
	return &Context{
		list:     draw.NewList(),
		ids:      NewIdStack(),
		solver:   solver,
		inter:    inter,
		observed: NewIdSet(),
	}
}

// SetViewport sets the layer's viewport, used for layout and draw culling.
func (c *Context) SetViewport(viewport geometry.Rect) {
	c.viewport = viewport
}

// Viewport returns the current viewport.
func (c *Context) Viewport() geometry.Rect {
	return c.viewport
}

// BeginFrame resets all per-frame state: the draw list, the identity stack,
// the observed-id set and the layout pass.
func (c *Context) BeginFrame() {
	c.list.Clear()
	if c.viewport.Empty() {
		// No viewport configured yet; culling against the zero rect would
		// drop every command.
		c.list.SetViewport(nil)
	} else {
		vp := c.viewport
		c.list.SetViewport(&vp)
	}
	c.ids.Reset()
	c.observed.Clear()
	c.entries = c.entries[:0]
	c.solver.Begin(c.viewport)
	c.inFrame = true
}

// EndFrame finishes the pass and returns the frame output. An unbalanced
// identity stack is a usage error in the declarative code and panics.
func (c *Context) EndFrame() *Frame {
	if c.ids.Depth() != 0 {
		panic("ui: identity scope stack not empty at frame end")
	}
	c.solver.End()
	c.inFrame = false

	entries := make([]HitEntry, len(c.entries))
	copy(entries, c.entries)

	return &Frame{
		List:       c.list,
		HitEntries: entries,
		Observed:   c.observed,
	}
}

// Defer queues a mutation to run after the frame ends. Widget callbacks use
// this instead of mutating shared state mid-pass; the owning layer flushes
// the queue once the draw list is complete.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

// TakeDeferred returns and clears the deferred mutation queue.
func (c *Context) TakeDeferred() []func() {
	fns := c.deferred
	c.deferred = nil
	return fns
}

// PushScope opens an identity scope manually. Most code should use the
// container helpers, which balance the scope around a callback; manual pairs
// must be balanced before EndFrame.
func (c *Context) PushScope(site string) {
	id := c.ids.PushScope(site)
	c.observe(id)
}

// PushScopeKeyed opens an identity scope with an explicit disambiguator.
func (c *Context) PushScopeKeyed(site, key string) {
	id := c.ids.PushScopeKeyed(site, key)
	c.observe(id)
}

// PopScope closes the innermost manually opened scope.
func (c *Context) PopScope() {
	c.ids.PopScope()
}

// CommandCount returns the number of draw commands emitted in the most
// recent frame.
func (c *Context) CommandCount() int {
	return c.list.Len()
}

// SetCursor moves the layout position for manual placement.
func (c *Context) SetCursor(pos geometry.Vec2) {
	c.solver.SetCursor(pos)
}

// Cursor returns the current layout position.
func (c *Context) Cursor() geometry.Vec2 {
	return c.solver.Cursor()
}

// observe records an id as present this frame.
func (c *Context) observe(id WidgetId) {
	c.observed.Add(id)
}

// hitEntry registers hit-testable geometry in paint order.
func (c *Context) hitEntry(id WidgetId, bounds geometry.Rect, focusable bool) {
	c.entries = append(c.entries, HitEntry{Id: id, Bounds: bounds, Focusable: focusable})
}

// hovered reports interaction hover state, false without an input system.
func (c *Context) hovered(id WidgetId) bool {
	return c.inter != nil && c.inter.Hovered(id)
}

func (c *Context) active(id WidgetId) bool {
	return c.inter != nil && c.inter.Active(id)
}

func (c *Context) clicked(id WidgetId) bool {
	return c.inter != nil && c.inter.Clicked(id)
}
