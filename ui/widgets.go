package ui

import (
	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/draw"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/layout"
)

// Rough text metrics until a shaping backend is queried; the draw list
// treats text as opaque payload either way.
func measureText(text string, size float32) geometry.Vec2 {
	return geometry.V(float32(len(text))*size*0.6, size)
}

// Text draws a line of text at the next flow position.
func (c *Context) Text(text string) {
	c.TextStyled(text, draw.DefaultTextStyle())
}

// TextStyled draws a line of text with explicit styling.
func (c *Context) TextStyled(text string, style draw.TextStyle) {
	rect := c.solver.NextBox(0, measureText(text, style.Size))
	c.list.AddText(rect.Pos, text, style)
}

// RectFilled draws a solid rectangle at the next flow position.
func (c *Context) RectFilled(size geometry.Vec2, col color.Color) {
	rect := c.solver.NextBox(0, size)
	c.list.AddRect(rect, col)
}

// Frame draws a styled frame at the next flow position.
func (c *Context) Frame(size geometry.Vec2, style draw.FrameStyle) {
	rect := c.solver.NextBox(0, size)
	c.list.AddFrame(rect, style)
}

// Spacer inserts empty space along the current layout axis.
func (c *Context) Spacer(amount float32) {
	c.solver.Advance(amount)
}

// container runs f inside a new identity scope and layout container,
// retrofitting the background behind the children once bounds are known.
func (c *Context) container(site, key string, style layout.Style, background *color.Color, f func(*Context)) geometry.Rect {
	var id WidgetId
	if key != "" {
		id = c.ids.PushScopeKeyed(site, key)
	} else {
		id = c.ids.PushScope(site)
	}
	c.observe(id)

	c.solver.PushContainer(layout.NodeId(id), style)
	mark := c.list.Mark()

	f(c)

	rect := c.solver.PopContainer()
	if background != nil {
		c.list.InsertRectAt(mark, rect, *background)
	}
	c.ids.PopScope()
	return rect
}

// Vertical lays children out top to bottom.
func (c *Context) Vertical(f func(*Context)) geometry.Rect {
	return c.container("vertical", "", layout.Style{Dir: layout.DirVertical}, nil, f)
}

// Horizontal lays children out left to right.
func (c *Context) Horizontal(f func(*Context)) geometry.Rect {
	return c.container("horizontal", "", layout.Style{Dir: layout.DirHorizontal}, nil, f)
}

// Group is a vertical container with an explicit disambiguator, for
// containers created in loops.
func (c *Context) Group(key string, f func(*Context)) geometry.Rect {
	return c.container("group", key, layout.Style{Dir: layout.DirVertical}, nil, f)
}

// GroupStyled is a vertical container with a background color inserted
// behind its children.
func (c *Context) GroupStyled(background color.Color, f func(*Context)) geometry.Rect {
	return c.container("group", "", layout.Style{Dir: layout.DirVertical}, &background, f)
}

// FrameContainer wraps children in a styled frame with padding.
func (c *Context) FrameContainer(style draw.FrameStyle, padding float32, f func(*Context)) geometry.Rect {
	id := c.ids.PushScope("frame")
	c.observe(id)

	c.solver.PushContainer(layout.NodeId(id), layout.Style{Padding: padding})
	mark := c.list.Mark()

	f(c)

	rect := c.solver.PopContainer()
	c.list.InsertFrameAt(mark, rect, style)
	c.ids.PopScope()
	return rect
}

// ClipRegion clips children to a fixed rectangle placed manually.
func (c *Context) ClipRegion(rect geometry.Rect, f func(*Context)) {
	saved := c.solver.Cursor()
	c.solver.SetCursor(rect.Pos)
	c.list.PushClip(rect)

	f(c)

	c.list.PopClip()
	c.solver.SetCursor(saved)
}

// ButtonStyle configures button rendering per interaction state.
type ButtonStyle struct {
	Text    draw.TextStyle
	Idle    color.Color
	Hover   color.Color
	Active  color.Color
	Padding geometry.Vec2
	Radius  float32
}

// DefaultButtonStyle returns the stock button palette.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Text:    draw.DefaultTextStyle(),
		Idle:    color.RGB(0.25, 0.25, 0.30),
		Hover:   color.RGB(0.35, 0.35, 0.42),
		Active:  color.RGB(0.18, 0.18, 0.22),
		Padding: geometry.V(12, 6),
		Radius:  4,
	}
}

// Button draws a clickable button. The key disambiguates the button from
// siblings at the same site, so its identity survives reordering; the
// returned value is true on the frame a click completed on it.
func (c *Context) Button(key, label string) bool {
	return c.ButtonStyled(key, label, DefaultButtonStyle())
}

// ButtonStyled draws a button with an explicit style.
func (c *Context) ButtonStyled(key, label string, style ButtonStyle) bool {
	id := c.ids.KeyedId("button", key)
	c.observe(id)

	textSize := measureText(label, style.Text.Size)
	size := textSize.Add(style.Padding.Scale(2))
	rect := c.solver.NextBox(layout.NodeId(id), size)

	fill := style.Idle
	switch {
	case c.active(id):
		fill = style.Active
	case c.hovered(id):
		fill = style.Hover
	}

	frame := draw.NewFrameStyle().
		WithBackground(fill).
		WithCornerRadius(style.Radius)
	c.list.AddFrame(rect, frame)
	c.list.AddText(rect.Pos.Add(style.Padding), label, style.Text)

	c.hitEntry(id, rect, true)

	clicked := c.clicked(id)
	if clicked && c.inter != nil {
		c.inter.RequestFocus(id)
	}
	return clicked
}

// Checkbox draws a toggle box with a label and returns the value for the
// next frame: flipped on the frame it was clicked, unchanged otherwise.
func (c *Context) Checkbox(key, label string, checked bool) bool {
	id := c.ids.KeyedId("checkbox", key)
	c.observe(id)

	textStyle := draw.DefaultTextStyle()
	box := textStyle.Size
	textSize := measureText(label, textStyle.Size)
	size := geometry.V(box+6+textSize.X, maxf(box, textSize.Y))
	rect := c.solver.NextBox(layout.NodeId(id), size)

	border := color.LightGray
	if c.hovered(id) {
		border = color.White
	}
	boxRect := geometry.FromPosSize(rect.Pos, geometry.V(box, box))
	c.list.AddFrame(boxRect, draw.NewFrameStyle().
		WithBackground(color.DarkGray).
		WithBorder(1, border).
		WithCornerRadius(2))

	if checked {
		inset := geometry.V(3, 3)
		c.list.AddRect(geometry.FromPosSize(boxRect.Pos.Add(inset), boxRect.Size.Sub(inset.Scale(2))), color.White)
	}

	c.list.AddText(rect.Pos.Add(geometry.V(box+6, 0)), label, textStyle)
	c.hitEntry(id, rect, true)

	if c.clicked(id) {
		return !checked
	}
	return checked
}

// Window draws a manually placed titled container and clips its content to
// the window bounds.
func (c *Context) Window(key, title string, pos, size geometry.Vec2, f func(*Context)) {
	id := c.ids.PushScopeKeyed("window", key)
	c.observe(id)

	const titleHeight = 24

	c.list.AddRect(geometry.FromPosSize(pos, size), color.RGB(0.2, 0.2, 0.2))
	c.list.AddRect(geometry.FromPosSize(pos, geometry.V(size.X, titleHeight)), color.RGB(0.3, 0.3, 0.3))
	c.list.AddText(pos.Add(geometry.V(8, 4)), title, draw.TextStyle{Size: 16, Color: color.White})

	content := geometry.FromPosSize(
		pos.Add(geometry.V(0, titleHeight)),
		geometry.V(size.X, size.Y-titleHeight),
	)
	saved := c.solver.Cursor()
	c.solver.SetCursor(content.Pos.Add(geometry.V(8, 8)))
	c.list.PushClip(content)

	f(c)

	c.list.PopClip()
	c.solver.SetCursor(saved)
	c.ids.PopScope()
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
