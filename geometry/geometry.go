// Package geometry provides the 2D primitives shared by the draw list,
// layout solver and hit testing.
package geometry

// Vec2 is a 2D point or size in logical pixels.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for constructing a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: maxf(v.X, o.X), Y: maxf(v.Y, o.Y)}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: minf(v.X, o.X), Y: minf(v.Y, o.Y)}
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// R constructs a Rect from position and size components.
func R(x, y, w, h float32) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// FromPosSize constructs a Rect from a position and size vector.
func FromPosSize(pos, size Vec2) Rect {
	return Rect{Pos: pos, Size: size}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return r.Pos
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Contains reports whether the point lies inside the rectangle.
// Edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y &&
		p.X <= r.Pos.X+r.Size.X && p.Y <= r.Pos.Y+r.Size.Y
}

// Intersect returns the overlapping region of two rectangles.
// The second return value is false when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	min := r.Min().Max(other.Min())
	max := r.Max().Min(other.Max())

	if min.X < max.X && min.Y < max.Y {
		return FromPosSize(min, max.Sub(min)), true
	}
	return Rect{}, false
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
