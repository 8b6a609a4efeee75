package draw

import (
	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/geometry"
)

// TextStyle describes how a text command should be painted.
type TextStyle struct {
	Size  float32
	Color color.Color
}

// DefaultTextStyle returns the style used when a widget does not specify one.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 16, Color: color.White}
}

// CornerRadii holds the radius of each corner of a frame.
type CornerRadii struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

// UniformRadii returns equal radii for all four corners.
func UniformRadii(radius float32) CornerRadii {
	return CornerRadii{
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// Shadow describes a drop shadow behind a frame.
type Shadow struct {
	Offset geometry.Vec2
	Blur   float32
	Color  color.Color
}

// FillKind selects how a frame background is filled.
type FillKind uint8

const (
	FillSolid FillKind = iota
	FillLinearGradient
	FillRadialGradient
)

// Fill is a frame background: a solid color or a two-stop gradient.
// For linear gradients Angle is in radians; for radial gradients Start is
// the center color and End the edge color.
type Fill struct {
	Kind  FillKind
	Start color.Color
	End   color.Color
	Angle float32
}

// SolidFill returns a solid-color fill.
func SolidFill(c color.Color) Fill {
	return Fill{Kind: FillSolid, Start: c, End: c}
}

func (f Fill) visible() bool {
	return !f.Start.Transparent() || !f.End.Transparent()
}

// FrameStyle describes a styled rectangle with rounded corners, an optional
// border and an optional shadow.
type FrameStyle struct {
	Fill        Fill
	BorderWidth float32
	BorderColor color.Color
	CornerRadii CornerRadii
	Shadow      *Shadow
}

// NewFrameStyle returns a frame style with a solid white fill and no border.
func NewFrameStyle() FrameStyle {
	return FrameStyle{Fill: SolidFill(color.White), BorderColor: color.Black}
}

// WithBackground sets a solid background color.
func (s FrameStyle) WithBackground(c color.Color) FrameStyle {
	s.Fill = SolidFill(c)
	return s
}

// WithLinearGradient sets a linear gradient background.
func (s FrameStyle) WithLinearGradient(start, end color.Color, angle float32) FrameStyle {
	s.Fill = Fill{Kind: FillLinearGradient, Start: start, End: end, Angle: angle}
	return s
}

// WithRadialGradient sets a radial gradient background.
func (s FrameStyle) WithRadialGradient(center, edge color.Color) FrameStyle {
	s.Fill = Fill{Kind: FillRadialGradient, Start: center, End: edge}
	return s
}

// WithBorder sets the border width and color.
func (s FrameStyle) WithBorder(width float32, c color.Color) FrameStyle {
	s.BorderWidth = width
	s.BorderColor = c
	return s
}

// WithCornerRadius sets a uniform corner radius.
func (s FrameStyle) WithCornerRadius(radius float32) FrameStyle {
	s.CornerRadii = UniformRadii(radius)
	return s
}

// WithShadow adds a drop shadow.
func (s FrameStyle) WithShadow(offset geometry.Vec2, blur float32, c color.Color) FrameStyle {
	s.Shadow = &Shadow{Offset: offset, Blur: blur, Color: c}
	return s
}

func (s FrameStyle) visible() bool {
	if s.Fill.visible() {
		return true
	}
	if s.BorderWidth > 0 && !s.BorderColor.Transparent() {
		return true
	}
	return s.Shadow != nil && !s.Shadow.Color.Transparent()
}
