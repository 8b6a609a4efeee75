// Package color provides the RGBA color type used by draw commands.
// Channels are linear floats in [0, 1].
package color

// Color is an RGBA color with float channels.
type Color struct {
	R, G, B, A float32
}

// RGB constructs an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA constructs a color with explicit alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Transparent reports whether the color contributes nothing when painted.
func (c Color) Transparent() bool {
	return c.A <= 0
}

// Bytes returns the color as 8-bit premultiplied-friendly channels.
// Used by rendering backends that consume byte colors.
func (c Color) Bytes() (r, g, b, a uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A)
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	DarkGray    = RGB(0.2, 0.2, 0.2)
	LightGray   = RGB(0.8, 0.8, 0.8)
	Transparent = RGBA(0, 0, 0, 0)
)
