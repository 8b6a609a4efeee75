// Package layer composites independent render layers in z order and routes
// input to the topmost layer that opted in. Each UI layer owns its own
// declarative context, layout solver and interaction state; raw layers carry
// an opaque payload for the renderer.
package layer

import "github.com/iamnbutler/sol-ui/color"

// Kind distinguishes the two layer flavors.
type Kind uint8

const (
	// KindRaw layers produce an opaque payload each frame, handed to the
	// renderer untouched.
	KindRaw Kind = iota
	// KindUi layers run a declarative widget pass and produce a draw list.
	KindUi
)

// String returns a human-readable name for the layer kind.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindUi:
		return "Ui"
	default:
		return "Unknown"
	}
}

// Blend selects how a layer's output is combined with the layers below it.
// The manager carries it through to the renderer without interpreting it.
type Blend uint8

const (
	BlendAlpha Blend = iota
	BlendAdditive
	BlendMultiply
)

// String returns a human-readable name for the blend mode.
func (b Blend) String() string {
	switch b {
	case BlendAlpha:
		return "Alpha"
	case BlendAdditive:
		return "Additive"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// Options configures a layer at creation time. Layers are never reconfigured
// in place; remove and re-add to change them.
type Options struct {
	ZIndex     int
	Input      bool
	Clear      bool
	ClearColor color.Color
	Blend      Blend
}

// DefaultOptions returns a non-input, non-clearing, alpha-blended layer
// configuration.
func DefaultOptions() Options {
	return Options{Blend: BlendAlpha}
}

// WithInput opts the layer into input routing. An input layer consumes every
// event routed to it, occluding all layers beneath.
func (o Options) WithInput() Options {
	o.Input = true
	return o
}

// WithClear makes the renderer clear the layer's target before compositing.
func (o Options) WithClear() Options {
	o.Clear = true
	return o
}

// WithClearColor sets the clear color and implies WithClear.
func (o Options) WithClearColor(c color.Color) Options {
	o.Clear = true
	o.ClearColor = c
	return o
}

// WithBlend sets the blend mode.
func (o Options) WithBlend(b Blend) Options {
	o.Blend = b
	return o
}
