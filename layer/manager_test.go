package layer_test

import (
	"context"
	"testing"
	"time"

	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/entity"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/interaction"
	"github.com/iamnbutler/sol-ui/layer"
	"github.com/iamnbutler/sol-ui/ui"
	"github.com/stretchr/testify/assert"
)

func newManager() *layer.Manager {
	m := layer.NewManager()
	m.SetViewport(geometry.R(0, 0, 800, 600))
	return m
}

// click sends a matched press/release pair at the given position.
func click(m *layer.Manager, pos geometry.Vec2) {
	m.RouteInput(interaction.MouseDown(interaction.ButtonLeft, pos))
	m.RouteInput(interaction.MouseUp(interaction.ButtonLeft, pos))
}

func TestRenderOrderFollowsZ(t *testing.T) {
	m := newManager()

	m.AddRaw(5, layer.DefaultOptions(), func() any { return "top" })
	m.AddRaw(-1, layer.DefaultOptions(), func() any { return "bottom" })
	m.AddRaw(0, layer.DefaultOptions(), func() any { return "middle" })

	results := m.RenderFrame()
	assert.Len(t, results, 3)
	assert.Equal(t, "bottom", results[0].Raw)
	assert.Equal(t, "middle", results[1].Raw)
	assert.Equal(t, "top", results[2].Raw)
}

func TestEqualZKeepsInsertionOrder(t *testing.T) {
	m := newManager()

	m.AddRaw(0, layer.DefaultOptions(), func() any { return "first" })
	m.AddRaw(0, layer.DefaultOptions(), func() any { return "second" })

	results := m.RenderFrame()
	assert.Equal(t, "first", results[0].Raw)
	assert.Equal(t, "second", results[1].Raw)
}

func TestResultCarriesOptions(t *testing.T) {
	m := newManager()

	opts := layer.DefaultOptions().
		WithClearColor(color.Black).
		WithBlend(layer.BlendAdditive)
	m.AddRaw(2, opts, func() any { return nil })

	res := m.RenderFrame()[0]
	assert.Equal(t, 2, res.ZIndex)
	assert.Equal(t, layer.KindRaw, res.Kind)
	assert.True(t, res.Clear)
	assert.Equal(t, color.Black, res.ClearColor)
	assert.Equal(t, layer.BlendAdditive, res.Blend)
}

func TestUiLayerProducesDrawList(t *testing.T) {
	m := newManager()

	m.AddUi(0, layer.DefaultOptions(), func(c *ui.Context) {
		c.Text("hello")
		c.RectFilled(geometry.V(50, 50), color.Red)
	})

	res := m.RenderFrame()[0]
	assert.Equal(t, layer.KindUi, res.Kind)
	assert.NotNil(t, res.List)
	assert.Equal(t, 2, res.List.Len())
}

func TestUnsetViewportDoesNotCull(t *testing.T) {
	m := layer.NewManager()

	m.AddUi(0, layer.DefaultOptions(), func(c *ui.Context) {
		c.RectFilled(geometry.V(50, 50), color.Red)
	})

	res := m.RenderFrame()[0]
	assert.Equal(t, 1, res.List.Len(), "rect should not be culled by an unset viewport")
}

func TestRouteInputPicksTopmostOptedIn(t *testing.T) {
	m := newManager()

	var baseEvents, topEvents int
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("base", "base") {
			baseEvents++
		}
	})
	m.AddUi(10, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("top", "top") {
			topEvents++
		}
	})

	m.RenderFrame()
	click(m, geometry.V(20, 20)) // both layers have a button here
	m.RenderFrame()

	assert.Equal(t, 0, baseEvents)
	assert.Equal(t, 1, topEvents)
}

func TestRouteInputSkipsNonInputLayers(t *testing.T) {
	m := newManager()

	var clicks int
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("only", "only") {
			clicks++
		}
	})
	m.AddUi(10, layer.DefaultOptions(), func(c *ui.Context) {
		c.Text("decoration, no input")
	})

	m.RenderFrame()
	click(m, geometry.V(20, 20))
	m.RenderFrame()

	assert.Equal(t, 1, clicks, "a non-input layer above must not intercept")
}

func TestBlanketOcclusion(t *testing.T) {
	m := newManager()

	var clicks int
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("shielded", "shielded") {
			clicks++
		}
	})
	// A modal scrim that draws nothing still swallows every event.
	m.AddUi(1, layer.DefaultOptions().WithInput(), func(c *ui.Context) {})

	m.RenderFrame()
	consumed := m.RouteInput(interaction.MouseDown(interaction.ButtonLeft, geometry.V(20, 20)))
	m.RouteInput(interaction.MouseUp(interaction.ButtonLeft, geometry.V(20, 20)))
	m.RenderFrame()

	assert.True(t, consumed, "the empty input layer still consumes the event")
	assert.Equal(t, 0, clicks)
}

func TestRouteInputUnconsumed(t *testing.T) {
	m := newManager()
	m.AddRaw(0, layer.DefaultOptions(), func() any { return nil })

	assert.False(t, m.RouteInput(interaction.MouseMove(geometry.V(1, 1))))
}

func TestDisambiguatedButtonsIndependent(t *testing.T) {
	m := newManager()

	counter := 0
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("inc", "inc") {
			counter++
		}
		if c.Button("dec", "dec") {
			counter--
		}
	})

	// Vertical flow from the root margin: first button spans y=[10,38),
	// the second starts at y=43.
	m.RenderFrame()
	click(m, geometry.V(20, 20))
	m.RenderFrame()
	assert.Equal(t, 1, counter)

	click(m, geometry.V(20, 50))
	m.RenderFrame()
	assert.Equal(t, 0, counter)
}

func TestDeferredMutationsFlushAfterPass(t *testing.T) {
	m := newManager()

	value := 0
	sawDuringPass := -1
	m.AddUi(0, layer.DefaultOptions(), func(c *ui.Context) {
		c.Defer(func() { value++ })
		sawDuringPass = value
	})

	m.RenderFrame()
	assert.Equal(t, 0, sawDuringPass, "mutation must not land mid-pass")
	assert.Equal(t, 1, value)

	m.RenderFrame()
	assert.Equal(t, 2, value)
}

func TestAttachedStoreCleanedPerFrame(t *testing.T) {
	m := newManager()
	store := entity.NewStore()
	m.AttachStore(store)

	h := entity.Create(store, 42)
	weak := h.Downgrade()
	h.Release()

	assert.True(t, weak.Alive(), "reclamation waits for the frame boundary")
	m.RenderFrame()
	assert.False(t, weak.Alive())
}

func TestRemove(t *testing.T) {
	m := newManager()

	h := m.AddRaw(0, layer.DefaultOptions(), func() any { return nil })
	m.AddRaw(1, layer.DefaultOptions(), func() any { return nil })
	assert.Equal(t, 2, m.Len())

	assert.True(t, m.Remove(h))
	assert.False(t, m.Remove(h), "second removal of the same handle fails")
	assert.Equal(t, 1, m.Len())
}

func TestRemovedInputLayerUncoversBelow(t *testing.T) {
	m := newManager()

	var clicks int
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		if c.Button("b", "b") {
			clicks++
		}
	})
	modal := m.AddUi(1, layer.DefaultOptions().WithInput(), func(c *ui.Context) {})

	m.RenderFrame()
	click(m, geometry.V(20, 20))
	m.RenderFrame()
	assert.Equal(t, 0, clicks)

	m.Remove(modal)
	click(m, geometry.V(20, 20))
	m.RenderFrame()
	assert.Equal(t, 1, clicks)
}

func TestStats(t *testing.T) {
	m := newManager()

	m.AddRaw(3, layer.DefaultOptions(), func() any { return nil })
	m.AddUi(0, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
		c.Text("one command")
	})

	m.RenderFrame()
	m.RenderFrame()

	stats := m.Stats()
	assert.Equal(t, 2, stats.LayerCount)
	assert.Equal(t, int64(4), stats.TotalFrames)

	// Snapshot order follows composite order.
	uiStats := stats.Layers[0]
	assert.Equal(t, layer.KindUi, uiStats.Kind)
	assert.True(t, uiStats.Input)
	assert.Equal(t, 1, uiStats.Commands)
	assert.Equal(t, int64(2), uiStats.RenderCount)
	assert.GreaterOrEqual(t, uiStats.MaxDuration, uiStats.MinDuration)
	assert.Equal(t, layer.KindRaw, stats.Layers[1].Kind)
}

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Composite(results []layer.Result) {
	r.frames++
}

func TestRunDrivesRenderer(t *testing.T) {
	m := newManager()
	m.AddRaw(0, layer.DefaultOptions(), func() any { return nil })

	renderer := &countingRenderer{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	m.Run(ctx, 5*time.Millisecond, renderer)
	assert.Greater(t, renderer.frames, 0)
}

func TestNilRenderFuncPanics(t *testing.T) {
	m := newManager()
	assert.Panics(t, func() { m.AddRaw(0, layer.DefaultOptions(), nil) })
	assert.Panics(t, func() { m.AddUi(0, layer.DefaultOptions(), nil) })
}
