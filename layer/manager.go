package layer

import (
	"context"
	"sort"
	"time"

	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/draw"
	"github.com/iamnbutler/sol-ui/entity"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/interaction"
	"github.com/iamnbutler/sol-ui/layout"
	"github.com/iamnbutler/sol-ui/ui"
)

// Handle identifies a layer for removal.
type Handle uint64

// RawFunc produces a raw layer's payload for one frame. The manager does not
// interpret the payload; the renderer decides what it can do with it.
type RawFunc func() any

// UiFunc declares a UI layer's widget tree for one frame.
type UiFunc func(*ui.Context)

// Result is one layer's output for a frame, in composite order.
type Result struct {
	ZIndex     int
	Kind       Kind
	Clear      bool
	ClearColor color.Color
	Blend      Blend

	// List is set for UI layers, Raw for raw layers.
	List *draw.List
	Raw  any
}

// Renderer composites the frame's layer results onto a target. RenderFrame
// hands results over fire-and-forget; the renderer must not retain the draw
// lists past the call.
type Renderer interface {
	Composite(results []Result)
}

type statsInternal struct {
	renderCount   int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (s *statsInternal) record(d time.Duration) {
	s.renderCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

type layerEntry struct {
	handle Handle
	seq    uint64
	opts   Options
	kind   Kind

	raw RawFunc

	ctx    *ui.Context
	inter  *interaction.System
	uiFunc UiFunc

	stats statsInternal
}

// Manager owns the layer stack. Layers are kept sorted by z index ascending,
// ties broken by insertion order, so compositing iterates forward and input
// routing iterates backward. Not safe for concurrent use; one goroutine
// drives frames and input.
type Manager struct {
	layers   []*layerEntry
	nextId   uint64
	viewport geometry.Rect
	store    *entity.Store
}

// NewManager creates an empty layer stack.
func NewManager() *Manager {
	return &Manager{}
}

// AttachStore registers an entity store whose pending releases are reclaimed
// at the end of every frame.
func (m *Manager) AttachStore(store *entity.Store) {
	m.store = store
}

// SetViewport sets the viewport shared by all UI layers.
func (m *Manager) SetViewport(viewport geometry.Rect) {
	m.viewport = viewport
	for _, l := range m.layers {
		if l.ctx != nil {
			l.ctx.SetViewport(viewport)
		}
	}
}

// Viewport returns the current viewport.
func (m *Manager) Viewport() geometry.Rect {
	return m.viewport
}

func (m *Manager) add(l *layerEntry) Handle {
	m.nextId++
	l.handle = Handle(m.nextId)
	l.seq = m.nextId
	l.stats.minDuration = time.Duration(1<<63 - 1)
	m.layers = append(m.layers, l)

	sort.SliceStable(m.layers, func(i, j int) bool {
		if m.layers[i].opts.ZIndex != m.layers[j].opts.ZIndex {
			return m.layers[i].opts.ZIndex < m.layers[j].opts.ZIndex
		}
		return m.layers[i].seq < m.layers[j].seq
	})
	return l.handle
}

// AddRaw adds a raw layer at the given z index.
func (m *Manager) AddRaw(z int, opts Options, fn RawFunc) Handle {
	if fn == nil {
		panic("layer: nil raw render function")
	}
	opts.ZIndex = z
	return m.add(&layerEntry{opts: opts, kind: KindRaw, raw: fn})
}

// AddUi adds a declarative UI layer at the given z index. The layer owns its
// context, flow solver and interaction state for its whole lifetime.
func (m *Manager) AddUi(z int, opts Options, fn UiFunc) Handle {
	if fn == nil {
		panic("layer: nil ui render function")
	}
	opts.ZIndex = z

	inter := interaction.NewSystem()
	ctx := ui.NewContext(layout.NewFlowSolver(), inter)
	ctx.SetViewport(m.viewport)

	return m.add(&layerEntry{
		opts:   opts,
		kind:   KindUi,
		ctx:    ctx,
		inter:  inter,
		uiFunc: fn,
	})
}

// Remove deletes a layer, dropping its interaction state. Reports whether
// the handle was found.
func (m *Manager) Remove(h Handle) bool {
	for i, l := range m.layers {
		if l.handle == h {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of layers.
func (m *Manager) Len() int {
	return len(m.layers)
}

// RenderFrame renders every layer in ascending z order and returns the
// composite list. UI layers run their declarative pass, install the new hit
// geometry into their interaction system, then flush deferred mutations.
// Pending entity releases are reclaimed once all layers have rendered.
//
// The stack is snapshotted first, so deferred mutations may add or remove
// layers; structural changes take effect next frame.
func (m *Manager) RenderFrame() []Result {
	snapshot := make([]*layerEntry, len(m.layers))
	copy(snapshot, m.layers)

	results := make([]Result, 0, len(snapshot))

	for _, l := range snapshot {
		start := time.Now()

		res := Result{
			ZIndex:     l.opts.ZIndex,
			Kind:       l.kind,
			Clear:      l.opts.Clear,
			ClearColor: l.opts.ClearColor,
			Blend:      l.opts.Blend,
		}

		switch l.kind {
		case KindRaw:
			res.Raw = l.raw()
		case KindUi:
			l.ctx.BeginFrame()
			l.uiFunc(l.ctx)
			frame := l.ctx.EndFrame()
			l.inter.FinishFrame(frame.HitEntries, frame.Observed)
			for _, fn := range l.ctx.TakeDeferred() {
				fn()
			}
			res.List = frame.List
		}

		l.stats.record(time.Since(start))
		results = append(results, res)
	}

	if m.store != nil {
		m.store.Cleanup()
	}
	return results
}

// RouteInput dispatches an event to the topmost layer that opted into input
// and reports whether any layer received it. An input layer consumes the
// event unconditionally, so it occludes everything beneath it even where it
// drew nothing.
func (m *Manager) RouteInput(ev interaction.Event) bool {
	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if !l.opts.Input {
			continue
		}
		if l.inter != nil {
			l.inter.HandleInput(ev)
		}
		return true
	}
	return false
}

// Run drives frames at the given interval until the context is cancelled,
// handing each frame's results to the renderer.
func (m *Manager) Run(ctx context.Context, interval time.Duration, renderer Renderer) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			renderer.Composite(m.RenderFrame())
		}
	}
}

// LayerStats is render timing for a single layer.
type LayerStats struct {
	ZIndex        int
	Kind          Kind
	Input         bool
	Commands      int
	RenderCount   int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Stats is a snapshot of per-layer render timings, in composite order.
type Stats struct {
	LayerCount  int
	TotalFrames int64
	Layers      []LayerStats
}

// Stats returns render statistics for every layer.
func (m *Manager) Stats() *Stats {
	stats := &Stats{
		LayerCount: len(m.layers),
		Layers:     make([]LayerStats, len(m.layers)),
	}

	var total int64
	for i, l := range m.layers {
		avg := time.Duration(0)
		if l.stats.renderCount > 0 {
			avg = l.stats.totalDuration / time.Duration(l.stats.renderCount)
		}

		commands := 0
		if l.ctx != nil {
			commands = l.ctx.CommandCount()
		}

		stats.Layers[i] = LayerStats{
			ZIndex:        l.opts.ZIndex,
			Kind:          l.kind,
			Input:         l.opts.Input,
			Commands:      commands,
			RenderCount:   l.stats.renderCount,
			MinDuration:   l.stats.minDuration,
			MaxDuration:   l.stats.maxDuration,
			AvgDuration:   avg,
			LastDuration:  l.stats.lastDuration,
			TotalDuration: l.stats.totalDuration,
		}
		total += l.stats.renderCount
	}

	stats.TotalFrames = total
	return stats
}
