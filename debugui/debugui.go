// Package debugui renders Dear ImGui inspection windows for a running layer
// stack: the layer table, per-layer render timings and entity store
// occupancy.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/iamnbutler/sol-ui/entity"
	"github.com/iamnbutler/sol-ui/layer"
)

// Overlay renders debug windows for one manager. Attach an entity store to
// include occupancy in the output.
type Overlay struct {
	manager *layer.Manager
	store   *entity.Store

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewOverlay creates an overlay tracking the given manager with a frame-time
// history of historyFrames samples (at least one).
func NewOverlay(manager *layer.Manager, historyFrames int) *Overlay {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &Overlay{
		manager:       manager,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// HistoryLen returns the number of frame-time samples the overlay retains.
func (o *Overlay) HistoryLen() int {
	return len(o.frameHistory)
}

// AttachStore includes the entity store in the rendered stats.
func (o *Overlay) AttachStore(store *entity.Store) {
	o.store = store
}

// Render draws the overlay windows. Call between imgui NewFrame and Render
// with the frame's delta time in seconds.
func (o *Overlay) Render(deltaTime float32) {
	o.renderLayerStats(deltaTime)
	if o.store != nil {
		o.renderEntityStats()
	}
}

func (o *Overlay) renderLayerStats(deltaTime float32) {
	if !imgui.BeginV("Layer Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	stats := o.manager.Stats()

	imgui.Text(fmt.Sprintf("Layers: %d", stats.LayerCount))
	imgui.Text(fmt.Sprintf("Total Renders: %d", stats.TotalFrames))

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	if imgui.TreeNodeStr("Layer Stack") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("LayerTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Z")
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Input")
			imgui.TableSetupColumn("Commands")
			imgui.TableSetupColumn("Last (ms)")
			imgui.TableHeadersRow()

			for _, l := range stats.Layers {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", l.ZIndex))
				imgui.TableNextColumn()
				imgui.Text(l.Kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%t", l.Input))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", l.Commands))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(l.LastDuration)/float64(time.Millisecond)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Render Timings") {
		for _, l := range stats.Layers {
			imgui.BulletText(fmt.Sprintf("z=%d %s: avg %v, min %v, max %v over %d renders",
				l.ZIndex, l.Kind, l.AvgDuration, l.MinDuration, l.MaxDuration, l.RenderCount))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (o *Overlay) renderEntityStats() {
	if !imgui.BeginV("Entity Store", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Live Entities: %d", o.store.Len()))
	imgui.Text(fmt.Sprintf("Slot Capacity: %d", o.store.Cap()))

	imgui.End()
}

// FrameTimer yields the per-frame delta fed into Overlay.Render. Call
// GetDeltaTime exactly once per frame; each call re-anchors the timer.
type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

// GetDeltaTime returns the seconds elapsed since the previous call (or since
// construction on the first call).
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}
