package debugui_test

import (
	"testing"

	"github.com/iamnbutler/sol-ui/debugui"
	"github.com/iamnbutler/sol-ui/layer"
	"github.com/stretchr/testify/assert"
)

func TestOverlayHistoryClamped(t *testing.T) {
	for _, requested := range []int{-10, 0, 1, 120} {
		o := debugui.NewOverlay(layer.NewManager(), requested)
		assert.GreaterOrEqual(t, o.HistoryLen(), 1, "history must never be empty")
		if requested >= 1 {
			assert.Equal(t, requested, o.HistoryLen())
		}
	}
}

func TestFrameTimerAdvances(t *testing.T) {
	ft := debugui.NewFrameTimer()
	assert.GreaterOrEqual(t, ft.GetDeltaTime(), float32(0))
}
