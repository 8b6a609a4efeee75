// Package ebiten bridges the debug overlay to Ebiten via the cimgui-go
// Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend embeds the cimgui Ebiten backend so the overlay can be drawn
// from an Ebiten game loop without importing the backend package directly.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
