// Package ebiten adapts the layer manager to the Ebiten game loop: it polls
// input into events, drives a frame per tick and rasterizes draw lists with
// Ebiten's vector primitives.
package ebiten

import (
	"image"
	stdcolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/draw"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/interaction"
	"github.com/iamnbutler/sol-ui/layer"
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	num    int
}{
	{ebiten.MouseButtonLeft, interaction.ButtonLeft},
	{ebiten.MouseButtonRight, interaction.ButtonRight},
	{ebiten.MouseButtonMiddle, interaction.ButtonMiddle},
}

// Game drives a layer.Manager from Ebiten's Update/Draw/Layout cycle.
// Construct with NewGame and hand to ebiten.RunGame.
type Game struct {
	manager *layer.Manager

	lastCursor geometry.Vec2
	hasCursor  bool

	touchIds []ebiten.TouchID

	width  int
	height int
}

// NewGame wraps a manager for ebiten.RunGame.
func NewGame(manager *layer.Manager) *Game {
	return &Game{manager: manager}
}

// Manager returns the wrapped layer manager.
func (g *Game) Manager() *layer.Manager {
	return g.manager
}

// Update polls input devices and routes the resulting events. Called by
// Ebiten once per tick.
func (g *Game) Update() error {
	g.pollMouse()
	g.pollTouches()
	return nil
}

func (g *Game) pollMouse() {
	cx, cy := ebiten.CursorPosition()
	pos := geometry.V(float32(cx), float32(cy))

	inside := cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
	if inside {
		if !g.hasCursor || pos != g.lastCursor {
			g.manager.RouteInput(interaction.MouseMove(pos))
		}
		g.lastCursor = pos
		g.hasCursor = true
	} else if g.hasCursor {
		g.manager.RouteInput(interaction.MouseLeave())
		g.hasCursor = false
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.manager.RouteInput(interaction.MouseDown(b.num, pos))
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			g.manager.RouteInput(interaction.MouseUp(b.num, pos))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.manager.RouteInput(interaction.ScrollWheel(pos, geometry.V(float32(wx), float32(wy))))
	}
}

func (g *Game) pollTouches() {
	g.touchIds = inpututil.AppendJustPressedTouchIDs(g.touchIds[:0])
	for _, id := range g.touchIds {
		x, y := ebiten.TouchPosition(id)
		g.manager.RouteInput(interaction.TouchBegin(int(id), geometry.V(float32(x), float32(y))))
	}

	g.touchIds = ebiten.AppendTouchIDs(g.touchIds[:0])
	for _, id := range g.touchIds {
		if inpututil.TouchPressDuration(id) > 1 {
			x, y := ebiten.TouchPosition(id)
			g.manager.RouteInput(interaction.TouchMoved(int(id), geometry.V(float32(x), float32(y))))
		}
	}

	g.touchIds = inpututil.AppendJustReleasedTouchIDs(g.touchIds[:0])
	for _, id := range g.touchIds {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.manager.RouteInput(interaction.TouchEnd(int(id), geometry.V(float32(x), float32(y))))
	}
}

// Draw renders the frame: every layer in composite order onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, res := range g.manager.RenderFrame() {
		if res.Clear {
			screen.Fill(toNRGBA(res.ClearColor))
		}

		switch res.Kind {
		case layer.KindRaw:
			// Raw payloads the backend does not understand are skipped.
			if fn, ok := res.Raw.(func(*ebiten.Image)); ok {
				fn(screen)
			}
		case layer.KindUi:
			drawList(screen, res.List)
		}
	}
}

// Layout reports the logical screen size and keeps the manager viewport in
// sync with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.manager.SetViewport(geometry.R(0, 0, float32(outsideWidth), float32(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}

// drawList rasterizes one layer's commands. Clip rects become SubImage
// targets; the clip stack mirrors the push/pop pairs in the list.
func drawList(screen *ebiten.Image, list *draw.List) {
	if list == nil {
		return
	}

	target := screen
	clipStack := []*ebiten.Image{screen}

	for _, cmd := range list.Commands() {
		switch cmd.Op {
		case draw.OpRect:
			fillRect(target, cmd.Rect, cmd.Color)

		case draw.OpText:
			ebitenutil.DebugPrintAt(target, cmd.Text, int(cmd.Rect.Pos.X), int(cmd.Rect.Pos.Y))

		case draw.OpFrame:
			drawFrame(target, cmd.Rect, cmd.Frame)

		case draw.OpPushClip:
			r := cmd.Rect
			sub := screen.SubImage(image.Rect(
				int(r.Pos.X), int(r.Pos.Y),
				int(r.Pos.X+r.Size.X), int(r.Pos.Y+r.Size.Y),
			)).(*ebiten.Image)
			clipStack = append(clipStack, sub)
			target = sub

		case draw.OpPopClip:
			if len(clipStack) > 1 {
				clipStack = clipStack[:len(clipStack)-1]
				target = clipStack[len(clipStack)-1]
			}
		}
	}
}

func fillRect(target *ebiten.Image, r geometry.Rect, c color.Color) {
	vector.DrawFilledRect(target, r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y, toNRGBA(c), false)
}

// drawFrame approximates the frame style with vector primitives: shadow as an
// offset fill, gradients flattened to their start color, rounded corners
// ignored below the vector API's capabilities.
func drawFrame(target *ebiten.Image, r geometry.Rect, style draw.FrameStyle) {
	if style.Shadow != nil && !style.Shadow.Color.Transparent() {
		shadow := geometry.FromPosSize(r.Pos.Add(style.Shadow.Offset), r.Size)
		fillRect(target, shadow, style.Shadow.Color)
	}

	fill := style.Fill.Start
	if !fill.Transparent() {
		fillRect(target, r, fill)
	}

	if style.BorderWidth > 0 && !style.BorderColor.Transparent() {
		vector.StrokeRect(target, r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y,
			style.BorderWidth, toNRGBA(style.BorderColor), false)
	}
}

func toNRGBA(c color.Color) stdcolor.Color {
	r, g, b, a := c.Bytes()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: a}
}
