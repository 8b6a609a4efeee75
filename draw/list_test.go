package draw_test

import (
	"testing"

	"github.com/iamnbutler/sol-ui/color"
	"github.com/iamnbutler/sol-ui/draw"
	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/stretchr/testify/assert"
)

func TestAppendOrder(t *testing.T) {
	list := draw.NewList()

	list.AddRect(geometry.R(0, 0, 10, 10), color.Red)
	list.AddText(geometry.V(5, 5), "hello", draw.DefaultTextStyle())

	cmds := list.Commands()
	assert.Len(t, cmds, 2)
	assert.Equal(t, draw.OpRect, cmds[0].Op)
	assert.Equal(t, draw.OpText, cmds[1].Op)
	assert.Equal(t, 0, cmds[0].Seq)
	assert.Equal(t, 1, cmds[1].Seq)
}

// Background retrofit: [A.append, B.append, insertAt(mark, Bg)] must yield
// [Bg, A, B] with A and B keeping their relative order.
func TestInsertRectAtPreservesOrder(t *testing.T) {
	list := draw.NewList()

	mark := list.Mark()
	list.AddText(geometry.V(0, 0), "A", draw.DefaultTextStyle())
	list.AddText(geometry.V(0, 20), "B", draw.DefaultTextStyle())
	list.InsertRectAt(mark, geometry.R(0, 0, 100, 40), color.Gray)

	cmds := list.Commands()
	assert.Len(t, cmds, 3)
	assert.Equal(t, draw.OpRect, cmds[0].Op)
	assert.Equal(t, "A", cmds[1].Text)
	assert.Equal(t, "B", cmds[2].Text)

	// The background was emitted last even though it paints first.
	assert.Equal(t, 2, cmds[0].Seq)
	assert.Equal(t, 0, cmds[1].Seq)
	assert.Equal(t, 1, cmds[2].Seq)
}

func TestInsertAtMiddle(t *testing.T) {
	list := draw.NewList()

	list.AddRect(geometry.R(0, 0, 1, 1), color.Red)
	mark := list.Mark()
	list.AddRect(geometry.R(1, 0, 1, 1), color.Green)
	list.InsertRectAt(mark, geometry.R(2, 0, 1, 1), color.Blue)

	cmds := list.Commands()
	assert.Equal(t, color.Red, cmds[0].Color)
	assert.Equal(t, color.Blue, cmds[1].Color)
	assert.Equal(t, color.Green, cmds[2].Color)
}

func TestTransparentAndEmptySkipped(t *testing.T) {
	list := draw.NewList()

	list.AddRect(geometry.R(0, 0, 10, 10), color.Transparent)
	list.AddText(geometry.V(0, 0), "", draw.DefaultTextStyle())
	list.AddFrame(geometry.R(0, 0, 10, 10), draw.FrameStyle{Fill: draw.SolidFill(color.Transparent)})

	assert.True(t, list.Empty())
}

func TestClipStackIntersection(t *testing.T) {
	list := draw.NewList()

	list.PushClip(geometry.R(0, 0, 100, 100))
	list.PushClip(geometry.R(50, 50, 100, 100))

	clip, ok := list.CurrentClip()
	assert.True(t, ok)
	assert.Equal(t, geometry.R(50, 50, 50, 50), clip)

	list.PopClip()
	clip, ok = list.CurrentClip()
	assert.True(t, ok)
	assert.Equal(t, geometry.R(0, 0, 100, 100), clip)

	list.PopClip()
	_, ok = list.CurrentClip()
	assert.False(t, ok)

	cmds := list.Commands()
	assert.Len(t, cmds, 4)
	assert.Equal(t, draw.OpPushClip, cmds[0].Op)
	assert.Equal(t, draw.OpPushClip, cmds[1].Op)
	assert.Equal(t, draw.OpPopClip, cmds[2].Op)
	assert.Equal(t, draw.OpPopClip, cmds[3].Op)
}

func TestDisjointClipDegenerates(t *testing.T) {
	list := draw.NewList()

	list.PushClip(geometry.R(0, 0, 10, 10))
	list.PushClip(geometry.R(100, 100, 10, 10))

	clip, ok := list.CurrentClip()
	assert.True(t, ok)
	assert.True(t, clip.Empty())
	assert.Equal(t, geometry.V(100, 100), clip.Pos)
}

func TestUnbalancedPopClipIgnored(t *testing.T) {
	list := draw.NewList()
	list.PopClip()
	assert.True(t, list.Empty())
}

func TestViewportCulling(t *testing.T) {
	list := draw.NewList()
	viewport := geometry.R(0, 0, 100, 100)
	list.SetViewport(&viewport)

	list.AddRect(geometry.R(200, 200, 10, 10), color.Red) // outside
	list.AddRect(geometry.R(90, 90, 20, 20), color.Green) // straddles edge

	cmds := list.Commands()
	assert.Len(t, cmds, 1)
	assert.Equal(t, color.Green, cmds[0].Color)
}

func TestClearResetsSeq(t *testing.T) {
	list := draw.NewList()
	list.AddRect(geometry.R(0, 0, 1, 1), color.Red)
	list.Clear()

	assert.True(t, list.Empty())

	list.AddRect(geometry.R(0, 0, 1, 1), color.Red)
	assert.Equal(t, 0, list.Commands()[0].Seq)
}
