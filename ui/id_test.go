package ui_test

import (
	"testing"

	"github.com/iamnbutler/sol-ui/ui"
	"github.com/stretchr/testify/assert"
)

func TestIdStableAcrossFrames(t *testing.T) {
	frame := func() []ui.WidgetId {
		stack := ui.NewIdStack()
		var ids []ui.WidgetId
		ids = append(ids, stack.NextId("text"))
		stack.PushScope("panel")
		ids = append(ids, stack.NextId("button"))
		ids = append(ids, stack.KeyedId("button", "inc"))
		stack.PopScope()
		return ids
	}

	assert.Equal(t, frame(), frame(), "identical call structure must yield identical ids")
}

func TestOrdinalPositionMatters(t *testing.T) {
	stack := ui.NewIdStack()
	first := stack.NextId("button")
	second := stack.NextId("button")

	assert.NotEqual(t, first, second, "same site at different sibling positions must differ")
}

func TestKeyedIdsOrderIndependent(t *testing.T) {
	stack := ui.NewIdStack()
	stack.NextId("text") // consume an ordinal
	inc1 := stack.KeyedId("button", "inc")

	stack.Reset()
	inc2 := stack.KeyedId("button", "inc")

	assert.Equal(t, inc1, inc2, "keyed ids must not depend on sibling order")
}

func TestKeyedIdsScopeDependent(t *testing.T) {
	stack := ui.NewIdStack()
	outer := stack.KeyedId("button", "inc")

	stack.PushScope("panel")
	inner := stack.KeyedId("button", "inc")
	stack.PopScope()

	assert.NotEqual(t, outer, inner, "same key in different scopes must differ")
}

func TestDistinctKeysDistinctIds(t *testing.T) {
	stack := ui.NewIdStack()
	assert.NotEqual(t, stack.KeyedId("button", "inc"), stack.KeyedId("button", "dec"))
}

func TestScopeChangesChildIds(t *testing.T) {
	stack := ui.NewIdStack()

	stack.PushScope("left")
	a := stack.NextId("label")
	stack.PopScope()

	stack.PushScope("right")
	b := stack.NextId("label")
	stack.PopScope()

	assert.NotEqual(t, a, b)
}

func TestSiblingScopesDiffer(t *testing.T) {
	stack := ui.NewIdStack()

	first := stack.PushScope("row")
	stack.PopScope()
	second := stack.PushScope("row")
	stack.PopScope()

	assert.NotEqual(t, first, second, "repeated scopes at the same level must differ by ordinal")
}

func TestPopWithoutPushPanics(t *testing.T) {
	stack := ui.NewIdStack()
	assert.Panics(t, func() { stack.PopScope() })
}

func TestDepth(t *testing.T) {
	stack := ui.NewIdStack()
	assert.Equal(t, 0, stack.Depth())

	stack.PushScope("a")
	stack.PushScope("b")
	assert.Equal(t, 2, stack.Depth())

	stack.PopScope()
	assert.Equal(t, 1, stack.Depth())
}

func TestStableIdIgnoresScope(t *testing.T) {
	a := ui.StableId("sidebar")
	b := ui.StableId("sidebar")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, ui.StableId("toolbar"))
}

func TestIdSet(t *testing.T) {
	set := ui.NewIdSet()
	set.Add(ui.WidgetId(42))

	assert.True(t, set.Contains(ui.WidgetId(42)))
	assert.False(t, set.Contains(ui.WidgetId(7)))
	assert.Equal(t, 1, set.Len())

	set.Clear()
	assert.Equal(t, 0, set.Len())
}
