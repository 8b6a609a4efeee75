package entity_test

import (
	"fmt"
	"testing"

	"github.com/iamnbutler/sol-ui/entity"
	"github.com/stretchr/testify/assert"
)

type counterState struct {
	Value int
}

func TestIdEncoding(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,gen=%d", tt.index, tt.generation), func(t *testing.T) {
			id := entity.NewId(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}
}

func TestCreateAndRead(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{Value: 42})

	got, err := h.Get()
	assert.NoError(t, err)
	assert.Equal(t, 42, got.Value)
	assert.Equal(t, 1, store.Len())
}

func TestWithMutates(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{})

	err := h.With(func(s *counterState) { s.Value = 100 })
	assert.NoError(t, err)

	got, err := h.Get()
	assert.NoError(t, err)
	assert.Equal(t, 100, got.Value)
}

func TestReentrantBorrowFails(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{})

	var inner error
	err := h.With(func(s *counterState) {
		inner = h.With(func(s *counterState) { s.Value++ })
	})
	assert.NoError(t, err)
	assert.ErrorIs(t, inner, entity.ErrBorrowConflict)

	// The borrow window closed with the callback; access works again.
	assert.NoError(t, h.With(func(s *counterState) { s.Value = 7 }))
}

func TestRefCounting(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{Value: 1})

	clone := h.Clone()

	h.Release()
	store.Cleanup()
	assert.Equal(t, 1, store.Len(), "clone keeps state alive")

	clone.Release()
	store.Cleanup()
	assert.Equal(t, 0, store.Len())
}

func TestDoubleReleasePanics(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{})

	h.Release()
	assert.Panics(t, func() { h.Release() })
}

func TestWeakAfterReclaim(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{Value: 5})
	w := h.Downgrade()

	assert.True(t, w.Alive())

	h.Release()
	store.Cleanup()

	assert.False(t, w.Alive())
	_, err := w.Upgrade()
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.ErrorIs(t, w.With(func(s *counterState) {}), entity.ErrNotFound)
}

func TestWeakUpgradeExtendsLifetime(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{Value: 9})
	w := h.Downgrade()

	strong, err := w.Upgrade()
	assert.NoError(t, err)

	h.Release()
	store.Cleanup()
	assert.Equal(t, 1, store.Len(), "upgraded handle keeps state alive")

	strong.Release()
	store.Cleanup()
	assert.Equal(t, 0, store.Len())
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	store := entity.NewStore()

	first := entity.Create(store, counterState{Value: 1})
	firstId := first.Id()
	first.Release()
	store.Cleanup()

	second := entity.Create(store, counterState{Value: 2})
	secondId := second.Id()

	assert.Equal(t, firstId.Index(), secondId.Index(), "slot is reused")
	assert.NotEqual(t, firstId.Generation(), secondId.Generation())
}

func TestStaleWeakNeverAliasesReusedSlot(t *testing.T) {
	store := entity.NewStore()

	h := entity.Create(store, counterState{Value: 1})
	stale := h.Downgrade()
	h.Release()
	store.Cleanup()

	// New entity lands in the same slot with a newer generation.
	fresh := entity.Create(store, counterState{Value: 2})
	assert.Equal(t, h.Id().Index(), fresh.Id().Index())

	assert.False(t, stale.Alive())
	_, err := stale.Upgrade()
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCleanupIsLazy(t *testing.T) {
	store := entity.NewStore()
	h := entity.Create(store, counterState{Value: 3})
	w := h.Downgrade()

	h.Release()

	// Until Cleanup runs, the state is still observable.
	assert.True(t, w.Alive())

	store.Cleanup()
	assert.False(t, w.Alive())
}
