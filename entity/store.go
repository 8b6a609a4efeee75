// Package entity provides reference-counted persistent state for widgets
// that need memory across frames (text fields, scroll positions, counters).
// State lives in generation-tagged slots; typed handles keep it alive and
// weak handles allow lookup without affecting lifetime.
package entity

import "errors"

var (
	// ErrNotFound is returned when a handle refers to state that has been
	// reclaimed, or whose slot was reused for a newer entity.
	ErrNotFound = errors.New("entity: state not found")

	// ErrBorrowConflict is returned when exclusive access is requested on an
	// entity that is already exclusively borrowed, such as mutating an entity
	// from within its own access callback.
	ErrBorrowConflict = errors.New("entity: state already exclusively borrowed")
)

type slot struct {
	data       any
	generation uint32
	refs       uint32
	borrowed   bool
}

func (s *slot) valid(generation uint32) bool {
	return s.data != nil && s.generation == generation
}

// Store owns all entity state and manages its lifecycle. Slots are reused
// after reclamation; the generation counter guards against stale handles.
// A Store lives for the whole program and is the only structure shared
// across frame boundaries and layers.
type Store struct {
	slots    []slot
	freeList []uint32
	pending  []uint32
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Create allocates a new slot holding value and returns a strong handle with
// a reference count of one.
func Create[T any](s *Store, value T) *Handle[T] {
	index, generation := s.allocate()

	sl := &s.slots[index]
	sl.data = &value
	sl.refs = 1

	return &Handle[T]{store: s, id: NewId(index, generation)}
}

func (s *Store) allocate() (uint32, uint32) {
	if n := len(s.freeList); n > 0 {
		index := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		return index, s.slots[index].generation
	}

	index := uint32(len(s.slots))
	s.slots = append(s.slots, slot{})
	return index, 0
}

func (s *Store) lookup(id Id) *slot {
	index := int(id.Index())
	if index >= len(s.slots) {
		return nil
	}
	sl := &s.slots[index]
	if !sl.valid(id.Generation()) {
		return nil
	}
	return sl
}

func (s *Store) incrementRef(id Id) {
	if sl := s.lookup(id); sl != nil {
		sl.refs++
	}
}

func (s *Store) decrementRef(id Id) {
	sl := s.lookup(id)
	if sl == nil {
		return
	}
	if sl.refs > 0 {
		sl.refs--
	}
	if sl.refs == 0 {
		// Reclamation is deferred to Cleanup so a drop during a frame never
		// invalidates state another widget is still reading this frame.
		s.pending = append(s.pending, id.Index())
	}
}

// Cleanup reclaims slots whose reference count reached zero. Call at frame
// boundaries. Reclaimed slots bump their generation, so stale handles fail
// lookup instead of aliasing the reused slot.
func (s *Store) Cleanup() {
	for _, index := range s.pending {
		sl := &s.slots[index]
		if sl.refs == 0 && sl.data != nil {
			sl.data = nil
			sl.generation++
			s.freeList = append(s.freeList, index)
		}
	}
	s.pending = s.pending[:0]
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].data != nil {
			n++
		}
	}
	return n
}

// Cap returns the total number of allocated slots, live or free.
func (s *Store) Cap() int {
	return len(s.slots)
}
