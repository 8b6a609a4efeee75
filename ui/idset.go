package ui

import "github.com/kamstrup/intmap"

// IdSet is the set of widget ids observed during one frame. The interaction
// system uses it to garbage-collect state for widgets that disappeared from
// the declarative tree.
type IdSet struct {
	m *intmap.Map[WidgetId, struct{}]
}

// NewIdSet creates an empty set.
func NewIdSet() *IdSet {
	return &IdSet{m: intmap.New[WidgetId, struct{}](256)}
}

// Add records an id.
func (s *IdSet) Add(id WidgetId) {
	s.m.Put(id, struct{}{})
}

// Contains reports whether the id was recorded.
func (s *IdSet) Contains(id WidgetId) bool {
	_, ok := s.m.Get(id)
	return ok
}

// Len returns the number of recorded ids.
func (s *IdSet) Len() int {
	return s.m.Len()
}

// Clear removes all ids.
func (s *IdSet) Clear() {
	s.m.Clear()
}
