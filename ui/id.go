// Package ui implements the identity system and the declarative context
// that drives one immediate-mode render pass per frame.
package ui

// WidgetId identifies a declarative call across frames. Ids are recomputed
// every frame from the widget's position in the scope hierarchy plus an
// optional caller-supplied disambiguator, and never persisted.
type WidgetId uint64

// FNV-1a 64-bit, applied sequentially so the combination is order-sensitive.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func hashUint64(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xFF
		h *= fnvPrime64
		v >>= 8
	}
	return h
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	// Terminator so ("ab","c") and ("a","bc") hash differently.
	h ^= 0xFF
	h *= fnvPrime64
	return h
}

// StableId derives an order-independent id from a key alone. Two calls with
// the same key produce the same id regardless of position in the tree. The
// high bit keeps stable ids in a distinct range from scoped ids.
func StableId(key string) WidgetId {
	return WidgetId(hashString(fnvOffset64, key) | 1<<63)
}

// IdStack generates hierarchical widget ids. A scope frame is pushed when
// entering a container and popped on exit; each level counts its children so
// sibling order contributes to unkeyed ids. The stack is owned by one
// Context for the duration of a frame and must be balanced at frame end.
type IdStack struct {
	stack      []WidgetId
	childCount []int
}

// NewIdStack creates a stack holding only the root scope.
func NewIdStack() *IdStack {
	s := &IdStack{}
	s.Reset()
	return s
}

// Reset drops all scopes and restarts the root child counter. Called by the
// Context at the start of each frame.
func (s *IdStack) Reset() {
	s.stack = append(s.stack[:0], WidgetId(fnvOffset64))
	s.childCount = append(s.childCount[:0], 0)
}

// Depth returns the number of scopes pushed beyond the root.
func (s *IdStack) Depth() int {
	return len(s.stack) - 1
}

// Current returns the id of the innermost scope.
func (s *IdStack) Current() WidgetId {
	return s.stack[len(s.stack)-1]
}

// NextId derives an id for the next child of the current scope from the
// parent id, the child's ordinal position and the site label. Reordering
// sibling calls changes their ids; use KeyedId when order independence is
// needed.
func (s *IdStack) NextId(site string) WidgetId {
	parent := uint64(s.Current())
	ordinal := s.childCount[len(s.childCount)-1]
	s.childCount[len(s.childCount)-1]++

	h := hashUint64(parent, uint64(ordinal))
	h = hashString(h, site)
	return WidgetId(h)
}

// KeyedId derives an id from the parent scope, the site label and an
// explicit disambiguator, without consuming an ordinal. Siblings with
// distinct keys keep their ids when reordered.
func (s *IdStack) KeyedId(site, key string) WidgetId {
	h := hashString(uint64(s.Current()), site)
	h = hashString(h, key)
	return WidgetId(h)
}

// PushScope enters a container scope and returns the scope's id.
func (s *IdStack) PushScope(site string) WidgetId {
	id := s.NextId(site)
	s.push(id)
	return id
}

// PushScopeKeyed enters a container scope with an explicit disambiguator.
func (s *IdStack) PushScopeKeyed(site, key string) WidgetId {
	id := s.KeyedId(site, key)
	s.push(id)
	return id
}

func (s *IdStack) push(id WidgetId) {
	s.stack = append(s.stack, id)
	s.childCount = append(s.childCount, 0)
}

// PopScope leaves the innermost scope. Popping the root is a usage error in
// the declarative code and panics immediately, since tolerating it would
// corrupt every id generated later in the frame.
func (s *IdStack) PopScope() {
	if len(s.stack) <= 1 {
		panic("ui: PopScope without matching PushScope")
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.childCount = s.childCount[:len(s.childCount)-1]
}
