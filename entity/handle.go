package entity

// Handle is a strong, typed reference into a Store. It carries no payload,
// only an identifier; cloning is cheap. The backing state stays alive while
// at least one strong handle exists.
type Handle[T any] struct {
	store    *Store
	id       Id
	released bool
}

// Id returns the entity identifier.
func (h *Handle[T]) Id() Id {
	return h.id
}

// Clone returns a new strong handle to the same state, incrementing the
// reference count.
func (h *Handle[T]) Clone() *Handle[T] {
	if h.released {
		panic("entity: Clone on released handle")
	}
	h.store.incrementRef(h.id)
	return &Handle[T]{store: h.store, id: h.id}
}

// Release drops this handle's reference. When the count reaches zero the
// state is reclaimed at the next Store.Cleanup. Releasing twice is a
// programming error and panics.
func (h *Handle[T]) Release() {
	if h.released {
		panic("entity: double Release of handle")
	}
	h.released = true
	h.store.decrementRef(h.id)
}

// With grants exclusive access to the state for the duration of f. Returns
// ErrNotFound if the state was reclaimed and ErrBorrowConflict if the entity
// is already exclusively borrowed. The borrow must not outlive f.
func (h *Handle[T]) With(f func(*T)) error {
	return withMut(h.store, h.id, f)
}

// Read calls f with a copy of the current state. Returns ErrNotFound if the
// state was reclaimed.
func (h *Handle[T]) Read(f func(T)) error {
	sl := h.store.lookup(h.id)
	if sl == nil {
		return ErrNotFound
	}
	f(*sl.data.(*T))
	return nil
}

// Get returns a copy of the current state.
func (h *Handle[T]) Get() (T, error) {
	var out T
	err := h.Read(func(v T) { out = v })
	return out, err
}

// Downgrade produces a weak handle that does not keep the state alive.
func (h *Handle[T]) Downgrade() *Weak[T] {
	return &Weak[T]{store: h.store, id: h.id}
}

// Weak is a non-owning reference into a Store. Resolving it after the state
// was reclaimed fails with ErrNotFound; it can never observe different state
// through a reused slot.
type Weak[T any] struct {
	store *Store
	id    Id
}

// Id returns the entity identifier.
func (w *Weak[T]) Id() Id {
	return w.id
}

// Alive reports whether the backing state still exists.
func (w *Weak[T]) Alive() bool {
	return w.store.lookup(w.id) != nil
}

// Upgrade returns a new strong handle if the state is still alive.
func (w *Weak[T]) Upgrade() (*Handle[T], error) {
	if w.store.lookup(w.id) == nil {
		return nil, ErrNotFound
	}
	w.store.incrementRef(w.id)
	return &Handle[T]{store: w.store, id: w.id}, nil
}

// With grants exclusive access through the weak handle, failing with
// ErrNotFound if the state was reclaimed.
func (w *Weak[T]) With(f func(*T)) error {
	return withMut(w.store, w.id, f)
}

func withMut[T any](store *Store, id Id, f func(*T)) error {
	sl := store.lookup(id)
	if sl == nil {
		return ErrNotFound
	}
	if sl.borrowed {
		return ErrBorrowConflict
	}

	sl.borrowed = true
	defer func() { sl.borrowed = false }()

	f(sl.data.(*T))
	return nil
}
