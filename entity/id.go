package entity

// Id encodes both the slot generation (upper 32 bits) and the slot index
// (lower 32 bits). The generation prevents a handle from aliasing state that
// was reclaimed and the slot reused.
type Id uint64

// NewId creates an Id from a slot index and generation.
func NewId(index uint32, generation uint32) Id {
	return Id(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the id.
func (id Id) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the id.
func (id Id) Generation() uint32 {
	return uint32(id >> 32)
}
