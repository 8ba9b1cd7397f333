package room

// Index addresses an arena slot at a specific generation
// A removed slot bumps its generation so indices held past removal miss
type Index struct {
	Slot uint32
	Gen  uint32
}

type slot[T any] struct {
	gen      uint32
	occupied bool
	value    T
}

// Arena is a generational slot storage with stable iteration order by slot
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value in the lowest recently freed slot or a new one
func (a *Arena[T]) Insert(value T) Index {
	a.count++
	if n := len(a.free); n > 0 {
		s := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[s].occupied = true
		a.slots[s].value = value
		return Index{Slot: s, Gen: a.slots[s].gen}
	}
	a.slots = append(a.slots, slot[T]{occupied: true, value: value})
	return Index{Slot: uint32(len(a.slots) - 1)}
}

// Get returns a pointer to the live value, nil for removed or stale indices
func (a *Arena[T]) Get(idx Index) *T {
	if int(idx.Slot) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx.Slot]
	if !s.occupied || s.gen != idx.Gen {
		return nil
	}
	return &s.value
}

func (a *Arena[T]) Contains(idx Index) bool {
	return a.Get(idx) != nil
}

// Remove frees the slot; returns false if the index was already gone
func (a *Arena[T]) Remove(idx Index) bool {
	if a.Get(idx) == nil {
		return false
	}
	s := &a.slots[idx.Slot]
	var zero T
	s.value = zero
	s.occupied = false
	s.gen++
	a.free = append(a.free, idx.Slot)
	a.count--
	return true
}

func (a *Arena[T]) Len() int {
	return a.count
}

// Each visits live values in slot order; returning false stops iteration
func (a *Arena[T]) Each(fn func(Index, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(Index{Slot: uint32(i), Gen: s.gen}, &s.value) {
			return
		}
	}
}

// Indices returns live indices in slot order
func (a *Arena[T]) Indices() []Index {
	out := make([]Index, 0, a.count)
	a.Each(func(idx Index, _ *T) bool {
		out = append(out, idx)
		return true
	})
	return out
}

// Clear removes everything and resets generations
func (a *Arena[T]) Clear() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.count = 0
}
