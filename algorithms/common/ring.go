package common

// Ring is a fixed-capacity slot buffer for streaming history.
// Slots are addressed by an external monotonic counter (index mod capacity), so
// the caller decides which cycles write and which leave a slot stale. Unwritten
// slots hold the sentinel value given at construction. Length is always the
// capacity.
type Ring[T any] struct {
	slots []T
}

// NewRing creates a ring of the given capacity with every slot set to sentinel
func NewRing[T any](capacity int, sentinel T) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}

	slots := make([]T, capacity)
	for i := range slots {
		slots[i] = sentinel
	}

	return &Ring[T]{slots: slots}
}

// Capacity returns the fixed slot count
func (r *Ring[T]) Capacity() int {
	return len(r.slots)
}

// Set writes val at index mod capacity
func (r *Ring[T]) Set(index uint64, val T) {
	r.slots[index%uint64(len(r.slots))] = val
}

// At returns the slot at index mod capacity
func (r *Ring[T]) At(index uint64) T {
	return r.slots[index%uint64(len(r.slots))]
}

// Values returns a copy of all slots in storage order
func (r *Ring[T]) Values() []T {
	out := make([]T, len(r.slots))
	copy(out, r.slots)
	return out
}

// FIFO is a bounded first-in-first-out queue that drops its oldest entry when
// full. Unlike Ring it reports only the entries actually pushed.
type FIFO[T any] struct {
	entries []T
	max     int
}

// NewFIFO creates a bounded queue holding at most max entries
func NewFIFO[T any](max int) *FIFO[T] {
	if max <= 0 {
		max = 1
	}

	return &FIFO[T]{
		entries: make([]T, 0, max),
		max:     max,
	}
}

// Push appends val, evicting the oldest entry when the queue is full
func (f *FIFO[T]) Push(val T) {
	if len(f.entries) == f.max {
		copy(f.entries, f.entries[1:])
		f.entries[len(f.entries)-1] = val
		return
	}
	f.entries = append(f.entries, val)
}

// Len returns the number of pushed entries
func (f *FIFO[T]) Len() int {
	return len(f.entries)
}

// Last returns up to n most recent entries, oldest first
func (f *FIFO[T]) Last(n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(f.entries) {
		n = len(f.entries)
	}

	out := make([]T, n)
	copy(out, f.entries[len(f.entries)-n:])
	return out
}

// Values returns a copy of all entries, oldest first
func (f *FIFO[T]) Values() []T {
	out := make([]T, len(f.entries))
	copy(out, f.entries)
	return out
}
