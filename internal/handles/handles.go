// Package handles maps opaque handle words to engine-owned objects.
//
// A handle packs a slot index and a generation counter. Slots are recycled
// after Delete, but the generation moves on, so a stale handle held by a
// caller after release never aliases the object that later reuses its slot.
// Deleting twice or looking up a released handle is reported, not undefined.
package handles

import "sync"

// ID is an opaque handle word. The zero ID is never issued.
type ID uint64

func makeID(slot, gen uint32) ID {
	return ID(uint64(gen)<<32 | uint64(slot+1))
}

func (id ID) split() (slot, gen uint32, ok bool) {
	low := uint32(id)
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(id >> 32), true
}

type entry[T any] struct {
	gen uint32
	val T
}

// Table is a concurrency-safe registry of live objects keyed by ID.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []entry[T]
	free  []uint32
	live  liveSet
}

// Insert registers v and returns its new handle.
func (t *Table[T]) Insert(v T) ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	var slot uint32
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		//nolint:gosec // G115: slot count is bounded by memory long before 2^32
		slot = uint32(len(t.slots))
		t.slots = append(t.slots, entry[T]{gen: 1})
	}
	t.slots[slot].val = v
	t.live.insert(slot)
	return makeID(slot, t.slots[slot].gen)
}

// Get returns the object behind id. ok is false for the zero ID, unknown IDs
// and IDs that have already been deleted.
func (t *Table[T]) Get(id ID) (v T, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	slot, ok := t.lookup(id)
	if !ok {
		return v, false
	}
	return t.slots[slot].val, true
}

// Delete releases id and returns the object it referred to.
// ok is false when id was not live, which makes a second Delete harmless.
func (t *Table[T]) Delete(id ID) (v T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.lookup(id)
	if !ok {
		return v, false
	}
	e := &t.slots[slot]
	v = e.val
	var zero T
	e.val = zero
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	t.live.remove(slot)
	t.free = append(t.free, slot)
	return v, true
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live.len()
}

func (t *Table[T]) lookup(id ID) (uint32, bool) {
	slot, gen, ok := id.split()
	if !ok || int(slot) >= len(t.slots) {
		return 0, false
	}
	if !t.live.contains(slot) || t.slots[slot].gen != gen {
		return 0, false
	}
	return slot, true
}
