package handles

// liveSet is a sparse set of slot indices.
//
// It keeps a sparse array (slot -> position in dense) for O(1) membership
// testing and a dense array of the live slots for O(1) counting. It grows on
// demand; the number of slots a table hands out is not known up front.
type liveSet struct {
	sparse []uint32 // Maps slot -> index in dense
	dense  []uint32 // Live slots
}

// insert adds slot to the set. No-op if already present.
func (s *liveSet) insert(slot uint32) {
	if s.contains(slot) {
		return
	}
	if int(slot) >= len(s.sparse) {
		grown := make([]uint32, int(slot)+1+len(s.sparse))
		copy(grown, s.sparse)
		s.sparse = grown
	}
	//nolint:gosec // G115: dense never exceeds the number of issued slots
	s.sparse[slot] = uint32(len(s.dense))
	s.dense = append(s.dense, slot)
}

// contains reports whether slot is in the set.
func (s *liveSet) contains(slot uint32) bool {
	if int(slot) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[slot]
	return int(idx) < len(s.dense) && s.dense[idx] == slot
}

// remove deletes slot from the set (swap and pop). No-op if absent.
func (s *liveSet) remove(slot uint32) {
	if !s.contains(slot) {
		return
	}
	idx := s.sparse[slot]
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
}

// len returns the number of live slots.
func (s *liveSet) len() int {
	return len(s.dense)
}

