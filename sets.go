package lazysignals

// entitySet is a set that preserves insertion order. Wave processing order
// is observable (it decides which diamond path recomputes first), so the
// subscriber and running sets cannot use an unordered map set.
type entitySet struct {
	index map[Entity]struct{}
	order []Entity
}

func newEntitySet() *entitySet {
	return &entitySet{index: map[Entity]struct{}{}}
}

func (s *entitySet) add(e Entity) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = struct{}{}
	s.order = append(s.order, e)
}

func (s *entitySet) has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

func (s *entitySet) len() int {
	return len(s.order)
}

func (s *entitySet) remove(e Entity) {
	if _, ok := s.index[e]; !ok {
		return
	}
	delete(s.index, e)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// members returns the entities in insertion order. The returned slice is a
// copy and stays valid after the set is cleared.
func (s *entitySet) members() []Entity {
	out := make([]Entity, len(s.order))
	copy(out, s.order)
	return out
}

func (s *entitySet) clear() {
	clear(s.index)
	s.order = s.order[:0]
}
