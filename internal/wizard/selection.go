package wizard

// Selection tracks the dependency ids chosen so far, in pick order.
// It belongs to a single wizard run; nothing about it is process-global.
type Selection struct {
	ids []string
}

// NewSelection creates a Selection pre-seeded with the given ids.
func NewSelection(seed []string) *Selection {
	s := &Selection{}
	for _, id := range seed {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle flips membership of id: absent ids are added, present ids removed.
func (s *Selection) Toggle(id string) {
	for i, have := range s.ids {
		if have == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// Has reports whether id is currently selected.
func (s *Selection) Has(id string) bool {
	for _, have := range s.ids {
		if have == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected ids in pick order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}
