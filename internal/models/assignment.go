package models

// AssignmentSet is the working set of group ids assembled while an
// operator creates or edits a media item. Insertion order is kept so
// outgoing requests are deterministic; membership is what matters.
type AssignmentSet struct {
	order   []string
	members map[string]struct{}
}

func NewAssignmentSet(ids ...string) *AssignmentSet {
	s := &AssignmentSet{members: make(map[string]struct{})}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// AssignmentFromItem seeds the working set from an existing record,
// accepting both the legacy single-group and the current multi-group
// representation.
func AssignmentFromItem(item *MediaItem) *AssignmentSet {
	return NewAssignmentSet(item.AssignedGroups()...)
}

func (s *AssignmentSet) add(id string) {
	if id == "" {
		return
	}
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// Toggle adds the id when absent and removes it when present. Toggling
// the same id twice restores the set.
func (s *AssignmentSet) Toggle(id string) {
	if _, ok := s.members[id]; !ok {
		s.add(id)
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *AssignmentSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *AssignmentSet) IsEmpty() bool {
	return s == nil || len(s.members) == 0
}

func (s *AssignmentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// IDs returns the members in insertion order.
func (s *AssignmentSet) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
