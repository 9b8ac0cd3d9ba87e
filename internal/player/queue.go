package player

import (
	"slices"
)

// Queue is a FIFO of pending descriptors without duplicate ids.
type Queue struct {
	items []Descriptor
}

// Push appends d unless a descriptor with the same id is queued.
func (q *Queue) Push(d Descriptor) bool {
	if q.Contains(d.ID) {
		return false
	}

	q.items = append(q.items, d)

	return true
}

// Pop removes and returns the head.
func (q *Queue) Pop() (Descriptor, bool) {
	if len(q.items) == 0 {
		return Descriptor{}, false
	}

	head := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)

	return head, true
}

// Remove drops the descriptor with the given id.
func (q *Queue) Remove(id string) bool {
	before := len(q.items)
	q.items = slices.DeleteFunc(q.items, func(d Descriptor) bool { return d.ID == id })

	return len(q.items) != before
}

// Contains reports whether id is queued.
func (q *Queue) Contains(id string) bool {
	return slices.ContainsFunc(q.items, func(d Descriptor) bool { return d.ID == id })
}

// Len returns the number of queued descriptors.
func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns a copy of the queued descriptors in play order.
func (q *Queue) Items() []Descriptor {
	return slices.Clone(q.items)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.items = nil
}

// CompletedSet records finished subtopics. It only grows during a process lifetime.
type CompletedSet struct {
	ids   []string
	index map[string]struct{}
}

// NewCompletedSet creates an empty set.
func NewCompletedSet() *CompletedSet {
	return &CompletedSet{index: make(map[string]struct{})}
}

// Add records id and reports whether it was new.
func (s *CompletedSet) Add(id string) bool {
	if id == "" {
		return false
	}

	if _, ok := s.index[id]; ok {
		return false
	}

	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)

	return true
}

// Has reports whether id was completed.
func (s *CompletedSet) Has(id string) bool {
	_, ok := s.index[id]

	return ok
}

// IDs returns the completed ids in completion order.
func (s *CompletedSet) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of completed ids.
func (s *CompletedSet) Len() int {
	return len(s.ids)
}
