package applicant

import "sync"

// Store is the ordered applicant collection for one session.
//
// Order is insertion order after Add and the given order after ReplaceAll.
// Entries are not deduplicated by ID. The mutex only serialises callers;
// every operation is applied whole.
type Store struct {
	mu         sync.RWMutex
	applicants []Applicant
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a to the end of the collection.
func (s *Store) Add(a Applicant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants = append(s.applicants, a)
}

// ReplaceAll discards the collection and installs a copy of applicants.
func (s *Store) ReplaceAll(applicants []Applicant) {
	next := make([]Applicant, len(applicants))
	copy(next, applicants)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants = next
}

// RemoveByID removes every entry whose ID equals id.
// Remaining entries keep their relative order. No match is a no-op.
func (s *Store) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.applicants[:0:0]
	for _, a := range s.applicants {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.applicants = kept
}

// All returns a copy of the collection in store order.
func (s *Store) All() []Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Applicant, len(s.applicants))
	copy(out, s.applicants)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.applicants)
}
