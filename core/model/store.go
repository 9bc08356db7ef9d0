package model

import (
	"sort"
	"sync"
)

// Store holds validated activity records keyed by normalized name.
type Store struct {
	mu   sync.RWMutex
	data map[string]Activity
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: map[string]Activity{}}
}

// Ingest validates a record, derives its statistics and adds it to the
// store. Duplicate names are rejected with *ValidationError.
func (s *Store) Ingest(name string, optimistic, mostLikely, pessimistic float64, predecessors []string) (Activity, error) {
	a, err := NewActivity(name, optimistic, mostLikely, pessimistic, predecessors)
	if err != nil {
		return Activity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[a.Name]; ok {
		return Activity{}, &ValidationError{Activity: a.Name, Reason: "duplicate activity name"}
	}
	s.data[a.Name] = a
	return a, nil
}

// Get looks up an activity by name after normalization.
func (s *Store) Get(name string) (Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.data[Normalize(name)]
	return a, ok
}

// Len reports the number of stored activities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// List returns all activities sorted by name.
func (s *Store) List() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Activity, 0, len(s.data))
	for _, a := range s.data {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// ExpectedTimes collects the expected durations of the named activities.
// Names with no matching record are skipped.
func (s *Store) ExpectedTimes(names []string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]float64, 0, len(names))
	for _, n := range names {
		if a, ok := s.data[Normalize(n)]; ok {
			res = append(res, a.Expected)
		}
	}
	return res
}
