package usecase

import (
	"sort"
	"sync"

	"readme-generator/internal/domain"
)

// ReadyThreshold is the number of distinct touched fields that unlocks
// generation.
const ReadyThreshold = 5

// ProfileStore holds the form fields and the set of field names touched
// since the last reset. Both are replaced wholesale on every mutation, so
// snapshots handed out by Fields and Touched are never modified.
type ProfileStore struct {
	mu      sync.RWMutex
	fields  domain.Fields
	touched map[string]struct{}
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		fields:  domain.EmptyFields(),
		touched: map[string]struct{}{},
	}
}

// SetField overwrites name with value and marks name as touched. Any name
// and any value are accepted. The previous value is returned.
func (s *ProfileStore) SetField(name, value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.fields.Get(name)
	s.fields = s.fields.With(name, value)

	if _, ok := s.touched[name]; !ok {
		next := make(map[string]struct{}, len(s.touched)+1)
		for k := range s.touched {
			next[k] = struct{}{}
		}
		next[name] = struct{}{}
		s.touched = next
	}
	return prev
}

// Reset restores every field to empty and clears the touched set.
func (s *ProfileStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = domain.EmptyFields()
	s.touched = map[string]struct{}{}
}

// Fields returns the current field values.
func (s *ProfileStore) Fields() domain.Fields {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields
}

// Touched returns the touched field names, sorted.
func (s *ProfileStore) Touched() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.touched))
	for k := range s.touched {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Ready reports whether at least ReadyThreshold distinct fields have been
// touched. Current values play no part: a field set and then cleared
// still counts.
func (s *ProfileStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.touched) >= ReadyThreshold
}
