package keycode

import (
	"slices"
	"sync"
)

// Set tracks which keys are currently held down. The zero value is ready to
// use and safe for concurrent use.
type Set struct {
	mu   sync.Mutex
	keys map[KeyCode]struct{}
}

// Press marks k as held. It reports whether k was newly pressed; repeated
// presses (key repeat) report false.
func (s *Set) Press(k KeyCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys == nil {
		s.keys = make(map[KeyCode]struct{})
	}
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Release marks k as no longer held and reports whether it was held.
func (s *Set) Release(k KeyCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[k]; !ok {
		return false
	}
	delete(s.keys, k)
	return true
}

// IsPressed reports whether k is held.
func (s *Set) IsPressed(k KeyCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[k]
	return ok
}

// Pressed returns the held keys sorted by value.
func (s *Set) Pressed() []KeyCode {
	s.mu.Lock()
	out := make([]KeyCode, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	s.mu.Unlock()
	slices.Sort(out)
	return out
}

// Len returns the number of held keys.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// Reset releases every key.
func (s *Set) Reset() {
	s.mu.Lock()
	clear(s.keys)
	s.mu.Unlock()
}
