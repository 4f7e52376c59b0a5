package deps

import (
	"encoding/json"
	"sort"
)

// Set is a set of module names.
type Set struct {
	members map[string]struct{}
}

// NewSet creates a set holding names.
func NewSet(names ...string) *Set {
	s := &Set{members: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name.
func (s *Set) Add(name string) {
	s.members[name] = struct{}{}
}

// Has reports whether name is a member.
func (s *Set) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[name]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Names returns the members sorted by name.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.members))
	for n := range s.members {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same names.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for n := range s.members {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted list.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// MarshalYAML encodes the set as a sorted list.
func (s *Set) MarshalYAML() (any, error) {
	return s.Names(), nil
}
