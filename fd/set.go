package fd

import (
	"slices"
)

// Set is a set of dependencies under structural equality.
// The zero value is an empty set ready to use.
type Set struct {
	fds map[Key]FD
}

// NewSet returns a set holding fds.
func NewSet(fds ...FD) *Set {
	s := &Set{fds: make(map[Key]FD, len(fds))}
	for _, f := range fds {
		s.fds[f.Key()] = f
	}
	return s
}

// Add inserts f and reports whether it was not already present.
func (s *Set) Add(f FD) bool {
	if s.fds == nil {
		s.fds = make(map[Key]FD)
	}
	k := f.Key()
	if _, dup := s.fds[k]; dup {
		return false
	}
	s.fds[k] = f
	return true
}

// Contains reports whether f is in the set.
func (s *Set) Contains(f FD) bool {
	if s == nil {
		return false
	}
	_, ok := s.fds[f.Key()]
	return ok
}

// Len returns the number of dependencies.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fds)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{fds: make(map[Key]FD, s.Len())}
	if s != nil {
		for k, f := range s.fds {
			c.fds[k] = f
		}
	}
	return c
}

// Union returns a new set holding the dependencies of s and other.
func (s *Set) Union(other *Set) *Set {
	u := s.Clone()
	if other != nil {
		for k, f := range other.fds {
			u.fds[k] = f
		}
	}
	return u
}

// Filter returns a new set of the dependencies for which keep returns true.
func (s *Set) Filter(keep func(FD) bool) *Set {
	out := &Set{fds: make(map[Key]FD)}
	if s == nil {
		return out
	}
	for k, f := range s.fds {
		if keep(f) {
			out.fds[k] = f
		}
	}
	return out
}

// Project returns the dependencies whose both sides lie inside schema.
func (s *Set) Project(schema AttributeSet) *Set {
	return s.Filter(func(f FD) bool {
		return f.lhs.SubsetOf(schema) && f.rhs.SubsetOf(schema)
	})
}

// Equal reports whether both sets hold the same dependencies.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for k := range s.fds {
		if _, ok := other.fds[k]; !ok {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every dependency of s is in other.
func (s *Set) SubsetOf(other *Set) bool {
	if s == nil {
		return true
	}
	for _, f := range s.fds {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

// Sorted returns the dependencies in the order defined by Compare.
func (s *Set) Sorted() []FD {
	if s == nil {
		return nil
	}
	out := make([]FD, 0, len(s.fds))
	for _, f := range s.fds {
		out = append(out, f)
	}
	slices.SortFunc(out, Compare)
	return out
}

// Strings renders the dependencies in sorted order.
func (s *Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, f := range sorted {
		out[i] = f.String()
	}
	return out
}
