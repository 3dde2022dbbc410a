package keys

import (
	"slices"

	"github.com/erraggy/fdtools/fd"
)

// Find returns every superkey of schema visible in closure: the left-hand
// side of each dependency whose right-hand side is the whole schema. The
// result is duplicate-free and ordered by [fd.CompareSets].
//
// closure is expected to be a full closure over schema; for a partial set the
// result only holds the superkeys that set happens to witness.
func Find(schema fd.AttributeSet, closure *fd.Set) []fd.AttributeSet {
	seen := make(map[string]bool)
	var out []fd.AttributeSet
	for _, f := range closure.Sorted() {
		if !f.RHS().Equal(schema) {
			continue
		}
		if seen[f.LHS().Key()] {
			continue
		}
		seen[f.LHS().Key()] = true
		out = append(out, f.LHS())
	}
	slices.SortFunc(out, fd.CompareSets)
	return out
}

// Candidates returns the minimal superkeys of schema in the order of
// [fd.CompareSets]. Superkeys are visited smallest first and one is kept only
// if no kept key is a subset of it.
func Candidates(schema fd.AttributeSet, closure *fd.Set) []fd.AttributeSet {
	return Minimal(Find(schema, closure))
}

// Minimal reduces superkeys to its minimal members.
func Minimal(superkeys []fd.AttributeSet) []fd.AttributeSet {
	sorted := slices.Clone(superkeys)
	slices.SortFunc(sorted, fd.CompareSets)

	var kept []fd.AttributeSet
	for _, k := range sorted {
		if slices.ContainsFunc(kept, func(c fd.AttributeSet) bool { return c.SubsetOf(k) }) {
			continue
		}
		kept = append(kept, k)
	}
	return kept
}

// Prime returns the union of every candidate key: the prime attributes.
func Prime(candidates []fd.AttributeSet) fd.AttributeSet {
	var out fd.AttributeSet
	for _, c := range candidates {
		out = out.Union(c)
	}
	return out
}

// Set answers exact membership of attribute sets by canonical key.
// The zero value is an empty set.
type Set struct {
	members map[string]fd.AttributeSet
}

// NewSet returns a Set holding keys.
func NewSet(keys []fd.AttributeSet) Set {
	s := Set{members: make(map[string]fd.AttributeSet, len(keys))}
	for _, k := range keys {
		s.members[k.Key()] = k
	}
	return s
}

// Has reports whether x is exactly one of the keys.
func (s Set) Has(x fd.AttributeSet) bool {
	_, ok := s.members[x.Key()]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int { return len(s.members) }

// Sorted returns the keys ordered by [fd.CompareSets].
func (s Set) Sorted() []fd.AttributeSet {
	out := make([]fd.AttributeSet, 0, len(s.members))
	for _, k := range s.members {
		out = append(out, k)
	}
	slices.SortFunc(out, fd.CompareSets)
	return out
}

// Strings renders each key with [fd.AttributeSet.String].
func Strings(keys []fd.AttributeSet) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
