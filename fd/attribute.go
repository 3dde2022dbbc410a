package fd

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/fdtools/fderrors"
	"golang.org/x/text/unicode/norm"
)

// Attribute is the name of one column of a relational schema.
type Attribute string

// keySep separates attribute names inside canonical keys. Control characters
// are rejected in names, so it can never collide with a name.
const keySep = "\x1f"

// NewAttribute returns the NFC-normalized attribute for name.
// Empty names and names containing a comma or a control character are
// rejected. Commas separate names when a set is rendered.
func NewAttribute(name string) (Attribute, error) {
	if name == "" {
		return "", &fderrors.DependencyError{Message: "attribute name is empty"}
	}
	if !utf8.ValidString(name) {
		return "", &fderrors.DependencyError{Message: fmt.Sprintf("attribute name %q is not valid UTF-8", name)}
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", &fderrors.DependencyError{Message: fmt.Sprintf("attribute name %q contains a control character", name)}
	}
	if strings.Contains(name, ",") {
		return "", &fderrors.DependencyError{Message: fmt.Sprintf("attribute name %q contains a comma", name)}
	}
	return Attribute(norm.NFC.String(name)), nil
}

// AttributeSet is an immutable, sorted, duplicate-free set of attributes.
// The zero value is the empty set.
type AttributeSet struct {
	attrs []Attribute
	key   string
}

// newSet builds a set from already validated attributes.
func newSet(attrs []Attribute) AttributeSet {
	if len(attrs) == 0 {
		return AttributeSet{}
	}
	sorted := slices.Clone(attrs)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	names := make([]string, len(sorted))
	for i, a := range sorted {
		names[i] = string(a)
	}
	return AttributeSet{attrs: sorted, key: strings.Join(names, keySep)}
}

// NewAttributeSet validates every name and returns the set of them.
func NewAttributeSet(names ...string) (AttributeSet, error) {
	attrs := make([]Attribute, 0, len(names))
	for _, n := range names {
		a, err := NewAttribute(n)
		if err != nil {
			return AttributeSet{}, err
		}
		attrs = append(attrs, a)
	}
	return newSet(attrs), nil
}

// Letters treats every rune of s as a single-character attribute, so
// Letters("ABCD") is the schema {A, B, C, D}.
func Letters(s string) (AttributeSet, error) {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, string(r))
	}
	return NewAttributeSet(names...)
}

// MustAttributeSet is like NewAttributeSet but panics on error.
// It is intended for tests and examples.
func MustAttributeSet(names ...string) AttributeSet {
	s, err := NewAttributeSet(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// MustLetters is like Letters but panics on error.
func MustLetters(s string) AttributeSet {
	set, err := Letters(s)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of attributes.
func (s AttributeSet) Len() int { return len(s.attrs) }

// IsEmpty reports whether the set has no attributes.
func (s AttributeSet) IsEmpty() bool { return len(s.attrs) == 0 }

// Attributes returns a copy of the attributes in sorted order.
func (s AttributeSet) Attributes() []Attribute { return slices.Clone(s.attrs) }

// Names returns the attribute names in sorted order.
func (s AttributeSet) Names() []string {
	names := make([]string, len(s.attrs))
	for i, a := range s.attrs {
		names[i] = string(a)
	}
	return names
}

// Key returns the canonical form of the set. Two sets are equal iff their
// keys are equal, and keys order sets lexicographically by attribute.
func (s AttributeSet) Key() string { return s.key }

// Contains reports whether a is a member of the set.
func (s AttributeSet) Contains(a Attribute) bool {
	_, found := slices.BinarySearch(s.attrs, a)
	return found
}

// SubsetOf reports whether every attribute of s is in other.
func (s AttributeSet) SubsetOf(other AttributeSet) bool {
	if len(s.attrs) > len(other.attrs) {
		return false
	}
	for _, a := range s.attrs {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether s is a subset of other and smaller than it.
func (s AttributeSet) ProperSubsetOf(other AttributeSet) bool {
	return len(s.attrs) < len(other.attrs) && s.SubsetOf(other)
}

// Equal reports whether both sets hold the same attributes.
func (s AttributeSet) Equal(other AttributeSet) bool { return s.key == other.key }

// Union returns s ∪ other.
func (s AttributeSet) Union(other AttributeSet) AttributeSet {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	return newSet(append(slices.Clone(s.attrs), other.attrs...))
}

// Minus returns s − other.
func (s AttributeSet) Minus(other AttributeSet) AttributeSet {
	kept := make([]Attribute, 0, len(s.attrs))
	for _, a := range s.attrs {
		if !other.Contains(a) {
			kept = append(kept, a)
		}
	}
	return newSet(kept)
}

// Intersect returns s ∩ other.
func (s AttributeSet) Intersect(other AttributeSet) AttributeSet {
	kept := make([]Attribute, 0, min(len(s.attrs), len(other.attrs)))
	for _, a := range s.attrs {
		if other.Contains(a) {
			kept = append(kept, a)
		}
	}
	return newSet(kept)
}

// String renders the set with its attributes in sorted order. Single-character
// names are concatenated ("ABD"); longer names are comma separated.
func (s AttributeSet) String() string {
	for _, a := range s.attrs {
		if utf8.RuneCountInString(string(a)) != 1 {
			return strings.Join(s.Names(), ",")
		}
	}
	return strings.Join(s.Names(), "")
}

// CompareSets orders sets by size, then lexicographically by attribute.
func CompareSets(a, b AttributeSet) int {
	if c := a.Len() - b.Len(); c != 0 {
		return c
	}
	return strings.Compare(a.key, b.key)
}

// Powerset returns every non-empty subset of s, ordered by size and then
// lexicographically, e.g. A, B, C, AB, AC, BC, ABC.
func Powerset(s AttributeSet) []AttributeSet {
	n := len(s.attrs)
	if n == 0 {
		return nil
	}
	subsets := make([]AttributeSet, 0, (1<<n)-1)
	for mask := 1; mask < 1<<n; mask++ {
		picked := make([]Attribute, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				picked = append(picked, s.attrs[i])
			}
		}
		subsets = append(subsets, newSet(picked))
	}
	slices.SortFunc(subsets, CompareSets)
	return subsets
}
