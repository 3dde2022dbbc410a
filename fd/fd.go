package fd

import (
	"github.com/erraggy/fdtools/fderrors"
)

// FD is a functional dependency lhs -> rhs. Values are immutable; every
// transformation produces a new FD.
type FD struct {
	lhs AttributeSet
	rhs AttributeSet
}

// Key identifies an FD structurally. Two FDs are equal iff their keys are.
type Key struct {
	LHS string
	RHS string
}

// New returns the dependency lhs -> rhs. Both sides must be non-empty.
func New(lhs, rhs AttributeSet) (FD, error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		msg := "left-hand side is empty"
		if !lhs.IsEmpty() {
			msg = "right-hand side is empty"
		}
		return FD{}, &fderrors.DependencyError{LHS: lhs.String(), RHS: rhs.String(), Message: msg}
	}
	return FD{lhs: lhs, rhs: rhs}, nil
}

// FromNames builds a dependency from attribute names.
func FromNames(lhs, rhs []string) (FD, error) {
	l, err := NewAttributeSet(lhs...)
	if err != nil {
		return FD{}, err
	}
	r, err := NewAttributeSet(rhs...)
	if err != nil {
		return FD{}, err
	}
	return New(l, r)
}

// FromLetters builds a dependency whose sides are strings of
// single-character attributes: FromLetters("AB", "C") is AB -> C.
func FromLetters(lhs, rhs string) (FD, error) {
	l, err := Letters(lhs)
	if err != nil {
		return FD{}, err
	}
	r, err := Letters(rhs)
	if err != nil {
		return FD{}, err
	}
	return New(l, r)
}

// MustFD is like FromLetters but panics on error.
// It is intended for tests and examples.
func MustFD(lhs, rhs string) FD {
	f, err := FromLetters(lhs, rhs)
	if err != nil {
		panic(err)
	}
	return f
}

// LHS returns the determinant.
func (f FD) LHS() AttributeSet { return f.lhs }

// RHS returns the dependent attributes.
func (f FD) RHS() AttributeSet { return f.rhs }

// IsTrivial reports whether rhs ⊆ lhs.
func (f FD) IsTrivial() bool { return f.rhs.SubsetOf(f.lhs) }

// Key returns the structural identity of f.
func (f FD) Key() Key { return Key{LHS: f.lhs.key, RHS: f.rhs.key} }

// Equal reports structural equality.
func (f FD) Equal(other FD) bool { return f.Key() == other.Key() }

// Attributes returns lhs ∪ rhs.
func (f FD) Attributes() AttributeSet { return f.lhs.Union(f.rhs) }

// String renders the dependency as "<lhs> -> <rhs>" with sorted attributes.
func (f FD) String() string { return f.lhs.String() + " -> " + f.rhs.String() }

// Validate checks that both sides only mention attributes of schema.
func (f FD) Validate(schema AttributeSet) error {
	for _, a := range f.Attributes().attrs {
		if !schema.Contains(a) {
			return &fderrors.AttributeError{
				Attribute:  string(a),
				Schema:     schema.String(),
				Dependency: f.String(),
			}
		}
	}
	return nil
}

// Compare orders dependencies by lhs size, rhs size, then canonically by
// lhs and rhs. It is the total order used wherever output or a choice must
// be deterministic.
func Compare(a, b FD) int {
	if c := a.lhs.Len() - b.lhs.Len(); c != 0 {
		return c
	}
	if c := a.rhs.Len() - b.rhs.Len(); c != 0 {
		return c
	}
	if c := CompareSets(a.lhs, b.lhs); c != 0 {
		return c
	}
	return CompareSets(a.rhs, b.rhs)
}
