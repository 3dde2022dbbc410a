package normalizer

import (
	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/internal/severity"
	"github.com/erraggy/fdtools/keys"
)

// Severity grades a Violation.
type Severity = severity.Severity

const (
	// SeverityInfo marks a BCNF violation in an otherwise 3NF schema
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning marks a transitive dependency on a non-key
	SeverityWarning = severity.SeverityWarning
	// SeverityError marks a partial dependency on part of a candidate key
	SeverityError = severity.SeverityError
)

// Violation is a dependency that keeps a schema out of BCNF.
type Violation struct {
	// FD is the violating dependency
	FD fd.FD
	// Severity grades the weakest normal form the dependency breaks
	Severity Severity
	// Message is a human-readable description
	Message string
}

// String returns a formatted representation of the violation.
func (v Violation) String() string {
	return "[" + v.Severity.String() + "] " + v.Message
}

// violates reports whether f, taken from a closure, keeps schema out of
// BCNF. Dependencies that reach outside schema are ignored so an unprojected
// closure can be passed.
func violates(schema fd.AttributeSet, f fd.FD, superkeys keys.Set) bool {
	if !f.Attributes().SubsetOf(schema) {
		return false
	}
	return !f.IsTrivial() && !superkeys.Has(f.LHS())
}

// IsInBCNF reports whether every non-trivial dependency of closure over
// schema has a superkey as its left-hand side. superkeys must be the
// result of [keys.Find] for the same schema and closure.
func IsInBCNF(schema fd.AttributeSet, closure *fd.Set, superkeys []fd.AttributeSet) bool {
	_, found := FindSmallestViolatingFD(schema, closure, superkeys)
	return !found
}

// FindSmallestViolatingFD returns the violating dependency that sorts first
// under [fd.Compare]: smallest left-hand side, then smallest right-hand side,
// then canonical order. The boolean is false when schema is in BCNF.
func FindSmallestViolatingFD(schema fd.AttributeSet, closure *fd.Set, superkeys []fd.AttributeSet) (fd.FD, bool) {
	ks := keys.NewSet(superkeys)
	for _, f := range closure.Sorted() {
		if violates(schema, f, ks) {
			return f, true
		}
	}
	return fd.FD{}, false
}

// ListViolations returns every violating dependency in [fd.Compare] order.
func ListViolations(schema fd.AttributeSet, closure *fd.Set, superkeys []fd.AttributeSet) []Violation {
	ks := keys.NewSet(superkeys)
	candidates := keys.Minimal(superkeys)
	prime := keys.Prime(candidates)

	var out []Violation
	for _, f := range closure.Sorted() {
		if !violates(schema, f, ks) {
			continue
		}
		partial := false
		for _, c := range candidates {
			if f.LHS().ProperSubsetOf(c) {
				partial = true
				break
			}
		}
		nonPrime := !f.RHS().Minus(f.LHS()).SubsetOf(prime)
		out = append(out, Violation{
			FD:       f,
			Severity: severity.Classify(partial, nonPrime),
			Message:  f.String() + " is an FD whose LHS is not a key",
		})
	}
	return out
}
