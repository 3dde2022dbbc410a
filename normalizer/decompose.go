package normalizer

import (
	"fmt"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
)

// Relation is a schema together with its dependency closure.
type Relation struct {
	Schema  fd.AttributeSet
	Closure *fd.Set
}

// Split is the result of decomposing one schema by one dependency.
type Split struct {
	// FD is the dependency X -> Y the schema was split on
	FD fd.FD
	// Left is X ∪ Y with its projected closure
	Left Relation
	// Right is (R − Y) ∪ X with its projected closure
	Right Relation
}

// DecomposeUsingFD splits schema R by f = X -> Y into R1 = X ∪ Y and
// R2 = (R − Y) ∪ X. Each side's closure is the projection of closure onto it.
//
// f must lie within schema and must be non-trivial; a trivial f would leave
// R2 equal to R.
func DecomposeUsingFD(schema fd.AttributeSet, closure *fd.Set, f fd.FD) (Split, error) {
	if f.LHS().IsEmpty() {
		return Split{}, &fderrors.DependencyError{Message: "zero-value FD cannot split a schema"}
	}
	if err := f.Validate(schema); err != nil {
		return Split{}, err
	}
	if f.IsTrivial() {
		return Split{}, &fderrors.DependencyError{
			LHS:     f.LHS().String(),
			RHS:     f.RHS().String(),
			Message: fmt.Sprintf("trivial dependency cannot split %s", schema),
		}
	}

	r1 := f.LHS().Union(f.RHS())
	r2 := schema.Minus(f.RHS()).Union(f.LHS())
	return Split{
		FD:    f,
		Left:  Relation{Schema: r1, Closure: closure.Project(r1)},
		Right: Relation{Schema: r2, Closure: closure.Project(r2)},
	}, nil
}

// IsLosslessSplit reports whether joining r1 and r2 gives back exactly
// r1 ∪ r2: their shared attributes must determine one side under closure.
func IsLosslessSplit(closure *fd.Set, r1, r2 fd.AttributeSet) bool {
	shared := r1.Intersect(r2)
	if shared.IsEmpty() {
		return false
	}
	for _, side := range []fd.AttributeSet{r1, r2} {
		if shared.Equal(side) {
			return true
		}
		f, err := fd.New(shared, side)
		if err == nil && closure.Contains(f) {
			return true
		}
	}
	return false
}
