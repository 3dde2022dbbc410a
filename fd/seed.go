package fd

import (
	"fmt"

	"github.com/erraggy/fdtools/fderrors"
)

// SeedShape identifies how the seed dependencies of a closure were supplied.
type SeedShape int

const (
	// ShapeNone is the zero shape; a seed in this shape is rejected.
	ShapeNone SeedShape = iota
	// ShapeFDs means the seed holds constructed FD values.
	ShapeFDs
	// ShapePairs means the seed holds raw (lhs, rhs) attribute-name pairs.
	ShapePairs
)

// String returns the name of the shape.
func (s SeedShape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeFDs:
		return "fds"
	case ShapePairs:
		return "pairs"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Pair is a dependency given as raw attribute names.
type Pair struct {
	LHS []string `json:"lhs" yaml:"lhs"`
	RHS []string `json:"rhs" yaml:"rhs"`
}

// Seed is the input dependency set of a closure computation. It carries
// exactly one shape, chosen by the constructor that built it.
type Seed struct {
	shape SeedShape
	fds   []FD
	pairs []Pair
}

// SeedFromFDs returns a seed of constructed dependencies. An empty seed is
// valid and yields the trivial closure.
func SeedFromFDs(fds ...FD) Seed {
	return Seed{shape: ShapeFDs, fds: fds}
}

// SeedFromSet returns a seed holding the dependencies of s.
func SeedFromSet(s *Set) Seed {
	return Seed{shape: ShapeFDs, fds: s.Sorted()}
}

// SeedFromPairs returns a seed of raw name pairs, validated on Resolve.
func SeedFromPairs(pairs ...Pair) Seed {
	return Seed{shape: ShapePairs, pairs: pairs}
}

// Shape reports the shape the seed was built with.
func (s Seed) Shape() SeedShape { return s.shape }

// Resolve converts the seed into a dependency set over schema. Pairs are
// turned into FDs, and every FD is checked against the schema.
func (s Seed) Resolve(schema AttributeSet) (*Set, error) {
	var fds []FD
	switch s.shape {
	case ShapeFDs:
		fds = s.fds
	case ShapePairs:
		fds = make([]FD, 0, len(s.pairs))
		for i, p := range s.pairs {
			f, err := FromNames(p.LHS, p.RHS)
			if err != nil {
				return nil, fmt.Errorf("pair %d: %w", i, err)
			}
			fds = append(fds, f)
		}
	default:
		return nil, &fderrors.InputShapeError{Shape: s.shape.String(), Message: "build seeds with SeedFromFDs, SeedFromSet or SeedFromPairs"}
	}

	set := NewSet()
	for _, f := range fds {
		if f.lhs.IsEmpty() || f.rhs.IsEmpty() {
			return nil, &fderrors.DependencyError{LHS: f.lhs.String(), RHS: f.rhs.String(), Message: "zero-value FD in seed"}
		}
		if err := f.Validate(schema); err != nil {
			return nil, err
		}
		set.Add(f)
	}
	return set, nil
}
