// Package instance checks functional dependencies against sample data.
//
// A [Relation] is a list of tuples over an ordered list of columns. It is
// independent of the closure and normalizer packages: it answers whether
// given rows agree with a dependency, which helps when deciding which
// dependencies to feed into a decomposition.
package instance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
)

// Tuple is one row of a relation, one value per column.
type Tuple []string

// Relation is an instance of a schema: ordered columns and their rows.
type Relation struct {
	columns []fd.Attribute
	index   map[fd.Attribute]int
	tuples  []Tuple
}

// New returns an empty relation with the given columns in order.
// Column names follow [fd.NewAttribute] and must be distinct.
func New(columns ...string) (*Relation, error) {
	if len(columns) == 0 {
		return nil, &fderrors.InputShapeError{Shape: "relation", Message: "no columns"}
	}
	r := &Relation{index: make(map[fd.Attribute]int, len(columns))}
	for i, name := range columns {
		a, err := fd.NewAttribute(name)
		if err != nil {
			return nil, err
		}
		if _, dup := r.index[a]; dup {
			return nil, &fderrors.InputShapeError{Shape: "relation", Message: fmt.Sprintf("duplicate column %q", a)}
		}
		r.index[a] = i
		r.columns = append(r.columns, a)
	}
	return r, nil
}

// Schema returns the column set.
func (r *Relation) Schema() fd.AttributeSet {
	names := make([]string, len(r.columns))
	for i, c := range r.columns {
		names[i] = string(c)
	}
	s, _ := fd.NewAttributeSet(names...) // names were validated by New
	return s
}

// Columns returns the columns in declared order.
func (r *Relation) Columns() []fd.Attribute { return slices.Clone(r.columns) }

// Len returns the number of tuples.
func (r *Relation) Len() int { return len(r.tuples) }

// Tuple returns the i-th tuple.
func (r *Relation) Tuple(i int) Tuple { return slices.Clone(r.tuples[i]) }

// Add appends a tuple. It must carry one value per column.
func (r *Relation) Add(values ...string) error {
	if len(values) != len(r.columns) {
		return &fderrors.InputShapeError{
			Shape:   "tuple",
			Message: fmt.Sprintf("tuple has %d values but the relation has %d columns", len(values), len(r.columns)),
		}
	}
	r.tuples = append(r.tuples, slices.Clone(Tuple(values)))
	return nil
}

// Conflict is a pair of tuples that agree on a dependency's left-hand side
// but differ on its right-hand side.
type Conflict struct {
	FD            fd.FD
	First, Second int
}

// String returns a formatted representation of the conflict.
func (c Conflict) String() string {
	return fmt.Sprintf("tuples %d and %d violate the FD %s", c.First, c.Second, c.FD)
}

// project renders the values of t on attrs as a comparable key.
func (r *Relation) project(t Tuple, attrs fd.AttributeSet) string {
	var b strings.Builder
	for _, a := range attrs.Attributes() {
		v := t[r.index[a]]
		fmt.Fprintf(&b, "%d:%s", len(v), v)
	}
	return b.String()
}

// Check returns every pair of tuples violating f, ordered by tuple index.
// f must only mention columns of the relation.
func (r *Relation) Check(f fd.FD) ([]Conflict, error) {
	if err := f.Validate(r.Schema()); err != nil {
		return nil, err
	}
	groups := make(map[string][]int)
	for i, t := range r.tuples {
		k := r.project(t, f.LHS())
		groups[k] = append(groups[k], i)
	}

	var out []Conflict
	for _, idx := range groups {
		for x := 0; x < len(idx); x++ {
			for y := x + 1; y < len(idx); y++ {
				i, j := idx[x], idx[y]
				if r.project(r.tuples[i], f.RHS()) != r.project(r.tuples[j], f.RHS()) {
					out = append(out, Conflict{FD: f, First: i, Second: j})
				}
			}
		}
	}
	slices.SortFunc(out, func(a, b Conflict) int {
		if a.First != b.First {
			return a.First - b.First
		}
		return a.Second - b.Second
	})
	return out, nil
}

// Holds reports whether no pair of tuples violates f.
func (r *Relation) Holds(f fd.FD) (bool, error) {
	conflicts, err := r.Check(f)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// CheckAll checks every dependency of set in [fd.Compare] order and returns
// all conflicts found.
func (r *Relation) CheckAll(set *fd.Set) ([]Conflict, error) {
	var out []Conflict
	for _, f := range set.Sorted() {
		conflicts, err := r.Check(f)
		if err != nil {
			return nil, err
		}
		out = append(out, conflicts...)
	}
	return out, nil
}
