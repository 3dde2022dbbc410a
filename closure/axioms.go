package closure

import (
	"github.com/erraggy/fdtools/fd"
)

// Rule names one of Armstrong's inference rules.
type Rule string

const (
	// RuleReflexivity derives X -> Y for every Y ⊆ X.
	RuleReflexivity Rule = "reflexivity"
	// RuleAugmentation derives XZ -> YZ from X -> Y.
	RuleAugmentation Rule = "augmentation"
	// RuleTransitivity derives X -> Z from X -> Y and Y -> Z.
	RuleTransitivity Rule = "transitivity"
)

// Derivation records one newly derived dependency.
type Derivation struct {
	// Rule is the inference rule that produced the dependency
	Rule Rule
	// Derived is the new dependency
	Derived fd.FD
	// From holds the source dependencies (none for reflexivity)
	From []fd.FD
	// Using is the augmenting attribute set (augmentation only)
	Using fd.AttributeSet
}

// String renders the derivation the way the trace log reads.
func (d Derivation) String() string {
	switch d.Rule {
	case RuleAugmentation:
		return "Adding " + d.Derived.String() + " by Augmenting " + d.From[0].String() + " using " + d.Using.String()
	case RuleTransitivity:
		return "Adding " + d.Derived.String() + " using Transitivity from " + d.From[0].String() + " and " + d.From[1].String()
	default:
		return "Adding " + d.Derived.String() + " by Reflexivity"
	}
}

// Tracer receives every dependency a rule adds. A nil Tracer is allowed.
type Tracer func(Derivation)

func (t Tracer) emit(d Derivation) {
	if t != nil {
		t(d)
	}
}

// Reflexivity returns current ∪ {X -> Y | X, Y non-empty, Y ⊆ X ⊆ schema}.
// Its output depends only on the schema, so it is applied once.
func Reflexivity(current *fd.Set, schema fd.AttributeSet, trace Tracer) *fd.Set {
	out := current.Clone()
	for _, x := range fd.Powerset(schema) {
		for _, y := range fd.Powerset(x) {
			f, err := fd.New(x, y)
			if err != nil {
				continue
			}
			if out.Add(f) {
				trace.emit(Derivation{Rule: RuleReflexivity, Derived: f})
			}
		}
	}
	return out
}

// Augmentation returns current ∪ {XZ -> YZ | X -> Y ∈ current, Z ∈ powerset}.
func Augmentation(current *fd.Set, powerset []fd.AttributeSet, trace Tracer) *fd.Set {
	out := current.Clone()
	for _, f := range current.Sorted() {
		for _, z := range powerset {
			g, err := fd.New(f.LHS().Union(z), f.RHS().Union(z))
			if err != nil {
				continue
			}
			if out.Add(g) {
				trace.emit(Derivation{Rule: RuleAugmentation, Derived: g, From: []fd.FD{f}, Using: z})
			}
		}
	}
	return out
}

// Transitivity returns current ∪ {X -> Z | X -> Y, Y -> Z ∈ current}. The
// right-hand side of the first must equal the left-hand side of the second.
func Transitivity(current *fd.Set, trace Tracer) *fd.Set {
	sorted := current.Sorted()
	byLHS := make(map[string][]fd.FD, len(sorted))
	for _, f := range sorted {
		byLHS[f.LHS().Key()] = append(byLHS[f.LHS().Key()], f)
	}

	out := current.Clone()
	for _, x := range sorted {
		for _, y := range byLHS[x.RHS().Key()] {
			g, err := fd.New(x.LHS(), y.RHS())
			if err != nil {
				continue
			}
			if out.Add(g) {
				trace.emit(Derivation{Rule: RuleTransitivity, Derived: g, From: []fd.FD{x, y}})
			}
		}
	}
	return out
}
