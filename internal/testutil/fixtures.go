// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"github.com/erraggy/fdtools/fd"
)

// Fixture is a schema with its input dependencies.
type Fixture struct {
	Name   string
	Schema fd.AttributeSet
	FDs    []fd.FD
}

// Seed returns the fixture's dependencies as a closure seed.
func (f Fixture) Seed() fd.Seed {
	return fd.SeedFromFDs(f.FDs...)
}

// ABCD returns the schema {A,B,C,D} with B -> C and D -> A.
// Its unique candidate key is BD and it decomposes into BC, AD and BD.
func ABCD() Fixture {
	return Fixture{
		Name:   "ABCD",
		Schema: fd.MustLetters("ABCD"),
		FDs:    []fd.FD{fd.MustFD("B", "C"), fd.MustFD("D", "A")},
	}
}

// Chain returns {A,B,C} with A -> B and B -> C.
func Chain() Fixture {
	return Fixture{
		Name:   "Chain",
		Schema: fd.MustLetters("ABC"),
		FDs:    []fd.FD{fd.MustFD("A", "B"), fd.MustFD("B", "C")},
	}
}

// Cycle returns {A,B,C} with A -> B, B -> C and C -> A. Every attribute
// is a candidate key, so the schema is in BCNF.
func Cycle() Fixture {
	return Fixture{
		Name:   "Cycle",
		Schema: fd.MustLetters("ABC"),
		FDs:    []fd.FD{fd.MustFD("A", "B"), fd.MustFD("B", "C"), fd.MustFD("C", "A")},
	}
}

// NoDependencies returns {A,B} with no input dependencies.
func NoDependencies() Fixture {
	return Fixture{
		Name:   "NoDependencies",
		Schema: fd.MustLetters("AB"),
	}
}

// KeyOnly returns {A,B,C} with A -> BC, which is already in BCNF.
func KeyOnly() Fixture {
	return Fixture{
		Name:   "KeyOnly",
		Schema: fd.MustLetters("ABC"),
		FDs:    []fd.FD{fd.MustFD("A", "BC")},
	}
}

// Overlapping returns {A,B,C,D,E} with AB -> C, C -> D and D -> A.
// E is determined by nothing, and the candidate keys are ABE, BCE and BDE.
func Overlapping() Fixture {
	return Fixture{
		Name:   "Overlapping",
		Schema: fd.MustLetters("ABCDE"),
		FDs:    []fd.FD{fd.MustFD("AB", "C"), fd.MustFD("C", "D"), fd.MustFD("D", "A")},
	}
}

// Fixtures returns every fixture in a fixed order.
func Fixtures() []Fixture {
	return []Fixture{ABCD(), Chain(), Cycle(), NoDependencies(), KeyOnly(), Overlapping()}
}
