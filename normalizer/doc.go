// Package normalizer checks Boyce-Codd normal form and decomposes schemas
// into BCNF.
//
// A schema R is in BCNF when every non-trivial dependency X -> Y of the
// closure has a superkey X. Otherwise R is split on its smallest violating
// dependency into X ∪ Y and (R − Y) ∪ X, and both parts are decomposed in
// turn, left first. The split is always lossless: the shared attributes X
// determine the left part.
//
// # Quick Start
//
//	res, err := normalizer.Normalize(fd.MustLetters("ABCD"), fd.SeedFromFDs(
//		fd.MustFD("B", "C"),
//		fd.MustFD("D", "A"),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, rel := range res.Relations {
//		fmt.Println(rel.Schema) // BC, AD, BD
//	}
//
// When a closure is already at hand, call [Decompose] directly. The building
// blocks [IsInBCNF], [FindSmallestViolatingFD], [ListViolations] and
// [DecomposeUsingFD] are exported for callers that drive their own loop.
//
// # Tracing
//
// [Result.Steps] always records what happened at every schema. With
// [WithTrace] each step is also logged at info level, tagged with the run's
// [Result.RunID]. [Result.Fingerprint] hashes the trace so two runs can be
// compared without diffing it.
package normalizer
