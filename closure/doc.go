// Package closure computes the closure of a set of functional dependencies
// under Armstrong's axioms.
//
// The closure F+ of F over a schema R is every dependency X -> Y with X and Y
// non-empty subsets of R that follows from F. It is built by brute force:
// reflexivity is applied once, then transitivity and augmentation alternate
// until a round adds nothing. The cost is exponential in |R|, which is why
// [Computer.MaxAttributes] exists.
//
// # Quick Start
//
//	schema := fd.MustLetters("ABCD")
//	res, err := closure.Compute(schema, fd.SeedFromFDs(
//		fd.MustFD("B", "C"),
//		fd.MustFD("D", "A"),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, line := range res.Strings() {
//		fmt.Println(line)
//	}
//
// Or use functional options:
//
//	res, err := closure.ComputeWithOptions(
//		closure.WithSchema(schema),
//		closure.WithSeed(seed),
//		closure.WithTrace(true),
//		closure.WithLogger(closure.NewSlogAdapter(slog.Default())),
//	)
//
// # Tracing
//
// With tracing on, every newly derived dependency is appended to
// [Result.Derivations] and logged at debug level, naming the rule and the
// dependencies it came from. Rules walk their input in [fd.Compare] order,
// so the trace of a given input is identical on every run.
//
// # Related Packages
//
//   - [github.com/erraggy/fdtools/fd] - dependency and attribute set types
//   - [github.com/erraggy/fdtools/keys] - superkeys and candidate keys from a closure
//   - [github.com/erraggy/fdtools/normalizer] - BCNF check and decomposition
package closure
