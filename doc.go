// Package fdtools provides tools for reasoning about functional dependencies
// and normalizing relational schemas into Boyce-Codd normal form.
//
// # Overview
//
// The library consists of these packages:
//
//   - fd: attributes, attribute sets, functional dependencies and dependency sets
//   - closure: the closure of a dependency set under Armstrong's axioms
//   - keys: superkeys and candidate keys derived from a closure
//   - normalizer: BCNF checking and recursive lossless BCNF decomposition
//   - instance: checking dependencies against sample tuples
//   - fderrors: error types shared by every package
//
// # Installation
//
//	go get github.com/erraggy/fdtools
//
// Or install the CLI:
//
//	go install github.com/erraggy/fdtools/cmd/fdtools@latest
//
// # Quick Start
//
// Compute a closure:
//
//	schema := fd.MustLetters("ABCD")
//	seed := fd.SeedFromFDs(fd.MustFD("B", "C"), fd.MustFD("D", "A"))
//	res, err := closure.Compute(schema, seed)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(res.Strings()))
//
// Find candidate keys:
//
//	fmt.Println(keys.Candidates(schema, res.Closure)) // [BD]
//
// Decompose into BCNF:
//
//	out, err := normalizer.Decompose(schema, res.Closure)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out.Schemas()) // [[B C] [A D] [B D]]
//
// # Command-Line Interface
//
// The fdtools command exposes the same operations:
//
//	fdtools closure -schema A,B,C,D -fd B:C -fd D:A
//	fdtools keys -schema ABCD -fd B:C -fd D:A
//	fdtools bcnf -schema ABCD -fd B:C -fd D:A -trace
//	fdtools mcp
//
// # Limits
//
// The closure is built by enumerating the powerset of the schema, so its
// size and the time to compute it grow exponentially with the number of
// attributes. closure.DefaultMaxAttributes caps the schema size unless a
// caller raises it.
package fdtools
