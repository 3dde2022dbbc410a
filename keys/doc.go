// Package keys derives superkeys and candidate keys from a dependency closure.
//
// A superkey of R is any X with X -> R in the closure; a candidate key is a
// superkey none of whose proper subsets is one. For R = ABCD with B -> C and
// D -> A:
//
//	res, _ := closure.Compute(schema, seed)
//	keys.Find(schema, res.Closure)       // BD, ABD, BCD, ABCD
//	keys.Candidates(schema, res.Closure) // BD
package keys
