// Package fd provides the value types of dependency analysis: attributes,
// attribute sets, functional dependencies and dependency sets.
//
// All values are immutable apart from [Set], which grows by [Set.Add] and is
// never shrunk. Attribute sets are kept sorted, so rendering and every
// tie-break in the other packages is deterministic:
//
//	schema := fd.MustLetters("ABCD")
//	f := fd.MustFD("B", "C")
//	fmt.Println(f)                  // B -> C
//	fmt.Println(f.Validate(schema)) // <nil>
//
// A [Seed] is the tagged input to a closure computation. It is built either
// from FD values or from raw (lhs, rhs) name pairs, and the shape is
// inspected exactly once by [Seed.Resolve].
package fd
