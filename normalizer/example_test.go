package normalizer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/normalizer"
)

// Example decomposes ABCD with B -> C and D -> A into BCNF.
func Example() {
	res, err := normalizer.Normalize(fd.MustLetters("ABCD"), fd.SeedFromFDs(
		fd.MustFD("B", "C"),
		fd.MustFD("D", "A"),
	))
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range res.Trace() {
		fmt.Println(line)
	}
	fmt.Println(res.Schemas())
	// Output:
	// ABCD is not in BCNF
	// Decomposing ABCD using B -> C into relations BC and ABD
	// BC is in BCNF
	// ABD is not in BCNF
	// Decomposing ABD using D -> A into relations AD and BD
	// AD is in BCNF
	// BD is in BCNF
	// [[B C] [A D] [B D]]
}
