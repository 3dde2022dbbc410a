package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/fd"
)

// ClosureFlags contains flags for the closure command
type ClosureFlags struct {
	RelationFlags
	IncludeTrivial bool
	Quiet          bool
}

// SetupClosureFlags creates and configures a FlagSet for the closure command.
// Returns the FlagSet and a ClosureFlags struct with bound flag variables.
func SetupClosureFlags() (*flag.FlagSet, *ClosureFlags) {
	fs := flag.NewFlagSet("closure", flag.ContinueOnError)
	flags := &ClosureFlags{}

	addRelationFlags(fs, &flags.RelationFlags)
	fs.BoolVar(&flags.IncludeTrivial, "all", false, "include trivial dependencies (Y ⊆ X) in the output")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output dependencies, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output dependencies, no diagnostic messages")

	fs.Usage = func() {
		printRelationUsage(fs, "closure", "Compute every dependency implied by the given ones under Armstrong's axioms.")
	}

	return fs, flags
}

// closureReport is the structured output of the closure command.
type closureReport struct {
	Schema       []string `json:"schema" yaml:"schema"`
	Iterations   int      `json:"iterations" yaml:"iterations"`
	ClosureSize  int      `json:"closureSize" yaml:"closureSize"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// HandleClosure executes the closure command
func HandleClosure(args []string) error {
	fs, flags := SetupClosureFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("closure command takes no positional arguments, got %d", fs.NArg())
	}
	if err := flags.validate(); err != nil {
		return err
	}
	schema, seed, err := flags.relation()
	if err != nil {
		return err
	}

	startTime := time.Now()
	c := closure.New()
	c.Trace = flags.Trace
	c.MaxAttributes = flags.MaxAttributes
	c.Logger = flags.logger()
	res, err := c.Compute(schema, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	var deps []fd.FD
	if flags.IncludeTrivial {
		deps = res.Closure.Sorted()
	} else {
		deps = res.NonTrivial()
	}
	lines := make([]string, len(deps))
	for i, f := range deps {
		lines[i] = f.String()
	}

	if flags.Format != FormatText {
		return OutputStructured(closureReport{
			Schema:       schema.Names(),
			Iterations:   res.Iterations,
			ClosureSize:  res.Closure.Len(),
			Dependencies: lines,
		}, flags.Format)
	}

	if !flags.Quiet {
		outputHeader(schema, res.Seed.Len())
		Writef(os.Stderr, "Closure Size: %d\n", res.Closure.Len())
		Writef(os.Stderr, "Rounds: %d\n", res.Iterations)
		Writef(os.Stderr, "Total Time: %v\n\n", elapsed)
	}
	for _, line := range lines {
		Writef(os.Stdout, "%s\n", line)
	}
	return nil
}
