package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/fdtools/keys"
	"github.com/erraggy/fdtools/normalizer"
)

// BCNFFlags contains flags for the bcnf command
type BCNFFlags struct {
	RelationFlags
	Violations bool
	Quiet      bool
}

// SetupBCNFFlags creates and configures a FlagSet for the bcnf command.
// Returns the FlagSet and a BCNFFlags struct with bound flag variables.
func SetupBCNFFlags() (*flag.FlagSet, *BCNFFlags) {
	fs := flag.NewFlagSet("bcnf", flag.ContinueOnError)
	flags := &BCNFFlags{}

	addRelationFlags(fs, &flags.RelationFlags)
	fs.BoolVar(&flags.Violations, "violations", false, "list every BCNF violation of the input schema")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the relations, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the relations, no diagnostic messages")

	fs.Usage = func() {
		printRelationUsage(fs, "bcnf", "Check a relation for Boyce-Codd Normal Form and decompose it until every part is in BCNF.")
	}

	return fs, flags
}

type bcnfViolation struct {
	Dependency string `json:"dependency" yaml:"dependency"`
	Severity   string `json:"severity" yaml:"severity"`
	Message    string `json:"message" yaml:"message"`
}

// bcnfReport is the structured output of the bcnf command.
type bcnfReport struct {
	RunID       string          `json:"runId" yaml:"runId"`
	InBCNF      bool            `json:"inBCNF" yaml:"inBCNF"`
	Violations  []bcnfViolation `json:"violations,omitempty" yaml:"violations,omitempty"`
	Relations   [][]string      `json:"relations" yaml:"relations"`
	Lossless    bool            `json:"lossless" yaml:"lossless"`
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Trace       []string        `json:"trace" yaml:"trace"`
}

// HandleBCNF executes the bcnf command
func HandleBCNF(args []string) error {
	fs, flags := SetupBCNFFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("bcnf command takes no positional arguments, got %d", fs.NArg())
	}
	if err := flags.validate(); err != nil {
		return err
	}
	schema, seed, err := flags.relation()
	if err != nil {
		return err
	}

	res, err := normalizer.Normalize(schema, seed,
		normalizer.WithTrace(flags.Trace),
		normalizer.WithMaxAttributes(flags.MaxAttributes),
		normalizer.WithLogger(flags.logger()),
	)
	if err != nil {
		return err
	}

	superkeys := keys.Find(schema, res.Closure)
	violations := normalizer.ListViolations(schema, res.Closure, superkeys)
	relations := make([][]string, len(res.Relations))
	for i, rel := range res.Relations {
		relations[i] = rel.Schema.Names()
	}

	if flags.Format != FormatText {
		report := bcnfReport{
			RunID:       res.RunID.String(),
			InBCNF:      len(violations) == 0,
			Relations:   relations,
			Lossless:    res.IsLosslessJoin(),
			Fingerprint: res.Fingerprint(),
			Trace:       res.Trace(),
		}
		if flags.Violations {
			for _, v := range violations {
				report.Violations = append(report.Violations, bcnfViolation{
					Dependency: v.FD.String(),
					Severity:   v.Severity.String(),
					Message:    v.Message,
				})
			}
		}
		return OutputStructured(report, flags.Format)
	}

	if !flags.Quiet {
		outputHeader(schema, res.Seed.Len())
		Writef(os.Stderr, "Run ID: %s\n", res.RunID)
		Writef(os.Stderr, "Violations: %d\n\n", len(violations))
		if flags.Violations {
			for _, v := range violations {
				Writef(os.Stderr, "  %s\n", v)
			}
			Writef(os.Stderr, "\n")
		}
		for _, line := range res.Trace() {
			Writef(os.Stderr, "%s\n", line)
		}
		Writef(os.Stderr, "\nLossless: %t\n", res.IsLosslessJoin())
		Writef(os.Stderr, "Fingerprint: %s\n\n", res.Fingerprint())
	}
	for _, rel := range res.Relations {
		Writef(os.Stdout, "%s\n", rel.Schema)
	}
	return nil
}
