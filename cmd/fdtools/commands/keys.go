package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/keys"
)

// KeysFlags contains flags for the keys command
type KeysFlags struct {
	RelationFlags
	Superkeys bool
	Quiet     bool
}

// SetupKeysFlags creates and configures a FlagSet for the keys command.
// Returns the FlagSet and a KeysFlags struct with bound flag variables.
func SetupKeysFlags() (*flag.FlagSet, *KeysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	flags := &KeysFlags{}

	addRelationFlags(fs, &flags.RelationFlags)
	fs.BoolVar(&flags.Superkeys, "superkeys", false, "also list every superkey")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output keys, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output keys, no diagnostic messages")

	fs.Usage = func() {
		printRelationUsage(fs, "keys", "List the candidate keys of a relation.")
	}

	return fs, flags
}

// keysReport is the structured output of the keys command.
type keysReport struct {
	Schema        []string   `json:"schema" yaml:"schema"`
	CandidateKeys [][]string `json:"candidateKeys" yaml:"candidateKeys"`
	Prime         []string   `json:"prime" yaml:"prime"`
	Superkeys     [][]string `json:"superkeys,omitempty" yaml:"superkeys,omitempty"`
}

// HandleKeys executes the keys command
func HandleKeys(args []string) error {
	fs, flags := SetupKeysFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("keys command takes no positional arguments, got %d", fs.NArg())
	}
	if err := flags.validate(); err != nil {
		return err
	}
	schema, seed, err := flags.relation()
	if err != nil {
		return err
	}

	c := closure.New()
	c.Trace = flags.Trace
	c.MaxAttributes = flags.MaxAttributes
	c.Logger = flags.logger()
	res, err := c.Compute(schema, seed)
	if err != nil {
		return err
	}

	superkeys := keys.Find(schema, res.Closure)
	candidates := keys.Minimal(superkeys)
	prime := keys.Prime(candidates)

	if flags.Format != FormatText {
		report := keysReport{
			Schema:        schema.Names(),
			CandidateKeys: namesOf(candidates),
			Prime:         prime.Names(),
		}
		if flags.Superkeys {
			report.Superkeys = namesOf(superkeys)
		}
		return OutputStructured(report, flags.Format)
	}

	if !flags.Quiet {
		outputHeader(schema, res.Seed.Len())
		Writef(os.Stderr, "Prime Attributes: %s\n\n", prime)
	}
	Writef(os.Stdout, "Candidate keys:\n")
	for _, k := range keys.Strings(candidates) {
		Writef(os.Stdout, "  %s\n", k)
	}
	if flags.Superkeys {
		Writef(os.Stdout, "Superkeys:\n")
		for _, k := range keys.Strings(superkeys) {
			Writef(os.Stdout, "  %s\n", k)
		}
	}
	return nil
}
