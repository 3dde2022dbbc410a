// Package commands provides CLI command handlers for fdtools.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	fdtools "github.com/erraggy/fdtools"
	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ParseAttributes parses one attribute list. A list containing a comma is
// split on commas ("order_id,city"); otherwise every character is one
// attribute ("ABCD").
func ParseAttributes(s string) (fd.AttributeSet, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		return fd.Letters(s)
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return fd.NewAttributeSet(parts...)
}

// ParseDependency parses an "LHS:RHS" flag value into a raw pair, resolving
// each side against schema. A side containing a comma is a name list. A side
// without one is a single attribute when schema has an attribute of that name
// and a run of single-character attributes otherwise, so with schema
// order_id,customer the value "order_id:customer" names two attributes while
// "AB:C" over ABC names three.
func ParseDependency(s string, schema fd.AttributeSet) (fd.Pair, error) {
	lhs, rhs, err := splitDependency(s)
	if err != nil {
		return fd.Pair{}, err
	}
	l, err := parseSide(lhs, schema)
	if err != nil {
		return fd.Pair{}, err
	}
	r, err := parseSide(rhs, schema)
	if err != nil {
		return fd.Pair{}, err
	}
	return fd.Pair{LHS: l.Names(), RHS: r.Names()}, nil
}

func splitDependency(s string) (string, string, error) {
	lhs, rhs, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rhs, ":") {
		return "", "", &fderrors.DependencyError{Message: fmt.Sprintf("%q must have the form LHS:RHS", s)}
	}
	return lhs, rhs, nil
}

func parseSide(s string, schema fd.AttributeSet) (fd.AttributeSet, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.Contains(s, ",") {
		if a, err := fd.NewAttribute(s); err == nil && schema.Contains(a) {
			return fd.NewAttributeSet(s)
		}
	}
	return ParseAttributes(s)
}

// dependencyList collects repeated -fd flags. Values are checked for the
// LHS:RHS form here and resolved once the schema is known.
type dependencyList []string

func (d *dependencyList) String() string {
	return strings.Join(*d, " ")
}

func (d *dependencyList) Set(value string) error {
	if _, _, err := splitDependency(value); err != nil {
		return err
	}
	*d = append(*d, value)
	return nil
}

// RelationFlags are the flags shared by every command that reads a relation.
type RelationFlags struct {
	Schema        string
	Dependencies  dependencyList
	Format        string
	Trace         bool
	MaxAttributes int
}

func addRelationFlags(fs *flag.FlagSet, flags *RelationFlags) {
	fs.StringVar(&flags.Schema, "schema", "", "schema attributes: letters (ABCD) or a comma list (id,name,city)")
	fs.Var(&flags.Dependencies, "fd", "functional dependency LHS:RHS (repeatable)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Trace, "trace", false, "log derivations and decomposition steps to stderr")
	fs.IntVar(&flags.MaxAttributes, "max-attributes", closure.DefaultMaxAttributes, "largest schema accepted (0 disables the limit)")
}

func printRelationUsage(fs *flag.FlagSet, name, summary string) {
	Writef(fs.Output(), "Usage: fdtools %s -schema <attrs> [-fd LHS:RHS]... [flags]\n\n", name)
	Writef(fs.Output(), "%s\n\n", summary)
	Writef(fs.Output(), "Flags:\n")
	fs.PrintDefaults()
	Writef(fs.Output(), "\nOutput Formats:\n")
	Writef(fs.Output(), "  text (default)  Human-readable text output\n")
	Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
	Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
	Writef(fs.Output(), "\nExamples:\n")
	Writef(fs.Output(), "  fdtools %s -schema ABCD -fd B:C -fd D:A\n", name)
	Writef(fs.Output(), "  fdtools %s -schema order_id,customer,city -fd order_id:customer -fd customer:city\n", name)
	Writef(fs.Output(), "  fdtools %s -schema ABCD -fd B:C --format json\n", name)
}

// validate checks the flags that need no computation.
func (f *RelationFlags) validate() error {
	if err := ValidateOutputFormat(f.Format); err != nil {
		return err
	}
	if f.MaxAttributes < 0 {
		return fmt.Errorf("max-attributes must not be negative, got %d", f.MaxAttributes)
	}
	if strings.TrimSpace(f.Schema) == "" {
		return fmt.Errorf("missing -schema")
	}
	return nil
}

// relation parses the schema and the dependency seed.
func (f *RelationFlags) relation() (fd.AttributeSet, fd.Seed, error) {
	schema, err := ParseAttributes(f.Schema)
	if err != nil {
		return fd.AttributeSet{}, fd.Seed{}, fmt.Errorf("parsing schema: %w", err)
	}
	pairs := make([]fd.Pair, len(f.Dependencies))
	for i, raw := range f.Dependencies {
		p, err := ParseDependency(raw, schema)
		if err != nil {
			return fd.AttributeSet{}, fd.Seed{}, fmt.Errorf("parsing -fd %q: %w", raw, err)
		}
		pairs[i] = p
	}
	return schema, fd.SeedFromPairs(pairs...), nil
}

// logger returns a text logger on stderr at debug level when tracing and a
// no-op logger otherwise.
func (f *RelationFlags) logger() closure.Logger {
	if !f.Trace {
		return closure.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return closure.NewSlogAdapter(slog.New(handler))
}

// outputHeader writes the common text header to stderr.
func outputHeader(schema fd.AttributeSet, deps int) {
	Writef(os.Stderr, "fdtools version: %s\n", fdtools.Version())
	Writef(os.Stderr, "Schema: %s\n", schema)
	Writef(os.Stderr, "Dependencies: %d\n", deps)
}

// namesOf renders attribute sets as name lists for structured output.
func namesOf(sets []fd.AttributeSet) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = s.Names()
	}
	return out
}
