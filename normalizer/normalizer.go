package normalizer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
	"github.com/erraggy/fdtools/keys"
)

// Step records how one schema was handled during decomposition.
type Step struct {
	// Schema is the schema examined at this step
	Schema fd.AttributeSet
	// Depth is the recursion depth, 0 for the input schema
	Depth int
	// InBCNF is true when Schema became a result relation
	InBCNF bool
	// FD is the dependency Schema was split on (zero when InBCNF)
	FD fd.FD
	// Left and Right are the sub-schemas produced by the split
	Left, Right fd.AttributeSet
}

// Lines renders the step as trace lines.
func (s Step) Lines() []string {
	if s.InBCNF {
		return []string{s.Schema.String() + " is in BCNF"}
	}
	return []string{
		s.Schema.String() + " is not in BCNF",
		fmt.Sprintf("Decomposing %s using %s into relations %s and %s", s.Schema, s.FD, s.Left, s.Right),
	}
}

// Result contains the outcome of a BCNF decomposition.
type Result struct {
	// RunID identifies this run in log output
	RunID uuid.UUID
	// Schema is the input schema
	Schema fd.AttributeSet
	// Seed is the resolved input dependency set. It is nil when the
	// closure was passed to Decompose directly.
	Seed *fd.Set
	// Closure is the closure of the input schema
	Closure *fd.Set
	// Relations are the BCNF schemas, left to right, with projected closures
	Relations []Relation
	// Steps is the pre-order decomposition trace
	Steps []Step
}

// Schemas returns the attribute lists of the result relations.
func (r *Result) Schemas() [][]fd.Attribute {
	out := make([][]fd.Attribute, len(r.Relations))
	for i, rel := range r.Relations {
		out[i] = rel.Schema.Attributes()
	}
	return out
}

// Trace returns the trace lines of every step in order.
func (r *Result) Trace() []string {
	var lines []string
	for _, s := range r.Steps {
		lines = append(lines, s.Lines()...)
	}
	return lines
}

// Fingerprint returns the hex BLAKE3 digest of the trace and the result
// schemas. Identical inputs give identical fingerprints; RunID is excluded.
func (r *Result) Fingerprint() string {
	var b strings.Builder
	b.WriteString(r.Schema.Key())
	b.WriteByte('\n')
	for _, line := range r.Trace() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, rel := range r.Relations {
		b.WriteString(rel.Schema.Key())
		b.WriteByte('\n')
	}
	sum := blake3.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// IsLosslessJoin reports whether the decomposition covers every attribute
// of the input schema and every recorded split is lossless under the input
// closure. Lossless binary splits compose, so the whole decomposition is
// lossless when this holds.
func (r *Result) IsLosslessJoin() bool {
	var covered fd.AttributeSet
	for _, rel := range r.Relations {
		covered = covered.Union(rel.Schema)
	}
	if !covered.Equal(r.Schema) {
		return false
	}
	for _, s := range r.Steps {
		if !s.InBCNF && !IsLosslessSplit(r.Closure, s.Left, s.Right) {
			return false
		}
	}
	return true
}

// Normalizer decomposes schemas into BCNF.
type Normalizer struct {
	// Trace logs every step at info level and derivations at debug level.
	Trace bool
	// MaxAttributes bounds schemas whose closure Normalize computes.
	// Zero means unlimited.
	MaxAttributes int
	// Logger receives diagnostic output. Nil means closure.NopLogger.
	Logger closure.Logger
	// RunID overrides the generated run identifier when not uuid.Nil.
	RunID uuid.UUID
}

// New creates a new Normalizer instance with default settings
func New() *Normalizer {
	return &Normalizer{
		MaxAttributes: closure.DefaultMaxAttributes,
		Logger:        closure.NopLogger{},
	}
}

// Option is a function that configures a decomposition
type Option func(*Normalizer) error

func applyOptions(opts ...Option) (*Normalizer, error) {
	n := New()
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// WithLogger sets the logger for diagnostic output
func WithLogger(logger closure.Logger) Option {
	return func(n *Normalizer) error {
		if logger == nil {
			return &fderrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		n.Logger = logger
		return nil
	}
}

// WithTrace enables step logging
func WithTrace(trace bool) Option {
	return func(n *Normalizer) error {
		n.Trace = trace
		return nil
	}
}

// WithMaxAttributes sets the schema size limit used by Normalize (0 disables it)
func WithMaxAttributes(limit int) Option {
	return func(n *Normalizer) error {
		if limit < 0 {
			return &fderrors.ConfigError{Option: "WithMaxAttributes", Value: limit, Message: "must not be negative"}
		}
		n.MaxAttributes = limit
		return nil
	}
}

// WithRunID fixes the run identifier instead of generating one
func WithRunID(id uuid.UUID) Option {
	return func(n *Normalizer) error {
		n.RunID = id
		return nil
	}
}

// Decompose decomposes schema into BCNF given the closure of its
// dependencies. See [Normalizer.Decompose].
func Decompose(schema fd.AttributeSet, closure *fd.Set, opts ...Option) (*Result, error) {
	n, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}
	return n.Decompose(schema, closure)
}

// Normalize computes the closure of seed over schema and decomposes schema
// into BCNF. See [Normalizer.Normalize].
func Normalize(schema fd.AttributeSet, seed fd.Seed, opts ...Option) (*Result, error) {
	n, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}
	return n.Normalize(schema, seed)
}

func (n *Normalizer) logger() closure.Logger {
	if n.Logger == nil {
		return closure.NopLogger{}
	}
	return n.Logger
}

// Normalize computes the closure of seed over schema, then decomposes.
func (n *Normalizer) Normalize(schema fd.AttributeSet, seed fd.Seed) (*Result, error) {
	c := &closure.Computer{
		Trace:         n.Trace,
		MaxAttributes: n.MaxAttributes,
		Logger:        n.logger(),
	}
	res, err := c.Compute(schema, seed)
	if err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}
	out, err := n.Decompose(schema, res.Closure)
	if err != nil {
		return nil, err
	}
	out.Seed = res.Seed
	return out, nil
}

// Decompose splits schema recursively until every part is in BCNF. At each
// level the smallest violating dependency X -> Y is chosen and the schema is
// split into X ∪ Y and (R − Y) ∪ X, the left part being handled first.
//
// closure must be the full closure of the dependencies over schema.
func (n *Normalizer) Decompose(schema fd.AttributeSet, closure *fd.Set) (*Result, error) {
	if schema.IsEmpty() {
		return nil, fmt.Errorf("normalizer: %w", &fderrors.ConfigError{Option: "schema", Message: "schema has no attributes"})
	}
	if closure == nil {
		closure = fd.NewSet()
	}
	for _, f := range closure.Sorted() {
		if err := f.Validate(schema); err != nil {
			return nil, fmt.Errorf("normalizer: %w", err)
		}
	}

	runID := n.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	res := &Result{RunID: runID, Schema: schema, Closure: closure}
	d := &decomposition{
		res:   res,
		log:   n.logger().With("run_id", runID.String()),
		trace: n.Trace,
	}
	if err := d.bcnf(Relation{Schema: schema, Closure: closure}, 0); err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}
	d.log.Debug("decomposition complete",
		"schema", schema.String(),
		"relations", len(res.Relations),
		"steps", len(res.Steps))
	return res, nil
}

// decomposition holds the accumulator of one Decompose call.
type decomposition struct {
	res   *Result
	log   closure.Logger
	trace bool
}

func (d *decomposition) record(s Step) {
	d.res.Steps = append(d.res.Steps, s)
	if d.trace {
		for _, line := range s.Lines() {
			d.log.Info(line, "schema", s.Schema.String(), "depth", s.Depth)
		}
	}
}

func (d *decomposition) bcnf(rel Relation, depth int) error {
	superkeys := keys.Find(rel.Schema, rel.Closure)
	if IsInBCNF(rel.Schema, rel.Closure, superkeys) {
		d.record(Step{Schema: rel.Schema, Depth: depth, InBCNF: true})
		d.res.Relations = append(d.res.Relations, rel)
		return nil
	}

	f, ok := FindSmallestViolatingFD(rel.Schema, rel.Closure, superkeys)
	if !ok {
		return &fderrors.InconsistencyError{
			Schema:  rel.Schema.String(),
			Message: "schema is not in BCNF but no violating FD was found",
		}
	}
	split, err := DecomposeUsingFD(rel.Schema, rel.Closure, f)
	if err != nil {
		return err
	}
	if !split.Left.Schema.ProperSubsetOf(rel.Schema) || !split.Right.Schema.ProperSubsetOf(rel.Schema) {
		return &fderrors.InconsistencyError{
			Schema:  rel.Schema.String(),
			Message: fmt.Sprintf("splitting on %s does not shrink the schema", f),
		}
	}
	d.record(Step{
		Schema: rel.Schema,
		Depth:  depth,
		FD:     f,
		Left:   split.Left.Schema,
		Right:  split.Right.Schema,
	})

	if err := d.bcnf(split.Left, depth+1); err != nil {
		return err
	}
	return d.bcnf(split.Right, depth+1)
}
