package closure

import (
	"fmt"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
)

// DefaultMaxAttributes bounds the schemas New accepts. The powerset of the
// schema is enumerated on every round, so the cost doubles per attribute.
const DefaultMaxAttributes = 8

// Result contains the outcome of a closure computation.
type Result struct {
	// Schema is the schema the closure was computed over
	Schema fd.AttributeSet
	// Seed is the resolved input dependency set
	Seed *fd.Set
	// Closure holds every dependency implied by Seed under Armstrong's axioms
	Closure *fd.Set
	// Iterations is the number of transitivity+augmentation rounds run,
	// including the final round that added nothing
	Iterations int
	// Derivations lists every derived dependency in derivation order.
	// It is only populated when tracing is enabled.
	Derivations []Derivation
}

// Strings renders the closure as sorted "<lhs> -> <rhs>" lines.
func (r *Result) Strings() []string {
	return r.Closure.Strings()
}

// NonTrivial returns the non-trivial dependencies of the closure in sorted order.
func (r *Result) NonTrivial() []fd.FD {
	var out []fd.FD
	for _, f := range r.Closure.Sorted() {
		if !f.IsTrivial() {
			out = append(out, f)
		}
	}
	return out
}

// Computer computes dependency closures.
type Computer struct {
	// Trace records every derivation in Result.Derivations and logs it at
	// debug level.
	Trace bool
	// MaxAttributes rejects larger schemas with a resource limit error.
	// Zero means unlimited.
	MaxAttributes int
	// Logger receives diagnostic output. Nil means NopLogger.
	Logger Logger
}

// New creates a new Computer instance with default settings
func New() *Computer {
	return &Computer{
		Trace:         false,
		MaxAttributes: DefaultMaxAttributes,
		Logger:        NopLogger{},
	}
}

// Compute computes the closure of seed over schema with default settings.
func Compute(schema fd.AttributeSet, seed fd.Seed) (*Result, error) {
	return New().Compute(schema, seed)
}

// Option is a function that configures a closure computation
type Option func(*computeConfig) error

type computeConfig struct {
	// Input (both must be set)
	schema *fd.AttributeSet
	seed   *fd.Seed

	trace         bool
	maxAttributes int
	logger        Logger
}

// ComputeWithOptions computes a closure using functional options.
//
// Example:
//
//	res, err := closure.ComputeWithOptions(
//	    closure.WithSchema(fd.MustLetters("ABCD")),
//	    closure.WithSeed(fd.SeedFromFDs(fd.MustFD("B", "C"))),
//	    closure.WithTrace(true),
//	)
func ComputeWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("closure: invalid options: %w", err)
	}
	c := &Computer{
		Trace:         cfg.trace,
		MaxAttributes: cfg.maxAttributes,
		Logger:        cfg.logger,
	}
	return c.Compute(*cfg.schema, *cfg.seed)
}

func applyOptions(opts ...Option) (*computeConfig, error) {
	cfg := &computeConfig{
		maxAttributes: DefaultMaxAttributes,
		logger:        NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.schema == nil {
		return nil, &fderrors.ConfigError{Option: "WithSchema", Message: "no schema specified"}
	}
	if cfg.seed == nil {
		return nil, &fderrors.ConfigError{Option: "WithSeed", Message: "no seed specified"}
	}
	return cfg, nil
}

// WithSchema specifies the schema the closure is computed over
func WithSchema(schema fd.AttributeSet) Option {
	return func(cfg *computeConfig) error {
		cfg.schema = &schema
		return nil
	}
}

// WithSeed specifies the input dependencies
func WithSeed(seed fd.Seed) Option {
	return func(cfg *computeConfig) error {
		cfg.seed = &seed
		return nil
	}
}

// WithTrace enables derivation tracing
func WithTrace(trace bool) Option {
	return func(cfg *computeConfig) error {
		cfg.trace = trace
		return nil
	}
}

// WithLogger sets the logger for diagnostic output
func WithLogger(logger Logger) Option {
	return func(cfg *computeConfig) error {
		if logger == nil {
			return &fderrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxAttributes sets the schema size limit (0 disables it)
func WithMaxAttributes(n int) Option {
	return func(cfg *computeConfig) error {
		if n < 0 {
			return &fderrors.ConfigError{Option: "WithMaxAttributes", Value: n, Message: "must not be negative"}
		}
		cfg.maxAttributes = n
		return nil
	}
}

func (c *Computer) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// Compute applies reflexivity once, then transitivity followed by
// augmentation until a round adds no dependency.
func (c *Computer) Compute(schema fd.AttributeSet, seed fd.Seed) (*Result, error) {
	if schema.IsEmpty() {
		return nil, fmt.Errorf("closure: %w", &fderrors.ConfigError{Option: "schema", Message: "schema has no attributes"})
	}
	if c.MaxAttributes > 0 && schema.Len() > c.MaxAttributes {
		return nil, fmt.Errorf("closure: %w", &fderrors.ResourceLimitError{
			ResourceType: "attributes",
			Limit:        c.MaxAttributes,
			Actual:       schema.Len(),
		})
	}
	seedSet, err := seed.Resolve(schema)
	if err != nil {
		return nil, fmt.Errorf("closure: %w", err)
	}

	log := c.logger().With("schema", schema.String())
	res := &Result{Schema: schema, Seed: seedSet}

	var trace Tracer
	if c.Trace {
		trace = func(d Derivation) {
			res.Derivations = append(res.Derivations, d)
			log.Debug(d.String(), "rule", string(d.Rule), "fd", d.Derived.String())
		}
	}

	f := Reflexivity(seedSet, schema, trace)
	powerset := fd.Powerset(schema)
	for {
		res.Iterations++
		if c.Trace {
			log.Debug("Trying to find new FDs using Transitivity", "round", res.Iterations)
		}
		f2 := Transitivity(f, trace)
		if c.Trace {
			log.Debug("Trying to find new FDs using Augmentation", "round", res.Iterations)
		}
		f2 = Augmentation(f2, powerset, trace)
		done := f2.Len() == f.Len()
		f = f2
		if done {
			break
		}
	}

	res.Closure = f
	log.Debug("closure computed", "seed", seedSet.Len(), "closure", f.Len(), "rounds", res.Iterations)
	return res, nil
}
