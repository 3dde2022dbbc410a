package closure

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/fderrors"
	"github.com/erraggy/fdtools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// attributeClosure computes X+ with the textbook attribute-closure loop.
// It is an independent oracle for the axiom-driven fixpoint.
func attributeClosure(x fd.AttributeSet, seed *fd.Set) fd.AttributeSet {
	plus := x
	for changed := true; changed; {
		changed = false
		for _, f := range seed.Sorted() {
			if f.LHS().SubsetOf(plus) && !f.RHS().SubsetOf(plus) {
				plus = plus.Union(f.RHS())
				changed = true
			}
		}
	}
	return plus
}

// semanticClosure returns {X -> Y | Y ⊆ X+} for every non-empty X, Y.
func semanticClosure(schema fd.AttributeSet, seed *fd.Set) *fd.Set {
	out := fd.NewSet()
	for _, x := range fd.Powerset(schema) {
		for _, y := range fd.Powerset(attributeClosure(x, seed)) {
			f, err := fd.New(x, y)
			if err == nil {
				out.Add(f)
			}
		}
	}
	return out
}

// TestNew tests the New constructor
func TestNew(t *testing.T) {
	c := New()
	require.NotNil(t, c)
	assert.False(t, c.Trace)
	assert.Equal(t, DefaultMaxAttributes, c.MaxAttributes)
	assert.IsType(t, NopLogger{}, c.Logger)
}

func TestCompute_MatchesSemanticClosure(t *testing.T) {
	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			res, err := Compute(fx.Schema, fd.SeedFromFDs(fx.FDs...))
			require.NoError(t, err)
			want := semanticClosure(fx.Schema, fd.NewSet(fx.FDs...))
			assert.Equal(t, want.Strings(), res.Strings())
		})
	}
}

func TestCompute_KeyExample(t *testing.T) {
	fx := testutil.ABCD()
	res, err := Compute(fx.Schema, fd.SeedFromFDs(fx.FDs...))
	require.NoError(t, err)

	for _, want := range []fd.FD{
		fd.MustFD("B", "C"),
		fd.MustFD("D", "A"),
		fd.MustFD("BD", "ABCD"),
		fd.MustFD("AB", "ABC"),
		fd.MustFD("BD", "AC"),
	} {
		assert.True(t, res.Closure.Contains(want), "closure should contain %s", want)
	}
	assert.False(t, res.Closure.Contains(fd.MustFD("B", "A")))
	assert.False(t, res.Closure.Contains(fd.MustFD("C", "B")))
	assert.Nil(t, res.Derivations, "derivations are only recorded when tracing")
	assert.Greater(t, res.Iterations, 1)
}

func TestCompute_Monotonic(t *testing.T) {
	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			seed := fd.NewSet(fx.FDs...)
			res, err := Compute(fx.Schema, fd.SeedFromSet(seed))
			require.NoError(t, err)
			assert.True(t, seed.SubsetOf(res.Closure))
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			first, err := Compute(fx.Schema, fd.SeedFromFDs(fx.FDs...))
			require.NoError(t, err)
			second, err := Compute(fx.Schema, fd.SeedFromSet(first.Closure))
			require.NoError(t, err)
			assert.True(t, first.Closure.Equal(second.Closure))
			assert.Equal(t, 1, second.Iterations, "a closed set reaches the fixpoint in one round")
		})
	}
}

func TestCompute_TrivialOnly(t *testing.T) {
	schema := fd.MustLetters("ABC")
	res, err := Compute(schema, fd.SeedFromFDs())
	require.NoError(t, err)

	for _, x := range fd.Powerset(schema) {
		for _, y := range fd.Powerset(x) {
			f, err := fd.New(x, y)
			require.NoError(t, err)
			assert.True(t, res.Closure.Contains(f), "missing trivial %s", f)
		}
	}
	assert.Empty(t, res.NonTrivial())
}

func TestCompute_PairsAndFDsAgree(t *testing.T) {
	fx := testutil.ABCD()
	fromFDs, err := Compute(fx.Schema, fd.SeedFromFDs(fx.FDs...))
	require.NoError(t, err)
	fromPairs, err := Compute(fx.Schema, fd.SeedFromPairs(
		fd.Pair{LHS: []string{"B"}, RHS: []string{"C"}},
		fd.Pair{LHS: []string{"D"}, RHS: []string{"A"}},
	))
	require.NoError(t, err)
	assert.True(t, fromFDs.Closure.Equal(fromPairs.Closure))
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema fd.AttributeSet
		seed   fd.Seed
		max    int
		target error
	}{
		{
			name:   "attribute outside schema",
			schema: fd.MustLetters("ABC"),
			seed:   fd.SeedFromFDs(fd.MustFD("A", "D")),
			target: fderrors.ErrAttributeNotInSchema,
		},
		{
			name:   "empty pair side",
			schema: fd.MustLetters("ABC"),
			seed:   fd.SeedFromPairs(fd.Pair{LHS: []string{"A"}}),
			target: fderrors.ErrInvalidDependency,
		},
		{
			name:   "zero seed",
			schema: fd.MustLetters("ABC"),
			seed:   fd.Seed{},
			target: fderrors.ErrUnsupportedInputShape,
		},
		{
			name:   "empty schema",
			schema: fd.AttributeSet{},
			seed:   fd.SeedFromFDs(),
			target: fderrors.ErrConfig,
		},
		{
			name:   "schema over the limit",
			schema: fd.MustLetters("ABCDE"),
			seed:   fd.SeedFromFDs(),
			max:    4,
			target: fderrors.ErrResourceLimit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			if tc.max > 0 {
				c.MaxAttributes = tc.max
			}
			res, err := c.Compute(tc.schema, tc.seed)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.target)
			assert.True(t, strings.HasPrefix(err.Error(), "closure: "))
		})
	}
}

func TestComputeWithOptions(t *testing.T) {
	fx := testutil.ABCD()

	t.Run("no schema", func(t *testing.T) {
		_, err := ComputeWithOptions(WithSeed(fd.SeedFromFDs()))
		require.Error(t, err)
		assert.ErrorIs(t, err, fderrors.ErrConfig)
		assert.Contains(t, err.Error(), "no schema specified")
	})

	t.Run("no seed", func(t *testing.T) {
		_, err := ComputeWithOptions(WithSchema(fx.Schema))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no seed specified")
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := ComputeWithOptions(WithSchema(fx.Schema), WithSeed(fd.SeedFromFDs()), WithLogger(nil))
		assert.ErrorIs(t, err, fderrors.ErrConfig)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := ComputeWithOptions(WithSchema(fx.Schema), WithSeed(fd.SeedFromFDs()), WithMaxAttributes(-1))
		assert.ErrorIs(t, err, fderrors.ErrConfig)
	})

	t.Run("unlimited", func(t *testing.T) {
		res, err := ComputeWithOptions(
			WithSchema(fd.MustLetters("AB")),
			WithSeed(fd.SeedFromFDs(fd.MustFD("A", "B"))),
			WithMaxAttributes(0),
		)
		require.NoError(t, err)
		assert.True(t, res.Closure.Contains(fd.MustFD("A", "AB")))
	})

	t.Run("trace logs every derivation", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		res, err := ComputeWithOptions(
			WithSchema(fx.Schema),
			WithSeed(fd.SeedFromFDs(fx.FDs...)),
			WithTrace(true),
			WithLogger(logger),
		)
		require.NoError(t, err)
		require.NotEmpty(t, res.Derivations)
		assert.Equal(t, res.Closure.Len()-res.Seed.Len(), len(res.Derivations))

		out := buf.String()
		assert.Contains(t, out, "Trying to find new FDs using Transitivity")
		assert.Contains(t, out, "using Transitivity from")
		assert.Contains(t, out, "by Augmenting")
		assert.Contains(t, out, "schema=ABCD")
	})
}

func TestCompute_TraceIsReproducible(t *testing.T) {
	fx := testutil.ABCD()
	render := func() []string {
		c := New()
		c.Trace = true
		res, err := c.Compute(fx.Schema, fd.SeedFromFDs(fx.FDs...))
		require.NoError(t, err)
		lines := make([]string, len(res.Derivations))
		for i, d := range res.Derivations {
			lines[i] = d.String()
		}
		return lines
	}
	assert.Equal(t, render(), render())
}
