package keys

import (
	"testing"

	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeClosure(t *testing.T, fx testutil.Fixture) *fd.Set {
	t.Helper()
	res, err := closure.Compute(fx.Schema, fx.Seed())
	require.NoError(t, err)
	return res.Closure
}

func TestFind_ABCD(t *testing.T) {
	fx := testutil.ABCD()
	got := Find(fx.Schema, computeClosure(t, fx))
	assert.Equal(t, []string{"BD", "ABD", "BCD", "ABCD"}, Strings(got))
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		fixture testutil.Fixture
		want    []string
	}{
		{testutil.ABCD(), []string{"BD"}},
		{testutil.Chain(), []string{"A"}},
		{testutil.Cycle(), []string{"A", "B", "C"}},
		{testutil.NoDependencies(), []string{"AB"}},
		{testutil.KeyOnly(), []string{"A"}},
		{testutil.Overlapping(), []string{"ABE", "BCE", "BDE"}},
	}

	for _, tt := range tests {
		t.Run(tt.fixture.Name, func(t *testing.T) {
			got := Candidates(tt.fixture.Schema, computeClosure(t, tt.fixture))
			assert.Equal(t, tt.want, Strings(got))
		})
	}
}

// TestCandidates_AreMinimalSuperkeys checks that every candidate is a
// superkey and that no candidate contains another.
func TestCandidates_AreMinimalSuperkeys(t *testing.T) {
	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			cl := computeClosure(t, fx)
			super := NewSet(Find(fx.Schema, cl))
			cands := Candidates(fx.Schema, cl)
			require.NotEmpty(t, cands, "the schema itself is always a superkey")
			for i, a := range cands {
				assert.True(t, super.Has(a))
				for j, b := range cands {
					if i != j {
						assert.False(t, a.SubsetOf(b), "%s is inside %s", a, b)
					}
				}
			}
		})
	}
}

func TestFind_PartialSet(t *testing.T) {
	schema := fd.MustLetters("AB")
	got := Find(schema, fd.NewSet(fd.MustFD("A", "AB"), fd.MustFD("A", "AB"), fd.MustFD("B", "A")))
	assert.Equal(t, []string{"A"}, Strings(got))
	assert.Empty(t, Find(schema, fd.NewSet()))
}

func TestMinimal(t *testing.T) {
	in := []fd.AttributeSet{
		fd.MustLetters("ABC"),
		fd.MustLetters("BC"),
		fd.MustLetters("AD"),
		fd.MustLetters("A"),
	}
	assert.Equal(t, []string{"A", "BC"}, Strings(Minimal(in)))
	assert.Equal(t, "ABC", in[0].String(), "input is not reordered")
	assert.Nil(t, Minimal(nil))
}

func TestPrime(t *testing.T) {
	assert.Equal(t, "ABCDE", Prime([]fd.AttributeSet{
		fd.MustLetters("ABE"), fd.MustLetters("BCE"), fd.MustLetters("BDE"),
	}).String())
	assert.True(t, Prime(nil).IsEmpty())
}

func TestSet(t *testing.T) {
	var zero Set
	assert.False(t, zero.Has(fd.MustLetters("A")))
	assert.Equal(t, 0, zero.Len())

	s := NewSet([]fd.AttributeSet{fd.MustLetters("BD"), fd.MustLetters("ABD"), fd.MustLetters("DB")})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(fd.MustLetters("DB")))
	assert.False(t, s.Has(fd.MustLetters("B")), "membership is exact, not subset")
	assert.Equal(t, []string{"BD", "ABD"}, Strings(s.Sorted()))
}
