package fd

import (
	"errors"
	"testing"

	"github.com/erraggy/fdtools/fderrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttribute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attribute
		wantErr bool
	}{
		{name: "single letter", input: "A", want: "A"},
		{name: "word", input: "supplier_id", want: "supplier_id"},
		{name: "decomposed accent is composed", input: "e\u0301", want: "\u00e9"},
		{name: "empty", input: "", wantErr: true},
		{name: "control character", input: "A\x1fB", wantErr: true},
		{name: "invalid utf8", input: "\xff", wantErr: true},
		{name: "comma", input: "city,zip", wantErr: true},
		{name: "lone comma", input: ",", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewAttribute(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, fderrors.ErrInvalidDependency))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAttributeSet(t *testing.T) {
	abd := MustLetters("DBAB")
	assert.Equal(t, 3, abd.Len())
	assert.Equal(t, "ABD", abd.String())
	assert.Equal(t, []string{"A", "B", "D"}, abd.Names())
	assert.True(t, abd.Contains("B"))
	assert.False(t, abd.Contains("C"))

	ab := MustLetters("AB")
	assert.True(t, ab.SubsetOf(abd))
	assert.True(t, ab.ProperSubsetOf(abd))
	assert.False(t, abd.ProperSubsetOf(abd))
	assert.True(t, abd.SubsetOf(abd))
	assert.False(t, abd.SubsetOf(ab))

	assert.Equal(t, "ABCD", abd.Union(MustLetters("C")).String())
	assert.Equal(t, "D", abd.Minus(ab).String())
	assert.True(t, abd.Minus(abd).IsEmpty())
	assert.Equal(t, "AB", abd.Intersect(ab).String())
	assert.True(t, ab.Intersect(MustLetters("CD")).IsEmpty())
	assert.True(t, MustLetters("BA").Equal(ab))

	words := MustAttributeSet("sno", "pno")
	assert.Equal(t, "pno,sno", words.String())

	empty := AttributeSet{}
	assert.True(t, empty.SubsetOf(ab))
	assert.Equal(t, "AB", empty.Union(ab).String())
	assert.Equal(t, "", empty.String())
}

func TestPowerset(t *testing.T) {
	subsets := Powerset(MustLetters("ABC"))
	got := make([]string, len(subsets))
	for i, s := range subsets {
		got[i] = s.String()
	}
	assert.Equal(t, []string{"A", "B", "C", "AB", "AC", "BC", "ABC"}, got)
	assert.Nil(t, Powerset(AttributeSet{}))
	assert.Len(t, Powerset(MustLetters("ABCD")), 15)
}

func TestFD(t *testing.T) {
	f := MustFD("B", "C")
	assert.Equal(t, "B -> C", f.String())
	assert.False(t, f.IsTrivial())
	assert.True(t, MustFD("AB", "A").IsTrivial())
	assert.True(t, MustFD("AB", "BA").IsTrivial())
	assert.Equal(t, "BC", f.Attributes().String())

	t.Run("structural equality ignores order", func(t *testing.T) {
		g, err := FromNames([]string{"B", "A"}, []string{"C"})
		require.NoError(t, err)
		assert.True(t, g.Equal(MustFD("AB", "C")))
		assert.Equal(t, g.Key(), MustFD("BA", "C").Key())
	})

	t.Run("sorted rendering", func(t *testing.T) {
		assert.Equal(t, "ABD -> CE", MustFD("DBA", "EC").String())
	})
}

func TestNew_EmptySides(t *testing.T) {
	tests := []struct {
		name string
		lhs  string
		rhs  string
		msg  string
	}{
		{name: "empty lhs", lhs: "", rhs: "C", msg: "left-hand side is empty"},
		{name: "empty rhs", lhs: "B", rhs: "", msg: "right-hand side is empty"},
		{name: "both empty", lhs: "", rhs: "", msg: "left-hand side is empty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromLetters(tc.lhs, tc.rhs)
			require.Error(t, err)
			assert.ErrorIs(t, err, fderrors.ErrInvalidDependency)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestFD_Validate(t *testing.T) {
	schema := MustLetters("ABCD")
	assert.NoError(t, MustFD("B", "C").Validate(schema))

	err := MustFD("B", "E").Validate(schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, fderrors.ErrAttributeNotInSchema)

	var attrErr *fderrors.AttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "E", attrErr.Attribute)
	assert.Equal(t, "B -> E", attrErr.Dependency)
	assert.Equal(t, "ABCD", attrErr.Schema)
}

func TestCompare(t *testing.T) {
	fds := []FD{
		MustFD("D", "A"),
		MustFD("AB", "C"),
		MustFD("B", "CD"),
		MustFD("B", "C"),
	}
	s := NewSet(fds...)
	assert.Equal(t, []string{"B -> C", "D -> A", "B -> CD", "AB -> C"}, s.Strings())
}

func TestSet(t *testing.T) {
	s := NewSet(MustFD("B", "C"))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Add(MustFD("B", "C")))
	assert.True(t, s.Add(MustFD("D", "A")))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(MustFD("D", "A")))

	t.Run("zero value is usable", func(t *testing.T) {
		var z Set
		assert.Equal(t, 0, z.Len())
		assert.True(t, z.Add(MustFD("A", "B")))
		assert.Equal(t, 1, z.Len())
	})

	t.Run("union keeps both sides and copies", func(t *testing.T) {
		other := NewSet(MustFD("A", "B"))
		u := s.Union(other)
		assert.Equal(t, 3, u.Len())
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.SubsetOf(u))
		assert.True(t, other.SubsetOf(u))
		assert.False(t, u.SubsetOf(s))
	})

	t.Run("project keeps dependencies inside the schema", func(t *testing.T) {
		p := s.Project(MustLetters("BC"))
		assert.Equal(t, []string{"B -> C"}, p.Strings())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, s.Equal(s.Clone()))
		assert.False(t, s.Equal(NewSet()))
		var nilSet *Set
		assert.True(t, nilSet.Equal(NewSet()))
	})
}

func TestSeed_Resolve(t *testing.T) {
	schema := MustLetters("ABCD")

	t.Run("fds", func(t *testing.T) {
		set, err := SeedFromFDs(MustFD("B", "C"), MustFD("D", "A")).Resolve(schema)
		require.NoError(t, err)
		assert.Equal(t, []string{"B -> C", "D -> A"}, set.Strings())
	})

	t.Run("set", func(t *testing.T) {
		src := NewSet(MustFD("B", "C"))
		set, err := SeedFromSet(src).Resolve(schema)
		require.NoError(t, err)
		assert.True(t, set.Equal(src))
	})

	t.Run("pairs", func(t *testing.T) {
		seed := SeedFromPairs(Pair{LHS: []string{"B"}, RHS: []string{"C"}}, Pair{LHS: []string{"D"}, RHS: []string{"A"}})
		assert.Equal(t, ShapePairs, seed.Shape())
		set, err := seed.Resolve(schema)
		require.NoError(t, err)
		assert.Equal(t, []string{"B -> C", "D -> A"}, set.Strings())
	})

	t.Run("empty seed is valid", func(t *testing.T) {
		set, err := SeedFromFDs().Resolve(schema)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("pair with empty side", func(t *testing.T) {
		_, err := SeedFromPairs(Pair{LHS: nil, RHS: []string{"C"}}).Resolve(schema)
		require.Error(t, err)
		assert.ErrorIs(t, err, fderrors.ErrInvalidDependency)
		assert.Contains(t, err.Error(), "pair 0")
	})

	t.Run("zero-value FD", func(t *testing.T) {
		_, err := SeedFromFDs(FD{}).Resolve(schema)
		assert.ErrorIs(t, err, fderrors.ErrInvalidDependency)
	})

	t.Run("attribute outside schema", func(t *testing.T) {
		_, err := SeedFromPairs(Pair{LHS: []string{"E"}, RHS: []string{"A"}}).Resolve(schema)
		assert.ErrorIs(t, err, fderrors.ErrAttributeNotInSchema)
	})

	t.Run("zero seed has no shape", func(t *testing.T) {
		_, err := Seed{}.Resolve(schema)
		require.Error(t, err)
		assert.ErrorIs(t, err, fderrors.ErrUnsupportedInputShape)
		assert.Contains(t, err.Error(), "none")
	})
}
