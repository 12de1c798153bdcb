package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intsToLits converts QDIMACS literals, for building clauses in tests.
func intsToLits(ints ...int) []Lit {
	lits := make([]Lit, len(ints))
	for i, v := range ints {
		lits[i] = IntToLit(v)
	}
	return lits
}

func TestClauseDedupsLiterals(t *testing.T) {
	c := newClause(intsToLits(2, 1, 2, -3, 1), 0, true)
	require.Equal(t, 3, c.Len())
	assert.True(t, c.Has(IntToLit(1)))
	assert.True(t, c.Has(IntToLit(2)))
	assert.True(t, c.Has(IntToLit(-3)))
	assert.False(t, c.Has(IntToLit(3)))
}

func TestClauseTautology(t *testing.T) {
	assert.True(t, newClause(intsToLits(1, -1), 0, false).IsTautology())
	assert.True(t, newClause(intsToLits(1, 2, -3, -2), 0, false).IsTautology())
	assert.False(t, newClause(intsToLits(1, 2), 0, false).IsTautology())
	assert.False(t, newClause(intsToLits(1, -2), 0, false).IsTautology())
	assert.False(t, newClause(nil, 0, false).IsTautology())
}

func TestClauseKeyIsContentIdentity(t *testing.T) {
	c1 := newClause(intsToLits(2, 1), 0, true)
	c2 := newClause(intsToLits(1, 2), 7, false)
	c3 := newClause(intsToLits(-1, 2), 8, false)
	assert.Equal(t, c1.key(), c2.key(), "same literal set, different index and provenance")
	assert.NotEqual(t, c1.key(), c3.key())
	assert.Equal(t, "", newClause(nil, 0, false).key())
}

func TestClauseSubsumes(t *testing.T) {
	tests := []struct {
		small, big []int
		expected   bool
	}{
		{[]int{1}, []int{1, 2}, true},
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1, 2}, []int{1}, false},
		{[]int{1, 3}, []int{1, 2}, false},
		{[]int{-1}, []int{1, 2}, false},
		{[]int{}, []int{1, 2}, true},
		{[]int{-2, 3}, []int{1, -2, 3, 4}, true},
	}
	for _, test := range tests {
		small := newClause(intsToLits(test.small...), 0, false)
		big := newClause(intsToLits(test.big...), 1, false)
		assert.Equal(t, test.expected, small.Subsumes(big), "%v subsumes %v", test.small, test.big)
	}
}

func TestClauseCNF(t *testing.T) {
	c := newClause(intsToLits(2, -1), 0, true)
	require.Equal(t, "-1 2 0", c.CNF())
	assert.Equal(t, "0", newClause(nil, 0, false).CNF())
}
