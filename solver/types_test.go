package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitConversions(t *testing.T) {
	for _, i := range []int{1, -1, 3, -3, 42, -42} {
		lit := IntToLit(i)
		assert.Equal(t, i, lit.Int(), "round trip for %d", i)
		assert.Equal(t, i > 0, lit.IsPositive())
		assert.Equal(t, -i, lit.Negation().Int())
		assert.Equal(t, lit, lit.Negation().Negation())
	}
}

func TestVarConversions(t *testing.T) {
	v := IntToVar(3)
	require.Equal(t, 3, v.Int())
	assert.Equal(t, 3, v.Lit().Int())
	assert.Equal(t, -3, v.SignedLit(true).Int())
	assert.Equal(t, 3, v.SignedLit(false).Int())
	assert.Equal(t, v, v.Lit().Var())
	assert.Equal(t, v, v.SignedLit(true).Var())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
	assert.Equal(t, "INDETERMINATE", Indet.String())
}

func TestQuantifierString(t *testing.T) {
	assert.Equal(t, "exists", Exists.String())
	assert.Equal(t, "forall", Forall.String())
}
