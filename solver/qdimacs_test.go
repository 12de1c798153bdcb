package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQDIMACS(t *testing.T) {
	content := `c a quantified formula
p cnf 4 3
a 1 2 0
e 3 0
1 3 0
-1 -3 0
2 4 0
`
	qd, err := ParseQDIMACS(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, 4, qd.NumVars)
	assert.Equal(t, [][]int{{1, 3}, {-1, -3}, {2, 4}}, qd.Clauses)
	require.Len(t, qd.Quantifiers, 2)
	assert.Equal(t, QuantifierBlock{Vars: []int{1, 2}, Quant: Forall}, qd.Quantifiers[0])
	assert.Equal(t, QuantifierBlock{Vars: []int{3}, Quant: Exists}, qd.Quantifiers[1])
}

func TestParseCNFWithoutPrefix(t *testing.T) {
	content := "p cnf 2 2\n1 2 0\n-1 -2 0\n"
	qd, err := ParseQDIMACS(strings.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, qd.Quantifiers)
	assert.Equal(t, [][]int{{1, 2}, {-1, -2}}, qd.Clauses)
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	content := "c hello\n\np cnf 1 1\nc mid-formula comment\n\n1 0\n"
	qd, err := ParseQDIMACS(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, qd.Clauses)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"comments only", "c nothing here\n"},
		{"clause before header", "1 0\n"},
		{"quantifier before header", "e 1 0\n"},
		{"truncated header", "p cnf 2\n"},
		{"not cnf", "p sat 2 2\n"},
		{"nbvars not an int", "p cnf two 2\n"},
		{"nbclauses not an int", "p cnf 2 two\n"},
		{"zero variables", "p cnf 0 1\n1 0\n"},
		{"negative clause count", "p cnf 2 -1\n"},
		{"duplicate header", "p cnf 2 1\np cnf 2 1\n1 0\n"},
		{"unterminated clause", "p cnf 2 1\n1 2\n"},
		{"empty clause", "p cnf 2 1\n0\n"},
		{"zero inside clause", "p cnf 2 1\n1 0 2 0\n"},
		{"literal out of range", "p cnf 2 1\n1 3 0\n"},
		{"literal not an int", "p cnf 2 1\n1 x 0\n"},
		{"duplicate clause", "p cnf 2 2\n1 2 0\n1 2 0\n"},
		{"unterminated quantifier block", "p cnf 2 1\ne 1\n1 0\n"},
		{"empty quantifier block", "p cnf 2 1\ne 0\n1 0\n"},
		{"quantifier variable out of range", "p cnf 2 1\ne 3 0\n1 0\n"},
		{"negative quantifier variable", "p cnf 2 1\ne -1 0\n1 0\n"},
		{"variable bound twice", "p cnf 2 1\ne 1 0\na 1 0\n1 0\n"},
		{"quantifier after clause", "p cnf 2 2\n1 0\ne 2 0\n2 0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseQDIMACS(strings.NewReader(test.content))
			assert.Error(t, err)
		})
	}
}

func TestQDimacsString(t *testing.T) {
	qd := &QDimacs{
		NumVars: 3,
		Clauses: [][]int{{1, 2}, {-2, 3}},
		Quantifiers: []QuantifierBlock{
			{Vars: []int{1}, Quant: Forall},
			{Vars: []int{2, 3}, Quant: Exists},
		},
	}
	expected := "p cnf 3 2\na 1 0\ne 2 3 0\n1 2 0\n-2 3 0\n"
	require.Equal(t, expected, qd.String())

	parsed, err := ParseQDIMACS(strings.NewReader(qd.String()))
	require.NoError(t, err)
	assert.Equal(t, qd, parsed)
}
