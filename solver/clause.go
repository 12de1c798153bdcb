package solver

import (
	"fmt"
	"sort"
	"strings"
)

// A Clause is a set of Lit together with a stable index inside its Formula.
// The literal set is stored sorted and duplicate-free; two clauses with the
// same literal set are the same clause no matter their indices.
type Clause struct {
	lits     []Lit // sorted ascending, no duplicates
	id       ClauseIndex
	original bool
}

// newClause returns a clause over the given lits. The slice is sorted and
// deduplicated in place; the clause takes ownership of it.
func newClause(lits []Lit, id ClauseIndex, original bool) *Clause {
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	j := 0
	for i, lit := range lits {
		if i > 0 && lit == lits[j-1] {
			continue
		}
		lits[j] = lit
		j++
	}
	return &Clause{lits: lits[:j], id: id, original: original}
}

// ID returns the stable index of c inside its formula.
func (c *Clause) ID() ClauseIndex {
	return c.id
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Original is true iff c came from the input formula rather than from
// resolution or universal reduction.
func (c *Clause) Original() bool {
	return c.original
}

// Has is true iff lit belongs to the clause.
func (c *Clause) Has(lit Lit) bool {
	i := sort.Search(len(c.lits), func(i int) bool { return c.lits[i] >= lit })
	return i < len(c.lits) && c.lits[i] == lit
}

// IsTautology is true iff the clause contains both polarities of some
// variable. Both lits of a variable are consecutive once sorted.
func (c *Clause) IsTautology() bool {
	for i := 1; i < len(c.lits); i++ {
		if c.lits[i] == c.lits[i-1].Negation() {
			return true
		}
	}
	return false
}

// Subsumes is true iff c's literal set is a subset of c2's.
func (c *Clause) Subsumes(c2 *Clause) bool {
	if c.Len() > c2.Len() {
		return false
	}
	j := 0
	for _, lit := range c.lits {
		for j < len(c2.lits) && c2.lits[j] < lit {
			j++
		}
		if j == len(c2.lits) || c2.lits[j] != lit {
			return false
		}
		j++
	}
	return true
}

// key returns the canonical representation of the literal set, used for
// content-based identity. The empty clause's key is the empty string.
func (c *Clause) key() string {
	var sb strings.Builder
	for i, lit := range c.lits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", lit.Int())
	}
	return sb.String()
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}
