package solver

import "fmt"

// computeDependencies records, on every existential variable, the universal
// variables quantified at an outer level. The elimination procedure never
// reads this; it is kept for dependency-aware reasoning on top of the engine.
func (f *Formula) computeDependencies() {
	var universals []*Variable
	for _, vr := range f.vars {
		if vr.quant == Forall {
			universals = append(universals, vr)
		}
	}
	for _, vr := range f.vars {
		if vr.quant != Exists {
			continue
		}
		for _, u := range universals {
			if u.level < vr.level {
				vr.deps[u.index] = true
			}
		}
	}
}

// reduce applies universal reduction to c: a universal literal is dropped
// when its level is strictly greater than the level of every existential
// literal of the clause, i.e when it is quantified inside all surviving
// existentials. Variables outside the prefix never block a drop and are never
// dropped themselves. Each universal literal is tested against the clause's
// original existential set, so the result does not depend on removal order.
//
// If nothing is dropped, c itself is returned, identity included. If some
// literals survive, a fresh derived clause is returned. If none survive, the
// canonical empty clause is returned. Tautologies are returned unchanged;
// AddClause discards them anyway and reducing one would not be sound.
func (f *Formula) reduce(c *Clause) *Clause {
	if c.Len() == 0 || c.IsTautology() {
		return c
	}
	maxExist := -1
	hasUniversal := false
	for _, lit := range c.lits {
		vr, ok := f.vars[lit.Var()]
		if !ok {
			panic(fmt.Sprintf("reducing a clause with unknown variable %d", lit.Var().Int()))
		}
		if vr.quant == Forall {
			hasUniversal = true
		} else if vr.prefixed && vr.level > maxExist {
			maxExist = vr.level
		}
	}
	if !hasUniversal {
		return c
	}
	kept := make([]Lit, 0, c.Len())
	for _, lit := range c.lits {
		vr := f.vars[lit.Var()]
		if vr.quant == Forall && vr.level > maxExist {
			continue
		}
		kept = append(kept, lit)
	}
	if len(kept) == c.Len() {
		return c
	}
	if len(kept) == 0 {
		return f.emptyClause()
	}
	return newClause(kept, f.allocClauseIndex(), false)
}
