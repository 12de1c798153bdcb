package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// A Variable is a live variable of a Formula, together with its quantifier
// metadata. Its two literals are the only literals on its index the engine
// ever manipulates; clause literals are always obtained through the variable
// so that the occurrence index stays consistent.
type Variable struct {
	index    Var
	quant    Quantifier
	level    int
	prefixed bool
	deps     map[Var]bool
}

// Index returns the variable's index.
func (v *Variable) Index() Var {
	return v.index
}

// Quant returns the variable's quantifier kind. Variables outside the prefix
// are existential.
func (v *Variable) Quant() Quantifier {
	return v.quant
}

// Level returns the 0-based position of the variable's quantifier block,
// counted from the outermost block. A variable outside the prefix sits at an
// implicit innermost level, one past the last block.
func (v *Variable) Level() int {
	return v.level
}

// Prefixed is true iff the variable was bound by a quantifier block.
func (v *Variable) Prefixed() bool {
	return v.prefixed
}

// Positive returns the variable's positive literal.
func (v *Variable) Positive() Lit {
	return v.index.Lit()
}

// Negative returns the variable's negative literal.
func (v *Variable) Negative() Lit {
	return v.index.Lit().Negation()
}

// Literal returns the variable's literal of the given polarity.
func (v *Variable) Literal(positive bool) Lit {
	return v.index.SignedLit(!positive)
}

// Dependencies returns the universal variables quantified outside v, i.e
// those the existential variable v may depend on. It is bookkeeping for
// dependency-aware reasoning; elimination itself does not consult it.
func (v *Variable) Dependencies() []Var {
	res := lo.Keys(v.deps)
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// A Formula is a mutable clause database: the live variables and clauses of
// one formula instance, indexed by stable identifiers and by per-literal
// occurrence lists. The live set is kept free of tautologies, duplicates and
// subsumed clauses at all times. A Formula owns every Variable and Clause it
// creates and must not be shared between goroutines.
type Formula struct {
	vars       map[Var]*Variable
	clauses    map[string]*Clause // live set, keyed by canonical literal set
	byID       map[ClauseIndex]*Clause
	occ        map[Lit]map[ClauseIndex]*Clause
	nextClause ClauseIndex
	empty      *Clause // canonical empty clause, materialized on first use
}

// NewFormula builds the clause database for a validated formula description.
// Variables come from the quantifier blocks first, then every remaining index
// up to NumVars is created as an implicitly existential variable. Original
// clauses are inserted through the regular AddClause path, so redundant input
// clauses are filtered on the way in.
func NewFormula(qd *QDimacs) *Formula {
	f := &Formula{
		vars:    make(map[Var]*Variable),
		clauses: make(map[string]*Clause),
		byID:    make(map[ClauseIndex]*Clause),
		occ:     make(map[Lit]map[ClauseIndex]*Clause),
	}
	for level, block := range qd.Quantifiers {
		for _, vi := range block.Vars {
			f.createVariable(IntToVar(vi), block.Quant, level, true)
		}
	}
	for i := 1; i <= qd.NumVars; i++ {
		if _, ok := f.vars[IntToVar(i)]; !ok {
			f.createVariable(IntToVar(i), Exists, len(qd.Quantifiers), false)
		}
	}
	f.nextClause = ClauseIndex(len(qd.Clauses))
	for i, clause := range qd.Clauses {
		lits := make([]Lit, len(clause))
		for j, l := range clause {
			lits[j] = IntToLit(l)
			if _, ok := f.vars[lits[j].Var()]; !ok {
				f.createVariable(lits[j].Var(), Exists, len(qd.Quantifiers), false)
			}
		}
		f.AddClause(newClause(lits, ClauseIndex(i), true))
	}
	f.computeDependencies()
	return f
}

func (f *Formula) createVariable(v Var, quant Quantifier, level int, prefixed bool) *Variable {
	if _, ok := f.vars[v]; ok {
		panic(fmt.Sprintf("variable %d already registered", v.Int()))
	}
	vr := &Variable{index: v, quant: quant, level: level, prefixed: prefixed, deps: make(map[Var]bool)}
	f.vars[v] = vr
	return vr
}

func (f *Formula) allocClauseIndex() ClauseIndex {
	id := f.nextClause
	f.nextClause++
	return id
}

// NumVars returns the number of live variables.
func (f *Formula) NumVars() int {
	return len(f.vars)
}

// NumClauses returns the number of live clauses.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// Variable returns the live variable with the given index, if any.
func (f *Formula) Variable(v Var) (*Variable, bool) {
	vr, ok := f.vars[v]
	return vr, ok
}

// Variables returns the live variables, sorted by index.
func (f *Formula) Variables() []*Variable {
	res := lo.Values(f.vars)
	sort.Slice(res, func(i, j int) bool { return res[i].index < res[j].index })
	return res
}

// Clause returns the live clause with the given index, if any.
func (f *Formula) Clause(id ClauseIndex) (*Clause, bool) {
	c, ok := f.byID[id]
	return c, ok
}

// AddClause inserts c into the live set, unless it is redundant: tautologies,
// clauses whose literal set is already present and clauses subsumed by a live
// clause are all silently discarded. Live clauses that the new clause
// subsumes are retired, so the database stays subsumption-free in both
// directions. Registering a different clause under a live index is a defect
// and panics.
func (f *Formula) AddClause(c *Clause) {
	if prev, ok := f.byID[c.id]; ok {
		if prev == c {
			// Re-adding the cached empty clause is a no-op.
			return
		}
		panic(fmt.Sprintf("clause index %d already registered", c.id))
	}
	if c.IsTautology() {
		return
	}
	if f.isSubsumed(c) {
		return
	}
	f.removeSubsumed(c)
	f.clauses[c.key()] = c
	f.byID[c.id] = c
	for _, lit := range c.lits {
		occ := f.occ[lit]
		if occ == nil {
			occ = make(map[ClauseIndex]*Clause)
			f.occ[lit] = occ
		}
		occ[c.id] = c
	}
}

// rarestLit returns the literal of c with the fewest live occurrences. Every
// superset of c contains that literal, so its occurrence list is the cheapest
// one to scan for subsumed clauses.
func (f *Formula) rarestLit(c *Clause) Lit {
	rarest := c.Get(0)
	for i := 1; i < c.Len(); i++ {
		if len(f.occ[c.Get(i)]) < len(f.occ[rarest]) {
			rarest = c.Get(i)
		}
	}
	return rarest
}

// isSubsumed is true iff the literal set of c is already present, or some
// live clause's literal set is a subset of c's. The empty clause is never
// subsumed and never subsumes. Only clauses sharing a literal with c are
// tested, never the whole live set: a subsumer's literals are all literals
// of c, so it shows up in the occurrence list of each one of them.
func (f *Formula) isSubsumed(c *Clause) bool {
	if _, ok := f.clauses[c.key()]; ok {
		return true
	}
	for _, lit := range c.lits {
		for _, other := range f.occ[lit] {
			if other.Len() <= c.Len() && other.Subsumes(c) {
				return true
			}
		}
	}
	return false
}

// removeSubsumed retires every live clause whose literal set is a superset of
// c's, in preparation for inserting c.
func (f *Formula) removeSubsumed(c *Clause) {
	if c.Len() == 0 {
		return
	}
	var doomed []*Clause
	for _, other := range f.occ[f.rarestLit(c)] {
		if other.Len() >= c.Len() && c.Subsumes(other) {
			doomed = append(doomed, other)
		}
	}
	for _, other := range doomed {
		f.removeClause(other)
	}
}

// removeClause unregisters c from the live set, the index map and every
// occurrence list it appears in.
func (f *Formula) removeClause(c *Clause) {
	delete(f.clauses, c.key())
	delete(f.byID, c.id)
	for _, lit := range c.lits {
		occ := f.occ[lit]
		delete(occ, c.id)
		if len(occ) == 0 {
			delete(f.occ, lit)
		}
	}
}

// occurrences returns the live clauses containing lit, sorted by index so
// that derived clauses are produced in a deterministic order.
func (f *Formula) occurrences(lit Lit) []*Clause {
	res := lo.Values(f.occ[lit])
	sort.Slice(res, func(i, j int) bool { return res[i].id < res[j].id })
	return res
}

// Resolve returns the resolvent of c1 and c2 on v: the union of their
// literals with both literals on v removed, as a fresh derived clause. Both
// clauses must be live and v must be a live variable. The resolvent may be a
// tautology; it is AddClause's job to discard it, not the caller's. A
// resolvent with no literal left is the canonical empty clause.
func (f *Formula) Resolve(c1, c2 *Clause, v Var) *Clause {
	if _, ok := f.vars[v]; !ok {
		panic(fmt.Sprintf("resolving on unknown variable %d", v.Int()))
	}
	if f.byID[c1.id] != c1 || f.byID[c2.id] != c2 {
		panic("resolving a clause that is not live")
	}
	lits := make([]Lit, 0, c1.Len()+c2.Len())
	for _, lit := range c1.lits {
		if lit.Var() != v {
			lits = append(lits, lit)
		}
	}
	for _, lit := range c2.lits {
		if lit.Var() != v {
			lits = append(lits, lit)
		}
	}
	if len(lits) == 0 {
		return f.emptyClause()
	}
	return newClause(lits, f.allocClauseIndex(), false)
}

// EliminateVariable resolves away every occurrence of v: each clause from
// v's positive occurrence list is resolved against each clause from the
// negative one, every resolvent is universally reduced, then all clauses
// mentioning v are retired along with v itself, and finally the resolvents
// are inserted through the regular AddClause path. The variable count
// decreases by exactly one; the clause count may move either way.
func (f *Formula) EliminateVariable(v Var) {
	vr, ok := f.vars[v]
	if !ok {
		panic(fmt.Sprintf("eliminating unknown variable %d", v.Int()))
	}
	pos := f.occurrences(vr.Positive())
	neg := f.occurrences(vr.Negative())
	resolvents := make([]*Clause, 0, len(pos)*len(neg))
	for _, p := range pos {
		for _, n := range neg {
			resolvents = append(resolvents, f.reduce(f.Resolve(p, n, v)))
		}
	}
	for _, c := range pos {
		f.removeClause(c)
	}
	for _, c := range neg {
		f.removeClause(c)
	}
	delete(f.vars, v)
	for _, r := range resolvents {
		f.AddClause(r)
	}
}

// emptyClause returns the canonical empty clause of this formula,
// materializing it on first use. Every derivation path that ends with no
// literal left must hand out this clause, so that the empty clause compares
// equal to itself formula-wide.
func (f *Formula) emptyClause() *Clause {
	if f.empty == nil {
		f.empty = newClause(nil, f.allocClauseIndex(), false)
	}
	return f.empty
}

// ContainsEmptyClause is true iff the empty clause is live. This is the
// UNSAT signal: once present, the empty clause is never removed.
func (f *Formula) ContainsEmptyClause() bool {
	_, ok := f.clauses[""]
	return ok
}

// CNF returns the QDIMACS representation of the live clause set: a header
// with the live variable and clause counts, then one line per clause in
// ascending index order, each preceded by a comment giving its index and
// provenance.
func (f *Formula) CNF() string {
	clauses := lo.Values(f.clauses)
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].id < clauses[j].id })
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", len(f.vars), len(f.clauses))
	for _, c := range clauses {
		provenance := "derived"
		if c.original {
			provenance = "original"
		}
		fmt.Fprintf(&sb, "c Clause %d, %s\n%s\n", c.id, provenance, c.CNF())
	}
	return sb.String()
}
