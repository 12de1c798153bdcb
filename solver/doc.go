/*
Package solver decides the satisfiability of boolean formulas in conjunctive
normal form, optionally under a quantifier prefix (QBF), by variable
elimination.

Its input is the QDIMACS format, of which DIMACS CNF is the quantifier-free
subset. If an io.Reader produces the following content:

	p cnf 2 3
	a 1 0
	e 2 0
	1 2 0
	-1 2 0
	1 -2 0

the formula can be parsed and solved by doing:

	qd, err := solver.ParseQDIMACS(f)
	if err != nil {
		// The input was not well-formed QDIMACS.
	}
	status, err := solver.Solve(qd, solver.ModeQuantified)

The status is either solver.Sat or solver.Unsat. No assignment or certificate
is produced: the verdict is the whole answer. The error is only non-nil when
the quantifier structure exceeds what the chosen mode supports, never for a
well-formed, supported formula.

A formula description can also be built programmatically:

	qd := &solver.QDimacs{
		NumVars: 2,
		Clauses: [][]int{{1, 2}, {-1, -2}},
	}
	status, err := solver.Solve(qd, solver.ModePropositional)

Solving works by eliminating variables one by one, innermost quantifier block
first. Eliminating a variable resolves every clause containing it positively
against every clause containing it negatively, universally reduces the
resolvents, then replaces all clauses mentioning the variable with the
surviving resolvents. The clause database stays free of tautologies,
duplicates and subsumed clauses throughout. The formula is unsatisfiable
exactly when the empty clause is derived, and satisfiable when every variable
can be eliminated without deriving it.

This is a complete decision procedure, not a search engine: there are no
decision heuristics, no clause learning and no restarts, and the number of
derived clauses can grow quadratically with each elimination. It is meant for
small and medium formulas and for studying elimination-based solving.
*/
package solver
