package solver

// Describes basic types and constants that are used in the solver

// Status is the outcome of solving a formula.
type Status byte

const (
	// Indet means the formula is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the formula is satisfiable.
	Sat
	// Unsat means the formula is unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// Quantifier is the kind of a quantifier block, or of a single variable.
type Quantifier byte

const (
	// Exists quantifies a variable existentially. Variables that appear in no
	// quantifier block are implicitly existential.
	Exists = Quantifier(iota)
	// Forall quantifies a variable universally.
	Forall
)

func (q Quantifier) String() string {
	switch q {
	case Exists:
		return "exists"
	case Forall:
		return "forall"
	default:
		panic("invalid quantifier")
	}
}

// Var start at 0 ; thus the QDIMACS variable 1 is encoded as the Var 0.
type Var int32

// Lit start at 0 and are positive ; the sign is the last bit.
// Thus the QDIMACS literal -3 is encoded as 2 * (3-1) + 1 = 5.
type Lit int32

// ClauseIndex is the stable identifier of a clause within one Formula.
// Indices only grow: once a clause is retired, its index is never reused.
type ClauseIndex int

// IntToLit converts a QDIMACS literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a QDIMACS variable to a Var.
func IntToVar(i int) Var {
	return Var(i - 1)
}

// Lit returns the positive Lit associated to v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the Lit associated to v, negated if 'signed', positive else.
func (v Var) SignedLit(signed bool) Lit {
	if signed {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Int returns the equivalent QDIMACS variable.
func (v Var) Int() int {
	return int(v + 1)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent QDIMACS literal.
func (l Lit) Int() int {
	sign := l&1 == 1
	res := int(l/2 + 1)
	if sign {
		return -res
	}
	return res
}

// IsPositive is true iff l is > 0 in QDIMACS terms.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns -l, i.e the positive version of l if it is negative,
// or the negative version otherwise.
func (l Lit) Negation() Lit {
	return l ^ 1
}
