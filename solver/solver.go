package solver

import (
	"io"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Mode declares up front which formula shapes a Solver accepts.
type Mode byte

const (
	// ModePropositional only accepts quantifier-free input.
	ModePropositional = Mode(iota)
	// ModeQuantified accepts any quantifier prefix.
	ModeQuantified
)

func (m Mode) String() string {
	switch m {
	case ModePropositional:
		return "propositional"
	case ModeQuantified:
		return "quantified"
	default:
		panic("invalid mode")
	}
}

// A ShapeError reports a formula whose quantifier structure exceeds what the
// requested mode supports. It is not a verdict: the formula may well be
// satisfiable, the solver just cannot tell.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "unsupported formula shape: " + e.Reason
}

type solverState byte

const (
	ready = solverState(iota)
	eliminating
	done
)

// A Solver decides the satisfiability of one formula by repeated variable
// elimination. It owns its Formula for the whole solve; create a fresh Solver
// per input rather than reusing one.
type Solver struct {
	f      *Formula
	state  solverState
	status Status
}

// New returns a solver for the given validated formula description, or a
// *ShapeError if its quantifier structure exceeds what mode supports.
func New(qd *QDimacs, mode Mode) (*Solver, error) {
	if mode == ModePropositional && len(qd.Quantifiers) != 0 {
		return nil, &ShapeError{Reason: "propositional mode cannot handle a quantifier prefix"}
	}
	return &Solver{f: NewFormula(qd)}, nil
}

// Formula gives access to the solver's clause database, mostly for
// inspection and CNF dumps.
func (s *Solver) Formula() *Formula {
	return s.f
}

// Solve eliminates every variable in turn and reports the verdict. The run
// short-circuits to Unsat as soon as the empty clause is derived; if every
// variable goes away without it, the formula is Sat. Solving twice returns
// the cached verdict.
func (s *Solver) Solve() Status {
	if s.state == done {
		return s.status
	}
	s.state = eliminating
	for step, v := range s.eliminationOrder() {
		s.f.EliminateVariable(v)
		logrus.WithFields(logrus.Fields{
			"var":     v.Int(),
			"step":    step + 1,
			"clauses": s.f.NumClauses(),
		}).Debug("eliminated variable")
		if s.f.ContainsEmptyClause() {
			s.status = Unsat
			s.state = done
			return s.status
		}
	}
	s.status = Sat
	s.state = done
	return s.status
}

// eliminationOrder freezes the live variables in the order they will be
// eliminated: innermost quantifier block first, ascending index within a
// block. Variables outside the prefix sit at an implicit innermost level and
// go first. On a quantifier-free formula this is plain ascending index order.
func (s *Solver) eliminationOrder() []Var {
	vars := s.f.Variables()
	sort.SliceStable(vars, func(i, j int) bool {
		if vars[i].Level() != vars[j].Level() {
			return vars[i].Level() > vars[j].Level()
		}
		return vars[i].Index() < vars[j].Index()
	})
	return lo.Map(vars, func(vr *Variable, _ int) Var { return vr.Index() })
}

// Solve decides the satisfiability of a validated formula description.
func Solve(qd *QDimacs, mode Mode) (Status, error) {
	s, err := New(qd, mode)
	if err != nil {
		return Indet, err
	}
	return s.Solve(), nil
}

// SolveReader parses a QDIMACS stream and decides its satisfiability.
func SolveReader(r io.Reader, mode Mode) (Status, error) {
	qd, err := ParseQDIMACS(r)
	if err != nil {
		return Indet, err
	}
	return Solve(qd, mode)
}
