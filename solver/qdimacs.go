package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A QuantifierBlock binds a list of variables in the quantifier prefix.
type QuantifierBlock struct {
	Vars  []int
	Quant Quantifier
}

// A QDimacs is the validated description of a formula, as produced by
// ParseQDIMACS: a variable count, a list of clauses given as non-empty,
// 0-free integer literal lists, and an ordered quantifier prefix. An empty
// prefix means the formula is plain CNF.
type QDimacs struct {
	NumVars     int
	Clauses     [][]int
	Quantifiers []QuantifierBlock
}

// String returns the QDIMACS representation of the description.
func (qd *QDimacs) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", qd.NumVars, len(qd.Clauses))
	for _, block := range qd.Quantifiers {
		if block.Quant == Forall {
			sb.WriteByte('a')
		} else {
			sb.WriteByte('e')
		}
		for _, v := range block.Vars {
			fmt.Fprintf(&sb, " %d", v)
		}
		sb.WriteString(" 0\n")
	}
	for _, clause := range qd.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&sb, "%d ", lit)
		}
		sb.WriteString("0\n")
	}
	return sb.String()
}

func parseQDimacsHeader(fields []string) (nbVars, nbClauses int, err error) {
	if len(fields) != 4 {
		return 0, 0, errors.Errorf("expected 4 fields in header, got %d", len(fields))
	}
	if fields[1] != "cnf" {
		return 0, 0, errors.Errorf("unsupported format %q, only cnf is supported", fields[1])
	}
	nbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Errorf("nbvars not an int : %q", fields[2])
	}
	nbClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, errors.Errorf("nbclauses not an int : %q", fields[3])
	}
	if nbVars <= 0 {
		return 0, 0, errors.Errorf("invalid number of variables %d", nbVars)
	}
	if nbClauses < 0 {
		return 0, 0, errors.Errorf("invalid number of clauses %d", nbClauses)
	}
	return nbVars, nbClauses, nil
}

// parseBlock parses the 0-terminated variable list of an 'a' or 'e' line.
func (qd *QDimacs) parseBlock(fields []string, quant Quantifier, bound map[int]bool) error {
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return errors.New("quantifier blocks must end with 0")
	}
	fields = fields[:len(fields)-1]
	if len(fields) == 0 {
		return errors.New("empty quantifier block")
	}
	vars := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return errors.Errorf("invalid variable %q", field)
		}
		if v <= 0 || v > qd.NumVars {
			return errors.Errorf("variable %d out of range for formula with %d vars", v, qd.NumVars)
		}
		if bound[v] {
			return errors.Errorf("variable %d bound twice", v)
		}
		bound[v] = true
		vars[i] = v
	}
	qd.Quantifiers = append(qd.Quantifiers, QuantifierBlock{Vars: vars, Quant: quant})
	return nil
}

func (qd *QDimacs) parseClause(fields []string, seen map[string]bool) error {
	if fields[len(fields)-1] != "0" {
		return errors.New("clauses must end with 0")
	}
	fields = fields[:len(fields)-1]
	if len(fields) == 0 {
		return errors.New("empty clause")
	}
	clause := make([]int, len(fields))
	for i, field := range fields {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return errors.Errorf("invalid literal %q", field)
		}
		if lit == 0 {
			return errors.New("clauses must not contain 0")
		}
		if lit > qd.NumVars || -lit > qd.NumVars {
			return errors.Errorf("literal %d out of range for formula with %d vars", lit, qd.NumVars)
		}
		clause[i] = lit
	}
	key := strings.Join(fields, " ")
	if seen[key] {
		return errors.Errorf("duplicate clause %q", key)
	}
	seen[key] = true
	qd.Clauses = append(qd.Clauses, clause)
	return nil
}

// ParseQDIMACS parses a formula in the QDIMACS format (of which DIMACS CNF is
// the quantifier-free subset) and returns its validated description. The
// returned QDimacs is what the solving entry points consume; they trust its
// content and perform no re-validation.
func ParseQDIMACS(r io.Reader) (*QDimacs, error) {
	sc := bufio.NewScanner(r)
	var qd *QDimacs
	seenClauses := make(map[string]bool)
	bound := make(map[int]bool)
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if qd != nil {
				return nil, errors.New("duplicate header")
			}
			nbVars, _, err := parseQDimacsHeader(fields)
			if err != nil {
				return nil, errors.Wrapf(err, "could not parse header %q", line)
			}
			qd = &QDimacs{NumVars: nbVars}
		case "a", "e":
			if qd == nil {
				return nil, errors.Errorf("quantifier block %q before header", line)
			}
			quant := Exists
			if fields[0] == "a" {
				quant = Forall
			}
			if len(qd.Clauses) != 0 {
				return nil, errors.Errorf("quantifier block %q after first clause", line)
			}
			if err := qd.parseBlock(fields[1:], quant, bound); err != nil {
				return nil, errors.Wrapf(err, "could not parse quantifier block %q", line)
			}
		default:
			if qd == nil {
				return nil, errors.Errorf("clause %q before header", line)
			}
			if err := qd.parseClause(fields, seenClauses); err != nil {
				return nil, errors.Wrapf(err, "could not parse clause %q", line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read formula")
	}
	if qd == nil {
		return nil, errors.New("empty file")
	}
	return qd, nil
}
