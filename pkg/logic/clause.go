package logic

import (
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of literals. Order is preserved for
// reproducibility, though a clause is semantically a set. The empty clause is
// unsatisfiable by convention.
type Clause []Literal

// CNF is a conjunction of clauses.
type CNF []Clause

// Term is a conjunction of literals, one disjunct of a DNF formula.
type Term []Literal

// DNF is a disjunction of terms.
type DNF []Term

// Assignment maps every variable name to its truth value.
type Assignment map[string]bool

// Model is a complete assignment returned by the enumeration driver,
// re-expressed as symbolic literals.
type Model []Literal

// ParseClause parses a clause from the textual marker-prefixed literal forms.
func ParseClause(texts []string) (Clause, error) {
	clause := make(Clause, 0, len(texts))
	for _, text := range texts {
		literal, err := ParseLiteral(text)
		if err != nil {
			return nil, err
		}
		clause = append(clause, literal)
	}
	return clause, nil
}

// ParseCNF parses a conjunction of textual clauses.
func ParseCNF(clauses [][]string) (CNF, error) {
	cnf := make(CNF, 0, len(clauses))
	for _, texts := range clauses {
		clause, err := ParseClause(texts)
		if err != nil {
			return nil, err
		}
		cnf = append(cnf, clause)
	}
	return cnf, nil
}

// Eval reports whether the assignment makes the literal true.
func (literal Literal) Eval(assignment Assignment) bool {
	return assignment[literal.Name] != literal.Negated
}

// Eval reports whether the assignment satisfies the clause. The empty clause
// is unsatisfiable.
func (clause Clause) Eval(assignment Assignment) bool {
	return lo.SomeBy(clause, func(literal Literal) bool { return literal.Eval(assignment) })
}

// Eval reports whether the assignment satisfies every clause.
func (cnf CNF) Eval(assignment Assignment) bool {
	return !lo.SomeBy(cnf, func(clause Clause) bool { return !clause.Eval(assignment) })
}

// Eval reports whether the assignment satisfies the term. The empty term is
// treated as universally false, matching DNFToCNF.
func (term Term) Eval(assignment Assignment) bool {
	if len(term) == 0 {
		return false
	}
	return !lo.SomeBy(term, func(literal Literal) bool { return !literal.Eval(assignment) })
}

// Eval reports whether the assignment satisfies at least one term. A DNF
// containing an empty term is universally false, matching DNFToCNF.
func (dnf DNF) Eval(assignment Assignment) bool {
	if lo.SomeBy(dnf, func(term Term) bool { return len(term) == 0 }) {
		return false
	}
	return lo.SomeBy(dnf, func(term Term) bool { return term.Eval(assignment) })
}

// Assignment expands the model into a variable-to-truth-value mapping.
func (model Model) Assignment() Assignment {
	assignment := make(Assignment, len(model))
	for _, literal := range model {
		assignment[literal.Name] = !literal.Negated
	}
	return assignment
}

func (model Model) String() string {
	return strings.Join(lo.Map(model, func(literal Literal, _ int) string { return literal.String() }), " ")
}
