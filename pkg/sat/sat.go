package sat

import (
	"strconv"
	"strings"
)

// SAT is a numeric CNF instance in the oracle's vocabulary: clauses of
// non-zero signed integers, where a positive value asserts the variable and a
// negative one its complement, magnitudes starting at 1.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// SATSolution is one satisfying assignment covering every variable index of
// the instance.
type SATSolution []int64

// SATSolver is the external oracle: a black-box decision procedure. Solve
// returns a solution if the instance is satisfiable and nil (with a nil
// error) if it is not. An instance may be re-submitted with extra clauses
// appended; each call solves from scratch.
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}

// ToDIMACS renders the instance in DIMACS-CNF format.
func (instance SAT) ToDIMACS() string {
	var builder strings.Builder
	builder.WriteString("p cnf ")
	builder.WriteString(strconv.FormatUint(instance.Variables, 10))
	builder.WriteString(" ")
	builder.WriteString(strconv.Itoa(len(instance.Clauses)))
	builder.WriteString("\n")
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			builder.WriteString(strconv.FormatInt(literal, 10))
			builder.WriteString(" ")
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
