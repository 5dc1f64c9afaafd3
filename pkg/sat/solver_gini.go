package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by gini. Unlike the
// binary-backed solvers it needs nothing installed, which makes it the
// default oracle.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(instance SAT) (SATSolution, error) {
	engine := gini.NewV(int(instance.Variables))
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			engine.Add(z.Dimacs2Lit(int(literal)))
		}
		engine.Add(0)
	}

	switch engine.Solve() {
	case -1:
		return nil, nil
	case 1:
		solution := make(SATSolution, 0, instance.Variables)
		for variable := uint64(1); variable <= instance.Variables; variable++ {
			value := int64(variable)
			if !engine.Value(z.Var(variable).Pos()) {
				value = -value
			}
			solution = append(solution, value)
		}
		return solution, nil
	default:
		return nil, fmt.Errorf("gini interrupted before reaching a verdict")
	}
}
