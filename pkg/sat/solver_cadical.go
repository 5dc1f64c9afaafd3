package sat

type cadicalSolver struct{}

// NewCadicalSolver returns a solver backed by the cadical binary.
func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(instance SAT) (SATSolution, error) {
	return runDIMACSSolver("cadical", []string{"-q"}, instance)
}
