package sat

type kissatSolver struct{}

// NewKissatSolver returns a solver backed by the kissat binary.
func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	// --relaxed tolerates a header whose variable count disagrees with the
	// clause bodies, which keeps appended blocking clauses unproblematic
	return runDIMACSSolver("kissat", []string{"-q", "--relaxed"}, instance)
}
