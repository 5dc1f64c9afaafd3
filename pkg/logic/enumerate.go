package logic

import (
	"github.com/samber/lo"

	"satkit/pkg/sat"
)

// Options bound and shape an enumeration.
type Options struct {
	// MaxModels stops the enumeration after this many models; zero collects
	// the full solution set.
	MaxModels int
	// IncludeNegative lists negated variables explicitly ("~X") in returned
	// models instead of omitting them. Presentation only, the blocking
	// clauses always cover the complete assignment.
	IncludeNegative bool
}

// Enumerator drives an oracle through the full solution set of a formula by
// blocking each returned model before re-querying.
type Enumerator struct {
	solver sat.SATSolver
}

func NewEnumerator(solver sat.SATSolver) *Enumerator {
	return &Enumerator{solver: solver}
}

// SolveAll translates the symbolic formula once, then repeatedly queries the
// oracle, appending after each model its blocking clause (the negation of
// every literal of the model) so the next query yields a different solution.
// It stops when the oracle reports unsatisfiable or MaxModels is reached.
//
// Unsatisfiability is never an error, not even on the first query: the result
// is simply zero models. The set of returned models equals the exact solution
// set of the formula, with no duplicates and no omissions; their order is
// whatever the oracle's internal heuristics produce.
func (enumerator *Enumerator) SolveAll(cnf CNF, options Options) ([]Model, error) {
	clauses, registry, err := Translate(cnf)
	if err != nil {
		return nil, err
	}

	instance := sat.SAT{
		Variables: registry.Size(),
		Clauses:   clauses,
	}

	models := []Model{}
	for options.MaxModels <= 0 || len(models) < options.MaxModels {
		solution, err := enumerator.solver.Solve(instance)
		if err != nil {
			return nil, err
		} else if solution == nil { // Unsatisfiable: the solution set is exhausted
			break
		}

		model, err := registry.TranslateBack(solution)
		if err != nil {
			return nil, err
		}

		blocking := lo.Map(solution, func(value int64, _ int) int64 { return -value })
		instance.Clauses = append(instance.Clauses, blocking)

		if !options.IncludeNegative {
			model = lo.Filter(model, func(literal Literal, _ int) bool { return !literal.Negated })
		}
		models = append(models, model)
	}

	return models, nil
}

// Solve returns a single model of the formula, or nil if it is
// unsatisfiable.
func (enumerator *Enumerator) Solve(cnf CNF, includeNegative bool) (Model, error) {
	models, err := enumerator.SolveAll(cnf, Options{MaxModels: 1, IncludeNegative: includeNegative})
	if err != nil || len(models) == 0 {
		return nil, err
	}
	return models[0], nil
}
