package sat

import (
	"math/rand"
)

// GenerateInstance builds a random 3-literal-per-clause instance, used by the
// solver tests and the benchmark harness.
func GenerateInstance(variables uint64, clauses int) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := 0; i < clauses; i++ {
		width := 3
		if uint64(width) > variables {
			width = int(variables)
		}

		clause := make([]int64, 0, width)
		for _, variable := range rand.Perm(int(variables))[:width] {
			value := int64(variable) + 1
			if rand.Float32() < 0.5 {
				value = -value
			}
			clause = append(clause, value)
		}
		instance.Clauses[i] = clause
	}

	return instance
}

// VerifySolution reports whether the solution is contradiction-free and
// satisfies every clause of the instance.
func VerifySolution(instance SAT, solution SATSolution) bool {
	asserted := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if asserted[-literal] {
			return false
		}
		asserted[literal] = true
	}

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if asserted[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
