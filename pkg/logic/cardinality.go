package logic

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// AtLeastOne returns the single clause asserting that at least one of the
// literals is true. Quantifying over zero literals is a programmer error, not
// an unsatisfiable formula, and is rejected as ErrInvalidConstraint.
func AtLeastOne(literals []Literal) (Clause, error) {
	if len(literals) == 0 {
		return nil, fmt.Errorf("%w: at-least-one over zero literals", ErrInvalidConstraint)
	}
	return Clause(slices.Clone(literals)), nil
}

// AtMostOne returns pairwise mutual-exclusion clauses {¬li, ¬lj} for every
// unordered pair. This is the quadratic naive encoding, chosen for clarity
// over asymptotic clause count. A list of fewer than two literals yields no
// clauses.
func AtMostOne(literals []Literal) CNF {
	return AtMostK(literals, 1)
}

// ExactlyOne returns the union of AtLeastOne and AtMostOne.
func ExactlyOne(literals []Literal) (CNF, error) {
	clause, err := AtLeastOne(literals)
	if err != nil {
		return nil, err
	}
	return append(CNF{clause}, AtMostOne(literals)...), nil
}

// AtMostK generalizes the pairwise scheme: it forbids every (k+1)-subset of
// the literals from being simultaneously true, one clause of negations per
// subset. k >= len(literals) is trivially satisfied (no clauses); k == 0
// negates every literal individually.
func AtMostK(literals []Literal, k uint64) CNF {
	if k >= uint64(len(literals)) {
		return CNF{}
	}

	subsets := combinations(len(literals), int(k)+1)
	return lo.Map(subsets, func(subset []int, _ int) Clause {
		return lo.Map(subset, func(position int, _ int) Literal {
			return literals[position].Not()
		})
	})
}

// AtLeastKTrue asserts that at least k of the literals are true, as the dual
// of AtMostK over the complemented literals: at most len-k of them may be
// false. k greater than the literal count is rejected as ErrInvalidConstraint.
func AtLeastKTrue(literals []Literal, k uint64) (CNF, error) {
	if k > uint64(len(literals)) {
		return nil, fmt.Errorf("%w: at-least-%d over %d literals", ErrInvalidConstraint, k, len(literals))
	} else if k == 0 {
		return CNF{}, nil
	}

	complements := lo.Map(literals, func(literal Literal, _ int) Literal { return literal.Not() })
	return AtMostK(complements, uint64(len(literals))-k), nil
}

// combinations enumerates every strictly increasing index tuple of the given
// size over [0, n), in lexicographic order.
func combinations(n, size int) [][]int {
	subsets := [][]int{}
	subset := make([]int, 0, size)

	var extend func(start int)
	extend = func(start int) {
		if len(subset) == size {
			subsets = append(subsets, slices.Clone(subset))
			return
		}
		for position := start; position <= n-(size-len(subset)); position++ {
			subset = append(subset, position)
			extend(position + 1)
			subset = subset[:len(subset)-1]
		}
	}
	extend(0)

	return subsets
}
