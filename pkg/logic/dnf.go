package logic

import "github.com/samber/lo"

// DNFToCNF distributes a disjunction of conjunctions into an equivalent
// conjunction of disjunctions: for every way of picking exactly one literal
// from each term, it emits a clause with all picked literals. A DNF
// containing an empty term (and the empty DNF itself) is universally false
// and converts to a single empty, unsatisfiable clause.
//
// Clause count grows as the product of term lengths; callers are responsible
// for keeping terms short. Duplicate literals within a generated clause are
// left in place, the oracle treats clauses as sets.
func DNFToCNF(dnf DNF) CNF {
	if len(dnf) == 0 || lo.SomeBy(dnf, func(term Term) bool { return len(term) == 0 }) {
		return CNF{Clause{}}
	}

	cnf := CNF{Clause{}}
	for _, term := range dnf {
		distributed := make(CNF, 0, len(cnf)*len(term))
		for _, clause := range cnf {
			for _, literal := range term {
				grown := make(Clause, len(clause), len(clause)+1)
				copy(grown, clause)
				distributed = append(distributed, append(grown, literal))
			}
		}
		cnf = distributed
	}
	return cnf
}
