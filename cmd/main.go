package main

import (
	"fmt"
	"log"

	"satkit/pkg/logic"
	"satkit/pkg/sat"
)

// Quick demonstration of the full pipeline: a DNF statement is distributed
// into CNF and every model is enumerated through the in-process oracle.
func main() {
	// (~P) v (Q ^ R)
	dnf := logic.DNF{
		{logic.Neg("P")},
		{logic.Pos("Q"), logic.Pos("R")},
	}

	cnf := logic.DNFToCNF(dnf)
	fmt.Printf("CNF: %v\n", cnf)

	enumerator := logic.NewEnumerator(sat.NewGiniSolver())
	models, err := enumerator.SolveAll(cnf, logic.Options{IncludeNegative: true})
	if err != nil {
		log.Fatalf("an error occurred during enumeration: %v", err)
	}

	fmt.Printf("Models (%v):\n", len(models))
	for _, model := range models {
		fmt.Println(model)
	}
}
