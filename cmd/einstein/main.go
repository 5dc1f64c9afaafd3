package main

import (
	"fmt"
	"log"

	"github.com/samber/lo"

	"satkit/pkg/logic"
	"satkit/pkg/sat"
)

const houses = 5

var categoryValues = [][]string{
	{"red", "green", "ivory", "yellow", "blue"},
	{"englishman", "spaniard", "ukrainian", "norwegian", "japanese"},
	{"coffee", "tea", "milk", "orange-juice", "water"},
	{"old-gold", "kools", "chesterfields", "lucky-strike", "parliaments"},
	{"dog", "snails", "fox", "horse", "zebra"},
}

func at(value string, house int) logic.Literal {
	return logic.Pos(fmt.Sprintf("%v@%d", value, house))
}

// sameHouse asserts that two values occupy the same house.
func sameHouse(a, b string) logic.CNF {
	cnf := logic.CNF{}
	for house := 1; house <= houses; house++ {
		cnf = append(cnf,
			logic.Clause{at(a, house).Not(), at(b, house)},
			logic.Clause{at(b, house).Not(), at(a, house)},
		)
	}
	return cnf
}

// nextTo asserts that two values occupy adjacent houses.
func nextTo(a, b string) logic.CNF {
	cnf := logic.CNF{}
	for house := 1; house <= houses; house++ {
		clause := logic.Clause{at(a, house).Not()}
		if house > 1 {
			clause = append(clause, at(b, house-1))
		}
		if house < houses {
			clause = append(clause, at(b, house+1))
		}
		cnf = append(cnf, clause)
	}
	return cnf
}

// rightOf states the clue as a disjunction of admissible house pairs and
// distributes it into CNF.
func rightOf(left, right string) logic.CNF {
	dnf := logic.DNF{}
	for house := 1; house < houses; house++ {
		dnf = append(dnf, logic.Term{at(left, house), at(right, house+1)})
	}
	return logic.DNFToCNF(dnf)
}

func main() {
	cnf := logic.CNF{}

	//** Structural constraints
	for _, values := range categoryValues {
		// Every value sits in exactly one house
		for _, value := range values {
			literals := lo.Map(lo.Range(houses), func(house int, _ int) logic.Literal {
				return at(value, house+1)
			})
			clauses, err := logic.ExactlyOne(literals)
			if err != nil {
				log.Fatalf("cannot encode constraint: %v", err)
			}
			cnf = append(cnf, clauses...)
		}
		// A house hosts at most one value per category
		for house := 1; house <= houses; house++ {
			literals := lo.Map(values, func(value string, _ int) logic.Literal {
				return at(value, house)
			})
			cnf = append(cnf, logic.AtMostOne(literals)...)
		}
	}

	//** Clues
	cnf = append(cnf, sameHouse("englishman", "red")...)
	cnf = append(cnf, sameHouse("spaniard", "dog")...)
	cnf = append(cnf, sameHouse("coffee", "green")...)
	cnf = append(cnf, sameHouse("ukrainian", "tea")...)
	cnf = append(cnf, rightOf("ivory", "green")...)
	cnf = append(cnf, sameHouse("old-gold", "snails")...)
	cnf = append(cnf, sameHouse("kools", "yellow")...)
	cnf = append(cnf, logic.Clause{at("milk", 3)})
	cnf = append(cnf, logic.Clause{at("norwegian", 1)})
	cnf = append(cnf, nextTo("chesterfields", "fox")...)
	cnf = append(cnf, nextTo("kools", "horse")...)
	cnf = append(cnf, sameHouse("lucky-strike", "orange-juice")...)
	cnf = append(cnf, sameHouse("japanese", "parliaments")...)
	cnf = append(cnf, nextTo("norwegian", "blue")...)

	//** Enumerate the full solution set; the puzzle is expected to pin down
	// a single model
	enumerator := logic.NewEnumerator(sat.NewGiniSolver())
	models, err := enumerator.SolveAll(cnf, logic.Options{})
	if err != nil {
		log.Fatalf("an error occurred during enumeration: %v", err)
	} else if len(models) == 0 {
		fmt.Println("Not satisfiable")
		return
	} else if len(models) > 1 {
		log.Fatalf("expected a unique solution but found %v", len(models))
	}

	assignment := models[0].Assignment()
	located := func(values []string, house int) string {
		value, _ := lo.Find(values, func(value string) bool {
			return assignment[at(value, house).Name]
		})
		return value
	}

	for house := 1; house <= houses; house++ {
		row := lo.Map(categoryValues, func(values []string, _ int) string {
			return located(values, house)
		})
		fmt.Printf("House %d: %v\n", house, row)
	}
}
