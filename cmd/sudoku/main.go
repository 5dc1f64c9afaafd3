package main

import (
	"fmt"
	"log"
	"strings"

	"satkit/pkg/logic"
	"satkit/pkg/sat"
)

// Puzzle is given row-major, '.' for blank cells.
const puzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func cell(row, col, digit int) logic.Literal {
	return logic.Pos(fmt.Sprintf("r%dc%d#%d", row, col, digit))
}

func exactlyOne(cnf logic.CNF, literals []logic.Literal) logic.CNF {
	clauses, err := logic.ExactlyOne(literals)
	if err != nil {
		log.Fatalf("cannot encode constraint: %v", err)
	}
	return append(cnf, clauses...)
}

func main() {
	cnf := logic.CNF{}

	// Every cell holds exactly one digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			literals := make([]logic.Literal, 0, 9)
			for digit := 1; digit <= 9; digit++ {
				literals = append(literals, cell(row, col, digit))
			}
			cnf = exactlyOne(cnf, literals)
		}
	}

	// Every row and every column contains each digit exactly once
	for digit := 1; digit <= 9; digit++ {
		for row := 0; row < 9; row++ {
			literals := make([]logic.Literal, 0, 9)
			for col := 0; col < 9; col++ {
				literals = append(literals, cell(row, col, digit))
			}
			cnf = exactlyOne(cnf, literals)
		}
		for col := 0; col < 9; col++ {
			literals := make([]logic.Literal, 0, 9)
			for row := 0; row < 9; row++ {
				literals = append(literals, cell(row, col, digit))
			}
			cnf = exactlyOne(cnf, literals)
		}
	}

	// So does every 3x3 box
	for digit := 1; digit <= 9; digit++ {
		for boxRow := 0; boxRow < 3; boxRow++ {
			for boxCol := 0; boxCol < 3; boxCol++ {
				literals := make([]logic.Literal, 0, 9)
				for row := boxRow * 3; row < boxRow*3+3; row++ {
					for col := boxCol * 3; col < boxCol*3+3; col++ {
						literals = append(literals, cell(row, col, digit))
					}
				}
				cnf = exactlyOne(cnf, literals)
			}
		}
	}

	// Givens become unit clauses
	for position, char := range puzzle {
		if char >= '1' && char <= '9' {
			cnf = append(cnf, logic.Clause{cell(position/9, position%9, int(char-'0'))})
		}
	}

	enumerator := logic.NewEnumerator(sat.NewGiniSolver())
	model, err := enumerator.Solve(cnf, false)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	} else if model == nil {
		fmt.Println("Not satisfiable")
		return
	}

	assignment := model.Assignment()
	var builder strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for digit := 1; digit <= 9; digit++ {
				if assignment[cell(row, col, digit).Name] {
					fmt.Fprintf(&builder, "%d ", digit)
					break
				}
			}
		}
		builder.WriteString("\n")
	}
	fmt.Print(builder.String())
}
