package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"satkit/pkg/logic"
	"satkit/pkg/sat"
)

var (
	validSolvers = []string{"gini", "kissat", "cadical", "minisat"}
	solvers      = map[string]func() sat.SATSolver{
		"gini":    sat.NewGiniSolver,
		"kissat":  sat.NewKissatSolver,
		"cadical": sat.NewCadicalSolver,
		"minisat": sat.NewMinisatSolver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "gini", "SAT-Solver to use. Allowed values are: \"gini\", \"kissat\", \"cadical\", \"minisat\", where \"gini\" (in-process) is the default")
	filePathPtr := flag.String("file", "", "Path to the problem file (JSON with a \"clauses\" array and an optional \"form\" of \"cnf\" or \"dnf\")")
	maxModelsPtr := flag.Int("max", 0, "Maximum number of models to enumerate; 0 enumerates the full solution set")
	includeNegPtr := flag.Bool("neg", false, "List negated variables explicitly in each model instead of omitting them")
	outFilePathPtr := flag.String("out", "", "Path to the file where the models will be written; if empty, they are written to the standard output")
	configPtr := flag.String("config", "", "Path to a JSON file mapping solver names to executable paths")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("a problem file must be specified")
	} else if *maxModelsPtr < 0 {
		log.Fatalf("max must be non-negative: %v", *maxModelsPtr)
	}
	if *configPtr != "" {
		sat.ConfigPath = *configPtr
	}

	// Extract problem
	cnf, err := logic.ProblemFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse problem file: %v", err)
	}

	// Enumerate models
	enumerator := logic.NewEnumerator(solvers[solverStr]())
	models, err := enumerator.SolveAll(cnf, logic.Options{
		MaxModels:       *maxModelsPtr,
		IncludeNegative: *includeNegPtr,
	})
	if err != nil {
		log.Fatalf("an error occurred during enumeration: %v", err)
	} else if len(models) == 0 {
		fmt.Println("Not satisfiable")
		os.Exit(20)
	}

	lines := lo.Map(models, func(model logic.Model, _ int) string { return model.String() })
	output := strings.Join(lines, "\n") + "\n"

	if outFile == "" {
		fmt.Print(output)
		return
	}
	if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}
