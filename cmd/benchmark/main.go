package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"satkit/pkg/sat"
)

type instanceSize struct {
	variables uint64
	clauses   int
}

var (
	solverNames = []string{"gini", "kissat", "cadical", "minisat"}
	solvers     = map[string]func() sat.SATSolver{
		"gini":    sat.NewGiniSolver,
		"kissat":  sat.NewKissatSolver,
		"cadical": sat.NewCadicalSolver,
		"minisat": sat.NewMinisatSolver,
	}
	sizes = []instanceSize{
		{variables: 50, clauses: 210},
		{variables: 100, clauses: 420},
		{variables: 150, clauses: 630},
	}
)

// Benchmarks the solver backends against random 3-literal instances near the
// satisfiability threshold and reports a CSV of timings. Backends whose
// binary is not installed are reported with an "error" result and skipped.
func main() {
	runsPtr := flag.Int("runs", 10, "Number of instances per solver and size")
	outFilePathPtr := flag.String("out", "", "Path to the CSV output file; if empty, it is written to the standard output")
	flag.Parse()

	output := os.Stdout
	if *outFilePathPtr != "" {
		file, err := os.Create(*outFilePathPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		output = file
	}

	writer := csv.NewWriter(output)
	defer writer.Flush()
	writer.Write([]string{"solver", "variables", "clauses", "result", "satisfiable", "mean_ms"})

	for _, name := range solverNames {
		solver := solvers[name]()

		for _, size := range sizes {
			satisfiable := 0
			var elapsed time.Duration
			failed := false

			for run := 0; run < *runsPtr && !failed; run++ {
				instance := sat.GenerateInstance(size.variables, size.clauses)

				start := time.Now()
				solution, err := solver.Solve(instance)
				elapsed += time.Since(start)

				if err != nil {
					log.Printf("skipping %v: %v", name, err)
					failed = true
				} else if solution != nil {
					satisfiable++
				}
			}

			result := "solved"
			if failed {
				result = "error"
			}
			mean := elapsed.Milliseconds() / int64(*runsPtr)
			writer.Write([]string{
				name,
				fmt.Sprint(size.variables),
				fmt.Sprint(size.clauses),
				result,
				fmt.Sprint(satisfiable),
				fmt.Sprint(mean),
			})

			if failed {
				break
			}
		}
	}
}
