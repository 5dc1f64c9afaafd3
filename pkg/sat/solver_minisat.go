package sat

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type minisatSolver struct{}

// NewMinisatSolver returns a solver backed by the minisat binary. Minisat
// speaks a different protocol than the SAT-competition one: it reads the
// instance from a file, writes the result to another and prints no "v" lines.
func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(instance SAT) (SATSolution, error) {
	input, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary input file: %v", err)
	}
	defer os.Remove(input.Name())

	output, err := os.CreateTemp("", "minisat-out-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary output file: %v", err)
	}
	defer os.Remove(output.Name())

	if _, err := input.WriteString(instance.ToDIMACS()); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS input: %v", err)
	}
	if err := input.Close(); err != nil {
		return nil, fmt.Errorf("failed to close DIMACS input: %v", err)
	}

	cmd := exec.Command(executablePath("minisat"), "-verb=0", input.Name(), output.Name())
	var stderr strings.Builder
	cmd.Stderr = &stderr

	err = cmd.Run()
	if cmd.ProcessState == nil {
		return nil, fmt.Errorf("could not execute minisat: %v", err)
	} else if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during minisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	content, err := os.ReadFile(output.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read minisat output: %v", err)
	}

	// First line is the SAT/UNSAT verdict, the second the assignment
	lines := strings.SplitN(string(content), "\n", 2)
	if len(lines) < 2 {
		return nil, fmt.Errorf("unexpected minisat output: %q", string(content))
	}
	return ParseSolution("v " + lines[1])
}
