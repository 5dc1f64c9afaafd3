package sat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional JSON file mapping solver names to their
// executable paths (e.g. {"kissat": "/opt/kissat/bin/kissat"}). Solvers whose
// name is absent are looked up on PATH.
var ConfigPath = "config.json"

func executablePath(solver string) string {
	content, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var configJson map[string]any
	if err := json.Unmarshal(content, &configJson); err != nil {
		return solver
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	if path, ok := config[solver]; ok {
		return path
	}
	return solver
}

// runDIMACSSolver feeds the instance to a DIMACS solver binary on stdin and
// parses the "v" lines of its output. Exit code 10 stands for satisfiable and
// 20 for unsatisfiable, the SAT-competition convention.
func runDIMACSSolver(solver string, args []string, instance SAT) (SATSolution, error) {
	cmd := exec.Command(executablePath(solver), args...)
	cmd.Stdin = strings.NewReader(instance.ToDIMACS())

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return nil, fmt.Errorf("could not execute %v: %v", solver, err)
	} else if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver, err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return ParseSolution(stdout.String())
}

// ParseSolution extracts the assignment from the "v" lines of a
// SAT-competition formatted solver output, dropping the terminating zero.
func ParseSolution(solverOutput string) (SATSolution, error) {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})

	solution := SATSolution{}
	for _, line := range valueLines {
		for _, field := range strings.Fields(line[1:]) {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q in solver output: %v", field, err)
			}
			if value != 0 {
				solution = append(solution, value)
			}
		}
	}
	return solution, nil
}
