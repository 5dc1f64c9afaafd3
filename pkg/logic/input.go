package logic

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// RawProblem is the textual form of a problem file: clauses of
// marker-prefixed literals, either already in CNF or as DNF terms awaiting
// distribution.
type RawProblem struct {
	Form    string // "cnf" (default) or "dnf"
	Clauses [][]string
}

// ProblemFromJson reads a problem file and returns the CNF formula it
// describes, converting from DNF when the file says so.
func ProblemFromJson(file string) (CNF, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var problemJson map[string]any
	if err := json.Unmarshal(bytes, &problemJson); err != nil {
		return nil, err
	}

	var raw RawProblem
	mapstructure.Decode(problemJson, &raw)
	return ProcessRawProblem(raw)
}

// ProcessRawProblem parses the textual literals and normalizes the formula to
// CNF.
func ProcessRawProblem(raw RawProblem) (CNF, error) {
	switch strings.ToLower(raw.Form) {
	case "", "cnf":
		return ParseCNF(raw.Clauses)
	case "dnf":
		dnf := make(DNF, 0, len(raw.Clauses))
		for _, texts := range raw.Clauses {
			term, err := ParseClause(texts)
			if err != nil {
				return nil, err
			}
			dnf = append(dnf, Term(term))
		}
		return DNFToCNF(dnf), nil
	default:
		return nil, fmt.Errorf("unknown formula form %q", raw.Form)
	}
}
