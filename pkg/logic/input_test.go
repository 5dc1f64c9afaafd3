package logic

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemFromJson(t *testing.T) {
	// Arrange
	file := path.Join(t.TempDir(), "problem.json")
	content := `{"form": "dnf", "clauses": [["~P"], ["Q", "R"]]}`
	assert.Nil(t, os.WriteFile(file, []byte(content), 0644))

	// Act
	cnf, err := ProblemFromJson(file)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, CNF{
		{Neg("P"), Pos("Q")},
		{Neg("P"), Pos("R")},
	}, cnf)
}

func TestProcessRawProblem(t *testing.T) {
	cnf, err := ProcessRawProblem(RawProblem{Clauses: [][]string{{"~P", "Q"}}})
	assert.Nil(t, err)
	assert.Equal(t, CNF{{Neg("P"), Pos("Q")}}, cnf)

	_, err = ProcessRawProblem(RawProblem{Form: "nnf"})
	assert.NotNil(t, err)

	_, err = ProcessRawProblem(RawProblem{Clauses: [][]string{{"~"}}})
	assert.ErrorIs(t, err, ErrInvalidLiteral)
}
