package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"satkit/pkg/sat"
)

func TestTranslateFirstSeenOrder(t *testing.T) {
	// Arrange
	cnf := CNF{
		{Neg("P"), Pos("Q")},
		{Neg("P"), Pos("R")},
		{Pos("Q"), Pos("P")},
	}

	// Act
	clauses, registry, err := Translate(cnf)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, [][]int64{{-1, 2}, {-1, 3}, {2, 1}}, clauses)
	assert.Equal(t, uint64(3), registry.Size())
}

func TestTranslateIdempotent(t *testing.T) {
	cnf := CNF{
		{Pos("A"), Neg("B"), Pos("C")},
		{Neg("C"), Pos("A")},
	}

	first, _, err1 := Translate(cnf)
	second, _, err2 := Translate(cnf)

	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, first, second)
}

func TestTranslateMalformedLiteral(t *testing.T) {
	_, _, err := Translate(CNF{{Literal{Name: ""}}})
	assert.ErrorIs(t, err, ErrInvalidLiteral)

	_, _, err = Translate(CNF{{Literal{Name: "~P"}}})
	assert.ErrorIs(t, err, ErrInvalidLiteral)
}

func TestTranslateBack(t *testing.T) {
	// Arrange
	_, registry, err := Translate(CNF{{Neg("P"), Pos("Q")}, {Neg("P"), Pos("R")}})
	assert.Nil(t, err)

	// Act
	model, err := registry.TranslateBack(sat.SATSolution{-1, 2, 3})

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, Model{Neg("P"), Pos("Q"), Pos("R")}, model)
}

func TestTranslateBackMismatch(t *testing.T) {
	_, registry, err := Translate(CNF{{Pos("P")}})
	assert.Nil(t, err)

	_, err = registry.TranslateBack(sat.SATSolution{1, -2})
	assert.ErrorIs(t, err, ErrRegistryMismatch)

	_, err = registry.TranslateBack(sat.SATSolution{0})
	assert.ErrorIs(t, err, ErrRegistryMismatch)
}

func TestRegistrySharedAcrossClauseSets(t *testing.T) {
	// A caller wanting stable numbering translates several clause sets
	// against the same registry
	registry := NewRegistry()

	first, err := registry.Translate(CNF{{Pos("P"), Pos("Q")}})
	assert.Nil(t, err)

	second, err := registry.Translate(CNF{{Pos("Q"), Pos("R")}})
	assert.Nil(t, err)

	assert.Equal(t, [][]int64{{1, 2}}, first)
	assert.Equal(t, [][]int64{{2, 3}}, second)
}
