package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	scenarios := []struct {
		text    string
		literal Literal
	}{
		{"P", Literal{Name: "P"}},
		{"~P", Literal{Name: "P", Negated: true}},
		{"rain", Literal{Name: "rain"}},
		{"~house@3", Literal{Name: "house@3", Negated: true}},
	}

	for _, scenario := range scenarios {
		literal, err := ParseLiteral(scenario.text)
		assert.Nil(t, err)
		assert.Equal(t, scenario.literal, literal)
		assert.Equal(t, scenario.text, literal.String())
	}
}

func TestParseLiteralMalformed(t *testing.T) {
	for _, text := range []string{"", "~", "~~P"} {
		_, err := ParseLiteral(text)
		assert.ErrorIs(t, err, ErrInvalidLiteral)
	}
}

func TestLiteralNot(t *testing.T) {
	literal := Pos("P")
	assert.Equal(t, Neg("P"), literal.Not())
	assert.Equal(t, literal, literal.Not().Not())
}

func TestParseClause(t *testing.T) {
	clause, err := ParseClause([]string{"~P", "Q"})
	assert.Nil(t, err)
	assert.Equal(t, Clause{Neg("P"), Pos("Q")}, clause)

	_, err = ParseClause([]string{"P", "~"})
	assert.ErrorIs(t, err, ErrInvalidLiteral)
}
