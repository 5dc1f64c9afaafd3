package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var abc = []Literal{Pos("A"), Pos("B"), Pos("C")}

func countTrue(assignment Assignment) int {
	count := 0
	for _, value := range assignment {
		if value {
			count++
		}
	}
	return count
}

func TestAtLeastOne(t *testing.T) {
	// Act
	clause, err := AtLeastOne(abc)

	// Assert: rejects exactly the all-false assignment
	assert.Nil(t, err)
	for _, assignment := range assignments([]string{"A", "B", "C"}) {
		assert.Equal(t, countTrue(assignment) >= 1, clause.Eval(assignment))
	}
}

func TestAtLeastOneEmpty(t *testing.T) {
	_, err := AtLeastOne(nil)
	assert.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = ExactlyOne(nil)
	assert.ErrorIs(t, err, ErrInvalidConstraint)
}

func TestAtMostOne(t *testing.T) {
	// Act
	cnf := AtMostOne(abc)

	// Assert: pairwise encoding yields one clause per unordered pair and
	// rejects every assignment with two or more true
	assert.Len(t, cnf, 3)
	for _, assignment := range assignments([]string{"A", "B", "C"}) {
		assert.Equal(t, countTrue(assignment) <= 1, cnf.Eval(assignment))
	}
}

func TestAtMostOneSingleLiteral(t *testing.T) {
	// No pair exists, so no clause constrains the literal
	assert.Empty(t, AtMostOne([]Literal{Pos("A")}))
}

func TestExactlyOne(t *testing.T) {
	// Act
	cnf, err := ExactlyOne(abc)

	// Assert: accepts exactly the three assignments with precisely one true
	assert.Nil(t, err)
	accepted := 0
	for _, assignment := range assignments([]string{"A", "B", "C"}) {
		if cnf.Eval(assignment) {
			accepted++
			assert.Equal(t, 1, countTrue(assignment))
		}
	}
	assert.Equal(t, 3, accepted)
}

func TestAtMostK(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	literals := []Literal{Pos("A"), Pos("B"), Pos("C"), Pos("D")}

	for k := uint64(0); k <= 5; k++ {
		cnf := AtMostK(literals, k)
		for _, assignment := range assignments(names) {
			assert.Equal(t, countTrue(assignment) <= int(k), cnf.Eval(assignment))
		}
	}
}

func TestAtMostKBoundaries(t *testing.T) {
	// Trivially satisfied for k >= n
	assert.Empty(t, AtMostK(abc, 3))
	assert.Empty(t, AtMostK(abc, 10))

	// k = 0 negates every literal individually
	assert.Equal(t, CNF{{Neg("A")}, {Neg("B")}, {Neg("C")}}, AtMostK(abc, 0))

	// k = 1 reduces to the pairwise encoding
	assert.Equal(t, AtMostOne(abc), AtMostK(abc, 1))
}

func TestAtLeastKTrue(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	literals := []Literal{Pos("A"), Pos("B"), Pos("C"), Pos("D")}

	for k := uint64(0); k <= 4; k++ {
		cnf, err := AtLeastKTrue(literals, k)
		assert.Nil(t, err)
		for _, assignment := range assignments(names) {
			assert.Equal(t, countTrue(assignment) >= int(k), cnf.Eval(assignment))
		}
	}

	_, err := AtLeastKTrue(literals, 5)
	assert.ErrorIs(t, err, ErrInvalidConstraint)
}

func TestEncodersPreserveInput(t *testing.T) {
	literals := []Literal{Pos("A"), Pos("B"), Pos("C")}

	_, _ = AtLeastOne(literals)
	_ = AtMostK(literals, 1)
	_, _ = AtLeastKTrue(literals, 2)

	assert.Equal(t, []Literal{Pos("A"), Pos("B"), Pos("C")}, literals)
}
