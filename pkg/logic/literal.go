package logic

import (
	"fmt"
	"strings"
)

// NegationMarker is the single-character prefix denoting a negated literal in
// textual form (e.g. "~P"). It is always a prefix operator: a variable name
// must never begin with it.
const NegationMarker = '~'

// Literal is a boolean variable or its negation. The textual marker-prefixed
// form is parsed only at the system boundary; internally a literal is always
// this tagged value.
type Literal struct {
	Name    string
	Negated bool
}

// Pos builds the positive literal for a variable name.
func Pos(name string) Literal {
	return Literal{Name: name}
}

// Neg builds the negated literal for a variable name.
func Neg(name string) Literal {
	return Literal{Name: name, Negated: true}
}

// ParseLiteral parses the textual form of a literal: an optional leading
// negation marker followed by a non-empty variable name.
func ParseLiteral(text string) (Literal, error) {
	literal := Literal{Name: text}
	if strings.HasPrefix(text, string(NegationMarker)) {
		literal = Literal{Name: text[1:], Negated: true}
	}
	if err := literal.validate(); err != nil {
		return Literal{}, err
	}
	return literal, nil
}

// Not returns the complementary literal.
func (literal Literal) Not() Literal {
	return Literal{Name: literal.Name, Negated: !literal.Negated}
}

func (literal Literal) String() string {
	if literal.Negated {
		return string(NegationMarker) + literal.Name
	}
	return literal.Name
}

func (literal Literal) validate() error {
	if literal.Name == "" {
		return fmt.Errorf("%w: empty variable name", ErrInvalidLiteral)
	} else if literal.Name[0] == NegationMarker {
		return fmt.Errorf("%w: variable name %q must not begin with the negation marker", ErrInvalidLiteral, literal.Name)
	}
	return nil
}
