package logic

import "errors"

var (
	// ErrInvalidLiteral reports a malformed literal (empty name or a name
	// beginning with the negation marker).
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrRegistryMismatch reports a numeric model whose variable indices are
	// unknown to the registry it is being translated against.
	ErrRegistryMismatch = errors.New("registry mismatch")

	// ErrInvalidConstraint reports a constraint that is not meaningful, such
	// as quantifying over zero literals.
	ErrInvalidConstraint = errors.New("invalid constraint")
)
