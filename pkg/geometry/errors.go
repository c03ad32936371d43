package geometry

import "errors"

var (
	// ErrZeroVector is returned when an operation requires a non-zero vector
	ErrZeroVector = errors.New("zero vector")

	// ErrDimensionMismatch is returned when vector dimensions disagree,
	// or an operation requires a specific dimension
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
