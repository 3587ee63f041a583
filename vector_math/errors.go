package vector_math

import "errors"

var (
	// ErrSingularMatrix is returned when a matrix with a determinant of exactly 0 is inverted.
	ErrSingularMatrix = errors.New("singular matrix, determinant is 0")
	// ErrMatrixDataLength is returned when a matrix is constructed from data not holding 16 values.
	ErrMatrixDataLength = errors.New("matrix data must hold exactly 16 values")
)
