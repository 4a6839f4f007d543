package lift

import "errors"

// Sentinel errors for lift operations.
var (
	// ErrInvalidCoverOrder indicates a requested cover order n is
	// outside [1, maxSheets].
	ErrInvalidCoverOrder = errors.New("lift: cover order out of range")

	// ErrSheetCountMismatch indicates an operation was given a number
	// of sheet states that does not match the generator's cover order.
	ErrSheetCountMismatch = errors.New("lift: sheet count does not match cover order")

	// ErrSheetMismatch indicates a sheet index outside [0, N) was used
	// to address a Generator.
	ErrSheetMismatch = errors.New("lift: sheet index out of range")
)
