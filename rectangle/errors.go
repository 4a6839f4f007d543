package rectangle

import "errors"

// Sentinel errors for rectangle operations.
var (
	// ErrLengthMismatch indicates X and O do not have the same length.
	ErrLengthMismatch = errors.New("rectangle: X and O must have the same length")

	// ErrNotPermutation indicates X or O is not a permutation of {1,...,N}.
	ErrNotPermutation = errors.New("rectangle: X and O must each be a permutation of {1,...,N}")

	// ErrMarkersOverlap indicates X and O share a value in some row,
	// violating the disjointness spec.md §3 requires of a valid grid
	// diagram.
	ErrMarkersOverlap = errors.New("rectangle: X and O must be disjoint")

	// ErrStateMismatch indicates a state passed to Classify has a
	// different arc index than the Grid it is classified against.
	ErrStateMismatch = errors.New("rectangle: state length does not match grid N")
)
