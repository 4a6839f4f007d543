package gridstate

import "errors"

// Sentinel errors for gridstate operations.
var (
	// ErrInvalidLength indicates N <= 0 was given where a positive arc
	// index is required.
	ErrInvalidLength = errors.New("gridstate: length must be positive")

	// ErrNotPermutation indicates a vector passed to Encode is not a
	// permutation of {1,...,N}: wrong length, a value out of range, or
	// a repeated value.
	ErrNotPermutation = errors.New("gridstate: not a permutation of {1,...,N}")

	// ErrStateTooWide indicates N*bitsPerCoord exceeds the fixed word
	// budget (maxWords*64 bits). Callers needing larger N must raise
	// maxWords and recompile; this is never silently truncated.
	ErrStateTooWide = errors.New("gridstate: state too wide for configured word budget")

	// ErrIndexRange indicates a coordinate index i is outside [0, N).
	ErrIndexRange = errors.New("gridstate: coordinate index out of range")
)
