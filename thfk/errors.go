package thfk

import (
	"errors"

	"github.com/albenzo/grid-homology/homology"
)

// The wire-level stable error taxonomy spec.md §6/§7 requires of the
// facade: callers (in particular cmd/thfk) switch on these four
// sentinels with errors.Is, never on a package-internal error's exact
// identity, so a future change to how rectangle/lift report a
// malformed-input detail can't silently change exit codes.
var (
	// ErrInvalidGrid wraps any failure to validate (X, O) as a grid
	// diagram: wrong lengths, a non-permutation, or overlapping
	// markers (rectangle.NewGrid's error family, plus gridstate's
	// ErrStateTooWide for an arc index beyond the packed-word budget).
	ErrInvalidGrid = errors.New("thfk: invalid grid")

	// ErrInvalidCoverOrder wraps lift.NewGenerator's rejection of a
	// cover order n outside its supported range.
	ErrInvalidCoverOrder = errors.New("thfk: invalid cover order")

	// ErrOutOfMemory is homology.ErrOutOfMemory under the facade's own
	// name; it is the identical sentinel value, not a copy, so
	// errors.Is(err, thfk.ErrOutOfMemory) and
	// errors.Is(err, homology.ErrOutOfMemory) agree on every error
	// either query can return.
	ErrOutOfMemory = homology.ErrOutOfMemory

	// ErrCancelled is homology.ErrCancelled under the facade's own
	// name, for the same reason ErrOutOfMemory is.
	ErrCancelled = homology.ErrCancelled
)
