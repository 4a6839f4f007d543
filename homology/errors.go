package homology

import "errors"

// ErrOutOfMemory is returned when the pivot table plus frontier would
// exceed the caller-supplied byte budget (spec.md §4.4, §5).
var ErrOutOfMemory = errors.New("homology: pivot table would exceed memory budget")

// ErrCancelled is returned when the caller's context is done between
// BFS iterations (spec.md §5). The returned error wraps ErrCancelled
// and carries the context's own error in its message only (formatted
// with %v), so errors.Is does not match context.Canceled.
var ErrCancelled = errors.New("homology: query cancelled")
