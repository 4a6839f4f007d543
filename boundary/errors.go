package boundary

import "errors"

// ErrUnknownMode indicates a Mode value outside {D0, D1, LiftedD0}.
var ErrUnknownMode = errors.New("boundary: unknown mode")
