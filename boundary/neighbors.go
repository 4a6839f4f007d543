package boundary

import (
	"iter"

	"github.com/albenzo/grid-homology/gridstate"
	"github.com/albenzo/grid-homology/rectangle"
)

// admits reports whether content satisfies mode's predicate.
func admits(mode Mode, c rectangle.Content) (bool, error) {
	switch mode {
	case D0, LiftedD0:
		return c.Empty(), nil
	case D1:
		return c.SingleO(), nil
	default:
		return false, ErrUnknownMode
	}
}

// Neighbors streams every state reachable from s by one mode-admissible
// empty rectangle in g. The sequence is lazy, finite, and
// non-restartable, and may repeat a target state (spec.md §4.3); the
// caller is expected to reduce repeats according to its own
// coefficient semantics (package homology reduces them mod 2).
func Neighbors(g rectangle.Grid, s gridstate.State, mode Mode) (iter.Seq[gridstate.State], error) {
	classified, err := rectangle.Classify(g, s)
	if err != nil {
		return nil, err
	}
	if mode != D0 && mode != D1 && mode != LiftedD0 {
		return nil, ErrUnknownMode
	}

	return func(yield func(gridstate.State) bool) {
		for target, content := range classified {
			ok, err := admits(mode, content)
			if err != nil || !ok {
				continue
			}
			if !yield(target) {
				return
			}
		}
	}, nil
}
