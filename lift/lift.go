package lift

import (
	"iter"

	"github.com/albenzo/grid-homology/gridstate"
	"github.com/albenzo/grid-homology/rectangle"
)

// Neighbors streams every lifted generator reachable from g by moving
// exactly one sheet across one admissible empty rectangle (spec.md
// §4.5). A markerless rectangle leaves σ unchanged; a rectangle with a
// single O marker rotates σ by +1 (mod n); a rectangle with a single X
// marker rotates σ by -1. A marker rectangle is only admitted as a
// lifted edge when that rotation is non-trivial (n does not evenly
// divide the ±1 delta) — at n=1 every rotation is the identity, so
// admitting it anyway would add single-marker edges sheet 0 doesn't
// have in the plain D0 complex, breaking spec.md §6's "n=1 reduces to
// D0" and testable property 4. Rectangles with any other marker
// content are skipped. The sequence is lazy, finite, and
// non-restartable, and may repeat a target generator — package
// homology reduces repeats mod 2, exactly as it does for the plain
// complex (package boundary).
func Neighbors(g rectangle.Grid, gen Generator) iter.Seq[Generator] {
	return func(yield func(Generator) bool) {
		for k := 0; k < gen.n; k++ {
			if !yieldSheetMoves(g, gen, k, yield) {
				return
			}
		}
	}
}

// yieldSheetMoves classifies every rectangle out of sheet k and yields
// the lifted generators they admit, reporting whether the caller wants
// more (false means stop iterating entirely).
func yieldSheetMoves(g rectangle.Grid, gen Generator, k int, yield func(Generator) bool) bool {
	classified, err := rectangle.Classify(g, gen.sheets[k])
	if err != nil {
		// A malformed sheet state is unreachable in practice: every
		// sheet is built from states already validated against g by
		// the caller. Skip rather than panic.
		return true
	}

	for target, content := range classified {
		next, ok := sheetMove(gen, k, target, content)
		if !ok {
			continue
		}
		if !yield(next) {
			return false
		}
	}
	return true
}

// sheetMove applies one classified rectangle's move to sheet k of gen,
// reporting the resulting generator and whether the rectangle's marker
// content is an admissible lift move at all.
func sheetMove(gen Generator, k int, target gridstate.State, content rectangle.Content) (Generator, bool) {
	switch {
	case content.Empty():
		return gen.withSheet(k, target, gen.sigma), true
	case content.SingleO():
		return monodromyMove(gen, k, target, +1)
	case content.SingleX():
		return monodromyMove(gen, k, target, -1)
	default:
		return Generator{}, false
	}
}

// monodromyMove admits a single-marker rectangle as a lifted edge only
// when the branch-cover rotation by delta is non-trivial mod n; at
// n=1 (delta%n == 0 for every delta) the rotation is always the
// identity, so the rectangle collapses into an ordinary sheet-0 edge
// that the D0 complex doesn't have, and must be rejected rather than
// admitted with an unchanged σ.
func monodromyMove(gen Generator, k int, target gridstate.State, delta int) (Generator, bool) {
	if delta%gen.n == 0 {
		return Generator{}, false
	}
	return gen.withSheet(k, target, postComposeRotation(gen.sigma, gen.n, delta)), true
}
