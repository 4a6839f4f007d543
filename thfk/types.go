package thfk

import (
	"github.com/albenzo/grid-homology/gridstate"
	"github.com/albenzo/grid-homology/rectangle"
)

// Diagram holds a validated grid diagram and its two distinguished
// generators, x+ and x- (spec.md §3).
type Diagram struct {
	grid   rectangle.Grid
	xPlus  gridstate.State
	xMinus gridstate.State
}

// X returns the X markings this diagram was built from.
func (d Diagram) X() []int { return append([]int(nil), d.grid.X...) }

// O returns the O markings this diagram was built from.
func (d Diagram) O() []int { return append([]int(nil), d.grid.O...) }

// N returns the arc index.
func (d Diagram) N() int { return d.grid.N }

// XMinusVector returns x- := X as a coordinate vector (spec.md §3).
func XMinusVector(x []int) []int {
	return append([]int(nil), x...)
}

// XPlusVector returns x+ as a coordinate vector: the i-th coordinate is
// X[i-1 mod N], translated up by one column and wrapped back to 1
// (spec.md §3 and SPEC_FULL.md §6's corrected-form requirement — the
// comparison is against the *value* N, not the index N, so a row whose
// predecessor's X marker sits in the last column wraps to column 1
// rather than producing an out-of-range column N+1).
func XPlusVector(x []int) []int {
	n := len(x)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		prev := x[(i-1+n)%n]
		out[i] = prev%n + 1
	}
	return out
}

func stateLess(a, b gridstate.State) bool { return a.Compare(b) < 0 }
