package rectangle

import "github.com/albenzo/grid-homology/gridstate"

// Content counts the X and O markers strictly inside a rectangle's
// interior, each saturated at 2 ("two or more") per spec.md's
// {0,1,2+} classification — the boundary map only ever distinguishes
// "zero", "exactly one", and "more than one".
type Content struct {
	X, O int
}

// clamp saturates a marker count at 2.
func clamp(n int) int {
	if n > 2 {
		return 2
	}
	return n
}

// Empty reports whether this Content represents an empty-of-markers
// rectangle (the D0 complex's boundary condition).
func (c Content) Empty() bool { return c.X == 0 && c.O == 0 }

// SingleO reports whether this Content has exactly one O marker and no
// X marker (the δ1 complex's boundary condition).
func (c Content) SingleO() bool { return c.X == 0 && c.O == 1 }

// SingleX reports whether this Content has exactly one X marker and no
// O marker (the lift engine's X-monodromy boundary condition).
func (c Content) SingleX() bool { return c.X == 1 && c.O == 0 }

// Grid holds a validated pair of X/O markings on an N×N toroidal grid
// (spec.md §3). It is immutable once constructed.
type Grid struct {
	X, O []int
	N    int
	r    gridstate.Radix
}

// NewGrid validates that X and O are each a permutation of {1,...,N}
// and that no row marks the same column with both an X and an O, and
// returns the Grid they describe. X and O are permutations of the same
// universe {1,...,N}, so "disjoint" (spec.md §3) can only mean disjoint
// per row: row i's marker pair (X[i], O[i]) must not coincide.
func NewGrid(x, o []int) (Grid, error) {
	if len(x) != len(o) {
		return Grid{}, ErrLengthMismatch
	}
	n := len(x)
	r, err := gridstate.NewRadix(n)
	if err != nil {
		return Grid{}, err
	}

	setX := make(map[int]bool, n)
	for _, v := range x {
		if v < 1 || v > n || setX[v] {
			return Grid{}, ErrNotPermutation
		}
		setX[v] = true
	}

	setO := make(map[int]bool, n)
	for i, v := range o {
		if v < 1 || v > n || setO[v] {
			return Grid{}, ErrNotPermutation
		}
		setO[v] = true
		if x[i] == v {
			return Grid{}, ErrMarkersOverlap
		}
	}

	xs := append([]int(nil), x...)
	os := append([]int(nil), o...)
	return Grid{X: xs, O: os, N: n, r: r}, nil
}

// Radix returns the gridstate packing scheme this Grid's states use.
func (g Grid) Radix() gridstate.Radix { return g.r }
