package thfk

import (
	"fmt"
	"iter"

	"github.com/albenzo/grid-homology/boundary"
	"github.com/albenzo/grid-homology/gridstate"
	"github.com/albenzo/grid-homology/homology"
	"github.com/albenzo/grid-homology/lift"
	"github.com/albenzo/grid-homology/rectangle"
)

// NewDiagram validates (x, o) as a grid diagram (spec.md §3: each a
// permutation of {1,...,N}, no row sharing a column between X and O)
// and derives x+ and x-.
func NewDiagram(x, o []int) (Diagram, error) {
	g, err := rectangle.NewGrid(x, o)
	if err != nil {
		return Diagram{}, fmt.Errorf("thfk: %w: %w", ErrInvalidGrid, err)
	}

	xMinus, err := gridstate.Encode(g.Radix(), XMinusVector(x))
	if err != nil {
		return Diagram{}, fmt.Errorf("thfk: %w: %w", ErrInvalidGrid, err)
	}
	xPlus, err := gridstate.Encode(g.Radix(), XPlusVector(x))
	if err != nil {
		return Diagram{}, fmt.Errorf("thfk: %w: %w", ErrInvalidGrid, err)
	}

	return Diagram{grid: g, xPlus: xPlus, xMinus: xMinus}, nil
}

// modeNeighbors adapts boundary.Neighbors's error-returning signature
// to the plain func(S) iter.Seq[S] homology.NullHomologous expects. A
// non-nil error here would mean a state's arc index disagrees with the
// diagram's own grid, which cannot happen for states this package
// derives itself; it yields an empty sequence rather than panicking.
func modeNeighbors(g rectangle.Grid, mode boundary.Mode) func(gridstate.State) iter.Seq[gridstate.State] {
	return func(s gridstate.State) iter.Seq[gridstate.State] {
		seq, err := boundary.Neighbors(g, s, mode)
		if err != nil {
			return func(func(gridstate.State) bool) {}
		}
		return seq
	}
}

// LambdaPlus decides λ+: whether x+ is null-homologous in the D0
// complex.
func (d Diagram) LambdaPlus(opts ...homology.Option) (bool, error) {
	return homology.NullHomologous(d.xPlus, modeNeighbors(d.grid, boundary.D0), stateLess, opts...)
}

// LambdaMinus decides λ-: whether x- is null-homologous in the D0
// complex.
func (d Diagram) LambdaMinus(opts ...homology.Option) (bool, error) {
	return homology.NullHomologous(d.xMinus, modeNeighbors(d.grid, boundary.D0), stateLess, opts...)
}

// Delta1LambdaPlus decides δ1λ+: whether x+ is null-homologous in the
// D1 complex.
func (d Diagram) Delta1LambdaPlus(opts ...homology.Option) (bool, error) {
	return homology.NullHomologous(d.xPlus, modeNeighbors(d.grid, boundary.D1), stateLess, opts...)
}

// Delta1LambdaMinus decides δ1λ-: whether x- is null-homologous in the
// D1 complex.
func (d Diagram) Delta1LambdaMinus(opts ...homology.Option) (bool, error) {
	return homology.NullHomologous(d.xMinus, modeNeighbors(d.grid, boundary.D1), stateLess, opts...)
}

// Theta decides θn: whether the n-fold cyclic lift of x+ is
// null-homologous in the lifted complex (spec.md §4.5).
func (d Diagram) Theta(n int, opts ...homology.Option) (bool, error) {
	gen, err := lift.NewGenerator(d.xPlus, n)
	if err != nil {
		return false, fmt.Errorf("thfk: %w: %w", ErrInvalidCoverOrder, err)
	}

	neighbors := func(g lift.Generator) iter.Seq[lift.Generator] {
		return lift.Neighbors(d.grid, g)
	}
	return homology.NullHomologous(gen, neighbors, lift.Less, opts...)
}
