package lift

import "github.com/albenzo/grid-homology/gridstate"

// maxSheets bounds the cover order n, mirroring gridstate's maxWords
// budget: practical queries target n <= 6 (spec.md targets small
// cyclic covers), and a fixed array keeps Generator comparable.
const maxSheets = 8

// Generator is a lifted grid-diagram generator for the n-fold cyclic
// branched cover: an n-tuple of sheet states plus a sheet permutation
// σ ∈ Sn, factoradic-encoded as a plain int (spec.md §4.5's "concatenate
// n state codes plus the permutation encoded as a factoradic integer").
// Generator is a fixed-size comparable value, usable directly as a map
// key in package homology's pivot table.
type Generator struct {
	sheets [maxSheets]gridstate.State
	n      int
	sigma  int
}

// N returns the cover order (number of sheets) of this Generator.
func (g Generator) N() int { return g.n }

// Sigma returns the factoradic code of the sheet permutation.
func (g Generator) Sigma() int { return g.sigma }

// Sheet returns the state on sheet k.
func (g Generator) Sheet(k int) (gridstate.State, error) {
	if k < 0 || k >= g.n {
		return gridstate.State{}, ErrSheetMismatch
	}
	return g.sheets[k], nil
}

// NewGenerator builds the trivial lift of base to cover order n: every
// sheet holds base and σ is the identity permutation. This is the
// generator θn's query starts from (the lift of x+).
func NewGenerator(base gridstate.State, n int) (Generator, error) {
	if n < 1 || n > maxSheets {
		return Generator{}, ErrInvalidCoverOrder
	}
	var g Generator
	g.n = n
	for k := 0; k < n; k++ {
		g.sheets[k] = base
	}
	g.sigma = encodeFactoradic(identityPermutation(n))
	return g, nil
}

// withSheet returns a copy of g with sheet k replaced by s and σ
// replaced by sigma, leaving g unmodified.
func (g Generator) withSheet(k int, s gridstate.State, sigma int) Generator {
	out := g
	out.sheets[k] = s
	out.sigma = sigma
	return out
}

// Compare returns -1, 0, or 1 according to the deterministic total
// order used for pivot tie-breaking (package homology's "smallest code
// wins"): sheets compared in order, then σ as a final tie-break.
func (g Generator) Compare(o Generator) int {
	for k := 0; k < g.n; k++ {
		if c := g.sheets[k].Compare(o.sheets[k]); c != 0 {
			return c
		}
	}
	switch {
	case g.sigma < o.sigma:
		return -1
	case g.sigma > o.sigma:
		return 1
	default:
		return 0
	}
}

// Less adapts Compare to the strict-order predicate package homology
// requires of its pivot tie-break function.
func Less(a, b Generator) bool { return a.Compare(b) < 0 }
