package rectangle

import (
	"iter"

	"github.com/albenzo/grid-homology/gridstate"
)

// Classify streams every empty rectangle connecting s to another
// state, in lexicographic (i,j) order with the short-way rectangle
// before the long-way rectangle for each row pair (spec.md §4.2). The
// returned sequence is lazy; ranging over it twice re-runs the
// enumeration from scratch since iter.Seq2 values are plain functions,
// not cursors — callers that need to consume the same classification
// twice without recomputing it should collect it first.
func Classify(g Grid, s gridstate.State) (iter.Seq2[gridstate.State, Content], error) {
	if s.N() != g.N {
		return nil, ErrStateMismatch
	}

	return func(yield func(gridstate.State, Content) bool) {
		n := g.N
		for i := 0; i < n; i++ {
			ai, _ := s.Coord(i)
			for j := i + 1; j < n; j++ {
				bj, _ := s.Coord(j)
				lo, hi := ai, bj
				if lo > hi {
					lo, hi = hi, lo
				}

				shortEmpty, shortX, shortO := true, 0, 0
				longEmpty, longX, longO := true, 0, 0
				for k := i + 1; k < j; k++ {
					sk, _ := s.Coord(k)
					switch {
					case lo < sk && sk < hi:
						shortEmpty = false
					case sk < lo || sk > hi:
						longEmpty = false
					}
					if xk := g.X[k]; lo < xk && xk < hi {
						shortX++
					} else if xk < lo || xk > hi {
						longX++
					}
					if ok := g.O[k]; lo < ok && ok < hi {
						shortO++
					} else if ok < lo || ok > hi {
						longO++
					}
				}

				target, err := s.Swap(i, j)
				if err != nil {
					// i,j are always in-range here; unreachable in
					// practice, but never silently drop a rectangle.
					continue
				}

				if shortEmpty {
					if !yield(target, Content{clamp(shortX), clamp(shortO)}) {
						return
					}
				}
				if longEmpty {
					if !yield(target, Content{clamp(longX), clamp(longO)}) {
						return
					}
				}
			}
		}
	}, nil
}
