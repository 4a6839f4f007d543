// Package homology decides whether a distinguished generator lies in
// the image of a boundary operator, by exploring the ∂-connected
// component reachable from it and incrementally eliminating
// generators over 𝔽2 (spec.md §4.4).
//
// The search is parameterized over the generator type so the same
// walker serves both the plain gridstate.State space (λ+, λ-, δ1) and
// the lifted n-tuple space used by θn (spec.md §9, "Dynamic dispatch
// of invariants": one BFS implementation, many state spaces).
package homology

import (
	"fmt"
	"iter"
)

// NullHomologous decides whether g lies in the image of the boundary
// operator implied by neighbors, over the 𝔽2-connected component
// reachable from g (spec.md §4.4's "Gaussian-elimination-by-frontier").
//
// neighbors(s) must yield every state connected to s by one admissible
// boundary edge; a state reached more than once from the same source
// cancels under 𝔽2 coefficients (see package boundary's doc comment).
// less must be a strict total order used only for the deterministic
// pivot tie-break ("smallest code wins"); it need not relate to any
// semantic ordering of S.
func NullHomologous[S comparable](g S, neighbors func(S) iter.Seq[S], less func(a, b S) bool, opts ...Option) (bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.limits.MaxBytes > 0 && cfg.limits.MaxBytes < cfg.bytesPerKey {
		return false, ErrOutOfMemory
	}

	w := &walker[S]{
		neighbors: neighbors,
		less:      less,
		cfg:       cfg,
		pending:   []S{g},
		seen:      map[S]struct{}{g: {}},
		inImage:   make(map[S]map[S]struct{}),
	}
	return w.loop()
}

// walker encapsulates mutable BFS-with-elimination state, mirroring
// the teacher's bfs.walker decomposition (dequeue/visit/enqueue split
// into named steps) generalized from "record visit order" to "reduce
// against a pivot table".
type walker[S comparable] struct {
	neighbors func(S) iter.Seq[S]
	less      func(a, b S) bool
	cfg       config

	pending []S
	seen    map[S]struct{}
	inImage map[S]map[S]struct{}

	explored  int
	pivots    int
	lastPivot S
}

// loop pops states from the frontier until the reduced boundary of
// some popped state goes to zero (g is null-homologous), the frontier
// is exhausted (g is not), or a cancellation/budget error occurs.
func (w *walker[S]) loop() (bool, error) {
	for len(w.pending) > 0 {
		if err := w.checkCancel(); err != nil {
			return false, err
		}

		c := w.dequeue()
		w.explored++

		dc := boundaryOf(c, w.neighbors)

		if err := w.checkCancel(); err != nil {
			return false, err
		}

		reduce(dc, w.inImage)
		w.reportProgress()

		if len(dc) == 0 {
			w.cfg.log(Quiet, "reduced sum empty: generator is null-homologous")
			return true, nil
		}

		if err := w.recordPivot(dc); err != nil {
			return false, err
		}
		w.enqueueNeighborsOf(w.lastPivot)
	}
	return false, nil
}

func (w *walker[S]) checkCancel() error {
	select {
	case <-w.cfg.ctx.Done():
		return fmt.Errorf("%w: %v", ErrCancelled, w.cfg.ctx.Err())
	default:
		return nil
	}
}

func (w *walker[S]) dequeue() S {
	c := w.pending[0]
	w.pending = w.pending[1:]
	return c
}

func (w *walker[S]) reportProgress() {
	if w.cfg.limits.ProgressEvery > 0 && w.explored%w.cfg.limits.ProgressEvery == 0 {
		w.cfg.onProgress(w.explored, w.pivots)
	}
}

func (w *walker[S]) recordPivot(dc map[S]struct{}) error {
	p := minKey(dc, w.less)
	delete(dc, p)
	w.inImage[p] = dc
	w.pivots++
	w.lastPivot = p

	if w.cfg.limits.MaxBytes > 0 {
		estimate := int64(len(w.inImage)+len(w.pending)) * w.cfg.bytesPerKey
		if estimate > w.cfg.limits.MaxBytes {
			return ErrOutOfMemory
		}
	}
	return nil
}

func (w *walker[S]) enqueueNeighborsOf(p S) {
	for nb := range w.neighbors(p) {
		if _, ok := w.seen[nb]; !ok {
			w.seen[nb] = struct{}{}
			w.pending = append(w.pending, nb)
		}
	}
}

// boundaryOf computes ∂c as an 𝔽2 coefficient set: a target reached an
// even number of times from c cancels out entirely.
func boundaryOf[S comparable](c S, neighbors func(S) iter.Seq[S]) map[S]struct{} {
	out := make(map[S]struct{})
	for nb := range neighbors(c) {
		if _, ok := out[nb]; ok {
			delete(out, nb)
		} else {
			out[nb] = struct{}{}
		}
	}
	return out
}

// reduce XORs vec against the accumulated pivot rows until no key of
// vec is itself a recorded pivot.
func reduce[S comparable](vec map[S]struct{}, inImage map[S]map[S]struct{}) {
	for {
		changed := false
		for p := range vec {
			rest, ok := inImage[p]
			if !ok {
				continue
			}
			delete(vec, p)
			for k := range rest {
				if _, present := vec[k]; present {
					delete(vec, k)
				} else {
					vec[k] = struct{}{}
				}
			}
			changed = true
			break
		}
		if !changed {
			return
		}
	}
}

// minKey returns the least element of vec under less (spec.md §4.4's
// deterministic "smallest code wins" pivot tie-break). vec must be
// non-empty.
func minKey[S comparable](vec map[S]struct{}, less func(a, b S) bool) S {
	var (
		min   S
		first = true
	)
	for k := range vec {
		if first || less(k, min) {
			min = k
			first = false
		}
	}
	return min
}
