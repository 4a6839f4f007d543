package homology

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
)

// NullHomologousParallel is the sharded variant of NullHomologous
// (spec.md §5, "Parallelism (optional, recommended)"): each round's
// frontier is partitioned across shards by hash(state) mod shards,
// and every shard reduces its states against the pivot table
// concurrently. Shards never write inImage concurrently with a
// reader — each round is a read phase (parallel) followed by a merge
// phase (sequential) — guarded by a sync.RWMutex in the same style as
// core.Graph's muVert/muEdgeAdj split, so a future overlapping-phase
// design stays safe without another audit.
//
// Pivot tie-break: when two shards' reductions land on the same pivot
// code in the same round, the lowest-indexed shard's candidate wins
// (spec.md §5's rule). Two candidates from different shards in the
// same round can also share rows that only cancel against each other
// (neither shard saw the other's row during its own read phase), so
// the merge phase re-reduces every candidate against the table as it
// is being built — including rows installed earlier in the same
// round — before recording it as a pivot. That is what makes the
// pivot table this builds a valid reduction of the same ∂-connected
// component the sequential walker explores, so the true/false answer
// agrees regardless of shard count (spec.md §8, property 5).
func NullHomologousParallel[S comparable](
	g S,
	neighbors func(S) iter.Seq[S],
	less func(a, b S) bool,
	hash func(S) uint64,
	shards int,
	opts ...Option,
) (bool, error) {
	if shards < 1 {
		shards = 1
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.limits.MaxBytes > 0 && cfg.limits.MaxBytes < cfg.bytesPerKey {
		return false, ErrOutOfMemory
	}

	pw := &parallelWalker[S]{
		neighbors: neighbors,
		less:      less,
		hash:      hash,
		shards:    shards,
		cfg:       cfg,
		pending:   []S{g},
		seen:      map[S]struct{}{g: {}},
		inImage:   make(map[S]map[S]struct{}),
	}
	return pw.loop()
}

type parallelWalker[S comparable] struct {
	neighbors func(S) iter.Seq[S]
	less      func(a, b S) bool
	hash      func(S) uint64
	shards    int
	cfg       config

	pending []S
	seen    map[S]struct{}

	mu      sync.RWMutex
	inImage map[S]map[S]struct{}

	explored int
	pivots   int
}

// pivotCandidate is one shard's proposed new pivot row for this round.
type pivotCandidate[S comparable] struct {
	pivot S
	rest  map[S]struct{}
}

func (pw *parallelWalker[S]) loop() (bool, error) {
	for len(pw.pending) > 0 {
		if err := pw.cfg.checkCancelStatic(); err != nil {
			return false, err
		}

		batch := pw.pending
		pw.pending = nil

		byShard := pw.partition(batch)
		results := make([][]pivotCandidate[S], pw.shards)
		var foundZero atomic.Bool

		var wg sync.WaitGroup
		for shard := 0; shard < pw.shards; shard++ {
			shard := shard
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[shard] = pw.reduceShard(byShard[shard], &foundZero)
			}()
		}
		wg.Wait()
		pw.explored += len(batch)

		if err := pw.cfg.checkCancelStatic(); err != nil {
			return false, err
		}
		if foundZero.Load() {
			pw.cfg.log(Quiet, "reduced sum empty: generator is null-homologous")
			return true, nil
		}

		zero, err := pw.merge(results)
		if err != nil {
			return false, err
		}
		if zero {
			pw.cfg.log(Quiet, "reduced sum empty: generator is null-homologous")
			return true, nil
		}
		pw.reportProgress()
	}
	return false, nil
}

// partition splits batch across shards by hash(state) mod shards.
func (pw *parallelWalker[S]) partition(batch []S) [][]S {
	out := make([][]S, pw.shards)
	for _, c := range batch {
		shard := int(pw.hash(c) % uint64(pw.shards))
		out[shard] = append(out[shard], c)
	}
	return out
}

// reduceShard computes and reduces ∂c for every state in this shard's
// slice of the current batch, reading the pivot table under a shared
// read lock. It never mutates pw.inImage.
func (pw *parallelWalker[S]) reduceShard(batch []S, foundZero *atomic.Bool) []pivotCandidate[S] {
	var out []pivotCandidate[S]
	for _, c := range batch {
		dc := boundaryOf(c, pw.neighbors)

		pw.mu.RLock()
		reduce(dc, pw.inImage)
		pw.mu.RUnlock()

		if len(dc) == 0 {
			foundZero.Store(true)
			continue
		}
		p := minKey(dc, pw.less)
		delete(dc, p)
		out = append(out, pivotCandidate[S]{pivot: p, rest: dc})
	}
	return out
}

// merge installs this round's new pivots into the shared table in
// shard order (spec.md §5's "smallest-indexed shard wins" tie-break),
// then enqueues the neighbors of every newly installed pivot. Each
// candidate's full row (its pivot plus its rest) is re-reduced against
// pw.inImage — which already includes every row installed earlier in
// this same call — before being recorded: a later shard's candidate
// that only cancels against an earlier shard's candidate (neither saw
// the other's row during the parallel read phase) is absorbed here
// instead of silently overwriting or duplicating a pivot. If a
// candidate's row reduces all the way to empty against rows installed
// this round, the generator is null-homologous via that cross-shard
// cancellation, reported as this method's first return value.
func (pw *parallelWalker[S]) merge(results [][]pivotCandidate[S]) (bool, error) {
	pw.mu.Lock()
	var installed []S
	zero := false
outer:
	for shard := 0; shard < len(results); shard++ {
		for _, cand := range results[shard] {
			vec := make(map[S]struct{}, len(cand.rest)+1)
			vec[cand.pivot] = struct{}{}
			for k := range cand.rest {
				if _, present := vec[k]; present {
					delete(vec, k)
				} else {
					vec[k] = struct{}{}
				}
			}
			reduce(vec, pw.inImage)

			if len(vec) == 0 {
				zero = true
				break outer
			}
			// reduce eliminates every key already present in pw.inImage,
			// so minKey(vec) cannot already be a recorded pivot here.
			p := minKey(vec, pw.less)
			delete(vec, p)
			pw.inImage[p] = vec
			pw.pivots++
			installed = append(installed, p)
		}
	}
	tableSize := len(pw.inImage)
	pw.mu.Unlock()

	if zero {
		return true, nil
	}

	if pw.cfg.limits.MaxBytes > 0 {
		estimate := int64(tableSize+len(pw.pending)) * pw.cfg.bytesPerKey
		if estimate > pw.cfg.limits.MaxBytes {
			return false, ErrOutOfMemory
		}
	}

	for _, p := range installed {
		for nb := range pw.neighbors(p) {
			if _, ok := pw.seen[nb]; !ok {
				pw.seen[nb] = struct{}{}
				pw.pending = append(pw.pending, nb)
			}
		}
	}
	return false, nil
}

func (pw *parallelWalker[S]) reportProgress() {
	if pw.cfg.limits.ProgressEvery > 0 && pw.explored%pw.cfg.limits.ProgressEvery == 0 {
		pw.cfg.onProgress(pw.explored, pw.pivots)
	}
}

// checkCancelStatic mirrors walker.checkCancel; it has no generic
// parameter of its own so it hangs off config directly.
func (c *config) checkCancelStatic() error {
	select {
	case <-c.ctx.Done():
		return fmt.Errorf("%w: %v", ErrCancelled, c.ctx.Err())
	default:
		return nil
	}
}
