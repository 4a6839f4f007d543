// Package gridhomology is a combinatorial engine for deciding whether
// distinguished generators of a grid-diagram chain complex are
// null-homologous over 𝔽2 — the core computation behind the
// transverse invariants λ+, λ-, δ1λ+, δ1λ-, and the n-fold
// cyclic-branched-cover lift θn.
//
// What is grid-homology?
//
//	A pure-Go combinatorics-over-permutations engine that brings
//	together:
//
//	  • State codec: pack an N-element permutation into a fixed,
//	    comparable machine word.
//	  • Grid geometry: enumerate the toroidal rectangles connecting one
//	    grid state to another, classified by the X/O markers they enclose.
//	  • Boundary operator: the D0/D1/lifted-D0 neighbor generator a
//	    chain complex's ∂ is built from.
//	  • Homology BFS: decide image-of-∂ membership by
//	    Gaussian-elimination-by-frontier over the (enormous, never
//	    materialized) state graph.
//	  • Lift engine: the n-fold cyclic branched cover's sheet-tuple
//	    generators and their monodromy-aware boundary.
//
// Why this shape?
//
//   - Deterministic — every query is a pure function of its inputs; no
//     process-wide mutable state, no partial results on cancellation.
//   - Cooperative cancellation — every query accepts a context.Context,
//     checked at well-defined checkpoints, never an abort flag polled
//     from deep inside the search.
//   - Bounded — a caller-supplied memory budget, not best-effort
//     heuristics, decides when a query gives up.
//   - Parameterized, not duplicated — one BFS walker serves every
//     invariant; the distinguishing mode is a value, not a copy of the
//     algorithm per invariant.
//
// Everything lives under focused subpackages:
//
//	gridstate/ — permutation state codec (§4.1)
//	rectangle/ — toroidal rectangle enumeration and marker classification (§4.2)
//	boundary/  — D0/D1/LiftedD0 neighbor generator (§4.3)
//	homology/  — the null-homologous decision BFS, sequential and sharded (§4.4)
//	lift/      — n-fold cyclic branched cover generators and boundary (§4.5)
//	thfk/      — the five-query facade over (X, O) grid diagrams (§4.6)
//	cmd/thfk/  — a thin CLI wrapper over package thfk
//
// Quick sketch of a grid diagram, N=5, row i's X in column X[i] and O
// in column O[i], for X = [2,3,4,5,1] and O = [1,2,3,4,5]:
//
//	row 4  X · · · O
//	row 3  · · · O X
//	row 2  · · O X ·
//	row 1  · O X · ·
//	row 0  O X · · ·
//
// See DESIGN.md for how each package grounds in its reference
// implementation, and the package docs below for the combinatorics
// each one implements.
package gridhomology
