// Package boundary turns rectangle classifications into the neighbor
// relations the homology engine searches on plain grid states: the
// plain boundary complex and the secondary δ1 complex.
//
// What:
//
//   - Mode: selects which Content predicate admits a rectangle (D0,
//     D1, or LiftedD0 — the last using D0's predicate unchanged;
//     package lift builds its lifted neighbors from rectangle.Classify
//     directly rather than through this mode).
//   - Neighbors(grid, state, mode): the lazy sequence of states
//     reachable from state by one admissible empty rectangle.
//
// Why:
//
//   - spec.md §4.3 parameterizes one neighbor generator by a
//     classification predicate rather than hard-coding λ vs δ1 entry
//     points (§9, "Dynamic dispatch of invariants"); this package is
//     that predicate dispatch, built once and reused by every query in
//     package homology.
//
// Coefficients: spec.md works over 𝔽2, so a state reached by an even
// number of admissible rectangles from the same source cancels out of
// the boundary. This package does not do that reduction — it streams
// raw targets, duplicates included, exactly as spec.md §4.3 specifies
// ("duplicates possible — the caller dedupes"); package homology is
// the layer that XORs them into a coefficient set before handing them
// to the pivot table.
package boundary
