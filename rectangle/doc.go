// Package rectangle enumerates the toroidal rectangles connecting one
// grid-diagram state to another, classified by the X/O markers their
// interior contains.
//
// What:
//
//   - Grid: validated (X, O, N) marking data.
//   - Classify(state): for every unordered row pair (i,j), streams both
//     toroidal rectangles (the "short way" and the "long way" around
//     the column axis) that are empty of other state coordinates,
//     together with a Content{X,O} count of markers strictly inside.
//
// Why:
//
//   - The boundary map ∂ (package boundary) and its n-fold lift
//     (package lift) both need exactly this stream; factoring it out
//     keeps the rectangle-emptiness/marker-counting logic in one place
//     shared by every mode (D0, D1, LiftedD0).
//
// Numeric/edge policy (spec.md §4.2): the row interval (i,j) is open —
// endpoints excluded. The column interval is open on the toroidal
// wrap's short side, with a marker on a corner column counted as
// outside the interior. The two rectangles sharing a row pair are
// independent; iteration order is lexicographic over (i,j), short-way
// before long-way.
//
// Complexity: O(N) per row pair to test emptiness and count markers,
// O(N^2) to enumerate all row pairs — this is the per-state cost the
// BFS in package homology pays once per frontier pop.
package rectangle
