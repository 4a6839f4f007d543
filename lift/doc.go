// Package lift builds the n-fold cyclic-branched-cover generator used
// by the θn invariant and its boundary relation (spec.md §4.5).
//
// What:
//
//   - Generator: an n-tuple of gridstate.States plus a sheet
//     permutation σ ∈ Sn, factoradic-encoded to a single comparable
//     int so the whole value stays a fixed, comparable struct usable
//     as a homology BFS map key.
//   - Neighbors(grid, generator): the lazy sequence of lifted
//     generators reachable by moving exactly one sheet across one
//     admissible empty rectangle, updating σ when that rectangle's
//     interior carries a single X or O marker.
//
// Why:
//
//   - package homology's walker is generic over the state type
//     precisely so this package can hand it a different comparable
//     key (Generator instead of gridstate.State) and reuse the same
//     frontier/pivot-table algorithm (spec.md §9's "one BFS
//     implementation" note).
//
// Monodromy convention: a rectangle with no marker in its interior
// leaves σ unchanged (the same Content.Empty predicate as package
// boundary's D0 mode, evaluated per sheet). A rectangle with exactly one
// O marker post-composes σ with the n-cycle rotation by +1 (mod n); a
// rectangle with exactly one X marker post-composes by -1. Rectangles
// with any other marker content are not admissible lift moves.
package lift
