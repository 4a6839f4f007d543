// Package thfk assembles a grid diagram's invariant queries into one
// thin facade: given (X, O), it derives the distinguished generators
// x+ and x-, and exposes λ+, λ-, δ1λ+, δ1λ-, and θn as calls into
// packages boundary, homology, and lift.
//
// What:
//
//   - Diagram: validated (X, O) pair plus its derived x+/x- states.
//   - NewDiagram(x, o): constructor, validates via rectangle.NewGrid.
//   - LambdaPlus/LambdaMinus, Delta1LambdaPlus/Delta1LambdaMinus, Theta:
//     the five boolean queries, each a thin wrapper around
//     homology.NullHomologous with the mode-appropriate neighbor
//     function and comparator.
//
// Why:
//
//   - This file intentionally contains no algorithmic logic of its
//     own: the combinatorics live in gridstate/rectangle/boundary, the
//     search lives in homology and lift, and this package is only the
//     wiring between an (X, O) input and those five boolean answers.
package thfk
