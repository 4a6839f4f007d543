package boundary

// Mode selects which rectangle contents admit a boundary edge
// (spec.md §4.3, generalizing the source's separate λ/δ1/θn entry
// points into one parameterized predicate, per spec.md §9).
type Mode int

const (
	// D0 accepts only rectangles with no X and no O marker in their
	// interior. This is the complex λ+ and λ- are tested against.
	D0 Mode = iota

	// D1 accepts only rectangles with no X marker and exactly one O
	// marker. This is the δ1 complex.
	D1

	// LiftedD0 accepts the same rectangles as D0 (no X and no O
	// marker). Package lift does not call Neighbors with this mode: it
	// classifies each sheet's rectangles through rectangle.Classify
	// itself, since it also needs the single-marker contents.
	LiftedD0
)

// String renders the mode for logging.
func (m Mode) String() string {
	switch m {
	case D0:
		return "D0"
	case D1:
		return "D1"
	case LiftedD0:
		return "LiftedD0"
	default:
		return "unknown"
	}
}
