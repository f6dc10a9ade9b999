package dlit

// sentinel is an opaque value whose only contract is identity equality.
// Its internal representation carries no meaning and must never be
// inspected structurally by a caller.
type sentinel struct{ label string }

func (s *sentinel) String() string { return s.label }

var (
	// NoChange tells a Part to skip its commit entirely, leaving whatever
	// is currently in the DOM untouched. Passing NoChange never overwrites
	// a previously committed value, including on first render.
	NoChange = &sentinel{"dlit:no-change"}

	// Nothing clears a NodePart's range, removes an AttributePart's
	// attribute, or (inside an interpolated attribute) removes the whole
	// attribute even if other segments of the interpolation hold text.
	Nothing = &sentinel{"dlit:nothing"}
)
