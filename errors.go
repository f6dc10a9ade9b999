package dlit

import "errors"

// Sentinel errors returned by the template factory and instance binder.
// All of them indicate a bug in the calling code (a malformed literal, a
// values slice that doesn't match the static structure it was rendered
// against) rather than a runtime condition a caller needs to recover from
// (spec.md §7).
// ErrPartValueMismatch is returned when a TemplateResult's Values count
// doesn't match the total consumption of its compiled TemplateParts, at
// either compile time (checkAlignment) or update time (TemplateInstance.update).
// Rendering a different Strings identity into an already-used container or
// NodePart is not an error (spec.md §4.4/§6): it recompiles in place.
var ErrPartValueMismatch = errors.New("dlit: value count mismatch")
