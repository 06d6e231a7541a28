package pathfill

// Verb identifies the geometric type of a boundary segment.
//
// The numeric values are part of the wire format shared with the upstream
// tessellation stage and must not be reordered.
type Verb uint8

const (
	// VerbMove starts a new contour. It carries no boundary geometry and
	// is skipped during fill evaluation.
	VerbMove Verb = 0
	// VerbLine is a straight line segment between two points.
	VerbLine Verb = 1
	// VerbQuad is a quadratic Bézier segment over three control points.
	VerbQuad Verb = 2
	// VerbCubic is a cubic Bézier segment over four control points.
	VerbCubic Verb = 3
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of curve points the verb consumes,
// starting at the segment's point offset.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove:
		return 1
	case VerbLine:
		return 2
	case VerbQuad:
		return 3
	case VerbCubic:
		return 4
	default:
		return 0
	}
}
