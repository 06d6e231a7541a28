package pathfill

// Shared path fixtures for the package tests.

// kappa is the cubic Bézier approximation constant for a quarter circle.
const kappa = 0.5522848

// rectPath returns a closed axis-aligned rectangle as four line segments,
// traversed clockwise in y-down coordinates.
func rectPath(x0, y0, x1, y1 float32) ([]Point, []Segment) {
	pts := []Point{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}
	segs := []Segment{
		{PointOffset: 0, Verb: VerbLine},
		{PointOffset: 1, Verb: VerbLine},
		{PointOffset: 2, Verb: VerbLine},
		{PointOffset: 3, Verb: VerbLine},
	}
	return pts, segs
}

// circlePath returns a closed circle as four cubic Bézier quarters.
func circlePath(cx, cy, r float32) ([]Point, []Segment) {
	k := r * kappa
	pts := []Point{
		{cx + r, cy},
		{cx + r, cy + k}, {cx + k, cy + r}, {cx, cy + r},
		{cx - k, cy + r}, {cx - r, cy + k}, {cx - r, cy},
		{cx - r, cy - k}, {cx - k, cy - r}, {cx, cy - r},
		{cx + k, cy - r}, {cx + r, cy - k}, {cx + r, cy},
	}
	segs := []Segment{
		{PointOffset: 0, Verb: VerbCubic},
		{PointOffset: 3, Verb: VerbCubic},
		{PointOffset: 6, Verb: VerbCubic},
		{PointOffset: 9, Verb: VerbCubic},
	}
	return pts, segs
}

// trianglePath returns a closed triangle as three line segments.
func trianglePath(a, b, c Point) ([]Point, []Segment) {
	pts := []Point{a, b, c, a}
	segs := []Segment{
		{PointOffset: 0, Verb: VerbLine},
		{PointOffset: 1, Verb: VerbLine},
		{PointOffset: 2, Verb: VerbLine},
	}
	return pts, segs
}
