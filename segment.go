package pathfill

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pathfill/internal/poly"
)

// Per-segment crossing tests.
//
// Each evaluator answers: does this segment cross the horizontal line
// through q.Y strictly to the right of q.X, and with which winding
// direction? Crossings are counted at curve parameters in the half-open
// range [0, 1): a crossing exactly at a segment's end point belongs to the
// next segment of the contour, never to both. The winding sign is the sign
// of dy/dt at the crossing, so a closed contour traversed once contributes
// a net winding of +1 or -1 to interior points.

// crossLine tests a line segment p0-p1 against the query point.
func crossLine(p0, p1, q Point) (crossings, winding int32) {
	if (p0.Y > q.Y && p1.Y > q.Y) || (p0.Y < q.Y && p1.Y < q.Y) {
		return 0, 0
	}
	dy := p1.Y - p0.Y
	if math32.Abs(dy) < poly.Epsilon {
		// Horizontal; parallel to the test line.
		return 0, 0
	}
	t := (q.Y - p0.Y) / dy
	if t < 0 || t >= 1 {
		return 0, 0
	}
	if p0.X+t*(p1.X-p0.X) <= q.X {
		return 0, 0
	}
	if dy > 0 {
		return 1, 1
	}
	return 1, -1
}

// crossQuad tests a quadratic Bézier segment p0-p1-p2 against the query
// point.
func crossQuad(p0, p1, p2, q Point) (crossings, winding int32) {
	if (p0.Y > q.Y && p1.Y > q.Y && p2.Y > q.Y) ||
		(p0.Y < q.Y && p1.Y < q.Y && p2.Y < q.Y) {
		return 0, 0
	}

	// y(t) - q.Y as a quadratic in t.
	a := p0.Y - 2*p1.Y + p2.Y
	b := 2 * (p1.Y - p0.Y)
	c := p0.Y - q.Y

	roots := poly.SolveQuadratic(a, b, c)
	for _, t := range roots {
		if t < 0 || t >= 1 {
			continue
		}
		if quadAt(p0.X, p1.X, p2.X, t) <= q.X {
			continue
		}
		crossings++
		dy := 2*a*t + b
		if dy > 0 {
			winding++
		} else if dy < 0 {
			winding--
		}
	}
	return crossings, winding
}

// crossCubic tests a cubic Bézier segment p0-p1-p2-p3 against the query
// point.
func crossCubic(p0, p1, p2, p3, q Point) (crossings, winding int32) {
	if (p0.Y > q.Y && p1.Y > q.Y && p2.Y > q.Y && p3.Y > q.Y) ||
		(p0.Y < q.Y && p1.Y < q.Y && p2.Y < q.Y && p3.Y < q.Y) {
		return 0, 0
	}

	// A test line passing through an end point sits on the boundary of
	// the [0,1) tie-break and is numerically unstable to solve; nudge it
	// off the end point first.
	qy := q.Y
	if math32.Abs(p0.Y-qy) < poly.Epsilon {
		qy += poly.Epsilon
	}
	if math32.Abs(p3.Y-qy) < poly.Epsilon {
		qy += poly.Epsilon
	}

	// y(t) - qy as a cubic in t.
	a := p3.Y - 3*p2.Y + 3*p1.Y - p0.Y
	b := 3 * (p2.Y - 2*p1.Y + p0.Y)
	c := 3 * (p1.Y - p0.Y)
	d := p0.Y - qy

	roots := poly.SolveCubic(a, b, c, d)
	for _, t := range roots {
		if t < 0 || t >= 1 {
			continue
		}
		dy := cubicDerivY(p0.Y, p1.Y, p2.Y, p3.Y, t)
		if math32.Abs(dy) < poly.Epsilon {
			// Horizontal tangent at the root: the curve touches the
			// test line without crossing it. Counting it would double
			// the contribution at a local y-extremum.
			continue
		}
		if cubicAt(p0.X, p1.X, p2.X, p3.X, t) <= q.X {
			continue
		}
		crossings++
		if dy > 0 {
			winding++
		} else {
			winding--
		}
	}
	return crossings, winding
}

// quadAt evaluates one coordinate of a quadratic Bézier at t.
func quadAt(v0, v1, v2, t float32) float32 {
	mt := 1 - t
	return mt*mt*v0 + 2*mt*t*v1 + t*t*v2
}

// cubicAt evaluates one coordinate of a cubic Bézier at t.
func cubicAt(v0, v1, v2, v3, t float32) float32 {
	mt := 1 - t
	return mt*mt*mt*v0 + 3*mt*mt*t*v1 + 3*mt*t*t*v2 + t*t*t*v3
}

// cubicDerivY evaluates d/dt of one coordinate of a cubic Bézier at t.
func cubicDerivY(v0, v1, v2, v3, t float32) float32 {
	mt := 1 - t
	return 3 * (mt*mt*(v1-v0) + 2*mt*t*(v2-v1) + t*t*(v3-v2))
}
