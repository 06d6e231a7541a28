// Package pathfill implements the per-fragment fill test of a vector
// graphics rasterizer.
//
// # Overview
//
// pathfill answers one question, many millions of times per frame: given a
// point in a path's local coordinate space, is it inside the path? The
// answer combines the path's fill rule (even-odd or non-zero winding) with
// an analytic description of the path boundary as line, quadratic Bézier
// and cubic Bézier segments. Crossings are found with closed-form
// polynomial root solving rather than flattening, so the test is exact up
// to float32 precision.
//
// # Quick Start
//
//	tab := pathfill.NewTables()
//	base, _ := tab.AddBandedPath(points, segments, bbox, 4)
//
//	frag := pathfill.Fragment{
//		Flags:    pathfill.PackFlags(4, 8, pathfill.FillRuleNonZero),
//		BandBase: base,
//		Pos:      pathfill.Pt(5, 5),
//		BBox:     bbox,
//	}
//	color, ok := pathfill.Cover(tab, uniforms, &frag)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Tables, Fragment, Cover, Inside, BandIndex
//   - Internal: poly (root solving), sample (stochastic offsets),
//     parallel (worker pool)
//   - render: CPU dispatch of fragments over a pixmap
//
// # Data Model
//
// Boundary geometry lives in three shared, read-only tables: curve points,
// segments (a point offset plus a verb), and bands. Bands partition a
// path's bounding box into horizontal slices so that a query only walks
// the segments whose vertical extent can matter, bounding per-sample cost.
// Tables are written once per frame by an upstream tessellation stage and
// read concurrently by any number of fill-test invocations; nothing in
// this package mutates them during evaluation.
//
// # Coordinate System
//
// Path-local coordinates with origin at top-left, X increasing right and
// Y increasing down, matching device pixel orientation. All arithmetic is
// float32, mirroring GPU lane semantics.
package pathfill
