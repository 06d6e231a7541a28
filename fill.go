package pathfill

// Inside reports whether the query point q lies inside the path described
// by the fragment, under the fragment's fill rule.
//
// Only the band containing q.Y is walked: the band index resolved against
// the fragment's bounding box selects a contiguous run of segments from
// the shared tables, each segment is tested for a rightward crossing, and
// the accumulated crossings (even-odd) or signed winding (non-zero) decide
// the result. Move segments carry no geometry and are skipped.
//
// Inside is a pure function of its arguments and is safe to call from any
// number of goroutines sharing the same tables.
func Inside(tab *Tables, frag *Fragment, q Point) bool {
	index := BandIndex(q.Y, frag.BBox, frag.BandCount())
	band := tab.Bands[frag.BandBase+uint32(index)]

	var crossings, winding int32
	for i := uint32(0); i < band.SegmentCount; i++ {
		seg := tab.Segments[band.SegmentOffset+i]
		pts := tab.Points[seg.PointOffset:]

		var c, w int32
		switch seg.Verb {
		case VerbLine:
			c, w = crossLine(pts[0], pts[1], q)
		case VerbQuad:
			c, w = crossQuad(pts[0], pts[1], pts[2], q)
		case VerbCubic:
			c, w = crossCubic(pts[0], pts[1], pts[2], pts[3], q)
		}
		crossings += c
		winding += w
	}

	if frag.Rule() == FillRuleEvenOdd {
		return crossings&1 == 1
	}
	return winding != 0
}
