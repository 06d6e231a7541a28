package pathfill

// BandIndex resolves which of bandCount horizontal bands spanning bbox
// contains the vertical position y. The result is clamped to
// [0, bandCount-1], so a query on the bottom edge of the box lands in the
// last band rather than past it. Callers add Fragment.BandBase to the
// result before indexing Tables.Bands.
func BandIndex(y float32, bbox Rect, bandCount int) int {
	index := int((y - bbox.Y) / bbox.H * float32(bandCount))
	if index < 0 {
		return 0
	}
	if index >= bandCount {
		return bandCount - 1
	}
	return index
}
