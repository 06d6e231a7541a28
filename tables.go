package pathfill

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Table capacities. These mirror the fixed-size uniform buffers the GPU
// pipeline allocates for the same data; the upstream tessellator is
// expected to stay within them per frame.
const (
	// MaxCurvePoints is the capacity of the curve point table.
	MaxCurvePoints = 4096
	// MaxSegments is the capacity of the segment table.
	MaxSegments = 2048
	// MaxBands is the capacity of the band table.
	MaxBands = 512
)

// Segment describes one boundary segment: a verb plus the offset of its
// first control point in the curve point table. The verb determines how
// many consecutive points the segment consumes (see Verb.PointCount).
type Segment struct {
	PointOffset uint32
	Verb        Verb
}

// Band describes a contiguous run of segments in the segment table. All
// segments whose vertical extent overlaps the band's slice of the path
// bounding box appear in the run.
type Band struct {
	SegmentOffset uint32
	SegmentCount  uint32
}

// Tables holds the shared boundary geometry for one frame: curve points,
// segments, and bands. They are written by the upstream tessellation stage
// strictly before evaluation begins and are read-only thereafter, so any
// number of fill-test invocations may read them concurrently.
//
// The fill-test hot path trusts every offset stored here; bounds are the
// writer's responsibility.
type Tables struct {
	Points   []Point
	Segments []Segment
	Bands    []Band
}

// NewTables creates empty tables with the fixed capacities preallocated.
func NewTables() *Tables {
	return &Tables{
		Points:   make([]Point, 0, MaxCurvePoints),
		Segments: make([]Segment, 0, MaxSegments),
		Bands:    make([]Band, 0, MaxBands),
	}
}

// Reset clears all tables for reuse in the next frame without releasing
// their backing storage.
func (t *Tables) Reset() {
	t.Points = t.Points[:0]
	t.Segments = t.Segments[:0]
	t.Bands = t.Bands[:0]
}

// AddPoints appends curve points and returns the offset of the first one.
func (t *Tables) AddPoints(pts ...Point) (uint32, error) {
	if len(t.Points)+len(pts) > MaxCurvePoints {
		return 0, fmt.Errorf("pathfill: curve point table full (%d + %d > %d)",
			len(t.Points), len(pts), MaxCurvePoints)
	}
	offset := uint32(len(t.Points))
	t.Points = append(t.Points, pts...)
	return offset, nil
}

// AddSegment appends a segment and returns its index.
func (t *Tables) AddSegment(pointOffset uint32, verb Verb) (uint32, error) {
	if len(t.Segments) >= MaxSegments {
		return 0, fmt.Errorf("pathfill: segment table full (%d)", MaxSegments)
	}
	index := uint32(len(t.Segments))
	t.Segments = append(t.Segments, Segment{PointOffset: pointOffset, Verb: verb})
	return index, nil
}

// AddBand appends a band descriptor and returns its index.
func (t *Tables) AddBand(segmentOffset, segmentCount uint32) (uint32, error) {
	if len(t.Bands) >= MaxBands {
		return 0, fmt.Errorf("pathfill: band table full (%d)", MaxBands)
	}
	index := uint32(len(t.Bands))
	t.Bands = append(t.Bands, Band{SegmentOffset: segmentOffset, SegmentCount: segmentCount})
	return index, nil
}

// AddBandedPath appends a path's boundary, partitioned into bandCount
// horizontal bands across bbox, and returns the base band index for use as
// Fragment.BandBase. Point offsets in segs are relative to pts; they are
// rebased onto the shared point table. A segment is assigned to every band
// its control-point vertical extent overlaps, so a segment that spans a
// band boundary appears in both bands. Move segments carry no geometry and
// are dropped.
func (t *Tables) AddBandedPath(pts []Point, segs []Segment, bbox Rect, bandCount int) (uint32, error) {
	if bandCount < 1 || bandCount > 255 {
		return 0, fmt.Errorf("pathfill: band count %d out of range [1, 255]", bandCount)
	}
	pointBase, err := t.AddPoints(pts...)
	if err != nil {
		return 0, err
	}

	bandBase := uint32(len(t.Bands))
	bandHeight := bbox.H / float32(bandCount)
	for b := 0; b < bandCount; b++ {
		y0 := bbox.Y + bandHeight*float32(b)
		y1 := y0 + bandHeight

		offset := uint32(len(t.Segments))
		for _, seg := range segs {
			if seg.Verb == VerbMove {
				continue
			}
			n := seg.Verb.PointCount()
			if n == 0 || int(seg.PointOffset)+n > len(pts) {
				return 0, fmt.Errorf("pathfill: segment %v at offset %d exceeds %d points",
					seg.Verb, seg.PointOffset, len(pts))
			}
			yMin := float32(math32.MaxFloat32)
			yMax := float32(-math32.MaxFloat32)
			for _, p := range pts[seg.PointOffset : int(seg.PointOffset)+n] {
				yMin = math32.Min(yMin, p.Y)
				yMax = math32.Max(yMax, p.Y)
			}
			if yMax < y0 || yMin > y1 {
				continue
			}
			if _, err := t.AddSegment(pointBase+seg.PointOffset, seg.Verb); err != nil {
				return 0, err
			}
		}
		if _, err := t.AddBand(offset, uint32(len(t.Segments))-offset); err != nil {
			return 0, err
		}
	}
	return bandBase, nil
}
