package pathfill

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// Fragment flag layout, shared with the GPU encoding:
// bits 0-7 band count, bits 8-15 sample count, bit 31 fill rule
// (set = even-odd).
const (
	flagsBandCountMask   = 0xFF
	flagsSampleCountMask = 0xFF
	flagsSampleShift     = 8
	flagsEvenOddBit      = 1 << 31
)

// PackFlags packs a band count, sample count and fill rule into fragment
// flags. Band count must be in [1, 255] and sample count in [1, MaxSamples];
// values are clamped.
func PackFlags(bandCount, sampleCount int, rule FillRule) uint32 {
	bandCount = clampInt(bandCount, 1, 255)
	sampleCount = clampInt(sampleCount, 1, MaxSamples)
	flags := uint32(bandCount) | uint32(sampleCount)<<flagsSampleShift
	if rule == FillRuleEvenOdd {
		flags |= flagsEvenOddBit
	}
	return flags
}

// Fragment carries the per-invocation parameters of one fill-test query.
// It is produced upstream once per rasterized fragment and is immutable
// for the duration of the invocation.
type Fragment struct {
	// Flags packs the band count, sample count and fill rule.
	Flags uint32

	// BandBase is the index of the fragment's first band in Tables.Bands.
	BandBase uint32

	// Pos is the nominal query point in path-local space, before any
	// sampling offset is applied.
	Pos Point

	// BBox is the path instance's bounding box in local space.
	BBox Rect

	// InvTransform is the inverse of the linear part of the local
	// transform. It maps normalized output-space offsets to local space.
	InvTransform Mat2

	// Color is the base color; Cover scales its alpha by coverage.
	Color RGBA
}

// BandCount returns the number of bands partitioning the fragment's
// bounding box.
func (f *Fragment) BandCount() int {
	return int(f.Flags & flagsBandCountMask)
}

// SampleCount returns the number of coverage samples to take.
func (f *Fragment) SampleCount() int {
	return int(f.Flags >> flagsSampleShift & flagsSampleCountMask)
}

// Rule returns the fragment's fill rule.
func (f *Fragment) Rule() FillRule {
	if f.Flags&flagsEvenOddBit != 0 {
		return FillRuleEvenOdd
	}
	return FillRuleNonZero
}

// Uniforms holds the per-frame parameters shared by all fragments.
type Uniforms struct {
	// Resolution is the output surface size in pixels, used to convert
	// normalized sampling offsets into local-space deltas.
	Resolution Point
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
