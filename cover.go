package pathfill

import "github.com/gogpu/pathfill/internal/sample"

// MaxSamples is the maximum coverage sample count per fragment.
const MaxSamples = sample.Count

// VisibilityThreshold is the minimum coverage at which a fragment still
// contributes to the output. Anything below rounds to zero alpha in an
// 8-bit target, so the fragment is suppressed outright.
const VisibilityThreshold = 1.0 / 255.0

// Cover estimates the coverage of one fragment and returns its output
// color with alpha scaled by coverage. The second return value is false
// when the fragment is suppressed (coverage below VisibilityThreshold).
//
// With a sample count of 1 the fill test runs exactly at the fragment's
// nominal position, with no offset: a single authoritative sample for
// callers that know anti-aliasing cannot matter. With a higher sample
// count, a run of consecutive low-discrepancy offsets — starting at an
// index hashed from the fragment position, so the estimate is spatially
// deterministic — is transformed from output-pixel space into path-local
// space and averaged into a fractional coverage.
func Cover(tab *Tables, u Uniforms, frag *Fragment) (RGBA, bool) {
	count := frag.SampleCount()
	if count <= 1 {
		if !Inside(tab, frag, frag.Pos) {
			return RGBA{}, false
		}
		return frag.Color, true
	}

	start := sample.Hash(frag.Pos.X, frag.Pos.Y)
	hits := 0
	for i := 0; i < count; i++ {
		off := sample.At(start + uint32(i))
		// Pixel offset -> normalized device offset -> local delta.
		delta := frag.InvTransform.Apply(Point{
			X: 2 * off.X / u.Resolution.X,
			Y: 2 * off.Y / u.Resolution.Y,
		})
		if Inside(tab, frag, frag.Pos.Add(delta)) {
			hits++
		}
	}

	coverage := float32(hits) / float32(count)
	if coverage < VisibilityThreshold {
		return RGBA{}, false
	}
	out := frag.Color
	out.A *= coverage
	return out, true
}
