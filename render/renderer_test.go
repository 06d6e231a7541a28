// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"github.com/gogpu/pathfill"
)

// rectInstance builds tables and an instance for an axis-aligned filled
// rectangle in an identity local space (local units == device pixels).
func rectInstance(t testing.TB, tab *pathfill.Tables, x0, y0, x1, y1 float32,
	size int, samples int) Instance {
	t.Helper()

	pts := []pathfill.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}
	segs := []pathfill.Segment{
		{PointOffset: 0, Verb: pathfill.VerbLine},
		{PointOffset: 1, Verb: pathfill.VerbLine},
		{PointOffset: 2, Verb: pathfill.VerbLine},
		{PointOffset: 3, Verb: pathfill.VerbLine},
	}
	bbox := pathfill.NewRect(x0, y0, x1-x0, y1-y0)
	base, err := tab.AddBandedPath(pts, segs, bbox, 4)
	if err != nil {
		t.Fatal(err)
	}

	return Instance{
		Bounds:          image.Rect(0, 0, size, size),
		LocalFromDevice: pathfill.IdentityAffine(),
		Flags:           pathfill.PackFlags(4, samples, pathfill.FillRuleNonZero),
		BandBase:        base,
		BBox:            bbox,
		Color:           pathfill.RGBA{R: 1, A: 1},
	}
}

func TestRenderRectCoverage(t *testing.T) {
	const size = 10
	tab := pathfill.NewTables()
	inst := rectInstance(t, tab, 1.25, 1.25, 8.75, 8.75, size, 8)
	u := pathfill.Uniforms{Resolution: pathfill.Pt(size, size)}

	r := NewRenderer(2)
	defer r.Close()
	pm := NewPixmap(size, size)
	r.Render(pm, tab, u, []Instance{inst})

	alphaAt := func(x, y int) uint8 {
		return pm.Data()[(y*size+x)*4+3]
	}

	if a := alphaAt(5, 5); a != 255 {
		t.Errorf("interior pixel alpha = %d, want 255", a)
	}
	if a := alphaAt(0, 0); a != 0 {
		t.Errorf("exterior pixel alpha = %d, want 0", a)
	}
	if a := alphaAt(1, 5); a == 0 || a == 255 {
		t.Errorf("boundary pixel alpha = %d, want partial coverage", a)
	}
}

// TestRenderDeterministicAcrossWorkers: fragment invocations have no
// ordering contract, so the composited output must not depend on the
// worker count.
func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	const size = 16
	u := pathfill.Uniforms{Resolution: pathfill.Pt(size, size)}

	renderOnce := func(workers int) []uint8 {
		tab := pathfill.NewTables()
		inst := rectInstance(t, tab, 2.3, 1.7, 13.4, 12.9, size, 8)

		r := NewRenderer(workers)
		defer r.Close()
		pm := NewPixmap(size, size)
		r.Render(pm, tab, u, []Instance{inst})
		return pm.Data()
	}

	want := renderOnce(1)
	for _, workers := range []int{2, 4, 8} {
		if got := renderOnce(workers); !bytes.Equal(got, want) {
			t.Errorf("output with %d workers differs from single-worker output", workers)
		}
	}
}

func TestRenderClipsToTarget(t *testing.T) {
	tab := pathfill.NewTables()
	inst := rectInstance(t, tab, -5, -5, 30, 30, 8, 4)
	inst.Bounds = image.Rect(-10, -10, 50, 50)

	r := NewRenderer(2)
	defer r.Close()
	pm := NewPixmap(8, 8)
	r.Render(pm, tab, pathfill.Uniforms{Resolution: pathfill.Pt(8, 8)}, []Instance{inst})

	// Every pixel of the target lies inside the rect.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a := pm.Data()[(y*8+x)*4+3]; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestRenderNoInstances(t *testing.T) {
	r := NewRenderer(2)
	defer r.Close()
	pm := NewPixmap(4, 4)
	r.Render(pm, pathfill.NewTables(), pathfill.Uniforms{Resolution: pathfill.Pt(4, 4)}, nil)

	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("empty render modified the target")
		}
	}
}

// TestRenderAgainstImageVector cross-checks interior/exterior
// classification of a filled triangle against the x/image/vector
// rasterizer. Pixels the reference reports as fully covered must be
// strongly covered here, and fully empty pixels must stay nearly empty;
// partially covered border pixels are excluded since the two samplers
// estimate fractional coverage differently.
func TestRenderAgainstImageVector(t *testing.T) {
	const size = 20
	ax, ay := float32(3), float32(2)
	bx, by := float32(17), float32(4)
	cx, cy := float32(8), float32(16)

	z := vector.NewRasterizer(size, size)
	z.MoveTo(ax, ay)
	z.LineTo(bx, by)
	z.LineTo(cx, cy)
	z.ClosePath()
	ref := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

	tab := pathfill.NewTables()
	pts := []pathfill.Point{
		{X: ax, Y: ay}, {X: bx, Y: by}, {X: cx, Y: cy}, {X: ax, Y: ay},
	}
	segs := []pathfill.Segment{
		{PointOffset: 0, Verb: pathfill.VerbLine},
		{PointOffset: 1, Verb: pathfill.VerbLine},
		{PointOffset: 2, Verb: pathfill.VerbLine},
	}
	bbox := pathfill.NewRect(3, 2, 14, 14)
	base, err := tab.AddBandedPath(pts, segs, bbox, 4)
	if err != nil {
		t.Fatal(err)
	}

	inst := Instance{
		Bounds:          image.Rect(0, 0, size, size),
		LocalFromDevice: pathfill.IdentityAffine(),
		Flags:           pathfill.PackFlags(4, 8, pathfill.FillRuleNonZero),
		BandBase:        base,
		BBox:            bbox,
		Color:           pathfill.RGBA{R: 1, A: 1},
	}

	r := NewRenderer(4)
	defer r.Close()
	pm := NewPixmap(size, size)
	r.Render(pm, tab, pathfill.Uniforms{Resolution: pathfill.Pt(size, size)}, []Instance{inst})

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			refA := ref.AlphaAt(x, y).A
			gotA := pm.Data()[(y*size+x)*4+3]
			switch {
			case refA == 255 && gotA < 160:
				t.Errorf("pixel (%d,%d): reference full, got alpha %d", x, y, gotA)
			case refA == 0 && gotA > 96:
				t.Errorf("pixel (%d,%d): reference empty, got alpha %d", x, y, gotA)
			}
		}
	}
}

func BenchmarkRenderRect64(b *testing.B) {
	const size = 64
	tab := pathfill.NewTables()
	inst := rectInstance(b, tab, 4, 4, 60, 60, size, 8)
	u := pathfill.Uniforms{Resolution: pathfill.Pt(size, size)}

	r := NewRenderer(0)
	defer r.Close()
	pm := NewPixmap(size, size)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(pm, tab, u, []Instance{inst})
	}
}
