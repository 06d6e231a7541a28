// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render dispatches per-pixel fill-test invocations over a CPU
// render target.
//
// It is the reference realization of the execution model the fill kernel
// is written for: every pixel of a path instance's device bounds becomes
// one independent fragment invocation, shaded through pathfill.Cover and
// composited into a Pixmap. Invocations share only the read-only geometry
// tables, so they are fanned out across a goroutine pool with no locking.
// The caller must finish writing the tables before calling Render; that
// write-then-read barrier is the entire concurrency contract.
package render

import (
	"image"

	"github.com/gogpu/pathfill"
	"github.com/gogpu/pathfill/internal/parallel"
)

// rowsPerItem is the height of one work item's strip of pixels. Strips
// are disjoint, so no two items ever write the same pixel.
const rowsPerItem = 8

// Instance places one filled path on the render target. It is the CPU
// counterpart of the per-draw vertex attributes the GPU pipeline feeds
// the fill shader.
type Instance struct {
	// Bounds is the device-space pixel rectangle covered by the instance.
	Bounds image.Rectangle

	// LocalFromDevice maps device pixel coordinates into path-local
	// space. Its linear part, combined with the output resolution,
	// becomes the fragments' inverse sampling transform.
	LocalFromDevice pathfill.Affine

	// Flags packs band count, sample count and fill rule
	// (see pathfill.PackFlags).
	Flags uint32

	// BandBase is the instance's first band in the shared band table.
	BandBase uint32

	// BBox is the path's bounding box in local space.
	BBox pathfill.Rect

	// Color is the base fill color.
	Color pathfill.RGBA
}

// Renderer shades path instances into pixmaps using a worker pool.
//
// A Renderer may be reused across frames and targets. Close releases the
// pool; the Renderer must not be used afterwards.
type Renderer struct {
	pool *parallel.Pool
}

// NewRenderer creates a renderer with the given number of workers.
// If workers <= 0, GOMAXPROCS is used.
func NewRenderer(workers int) *Renderer {
	r := &Renderer{pool: parallel.NewPool(workers)}
	pathfill.Logger().Debug("renderer created", "workers", r.pool.Workers())
	return r
}

// Workers returns the number of pool workers.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close releases the renderer's worker pool.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render shades every instance into the pixmap, in order. Instances are
// processed sequentially so that overlapping instances composite
// deterministically; within an instance, disjoint row strips are shaded
// in parallel. The output is identical regardless of worker count.
func (r *Renderer) Render(pm *Pixmap, tab *pathfill.Tables, u pathfill.Uniforms, instances []Instance) {
	clip := image.Rect(0, 0, pm.Width(), pm.Height())
	pathfill.Logger().Debug("render pass",
		"instances", len(instances), "target", clip.Max, "workers", r.pool.Workers())

	for i := range instances {
		inst := &instances[i]
		bounds := inst.Bounds.Intersect(clip)
		if bounds.Empty() {
			continue
		}

		// Normalized device offset -> pixel offset -> local delta.
		invT := inst.LocalFromDevice.Mat2.Mul(
			pathfill.Scale2(u.Resolution.X/2, u.Resolution.Y/2))

		var work []func()
		for y := bounds.Min.Y; y < bounds.Max.Y; y += rowsPerItem {
			y0, y1 := y, min(y+rowsPerItem, bounds.Max.Y)
			work = append(work, func() {
				r.shadeRows(pm, tab, u, inst, invT, bounds.Min.X, bounds.Max.X, y0, y1)
			})
		}
		r.pool.ExecuteAll(work)
	}
}

// shadeRows evaluates one strip of fragments and composites the hits.
func (r *Renderer) shadeRows(pm *Pixmap, tab *pathfill.Tables, u pathfill.Uniforms,
	inst *Instance, invT pathfill.Mat2, x0, x1, y0, y1 int) {

	frag := pathfill.Fragment{
		Flags:        inst.Flags,
		BandBase:     inst.BandBase,
		BBox:         inst.BBox,
		InvTransform: invT,
		Color:        inst.Color,
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := pathfill.Pt(float32(x)+0.5, float32(y)+0.5)
			frag.Pos = inst.LocalFromDevice.Apply(center)

			out, ok := pathfill.Cover(tab, u, &frag)
			if !ok {
				continue
			}
			pm.BlendPixel(x, y, out)
		}
	}
}
