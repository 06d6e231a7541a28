// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package poly provides closed-form real-root solvers for quadratic and
// cubic equations.
//
// The solvers exist for one purpose: finding the curve parameters at which
// a Bézier segment's y-coordinate equals a horizontal test line. They run
// inside the per-sample fill-test loop, so both use closed forms rather
// than iteration, and both degrade gracefully near degenerate coefficients:
// a quadratic with a vanishing leading coefficient is solved as linear, a
// cubic as quadratic.
//
// Results are fixed-size arrays with NoRoot marking absent roots. Callers
// filter roots to the parameter range they care about and must never feed
// the sentinel into arithmetic.
package poly

import "github.com/chewxy/math32"

const (
	// Epsilon is the degeneracy guard for near-zero coefficients and
	// near-tangent derivatives. The fill-test tie-breaking behavior
	// depends on this exact value; do not tune it casually.
	Epsilon = 1e-5

	// NoRoot marks an absent root slot. It is far outside the [0,1)
	// curve parameter range, so range filtering discards it naturally.
	NoRoot = 1e30
)

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0.
// Absent roots are NoRoot. A near-zero leading coefficient degrades to the
// linear equation b*x + c = 0; a negative discriminant yields no roots.
func SolveQuadratic(a, b, c float32) [2]float32 {
	if math32.Abs(a) < Epsilon {
		if math32.Abs(b) < Epsilon {
			return [2]float32{NoRoot, NoRoot}
		}
		return [2]float32{-c / b, NoRoot}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return [2]float32{NoRoot, NoRoot}
	}

	sq := math32.Sqrt(disc)
	inv := 0.5 / a
	return [2]float32{(-b + sq) * inv, (-b - sq) * inv}
}

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0.
// Absent roots are NoRoot. A near-zero leading coefficient degrades to
// SolveQuadratic. Otherwise the equation is normalized and depressed; a
// positive discriminant gives the single real root by Cardano's cube-root
// combination, a non-positive one gives three real roots by the
// trigonometric method, spaced 120 degrees apart.
func SolveCubic(a, b, c, d float32) [3]float32 {
	if math32.Abs(a) < Epsilon {
		q := SolveQuadratic(b, c, d)
		return [3]float32{q[0], q[1], NoRoot}
	}

	// Normalize to x^3 + bn*x^2 + cn*x + dn, then depress with
	// x = t - bn/3 to t^3 + dp*t + dq.
	bn := b / a
	cn := c / a
	dn := d / a
	b3 := bn / 3
	dp := cn - bn*b3
	dq := 2*b3*b3*b3 - b3*cn + dn

	// Normalization by a tiny (but above-Epsilon) leading coefficient can
	// overflow; treat the blowup as "no roots".
	if math32.IsInf(dp, 0) || math32.IsInf(dq, 0) || math32.IsNaN(dp) || math32.IsNaN(dq) {
		return [3]float32{NoRoot, NoRoot, NoRoot}
	}

	half := dq / 2
	disc := half*half + dp*dp*dp/27

	if disc > 0 {
		// One real root.
		sq := math32.Sqrt(disc)
		x := math32.Cbrt(-half+sq) + math32.Cbrt(-half-sq) - b3
		if math32.IsInf(x, 0) || math32.IsNaN(x) {
			return [3]float32{NoRoot, NoRoot, NoRoot}
		}
		return [3]float32{x, NoRoot, NoRoot}
	}

	// Three real roots (disc <= 0 implies dp <= 0).
	m := 2 * math32.Sqrt(-dp/3)
	theta := math32.Atan2(math32.Sqrt(-disc), -half) / 3
	const third = 2 * math32.Pi / 3
	return [3]float32{
		m*math32.Cos(theta) - b3,
		m*math32.Cos(theta+third) - b3,
		m*math32.Cos(theta-third) - b3,
	}
}
