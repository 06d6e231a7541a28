// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sample provides the fixed low-discrepancy offset set and the
// position hash used by stochastic coverage sampling.
//
// Each coverage estimate draws a run of consecutive offsets from a shared
// table, starting at an index hashed from the fragment's position. Hashing
// by position instead of a frame counter keeps results spatially
// deterministic: the same fragment always sees the same offsets, so
// repeated frames of a static scene are pixel-identical.
package sample

// Count is the size of the offset table and the maximum number of
// coverage samples per fragment.
const Count = 16

// Offset is a 2D sub-pixel sampling offset in output pixel units,
// in [-0.5, 0.5] on both axes.
type Offset struct {
	X, Y float32
}

// offsets is the R2 low-discrepancy sequence, centered on the pixel.
// Consecutive entries stay well spread, so any cyclic run of n <= Count
// entries approximates a Poisson-disk pattern over the pixel footprint.
var offsets = [Count]Offset{
	{0.254878, 0.069840},
	{0.009755, -0.360319},
	{-0.235367, 0.209521},
	{-0.480489, -0.220639},
	{0.274388, 0.349201},
	{0.029266, -0.080958},
	{-0.215856, 0.488882},
	{-0.460979, 0.058722},
	{0.293899, -0.371437},
	{0.048777, 0.198403},
	{-0.196346, -0.231757},
	{-0.441468, 0.338083},
	{0.313410, -0.092076},
	{0.068287, 0.477764},
	{-0.176835, 0.047604},
	{-0.421957, -0.382556},
}

// At returns the offset at index i, wrapping cyclically.
func At(i uint32) Offset {
	return offsets[i%Count]
}

// Hash maps a fragment position to a starting index seed. It quantizes to
// sub-pixel resolution and mixes with a 32-bit avalanche so neighboring
// fragments start at unrelated points of the offset table.
func Hash(x, y float32) uint32 {
	xi := uint32(int32(x * 8))
	yi := uint32(int32(y * 8))
	h := xi*0x9E3779B9 ^ yi*0x85EBCA6B
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	return h
}
