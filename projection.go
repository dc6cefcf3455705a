// SPDX-License-Identifier: MIT
// Package kaczmarz: the projection primitive — the numerical kernel every
// selected row feeds into.

package kaczmarz

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Project returns the orthogonal projection of xk onto the hyperplane
// ⟨ai, x⟩ = bi:
//
//	x' = xk + ((bi − ⟨ai, xk⟩) / ‖ai‖²) · ai
//
// The result is a fresh slice; xk is never modified. If ‖ai‖² == 0 the row
// is degenerate and the projection is a no-op: a copy of xk is returned
// rather than dividing by zero. Projecting onto an already satisfied row
// (⟨ai, xk⟩ == bi) likewise returns xk unchanged.
//
// len(ai) must equal len(xk); a mismatch panics (programmer error).
//
// Complexity: O(n).
func Project(xk, ai []float64, bi float64) []float64 {
	if len(ai) != len(xk) {
		panic(fmt.Sprintf("kaczmarz: Project dimensions: len(ai)=%d, len(xk)=%d", len(ai), len(xk)))
	}
	out := append([]float64(nil), xk...)
	projectInPlace(out, ai, bi, floats.Dot(ai, ai))
	return out
}

// projectInPlace applies the Kaczmarz update to x using a precomputed
// squared row norm. The zero-norm guard lives here so every caller —
// exported Project and the engine alike — shares it.
func projectInPlace(x, ai []float64, bi, aiNormSq float64) {
	if aiNormSq == 0 {
		return
	}
	floats.AddScaled(x, (bi-floats.Dot(ai, x))/aiNormSq, ai)
}
