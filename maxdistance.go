// SPDX-License-Identifier: MIT

package kaczmarz

import "math"

// MaxDistance returns a builder for the greedy most-violated-constraint
// policy, also known as Motzkin's method: at every step it selects
//
//	argmax_i |b_i − ⟨a_i, x_k⟩| / ‖a_i‖
//
// i.e. the equation whose hyperplane is farthest from the current iterate.
// Ties break toward the lowest row index. Degenerate (zero-norm) rows score
// 0, so they are never preferred over a violated equation.
//
// Complexity: O(m·n) per selection — every row residual is recomputed each
// step. This is the dominant per-step cost of the strategy; it buys the
// largest single-step residual reduction in exchange.
func MaxDistance() StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		return &maxDistanceStrategy{
			sys: sys,
			res: make([]float64, sys.Rows()),
		}, nil
	}
}

// maxDistanceStrategy scores rows by normalized residual magnitude.
// res is a scratch buffer reused across steps to avoid per-step allocation.
type maxDistanceStrategy struct {
	sys *System
	res []float64
}

// SelectRowIndex returns the row with the largest normalized residual.
func (s *maxDistanceStrategy) SelectRowIndex(xk []float64) int {
	s.sys.ResidualInto(s.res, xk)

	best, bestScore := 0, math.Inf(-1)
	for i, r := range s.res {
		var score float64
		if norm := s.sys.RowNorm(i); norm > 0 {
			score = math.Abs(r) / norm
		}
		// Strict > keeps the lowest index on ties.
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
