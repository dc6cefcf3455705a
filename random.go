// SPDX-License-Identifier: MIT
// Package kaczmarz: randomized selection strategies. Rows are drawn from a
// fixed categorical distribution over [0, m); the distribution never adapts
// to the iterate, so selection is O(1) per step after construction.

package kaczmarz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random returns a builder that samples rows from a fixed probability
// distribution proportional to the given weights. A nil weights slice means
// uniform sampling. Weights must match the row count, be finite and
// non-negative, and sum to a positive value; otherwise the run fails with
// ErrDimensionMismatch or ErrBadWeights.
//
// seed selects the random stream; seed 0 maps to a fixed default so the
// zero value stays reproducible.
//
// Complexity: O(m) construction, O(log m) per selection.
func Random(weights []float64, seed int64) StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		m := sys.Rows()

		w := weights
		if w == nil {
			w = make([]float64, m)
			for i := range w {
				w[i] = 1
			}
		} else {
			if len(w) != m {
				return nil, fmt.Errorf("%w: len(weights)=%d, rows=%d", ErrDimensionMismatch, len(w), m)
			}
			if err := validateWeights(w); err != nil {
				return nil, err
			}
			w = append([]float64(nil), w...)
		}

		dist := distuv.NewCategorical(w, sourceFromSeed(seed))
		return &randomStrategy{dist: dist}, nil
	}
}

// UniformRandom returns a builder that samples rows uniformly at random.
func UniformRandom(seed int64) StrategyBuilder {
	return Random(nil, seed)
}

// SVRandom returns a builder for the Strohmer–Vershynin randomized Kaczmarz
// policy: rows are sampled with probability proportional to their squared
// norms, which yields an expected exponential convergence rate on
// consistent systems. A system whose rows are all zero cannot be sampled
// and fails with ErrBadWeights.
func SVRandom(seed int64) StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		w := make([]float64, sys.Rows())
		for i := range w {
			w[i] = sys.RowNormSquared(i)
		}
		if err := validateWeights(w); err != nil {
			return nil, err
		}
		dist := distuv.NewCategorical(w, sourceFromSeed(seed))
		return &randomStrategy{dist: dist}, nil
	}
}

// validateWeights rejects negative, non-finite, or all-zero weight vectors.
func validateWeights(w []float64) error {
	var sum float64
	for i, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight %d is %v", ErrBadWeights, i, v)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weights sum to %v", ErrBadWeights, sum)
	}
	return nil
}

// randomStrategy draws row indices from a categorical distribution.
// The distribution (including its RNG stream) is the only state.
type randomStrategy struct {
	dist distuv.Categorical
}

// SelectRowIndex draws the next row; the iterate is ignored.
func (s *randomStrategy) SelectRowIndex(_ []float64) int {
	return int(s.dist.Rand())
}
