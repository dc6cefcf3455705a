// SPDX-License-Identifier: MIT
// Package kaczmarz: quantile-rejection strategies for corrupted systems.
//
// These policies target overdetermined systems where most equations are
// consistent but a minority are corrupted. A row is drawn uniformly at
// random, then rejected — SelectRowIndex returns NoRow, skipping the
// projection for that step — when its residual magnitude exceeds a quantile
// of a reference pool of residual magnitudes. The three variants differ only
// in the pool: all rows, a random subset, or a sliding window of recent
// draws. Distances are raw |b_i − ⟨a_i, x⟩|; pair these strategies with
// NormalizeSystem when row scales differ.

package kaczmarz

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quantile returns a builder for the full-pool quantile rejection policy:
// the drawn row is accepted only if its residual magnitude is ≤ the
// q-quantile of all current residual magnitudes. q = 1 never rejects and
// behaves exactly like UniformRandom; q must lie in [0, 1] or the run fails
// with ErrBadQuantile.
//
// Complexity: O(m·n + m log m) per selection (residuals + quantile).
func Quantile(q float64, seed int64) StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		if err := validateQuantile(q); err != nil {
			return nil, err
		}
		s := newQuantileStrategy(sys, q, seed)
		s.pool = s.allDistances
		return s, nil
	}
}

// SampledQuantile returns a builder like Quantile, except the rejection
// threshold comes from the residuals of a random without-replacement subset
// of nSamples rows, cutting the per-step cost on tall systems. nSamples = 0
// means "all rows"; otherwise it must lie in [1, rows] or the run fails with
// ErrBadSampleSize.
func SampledQuantile(q float64, nSamples int, seed int64) StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		if err := validateQuantile(q); err != nil {
			return nil, err
		}
		m := sys.Rows()
		if nSamples == 0 {
			nSamples = m
		}
		if nSamples < 1 || nSamples > m {
			return nil, fmt.Errorf("%w: got %d with %d rows", ErrBadSampleSize, nSamples, m)
		}
		s := newQuantileStrategy(sys, q, seed)
		// Separate stream for subsampling so the subset choice does not
		// perturb the row-draw sequence.
		s.sampleRNG = deriveRNG(seed, 1)
		s.nSamples = nSamples
		s.pool = s.sampledDistances
		return s, nil
	}
}

// WindowedQuantile returns a builder like Quantile, except the rejection
// threshold comes from the residual magnitudes of the most recent draws
// (the current draw included), held in a sliding window. window = 0 means a
// window of rows-many entries; otherwise it must be ≥ 1 or the run fails
// with ErrBadWindow.
func WindowedQuantile(q float64, window int, seed int64) StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		if err := validateQuantile(q); err != nil {
			return nil, err
		}
		if window == 0 {
			window = sys.Rows()
		}
		if window < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrBadWindow, window)
		}
		s := newQuantileStrategy(sys, q, seed)
		s.window = make([]float64, 0, window)
		s.pool = s.windowedDistances
		return s, nil
	}
}

func validateQuantile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("%w: got %v", ErrBadQuantile, q)
	}
	return nil
}

func newQuantileStrategy(sys *System, q float64, seed int64) *quantileStrategy {
	return &quantileStrategy{
		sys:    sys,
		q:      q,
		rowRNG: rngFromSeed(seed),
		res:    make([]float64, sys.Rows()),
		sorted: make([]float64, 0, sys.Rows()),
	}
}

// quantileStrategy draws rows uniformly and rejects by quantile threshold.
// pool supplies the reference distances; the variants plug in different
// implementations.
type quantileStrategy struct {
	sys    *System
	q      float64
	rowRNG *rand.Rand

	pool func(xk []float64, d float64) []float64

	// SampledQuantile state.
	sampleRNG *rand.Rand
	nSamples  int

	// WindowedQuantile state: ring of the most recent draw distances.
	window []float64
	head   int

	res    []float64 // scratch: residual magnitudes
	sorted []float64 // scratch: sorted copy for stat.Quantile
}

// SelectRowIndex draws a row uniformly and accepts it only when its residual
// magnitude does not exceed the q-quantile of the reference pool.
func (s *quantileStrategy) SelectRowIndex(xk []float64) int {
	ik := s.rowRNG.Intn(s.sys.Rows())
	d := s.distance(xk, ik)

	s.sorted = append(s.sorted[:0], s.pool(xk, d)...)
	sort.Float64s(s.sorted)
	threshold := stat.Quantile(s.q, stat.Empirical, s.sorted, nil)

	if d <= threshold {
		return ik
	}
	return NoRow
}

// distance returns |b_i − ⟨a_i, xk⟩|.
func (s *quantileStrategy) distance(xk []float64, i int) float64 {
	return math.Abs(s.sys.RHS(i) - floats.Dot(s.sys.Row(i), xk))
}

// allDistances fills the pool with every row's residual magnitude.
func (s *quantileStrategy) allDistances(xk []float64, _ float64) []float64 {
	s.sys.ResidualInto(s.res, xk)
	for i, r := range s.res {
		s.res[i] = math.Abs(r)
	}
	return s.res
}

// sampledDistances fills the pool with the residual magnitudes of a random
// without-replacement subset of rows.
func (s *quantileStrategy) sampledDistances(xk []float64, _ float64) []float64 {
	idxs := s.sampleRNG.Perm(s.sys.Rows())[:s.nSamples]
	out := s.res[:0]
	for _, i := range idxs {
		out = append(out, s.distance(xk, i))
	}
	return out
}

// windowedDistances records the current draw distance in the ring and
// returns the window contents. The current draw is part of its own
// threshold pool, so the window is never empty.
func (s *quantileStrategy) windowedDistances(_ []float64, d float64) []float64 {
	if len(s.window) < cap(s.window) {
		s.window = append(s.window, d)
	} else {
		s.window[s.head] = d
		s.head = (s.head + 1) % cap(s.window)
	}
	return s.window
}
