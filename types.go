// SPDX-License-Identifier: MIT
// Package kaczmarz: run configuration and engine states.
// This file defines:
//   - documented defaults (constants),
//   - Options / Option (functional options for Solve and NewIterates),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - the State enum of the iteration engine.

package kaczmarz

import "math"

// Defaults (single source of truth).
const (
	// DefaultTol is the residual-norm convergence threshold used when
	// WithTol is not supplied: the run stops once ‖b − A·x‖ ≤ DefaultTol.
	DefaultTol = 1e-5

	// Unbounded is the MaxIter value meaning "no iteration cap". With an
	// inconsistent system and tol too tight to ever fire, an unbounded run
	// never terminates on its own; bounding consumption is then the
	// caller's responsibility.
	Unbounded = math.MaxInt
)

// Options configures a single run of the iteration engine.
//
// X0              – starting guess; nil means the zero vector of length cols.
// Tol             – residual-norm stopping threshold, ≥ 0. Tol == 0 stops
// only on an exactly zero residual.
// MaxIter         – hard cap on projection updates; Unbounded means no cap.
// MaxIter == 0 yields the initial iterate and nothing else.
// Strategy        – row-selection policy builder; nil means Cyclic().
// Callback        – if non-nil, invoked with a copy of every yielded
// iterate, the initial one included.
// RowNormsSquared – optional override of the cached squared row norms of A
// (advanced: lets callers reuse precomputed norms or damp updates).
type Options struct {
	X0              []float64
	Tol             float64
	MaxIter         int
	Strategy        StrategyBuilder
	Callback        func(xk []float64)
	RowNormsSquared []float64
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the documented
// defaults: zero starting guess, Tol = DefaultTol, no iteration cap, Cyclic
// selection, no callback, cached row norms.
func DefaultOptions() Options {
	return Options{
		Tol:     DefaultTol,
		MaxIter: Unbounded,
	}
}

// WithX0 sets the starting guess. Its length must equal the column count of
// A; the mismatch is reported by NewIterates/Solve as ErrDimensionMismatch.
func WithX0(x0 []float64) Option {
	return func(o *Options) {
		o.X0 = x0
	}
}

// WithTol sets the residual-norm stopping threshold. Must be finite and
// non-negative; anything else is a programmer error and panics.
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("kaczmarz: WithTol requires a finite, non-negative tolerance")
	}
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithMaxIter caps the number of projection updates. Must be ≥ 0; zero is
// legal and yields only the initial iterate. Negative values panic.
func WithMaxIter(maxIter int) Option {
	if maxIter < 0 {
		panic("kaczmarz: WithMaxIter requires a non-negative cap")
	}
	return func(o *Options) {
		o.MaxIter = maxIter
	}
}

// WithStrategy sets the row-selection policy for the run. The builder is
// invoked once per run, bound to that run's System. A nil builder panics.
func WithStrategy(b StrategyBuilder) Option {
	if b == nil {
		panic("kaczmarz: WithStrategy requires a non-nil builder")
	}
	return func(o *Options) {
		o.Strategy = b
	}
}

// WithCallback registers a function invoked with a copy of each yielded
// iterate, in order, starting with the initial one.
func WithCallback(fn func(xk []float64)) Option {
	return func(o *Options) {
		o.Callback = fn
	}
}

// WithRowNormsSquared overrides the squared row norms cached by the System
// for this run. The slice length must equal the row count of A; entries must
// be finite and non-negative (a zero entry marks the row as degenerate, so
// projecting onto it becomes a no-op).
func WithRowNormsSquared(normsSquared []float64) Option {
	return func(o *Options) {
		o.RowNormsSquared = normsSquared
	}
}

// State identifies where the iteration engine is in its lifecycle.
//
// The engine moves strictly forward:
//
//	StateInitialized → StateRunning → StateConverged | StateMaxIterReached
//
// The two terminal states are mutually exclusive; whichever condition is
// satisfied first wins, the iteration cap being checked before the residual.
type State uint8

const (
	// StateInitialized: constructed, the initial iterate not yet yielded.
	StateInitialized State = iota

	// StateRunning: at least one iterate yielded, more may follow.
	StateRunning

	// StateConverged: terminal; the residual norm dropped to ≤ tol.
	StateConverged

	// StateMaxIterReached: terminal; the update count hit MaxIter.
	StateMaxIterReached
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateConverged:
		return "Converged"
	case StateMaxIterReached:
		return "MaxIterReached"
	default:
		return "Unknown"
	}
}
