// SPDX-License-Identifier: MIT
// Package kaczmarz: the iteration engine — a forward-only, pull-based lazy
// sequence of solution estimates, modeled as an explicit state machine.

package kaczmarz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Iterates produces successive Kaczmarz iterates on demand.
//
// Lifecycle:
//
//	StateInitialized --Next()--> StateRunning --Next()...--> StateConverged
//	                                               \--------> StateMaxIterReached
//
// The first Next call yields the starting point x0 unconditionally, with
// RowIndex() == NoRow — the zeroth element of the sequence is always the
// initial guess, before any projection. Every later successful Next selects
// a row, applies the projection update, and advances the counters. Next
// returns false once a terminal condition fires: the iteration cap is
// checked first, then convergence (‖b − A·x‖ ≤ tol).
//
// Accessors describe the currently yielded iterate and are overwritten by
// the next successful Next; X() returns a fresh copy each call, so retained
// snapshots stay valid. Abandoning the sequence early is legal — the engine
// holds only in-memory state scoped to the run.
//
// An Iterates advances strictly forward; construct a new one to restart.
type Iterates struct {
	sys      *System
	strategy Strategy
	callback func(xk []float64)

	tol     float64
	maxIter int

	x     []float64 // current iterate, engine-owned
	k     int       // projection updates performed
	ik    int       // row used for the current iterate, or NoRow
	state State
}

// NewIterates constructs a run over the system (a, b).
//
// Validation (in order):
//  1. System construction: nil/empty matrix, len(b) (see NewSystem).
//  2. Row-norms override length and values (ErrDimensionMismatch,
//     ErrBadRowNorms).
//  3. Starting-guess length (ErrDimensionMismatch).
//  4. Strategy construction (strategy-specific errors).
//
// Complexity: O(m·n) construction; each Next costs O(m·n) for the
// convergence check plus the strategy's selection cost.
func NewIterates(a mat.Matrix, b []float64, opts ...Option) (*Iterates, error) {
	sys, err := NewSystem(a, b)
	if err != nil {
		return nil, err
	}
	return NewIteratesFromSystem(sys, opts...)
}

// NewIteratesFromSystem constructs a run over a prebuilt System, sharing its
// (read-only) storage. Useful when many runs solve the same system.
func NewIteratesFromSystem(sys *System, opts ...Option) (*Iterates, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.RowNormsSquared != nil {
		if len(cfg.RowNormsSquared) != sys.Rows() {
			return nil, fmt.Errorf("%w: len(rowNormsSquared)=%d, rows=%d",
				ErrDimensionMismatch, len(cfg.RowNormsSquared), sys.Rows())
		}
		for i, v := range cfg.RowNormsSquared {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: entry %d is %v", ErrBadRowNorms, i, v)
			}
		}
		sys = sys.withRowNormsSquared(cfg.RowNormsSquared)
	}

	x := make([]float64, sys.Cols())
	if cfg.X0 != nil {
		if len(cfg.X0) != sys.Cols() {
			return nil, fmt.Errorf("%w: len(x0)=%d, cols=%d", ErrDimensionMismatch, len(cfg.X0), sys.Cols())
		}
		copy(x, cfg.X0)
	}

	builder := cfg.Strategy
	if builder == nil {
		builder = Cyclic()
	}
	strategy, err := builder(sys)
	if err != nil {
		return nil, err
	}

	return &Iterates{
		sys:      sys,
		strategy: strategy,
		callback: cfg.Callback,
		tol:      cfg.Tol,
		maxIter:  cfg.MaxIter,
		x:        x,
		ik:       NoRow,
		state:    StateInitialized,
	}, nil
}

// Next advances the sequence. It returns true when a new iterate has been
// yielded and false once the run has reached a terminal state; after a false
// return the accessors keep describing the final iterate.
//
// A strategy returning a row index outside [0, Rows) (other than NoRow)
// violates the Strategy contract and panics here.
func (it *Iterates) Next() bool {
	switch it.state {
	case StateConverged, StateMaxIterReached:
		return false
	case StateInitialized:
		// The initial iterate is yielded unconditionally, before any
		// stopping check: the zeroth element is always x0.
		it.state = StateRunning
		it.emit()
		return true
	}

	// The cap is checked before the residual, so a run that converges on
	// its very last permitted update still reports MaxIterReached only if
	// it actually ran out first.
	if it.k >= it.maxIter {
		it.state = StateMaxIterReached
		return false
	}
	if it.sys.ResidualNormSquared(it.x) <= it.tol*it.tol {
		it.state = StateConverged
		return false
	}

	ik := it.strategy.SelectRowIndex(it.x)
	if ik != NoRow {
		if ik < 0 || ik >= it.sys.Rows() {
			panic(fmt.Sprintf("kaczmarz: strategy returned row index %d, want [0, %d) or NoRow", ik, it.sys.Rows()))
		}
		projectInPlace(it.x, it.sys.Row(ik), it.sys.RHS(ik), it.sys.RowNormSquared(ik))
	}
	it.k++
	it.ik = ik
	it.emit()
	return true
}

// emit notifies the callback, if any, with a snapshot of the new iterate.
func (it *Iterates) emit() {
	if it.callback != nil {
		it.callback(it.X())
	}
}

// Step is a self-contained record of one yielded iterate: the estimate, the
// row that produced it (NoRow for the initial iterate and skipped steps),
// and the number of projection updates performed. Unlike the live accessors,
// a Step is immune to the engine advancing.
type Step struct {
	X        []float64
	RowIndex int
	K        int
}

// Current returns the currently yielded iterate as a snapshot record.
func (it *Iterates) Current() Step {
	return Step{X: it.X(), RowIndex: it.ik, K: it.k}
}

// X returns a copy of the current iterate. Before the first Next it is the
// starting guess; after exhaustion it is the final estimate.
func (it *Iterates) X() []float64 {
	return append([]float64(nil), it.x...)
}

// RowIndex returns the row used to produce the current iterate: NoRow for
// the initial iterate and for steps whose strategy declined to project.
func (it *Iterates) RowIndex() int { return it.ik }

// Iteration returns the number of projection steps performed so far.
func (it *Iterates) Iteration() int { return it.k }

// State returns the engine's current lifecycle state.
func (it *Iterates) State() State { return it.state }

// Converged reports whether the run terminated by meeting the residual
// tolerance (as opposed to exhausting the iteration cap).
func (it *Iterates) Converged() bool { return it.state == StateConverged }

// ResidualNorm returns ‖b − A·x‖ for the current iterate. Callers use it to
// distinguish "converged" from "ran out of iterations" after a drain.
func (it *Iterates) ResidualNorm() float64 {
	return it.sys.ResidualNorm(it.x)
}
