// SPDX-License-Identifier: MIT
// Package kaczmarz: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// these sentinels (optionally wrapped with fmt.Errorf("ctx: %w", ErrX) where
// extra context helps) and tests match them via errors.Is. Panics are
// reserved for programmer errors: invalid option values and strategies that
// violate the SelectRowIndex contract.

package kaczmarz

import "errors"

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed where a
	// coefficient matrix is required.
	ErrNilMatrix = errors.New("kaczmarz: matrix is nil")

	// ErrBadShape is returned when A has no rows or no columns. A system
	// needs at least one equation and one unknown to be meaningful.
	ErrBadShape = errors.New("kaczmarz: matrix must have at least one row and one column")

	// ErrDimensionMismatch indicates incompatible lengths between A and a
	// companion vector: len(b) != rows, len(x0) != cols, or an override
	// slice (weights, row norms) of the wrong length.
	ErrDimensionMismatch = errors.New("kaczmarz: dimension mismatch")

	// ErrBadWeights signals a sampling weight vector that is unusable:
	// a negative or non-finite entry, or a zero sum.
	ErrBadWeights = errors.New("kaczmarz: sampling weights must be non-negative with positive sum")

	// ErrBadRowNorms signals a row-norms override containing a negative or
	// non-finite squared norm.
	ErrBadRowNorms = errors.New("kaczmarz: squared row norms must be finite and non-negative")

	// ErrBadQuantile signals a rejection quantile outside [0, 1].
	ErrBadQuantile = errors.New("kaczmarz: quantile must be in [0, 1]")

	// ErrBadSampleSize signals a SampledQuantile sample count outside
	// [1, rows].
	ErrBadSampleSize = errors.New("kaczmarz: sample size must be in [1, rows]")

	// ErrBadWindow signals a WindowedQuantile window size below 1.
	ErrBadWindow = errors.New("kaczmarz: window size must be at least 1")

	// ErrUnknownStrategy is returned by StrategyByName for a name that does
	// not match any built-in strategy.
	ErrUnknownStrategy = errors.New("kaczmarz: unknown selection strategy")
)
