// SPDX-License-Identifier: MIT

package kaczmarz

import "gonum.org/v1/gonum/mat"

// Solve runs the Kaczmarz algorithm on A·x = b to completion and returns the
// final iterate. It is exactly equivalent to draining NewIterates(a, b,
// opts...) and taking the last element.
//
// Solve fails only on construction: shape mismatches and invalid strategy
// parameters. Not converging within the iteration cap is not an error — the
// best iterate reached is returned, and callers who care compare its
// residual norm against their tolerance.
//
// Example:
//
//	x, err := kaczmarz.Solve(A, b,
//	    kaczmarz.WithStrategy(kaczmarz.MaxDistance()),
//	    kaczmarz.WithMaxIter(1000),
//	    kaczmarz.WithTol(1e-8),
//	)
func Solve(a mat.Matrix, b []float64, opts ...Option) ([]float64, error) {
	it, err := NewIterates(a, b, opts...)
	if err != nil {
		return nil, err
	}
	return drain(it), nil
}

// SolveSystem is Solve over a prebuilt System, for callers running several
// strategies against the same equations.
func SolveSystem(sys *System, opts ...Option) ([]float64, error) {
	it, err := NewIteratesFromSystem(sys, opts...)
	if err != nil {
		return nil, err
	}
	return drain(it), nil
}

// drain consumes the whole sequence and returns the final iterate.
func drain(it *Iterates) []float64 {
	for it.Next() {
	}
	return it.X()
}
