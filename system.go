// SPDX-License-Identifier: MIT
// Package kaczmarz: immutable System view of (A, b).
// A is stored row-major in a flat slice for cache-friendly row access, with
// row norms precomputed once so every projection step costs O(n) instead of
// recomputing ‖a_i‖² each time.

package kaczmarz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// System is an immutable view of the linear system A·x = b.
//
// Construction copies all inputs, so later mutation of the caller's data
// does not affect a running solve. A System is read-only after construction
// and may be shared across concurrent runs.
type System struct {
	m, n       int       // rows (equations) and columns (unknowns)
	data       []float64 // A, row-major, length m*n
	b          []float64 // right-hand side, length m
	rowNormsSq []float64 // ‖a_i‖², length m
	rowNorms   []float64 // ‖a_i‖, length m
}

// NewSystem builds a System from a gonum matrix and a right-hand side.
//
// Validation (in order):
//  1. a must be non-nil (ErrNilMatrix).
//  2. a must have ≥ 1 row and ≥ 1 column (ErrBadShape).
//  3. len(b) must equal the row count (ErrDimensionMismatch).
//
// Complexity: O(m·n) time and memory.
func NewSystem(a mat.Matrix, b []float64) (*System, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadShape, m, n)
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: len(b)=%d, rows=%d", ErrDimensionMismatch, len(b), m)
	}

	data := make([]float64, m*n)
	for i := 0; i < m; i++ {
		mat.Row(data[i*n:(i+1)*n], i, a)
	}

	sys := &System{
		m:    m,
		n:    n,
		data: data,
		b:    append([]float64(nil), b...),
	}
	sys.computeRowNorms()
	return sys, nil
}

// NewSystemFromRows builds a System from raw row slices. Every row must have
// the same positive length. Rows are copied.
func NewSystemFromRows(rows [][]float64, b []float64) (*System, error) {
	m := len(rows)
	if m < 1 {
		return nil, fmt.Errorf("%w: got 0 rows", ErrBadShape)
	}
	n := len(rows[0])
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d×0", ErrBadShape, m)
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: len(b)=%d, rows=%d", ErrDimensionMismatch, len(b), m)
	}

	data := make([]float64, m*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		copy(data[i*n:(i+1)*n], row)
	}

	sys := &System{
		m:    m,
		n:    n,
		data: data,
		b:    append([]float64(nil), b...),
	}
	sys.computeRowNorms()
	return sys, nil
}

// computeRowNorms fills the cached ‖a_i‖² and ‖a_i‖ slices.
func (s *System) computeRowNorms() {
	s.rowNormsSq = make([]float64, s.m)
	s.rowNorms = make([]float64, s.m)
	for i := 0; i < s.m; i++ {
		row := s.Row(i)
		sq := floats.Dot(row, row)
		s.rowNormsSq[i] = sq
		s.rowNorms[i] = math.Sqrt(sq)
	}
}

// withRowNormsSquared returns a shallow copy of the System whose cached
// squared row norms are replaced by the given (already validated) slice.
// The matrix and right-hand side storage stay shared; both are read-only.
func (s *System) withRowNormsSquared(normsSq []float64) *System {
	clone := *s
	clone.rowNormsSq = append([]float64(nil), normsSq...)
	clone.rowNorms = make([]float64, s.m)
	for i, v := range normsSq {
		clone.rowNorms[i] = math.Sqrt(v)
	}
	return &clone
}

// Rows returns the number of equations m.
func (s *System) Rows() int { return s.m }

// Cols returns the number of unknowns n.
func (s *System) Cols() int { return s.n }

// Row returns the i-th row of A as a view into the System's storage.
// Callers must treat it as read-only.
func (s *System) Row(i int) []float64 {
	return s.data[i*s.n : (i+1)*s.n]
}

// RHS returns b_i, the right-hand side of equation i.
func (s *System) RHS(i int) float64 { return s.b[i] }

// RowNorm returns ‖a_i‖.
func (s *System) RowNorm(i int) float64 { return s.rowNorms[i] }

// RowNormSquared returns ‖a_i‖².
func (s *System) RowNormSquared(i int) float64 { return s.rowNormsSq[i] }

// Residual returns b − A·x as a fresh slice. x must have length Cols;
// a mismatch panics (programmer error).
//
// Complexity: O(m·n).
func (s *System) Residual(x []float64) []float64 {
	return s.ResidualInto(make([]float64, s.m), x)
}

// ResidualInto writes b − A·x into dst and returns dst. len(dst) must be
// Rows and len(x) must be Cols; mismatches panic (programmer error).
func (s *System) ResidualInto(dst, x []float64) []float64 {
	if len(dst) != s.m || len(x) != s.n {
		panic(fmt.Sprintf("kaczmarz: ResidualInto dimensions: len(dst)=%d len(x)=%d, want %d and %d",
			len(dst), len(x), s.m, s.n))
	}
	for i := 0; i < s.m; i++ {
		dst[i] = s.b[i] - floats.Dot(s.Row(i), x)
	}
	return dst
}

// ResidualNormSquared returns ‖b − A·x‖² without allocating.
func (s *System) ResidualNormSquared(x []float64) float64 {
	var sum float64
	for i := 0; i < s.m; i++ {
		r := s.b[i] - floats.Dot(s.Row(i), x)
		sum += r * r
	}
	return sum
}

// ResidualNorm returns the Euclidean norm ‖b − A·x‖.
func (s *System) ResidualNorm(x []float64) float64 {
	return math.Sqrt(s.ResidualNormSquared(x))
}
