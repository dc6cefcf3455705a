// SPDX-License-Identifier: MIT

package kaczmarz

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeSystem scales the system A·x = b so that every row of A has unit
// Euclidean norm, returning fresh copies:
//
//	aNorm — A with row i divided by ‖a_i‖
//	bNorm — b with entry i divided by ‖a_i‖
//	norms — the original row norms ‖a_i‖
//
// The solution set is unchanged. Normalizing equalizes row influence for the
// residual-magnitude strategies (MaxDistance and the quantile family), whose
// raw distances otherwise favor large-norm rows. Zero rows are left as-is:
// their equation carries no direction to scale.
//
// Validation matches NewSystem: ErrNilMatrix, ErrBadShape,
// ErrDimensionMismatch.
//
// Complexity: O(m·n).
func NormalizeSystem(a mat.Matrix, b []float64) (aNorm *mat.Dense, bNorm, norms []float64, err error) {
	if a == nil {
		return nil, nil, nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if m < 1 || n < 1 {
		return nil, nil, nil, fmt.Errorf("%w: got %d×%d", ErrBadShape, m, n)
	}
	if len(b) != m {
		return nil, nil, nil, fmt.Errorf("%w: len(b)=%d, rows=%d", ErrDimensionMismatch, len(b), m)
	}

	aNorm = mat.NewDense(m, n, nil)
	bNorm = make([]float64, m)
	norms = make([]float64, m)

	row := make([]float64, n)
	for i := 0; i < m; i++ {
		mat.Row(row, i, a)
		norm := floats.Norm(row, 2)
		norms[i] = norm
		if norm > 0 {
			floats.Scale(1/norm, row)
			bNorm[i] = b[i] / norm
		} else {
			bNorm[i] = b[i]
		}
		aNorm.SetRow(i, row)
	}
	return aNorm, bNorm, norms, nil
}
