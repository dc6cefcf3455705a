package kaczmarz_test

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kaczmarz"
)

// eye returns the n×n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// collect drains an Iterates and returns every yielded iterate alongside the
// row index that produced it.
func collect(it *kaczmarz.Iterates) (xs [][]float64, iks []int) {
	for it.Next() {
		xs = append(xs, it.X())
		iks = append(iks, it.RowIndex())
	}
	return xs, iks
}

// fixedRow is a minimal user-defined strategy: it always selects the same
// row, regardless of the iterate.
type fixedRow struct{ row int }

func (s fixedRow) SelectRowIndex(_ []float64) int { return s.row }

// fixedRowBuilder adapts fixedRow to the StrategyBuilder shape.
func fixedRowBuilder(row int) kaczmarz.StrategyBuilder {
	return func(_ *kaczmarz.System) (kaczmarz.Strategy, error) {
		return fixedRow{row: row}, nil
	}
}
