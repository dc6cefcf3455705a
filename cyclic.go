// SPDX-License-Identifier: MIT

package kaczmarz

// Cyclic returns a builder for the classical selection policy: cycle through
// the equations in order, repeatedly. The first selection is row 0, then
// 1, 2, …, wrapping modulo the row count, independent of the iterate.
//
// This is the original 1937 Kaczmarz sweep and the package default.
//
// Complexity: O(1) per selection.
func Cyclic() StrategyBuilder {
	return func(sys *System) (Strategy, error) {
		return &cyclicStrategy{m: sys.Rows()}, nil
	}
}

// cyclicStrategy holds the private cyclic counter. The counter is the only
// state; the iterate is ignored.
type cyclicStrategy struct {
	m    int // row count of the bound system
	next int // row to return on the next call
}

// SelectRowIndex returns the next row in cyclic order.
func (s *cyclicStrategy) SelectRowIndex(_ []float64) int {
	i := s.next
	s.next = (s.next + 1) % s.m
	return i
}
