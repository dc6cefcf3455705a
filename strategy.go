// SPDX-License-Identifier: MIT
// Package kaczmarz: the Strategy abstraction — the package's primary
// extensibility surface. The engine never inspects strategy internals; it
// only calls SelectRowIndex once per step.

package kaczmarz

import (
	"fmt"
	"sort"
)

// NoRow is the sentinel row index meaning "no row". The engine reports it as
// the row index of the initial iterate, and a Strategy may return it to skip
// the projection for one step (the quantile variants use this to reject
// suspect equations); the step still counts against MaxIter.
const NoRow = -1

// Strategy selects the next row of the system to project onto.
//
// Contract:
//   - SelectRowIndex is consulted exactly once per iteration step with the
//     current iterate. It must return an index in [0, Rows) or NoRow.
//   - It may mutate only the strategy's own private state (a counter, an
//     RNG, cached residuals) — never the iterate or the system. The xk slice
//     it receives is the engine's live buffer and must be treated as
//     read-only.
//   - A strategy instance belongs to a single run; instances never share
//     mutable state, so independent runs are safe concurrently.
//
// Returning an index outside [0, Rows) (other than NoRow) violates the
// contract and makes the engine panic at the point of use.
type Strategy interface {
	SelectRowIndex(xk []float64) int
}

// StrategyBuilder constructs a per-run Strategy bound to the given System.
// Builders are how strategies receive the system and the run's parameters
// without sharing state between runs: Solve and NewIterates invoke the
// builder once, after the System has been validated.
type StrategyBuilder func(sys *System) (Strategy, error)

// strategyBuilders maps canonical names to default-configured builders.
// Randomized entries use seed 0, which rngFromSeed resolves to the fixed
// default seed, keeping name-based construction deterministic.
func strategyBuilders() map[string]StrategyBuilder {
	return map[string]StrategyBuilder{
		"Cyclic":           Cyclic(),
		"MaxDistance":      MaxDistance(),
		"Random":           Random(nil, 0),
		"UniformRandom":    UniformRandom(0),
		"SVRandom":         SVRandom(0),
		"Quantile":         Quantile(1, 0),
		"SampledQuantile":  SampledQuantile(1, 0, 0),
		"WindowedQuantile": WindowedQuantile(1, 0, 0),
	}
}

// StrategyByName returns the default-configured builder for a built-in
// strategy. Unknown names yield ErrUnknownStrategy with the list of valid
// names. Strategies needing non-default parameters (weights, quantiles,
// seeds) should be constructed directly instead.
func StrategyByName(name string) (StrategyBuilder, error) {
	b, ok := strategyBuilders()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not one of %v", ErrUnknownStrategy, name, StrategyNames())
	}
	return b, nil
}

// StrategyNames returns the names accepted by StrategyByName, sorted.
func StrategyNames() []string {
	builders := strategyBuilders()
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
