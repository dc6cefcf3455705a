// Package kaczmarz implements the Kaczmarz family of iterative
// row-projection algorithms for solving (possibly inconsistent or
// rectangular) linear systems A·x = b.
//
// Instead of a single opaque solve call, the package exposes the iteration
// itself: a pull-based sequence of solution estimates (Iterates) driven by a
// pluggable row-selection Strategy. Each step projects the current estimate
// orthogonally onto the hyperplane of one equation of the system:
//
//	x_{k+1} = x_k + ((b_i − ⟨a_i, x_k⟩) / ‖a_i‖²) · a_i
//
// What the package provides:
//
//   - System        — immutable view of (A, b) with cached row norms
//   - Strategy      — "which row next?" capability; implement SelectRowIndex
//     to plug in your own policy
//   - Built-in strategies — Cyclic, MaxDistance (Motzkin), Random,
//     UniformRandom, SVRandom (Strohmer–Vershynin), Quantile,
//     SampledQuantile, WindowedQuantile
//   - Iterates      — the iteration engine: an explicit state machine
//     (Initialized → Running → Converged | MaxIterReached) advanced with
//     Next(), exposing the current iterate, the row index just applied,
//     and the iteration count
//   - Solve         — convenience wrapper that drains Iterates and returns
//     the final estimate
//   - NormalizeSystem — scale a system so every row of A has unit norm
//
// Quick example (Cyclic, the default strategy):
//
//	A := mat.NewDense(2, 2, []float64{
//		3, 1,
//		1, 2,
//	})
//	b := []float64{9, 8}
//
//	x, err := kaczmarz.Solve(A, b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("x ≈ %.2f\n", x) // x ≈ [2.00 3.00]
//
// Inspecting the run instead of draining it:
//
//	it, err := kaczmarz.NewIterates(A, b,
//		kaczmarz.WithStrategy(kaczmarz.MaxDistance()),
//		kaczmarz.WithMaxIter(100),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for it.Next() {
//		fmt.Println(it.Iteration(), it.RowIndex(), it.X())
//	}
//	fmt.Println("terminal state:", it.State())
//
// Complexity per projection step:
//
//   - Cyclic / Random variants: O(n) for the update, O(m·n) for the
//     convergence check
//   - MaxDistance: O(m·n) to score every row, plus the update
//
// Determinism: all randomized strategies take an explicit seed; seed 0 maps
// to a fixed default, so runs are reproducible by construction. There is no
// global RNG state.
//
// Concurrency: a single run is strictly sequential. Independent runs may
// execute concurrently — each Iterates owns its strategy instance and
// iterate buffer, and a System is read-only after construction, so it may be
// shared across runs.
//
// Errors: construction fails fast with sentinel errors (ErrBadShape,
// ErrDimensionMismatch, ...) matched via errors.Is. Degenerate (all-zero)
// rows are not errors: projecting onto one is a guarded no-op. Running out
// of iterations is not an error either — Solve returns the best iterate
// reached and the caller compares its residual against the tolerance.
package kaczmarz
