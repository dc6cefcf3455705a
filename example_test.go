package kaczmarz_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kaczmarz"
)

// ExampleSolve demonstrates the one-call entry point with the default cyclic
// strategy.
func ExampleSolve() {
	a := mat.NewDense(2, 2, []float64{
		3, 1,
		1, 2,
	})
	b := []float64{9, 8}

	x, err := kaczmarz.Solve(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("x ≈ [%.1f %.1f]\n", x[0], x[1])
	// Output:
	// x ≈ [2.0 3.0]
}

// ExampleNewIterates walks the lazy sequence step by step, inspecting the
// iterate and the row index that produced it.
func ExampleNewIterates() {
	a := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	b := []float64{1, 1, 1}

	it, err := kaczmarz.NewIterates(a, b)
	if err != nil {
		log.Fatal(err)
	}
	for it.Next() {
		fmt.Printf("k=%d ik=%2d x=%v\n", it.Iteration(), it.RowIndex(), it.X())
	}
	fmt.Println("state:", it.State())
	// Output:
	// k=0 ik=-1 x=[0 0 0]
	// k=1 ik= 0 x=[1 0 0]
	// k=2 ik= 1 x=[1 1 0]
	// k=3 ik= 2 x=[1 1 1]
	// state: Converged
}

// ExampleStrategyByName shows name-based construction, handy for wiring a
// strategy choice through configuration.
func ExampleStrategyByName() {
	builder, err := kaczmarz.StrategyByName("MaxDistance")
	if err != nil {
		log.Fatal(err)
	}

	a := mat.NewDense(2, 2, []float64{
		3, 1,
		1, 2,
	})
	x, err := kaczmarz.Solve(a, []float64{9, 8}, kaczmarz.WithStrategy(builder))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("x ≈ [%.1f %.1f]\n", x[0], x[1])
	// Output:
	// x ≈ [2.0 3.0]
}
