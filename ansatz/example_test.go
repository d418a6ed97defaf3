package ansatz_test

import (
	"fmt"
	"math"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/game"
)

// ExampleBiased_Evaluate evaluates the bias-invariant model at the all-zero
// parameter point, where every marginal is exactly balanced for any input.
func ExampleBiased_Evaluate() {
	model, err := ansatz.NewBiased(ansatz.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x := game.StrategyMatrix{
		{0.2, 0.3, 0.5},
		{0.1, 0.6, 0.3},
		{0.4, 0.4, 0.2},
	}
	params := make(ansatz.Params, model.ParamCount())

	e, _ := model.Evaluate(params, x)
	p := ansatz.Probabilities(e)
	fmt.Printf("p0=%.3f p1=%.3f p2=%.3f\n", p[0], p[1], p[2])
	fmt.Println("zero-sum holds:", math.Abs(e[0]+e[1]+e[2]) < 1e-9)
	// Output:
	// p0=0.500 p1=0.500 p2=0.500
	// zero-sum holds: true
}
