package train

import "github.com/zerosumlab/zerosum/ansatz"

// LossFunc is a scalar objective over a parameter tensor.
type LossFunc func(ansatz.Params) (float64, error)

// GradientFunc estimates ∇f at p. Fit accepts any implementation; an
// autodiff collaborator can be plugged in here without touching the loop.
type GradientFunc func(f LossFunc, p ansatz.Params) ([]float64, error)

// DefaultGradientStep is the half-width of the central-difference stencil.
// 1e-6 balances truncation error (O(h²)) against float64 cancellation for
// loss values of order 1.
const DefaultGradientStep = 1e-6

// Gradient is the default GradientFunc: a central finite difference
//
//	g_i = (f(p + h·e_i) − f(p − h·e_i)) / (2h)
//
// per coordinate. The input tensor is never mutated; a scratch copy is
// perturbed and restored coordinate by coordinate.
//
// Complexity: 2·len(p) loss evaluations.
func Gradient(f LossFunc, p ansatz.Params) ([]float64, error) {
	g := make([]float64, len(p))
	w := p.Clone()
	for i := range w {
		orig := w[i]

		w[i] = orig + DefaultGradientStep
		plus, err := f(w)
		if err != nil {
			return nil, err
		}

		w[i] = orig - DefaultGradientStep
		minus, err := f(w)
		if err != nil {
			return nil, err
		}

		w[i] = orig
		g[i] = (plus - minus) / (2 * DefaultGradientStep)
	}
	return g, nil
}
