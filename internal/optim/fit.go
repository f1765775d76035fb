package optim

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/gofit-ml/gofit/internal/log"
	"github.com/gofit-ml/gofit/internal/nn"
)

// LossFunc evaluates the loss of a model at its current parameter values.
// Fit mutates the model's parameters between calls.
type LossFunc func() (float64, error)

// FitConfig configures Fit.
type FitConfig struct {
	Exclude       []string         // Parameter names to keep fixed
	Bounds        map[string]Bound // Per-parameter bound overrides
	MaxIterations int              // Major iteration cap (0 = no cap)
}

// FitResult reports the outcome of a Fit call.
type FitResult struct {
	X           []float64 // Final flat parameter vector (already written back)
	Loss        float64   // Loss at X
	Evaluations int       // Number of loss evaluations
	Status      string    // Optimizer termination status
}

// Fit minimizes a loss over a module's parameters.
//
// The module's parameters are flattened with ModuleToArray, handed to a
// gonum optimizer, and the best vector is written back into the module
// before returning. When every effective bound is unconstrained, LBFGS is
// used (gradients estimated by finite differences); with bounds present
// the search falls back to Nelder-Mead and iterates are projected onto the
// box, since gonum has no native box-constrained quasi-Newton method.
func Fit(m nn.Module, loss LossFunc, config FitConfig) (*FitResult, error) {
	x0, params, bounds, err := ModuleToArray(m, config.Exclude, config.Bounds)
	if err != nil {
		return nil, err
	}
	if params.Len() == 0 {
		return nil, errors.New("fit: module has no free parameters")
	}

	logger := log.Logger()
	logger.Debug().
		Int("parameters", params.Len()).
		Int("dimensions", len(x0)).
		Bool("bounded", bounds != nil).
		Msg("starting fit")

	evaluations := 0
	objective := func(x []float64) float64 {
		evaluations++
		point := x
		if bounds != nil {
			point = projectOntoBounds(x, bounds)
		}
		if _, err := SetParamsWithArray(m, point, params); err != nil {
			return math.Inf(1)
		}
		value, err := loss()
		if err != nil {
			return math.Inf(1)
		}
		return value
	}

	problem := optimize.Problem{Func: objective}
	var method optimize.Method
	if bounds == nil {
		method = &optimize.LBFGS{}
		problem.Grad = func(grad, x []float64) {
			fd.Gradient(grad, objective, x, nil)
		}
	} else {
		method = &optimize.NelderMead{}
		x0 = projectOntoBounds(x0, bounds)
	}

	settings := &optimize.Settings{
		MajorIterations: config.MaxIterations,
	}

	result, err := optimize.Minimize(problem, x0, settings, method)
	if err != nil {
		return nil, errors.Wrap(err, "fit: minimization failed")
	}

	best := result.X
	if bounds != nil {
		best = projectOntoBounds(best, bounds)
	}
	if _, err := SetParamsWithArray(m, best, params); err != nil {
		return nil, errors.Wrap(err, "fit: writing back result")
	}

	logger.Debug().
		Float64("loss", result.F).
		Int("evaluations", evaluations).
		Str("status", result.Status.String()).
		Msg("fit complete")

	return &FitResult{
		X:           best,
		Loss:        result.F,
		Evaluations: evaluations,
		Status:      result.Status.String(),
	}, nil
}

// projectOntoBounds clamps each element of x into its bound interval.
func projectOntoBounds(x []float64, bounds *ArrayBounds) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Min(math.Max(v, bounds.Lower[i]), bounds.Upper[i])
	}
	return out
}
