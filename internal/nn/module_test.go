package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofit-ml/gofit/internal/nn"
	"github.com/gofit-ml/gofit/internal/tensor"
)

func TestModuleDict_DottedNamesInOrder(t *testing.T) {
	inner := nn.NewModuleDict().
		Add("covar_module", nn.NewRBFKernel(nn.RBFKernelConfig{ARDNumDims: 2})).
		Add("mean_module", nn.NewConstantMean(nn.ConstantMeanConfig{}))

	model := nn.NewModuleDict().
		Add("likelihood", nn.NewGaussianLikelihood(nn.GaussianLikelihoodConfig{})).
		Add("model", inner)

	params := model.NamedParameters()
	require.Len(t, params, 3)
	assert.Equal(t, "likelihood.noise_covar.raw_noise", params[0].Name)
	assert.Equal(t, "model.covar_module.raw_lengthscale", params[1].Name)
	assert.Equal(t, "model.mean_module.raw_constant", params[2].Name)
}

func TestModuleDict_AddReplacesKeepingPosition(t *testing.T) {
	d := nn.NewModuleDict().
		Add("a", nn.NewConstantMean(nn.ConstantMeanConfig{})).
		Add("b", nn.NewConstantMean(nn.ConstantMeanConfig{}))

	replacement := nn.NewConstantMean(nn.ConstantMeanConfig{})
	d.Add("a", replacement)

	require.Equal(t, 2, d.Len())
	params := d.NamedParameters()
	assert.Equal(t, "a.raw_constant", params[0].Name)
	got, ok := d.Get("a")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestModuleDict_NamedBoundsOnlyFromConstrainedChildren(t *testing.T) {
	model := nn.NewModuleDict().
		Add("likelihood", nn.NewGaussianLikelihood(nn.GaussianLikelihoodConfig{
			NoiseConstraint: nn.GreaterThan(1e-4).WithoutTransform(),
		})).
		Add("mean_module", nn.NewConstantMean(nn.ConstantMeanConfig{}))

	bounds := model.NamedBounds()
	require.Len(t, bounds, 1)
	assert.Equal(t, "likelihood.noise_covar.raw_noise", bounds[0].Name)
	assert.Equal(t, 1e-4, bounds[0].Lower)
	assert.True(t, math.IsInf(bounds[0].Upper, 1))
}

func TestGaussianLikelihood_InitialValue(t *testing.T) {
	likelihood := nn.NewGaussianLikelihood(nn.GaussianLikelihoodConfig{
		NoiseConstraint: nn.GreaterThan(1e-6),
		InitialValue:    0.123,
	})

	// The initial value is set in constrained space and reproduced by the
	// transform of the raw parameter.
	assert.InDelta(t, 0.123, likelihood.Noise(), 1e-12)

	params := likelihood.NamedParameters()
	require.Len(t, params, 1)
	assert.Equal(t, "noise_covar.raw_noise", params[0].Name)
	assert.True(t, params[0].Value.Shape().Equal(tensor.Shape{1}))
}

func TestRBFKernel_Shapes(t *testing.T) {
	kernel := nn.NewRBFKernel(nn.RBFKernelConfig{ARDNumDims: 3})
	params := kernel.NamedParameters()
	require.Len(t, params, 1)
	assert.True(t, params[0].Value.Shape().Equal(tensor.Shape{1, 3}))
	assert.Len(t, kernel.Lengthscale(), 3)

	// Zero dims defaults to a single lengthscale.
	single := nn.NewRBFKernel(nn.RBFKernelConfig{})
	assert.True(t, single.NamedParameters()[0].Value.Shape().Equal(tensor.Shape{1, 1}))
}

func TestConstantMean_ScalarParameter(t *testing.T) {
	mean := nn.NewConstantMean(nn.ConstantMeanConfig{DType: tensor.Float64})

	params := mean.NamedParameters()
	require.Len(t, params, 1)
	assert.True(t, params[0].Value.Shape().Equal(tensor.Shape{}))
	assert.Equal(t, 1, params[0].Value.NumElements())

	mean.SetConstant(2.5)
	assert.Equal(t, 2.5, mean.Constant())
}
