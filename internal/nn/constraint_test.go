package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofit-ml/gofit/internal/nn"
)

func TestInterval_RawBounds(t *testing.T) {
	// Transform-enforced constraints leave the raw value unbounded.
	lower, upper := nn.GreaterThan(1e-6).RawBounds()
	assert.True(t, math.IsInf(lower, -1))
	assert.True(t, math.IsInf(upper, 1))

	// Without a transform the raw value carries the bound itself.
	lower, upper = nn.GreaterThan(1e-6).WithoutTransform().RawBounds()
	assert.Equal(t, 1e-6, lower)
	assert.True(t, math.IsInf(upper, 1))

	lower, upper = nn.LessThan(2.0).WithoutTransform().RawBounds()
	assert.True(t, math.IsInf(lower, -1))
	assert.Equal(t, 2.0, upper)
}

func TestInterval_TransformRoundTrip(t *testing.T) {
	cases := []*nn.Interval{
		nn.GreaterThan(0.5),
		nn.LessThan(3.0),
		nn.Positive(),
	}
	closed, err := nn.NewInterval(-1, 1)
	require.NoError(t, err)
	cases = append(cases, closed)

	for _, c := range cases {
		for _, raw := range []float64{-2.5, -0.1, 0.3, 1.7} {
			value := c.Transform(raw)
			assert.GreaterOrEqual(t, value, c.LowerBound())
			assert.LessOrEqual(t, value, c.UpperBound())
			assert.InDelta(t, raw, c.InverseTransform(value), 1e-9)
		}
	}
}

func TestInterval_WithoutTransformIsIdentity(t *testing.T) {
	c := nn.GreaterThan(1e-4).WithoutTransform()
	assert.Equal(t, 0.25, c.Transform(0.25))
	assert.Equal(t, 0.25, c.InverseTransform(0.25))
	assert.False(t, c.Enforced())
}

func TestNewInterval_RejectsEmptyInterval(t *testing.T) {
	_, err := nn.NewInterval(1, 1)
	assert.Error(t, err)
	_, err = nn.NewInterval(2, 1)
	assert.Error(t, err)
}
