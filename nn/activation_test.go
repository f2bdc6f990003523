package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoidActivate(t *testing.T) {
	s := Sigmoid{}
	assert.Equal(t, 0.5, s.Activate(0))
	assert.InDelta(t, 0.7310586, s.Activate(1), 1e-7)
	assert.InDelta(t, 0.6224593, s.Activate(0.5), 1e-7)

	// saturates without special-casing
	assert.Equal(t, 1.0, s.Activate(800))
	assert.Equal(t, 0.0, s.Activate(-800))
	assert.True(t, math.IsNaN(s.Activate(math.NaN())))
}

func TestLookupActivator(t *testing.T) {
	act, err := LookupActivator("sigmoid")
	require.NoError(t, err)
	assert.Equal(t, "sigmoid", act.String())

	_, err = LookupActivator("softmax")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "softmax")
}

func TestActivatorLookupNamesMatchString(t *testing.T) {
	for name, act := range ActivatorLookup {
		assert.Equal(t, name, act.String())
	}
}

func TestActivatorFunc(t *testing.T) {
	double := ActivatorFunc(func(x float64) float64 { return 2 * x })
	assert.Equal(t, 3.0, double.Activate(1.5))
	assert.Equal(t, "func", double.String())
}
