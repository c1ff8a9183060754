package dp_test

import (
	"crypto/rand"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold/pkg/dp"
	"github.com/luxfi/threshold/pkg/ipaerrors"
)

func TestSigmaCalibration(t *testing.T) {
	delta := 1.25 * math.Exp(-0.5)
	d, err := dp.New(1.0, delta, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d.Sigma(), 1e-2)
}

func TestBadEpsilon(t *testing.T) {
	_, err := dp.New(0, 0.01, 1.0)
	require.Error(t, err)
	var bad *ipaerrors.BadInputError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "epsilon", bad.Field)
}

func TestBadDelta(t *testing.T) {
	_, err := dp.New(1.0, 1.0, 1.0)
	require.Error(t, err)
	var bad *ipaerrors.BadInputError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "delta", bad.Field)

	_, err = dp.New(1.0, 0, 1.0)
	require.Error(t, err)
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "delta", bad.Field)
}

// TestApplyVarianceWithinChiSquaredBounds checks the sampled variance of a
// large all-zero vector after Apply falls within the chi-squared confidence
// bounds a true Normal(0, sigma) population would produce, per the spec's
// calibration property. Critical values below are chi2(0.9999, 9999) and
// chi2(0.0001, 9999), i.e. the upper and lower tails for N-1=9999 degrees
// of freedom.
func TestApplyVarianceWithinChiSquaredBounds(t *testing.T) {
	const n = 10_000
	const chiUpper = 10533.5 // chi2_{0.9999}(9999), right tail
	const chiLower = 9481.6  // chi2_{0.0001}(9999), left tail

	d, err := dp.New(1.0, 0.0001, 1.0)
	require.NoError(t, err)
	sigma := d.Sigma()

	vs := make([]float64, n)
	require.NoError(t, d.Apply(vs, rand.Reader))

	var mean float64
	for _, v := range vs {
		mean += v
	}
	mean /= n

	var sumSq float64
	for _, v := range vs {
		diff := v - mean
		sumSq += diff * diff
	}
	variance := sumSq / float64(n-1)

	lowerBound := float64(n-1) * sigma * sigma / chiUpper
	upperBound := float64(n-1) * sigma * sigma / chiLower

	assert.GreaterOrEqual(t, variance, lowerBound)
	assert.LessOrEqual(t, variance, upperBound)
}
