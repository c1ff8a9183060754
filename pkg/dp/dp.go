// Package dp implements the core's reference differential-privacy
// mechanism: a calibrated Gaussian noise generator. It is explicitly
// insecure (floating-point arithmetic leaks through timing and rounding
// channels no real DP mechanism would accept) and exists only so
// downstream aggregations have something deterministic to test against.
package dp

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// minPosFloat64 mirrors the spec's MIN_POS_F64: the smallest positive
// float64, used as the exclusive lower bound for epsilon and the inclusive
// lower bound for delta.
const minPosFloat64 = math.SmallestNonzeroFloat64

// Dp is a calibrated Gaussian noise source. The zero value is not valid;
// construct with New.
type Dp struct {
	sigma float64
}

// New validates (epsilon, delta, cap) and derives the standard deviation
// sigma = (cap/epsilon) * sqrt(2 * ln(1.25/delta)).
func New(epsilon, delta, clip float64) (*Dp, error) {
	if !(epsilon > minPosFloat64) {
		return nil, &ipaerrors.BadInputError{Field: "epsilon", Value: formatFloat(epsilon), Reason: "must be greater than the smallest positive float64"}
	}
	// 1-minPosFloat64 rounds to 1.0 in float64, so the upper bound is
	// written as a strict comparison against 1.
	if !(delta >= minPosFloat64 && delta < 1) {
		return nil, &ipaerrors.BadInputError{Field: "delta", Value: formatFloat(delta), Reason: "must lie in [MIN_POS_F64, 1)"}
	}
	sigma := (clip / epsilon) * math.Sqrt(2*math.Log(1.25/delta))
	return &Dp{sigma: sigma}, nil
}

// Sigma returns the calibrated standard deviation.
func (d *Dp) Sigma() float64 { return d.sigma }

// Apply adds one i.i.d. Normal(0, sigma) draw to each element of vs,
// sampled via the Box-Muller transform over pairs of uniform float64
// values read from rng, which must be cryptographically secure.
func (d *Dp) Apply(vs []float64, rng io.Reader) error {
	for i := range vs {
		z, err := sampleGaussian(rng)
		if err != nil {
			return err
		}
		vs[i] += d.sigma * z
	}
	return nil
}

// sampleGaussian draws one standard-normal sample via Box-Muller from two
// independent uniform (0,1] values.
func sampleGaussian(rng io.Reader) (float64, error) {
	u1, err := uniformUnit(rng)
	if err != nil {
		return 0, err
	}
	u2, err := uniformUnit(rng)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2), nil
}

// uniformUnit reads 8 bytes from rng and maps them to a float64 uniform on
// (0, 1], using the top 53 bits for full double precision and biasing away
// from zero so Log(u1) never diverges.
func uniformUnit(rng io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return 0, &ipaerrors.BadInputError{Field: "rng", Value: "uniform sample", Reason: err.Error()}
	}
	bits := binary.LittleEndian.Uint64(buf[:])
	return (float64(bits>>11) + 1) / (1 << 53), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
