package field_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold/pkg/field"
)

// exercise is a tiny adapter so the same property table can drive all three
// concrete field types through the generic Field[Self] constraint.
func exercise[F field.Field[F]](t *testing.T, zero, one F, sample func() F) {
	t.Helper()
	for i := 0; i < 200; i++ {
		a, b, c := sample(), sample(), sample()

		assert.Equal(t, a.Canonical(), a.Add(zero).Canonical(), "a + ZERO = a")
		assert.Equal(t, a.Canonical(), a.Mul(one).Canonical(), "a * ONE = a")
		assert.True(t, a.Add(a.Neg()).IsZero(), "a + (-a) = ZERO")

		assert.Equal(t, a.Add(b).Canonical(), b.Add(a).Canonical(), "+ commutes")
		assert.Equal(t, a.Mul(b).Canonical(), b.Mul(a).Canonical(), "* commutes")

		assert.Equal(t, a.Add(b).Add(c).Canonical(), a.Add(b.Add(c)).Canonical(), "+ associates")
		assert.Equal(t, a.Mul(b).Mul(c).Canonical(), a.Mul(b.Mul(c)).Canonical(), "* associates")

		assert.Equal(t, a.Mul(b.Add(c)).Canonical(), a.Mul(b).Add(a.Mul(c)).Canonical(), "distributivity")
	}
}

func TestFp31FieldLaws(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	exercise[field.Fp31](t, field.Fp31Zero, field.Fp31One, func() field.Fp31 {
		return field.Fp31(r.Intn(31))
	})
}

func TestFp32BitPrimeFieldLaws(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	exercise[field.Fp32BitPrime](t, field.Fp32BitPrimeZero, field.Fp32BitPrimeOne, func() field.Fp32BitPrime {
		return field.Fp32BitPrime(r.Uint32() % uint32(field.Fp32BitPrimeModulus))
	})
}

func TestFp2FieldLaws(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	exercise[field.Fp2](t, field.Fp2Zero, field.Fp2One, func() field.Fp2 {
		return field.Fp2(r.Intn(2))
	})
}

func TestSerializeRoundTrip(t *testing.T) {
	buf := make([]byte, 4)

	for v := 0; v < 31; v++ {
		f := field.Fp31(v)
		require.NoError(t, f.Serialize(buf))
		got, err := field.DeserializeFp31(buf)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		f := field.Fp32BitPrime(r.Uint32() % uint32(field.Fp32BitPrimeModulus))
		require.NoError(t, f.Serialize(buf))
		got, err := field.DeserializeFp32BitPrime(buf)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestSerializeBufferTooSmall(t *testing.T) {
	var f field.Fp32BitPrime = 12345
	err := f.Serialize(make([]byte, 2))
	require.Error(t, err)

	_, err = field.DeserializeFp32BitPrime(make([]byte, 2))
	require.Error(t, err)
}

func TestOutOfRangeIngestReducesRatherThanErrors(t *testing.T) {
	// Any byte value is accepted for Fp31, reduced modulo 31.
	got, err := field.DeserializeFp31([]byte{200})
	require.NoError(t, err)
	assert.Equal(t, field.Fp31(200%31), got)
}

func TestFieldTypeRoundTripsCaseInsensitively(t *testing.T) {
	variants := []string{"fp32BitPrime", "FP32BITPRIME", "fP32bItPrImE"}
	for _, v := range variants {
		ty, err := field.ParseType(v)
		require.NoError(t, err)
		assert.Equal(t, field.TypeFp32BitPrime, ty)
		assert.Equal(t, "fp32BitPrime", ty.String())

		reparsed, err := field.ParseType(ty.String())
		require.NoError(t, err)
		assert.Equal(t, ty, reparsed)
	}
}

func TestFieldTypeUnknownErrors(t *testing.T) {
	_, err := field.ParseType("fp99")
	require.Error(t, err)
}

func TestBinaryFieldBitwise(t *testing.T) {
	assert.Equal(t, field.Fp2One, field.Fp2One.And(field.Fp2One))
	assert.Equal(t, field.Fp2Zero, field.Fp2One.And(field.Fp2Zero))
	assert.Equal(t, field.Fp2One, field.Fp2One.Or(field.Fp2Zero))
	assert.Equal(t, field.Fp2One, field.Fp2One.Xor(field.Fp2Zero))
	assert.Equal(t, field.Fp2Zero, field.Fp2One.Xor(field.Fp2One))
	assert.Equal(t, field.Fp2Zero, field.Fp2One.Not())
}
