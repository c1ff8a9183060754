package field

import (
	"fmt"

	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// Fp32BitPrimeModulus is 2^32 - 5, the modulus of Fp32BitPrime.
const Fp32BitPrimeModulus uint64 = (uint64(1) << 32) - 5

// Fp32BitPrimeSize is Fp32BitPrime's serialized width in bytes.
const Fp32BitPrimeSize = 4

// TypeStrFp32BitPrime is Fp32BitPrime's canonical ASCII type name.
const TypeStrFp32BitPrime = "fp32BitPrime"

const (
	Fp32BitPrimeZero Fp32BitPrime = 0
	Fp32BitPrimeOne  Fp32BitPrime = 1
)

// Fp32BitPrime is the prime field of order 2^32-5. The backing integer is
// uint32, but arithmetic is carried out in uint64 to avoid overflow before
// reduction.
type Fp32BitPrime uint32

// Fp32BitPrimeFromUint128 reduces v modulo 2^32-5.
func Fp32BitPrimeFromUint128(v Uint128) Fp32BitPrime {
	return Fp32BitPrime(v.Mod(Fp32BitPrimeModulus))
}

func (f Fp32BitPrime) Add(g Fp32BitPrime) Fp32BitPrime {
	return Fp32BitPrime((uint64(f) + uint64(g)) % Fp32BitPrimeModulus)
}

func (f Fp32BitPrime) Sub(g Fp32BitPrime) Fp32BitPrime {
	return Fp32BitPrime((uint64(f) + Fp32BitPrimeModulus - uint64(g)) % Fp32BitPrimeModulus)
}

func (f Fp32BitPrime) Mul(g Fp32BitPrime) Fp32BitPrime {
	return Fp32BitPrime((uint64(f) * uint64(g)) % Fp32BitPrimeModulus)
}

func (f Fp32BitPrime) Neg() Fp32BitPrime {
	if f == 0 {
		return 0
	}
	return Fp32BitPrime(Fp32BitPrimeModulus - uint64(f))
}

func (f Fp32BitPrime) IsZero() bool { return f == Fp32BitPrimeZero }

func (f Fp32BitPrime) Canonical() uint64 { return uint64(f) }

func (f Fp32BitPrime) Serialize(buf []byte) error {
	if len(buf) < Fp32BitPrimeSize {
		return &ipaerrors.CodecError{Kind: ipaerrors.WriteBufferFull, TypeName: TypeStrFp32BitPrime, Required: Fp32BitPrimeSize, Available: len(buf)}
	}
	v := uint32(f)
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	return nil
}

// DeserializeFp32BitPrime accepts any 32-bit pattern, reducing it modulo
// the prime rather than erroring — every bit pattern in the advertised
// width is valid input for this field, per spec.
func DeserializeFp32BitPrime(buf []byte) (Fp32BitPrime, error) {
	if len(buf) < Fp32BitPrimeSize {
		return 0, &ipaerrors.CodecError{Kind: ipaerrors.SerializationTooShort, TypeName: TypeStrFp32BitPrime, Required: Fp32BitPrimeSize, Available: len(buf)}
	}
	v := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24
	return Fp32BitPrime(v % Fp32BitPrimeModulus), nil
}

func (f Fp32BitPrime) String() string {
	return fmt.Sprintf("Fp32BitPrime(%d)", uint32(f))
}
