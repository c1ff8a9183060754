package field

import (
	"fmt"

	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// Fp31Prime is the modulus of Fp31.
const Fp31Prime uint8 = 31

// Fp31Size is Fp31's serialized width in bytes.
const Fp31Size = 1

// TypeStrFp31 is Fp31's canonical ASCII type name.
const TypeStrFp31 = "fp31"

const (
	Fp31Zero Fp31 = 0
	Fp31One  Fp31 = 1
)

// Fp31 is the prime field of order 31. The canonical representative always
// lies in [0, 31).
type Fp31 uint8

// Fp31FromUint128 reduces v modulo 31.
func Fp31FromUint128(v Uint128) Fp31 {
	return Fp31(v.Mod(uint64(Fp31Prime)))
}

func (f Fp31) Add(g Fp31) Fp31 { return Fp31((uint16(f) + uint16(g)) % uint16(Fp31Prime)) }
func (f Fp31) Sub(g Fp31) Fp31 {
	return Fp31((uint16(f) + uint16(Fp31Prime) - uint16(g)) % uint16(Fp31Prime))
}
func (f Fp31) Mul(g Fp31) Fp31 { return Fp31((uint16(f) * uint16(g)) % uint16(Fp31Prime)) }
func (f Fp31) Neg() Fp31 {
	if f == 0 {
		return 0
	}
	return Fp31(Fp31Prime) - f
}
func (f Fp31) IsZero() bool { return f == Fp31Zero }

func (f Fp31) Canonical() uint64 { return uint64(f) }

func (f Fp31) Serialize(buf []byte) error {
	if len(buf) < Fp31Size {
		return &ipaerrors.CodecError{Kind: ipaerrors.WriteBufferFull, TypeName: TypeStrFp31, Required: Fp31Size, Available: len(buf)}
	}
	buf[0] = byte(f)
	return nil
}

// DeserializeFp31 reduces any byte value modulo 31 rather than erroring on
// values in [31, 256), matching the ingestion policy of `from(u128)`.
func DeserializeFp31(buf []byte) (Fp31, error) {
	if len(buf) < Fp31Size {
		return 0, &ipaerrors.CodecError{Kind: ipaerrors.SerializationTooShort, TypeName: TypeStrFp31, Required: Fp31Size, Available: len(buf)}
	}
	return Fp31(buf[0] % Fp31Prime), nil
}

func (f Fp31) String() string {
	return fmt.Sprintf("Fp31(%d)", uint8(f))
}
