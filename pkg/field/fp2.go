package field

import "github.com/luxfi/threshold/pkg/ipaerrors"

// Fp2 is the binary field GF(2). Only the low bit is ever significant; all
// constructors and arithmetic keep the value in {0, 1}.
type Fp2 uint8

const (
	Fp2Zero Fp2 = 0
	Fp2One  Fp2 = 1
	Fp2Size         = 1
)

// TypeStrFp2 is Fp2's canonical ASCII type name.
const TypeStrFp2 = "fp2"

// Fp2FromUint128 reduces v modulo 2, matching the ingestion policy of
// `from(u128)`: any input is accepted, out-of-range bit patterns reduce
// rather than error.
func Fp2FromUint128(v Uint128) Fp2 {
	return Fp2(v.Mod(2))
}

func (f Fp2) Add(g Fp2) Fp2 { return (f + g) & 1 }
func (f Fp2) Sub(g Fp2) Fp2 { return (f + g) & 1 } // in GF(2), subtraction is addition
func (f Fp2) Mul(g Fp2) Fp2 { return f & g }
func (f Fp2) Neg() Fp2      { return f }
func (f Fp2) IsZero() bool  { return f == Fp2Zero }

func (f Fp2) Canonical() uint64 { return uint64(f & 1) }

// And, Or, Xor and Not give GF(2) its bitwise semantics, over and above the
// ring operations every Field exposes.
func (f Fp2) And(g Fp2) Fp2 { return f & g }
func (f Fp2) Or(g Fp2) Fp2  { return (f | g) & 1 }
func (f Fp2) Xor(g Fp2) Fp2 { return (f ^ g) & 1 }
func (f Fp2) Not() Fp2      { return (^f) & 1 }

func (f Fp2) Serialize(buf []byte) error {
	if len(buf) < Fp2Size {
		return &ipaerrors.CodecError{Kind: ipaerrors.WriteBufferFull, TypeName: TypeStrFp2, Required: Fp2Size, Available: len(buf)}
	}
	buf[0] = byte(f & 1)
	return nil
}

// DeserializeFp2 reads a single byte; only the low bit is honored, matching
// the reduce-rather-than-error ingestion policy for the binary field.
func DeserializeFp2(buf []byte) (Fp2, error) {
	if len(buf) < Fp2Size {
		return 0, &ipaerrors.CodecError{Kind: ipaerrors.SerializationTooShort, TypeName: TypeStrFp2, Required: Fp2Size, Available: len(buf)}
	}
	return Fp2(buf[0] & 1), nil
}

func (f Fp2) String() string {
	if f == 0 {
		return "Fp2(0)"
	}
	return "Fp2(1)"
}
