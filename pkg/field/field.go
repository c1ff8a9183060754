// Package field implements the three prime fields used throughout the
// core: the binary field GF(2), and two prime fields of modulus 31 and
// 2^32-5. Every field element is a plain value type; arithmetic reduces
// modulo the field's prime and serialization is little-endian, fixed
// width.
package field

import (
	"strings"

	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// Field is implemented by every concrete element type in this package. It
// is written as a self-referential generic constraint (the "curiously
// recurring" shape) so that generic callers such as the shuffle and reshare
// protocols can be written once, against Field[F], and instantiated at
// Fp2, Fp31 or Fp32BitPrime without any interface boxing.
type Field[Self any] interface {
	Add(Self) Self
	Sub(Self) Self
	Mul(Self) Self
	Neg() Self
	IsZero() bool

	// Canonical returns the field element's canonical representative in
	// [0, PRIME) as a uint64. All three supported primes fit comfortably,
	// so no field in this core needs a wider integer type.
	Canonical() uint64

	// Serialize writes the little-endian canonical representative into
	// the first Ops.SizeInBytes bytes of buf. buf must have at least that
	// much capacity.
	Serialize(buf []byte) error
}

// Uint128 is a minimal 128-bit unsigned integer, used only for the ingest
// path `From(u128)` that the spec requires: PRSS outputs and test fixtures
// hand the field package values wider than a uint64.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Mod reduces u modulo m (m must be nonzero) and returns the uint64 result.
func (u Uint128) Mod(m uint64) uint64 {
	if u.Hi == 0 {
		return u.Lo % m
	}
	// Long division of the 128-bit value by m, 32 bits at a time, keeping
	// everything in uint64 registers. m is always one of 2, 31 or 2^32-5
	// in this core, so this never needs to be fast, only correct.
	rem := uint64(0)
	for i := 3; i >= 0; i-- {
		var limb uint64
		if i >= 2 {
			limb = (u.Hi >> uint((i-2)*32)) & 0xFFFFFFFF
		} else {
			limb = (u.Lo >> uint(i*32)) & 0xFFFFFFFF
		}
		rem = ((rem << 32) | limb) % m
	}
	return rem
}

// Type tags the three concrete field implementations, carrying the
// canonical ASCII name used in external configuration.
type Type uint8

const (
	TypeFp2 Type = iota
	TypeFp31
	TypeFp32BitPrime
)

// String returns the canonical-case name for the type, e.g. "fp32BitPrime".
func (t Type) String() string {
	switch t {
	case TypeFp2:
		return "fp2"
	case TypeFp31:
		return "fp31"
	case TypeFp32BitPrime:
		return "fp32BitPrime"
	default:
		return "unknown"
	}
}

// SizeInBytes returns the serialized width of the field this tag names.
func (t Type) SizeInBytes() uint32 {
	switch t {
	case TypeFp2, TypeFp31:
		return 1
	case TypeFp32BitPrime:
		return 4
	default:
		return 0
	}
}

// ParseType matches s case-insensitively against the three supported field
// names. An unrecognized value returns a BadInputError carrying the
// offending string.
func ParseType(s string) (Type, error) {
	switch {
	case strings.EqualFold(s, "fp2"):
		return TypeFp2, nil
	case strings.EqualFold(s, "fp31"):
		return TypeFp31, nil
	case strings.EqualFold(s, "fp32bitprime"):
		return TypeFp32BitPrime, nil
	default:
		return 0, &ipaerrors.BadInputError{
			Field:  "FieldType",
			Value:  s,
			Reason: "must be one of fp2, fp31, fp32BitPrime",
		}
	}
}
