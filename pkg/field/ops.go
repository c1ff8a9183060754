package field

// Ops bundles the handful of operations on a concrete Field implementation
// that cannot be expressed as methods because they are constructors rather
// than instance behavior: converting a wide PRSS/test-fixture integer into
// the field, and the field's static size and name. Generic code that needs
// to build field elements from raw randomness (PRSS-driven masking, seeded
// test fixtures) takes an Ops[F] alongside the Field[F] constraint.
type Ops[F Field[F]] struct {
	FromUint128 func(Uint128) F
	Deserialize func([]byte) (F, error)
	SizeInBytes int
	TypeStr     string
}

// Fp2Ops is the Ops table for the binary field.
var Fp2Ops = Ops[Fp2]{FromUint128: Fp2FromUint128, Deserialize: DeserializeFp2, SizeInBytes: Fp2Size, TypeStr: TypeStrFp2}

// Fp31Ops is the Ops table for the 31-element prime field.
var Fp31Ops = Ops[Fp31]{FromUint128: Fp31FromUint128, Deserialize: DeserializeFp31, SizeInBytes: Fp31Size, TypeStr: TypeStrFp31}

// Fp32BitPrimeOps is the Ops table for the 2^32-5 prime field.
var Fp32BitPrimeOps = Ops[Fp32BitPrime]{FromUint128: Fp32BitPrimeFromUint128, Deserialize: DeserializeFp32BitPrime, SizeInBytes: Fp32BitPrimeSize, TypeStr: TypeStrFp32BitPrime}
