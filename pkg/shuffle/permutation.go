// Package shuffle implements the distributed shuffle/unshuffle protocol:
// deriving a pair of PRSS-correlated permutations and running the
// three-round reshare-based construction of eprint 2019/695 over them.
package shuffle

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/luxfi/threshold/pkg/prss"
)

// Permutation is a bijection on [0,N) represented as the image of each
// index: every value in [0,N) appears exactly once.
type Permutation []uint32

func identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = uint32(i)
	}
	return p
}

// Apply realizes v'[i] = v[perm[i]] (forward / gather).
func Apply[T any](perm Permutation, v []T) []T {
	out := make([]T, len(v))
	for i := range v {
		out[i] = v[perm[i]]
	}
	return out
}

// ApplyInv realizes v'[perm[i]] = v[i] (inverse / scatter). This is exactly
// Apply with perm's inverse, written directly as a scatter so the code
// matches the construction's own naming rather than materializing an
// inverse permutation first.
func ApplyInv[T any](perm Permutation, v []T) []T {
	out := make([]T, len(v))
	for i := range v {
		out[perm[i]] = v[i]
	}
	return out
}

// keystream derives a deterministic pseudorandom byte stream from a 32-byte
// seed. The construction's ChaCha8Rng has no direct Go equivalent in the
// ecosystem the rest of this module draws from, so this uses
// golang.org/x/crypto/chacha20 (fixed at 20 rounds rather than 8) seeded
// with a zero nonce as a deterministic stream cipher: the permutation pair
// is not a security boundary on its own (its soundness rests on the PRSS
// correlation that feeds the seed, per 4.D's pairing invariant), only a
// reproducible one, so the round-count substitution does not weaken any
// claim this core actually makes.
func keystream(seed [32]byte) *chacha20.Cipher {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// seed and nonce are always exactly chacha20.KeySize/NonceSize.
		panic("shuffle: chacha20 rejected a fixed-size key/nonce: " + err.Error())
	}
	return c
}

func randUint32(c *chacha20.Cipher) uint32 {
	var buf [4]byte
	c.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// randBelow returns a value uniform over [0, n) by rejection sampling,
// avoiding the modulo bias a plain `randUint32() % n` would introduce.
func randBelow(c *chacha20.Cipher, n uint32) uint32 {
	limit := (^uint32(0) / n) * n
	for {
		v := randUint32(c)
		if v < limit {
			return v % n
		}
	}
}

// fisherYates shuffles an identity permutation of length n in place, driven
// entirely by the keystream derived from seed.
func fisherYates(seed [32]byte, n int) Permutation {
	p := identity(n)
	if n < 2 {
		return p
	}
	c := keystream(seed)
	for i := n - 1; i > 0; i-- {
		j := randBelow(c, uint32(i+1))
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// GetTwoOfThreeRandomPermutations derives the pair (pi_left, pi_right) this
// helper shares with its two neighbors: two 32-byte ChaCha seeds built from
// four PRSS draws at indices N and N+1, each driving an independent
// Fisher-Yates shuffle of an identity permutation of length n.
//
// Because Right PRSS streams equal the clockwise neighbor's Left stream
// (the 4.D pairing invariant), pi_right of helper H_k is bit-for-bit
// identical to pi_left of helper H_{k+1}: every adjacent pair of helpers
// ends up holding the same permutation, unknown to the third.
func GetTwoOfThreeRandomPermutations(n int, rnd prss.IndexedSharedRandomness) (left, right Permutation) {
	aLeft, aRight := rnd.GenerateValues(uint64(n))
	bLeft, bRight := rnd.GenerateValues(uint64(n) + 1)

	var seedLeft, seedRight [32]byte
	copy(seedLeft[:16], aLeft[:])
	copy(seedLeft[16:], bLeft[:])
	copy(seedRight[:16], aRight[:])
	copy(seedRight[16:], bRight[:])

	return fisherYates(seedLeft, n), fisherYates(seedRight, n)
}
