// Package prss implements Pseudo-Random Secret Sharing key agreement: each
// helper establishes two correlated PRFs, one shared with each neighbor, by
// running a chunked X25519 exchange over the MPC message transport.
package prss

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/curve25519"

	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// deriveContext is the single KDF context both endpoints of an edge must use.
// The two helpers on one edge compute the same X25519 shared secret but
// label it oppositely (one calls it "right", the other "left"), so the
// context string cannot depend on that label without deriving two different
// keys for what must be one shared PRF. left and right within a single
// helper already come from two distinct shared secrets, so one context
// string is enough to keep those two independent.
const deriveContext = "github.com/luxfi/threshold/prss 2024-03-11T10:00+00:00 derive key"

// Output128 is the 128-bit output of one PRF evaluation. Go has no native
// 128-bit integer, so the core keeps PRSS outputs as raw bytes and only
// folds them down to narrower integers where a caller actually needs one.
type Output128 [16]byte

// Uint64Pair decodes the 16 bytes as a big-endian (hi, lo) uint64 pair.
func (o Output128) Uint64Pair() (hi, lo uint64) {
	return binary.BigEndian.Uint64(o[0:8]), binary.BigEndian.Uint64(o[8:16])
}

// prf is a single keyed pseudorandom function built from a 256-bit key.
// Every prf.At call hashes the 16-byte big-endian index under the key with
// a fresh keyed BLAKE3 hasher; evaluations at distinct indices are
// independent.
type prf struct {
	key [32]byte
}

func newPRF(key []byte) *prf {
	var p prf
	copy(p.key[:], key)
	return &p
}

func (p *prf) At(index [16]byte) Output128 {
	h, err := blake3.NewKeyed(p.key[:])
	if err != nil {
		// NewKeyed only fails on a malformed key length, and p.key is
		// always exactly 32 bytes.
		panic("prss: keyed blake3 hasher rejected a 32-byte key: " + err.Error())
	}
	_, _ = h.Write(index[:])
	digest := h.Sum(nil)
	var out Output128
	copy(out[:], digest[:16])
	return out
}

// IndexedSharedRandomness is the pair of PRFs a helper shares with its two
// neighbors. GenerateValues(index) returns one output from each PRF,
// without mixing the two streams: the shuffle's soundness depends on the
// left and right correlated-randomness streams staying independent.
type IndexedSharedRandomness struct {
	left  *prf
	right *prf
}

// EncodeIndex renders idx as the big-endian 16-byte encoding the PRF hashes,
// the Go substitute for the spec's "u128" PRSS index.
func EncodeIndex(hi, lo uint64) [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return b
}

// GenerateValues evaluates both PRFs at index, returning (left, right).
func (r IndexedSharedRandomness) GenerateValues(index uint64) (left, right Output128) {
	enc := EncodeIndex(0, index)
	return r.left.At(enc), r.right.At(enc)
}

// Endpoint is a helper's fully negotiated PRSS key material: two PRFs, one
// keyed from the X25519 exchange with Left, one from the exchange with
// Right. It is created once per query and discarded at query end.
type Endpoint struct {
	left  *prf
	right *prf
}

// Indexed exposes the endpoint's two streams for use by protocols that only
// need the generate_values(index) contract, such as the permutation pair
// and reshare constructions.
func (e *Endpoint) Indexed() IndexedSharedRandomness {
	return IndexedSharedRandomness{left: e.left, right: e.right}
}

// Setup holds an ephemeral X25519 keypair per neighbor, generated before the
// exchange and consumed once the peer's public keys have arrived.
type Setup struct {
	skLeft, skRight [32]byte
	pkLeft, pkRight [32]byte
}

// Prepare generates an ephemeral keypair for each neighbor using rng, which
// must be cryptographically secure.
func Prepare(rng io.Reader) (*Setup, error) {
	var s Setup
	if _, err := io.ReadFull(rng, s.skLeft[:]); err != nil {
		return nil, &ipaerrors.BadInputError{Field: "rng", Value: "left key", Reason: err.Error()}
	}
	if _, err := io.ReadFull(rng, s.skRight[:]); err != nil {
		return nil, &ipaerrors.BadInputError{Field: "rng", Value: "right key", Reason: err.Error()}
	}
	curve25519.ScalarBaseMult(&s.pkLeft, &s.skLeft)
	curve25519.ScalarBaseMult(&s.pkRight, &s.skRight)
	return &s, nil
}

// PublicKeys returns the two ephemeral public keys to be sent to Left and
// Right respectively.
func (s *Setup) PublicKeys() (left, right [32]byte) {
	return s.pkLeft, s.pkRight
}

// Finish completes the exchange: given the neighbors' public keys, it derives
// the two X25519 shared secrets and folds each through BLAKE3's key
// derivation function (with the single deriveContext for both sides) into
// the 256-bit PRF key actually used by the resulting Endpoint.
func (s *Setup) Finish(recvLeftPk, recvRightPk [32]byte) *Endpoint {
	var sharedLeft, sharedRight [32]byte
	curve25519.ScalarMult(&sharedLeft, &s.skLeft, &recvLeftPk)
	curve25519.ScalarMult(&sharedRight, &s.skRight, &recvRightPk)

	var keyLeft, keyRight [32]byte
	blake3.DeriveKey(deriveContext, sharedLeft[:], keyLeft[:])
	blake3.DeriveKey(deriveContext, sharedRight[:], keyRight[:])

	return &Endpoint{left: newPRF(keyLeft[:]), right: newPRF(keyRight[:])}
}

// Rand returns crypto/rand.Reader, the default secure source for Prepare.
func Rand() io.Reader {
	return rand.Reader
}
